package onepux

// FormatFieldValue renders a section field value for display in notes. The
// boolean is false when the value has nothing worth showing. It never fails:
// unknown or malformed shapes are reported as absent instead of being dumped.
func FormatFieldValue(v FieldValue) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case StringValue:
		return string(t), true
	case ConcealedValue:
		return string(t), true
	case OpaqueValue:
		return string(t), true
	case SSOValue:
		return t.Provider, t.Provider != ""
	case MenuValue:
		return string(t), t != ""
	case AddressValue:
		s := formatAddress(t)
		return s, s != ""
	case OTPValue:
		// Seeds are surfaced through the OTPAuth column only.
		return "", false
	case MalformedValue:
		return "", false
	case UnknownValue:
		for _, key := range incidentalKeys {
			val, ok := t.Incidental[key]
			if !ok || isFalsy(val) {
				continue
			}
			if _, isMap := val.(map[string]any); isMap {
				continue
			}
			if s := scalarText(val); s != "" {
				return s, true
			}
		}
		return "", false
	case ScalarValue:
		s := scalarText(t.Raw)
		return s, s != ""
	default:
		return "", false
	}
}

func formatAddress(a AddressValue) string {
	locality := joinNonEmpty(", ", a.City, a.State, a.Zip)
	return joinNonEmpty(", ", a.Street, locality, a.Country)
}
