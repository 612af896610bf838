package onepux

import "strings"

// ExtractUsername returns the value of the first login field designated as
// the username. A designated field with an empty value and a missing field
// both yield "".
func ExtractUsername(fields []LoginField) string {
	return designatedValue(fields, DesignationUsername)
}

func ExtractPassword(fields []LoginField) string {
	return designatedValue(fields, DesignationPassword)
}

func designatedValue(fields []LoginField, designation string) string {
	for _, f := range fields {
		if f.Designation == designation {
			return f.Value
		}
	}
	return ""
}

// ExtractOTP scans every section in order and returns the first non-empty
// one-time-password seed held by a TOTP_ field.
func ExtractOTP(sections []Section) string {
	for _, section := range sections {
		for _, field := range section.Fields {
			if !isOTPField(field) {
				continue
			}
			var seed string
			switch v := field.Value.(type) {
			case OTPValue:
				seed = v.Seed
			case StringValue:
				seed = string(v)
			}
			if seed != "" {
				return seed
			}
		}
	}
	return ""
}

func isOTPField(f SectionField) bool {
	return strings.HasPrefix(f.ID, OTPFieldPrefix)
}

// PrimaryURL prefers the single url attribute and falls back to the first
// labeled url.
func PrimaryURL(o Overview) string {
	if o.URL != "" {
		return o.URL
	}
	if len(o.URLs) > 0 {
		return o.URLs[0].URL
	}
	return ""
}
