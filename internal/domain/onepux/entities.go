package onepux

const (
	StateActive   = "active"
	StateArchived = "archived"

	DesignationUsername = "username"
	DesignationPassword = "password"

	OTPFieldPrefix = "TOTP_"
)

type Export struct {
	Accounts []Account `json:"accounts"`
}

type Account struct {
	Attrs  AccountAttrs `json:"attrs"`
	Vaults []Vault      `json:"vaults"`
}

type AccountAttrs struct {
	AccountName string `json:"accountName"`
	Email       string `json:"email"`
}

type Vault struct {
	Attrs VaultAttrs `json:"attrs"`
	Items []Item     `json:"items"`
}

type VaultAttrs struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// Item decodes leniently: a wrongly typed leaf degrades to its zero value
// instead of failing the whole export. See itemFromAny.
type Item struct {
	UUID     string
	State    string
	Overview Overview
	Details  Details
}

// Archived reports whether the item sits in the archive. A missing state is
// treated as active.
func (it Item) Archived() bool {
	return it.State == StateArchived
}

func (it *Item) UnmarshalJSON(b []byte) error {
	v, err := decodeAny(b)
	if err != nil {
		return err
	}
	*it = itemFromAny(v)
	return nil
}

type Overview struct {
	Title string
	URL   string
	URLs  []URLEntry
	Tags  []string
}

type URLEntry struct {
	URL   string
	Label string
}

type Details struct {
	NotesPlain  string
	LoginFields []LoginField
	Sections    []Section
	// PasswordHistory is only counted.
	PasswordHistory []any
}

type LoginField struct {
	Designation string
	Name        string
	Value       string
}

type Section struct {
	Title  string
	Fields []SectionField
}

type SectionField struct {
	ID    string
	Title string
	// Value is nil when the source value was missing or empty.
	Value FieldValue
}

func (f *SectionField) UnmarshalJSON(b []byte) error {
	v, err := decodeAny(b)
	if err != nil {
		return err
	}
	*f = sectionFieldFromAny(v)
	return nil
}

// FieldValue is one of the shapes a section field value can take in an
// export. The set is closed: every decoded value is one of the types below.
type FieldValue interface {
	fieldValue()
}

type (
	StringValue    string
	ConcealedValue string
	OpaqueValue    string
	MenuValue      string

	SSOValue struct {
		Provider string
	}

	AddressValue struct {
		Street  string
		City    string
		State   string
		Zip     string
		Country string
	}

	OTPValue struct {
		Seed string
	}

	// UnknownValue is an object with none of the known shape keys. Only the
	// incidental keys that may carry a display value are retained.
	UnknownValue struct {
		Incidental map[string]any
	}

	// MalformedValue is an object carrying a known shape key whose payload
	// has the wrong structure.
	MalformedValue struct {
		Key string
	}

	// ScalarValue holds numbers, booleans and arrays.
	ScalarValue struct {
		Raw any
	}
)

func (StringValue) fieldValue()    {}
func (ConcealedValue) fieldValue() {}
func (OpaqueValue) fieldValue()    {}
func (MenuValue) fieldValue()      {}
func (SSOValue) fieldValue()       {}
func (AddressValue) fieldValue()   {}
func (OTPValue) fieldValue()       {}
func (UnknownValue) fieldValue()   {}
func (MalformedValue) fieldValue() {}
func (ScalarValue) fieldValue()    {}

// incidentalKeys are probed in order when a value has an unrecognized shape.
var incidentalKeys = []string{"value", "text", "name", "label"}

// ParseFieldValue classifies a generically decoded JSON value. Objects are
// matched against the known shape keys in a fixed order so values carrying
// more than one key resolve deterministically.
func ParseFieldValue(v any) FieldValue {
	if isFalsy(v) {
		return nil
	}
	switch t := v.(type) {
	case string:
		return StringValue(t)
	case map[string]any:
		return parseObjectValue(t)
	default:
		return ScalarValue{Raw: t}
	}
}

func parseObjectValue(m map[string]any) FieldValue {
	if p, ok := m["concealed"]; ok {
		return stringPayload(p, "concealed", func(s string) FieldValue { return ConcealedValue(s) })
	}
	if p, ok := m["string"]; ok {
		return stringPayload(p, "string", func(s string) FieldValue { return OpaqueValue(s) })
	}
	if p, ok := m["ssoLogin"]; ok {
		sso, isMap := p.(map[string]any)
		if !isMap {
			return MalformedValue{Key: "ssoLogin"}
		}
		return SSOValue{Provider: asString(sso["provider"])}
	}
	if p, ok := m["menu"]; ok {
		return stringPayload(p, "menu", func(s string) FieldValue { return MenuValue(s) })
	}
	if p, ok := m["address"]; ok {
		addr, isMap := p.(map[string]any)
		if !isMap {
			return MalformedValue{Key: "address"}
		}
		return AddressValue{
			Street:  asString(addr["street"]),
			City:    asString(addr["city"]),
			State:   asString(addr["state"]),
			Zip:     asString(addr["zip"]),
			Country: asString(addr["country"]),
		}
	}
	if p, ok := m["totp"]; ok {
		return stringPayload(p, "totp", func(s string) FieldValue { return OTPValue{Seed: s} })
	}

	incidental := make(map[string]any, len(incidentalKeys))
	for _, key := range incidentalKeys {
		if val, ok := m[key]; ok {
			incidental[key] = val
		}
	}
	return UnknownValue{Incidental: incidental}
}

func stringPayload(p any, key string, wrap func(string) FieldValue) FieldValue {
	switch t := p.(type) {
	case string:
		return wrap(t)
	case nil:
		return wrap("")
	case map[string]any, []any:
		return MalformedValue{Key: key}
	default:
		return wrap(scalarText(t))
	}
}
