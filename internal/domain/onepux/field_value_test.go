package onepux

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeValue(t *testing.T, raw string) FieldValue {
	t.Helper()
	var f SectionField
	require.NoError(t, json.Unmarshal([]byte(`{"id":"f","value":`+raw+`}`), &f))
	return f.Value
}

func TestFormatFieldValueShapes(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"plain string", `"hello"`, "hello", true},
		{"concealed", `{"concealed":"s3cret"}`, "s3cret", true},
		{"opaque string", `{"string":"plain"}`, "plain", true},
		{"sso provider", `{"ssoLogin":{"provider":"Google","signInType":"x"}}`, "Google", true},
		{"sso without provider", `{"ssoLogin":{"signInType":"x"}}`, "", false},
		{"sso malformed", `{"ssoLogin":"Google"}`, "", false},
		{"menu", `{"menu":"Option B"}`, "Option B", true},
		{"empty menu", `{"menu":""}`, "", false},
		{"address", `{"address":{"street":"1 Main St","city":"Springfield","state":"IL","zip":"62704","country":"USA"}}`, "1 Main St, Springfield, IL, 62704, USA", true},
		{"address without street", `{"address":{"city":"Springfield","zip":"62704","country":"USA"}}`, "Springfield, 62704, USA", true},
		{"empty address", `{"address":{}}`, "", false},
		{"address malformed", `{"address":"somewhere"}`, "", false},
		{"otp descriptor", `{"totp":"JBSWY3DPEHPK3PXP"}`, "", false},
		{"unknown with value key", `{"email":{"x":1},"value":"a@b.c"}`, "a@b.c", true},
		{"unknown prefers value over label", `{"label":"L","value":"V"}`, "V", true},
		{"unknown skips empty incidental", `{"value":"","text":"T"}`, "T", true},
		{"unknown numeric incidental", `{"name":42}`, "42", true},
		{"unknown nested incidental", `{"value":{"deep":"x"}}`, "", false},
		{"unknown without incidental keys", `{"email":{"email_address":"a@b.c"}}`, "", false},
		{"number", `1720000000`, "1720000000", true},
		{"float", `1.5`, "1.5", true},
		{"true", `true`, "true", true},
		{"array", `["a",{"concealed":"b"}]`, "a, b", true},
		{"null", `null`, "", false},
		{"empty string", `""`, "", false},
		{"empty object", `{}`, "", false},
		{"zero", `0`, "", false},
		{"false", `false`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatFieldValue(decodeValue(t, tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFieldValueUsesFixedShapeOrder(t *testing.T) {
	v := decodeValue(t, `{"menu":"m","concealed":"c","string":"s"}`)
	assert.Equal(t, ConcealedValue("c"), v)

	v = decodeValue(t, `{"menu":"m","address":{"city":"X"}}`)
	assert.Equal(t, MenuValue("m"), v)
}

func TestFormatFieldValueIsIdempotent(t *testing.T) {
	for _, raw := range []string{`"x"`, `{"address":{"street":"s"}}`, `{"ssoLogin":{"provider":"p"}}`, `{"weird":[1,2]}`} {
		v := decodeValue(t, raw)
		first, firstOK := FormatFieldValue(v)
		second, secondOK := FormatFieldValue(v)
		assert.Equal(t, first, second)
		assert.Equal(t, firstOK, secondOK)
	}
}
