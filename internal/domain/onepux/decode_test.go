package onepux

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDecodesWronglyTypedItemsWithoutFailing(t *testing.T) {
	tests := []struct {
		name string
		bad  string
		want Row
	}{
		{
			name: "numeric login value",
			bad:  `{"overview": {"title": "Bad"}, "details": {"loginFields": [{"designation": "password", "value": 1234}]}}`,
			want: Row{Title: "Bad", Password: "1234"},
		},
		{
			name: "numeric title",
			bad:  `{"overview": {"title": 42}}`,
			want: Row{Title: "42"},
		},
		{
			name: "mixed tags",
			bad:  `{"overview": {"title": "Bad", "tags": ["a", 7, {"x": 1}]}}`,
			want: Row{Title: "Bad", Notes: "標籤: a, 7"},
		},
		{
			name: "object notes",
			bad:  `{"overview": {"title": "Bad"}, "details": {"notesPlain": {"x": 1}}}`,
			want: Row{Title: "Bad"},
		},
		{
			name: "wrong container types",
			bad:  `{"overview": {"title": "Bad", "urls": "https://x", "url": ["y"]}, "details": {"loginFields": {"a": 1}, "sections": [5, {"title": 3, "fields": [null, {"id": 9, "title": "T", "value": "v"}]}], "passwordHistory": 3}}`,
			want: Row{Title: "Bad", Notes: "額外資訊:\n  - 3 - T: v"},
		},
		{
			name: "item is not an object",
			bad:  `"nonsense"`,
			want: Row{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"accounts": [{"vaults": [{"items": [` +
				`{"overview": {"title": "Good"}, "details": {"loginFields": [{"designation": "username", "value": "alice"}]}},` +
				tt.bad + `]}]}]}`

			var export Export
			require.NoError(t, json.Unmarshal([]byte(doc), &export))

			items := export.Accounts[0].Vaults[0].Items
			require.Len(t, items, 2)
			assert.Equal(t, Row{Title: "Good", Username: "alice"}, BuildRow(items[0]))
			assert.Equal(t, tt.want, BuildRow(items[1]))
		})
	}
}

func TestSectionFieldKeepsLargeIntegersExact(t *testing.T) {
	var f SectionField
	require.NoError(t, json.Unmarshal([]byte(`{"id": "n", "value": 12345678901234567890}`), &f))
	got, ok := FormatFieldValue(f.Value)
	assert.True(t, ok)
	assert.Equal(t, "12345678901234567890", got)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "n", "value": {"name": 9007199254740993}}`), &f))
	got, ok = FormatFieldValue(f.Value)
	assert.True(t, ok)
	assert.Equal(t, "9007199254740993", got)
}

func TestItemDecodesNumericZeroAsAbsentFieldValue(t *testing.T) {
	var f SectionField
	require.NoError(t, json.Unmarshal([]byte(`{"id": "z", "value": 0}`), &f))
	assert.Nil(t, f.Value)
}
