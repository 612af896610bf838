package onepux

import (
	"bytes"
	"encoding/json"
)

// decodeAny decodes into generic values, keeping numbers as json.Number so
// large integers render exactly.
func decodeAny(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func itemFromAny(v any) Item {
	m := asMap(v)
	overview := asMap(m["overview"])
	details := asMap(m["details"])

	return Item{
		UUID:  asString(m["uuid"]),
		State: asString(m["state"]),
		Overview: Overview{
			Title: asString(overview["title"]),
			URL:   asString(overview["url"]),
			URLs:  urlEntriesFromAny(overview["urls"]),
			Tags:  stringsFromAny(overview["tags"]),
		},
		Details: Details{
			NotesPlain:      asString(details["notesPlain"]),
			LoginFields:     loginFieldsFromAny(details["loginFields"]),
			Sections:        sectionsFromAny(details["sections"]),
			PasswordHistory: asSlice(details["passwordHistory"]),
		},
	}
}

func urlEntriesFromAny(v any) []URLEntry {
	var out []URLEntry
	for _, e := range asSlice(v) {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, URLEntry{URL: asString(m["url"]), Label: asString(m["label"])})
	}
	return out
}

func stringsFromAny(v any) []string {
	var out []string
	for _, e := range asSlice(v) {
		if s := asString(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func loginFieldsFromAny(v any) []LoginField {
	var out []LoginField
	for _, e := range asSlice(v) {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, LoginField{
			Designation: asString(m["designation"]),
			Name:        asString(m["name"]),
			Value:       asString(m["value"]),
		})
	}
	return out
}

func sectionsFromAny(v any) []Section {
	var out []Section
	for _, e := range asSlice(v) {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		section := Section{Title: asString(m["title"])}
		for _, f := range asSlice(m["fields"]) {
			if _, ok := f.(map[string]any); !ok {
				continue
			}
			section.Fields = append(section.Fields, sectionFieldFromAny(f))
		}
		out = append(out, section)
	}
	return out
}

func sectionFieldFromAny(v any) SectionField {
	m := asMap(v)
	return SectionField{
		ID:    asString(m["id"]),
		Title: asString(m["title"]),
		Value: ParseFieldValue(m["value"]),
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}
