package onepux

import (
	"fmt"
	"strings"
)

const (
	NotesDelimiter = "\n---\n"

	tagsLabel            = "標籤"
	otherFieldsHeader    = "其他欄位:"
	sectionFieldsHeader  = "額外資訊:"
	secondaryURLsHeader  = "其他網址:"
	passwordHistoryLabel = "密碼歷史記錄"
)

// notesBlock produces one block of the notes column, or "" when the item has
// nothing for it.
type notesBlock func(it Item) string

// notesBlocks is the fixed rendering order of the notes column.
var notesBlocks = []notesBlock{
	plainNotesBlock,
	tagsBlock,
	otherLoginFieldsBlock,
	sectionFieldsBlock,
	secondaryURLsBlock,
	passwordHistoryBlock,
}

// BuildNotes assembles everything that does not fit the fixed columns into a
// single text, skipping empty blocks so no stray delimiters appear.
func BuildNotes(it Item) string {
	parts := make([]string, 0, len(notesBlocks))
	for _, block := range notesBlocks {
		if s := block(it); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, NotesDelimiter)
}

func plainNotesBlock(it Item) string {
	return strings.TrimSpace(it.Details.NotesPlain)
}

func tagsBlock(it Item) string {
	if len(it.Overview.Tags) == 0 {
		return ""
	}
	return tagsLabel + ": " + strings.Join(it.Overview.Tags, ", ")
}

func otherLoginFieldsBlock(it Item) string {
	var lines []string
	for _, f := range it.Details.LoginFields {
		if f.Designation == DesignationUsername || f.Designation == DesignationPassword {
			continue
		}
		if f.Value == "" {
			continue
		}
		lines = append(lines, labeled(f.Name, f.Value))
	}
	return bulletList(otherFieldsHeader, lines)
}

func sectionFieldsBlock(it Item) string {
	var lines []string
	for _, section := range it.Details.Sections {
		for _, field := range section.Fields {
			if isOTPField(field) {
				continue
			}
			value, ok := FormatFieldValue(field.Value)
			if !ok || value == "" {
				continue
			}
			switch {
			case section.Title != "" && field.Title != "":
				lines = append(lines, section.Title+" - "+field.Title+": "+value)
			default:
				lines = append(lines, labeled(field.Title, value))
			}
		}
	}
	return bulletList(sectionFieldsHeader, lines)
}

func secondaryURLsBlock(it Item) string {
	if len(it.Overview.URLs) < 2 {
		return ""
	}
	var lines []string
	for _, u := range it.Overview.URLs[1:] {
		if u.URL == "" {
			continue
		}
		lines = append(lines, labeled(u.Label, u.URL))
	}
	return bulletList(secondaryURLsHeader, lines)
}

func passwordHistoryBlock(it Item) string {
	n := len(it.Details.PasswordHistory)
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %d 筆", passwordHistoryLabel, n)
}

func labeled(label, value string) string {
	if label == "" {
		return value
	}
	return label + ": " + value
}

func bulletList(header string, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(header)
	for _, line := range lines {
		b.WriteString("\n  - ")
		b.WriteString(line)
	}
	return b.String()
}
