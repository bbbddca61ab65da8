package listview

import (
	"strings"
)

func exportValue[T Item](field Field[T], item T) string {

	if field.Export != nil {
		return field.Export(item)
	}

	value := field.Value(item)
	if isMissing(value) {
		return ""
	}

	switch field.Type {
	case DateField:
		if parsed, ok := parseDate(value); ok {
			return parsed.UTC().Format(ExportDateLayout)
		}
		return textOf(value)
	case ListField, ObjectField:
		if text, ok := deref(value).(string); ok {
			return text
		}
		return jsonText(deref(value))
	default:
		return textOf(value)
	}
}

// writeCSV renders a header of the literal field names and one row per
// item with every value wrapped in double quotes. Quotes and delimiters
// inside values are written as they are.
func writeCSV[T Item](items []T, fields []Field[T], delimiter string) string {

	var b strings.Builder

	for i, field := range fields {
		if i > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(field.Name)
	}

	for _, item := range items {

		b.WriteByte('\n')
		for i, field := range fields {
			if i > 0 {
				b.WriteString(delimiter)
			}
			b.WriteByte('"')
			b.WriteString(exportValue(field, item))
			b.WriteByte('"')
		}
	}

	return b.String()
}
