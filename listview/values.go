package listview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

const ExportDateLayout = "2006-01-02 15:04"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func isMissing(value any) bool {

	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	}

	return false
}

func deref(value any) any {

	if isMissing(value) {
		return nil
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	return v.Interface()
}

// parseDate reads the date formats the travel API emits. Times without a
// zone are taken as UTC.
func parseDate(value any) (time.Time, bool) {

	switch v := deref(value).(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return time.Time{}, false
		}

		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, text); err == nil {
				return parsed, true
			}
		}
	}

	return time.Time{}, false
}

// epochOf is the sort key of a date field. Missing and unparseable dates
// sort as the epoch.
func epochOf(value any) int64 {

	parsed, ok := parseDate(value)
	if !ok {
		return 0
	}

	return parsed.UnixMilli()
}

func numberOf(value any) float64 {

	switch v := deref(value).(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// textOf renders a scalar or a slice of scalars as display text.
func textOf(value any) string {

	value = deref(value)
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.UTC().Format(ExportDateLayout)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Slice, reflect.Array:
		return strings.Join(elementsOf(value), ", ")
	default:
		return jsonText(value)
	}
}

func elementsOf(value any) []string {

	value = deref(value)
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []string{textOf(value)}
	}

	elements := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elements = append(elements, textOf(rv.Index(i).Interface()))
	}

	return elements
}

func jsonText(value any) string {

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return fmt.Sprint(value)
	}

	return strings.TrimSuffix(buf.String(), "\n")
}
