package listview

type FieldType uint8

const (
	TextField FieldType = iota
	NumberField
	DateField
	BoolField
	// ListField holds a slice of scalars; search matches any element.
	ListField
	// ObjectField holds nested data; it is exported as JSON and never sorted.
	ObjectField
)

func (t FieldType) String() string {

	switch t {
	case TextField:
		return "text"
	case NumberField:
		return "number"
	case DateField:
		return "date"
	case BoolField:
		return "bool"
	case ListField:
		return "list"
	case ObjectField:
		return "object"
	default:
		return "unknown"
	}
}

// Field describes one named column of a record.
type Field[T any] struct {
	Name  string
	Type  FieldType
	Value func(item T) any

	// Export replaces the default text conversion in CSV output.
	Export func(item T) string
}

func Text[T any](name string, value func(item T) string) Field[T] {
	return Field[T]{Name: name, Type: TextField, Value: func(item T) any { return value(item) }}
}

func Number[T any](name string, value func(item T) float64) Field[T] {
	return Field[T]{Name: name, Type: NumberField, Value: func(item T) any { return value(item) }}
}

// Date takes the raw date text as sent by the API. Empty means missing.
func Date[T any](name string, value func(item T) string) Field[T] {
	return Field[T]{Name: name, Type: DateField, Value: func(item T) any { return value(item) }}
}

func Bool[T any](name string, value func(item T) bool) Field[T] {
	return Field[T]{Name: name, Type: BoolField, Value: func(item T) any { return value(item) }}
}

func List[T any, E any](name string, value func(item T) []E) Field[T] {
	return Field[T]{Name: name, Type: ListField, Value: func(item T) any {
		list := value(item)
		if list == nil {
			return nil
		}
		return list
	}}
}

func Object[T any](name string, value func(item T) any) Field[T] {
	return Field[T]{Name: name, Type: ObjectField, Value: value}
}

// WithExport returns a copy of the field with a custom CSV rendering.
func (f Field[T]) WithExport(export func(item T) string) Field[T] {
	f.Export = export
	return f
}

func (f Field[T]) sortable() bool {
	return f.Type != ObjectField
}
