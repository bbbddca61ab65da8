package listview

import (
	"fmt"
	"slices"

	serverError "github.com/supakorn-kn/travel-admin/errors"
)

const (
	DefaultPageSize  = 10
	DefaultDelimiter = ","
)

// Config is everything that differs between two admin lists.
type Config[T Item] struct {
	// Name identifies the list in URLs, logs and persisted state.
	Name   string
	Fields []Field[T]

	SearchFields []string
	// SortFields limits sorting to the named fields. Empty allows every
	// field except objects.
	SortFields []string
	// ExportFields is used when an export asks for no fields. Empty means
	// every field in declaration order.
	ExportFields []string

	DefaultSortField string
	DefaultSortOrder SortOrder

	PageSize  int
	Delimiter string
}

func (c Config[T]) withDefaults() Config[T] {

	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}

	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}

	if c.DefaultSortOrder == "" {
		c.DefaultSortOrder = SortAsc
	}

	if c.DefaultSortField == "" && len(c.Fields) > 0 {
		c.DefaultSortField = c.Fields[0].Name
	}

	return c
}

func (c Config[T]) validate() (map[string]Field[T], error) {

	if c.Name == "" {
		return nil, fmt.Errorf("list name must not be empty")
	}

	if c.PageSize < 1 {
		return nil, serverError.PageSizeInvalidError.New(c.PageSize)
	}

	if !c.DefaultSortOrder.valid() {
		return nil, serverError.SortOrderInvalidError.New(c.DefaultSortOrder)
	}

	fields := make(map[string]Field[T], len(c.Fields))
	for _, field := range c.Fields {

		if field.Name == "" || field.Value == nil {
			return nil, fmt.Errorf("list %s: field must have a name and a value accessor", c.Name)
		}

		if _, ok := fields[field.Name]; ok {
			return nil, fmt.Errorf("list %s: field %s is declared twice", c.Name, field.Name)
		}

		fields[field.Name] = field
	}

	for _, name := range slices.Concat(c.SearchFields, c.ExportFields) {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("list %s: field %s is not declared", c.Name, name)
		}
	}

	for _, name := range c.SortFields {
		field, ok := fields[name]
		if !ok || !field.sortable() {
			return nil, fmt.Errorf("list %s: field %s can not be sorted", c.Name, name)
		}
	}

	if !c.canSortBy(fields, c.DefaultSortField) {
		return nil, fmt.Errorf("list %s: default sort field %s can not be sorted", c.Name, c.DefaultSortField)
	}

	return fields, nil
}

func (c Config[T]) canSortBy(fields map[string]Field[T], name string) bool {

	field, ok := fields[name]
	if !ok || !field.sortable() {
		return false
	}

	return len(c.SortFields) == 0 || slices.Contains(c.SortFields, name)
}

func (c Config[T]) searchFields(fields map[string]Field[T]) []Field[T] {

	searchFields := make([]Field[T], 0, len(c.SearchFields))
	for _, name := range c.SearchFields {
		searchFields = append(searchFields, fields[name])
	}

	return searchFields
}

func (c Config[T]) exportFieldNames() []string {

	if len(c.ExportFields) > 0 {
		return c.ExportFields
	}

	names := make([]string, 0, len(c.Fields))
	for _, field := range c.Fields {
		names = append(names, field.Name)
	}

	return names
}
