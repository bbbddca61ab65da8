package listview

import (
	"cmp"
	"slices"
	"strings"
)

// matches reports whether any search field contains term, ignoring case.
// A blank term matches every record.
func matches[T Item](item T, foldedTerm string, fields []Field[T]) bool {

	if foldedTerm == "" {
		return true
	}

	for _, field := range fields {
		for _, text := range elementsOf(field.Value(item)) {
			if strings.Contains(fold(text), foldedTerm) {
				return true
			}
		}
	}

	return false
}

func filterItems[T Item](items []T, term string, fields []Field[T]) []T {

	var foldedTerm string
	if strings.TrimSpace(term) != "" {
		foldedTerm = fold(term)
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, foldedTerm, fields) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

func compareBy[T Item](field Field[T]) func(a, b T) int {

	switch field.Type {
	case DateField:
		return func(a, b T) int {
			return cmp.Compare(epochOf(field.Value(a)), epochOf(field.Value(b)))
		}
	case NumberField:
		return func(a, b T) int {
			return cmp.Compare(numberOf(field.Value(a)), numberOf(field.Value(b)))
		}
	default:
		return func(a, b T) int {
			return strings.Compare(fold(textOf(field.Value(a))), fold(textOf(field.Value(b))))
		}
	}
}

// sortItems sorts in place and keeps the incoming order of equal items in
// both directions.
func sortItems[T Item](items []T, field Field[T], order SortOrder) {

	compare := compareBy(field)
	if order == SortDesc {
		slices.SortStableFunc(items, func(a, b T) int { return compare(b, a) })
		return
	}

	slices.SortStableFunc(items, compare)
}

func totalPages(count, pageSize int) int {

	pages := count / pageSize
	if count%pageSize > 0 {
		pages++
	}

	return pages
}

func lastPage(count, pageSize int) int {
	return max(1, totalPages(count, pageSize))
}

func clampPage(page, count, pageSize int) int {
	return min(max(page, 1), lastPage(count, pageSize))
}

func paginate[T any](items []T, page, pageSize int) []T {

	start := (page - 1) * pageSize
	if start >= len(items) || start < 0 {
		return []T{}
	}

	end := min(start+pageSize, len(items))
	return items[start:end]
}

// pageWindow lists at most size page numbers around the current page.
func pageWindow(current, total, size int) []int {

	start := max(1, current-size/2)
	end := min(total, start+size-1)
	if end-start+1 < size {
		start = max(1, end-size+1)
	}

	pages := make([]int, 0, size)
	for page := start; page <= end; page++ {
		pages = append(pages, page)
	}

	return pages
}
