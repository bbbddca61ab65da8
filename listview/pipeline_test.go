package listview

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trip struct {
	ID     int
	Name   string
	Date   string
	Price  float64
	Tags   []string
	Active bool
	Meta   map[string]any
}

func (t trip) GetID() string {
	return fmt.Sprintf("%d", t.ID)
}

func tripFields() []Field[trip] {
	return []Field[trip]{
		Number("id", func(t trip) float64 { return float64(t.ID) }),
		Text("name", func(t trip) string { return t.Name }),
		Date("date", func(t trip) string { return t.Date }),
		Number("price", func(t trip) float64 { return t.Price }),
		List("tags", func(t trip) []string { return t.Tags }),
		Bool("active", func(t trip) bool { return t.Active }),
		Object("meta", func(t trip) any { return t.Meta }),
	}
}

func fieldNamed(name string) Field[trip] {

	for _, field := range tripFields() {
		if field.Name == name {
			return field
		}
	}

	panic("unknown field " + name)
}

func idsOf(items []trip) []int {

	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	return ids
}

func fixedDate(value string) time.Time {

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func fakeTrips(n int) []trip {

	trips := make([]trip, 0, n)
	for i := 1; i <= n; i++ {
		trips = append(trips, trip{
			ID:    i,
			Name:  gofakeit.Name(),
			Date:  gofakeit.DateRange(fixedDate("2020-01-01"), fixedDate("2026-01-01")).Format("2006-01-02"),
			Price: float64(gofakeit.Number(1, 20)) * 100,
			Tags:  []string{gofakeit.City(), gofakeit.Country()},
		})
	}

	return trips
}

func TestFilterItems(t *testing.T) {

	searchFields := []Field[trip]{fieldNamed("name"), fieldNamed("tags")}
	trips := []trip{
		{ID: 1, Name: "Amit", Tags: []string{"Goa"}},
		{ID: 2, Name: "Bina", Tags: []string{"Manali", "Shimla"}},
		{ID: 3, Name: "Chetan"},
	}

	t.Run("Should match every record with empty or blank term", func(t *testing.T) {
		assert.Equal(t, trips, filterItems(trips, "", searchFields))
		assert.Equal(t, trips, filterItems(trips, "   ", searchFields))
	})

	t.Run("Should match substring ignoring case", func(t *testing.T) {
		assert.Equal(t, []int{1}, idsOf(filterItems(trips, "ami", searchFields)))
		assert.Equal(t, []int{1}, idsOf(filterItems(trips, "AMIT", searchFields)))
	})

	t.Run("Should match any element of a list field", func(t *testing.T) {
		assert.Equal(t, []int{2}, idsOf(filterItems(trips, "shim", searchFields)))
	})

	t.Run("Should return nothing when no field contains the term", func(t *testing.T) {
		assert.Empty(t, filterItems(trips, "zanzibar", searchFields))
	})

	t.Run("Should return a subset whose every element matches", func(t *testing.T) {

		gofakeit.Seed(11)
		items := fakeTrips(200)
		term := "an"

		filtered := filterItems(items, term, searchFields)
		for _, item := range filtered {
			assert.True(t, matches(item, fold(term), searchFields))
			assert.Contains(t, items, item)
		}

		for _, item := range items {
			if matches(item, fold(term), searchFields) {
				assert.Contains(t, filtered, item)
			}
		}
	})
}

func TestSortItems(t *testing.T) {

	t.Run("Should sort dates by time and missing dates as epoch", func(t *testing.T) {

		items := []trip{
			{ID: 1, Date: "2024-01-05"},
			{ID: 2, Date: "2024-03-01T10:00:00Z"},
			{ID: 3, Date: ""},
			{ID: 4, Date: "not a date"},
			{ID: 5, Date: "1969-12-31"},
		}

		sortItems(items, fieldNamed("date"), SortAsc)
		assert.Equal(t, []int{5, 3, 4, 1, 2}, idsOf(items))

		sortItems(items, fieldNamed("date"), SortDesc)
		assert.Equal(t, []int{2, 1, 3, 4, 5}, idsOf(items))
	})

	t.Run("Should sort numbers numerically", func(t *testing.T) {

		items := []trip{{ID: 1, Price: 100}, {ID: 2, Price: 20}, {ID: 3, Price: 3}}

		sortItems(items, fieldNamed("price"), SortAsc)
		assert.Equal(t, []int{3, 2, 1}, idsOf(items))
	})

	t.Run("Should sort text case-folded and ordinal", func(t *testing.T) {

		items := []trip{{ID: 1, Name: "bina"}, {ID: 2, Name: "Amit"}, {ID: 3, Name: "ámit"}, {ID: 4, Name: "Zoe"}}

		sortItems(items, fieldNamed("name"), SortAsc)
		assert.Equal(t, []int{2, 1, 4, 3}, idsOf(items))
	})

	t.Run("Should keep collection order of equal items in both directions", func(t *testing.T) {

		gofakeit.Seed(7)
		items := fakeTrips(100)
		for i := range items {
			items[i].Price = float64(i % 3)
		}

		for _, order := range []SortOrder{SortAsc, SortDesc} {

			sorted := slices.Clone(items)
			sortItems(sorted, fieldNamed("price"), order)

			for price := 0.0; price < 3; price++ {

				var got, want []int
				for _, item := range sorted {
					if item.Price == price {
						got = append(got, item.ID)
					}
				}
				for _, item := range items {
					if item.Price == price {
						want = append(want, item.ID)
					}
				}

				assert.Equal(t, want, got, "order %s, price %v", order, price)
			}
		}
	})
}

func TestPaginate(t *testing.T) {

	t.Run("Should rebuild the collection from all pages", func(t *testing.T) {

		items := fakeTrips(23)
		for _, pageSize := range []int{1, 5, 10, 23, 50} {

			var rebuilt []trip
			pages := lastPage(len(items), pageSize)
			for page := 1; page <= pages; page++ {

				chunk := paginate(items, page, pageSize)
				require.LessOrEqual(t, len(chunk), pageSize)
				rebuilt = append(rebuilt, chunk...)
			}

			assert.Equal(t, items, rebuilt, "page size %d", pageSize)
		}
	})

	t.Run("Should return empty page beyond the last page", func(t *testing.T) {
		assert.Empty(t, paginate(fakeTrips(3), 2, 5))
	})

	t.Run("Should count pages and clamp", func(t *testing.T) {

		assert.Equal(t, 0, totalPages(0, 10))
		assert.Equal(t, 1, totalPages(10, 10))
		assert.Equal(t, 2, totalPages(11, 10))

		assert.Equal(t, 1, clampPage(5, 0, 10))
		assert.Equal(t, 1, clampPage(-1, 30, 10))
		assert.Equal(t, 3, clampPage(9, 30, 10))
	})

	t.Run("Should window at most five page numbers around current page", func(t *testing.T) {

		assert.Equal(t, []int{1, 2, 3}, pageWindow(1, 3, 5))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, pageWindow(2, 9, 5))
		assert.Equal(t, []int{3, 4, 5, 6, 7}, pageWindow(5, 9, 5))
		assert.Equal(t, []int{5, 6, 7, 8, 9}, pageWindow(9, 9, 5))
		assert.Empty(t, pageWindow(1, 0, 5))
	})
}

func TestWriteCSV(t *testing.T) {

	items := []trip{
		{ID: 1, Name: "Amit", Date: "2024-01-05T09:30:00Z", Tags: []string{"Goa", "Pune"}, Active: true},
		{ID: 2, Name: `Bina "B"`, Date: "", Meta: map[string]any{"seats": 2}},
	}

	t.Run("Should write header and quoted rows", func(t *testing.T) {

		fields := []Field[trip]{fieldNamed("id"), fieldNamed("name"), fieldNamed("date"), fieldNamed("active")}
		out := writeCSV(items, fields, ",")

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "id,name,date,active", lines[0])
		assert.Equal(t, `"1","Amit","2024-01-05 09:30","true"`, lines[1])
		assert.Equal(t, `"2","Bina "B"","","false"`, lines[2])
	})

	t.Run("Should write lists and objects as JSON and nil as empty", func(t *testing.T) {

		fields := []Field[trip]{fieldNamed("tags"), fieldNamed("meta")}
		lines := strings.Split(writeCSV(items, fields, ";"), "\n")

		require.Len(t, lines, 3)
		assert.Equal(t, "tags;meta", lines[0])
		assert.Equal(t, `"["Goa","Pune"]";""`, lines[1])
		assert.Equal(t, `"";"{"seats":2}"`, lines[2])
	})

	t.Run("Should use export override", func(t *testing.T) {

		active := fieldNamed("active").WithExport(func(t trip) string {
			if t.Active {
				return "Yes"
			}
			return "No"
		})

		assert.Equal(t, "active\n\"Yes\"\n\"No\"", writeCSV(items, []Field[trip]{active}, ","))
	})

	t.Run("Should write only the header for no items", func(t *testing.T) {
		assert.Equal(t, "id,name", writeCSV(nil, []Field[trip]{fieldNamed("id"), fieldNamed("name")}, ","))
	})
}
