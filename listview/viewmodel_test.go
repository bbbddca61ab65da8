package listview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	serverError "github.com/supakorn-kn/travel-admin/errors"
)

type memoryStateStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func (s *memoryStateStore) Get(_ context.Context, key string, out any) (bool, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.values[key]
	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(b, out)
}

func (s *memoryStateStore) Set(_ context.Context, key string, value any) error {

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = map[string][]byte{}
	}
	s.values[key] = b

	return nil
}

type ListViewModelTestSuite struct {
	suite.Suite
	ctx context.Context

	records   []trip
	fetchErr  error
	deleteErr error
	deleted   []string
}

func (s *ListViewModelTestSuite) SetupTest() {

	s.ctx = context.Background()
	s.records = []trip{
		{ID: 1, Name: "Amit", Date: "2024-01-05"},
		{ID: 2, Name: "Bina", Date: "2024-03-01"},
	}
	s.fetchErr = nil
	s.deleteErr = nil
	s.deleted = nil
}

func (s *ListViewModelTestSuite) source() Source[trip] {
	return SourceFunc[trip]{
		Fetch: func(context.Context) ([]trip, error) {
			if s.fetchErr != nil {
				return nil, s.fetchErr
			}
			return s.records, nil
		},
		Delete: func(_ context.Context, itemID string) error {
			if s.deleteErr != nil {
				return s.deleteErr
			}
			s.deleted = append(s.deleted, itemID)
			return nil
		},
	}
}

func tripConfig() Config[trip] {
	return Config[trip]{
		Name:             "trips",
		Fields:           tripFields(),
		SearchFields:     []string{"name", "tags"},
		ExportFields:     []string{"id", "name", "date"},
		DefaultSortField: "date",
		DefaultSortOrder: SortDesc,
		PageSize:         10,
	}
}

func (s *ListViewModelTestSuite) newModel(opts ...Option[trip]) *ListViewModel[trip] {

	m, err := New(s.ctx, tripConfig(), s.source(), opts...)
	s.Require().NoError(err)
	s.Require().NoError(m.Load(s.ctx))

	return m
}

func (s *ListViewModelTestSuite) TestNew() {

	s.Run("Should reject non-positive page size", func() {

		cfg := tripConfig()
		cfg.PageSize = -1

		_, err := New(s.ctx, cfg, s.source())
		s.ErrorIs(err, serverError.PageSizeInvalidError)
	})

	s.Run("Should reject unknown search field", func() {

		cfg := tripConfig()
		cfg.SearchFields = []string{"nope"}

		_, err := New(s.ctx, cfg, s.source())
		s.Error(err)
	})

	s.Run("Should reject object field as default sort", func() {

		cfg := tripConfig()
		cfg.DefaultSortField = "meta"

		_, err := New(s.ctx, cfg, s.source())
		s.Error(err)
	})

	s.Run("Should start on page 1 with default sort", func() {

		m, err := New(s.ctx, tripConfig(), s.source())
		s.Require().NoError(err)

		s.Equal(ViewState{SortField: "date", SortOrder: SortDesc, CurrentPage: 1, PageSize: 10}, m.View())
		s.Equal(StatusIdle, m.Status())
		s.Empty(m.Snapshot().Data)
	})
}

func (s *ListViewModelTestSuite) TestScenario() {

	m := s.newModel()

	s.Run("Should sort by date descending", func() {
		s.Require().NoError(m.SetSort("date", SortDesc))
		s.Equal([]int{2, 1}, idsOf(m.Filtered()))
	})

	s.Run("Should filter by search term", func() {
		m.SetSearchTerm("ami")
		s.Equal([]int{1}, idsOf(m.Filtered()))
	})

	s.Run("Should page the unfiltered sorted collection", func() {

		m.ClearSearch()
		s.Require().NoError(m.SetPageSize(1))
		s.Require().True(m.SetPage(2))

		s.Equal([]int{1}, idsOf(m.CurrentPage()))
	})
}

func (s *ListViewModelTestSuite) TestSetSort() {

	m := s.newModel()

	s.Run("Should toggle order when sorting by the same field", func() {

		s.Require().NoError(m.SetSort("date", ""))
		s.Equal(SortAsc, m.View().SortOrder)
		s.Equal([]int{1, 2}, idsOf(m.Filtered()))

		m.ToggleSortOrder()
		s.Equal(SortDesc, m.View().SortOrder)
	})

	s.Run("Should reset to default order for another field", func() {

		s.Require().NoError(m.SetSort("name", ""))
		s.Equal(ViewState{SortField: "name", SortOrder: SortDesc, CurrentPage: 1, PageSize: 10}, m.View())
		s.Equal([]int{2, 1}, idsOf(m.Filtered()))
	})

	s.Run("Should not reset the page", func() {

		s.Require().NoError(m.SetPageSize(1))
		s.Require().True(m.SetPage(2))
		s.Require().NoError(m.SetSort("id", SortAsc))

		s.Equal(2, m.View().CurrentPage)
		s.Equal([]int{2}, idsOf(m.CurrentPage()))
	})

	s.Run("Should reject unknown and object fields", func() {
		s.ErrorIs(m.SetSort("nope", ""), serverError.SortFieldInvalidError)
		s.ErrorIs(m.SetSort("meta", ""), serverError.SortFieldInvalidError)
	})

	s.Run("Should reject invalid order", func() {
		s.ErrorIs(m.SetSort("name", "sideways"), serverError.SortOrderInvalidError)
	})
}

func (s *ListViewModelTestSuite) TestPaging() {

	gofakeit.Seed(3)
	s.records = fakeTrips(25)
	m := s.newModel()

	s.Run("Should stay on page 1 when going back from page 1", func() {
		s.False(m.PreviousPage())
		s.Equal(1, m.View().CurrentPage)
	})

	s.Run("Should stay on the last page when going forward from it", func() {

		s.True(m.NextPage())
		s.True(m.NextPage())
		s.False(m.NextPage())
		s.Equal(3, m.View().CurrentPage)
		s.Len(m.CurrentPage(), 5)
	})

	s.Run("Should ignore out of range pages", func() {
		s.False(m.SetPage(0))
		s.False(m.SetPage(4))
		s.Equal(3, m.View().CurrentPage)
	})

	s.Run("Should reset page when search changes", func() {
		m.SetSearchTerm("")
		s.Equal(1, m.View().CurrentPage)
	})

	s.Run("Should clamp page when records shrink", func() {

		s.Require().True(m.SetPage(3))
		m.SetRecords(s.records[:4])

		s.Equal(1, m.View().CurrentPage)
		s.Len(m.CurrentPage(), 4)
	})

	s.Run("Should describe the page", func() {

		m.SetRecords(s.records)
		s.Require().True(m.SetPage(2))

		page := m.Snapshot()
		s.Equal(2, page.Page)
		s.Equal(3, page.TotalPages)
		s.Equal(25, page.Count)
		s.Equal(25, page.Total)
		s.Equal(10, page.StartIndex)
		s.Equal(20, page.EndIndex)
		s.Equal([]int{1, 2, 3}, page.Pages)
		s.Len(page.Data, 10)
	})
}

func (s *ListViewModelTestSuite) TestLoad() {

	s.Run("Should keep prior records when fetching fails", func() {

		m := s.newModel()
		s.fetchErr = errors.New("connection refused")

		err := m.Load(s.ctx)
		s.ErrorIs(err, serverError.FetchFailedError)
		s.ErrorContains(err, "connection refused")

		s.Equal(StatusError, m.Status())
		s.Len(m.Records(), 2)

		notices := m.Notices()
		s.Require().Len(notices, 1)
		s.Equal(FetchFailedNotice, notices[0].Kind)

		s.True(m.Dismiss(notices[0].ID))
		s.False(m.Dismiss(notices[0].ID))
		s.Empty(m.Notices())
	})

	s.Run("Should show nothing when the first fetch fails", func() {

		s.fetchErr = errors.New("timeout")
		m, err := New(s.ctx, tripConfig(), s.source())
		s.Require().NoError(err)

		s.Error(m.Load(s.ctx))
		s.Empty(m.Records())
		s.fetchErr = nil
	})

	s.Run("Should apply only the latest started load", func() {

		started := make(chan struct{})
		release := make(chan struct{})
		var calls atomic.Int32

		source := SourceFunc[trip]{
			Fetch: func(context.Context) ([]trip, error) {
				if calls.Add(1) == 1 {
					close(started)
					<-release
					return []trip{{ID: 100, Name: "stale"}}, nil
				}
				return []trip{{ID: 200, Name: "fresh"}}, nil
			},
		}

		m, err := New(s.ctx, tripConfig(), source)
		s.Require().NoError(err)

		done := make(chan error, 1)
		go func() { done <- m.Load(s.ctx) }()

		<-started
		s.Require().NoError(m.Load(s.ctx))
		close(release)
		s.Require().NoError(<-done)

		s.Equal([]int{200}, idsOf(m.Records()))
		s.Equal(StatusIdle, m.Status())
	})

	s.Run("Should reset expanded flags on reload", func() {

		m := s.newModel()

		expanded, err := m.ToggleExpanded("1")
		s.Require().NoError(err)
		s.True(expanded)

		s.Require().NoError(m.Load(s.ctx))
		row, ok := m.Row("1")
		s.Require().True(ok)
		s.False(row.Expanded)
	})
}

func (s *ListViewModelTestSuite) TestDelete() {

	s.Run("Should remove the record after the source deletes it", func() {

		m := s.newModel()

		s.Require().NoError(m.Delete(s.ctx, "1"))
		s.Equal([]string{"1"}, s.deleted)
		s.Equal([]int{2}, idsOf(m.Records()))
		s.Equal([]int{2}, idsOf(m.Filtered()))
	})

	s.Run("Should keep the record and clear the flag when the source fails", func() {

		m := s.newModel()
		s.deleteErr = errors.New("500 internal server error")

		err := m.Delete(s.ctx, "1")
		s.ErrorIs(err, serverError.DeleteFailedError)

		row, ok := m.Row("1")
		s.Require().True(ok)
		s.False(row.Deleting)
		s.Len(m.Records(), 2)

		notices := m.Notices()
		s.Require().Len(notices, 1)
		s.Equal(DeleteFailedNotice, notices[0].Kind)
	})

	s.Run("Should reject unknown items", func() {

		m := s.newModel()
		s.ErrorIs(m.Delete(s.ctx, "42"), serverError.ObjectIDNotFoundError)
	})

	s.Run("Should reject a second delete while the first is running", func() {

		started := make(chan struct{})
		release := make(chan struct{})

		source := SourceFunc[trip]{
			Fetch: func(context.Context) ([]trip, error) { return s.records, nil },
			Delete: func(context.Context, string) error {
				close(started)
				<-release
				return nil
			},
		}

		m, err := New(s.ctx, tripConfig(), source)
		s.Require().NoError(err)
		s.Require().NoError(m.Load(s.ctx))

		done := make(chan error, 1)
		go func() { done <- m.Delete(s.ctx, "2") }()
		<-started

		s.ErrorIs(m.Delete(s.ctx, "2"), serverError.DeleteInProgressError)

		row, ok := m.Row("2")
		s.Require().True(ok)
		s.True(row.Deleting)

		s.Run("Other rows are not blocked", func() {
			expanded, err := m.ToggleExpanded("1")
			s.NoError(err)
			s.True(expanded)
		})

		s.Run("Reload keeps the deleting flag", func() {
			s.Require().NoError(m.Load(s.ctx))
			row, _ := m.Row("2")
			s.True(row.Deleting)
		})

		close(release)
		s.Require().NoError(<-done)
		s.Equal([]int{1}, idsOf(m.Records()))
	})
}

func (s *ListViewModelTestSuite) TestExportCSV() {

	gofakeit.Seed(5)
	s.records = fakeTrips(30)
	m := s.newModel()

	s.Run("Should export every filtered record, not only the page", func() {

		out, err := m.ExportCSV("id", "name", "date")
		s.Require().NoError(err)

		lines := strings.Split(out, "\n")
		s.Require().Len(lines, 31)
		s.Equal("id,name,date", lines[0])

		for _, line := range lines[1:] {
			tokens := strings.Split(line, ",")
			s.Require().Len(tokens, 3, line)
			for _, token := range tokens {
				s.True(strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`), token)
			}
		}
	})

	s.Run("Should follow the search term", func() {

		name := s.records[0].Name
		m.SetSearchTerm(name)

		out, err := m.ExportCSV()
		s.Require().NoError(err)

		lines := strings.Split(out, "\n")
		s.Equal(len(m.Filtered())+1, len(lines))
		s.Contains(out, name)
	})

	s.Run("Should reject unknown fields", func() {
		_, err := m.ExportCSV("id", "password")
		s.ErrorIs(err, serverError.ExportFieldInvalidError)
	})
}

func (s *ListViewModelTestSuite) TestStateStore() {

	store := &memoryStateStore{}

	s.Run("Should save view changes", func() {

		m := s.newModel(WithStore[trip](store))
		m.SetSearchTerm("bin")
		s.Require().NoError(m.SetSort("name", SortAsc))

		var saved ViewState
		found, err := store.Get(s.ctx, "filter:trips", &saved)
		s.Require().NoError(err)
		s.Require().True(found)
		s.Equal(ViewState{SearchTerm: "bin", SortField: "name", SortOrder: SortAsc, CurrentPage: 1, PageSize: 10}, saved)
	})

	s.Run("Should restore saved view on creation", func() {

		m := s.newModel(WithStore[trip](store))

		view := m.View()
		s.Equal("bin", view.SearchTerm)
		s.Equal("name", view.SortField)
		s.Equal([]int{2}, idsOf(m.Filtered()))
	})

	s.Run("Should ignore a saved sort field that is no longer sortable", func() {

		s.Require().NoError(store.Set(s.ctx, "filter:trips", ViewState{SortField: "meta", SortOrder: SortAsc}))

		m := s.newModel(WithStore[trip](store))
		s.Equal("date", m.View().SortField)
		s.Equal(SortDesc, m.View().SortOrder)
	})
}

func TestListViewModel(t *testing.T) {
	suite.Run(t, new(ListViewModelTestSuite))
}
