// Package views builds the admin lists of the travel agency and keeps them
// addressable by name.
package views

import (
	"context"
	"log/slog"
	"time"

	serverError "github.com/supakorn-kn/travel-admin/errors"
	"github.com/supakorn-kn/travel-admin/listview"
	"golang.org/x/sync/errgroup"
)

const loadConcurrency = 4

// Query is one request against a list. Steps run as search, sort, page.
// Repeating a query gives the same page: a sort field without an order
// keeps the current order, or takes the default one for a new field.
type Query struct {
	Search *string
	Sort   string
	Order  listview.SortOrder
	Page   int
}

// View is a list with its record type erased so lists of every entity can
// sit in one registry.
type View interface {
	Name() string
	Load(ctx context.Context) error
	Query(q Query) (any, error)
	// SetSort with an empty order toggles the order of the current field.
	SetSort(field string, order listview.SortOrder) error
	Delete(ctx context.Context, itemID string) error
	ToggleExpanded(itemID string) (bool, error)
	ExportCSV(fieldNames ...string) (string, error)
	Notices() []listview.Notice
	Dismiss(noticeID int) bool
}

type view[T listview.Item] struct {
	*listview.ListViewModel[T]
}

func (v view[T]) Query(q Query) (any, error) {

	if q.Search != nil {
		v.SetSearchTerm(*q.Search)
	}

	if q.Sort != "" || q.Order != "" {

		current := v.View()

		field, order := q.Sort, q.Order
		if field == "" {
			field = current.SortField
		}
		if order == "" && field == current.SortField {
			order = current.SortOrder
		}

		if err := v.SetSort(field, order); err != nil {
			return nil, err
		}
	}

	if q.Page > 0 {
		v.SetPage(q.Page)
	}

	return v.Snapshot(), nil
}

// Settings are shared by every list of a registry.
type Settings struct {
	PageSize  int
	Delimiter string
	Store     listview.StateStore
	Logger    *slog.Logger
}

type Registry struct {
	views map[string]View
	names []string
}

func NewRegistry() *Registry {
	return &Registry{views: map[string]View{}}
}

func (r *Registry) Add(v View) {

	if _, ok := r.views[v.Name()]; !ok {
		r.names = append(r.names, v.Name())
	}

	r.views[v.Name()] = v
}

func (r *Registry) Get(name string) (View, error) {

	v, ok := r.views[name]
	if !ok {
		return nil, serverError.EntityNotFoundError.New(name)
	}

	return v, nil
}

// Names lists the registered lists in the order they were added.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// LoadAll loads every list concurrently. Failures are logged and stay on
// the failing list as a notice; they do not stop other lists.
func (r *Registry) LoadAll(ctx context.Context) {

	var g errgroup.Group
	g.SetLimit(loadConcurrency)

	for _, name := range r.names {

		v := r.views[name]
		g.Go(func() error {

			started := time.Now()
			if err := v.Load(ctx); err != nil {
				slog.Warn("Initial load failed", "list", v.Name(), "error", err)
				return nil
			}

			slog.Info("List ready", "list", v.Name(), "duration", time.Since(started))
			return nil
		})
	}

	_ = g.Wait()
}

func register[T listview.Item](ctx context.Context, r *Registry, cfg listview.Config[T], source listview.Source[T], settings Settings) error {

	cfg.PageSize = settings.PageSize
	cfg.Delimiter = settings.Delimiter

	opts := []listview.Option[T]{}
	if settings.Store != nil {
		opts = append(opts, listview.WithStore[T](settings.Store))
	}
	if settings.Logger != nil {
		opts = append(opts, listview.WithLogger[T](settings.Logger))
	}

	model, err := listview.New(ctx, cfg, source, opts...)
	if err != nil {
		return err
	}

	r.Add(view[T]{model})
	return nil
}

// New builds all eight admin lists over sources.
func New(ctx context.Context, sources Sources, settings Settings) (*Registry, error) {

	r := NewRegistry()

	steps := []func() error{
		func() error { return register(ctx, r, BookingsConfig(), sources.Bookings, settings) },
		func() error { return register(ctx, r, EnquiriesConfig(), sources.Enquiries, settings) },
		func() error { return register(ctx, r, ContactsConfig(), sources.Contacts, settings) },
		func() error { return register(ctx, r, TripLeadsConfig(), sources.TripLeads, settings) },
		func() error { return register(ctx, r, UsersConfig(), sources.Users, settings) },
		func() error { return register(ctx, r, DestinationsConfig(), sources.Destinations, settings) },
		func() error { return register(ctx, r, LocationsConfig(), sources.Locations, settings) },
		func() error { return register(ctx, r, ToursConfig(), sources.Tours, settings) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	return r, nil
}
