// Package listview keeps the in-memory state behind an admin list screen:
// the loaded records, the search/sort/page view over them, per-row UI flags
// and CSV export of the filtered collection.
package listview

import "context"

type Item interface {
	GetID() string
}

// Source is the remote side of a list: it loads the whole collection and
// deletes single records by identity.
type Source[T Item] interface {
	FetchAll(ctx context.Context) ([]T, error)
	DeleteOne(ctx context.Context, itemID string) error
}

// StateStore persists small JSON values under a key.
type StateStore interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// SourceFunc adapts two plain functions to a Source.
type SourceFunc[T Item] struct {
	Fetch  func(ctx context.Context) ([]T, error)
	Delete func(ctx context.Context, itemID string) error
}

func (s SourceFunc[T]) FetchAll(ctx context.Context) ([]T, error) {
	return s.Fetch(ctx)
}

func (s SourceFunc[T]) DeleteOne(ctx context.Context, itemID string) error {
	return s.Delete(ctx, itemID)
}
