package apis

import (
	"context"

	"github.com/supakorn-kn/travel-admin/errors"
	"github.com/supakorn-kn/travel-admin/views"
)

type Response struct {
	Result any               `json:"result,omitempty"`
	Error  *errors.BaseError `json:"error,omitempty"`
}

// Lists finds an admin list by its URL name.
type Lists interface {
	Get(name string) (views.View, error)
}

type Drafts interface {
	Get(ctx context.Context, key string) (map[string]any, error)
	Save(ctx context.Context, key string, draft map[string]any) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

var OKResponse = Response{Result: map[string]any{"status": "OK"}}
