package state

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	serverError "github.com/supakorn-kn/travel-admin/errors"
)

// DraftKeys are the form drafts an admin can keep between sessions.
var DraftKeys = []string{"enquiry", "booking", "filter", "tour", "destination"}

const draftKeyRule = "required,oneof=enquiry booking filter tour destination"

const draftKeyPrefix = "draft:"

// Drafts stores one JSON object per draft key.
type Drafts struct {
	store    Store
	validate *validator.Validate
}

func NewDrafts(store Store) *Drafts {
	return &Drafts{store: store, validate: validator.New()}
}

func (d *Drafts) checkKey(key string) error {

	if err := d.validate.Var(key, draftKeyRule); err != nil {
		return serverError.DraftKeyInvalidError.Wrap(err, key)
	}

	return nil
}

// Get returns the saved draft. A missing or unreadable draft is an empty
// object.
func (d *Drafts) Get(ctx context.Context, key string) (map[string]any, error) {

	if err := d.checkKey(key); err != nil {
		return nil, err
	}

	draft := map[string]any{}
	found, err := d.store.Get(ctx, draftKeyPrefix+key, &draft)
	if err != nil {

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
			return nil, err
		}

		slog.Warn("Draft is corrupt, using empty draft", "key", key, "error", err)
		return map[string]any{}, nil
	}

	if !found || draft == nil {
		return map[string]any{}, nil
	}

	return draft, nil
}

func (d *Drafts) Save(ctx context.Context, key string, draft map[string]any) error {

	if err := d.checkKey(key); err != nil {
		return err
	}

	if draft == nil {
		draft = map[string]any{}
	}

	return d.store.Set(ctx, draftKeyPrefix+key, draft)
}

func (d *Drafts) Remove(ctx context.Context, key string) error {

	if err := d.checkKey(key); err != nil {
		return err
	}

	return d.store.Delete(ctx, draftKeyPrefix+key)
}

// Clear removes every draft.
func (d *Drafts) Clear(ctx context.Context) error {

	for _, key := range DraftKeys {
		if err := d.store.Delete(ctx, draftKeyPrefix+key); err != nil {
			return err
		}
	}

	return nil
}
