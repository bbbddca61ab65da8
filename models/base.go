package models

import (
	"context"
	"errors"

	serverError "github.com/supakorn-kn/travel-admin/errors"
	"github.com/supakorn-kn/travel-admin/listview"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseModel stores one entity in one collection. It is the MongoDB Source
// of a list.
type BaseModel[T listview.Item] struct {
	Coll      *mongo.Collection
	ItemIDKey string
	NumericID bool
}

func (m *BaseModel[T]) Inject(coll *mongo.Collection, itemIDKey string, numericID bool) error {

	if itemIDKey == "" {
		return errors.New("ItemIDKey must not be empty")
	}

	m.Coll = coll
	m.ItemIDKey = itemIDKey
	m.NumericID = numericID

	return nil
}

func (m BaseModel[T]) Insert(ctx context.Context, item T) error {

	_, err := m.Coll.InsertOne(ctx, item)
	if err != nil {

		if mongo.IsDuplicateKeyError(err) {
			return serverError.DuplicatedObjectIDError.New(item.GetID())
		}

		return err
	}

	return nil
}

// Seed inserts items one by one. Items whose identity is already stored
// are skipped, so seeding the same data twice changes nothing.
func (m BaseModel[T]) Seed(ctx context.Context, items []T) (inserted int, err error) {

	for _, item := range items {

		err = m.Insert(ctx, item)
		if serverError.IsError(err, serverError.DuplicatedObjectIDError.New(item.GetID())) {
			continue
		}

		if err != nil {
			return inserted, err
		}

		inserted++
	}

	return inserted, nil
}

// FetchAll returns the whole collection ordered by identity.
func (m BaseModel[T]) FetchAll(ctx context.Context) ([]T, error) {

	opts := options.Find().SetSort(bson.D{{Key: m.ItemIDKey, Value: 1}})

	cur, err := m.Coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (m BaseModel[T]) DeleteOne(ctx context.Context, itemID string) error {

	idValue, err := IDValue(itemID, m.NumericID)
	if err != nil {
		return err
	}

	result := m.Coll.FindOneAndDelete(ctx, EqualMatchBson(m.ItemIDKey, idValue))
	if err := result.Err(); err != nil {

		if errors.Is(err, mongo.ErrNoDocuments) {
			return serverError.ObjectIDNotFoundError.New(itemID)
		}

		return err
	}

	return nil
}
