package models

import (
	"context"
	"fmt"
	"slices"

	"github.com/supakorn-kn/travel-admin/listview"
	"github.com/supakorn-kn/travel-admin/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionSpec describes how one entity is stored.
type CollectionSpec struct {
	Name      string
	ItemIDKey string
	NumericID bool
	// Properties maps required document keys to their BSON type.
	Properties map[string]string
}

var (
	BookingsCollection = CollectionSpec{
		Name:      "bookings",
		ItemIDKey: "email",
		Properties: map[string]string{
			"email":       "string",
			"name":        "string",
			"travel_date": "string",
		},
	}
	ContactsCollection = CollectionSpec{
		Name:      "contacts",
		ItemIDKey: "id",
		Properties: map[string]string{
			"id":    "string",
			"email": "string",
		},
	}
	EnquiriesCollection = CollectionSpec{
		Name:      "enquiries",
		ItemIDKey: "id",
		NumericID: true,
		Properties: map[string]string{
			"id":    "int",
			"email": "string",
		},
	}
	TripLeadsCollection = CollectionSpec{
		Name:      "trip_leads",
		ItemIDKey: "id",
		NumericID: true,
		Properties: map[string]string{
			"id":        "int",
			"full_name": "string",
			"email":     "string",
		},
	}
	UsersCollection = CollectionSpec{
		Name:      "users",
		ItemIDKey: "id",
		NumericID: true,
		Properties: map[string]string{
			"id":    "int",
			"email": "string",
		},
	}
	DestinationsCollection = CollectionSpec{
		Name:      "destinations",
		ItemIDKey: "id",
		NumericID: true,
		Properties: map[string]string{
			"id":    "int",
			"title": "string",
		},
	}
	LocationsCollection = CollectionSpec{
		Name:      "locations",
		ItemIDKey: "id",
		NumericID: true,
		Properties: map[string]string{
			"id": "int",
		},
	}
	ToursCollection = CollectionSpec{
		Name:      "tours",
		ItemIDKey: "id",
		NumericID: true,
		Properties: map[string]string{
			"id":    "int",
			"title": "string",
		},
	}
)

func (spec CollectionSpec) indexName() string {
	return spec.ItemIDKey + "_1"
}

func (spec CollectionSpec) validator() bson.D {

	required := make([]string, 0, len(spec.Properties))
	properties := bson.M{}
	for key, bsonType := range spec.Properties {

		required = append(required, key)
		properties[key] = bson.M{
			"bsonType":    bsonType,
			"description": fmt.Sprintf("%s must be %s", key, bsonType),
		}
	}

	slices.Sort(required)

	return bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType":   "object",
				"required":   required,
				"properties": properties,
			},
		},
	}
}

// NewModel prepares the collection described by spec and returns a model
// reading and deleting its documents.
func NewModel[T listview.Item](ctx context.Context, conn *mongodb.MongoDBConn, spec CollectionSpec) (*BaseModel[T], error) {

	coll, err := createCollection(ctx, conn, spec)
	if err != nil {
		return nil, err
	}

	if err := createIndexes(ctx, coll, spec); err != nil {
		return nil, err
	}

	model := new(BaseModel[T])
	if err := model.Inject(coll, spec.ItemIDKey, spec.NumericID); err != nil {
		return nil, err
	}

	return model, nil
}

func createCollection(ctx context.Context, conn *mongodb.MongoDBConn, spec CollectionSpec) (*mongo.Collection, error) {

	db := conn.GetDatabase()

	collectionNameList, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	validator := spec.validator()

	if slices.Contains(collectionNameList, spec.Name) {

		cmd := bson.D{
			{Key: "collMod", Value: spec.Name},
			{Key: "validator", Value: validator},
			{Key: "validationLevel", Value: "strict"},
		}

		if err := db.RunCommand(ctx, cmd, options.RunCmd()).Err(); err != nil {
			return nil, err
		}

		return conn.GetCollection(spec.Name), nil
	}

	collectionOptions := options.CreateCollection()
	collectionOptions.SetValidator(validator)
	collectionOptions.SetValidationLevel("strict")

	if err := db.CreateCollection(ctx, spec.Name, collectionOptions); err != nil {
		return nil, err
	}

	return conn.GetCollection(spec.Name), nil
}

func createIndexes(ctx context.Context, coll *mongo.Collection, spec CollectionSpec) error {

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return err
	}

	var indexes []bson.M
	if err := cur.All(ctx, &indexes); err != nil {
		return err
	}

	indexName := spec.indexName()
	contains := slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == indexName
	})

	if contains {
		return nil
	}

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: spec.ItemIDKey, Value: 1}},
		Options: options.Index().SetName(indexName).SetUnique(true),
	}

	_, err = coll.Indexes().CreateOne(ctx, indexModel)
	return err
}
