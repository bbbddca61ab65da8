package mongodb

import (
	"context"
	"errors"

	"github.com/supakorn-kn/travel-admin/env"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoDBConn struct {
	Client *mongo.Client

	dbName string
	opts   *options.ClientOptions
}

func (db *MongoDBConn) Connect(ctx context.Context) error {

	client, err := mongo.Connect(ctx, db.opts)
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return err
	}

	db.Client = client

	return nil
}

func (db *MongoDBConn) Disconnect(ctx context.Context) error {

	if db.Client == nil {
		return nil
	}

	return db.Client.Disconnect(ctx)
}

func (db *MongoDBConn) GetDatabase() *mongo.Database {
	return db.Client.Database(db.dbName)
}

func (db *MongoDBConn) GetCollection(collectionName string) *mongo.Collection {
	return db.GetDatabase().Collection(collectionName)
}

func New(config env.MongoDBConfig) (*MongoDBConn, error) {

	if config.DB == "" {
		return nil, errors.New("MongoDB database name must not be empty")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(config.URI()).SetServerAPIOptions(serverAPI)

	return &MongoDBConn{
		dbName: config.DB,
		opts:   opts,
	}, nil
}

func InitConnection(ctx context.Context, config env.MongoDBConfig) (*MongoDBConn, error) {

	conn, err := New(config)
	if err != nil {
		return nil, err
	}

	if err := conn.Connect(ctx); err != nil {
		return nil, err
	}

	return conn, nil
}
