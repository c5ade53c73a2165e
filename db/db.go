// Package db provides the MongoDB storage layer for the service. It keeps
// queryable projections of Stripe customers, charges and refunds; Stripe owns
// the canonical state and no document is ever deleted by the service.
package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.vocdoni.io/dvote/log"
)

const defaultTimeout = 10 * time.Second

// MongoStorage uses an external MongoDB service for storing the local copies
// of the Stripe objects handled by the API.
type MongoStorage struct {
	client   *mongo.Client
	database string
	keysLock sync.RWMutex

	customers *mongo.Collection
	charges   *mongo.Collection
	refunds   *mongo.Collection
}

func New(url, database string) (*MongoStorage, error) {
	if url == "" {
		return nil, fmt.Errorf("mongo URL is not defined")
	}
	if database == "" {
		return nil, fmt.Errorf("mongo database is not defined")
	}
	log.Infow("connecting to mongodb", "url", url, "database", database)
	// preparing connection
	opts := options.Client()
	opts.ApplyURI(url)
	opts.SetMaxConnecting(200)
	timeout := time.Second * 10
	opts.ConnectTimeout = &timeout
	// create a new client with the connection options
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to mongodb: %w", err)
	}
	// check if the connection is successful
	ctx, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("cannot connect to mongodb: %w", err)
	}
	ms := &MongoStorage{
		client:   client,
		database: database,
	}
	ms.initCollections(database)
	if err := ms.createIndexes(); err != nil {
		return nil, err
	}
	return ms, nil
}

func (ms *MongoStorage) initCollections(database string) {
	db := ms.client.Database(database)
	ms.customers = db.Collection("customers")
	ms.charges = db.Collection("charges")
	ms.refunds = db.Collection("refunds")
}

// createIndexes creates the indexes the queries below rely on. The unique
// email index is the only local enforcement of customer email uniqueness;
// a concurrent get-or-create race surfaces here as a duplicate key error.
func (ms *MongoStorage) createIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if _, err := ms.customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("cannot create customers email index: %w", err)
	}
	if _, err := ms.charges.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customerId", Value: 1}},
	}); err != nil {
		return fmt.Errorf("cannot create charges customer index: %w", err)
	}
	if _, err := ms.refunds.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "chargeId", Value: 1}},
	}); err != nil {
		return fmt.Errorf("cannot create refunds charge index: %w", err)
	}
	return nil
}

func (ms *MongoStorage) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := ms.client.Disconnect(ctx); err != nil {
		log.Warn(err)
	}
}

// Reset drops the collections and recreates the indexes.
func (ms *MongoStorage) Reset() error {
	log.Infof("resetting database")
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	for _, col := range []*mongo.Collection{ms.customers, ms.charges, ms.refunds} {
		if err := col.Drop(ctx); err != nil {
			return err
		}
	}
	return ms.createIndexes()
}
