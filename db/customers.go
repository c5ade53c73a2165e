package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Customers method returns every customer stored in the database.
func (ms *MongoStorage) Customers() ([]Customer, error) {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := ms.customers.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	customers := []Customer{}
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// Customer method returns the customer with the given local ID. If the
// customer doesn't exist, it returns ErrNotFound. If other errors occur, it
// returns the error.
func (ms *MongoStorage) Customer(id string) (*Customer, error) {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.customers.FindOne(ctx, bson.M{"_id": id})
	customer := &Customer{}
	if err := result.Decode(customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

// CustomerByEmail method returns the customer with the given email. If the
// customer doesn't exist, it returns ErrNotFound.
func (ms *MongoStorage) CustomerByEmail(email string) (*Customer, error) {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.customers.FindOne(ctx, bson.M{"email": email})
	customer := &Customer{}
	if err := result.Decode(customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

// SetCustomer method creates or updates the customer in the database, keyed
// by its local ID, and returns the persisted document. If an error occurs,
// it returns the error.
func (ms *MongoStorage) SetCustomer(customer *Customer) (*Customer, error) {
	if customer.ID == "" || customer.Email == "" {
		return nil, ErrInvalidData
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := ms.customers.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer, opts); err != nil {
		return nil, err
	}
	return customer, nil
}
