package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Charges method returns every charge stored in the database.
func (ms *MongoStorage) Charges() ([]Charge, error) {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := ms.charges.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	charges := []Charge{}
	if err := cur.All(ctx, &charges); err != nil {
		return nil, err
	}
	return charges, nil
}

// Charge method returns the charge with the given local ID. If the charge
// doesn't exist, it returns ErrNotFound.
func (ms *MongoStorage) Charge(id string) (*Charge, error) {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.charges.FindOne(ctx, bson.M{"_id": id})
	charge := &Charge{}
	if err := result.Decode(charge); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return charge, nil
}

// ChargesByCustomer method returns the charges that belong to the customer
// with the given local ID. A customer with no charges yields an empty slice,
// not an error.
func (ms *MongoStorage) ChargesByCustomer(customerID string) ([]Charge, error) {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := ms.charges.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, err
	}
	charges := []Charge{}
	if err := cur.All(ctx, &charges); err != nil {
		return nil, err
	}
	return charges, nil
}

// SetCharge method creates or updates the charge in the database, keyed by
// its local ID, and returns the persisted document.
func (ms *MongoStorage) SetCharge(charge *Charge) (*Charge, error) {
	if charge.ID == "" || charge.Amount < 0 {
		return nil, ErrInvalidData
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := ms.charges.ReplaceOne(ctx, bson.M{"_id": charge.ID}, charge, opts); err != nil {
		return nil, err
	}
	return charge, nil
}
