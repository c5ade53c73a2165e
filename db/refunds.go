package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Refunds method returns every refund stored in the database.
func (ms *MongoStorage) Refunds() ([]Refund, error) {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := ms.refunds.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	refunds := []Refund{}
	if err := cur.All(ctx, &refunds); err != nil {
		return nil, err
	}
	return refunds, nil
}

// Refund method returns the refund with the given local ID. If the refund
// doesn't exist, it returns ErrNotFound.
func (ms *MongoStorage) Refund(id string) (*Refund, error) {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.refunds.FindOne(ctx, bson.M{"_id": id})
	refund := &Refund{}
	if err := result.Decode(refund); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return refund, nil
}

// RefundsByCharge method returns the refunds issued against the charge with
// the given Stripe ID. Refunds reference charges by their Stripe id, not the
// local one, since that is the key the refund request carries.
func (ms *MongoStorage) RefundsByCharge(chargeStripeID string) ([]Refund, error) {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := ms.refunds.Find(ctx, bson.M{"chargeId": chargeStripeID})
	if err != nil {
		return nil, err
	}
	refunds := []Refund{}
	if err := cur.All(ctx, &refunds); err != nil {
		return nil, err
	}
	return refunds, nil
}

// SetRefund method creates or updates the refund in the database, keyed by
// its local ID, and returns the persisted document.
func (ms *MongoStorage) SetRefund(refund *Refund) (*Refund, error) {
	if refund.ID == "" || refund.ChargeID == "" {
		return nil, ErrInvalidData
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := ms.refunds.ReplaceOne(ctx, bson.M{"_id": refund.ID}, refund, opts); err != nil {
		return nil, err
	}
	return refund, nil
}
