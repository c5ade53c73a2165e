package db

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/wthomasmiii/stripe-integration-ms/internal"
)

func testRefund(chargeID string) *Refund {
	return &Refund{
		ID:       internal.NewObjectID().String(),
		StripeID: testStripeRefund,
		Amount:   1000,
		ChargeID: chargeID,
		Created:  time.Now().Unix(),
		Currency: testCurrency,
		Reason:   "requested_by_customer",
		Status:   "succeeded",
	}
}

func TestRefund(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// test not found refund
	refund, err := testDB.Refund(internal.NewObjectID().String())
	c.Assert(refund, qt.IsNil)
	c.Assert(err, qt.Equals, ErrNotFound)
	// refunds may or may not carry a local customer reference
	created := testRefund(testStripeCharge)
	created.CustomerID = internal.NewObjectID().String()
	_, err = testDB.SetRefund(created)
	c.Assert(err, qt.IsNil)
	refund, err = testDB.Refund(created.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(refund, qt.DeepEquals, created)
}

func TestRefundsByCharge(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// a charge with no refunds yields an empty slice, not an error
	refunds, err := testDB.RefundsByCharge(testStripeCharge)
	c.Assert(err, qt.IsNil)
	c.Assert(refunds, qt.HasLen, 0)
	// create two refunds against the charge and one against another
	for i := 0; i < 2; i++ {
		_, err := testDB.SetRefund(testRefund(testStripeCharge))
		c.Assert(err, qt.IsNil)
	}
	_, err = testDB.SetRefund(testRefund("ch_other456"))
	c.Assert(err, qt.IsNil)
	refunds, err = testDB.RefundsByCharge(testStripeCharge)
	c.Assert(err, qt.IsNil)
	c.Assert(refunds, qt.HasLen, 2)
	for _, refund := range refunds {
		c.Assert(refund.ChargeID, qt.Equals, testStripeCharge)
	}
}

func TestSetRefund(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// missing id is invalid
	_, err := testDB.SetRefund(&Refund{ChargeID: testStripeCharge})
	c.Assert(err, qt.Equals, ErrInvalidData)
	// missing charge reference is invalid
	refund := testRefund("")
	_, err = testDB.SetRefund(refund)
	c.Assert(err, qt.Equals, ErrInvalidData)
	// saving twice with the same id updates in place
	refund.ChargeID = testStripeCharge
	_, err = testDB.SetRefund(refund)
	c.Assert(err, qt.IsNil)
	refund.Status = "canceled"
	_, err = testDB.SetRefund(refund)
	c.Assert(err, qt.IsNil)
	refunds, err := testDB.Refunds()
	c.Assert(err, qt.IsNil)
	c.Assert(refunds, qt.HasLen, 1)
	c.Assert(refunds[0].Status, qt.Equals, "canceled")
}
