package stripe

import (
	"os"
	"testing"

	qt "github.com/frankban/quicktest"
	stripeapi "github.com/stripe/stripe-go/v82"
	"github.com/wthomasmiii/stripe-integration-ms/db"
	"go.vocdoni.io/dvote/log"
)

func TestMain(m *testing.M) {
	log.Init("debug", "stdout", nil)
	os.Exit(m.Run())
}

func TestRefundReason(t *testing.T) {
	c := qt.New(t)
	// only the two recognized reasons map onto themselves; everything else,
	// the empty string included, falls back to requested_by_customer
	c.Assert(RefundReason("fraudulent"), qt.Equals, stripeapi.RefundReasonFraudulent)
	c.Assert(RefundReason("duplicate"), qt.Equals, stripeapi.RefundReasonDuplicate)
	c.Assert(RefundReason("requested_by_customer"), qt.Equals, stripeapi.RefundReasonRequestedByCustomer)
	c.Assert(RefundReason(""), qt.Equals, stripeapi.RefundReasonRequestedByCustomer)
	c.Assert(RefundReason("buyer-remorse"), qt.Equals, stripeapi.RefundReasonRequestedByCustomer)
}

func TestAddressParams(t *testing.T) {
	c := qt.New(t)
	// nil and empty addresses are omitted from the request entirely
	c.Assert(addressParams(nil), qt.IsNil)
	c.Assert(addressParams(&db.Address{}), qt.IsNil)

	address := &db.Address{
		LineOne:    "123 Main St",
		City:       "Springfield",
		State:      "IL",
		Country:    "US",
		PostalCode: "62701",
	}
	params := addressParams(address)
	c.Assert(params, qt.IsNotNil)
	c.Assert(*params.Line1, qt.Equals, address.LineOne)
	c.Assert(params.Line2, qt.IsNil)
	c.Assert(*params.City, qt.Equals, address.City)
	c.Assert(*params.PostalCode, qt.Equals, address.PostalCode)

	address.LineTwo = "Apt 4"
	params = addressParams(address)
	c.Assert(*params.Line2, qt.Equals, address.LineTwo)
}

func TestLocalAddress(t *testing.T) {
	c := qt.New(t)
	c.Assert(localAddress(nil), qt.IsNil)
	address := localAddress(&stripeapi.Address{
		Line1:      "123 Main St",
		Line2:      "Apt 4",
		City:       "Springfield",
		State:      "IL",
		Country:    "US",
		PostalCode: "62701",
	})
	c.Assert(address, qt.DeepEquals, &db.Address{
		LineOne:    "123 Main St",
		LineTwo:    "Apt 4",
		City:       "Springfield",
		State:      "IL",
		Country:    "US",
		PostalCode: "62701",
	})
}

func TestConfigValidate(t *testing.T) {
	c := qt.New(t)
	c.Assert((&Config{}).Validate(), qt.IsNotNil)
	c.Assert((&Config{SecretKey: "sk_test_xyz"}).Validate(), qt.IsNotNil)
	c.Assert((&Config{SecretKey: "sk_test_xyz", WebhookSecret: "whsec_xyz"}).Validate(), qt.IsNil)
}
