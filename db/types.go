package db

// Address is the billing address embedded in a customer document. Only
// lineOne is expected to be present; every other field is optional.
type Address struct {
	LineOne    string `json:"lineOne" bson:"lineOne"`
	LineTwo    string `json:"lineTwo,omitempty" bson:"lineTwo,omitempty"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	Country    string `json:"country" bson:"country"`
	PostalCode string `json:"postalCode" bson:"postalCode"`
}

// Customer is the local projection of a Stripe customer. The email carries a
// unique index; Stripe remains the source of truth for every field.
type Customer struct {
	ID       string   `json:"id" bson:"_id"`
	StripeID string   `json:"stripeId" bson:"stripeId"`
	Name     string   `json:"name" bson:"name"`
	Email    string   `json:"email" bson:"email"`
	Phone    string   `json:"phone" bson:"phone"`
	Address  *Address `json:"address,omitempty" bson:"address,omitempty"`
}

// Charge is the local projection of a Stripe charge. Amount is expressed in
// the currency's minor unit and is never negative. CustomerID references the
// local id of the customer the charge belongs to.
type Charge struct {
	ID           string `json:"id" bson:"_id"`
	CustomerID   string `json:"customerId" bson:"customerId"`
	StripeID     string `json:"stripeId" bson:"stripeId"`
	Amount       int64  `json:"amount" bson:"amount"`
	Created      int64  `json:"created" bson:"created"`
	Currency     string `json:"currency" bson:"currency"`
	ReceiptEmail string `json:"receiptEmail" bson:"receiptEmail"`
	Status       string `json:"status" bson:"status"`
}

// Refund is the local projection of a Stripe refund. ChargeID holds the
// Stripe id of the refunded charge. CustomerID is attached best-effort from
// the charge's receipt email and may be empty.
type Refund struct {
	ID         string `json:"id" bson:"_id"`
	CustomerID string `json:"customerId,omitempty" bson:"customerId,omitempty"`
	StripeID   string `json:"stripeId" bson:"stripeId"`
	Amount     int64  `json:"amount" bson:"amount"`
	ChargeID   string `json:"chargeId" bson:"chargeId"`
	Created    int64  `json:"created" bson:"created"`
	Currency   string `json:"currency" bson:"currency"`
	Reason     string `json:"reason" bson:"reason"`
	Status     string `json:"status" bson:"status"`
}
