package api

import "github.com/wthomasmiii/stripe-integration-ms/db"

// Response is the envelope returned by every endpoint except the webhook
// one, which answers with WebhookResponse instead.
type Response struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// WebhookResponse is the acknowledgement returned to Stripe. It only
// reflects signature validity, never the outcome of event processing.
type WebhookResponse struct {
	Success bool `json:"success"`
}

// CustomerRequest is the body of create-customer and update-customer.
type CustomerRequest struct {
	Address *db.Address `json:"address"`
	Email   string      `json:"email"`
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
}

// PaymentIntentRequest is the body of create-payment-intent.
type PaymentIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// ChargeRequest is the body of create-charge. SourceToken is the Stripe.js
// generated token of the payment source to charge.
type ChargeRequest struct {
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customerEmail"`
	SourceToken   string `json:"sourceToken"`
}

// RefundRequest is the body of create-refund-request. ChargeID is the Stripe
// id of the charge to refund.
type RefundRequest struct {
	ChargeID string `json:"chargeId"`
	Amount   int64  `json:"amount"`
	Reason   string `json:"reason"`
}

// TransactionsRequest is the body of get-customer-transactions. Limit,
// StartingAfter and EndingBefore are Stripe pagination parameters.
type TransactionsRequest struct {
	CustomerEmail string `json:"customerEmail"`
	Limit         int64  `json:"limit,omitempty"`
	StartingAfter string `json:"startingAfter,omitempty"`
	EndingBefore  string `json:"endingBefore,omitempty"`
}
