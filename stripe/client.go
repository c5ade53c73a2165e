// Package stripe wraps the Stripe API calls the service performs, translating
// provider responses and failures into local types. Every method issues one
// synchronous call; nothing here retries or deduplicates, so a repeated
// create call produces a second object on the Stripe side.
package stripe

import (
	stripeapi "github.com/stripe/stripe-go/v82"
	stripecharge "github.com/stripe/stripe-go/v82/charge"
	stripecustomer "github.com/stripe/stripe-go/v82/customer"
	stripebalancetx "github.com/stripe/stripe-go/v82/customerbalancetransaction"
	stripepaymentintent "github.com/stripe/stripe-go/v82/paymentintent"
	striperefund "github.com/stripe/stripe-go/v82/refund"
	stripewebhook "github.com/stripe/stripe-go/v82/webhook"
	"github.com/wthomasmiii/stripe-integration-ms/db"
)

// Client wraps the Stripe API client for the operations the service exposes.
type Client struct {
	config *Config
}

// NewClient creates a new Stripe client with the given configuration. The
// API key is assigned once here, not per call.
func NewClient(config *Config) *Client {
	stripeapi.Key = config.SecretKey
	return &Client{config: config}
}

// PublicKey returns the publishable key configured for this client.
func (c *Client) PublicKey() string {
	return c.config.PublicKey
}

// addressParams translates a local address into Stripe address params. A nil
// or empty address yields nil so the field is omitted from the request.
func addressParams(address *db.Address) *stripeapi.AddressParams {
	if address == nil || address.LineOne == "" {
		return nil
	}
	params := &stripeapi.AddressParams{
		City:       stripeapi.String(address.City),
		Country:    stripeapi.String(address.Country),
		Line1:      stripeapi.String(address.LineOne),
		PostalCode: stripeapi.String(address.PostalCode),
		State:      stripeapi.String(address.State),
	}
	if address.LineTwo != "" {
		params.Line2 = stripeapi.String(address.LineTwo)
	}
	return params
}

// localAddress translates a Stripe address back into the local value type.
func localAddress(address *stripeapi.Address) *db.Address {
	if address == nil {
		return nil
	}
	return &db.Address{
		LineOne:    address.Line1,
		LineTwo:    address.Line2,
		City:       address.City,
		State:      address.State,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

// CreateCustomer creates a new customer on the Stripe side.
func (*Client) CreateCustomer(address *db.Address, email, name, phone string) (*stripeapi.Customer, error) {
	params := &stripeapi.CustomerParams{
		Address: addressParams(address),
		Email:   stripeapi.String(email),
	}
	if name != "" {
		params.Name = stripeapi.String(name)
	}
	if phone != "" {
		params.Phone = stripeapi.String(phone)
	}
	customer, err := stripecustomer.New(params)
	if err != nil {
		return nil, NewStripeError("api_call_failed", "failed to create customer", err)
	}
	return customer, nil
}

// UpdateCustomer updates an existing Stripe customer. Empty fields are
// omitted from the request, so the provider keeps their current values.
func (*Client) UpdateCustomer(stripeID string, address *db.Address, email, name, phone string) (*stripeapi.Customer, error) {
	params := &stripeapi.CustomerParams{
		Address: addressParams(address),
	}
	if email != "" {
		params.Email = stripeapi.String(email)
	}
	if name != "" {
		params.Name = stripeapi.String(name)
	}
	if phone != "" {
		params.Phone = stripeapi.String(phone)
	}
	customer, err := stripecustomer.Update(stripeID, params)
	if err != nil {
		return nil, NewStripeError("api_call_failed", "failed to update customer", err)
	}
	return customer, nil
}

// GetCustomer retrieves a customer by its Stripe ID.
func (*Client) GetCustomer(stripeID string) (*stripeapi.Customer, error) {
	customer, err := stripecustomer.Get(stripeID, &stripeapi.CustomerParams{})
	if err != nil {
		return nil, NewStripeError("api_call_failed", "failed to get customer", err)
	}
	return customer, nil
}

// CreateCharge charges the given source token. The amount is expressed in
// the currency's minor unit and the receipt is sent to receiptEmail.
func (*Client) CreateCharge(amount int64, currency, receiptEmail, sourceToken string) (*stripeapi.Charge, error) {
	params := &stripeapi.ChargeParams{
		Amount:       stripeapi.Int64(amount),
		Currency:     stripeapi.String(currency),
		ReceiptEmail: stripeapi.String(receiptEmail),
	}
	if err := params.SetSource(sourceToken); err != nil {
		return nil, NewStripeError("invalid_source", "invalid charge source token", err)
	}
	charge, err := stripecharge.New(params)
	if err != nil {
		return nil, NewStripeError("api_call_failed", "failed to create charge", err)
	}
	return charge, nil
}

// GetCharge retrieves a charge by its Stripe ID.
func (*Client) GetCharge(stripeID string) (*stripeapi.Charge, error) {
	charge, err := stripecharge.Get(stripeID, &stripeapi.ChargeParams{})
	if err != nil {
		return nil, NewStripeError("api_call_failed", "failed to get charge", err)
	}
	return charge, nil
}

// CreatePaymentIntent creates a payment intent for the given amount.
func (*Client) CreatePaymentIntent(amount int64, currency string) (*stripeapi.PaymentIntent, error) {
	params := &stripeapi.PaymentIntentParams{
		Amount:   stripeapi.Int64(amount),
		Currency: stripeapi.String(currency),
	}
	intent, err := stripepaymentintent.New(params)
	if err != nil {
		return nil, NewStripeError("api_call_failed", "failed to create payment intent", err)
	}
	return intent, nil
}

// RefundReason maps a free-form reason string onto the closed set of reasons
// the Stripe API accepts. Anything outside "fraudulent" and "duplicate",
// including the empty string, falls back to requested_by_customer.
func RefundReason(reason string) stripeapi.RefundReason {
	switch reason {
	case "fraudulent":
		return stripeapi.RefundReasonFraudulent
	case "duplicate":
		return stripeapi.RefundReasonDuplicate
	default:
		return stripeapi.RefundReasonRequestedByCustomer
	}
}

// CreateRefund requests a refund of amount against the charge with the given
// Stripe ID. Stripe enforces that the amount does not exceed the charge; the
// service never checks that locally.
func (*Client) CreateRefund(chargeStripeID string, amount int64, reason string) (*stripeapi.Refund, error) {
	params := &stripeapi.RefundParams{
		Amount: stripeapi.Int64(amount),
		Charge: stripeapi.String(chargeStripeID),
		Reason: stripeapi.String(string(RefundReason(reason))),
	}
	refund, err := striperefund.New(params)
	if err != nil {
		return nil, NewStripeError("api_call_failed", "failed to create refund", err)
	}
	return refund, nil
}

// TransactionListOptions carries the pagination parameters for listing
// customer balance transactions. Limit defaults to 10 and Stripe caps it
// at 100.
type TransactionListOptions struct {
	Limit         int64
	StartingAfter string
	EndingBefore  string
}

// CustomerTransaction is the projection of a customer balance transaction
// returned to API clients.
type CustomerTransaction struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Created  int64  `json:"created"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	Invoice  string `json:"invoice,omitempty"`
}

// CustomerBalanceTransactions lists the balance transactions of the customer
// with the given Stripe ID, translated into local values.
func (*Client) CustomerBalanceTransactions(customerStripeID string, opts *TransactionListOptions) ([]CustomerTransaction, error) {
	params := &stripeapi.CustomerBalanceTransactionListParams{
		Customer: stripeapi.String(customerStripeID),
	}
	limit := int64(10)
	if opts != nil {
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		if opts.StartingAfter != "" {
			params.StartingAfter = stripeapi.String(opts.StartingAfter)
		}
		if opts.EndingBefore != "" {
			params.EndingBefore = stripeapi.String(opts.EndingBefore)
		}
	}
	params.Limit = stripeapi.Int64(limit)

	transactions := []CustomerTransaction{}
	i := stripebalancetx.List(params)
	for i.Next() {
		tx := i.CustomerBalanceTransaction()
		transaction := CustomerTransaction{
			ID:       tx.ID,
			Amount:   tx.Amount,
			Created:  tx.Created,
			Type:     string(tx.Type),
			Currency: string(tx.Currency),
		}
		if tx.Invoice != nil {
			transaction.Invoice = tx.Invoice.ID
		}
		transactions = append(transactions, transaction)
	}
	if err := i.Err(); err != nil {
		return nil, NewStripeError("api_call_failed", "failed to list customer balance transactions", err)
	}
	return transactions, nil
}

// ValidateWebhookEvent validates and parses a webhook event.
func (c *Client) ValidateWebhookEvent(payload []byte, signatureHeader string) (*stripeapi.Event, error) {
	event, err := stripewebhook.ConstructEvent(payload, signatureHeader, c.config.WebhookSecret)
	if err != nil {
		return nil, NewStripeError("webhook_validation", "webhook signature validation failed", err)
	}
	return &event, nil
}
