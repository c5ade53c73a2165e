package api

import (
	"encoding/json"
	"net/http"

	"github.com/badoux/checkmail"
	"github.com/go-chi/chi/v5"
	stripeapi "github.com/stripe/stripe-go/v82"
	"github.com/wthomasmiii/stripe-integration-ms/db"
	"github.com/wthomasmiii/stripe-integration-ms/errors"
	"github.com/wthomasmiii/stripe-integration-ms/internal"
	"github.com/wthomasmiii/stripe-integration-ms/stripe"
)

// createCustomerHandler creates a customer with the Stripe API and saves the
// relevant fields to the database. The local record is a projection of what
// Stripe returns, not of the request body.
func (a *API) createCustomerHandler(w http.ResponseWriter, r *http.Request) {
	body := &CustomerRequest{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if err := checkmail.ValidateFormat(body.Email); err != nil {
		errors.ErrEmailMalformed.WithErr(err).Write(w)
		return
	}

	stripeCustomer, err := a.stripe.CreateCustomer(body.Address, body.Email, body.Name, body.Phone)
	if err != nil {
		errors.ErrStripeCreateCustomer.WithErr(err).Write(w)
		return
	}

	customer, err := a.db.SetCustomer(&db.Customer{
		ID:       internal.NewObjectID().String(),
		StripeID: stripeCustomer.ID,
		Name:     stripeCustomer.Name,
		Email:    stripeCustomer.Email,
		Phone:    stripeCustomer.Phone,
		Address:  localCustomerAddress(stripeCustomer),
	})
	if err != nil {
		errors.ErrStoreCustomerSave.WithErr(err).Write(w)
		return
	}
	httpWriteCreated(w, "successfully created customer", map[string]any{"customer": customer})
}

// updateCustomerHandler updates an existing customer with the Stripe API and
// refreshes the local copy. A provider failure here is the single 500 path
// of the service; everything else downstream answers 503.
func (a *API) updateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		errors.ErrMalformedURLParam.With("customerId is required").Write(w)
		return
	}
	body := &CustomerRequest{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}

	customer, err := a.db.Customer(customerID)
	if err != nil {
		errors.ErrStoreCustomerFetch.WithErr(err).Write(w)
		return
	}

	stripeCustomer, err := a.stripe.UpdateCustomer(customer.StripeID, body.Address, body.Email, body.Name, body.Phone)
	if err != nil {
		errors.ErrStripeUpdateCustomer.WithErr(err).Write(w)
		return
	}

	customer.Email = stripeCustomer.Email
	customer.Name = stripeCustomer.Name
	customer.Phone = stripeCustomer.Phone
	customer.Address = localCustomerAddress(stripeCustomer)
	customer, err = a.db.SetCustomer(customer)
	if err != nil {
		errors.ErrStoreCustomerSave.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully updated customer", map[string]any{"customer": customer})
}

// createPaymentIntentHandler creates a payment intent with the Stripe API
// and hands the client secret back to the caller, along with the publishable
// key the frontend needs to confirm it. Intents are not persisted locally.
func (a *API) createPaymentIntentHandler(w http.ResponseWriter, r *http.Request) {
	body := &PaymentIntentRequest{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if body.Amount < 0 {
		errors.ErrInvalidAmount.Write(w)
		return
	}

	intent, err := a.stripe.CreatePaymentIntent(body.Amount, body.Currency)
	if err != nil {
		errors.ErrStripeCreateIntent.WithErr(err).Write(w)
		return
	}
	httpWriteCreated(w, "successfully created payment intent", map[string]any{
		"client_secret": intent.ClientSecret,
		"public_key":    a.stripe.PublicKey(),
	})
}

// createChargeHandler charges a source token on behalf of the customer with
// the given email. If no local customer exists for that email yet, one is
// created with Stripe first (empty profile) and persisted, so the charge
// always references a local customer id. Two concurrent calls for the same
// unknown email can race here; the unique email index rejects the loser.
func (a *API) createChargeHandler(w http.ResponseWriter, r *http.Request) {
	body := &ChargeRequest{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if body.Amount < 0 {
		errors.ErrInvalidAmount.Write(w)
		return
	}
	if err := checkmail.ValidateFormat(body.CustomerEmail); err != nil {
		errors.ErrEmailMalformed.WithErr(err).Write(w)
		return
	}

	customer, err := a.db.CustomerByEmail(body.CustomerEmail)
	if err == db.ErrNotFound {
		stripeCustomer, err := a.stripe.CreateCustomer(nil, body.CustomerEmail, "", "")
		if err != nil {
			errors.ErrStripeCreateCustomer.WithErr(err).Write(w)
			return
		}
		customer, err = a.db.SetCustomer(&db.Customer{
			ID:       internal.NewObjectID().String(),
			StripeID: stripeCustomer.ID,
			Name:     stripeCustomer.Name,
			Email:    stripeCustomer.Email,
		})
		if err != nil {
			errors.ErrStoreCustomerSave.WithErr(err).Write(w)
			return
		}
	} else if err != nil {
		errors.ErrStoreCustomerFetch.WithErr(err).Write(w)
		return
	}

	stripeCharge, err := a.stripe.CreateCharge(body.Amount, body.Currency, body.CustomerEmail, body.SourceToken)
	if err != nil {
		errors.ErrStripeCreateCharge.WithErr(err).Write(w)
		return
	}

	charge, err := a.db.SetCharge(&db.Charge{
		ID:           internal.NewObjectID().String(),
		CustomerID:   customer.ID,
		StripeID:     stripeCharge.ID,
		Amount:       stripeCharge.Amount,
		Created:      stripeCharge.Created,
		Currency:     string(stripeCharge.Currency),
		ReceiptEmail: stripeCharge.ReceiptEmail,
		Status:       string(stripeCharge.Status),
	})
	if err != nil {
		errors.ErrStoreChargeSave.WithErr(err).Write(w)
		return
	}
	httpWriteCreated(w, "successfully created charge", map[string]any{"charge": charge})
}

// createRefundHandler requests a refund against a charge on behalf of a
// customer. The stored refund mirrors what Stripe returns; the customer
// reference is attached best-effort from the charge's receipt email and a
// lookup miss there is tolerated.
func (a *API) createRefundHandler(w http.ResponseWriter, r *http.Request) {
	body := &RefundRequest{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if body.ChargeID == "" {
		errors.ErrMalformedBody.With("chargeId is required").Write(w)
		return
	}

	stripeRefund, err := a.stripe.CreateRefund(body.ChargeID, body.Amount, body.Reason)
	if err != nil {
		errors.ErrStripeCreateRefund.WithErr(err).Write(w)
		return
	}
	stripeCharge, err := a.stripe.GetCharge(body.ChargeID)
	if err != nil {
		errors.ErrStripeCreateRefund.WithErr(err).Write(w)
		return
	}

	refund := &db.Refund{
		ID:       internal.NewObjectID().String(),
		StripeID: stripeRefund.ID,
		Amount:   stripeRefund.Amount,
		ChargeID: body.ChargeID,
		Created:  stripeRefund.Created,
		Currency: string(stripeRefund.Currency),
		Reason:   string(stripeRefund.Reason),
		Status:   string(stripeRefund.Status),
	}
	if stripeRefund.Charge != nil {
		refund.ChargeID = stripeRefund.Charge.ID
	}
	if customer, err := a.db.CustomerByEmail(stripeCharge.ReceiptEmail); err == nil {
		refund.CustomerID = customer.ID
	}

	refund, err = a.db.SetRefund(refund)
	if err != nil {
		errors.ErrStoreRefundSave.WithErr(err).Write(w)
		return
	}
	httpWriteCreated(w, "successfully created refund", map[string]any{"refund": refund})
}

// customerTransactionsHandler lists the balance transactions of the customer
// with the given email. An email with no local customer yields 204 without
// ever touching the Stripe API; that miss is distinct from a provider
// failure, which yields 503.
func (a *API) customerTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	body := &TransactionsRequest{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}

	customer, err := a.db.CustomerByEmail(body.CustomerEmail)
	if err == db.ErrNotFound {
		errors.ErrCustomerNoContent.Withf("customer with email %s does not exist", body.CustomerEmail).Write(w)
		return
	} else if err != nil {
		errors.ErrStoreCustomerFetch.WithErr(err).Write(w)
		return
	}

	stripeCustomer, err := a.stripe.GetCustomer(customer.StripeID)
	if err != nil {
		errors.ErrStripeGetTransactions.WithErr(err).Write(w)
		return
	}
	transactions, err := a.stripe.CustomerBalanceTransactions(stripeCustomer.ID, &stripe.TransactionListOptions{
		Limit:         body.Limit,
		StartingAfter: body.StartingAfter,
		EndingBefore:  body.EndingBefore,
	})
	if err != nil {
		errors.ErrStripeGetTransactions.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully retrieved transactions", map[string]any{"transactions": transactions})
}

// localCustomerAddress extracts the customer's address from a Stripe
// customer into the local value type.
func localCustomerAddress(customer *stripeapi.Customer) *db.Address {
	if customer.Address == nil {
		return nil
	}
	return &db.Address{
		LineOne:    customer.Address.Line1,
		LineTwo:    customer.Address.Line2,
		City:       customer.Address.City,
		State:      customer.Address.State,
		Country:    customer.Address.Country,
		PostalCode: customer.Address.PostalCode,
	}
}
