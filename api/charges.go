package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wthomasmiii/stripe-integration-ms/db"
	"github.com/wthomasmiii/stripe-integration-ms/errors"
)

// chargesHandler returns every charge stored in the database.
func (a *API) chargesHandler(w http.ResponseWriter, _ *http.Request) {
	charges, err := a.db.Charges()
	if err != nil {
		errors.ErrStoreChargeFetch.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully retrieved charges", map[string]any{"charges": charges})
}

// chargeHandler returns a single charge by its local id.
func (a *API) chargeHandler(w http.ResponseWriter, r *http.Request) {
	chargeID := chi.URLParam(r, "chargeId")
	if chargeID == "" {
		errors.ErrMalformedURLParam.With("chargeId is required").Write(w)
		return
	}
	charge, err := a.db.Charge(chargeID)
	if err != nil && err != db.ErrNotFound {
		errors.ErrStoreChargeFetch.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully retrieved charge", map[string]any{"charge": charge})
}

// chargesByCustomerHandler returns the charges of a single customer,
// referenced by its local id.
func (a *API) chargesByCustomerHandler(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		errors.ErrMalformedURLParam.With("customerId is required").Write(w)
		return
	}
	charges, err := a.db.ChargesByCustomer(customerID)
	if err != nil {
		errors.ErrStoreChargeFetch.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully retrieved charges", map[string]any{"charges": charges})
}
