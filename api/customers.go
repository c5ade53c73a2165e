package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wthomasmiii/stripe-integration-ms/db"
	"github.com/wthomasmiii/stripe-integration-ms/errors"
)

// customersHandler returns every customer stored in the database.
func (a *API) customersHandler(w http.ResponseWriter, _ *http.Request) {
	customers, err := a.db.Customers()
	if err != nil {
		errors.ErrStoreCustomerFetch.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully retrieved customers", map[string]any{"customers": customers})
}

// customerHandler returns a single customer by its local id. A missing id
// yields a successful response with a null customer, not an error.
func (a *API) customerHandler(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		errors.ErrMalformedURLParam.With("customerId is required").Write(w)
		return
	}
	customer, err := a.db.Customer(customerID)
	if err != nil && err != db.ErrNotFound {
		errors.ErrStoreCustomerFetch.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully retrieved customer", map[string]any{"customer": customer})
}
