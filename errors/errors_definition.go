//nolint:lll
package errors

import (
	"fmt"
	"net/http"
)

// Error codes in the 40001-49999 range are the caller's fault; codes
// 50001-59999 are a downstream or server failure. Provider and store
// failures both surface as 503 with the underlying message attached; the
// update-customer provider path is the single 500. Never change an existing
// code, only append.
var (
	// Validation errors (400)
	ErrMalformedBody     = Error{Code: 40001, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid JSON request body")}
	ErrMalformedURLParam = Error{Code: 40002, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid URL parameter")}
	ErrEmailMalformed    = Error{Code: 40003, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("invalid email format")}
	ErrInvalidAmount     = Error{Code: 40004, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("amount must be a non-negative integer in the currency's minor unit")}
	ErrInvalidSignature  = Error{Code: 40005, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("webhook signature verification failed")}

	// Lookup misses
	ErrCustomerNoContent = Error{Code: 40006, HTTPstatus: http.StatusNoContent, Err: fmt.Errorf("no customer found for the given email")}

	// Downstream failures (503), with the single 500 provider path
	ErrStripeCreateCustomer       = Error{Code: 50001, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while creating customer with Stripe API")}
	ErrStripeUpdateCustomer       = Error{Code: 50002, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("error occurred while interacting with Stripe API")}
	ErrStripeCreateIntent         = Error{Code: 50003, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while creating payment intent with Stripe API")}
	ErrStripeCreateCharge         = Error{Code: 50004, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while creating charge with Stripe API")}
	ErrStripeCreateRefund         = Error{Code: 50005, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while creating refund with Stripe API")}
	ErrStripeGetTransactions      = Error{Code: 50006, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while fetching transactions from Stripe API")}
	ErrStoreCustomerFetch         = Error{Code: 50007, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while fetching customer from the database")}
	ErrStoreCustomerSave          = Error{Code: 50008, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while saving customer to the database")}
	ErrStoreChargeFetch           = Error{Code: 50009, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while fetching charges from the database")}
	ErrStoreChargeSave            = Error{Code: 50010, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while saving charge to the database")}
	ErrStoreRefundFetch           = Error{Code: 50011, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while fetching refunds from the database")}
	ErrStoreRefundSave            = Error{Code: 50012, HTTPstatus: http.StatusServiceUnavailable, Err: fmt.Errorf("error occurred while saving refund to the database")}
	ErrMarshalingServerJSONFailed = Error{Code: 50013, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("server error: failed to process response")}
)
