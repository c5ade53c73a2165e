package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wthomasmiii/stripe-integration-ms/db"
	"github.com/wthomasmiii/stripe-integration-ms/errors"
)

// refundsHandler returns every refund stored in the database.
func (a *API) refundsHandler(w http.ResponseWriter, _ *http.Request) {
	refunds, err := a.db.Refunds()
	if err != nil {
		errors.ErrStoreRefundFetch.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully retrieved refunds", map[string]any{"refunds": refunds})
}

// refundHandler returns a single refund by its local id.
func (a *API) refundHandler(w http.ResponseWriter, r *http.Request) {
	refundID := chi.URLParam(r, "refundId")
	if refundID == "" {
		errors.ErrMalformedURLParam.With("refundId is required").Write(w)
		return
	}
	refund, err := a.db.Refund(refundID)
	if err != nil && err != db.ErrNotFound {
		errors.ErrStoreRefundFetch.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully retrieved refund", map[string]any{"refund": refund})
}

// refundsByChargeHandler returns the refunds issued against a single charge,
// referenced by its Stripe id.
func (a *API) refundsByChargeHandler(w http.ResponseWriter, r *http.Request) {
	chargeID := chi.URLParam(r, "chargeId")
	if chargeID == "" {
		errors.ErrMalformedURLParam.With("chargeId is required").Write(w)
		return
	}
	refunds, err := a.db.RefundsByCharge(chargeID)
	if err != nil {
		errors.ErrStoreRefundFetch.WithErr(err).Write(w)
		return
	}
	httpWriteOK(w, "successfully retrieved refunds", map[string]any{"refunds": refunds})
}
