package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/wthomasmiii/stripe-integration-ms/errors"
	"go.vocdoni.io/dvote/log"
)

// maxWebhookBodyBytes caps the webhook payload size, per Stripe's
// recommendation for webhook endpoints.
const maxWebhookBodyBytes = int64(65536)

// webhookHandler receives Stripe webhook events. The acknowledgement only
// reflects signature validity: a request that fails verification is
// rejected, while any processing outcome after a valid signature answers
// {success:true}, leaving redelivery decisions to Stripe.
func (a *API) webhookHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Warnw("stripe webhook: error reading request body", "error", err)
		errors.ErrMalformedBody.WithErr(err).Write(w)
		return
	}

	signatureHeader := r.Header.Get("Stripe-Signature")
	if err := a.webhooks.HandleWebhookEvent(payload, signatureHeader); err != nil {
		log.Warnw("stripe webhook: signature verification failed", "error", err)
		errors.ErrInvalidSignature.WithErr(err).Write(w)
		return
	}
	writeWebhookResponse(w)
}

// writeWebhookResponse acknowledges a verified delivery.
func writeWebhookResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(&WebhookResponse{Success: true}); err != nil {
		log.Warnw("failed to write on response", "error", err)
	}
}
