package stripe

import (
	"encoding/json"

	stripeapi "github.com/stripe/stripe-go/v82"
	"go.vocdoni.io/dvote/log"
)

// Service processes the webhook events Stripe delivers to the API. Events
// are handled at most once per delivery; Stripe's own retry policy is the
// only redelivery mechanism, the service keeps no record of processed events.
type Service struct {
	client *Client
}

// NewService creates a new webhook service backed by the given client.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// HandleWebhookEvent validates the payload signature and dispatches the
// event. A signature failure is returned to the caller; anything that goes
// wrong after validation is handled (or logged) internally, since Stripe
// only expects the acknowledgement to reflect signature validity.
func (s *Service) HandleWebhookEvent(payload []byte, signatureHeader string) error {
	event, err := s.client.ValidateWebhookEvent(payload, signatureHeader)
	if err != nil {
		return err
	}
	s.HandleEvent(event)
	return nil
}

// HandleEvent dispatches a verified event on its type. Unmatched types are
// no-ops.
func (s *Service) HandleEvent(event *stripeapi.Event) {
	switch event.Type {
	case stripeapi.EventTypePaymentIntentCreated:
		log.Infow("stripe webhook: payment intent created", "event", event.ID)
	case stripeapi.EventTypePaymentIntentPaymentFailed:
		log.Infow("stripe webhook: payment intent failed", "event", event.ID)
	case stripeapi.EventTypePaymentIntentSucceeded:
		log.Infow("stripe webhook: payment intent succeeded", "event", event.ID)
	case stripeapi.EventTypeChargeSucceeded:
		log.Infow("stripe webhook: charge succeeded", "event", event.ID)
	case stripeapi.EventTypeAccountApplicationDeauthorized:
		s.handleAccountDeauthorized(event)
	default:
		log.Debugf("stripe webhook: received unhandled event type %s (id %s)", event.Type, event.ID)
	}
}

// handleAccountDeauthorized processes an account.application.deauthorized
// event. The nested application payload needs its own deserialization step
// which can fail on an API version mismatch; in that case the event is
// accepted but its payload is dropped, with a log line as the only signal.
func (s *Service) handleAccountDeauthorized(event *stripeapi.Event) {
	var application stripeapi.Application
	if err := json.Unmarshal(event.Data.Raw, &application); err != nil {
		log.Warnw("stripe webhook: failed to deserialize application from deauthorization event",
			"event", event.ID, "error", err)
		return
	}
	// Connected account state cleanup would go here.
	log.Infow("stripe webhook: account application deauthorized",
		"event", event.ID, "account", event.Account, "application", application.ID)
}
