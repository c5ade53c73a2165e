package stripe

import (
	"errors"
	"fmt"

	stripeapi "github.com/stripe/stripe-go/v82"
)

// StripeError represents a failed interaction with the Stripe API. It keeps
// the provider's HTTP status code and message when the underlying error is a
// *stripe.Error, so callers can surface them without unwrapping.
type StripeError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *StripeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stripe error [%s]: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("stripe error [%s]: %s", e.Code, e.Message)
}

func (e *StripeError) Unwrap() error {
	return e.Err
}

// Common Stripe errors
var (
	ErrInvalidEvent      = &StripeError{Code: "invalid_event", Message: "invalid webhook event"}
	ErrCustomerNotFound  = &StripeError{Code: "customer_not_found", Message: "stripe customer not found"}
	ErrAPICallFailed     = &StripeError{Code: "api_call_failed", Message: "stripe API call failed"}
	ErrWebhookValidation = &StripeError{Code: "webhook_validation", Message: "webhook signature validation failed"}
)

// NewStripeError creates a new StripeError with the given code, message, and
// underlying error. The provider status code is extracted from err when it
// carries one.
func NewStripeError(code, message string, err error) *StripeError {
	statusCode := 0
	var apiErr *stripeapi.Error
	if errors.As(err, &apiErr) {
		statusCode = apiErr.HTTPStatusCode
		if apiErr.Msg != "" {
			message = apiErr.Msg
		}
	}
	return &StripeError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}
