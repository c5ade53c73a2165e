package stripe

import "fmt"

// Config holds the Stripe keys the service needs. The keys are supplied
// externally (flags or environment) and passed into each client at
// construction; nothing mutates them afterwards.
type Config struct {
	// SecretKey authenticates every server-side API call.
	SecretKey string
	// PublicKey is the publishable key handed to frontends; kept here so the
	// service can expose it to clients building card tokens.
	PublicKey string
	// WebhookSecret is the signing secret used to verify webhook payloads.
	WebhookSecret string
}

// Validate checks that the configuration carries the keys required to talk
// to the Stripe API.
func (c *Config) Validate() error {
	if c == nil || c.SecretKey == "" {
		return fmt.Errorf("stripe secret key is required")
	}
	if c.WebhookSecret == "" {
		return fmt.Errorf("stripe webhook secret is required")
	}
	return nil
}
