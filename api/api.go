// Package api provides the HTTP surface of the Stripe integration service:
// read endpoints over the local projections, write endpoints orchestrating
// Stripe and the database, and the webhook receiver.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/wthomasmiii/stripe-integration-ms/db"
	"github.com/wthomasmiii/stripe-integration-ms/stripe"
	"go.vocdoni.io/dvote/log"
)

type Config struct {
	Host     string
	Port     int
	DB       *db.MongoStorage
	Stripe   *stripe.Client
	Webhooks *stripe.Service
}

// API type represents the API HTTP server.
type API struct {
	db       *db.MongoStorage
	stripe   *stripe.Client
	webhooks *stripe.Service
	host     string
	port     int
	router   *chi.Mux
}

// New creates a new API HTTP server. It does not start the server. Use
// Start() for that.
func New(conf *Config) *API {
	if conf == nil {
		return nil
	}
	return &API{
		db:       conf.DB,
		stripe:   conf.Stripe,
		webhooks: conf.Webhooks,
		host:     conf.Host,
		port:     conf.Port,
	}
}

// Start starts the API HTTP server (non blocking).
func (a *API) Start() {
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", a.host, a.port), a.initRouter()); err != nil {
			log.Fatalf("failed to start the API server: %v", err)
		}
	}()
}

// Router returns the router with all the routes and middleware, for tests
// that serve requests without binding a port.
func (a *API) Router() http.Handler {
	return a.initRouter()
}

// initRouter creates the router with all the routes and middleware.
func (a *API) initRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Stripe-Signature"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}).Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Throttle(100))
	r.Use(middleware.Timeout(45 * time.Second))

	// customer reads
	log.Infow("new route", "method", "GET", "path", customersEndpoint)
	r.Get(customersEndpoint, a.customersHandler)
	log.Infow("new route", "method", "GET", "path", customerEndpoint)
	r.Get(customerEndpoint, a.customerHandler)
	// charge reads
	log.Infow("new route", "method", "GET", "path", chargesEndpoint)
	r.Get(chargesEndpoint, a.chargesHandler)
	log.Infow("new route", "method", "GET", "path", chargeEndpoint)
	r.Get(chargeEndpoint, a.chargeHandler)
	log.Infow("new route", "method", "GET", "path", chargesByCustomerEndpoint)
	r.Get(chargesByCustomerEndpoint, a.chargesByCustomerHandler)
	// refund reads
	log.Infow("new route", "method", "GET", "path", refundsEndpoint)
	r.Get(refundsEndpoint, a.refundsHandler)
	log.Infow("new route", "method", "GET", "path", refundEndpoint)
	r.Get(refundEndpoint, a.refundHandler)
	log.Infow("new route", "method", "GET", "path", refundsByChargeEndpoint)
	r.Get(refundsByChargeEndpoint, a.refundsByChargeHandler)
	// stripe writes
	log.Infow("new route", "method", "POST", "path", createCustomerEndpoint)
	r.Post(createCustomerEndpoint, a.createCustomerHandler)
	log.Infow("new route", "method", "PATCH", "path", updateCustomerEndpoint)
	r.Patch(updateCustomerEndpoint, a.updateCustomerHandler)
	log.Infow("new route", "method", "POST", "path", createPaymentIntentEndpoint)
	r.Post(createPaymentIntentEndpoint, a.createPaymentIntentHandler)
	log.Infow("new route", "method", "POST", "path", createChargeEndpoint)
	r.Post(createChargeEndpoint, a.createChargeHandler)
	log.Infow("new route", "method", "POST", "path", createRefundEndpoint)
	r.Post(createRefundEndpoint, a.createRefundHandler)
	log.Infow("new route", "method", "POST", "path", customerTransactionsEndpoint)
	r.Post(customerTransactionsEndpoint, a.customerTransactionsHandler)
	// webhooks
	log.Infow("new route", "method", "POST", "path", webhooksEndpoint)
	r.Post(webhooksEndpoint, a.webhookHandler)

	a.router = r
	return r
}
