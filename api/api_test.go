package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/wthomasmiii/stripe-integration-ms/db"
	"github.com/wthomasmiii/stripe-integration-ms/stripe"
	"github.com/wthomasmiii/stripe-integration-ms/test"
	"go.vocdoni.io/dvote/log"
)

const testWebhookSecret = "whsec_test_secret"

var (
	testDB     *db.MongoStorage
	testRouter http.Handler
)

func TestMain(m *testing.M) {
	log.Init("debug", "stdout", nil)
	ctx := context.Background()
	// start a MongoDB container for testing
	dbContainer, err := test.StartMongoContainer(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to start MongoDB container: %v", err))
	}

	mongoURI, err := dbContainer.Endpoint(ctx, "mongodb")
	if err != nil {
		panic(fmt.Sprintf("failed to get MongoDB endpoint: %v", err))
	}
	testDB, err = db.New(mongoURI, test.RandomDatabaseName())
	if err != nil {
		panic(fmt.Sprintf("failed to create new MongoDB connection: %v", err))
	}

	stripeClient := stripe.NewClient(&stripe.Config{
		SecretKey:     "sk_test_xyz",
		PublicKey:     "pk_test_xyz",
		WebhookSecret: testWebhookSecret,
	})
	testRouter = New(&Config{
		Host:     "127.0.0.1",
		Port:     8080,
		DB:       testDB,
		Stripe:   stripeClient,
		Webhooks: stripe.NewService(stripeClient),
	}).Router()

	code := m.Run()

	testDB.Close()
	if err := dbContainer.Terminate(ctx); err != nil {
		panic(fmt.Sprintf("failed to terminate MongoDB container: %v", err))
	}
	os.Exit(code)
}

// doRequest serves a request through the router and decodes the response
// envelope, if any.
func doRequest(t *testing.T, method, path string, body any) (int, *Response) {
	t.Helper()
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case []byte:
		reqBody = bytes.NewBuffer(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reqBody)
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)
	if rec.Body.Len() == 0 {
		return rec.Code, nil
	}
	resp := &Response{}
	if err := json.Unmarshal(rec.Body.Bytes(), resp); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	return rec.Code, resp
}

func TestRequestValidation(t *testing.T) {
	c := qt.New(t)
	// malformed JSON bodies never reach the provider or the database
	status, resp := doRequest(t, http.MethodPost, createCustomerEndpoint, []byte("{not json"))
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	c.Assert(resp.Success, qt.IsFalse)

	// neither do malformed emails
	status, resp = doRequest(t, http.MethodPost, createCustomerEndpoint,
		&CustomerRequest{Email: "not-an-email"})
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	c.Assert(resp.Success, qt.IsFalse)

	// negative amounts are rejected up front
	status, resp = doRequest(t, http.MethodPost, createPaymentIntentEndpoint,
		&PaymentIntentRequest{Amount: -100, Currency: "usd"})
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	c.Assert(resp.Success, qt.IsFalse)

	status, resp = doRequest(t, http.MethodPost, createChargeEndpoint,
		&ChargeRequest{Amount: -100, Currency: "usd", CustomerEmail: "customer@example.com"})
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	c.Assert(resp.Success, qt.IsFalse)

	// a refund request needs a charge to refund
	status, resp = doRequest(t, http.MethodPost, createRefundEndpoint,
		&RefundRequest{Amount: 100})
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	c.Assert(resp.Success, qt.IsFalse)
}

func TestCustomerTransactionsNoContent(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// an email with no local customer answers 204 with an empty body, the
	// provider is never consulted
	status, resp := doRequest(t, http.MethodPost, customerTransactionsEndpoint,
		&TransactionsRequest{CustomerEmail: "nobody@example.com"})
	c.Assert(status, qt.Equals, http.StatusNoContent)
	c.Assert(resp, qt.IsNil)
}
