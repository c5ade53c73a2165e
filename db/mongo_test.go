package db

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/wthomasmiii/stripe-integration-ms/test"
	"go.vocdoni.io/dvote/log"
)

var testDB *MongoStorage

// Common test constants
const (
	testCustomerEmail  = "customer@example.com"
	testCustomerName   = "Test Customer"
	testCustomerPhone  = "+15550001111"
	testStripeCustomer = "cus_test123"
	testStripeCharge   = "ch_test123"
	testStripeRefund   = "re_test123"
	testCurrency       = "usd"
)

func TestMain(m *testing.M) {
	log.Init("debug", "stdout", nil)
	ctx := context.Background()
	// start a MongoDB container for testing
	dbContainer, err := test.StartMongoContainer(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to start MongoDB container: %v", err))
	}

	// get the MongoDB connection string
	mongoURI, err := dbContainer.Endpoint(ctx, "mongodb")
	if err != nil {
		panic(fmt.Sprintf("failed to get MongoDB endpoint: %v", err))
	}

	testDB, err = New(mongoURI, test.RandomDatabaseName())
	if err != nil {
		panic(fmt.Sprintf("failed to create new MongoDB connection: %v", err))
	}

	code := m.Run()

	// close the database connection
	testDB.Close()
	// stop the MongoDB container
	if err := dbContainer.Terminate(ctx); err != nil {
		panic(fmt.Sprintf("failed to terminate MongoDB container: %v", err))
	}
	os.Exit(code)
}
