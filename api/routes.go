package api

const (
	// customer read routes

	// GET /api/customers to list every stored customer
	customersEndpoint = "/api/customers"
	// GET /api/customers/{customerId} to get a customer by local id
	customerEndpoint = "/api/customers/{customerId}"

	// charge read routes

	// GET /api/charges to list every stored charge
	chargesEndpoint = "/api/charges"
	// GET /api/charges/{chargeId} to get a charge by local id
	chargeEndpoint = "/api/charges/{chargeId}"
	// GET /api/charges/byCustomer/{customerId} to list a customer's charges
	chargesByCustomerEndpoint = "/api/charges/byCustomer/{customerId}"

	// refund read routes

	// GET /api/refunds to list every stored refund
	refundsEndpoint = "/api/refunds"
	// GET /api/refunds/{refundId} to get a refund by local id
	refundEndpoint = "/api/refunds/{refundId}"
	// GET /api/refunds/byCharge/{chargeId} to list the refunds of a charge,
	// where chargeId is the Stripe id of the charge
	refundsByChargeEndpoint = "/api/refunds/byCharge/{chargeId}"

	// stripe write routes

	// POST /api/stripe/create-customer to create a customer
	createCustomerEndpoint = "/api/stripe/create-customer"
	// PATCH /api/stripe/update-customer/{customerId} to update a customer
	updateCustomerEndpoint = "/api/stripe/update-customer/{customerId}"
	// POST /api/stripe/create-payment-intent to create a payment intent
	createPaymentIntentEndpoint = "/api/stripe/create-payment-intent"
	// POST /api/stripe/create-charge to charge a source token
	createChargeEndpoint = "/api/stripe/create-charge"
	// POST /api/stripe/create-refund-request to refund a charge
	createRefundEndpoint = "/api/stripe/create-refund-request"
	// POST /api/stripe/get-customer-transactions to list a customer's
	// balance transactions
	customerTransactionsEndpoint = "/api/stripe/get-customer-transactions"

	// webhook route

	// POST /api/webhooks to receive Stripe webhook events
	webhooksEndpoint = "/api/webhooks"
)
