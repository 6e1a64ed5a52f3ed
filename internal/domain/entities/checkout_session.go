package entities

import "time"

const DefaultPaymentMethod = "gcash"

// DefaultProductID names the purchase when the caller sends no product_id.
const DefaultProductID = "Unknown Product"

// CheckoutSession is one purchase attempt on the gateway's hosted checkout.
//
// Nothing here is persisted: the session lives on the gateway and transitions
// to paid/cancelled there. Locally we only build the creation request and keep
// the returned id and redirect URL long enough to answer the caller.

type CheckoutSession struct {
	OrderReference OrderReference
	ProductID      string
	Description    string
	AmountMinor    int64
	Currency       string
	PaymentMethods []string
	SuccessURL     string
	CancelURL      string

	// Filled from the gateway response.
	GatewaySessionID string
	RedirectURL      string
	CreatedAt        time.Time
}

// RedirectOutcome is the status query parameter the gateway sends the browser
// back with. It is informational only and never proof of payment.
type RedirectOutcome string

const (
	RedirectOutcomeSuccess RedirectOutcome = "success"
	RedirectOutcomeCancel  RedirectOutcome = "cancel"
)
