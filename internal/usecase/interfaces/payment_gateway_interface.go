package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go

import (
	"context"
	"errors"
	"fmt"

	"gcash_checkout/internal/domain/entities"
)

var (
	// ErrGatewayRejected matches any GatewayRejectedError.
	ErrGatewayRejected          = errors.New("payment gateway rejected request")
	ErrGatewayResponseMalformed = errors.New("payment gateway response malformed")
	ErrGatewayUnavailable       = errors.New("payment gateway unavailable")
	ErrGatewayNotConfigured     = errors.New("payment gateway not configured")
)

// ICheckoutGateway abstracts the hosted-checkout provider (PayMongo).
//
// CreateCheckoutSession sends one authenticated creation request and returns
// the session with GatewaySessionID and RedirectURL filled in. Failures are
// classified with the errors above so callers can tell an upstream rejection
// from an unreachable gateway.
type ICheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, session entities.CheckoutSession) (entities.CheckoutSession, error)
}

// GatewayRejectedError is returned when the gateway answers with a non-2xx
// status. Detail is the best-effort message parsed from the error body; it is
// for server logs and must not be sent to buyers.
type GatewayRejectedError struct {
	StatusCode int
	Detail     string
}

func (e *GatewayRejectedError) Error() string {
	return fmt.Sprintf("payment gateway rejected request: status=%d detail=%q", e.StatusCode, e.Detail)
}

func (e *GatewayRejectedError) Is(target error) bool {
	return target == ErrGatewayRejected
}
