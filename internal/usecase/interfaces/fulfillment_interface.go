package interfaces

//go:generate mockgen -source=fulfillment_interface.go -destination=mocks/mock_fulfillment_interface.go

import (
	"context"

	"gcash_checkout/internal/domain/entities"
)

// IFulfillmentLedger deduplicates fulfillment per order reference.
//
// Claim must be an atomic check-and-set: under concurrent delivery of the same
// event exactly one caller gets claimed=true. Release undoes a claim whose
// fulfillment failed so a redelivery can try again.

type IFulfillmentLedger interface {
	Claim(ctx context.Context, record entities.FulfillmentRecord) (claimed bool, err error)
	Release(ctx context.Context, ref entities.OrderReference) error
}

// IFulfiller grants the purchased entitlement once payment is confirmed.
//
// Implementations must be idempotent keyed by order reference: the ledger makes
// a second call unlikely, but a Release after a partial failure can replay it.
type IFulfiller interface {
	Fulfill(ctx context.Context, record entities.FulfillmentRecord) error
}
