package interfaces

//go:generate mockgen -source=order_reference_interface.go -destination=mocks/mock_order_reference_interface.go

import "gcash_checkout/internal/domain/entities"

// IOrderReferenceGenerator mints a fresh correlation token per checkout.
type IOrderReferenceGenerator interface {
	Next() (entities.OrderReference, error)
}
