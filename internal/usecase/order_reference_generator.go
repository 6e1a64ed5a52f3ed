package usecase

import (
	"crypto/rand"
	"io"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/usecase/interfaces"
)

// RandomOrderReferenceGenerator mints references from crypto/rand.
type RandomOrderReferenceGenerator struct {
	src io.Reader
}

var _ interfaces.IOrderReferenceGenerator = (*RandomOrderReferenceGenerator)(nil)

func NewRandomOrderReferenceGenerator() *RandomOrderReferenceGenerator {
	return &RandomOrderReferenceGenerator{src: rand.Reader}
}

func (g *RandomOrderReferenceGenerator) Next() (entities.OrderReference, error) {
	return entities.NewOrderReference(g.src)
}
