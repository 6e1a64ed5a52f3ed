package request

import (
	"bytes"

	"gcash_checkout/internal/usecase"

	"github.com/shopspring/decimal"
)

// Amount accepts a JSON number or a numeric string. A value that is present
// but not numeric sets Invalid instead of failing the whole body, so the
// caller can answer with the amount error.
type Amount struct {
	Value   *decimal.Decimal
	Invalid bool
}

func (a *Amount) UnmarshalJSON(raw []byte) error {
	*a = Amount{}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		a.Invalid = true
		return nil
	}
	a.Value = &d
	return nil
}

// CheckoutRequest is the JSON body the checkout page posts. Amount.Value is
// nil when the field is absent or null.
type CheckoutRequest struct {
	Amount    Amount `json:"amount" swaggertype:"number" example:"999.00"`
	ProductID string `json:"product_id" example:"Product-X-Access"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{Amount: r.Amount.Value, ProductID: r.ProductID}
}
