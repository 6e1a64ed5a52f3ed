package response

import (
	"strings"

	"gcash_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	defaultRedirectStatus = "unknown"
	defaultRedirectRef    = "N/A"
)

// PaymentStatusView feeds the redirect landing page. Values are echoed as
// received; the page never looks anything up.
type PaymentStatusView struct {
	Status  string
	Ref     string
	Success bool
}

func NewPaymentStatusView(status, ref string) PaymentStatusView {
	if status == "" {
		status = defaultRedirectStatus
	}
	if ref == "" {
		ref = defaultRedirectRef
	}
	return PaymentStatusView{
		Status:  status,
		Ref:     ref,
		Success: status == string(entities.RedirectOutcomeSuccess),
	}
}

// CheckoutPageView feeds the checkout page.
type CheckoutPageView struct {
	ProductID   string
	Price       string
	Currency    string
	ButtonLabel string
}

func NewCheckoutPageView(productID string, price decimal.Decimal) CheckoutPageView {
	p := price.StringFixed(entities.MinorUnitExponent)
	return CheckoutPageView{
		ProductID:   productID,
		Price:       p,
		Currency:    entities.CurrencyPHP,
		ButtonLabel: strings.ToUpper("Pay with " + entities.DefaultPaymentMethod + " (" + entities.CurrencyPHP + " " + p + ")"),
	}
}
