package usecase

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/mock_checkout_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/infrastructure/config"
	"gcash_checkout/internal/infrastructure/logger"
	"gcash_checkout/internal/infrastructure/metrics"
	"gcash_checkout/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrOrderReferenceUnavailable = errors.New("order reference unavailable")

// CheckoutInput is what the buyer's page posts. Amount is nil when the field
// was absent.
type CheckoutInput struct {
	Amount    *decimal.Decimal
	ProductID string
}

// ICheckoutUseCase starts a hosted checkout and returns the session with the
// gateway redirect URL.
//
// Failures:
//   - entities.ErrInvalidAmount: the gateway is never called
//   - interfaces.ErrGateway*: upstream failure
//   - anything else: internal failure
type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, in CheckoutInput) (entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	gateway        interfaces.ICheckoutGateway
	refs           interfaces.IOrderReferenceGenerator
	statusURL      string
	paymentMethods []string
	log            *zap.Logger
	metrics        *metrics.Metrics
	now            func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase wires the orchestrator. A nil refs falls back to
// crypto/rand; a nil gateway makes every valid request fail with
// interfaces.ErrGatewayNotConfigured.
func NewCheckoutUseCase(gateway interfaces.ICheckoutGateway, refs interfaces.IOrderReferenceGenerator, cfg config.Config, log *zap.Logger, m *metrics.Metrics) *CheckoutUseCase {
	if refs == nil {
		refs = NewRandomOrderReferenceGenerator()
	}
	methods := cfg.PayMongo.PaymentMethods
	if len(methods) == 0 {
		methods = []string{entities.DefaultPaymentMethod}
	}
	return &CheckoutUseCase{
		gateway:        gateway,
		refs:           refs,
		statusURL:      cfg.PaymentStatusURL(),
		paymentMethods: methods,
		log:            logger.OrNop(log).Named("checkout.usecase"),
		metrics:        m,
		now:            time.Now,
	}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, in CheckoutInput) (entities.CheckoutSession, error) {
	if in.Amount == nil {
		u.metrics.RecordCheckout("invalid_amount")
		u.log.Info("rejected: amount missing")
		return entities.CheckoutSession{}, entities.ErrInvalidAmount
	}
	amountMinor, err := entities.MinorUnitsFromMajor(*in.Amount)
	if err != nil {
		u.metrics.RecordCheckout("invalid_amount")
		u.log.Info("rejected: invalid amount", zap.String("amount", in.Amount.String()))
		return entities.CheckoutSession{}, err
	}

	if u.gateway == nil {
		u.metrics.RecordCheckout("internal_error")
		return entities.CheckoutSession{}, interfaces.ErrGatewayNotConfigured
	}

	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		productID = entities.DefaultProductID
	}

	ref, err := u.refs.Next()
	if err != nil {
		u.metrics.RecordCheckout("internal_error")
		u.log.Error("order reference generation failed", zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("%w: %w", ErrOrderReferenceUnavailable, err)
	}

	successURL, err := u.callbackURL(entities.RedirectOutcomeSuccess, ref)
	if err != nil {
		u.metrics.RecordCheckout("internal_error")
		return entities.CheckoutSession{}, err
	}
	cancelURL, err := u.callbackURL(entities.RedirectOutcomeCancel, ref)
	if err != nil {
		u.metrics.RecordCheckout("internal_error")
		return entities.CheckoutSession{}, err
	}

	session := entities.CheckoutSession{
		OrderReference: ref,
		ProductID:      productID,
		Description:    "Purchase of " + productID,
		AmountMinor:    amountMinor,
		Currency:       entities.CurrencyPHP,
		PaymentMethods: u.paymentMethods,
		SuccessURL:     successURL,
		CancelURL:      cancelURL,
		CreatedAt:      u.now().UTC(),
	}

	created, err := u.gateway.CreateCheckoutSession(ctx, session)
	if err != nil {
		u.metrics.RecordCheckout(checkoutFailureOutcome(err))
		u.log.Error("checkout failed",
			zap.String("order_reference", ref.String()),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return entities.CheckoutSession{}, err
	}

	u.metrics.RecordCheckout("created")
	u.log.Info("checkout created",
		zap.String("order_reference", ref.String()),
		zap.String("product_id", productID),
		zap.Int64("amount", amountMinor),
		zap.String("checkout_session_id", created.GatewaySessionID),
	)
	return created, nil
}

// callbackURL appends status and ref to the payment-status URL, keeping any
// query the base already carries.
func (u *CheckoutUseCase) callbackURL(outcome entities.RedirectOutcome, ref entities.OrderReference) (string, error) {
	parsed, err := url.Parse(u.statusURL)
	if err != nil {
		return "", fmt.Errorf("payment status url: %w", err)
	}
	q := parsed.Query()
	q.Set("status", string(outcome))
	q.Set("ref", ref.String())
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

func checkoutFailureOutcome(err error) string {
	switch {
	case errors.Is(err, interfaces.ErrGatewayRejected):
		return "gateway_rejected"
	case errors.Is(err, interfaces.ErrGatewayResponseMalformed):
		return "gateway_malformed"
	case errors.Is(err, interfaces.ErrGatewayUnavailable):
		return "gateway_unavailable"
	default:
		return "internal_error"
	}
}
