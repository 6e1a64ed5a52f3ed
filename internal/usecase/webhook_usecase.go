package usecase

//go:generate mockgen -source=webhook_usecase.go -destination=../adapter/http/handlers/mocks/mock_webhook_usecase.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/infrastructure/logger"
	"gcash_checkout/internal/infrastructure/metrics"
	"gcash_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMalformedWebhookPayload  = errors.New("malformed webhook payload")
	ErrFulfillmentFailed        = errors.New("fulfillment failed")
	ErrFulfillmentNotConfigured = errors.New("fulfillment not configured")
)

// WebhookOutcome says what the processor did with an accepted delivery. Every
// outcome is acknowledged with a 2xx.
type WebhookOutcome string

const (
	WebhookOutcomeIgnored          WebhookOutcome = "ignored"
	WebhookOutcomeNotPaid          WebhookOutcome = "not_paid"
	WebhookOutcomeMissingReference WebhookOutcome = "missing_reference"
	WebhookOutcomeDuplicate        WebhookOutcome = "duplicate"
	WebhookOutcomeFulfilled        WebhookOutcome = "fulfilled"
)

type WebhookResult struct {
	Outcome WebhookOutcome
	Event   entities.WebhookEvent
}

// IWebhookUseCase processes one raw gateway callback.
//
// Errors:
//   - interfaces.ErrInvalidWebhookSignature
//   - ErrMalformedWebhookPayload
//   - ErrFulfillmentFailed (the claim has been released; redelivery will retry)
type IWebhookUseCase interface {
	HandleDelivery(ctx context.Context, payload []byte, signatureHeader string) (WebhookResult, error)
}

type WebhookUseCase struct {
	verifier  interfaces.IWebhookSignatureVerifier
	ledger    interfaces.IFulfillmentLedger
	fulfiller interfaces.IFulfiller
	log       *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase wires the processor. A nil verifier disables signature
// checks.
func NewWebhookUseCase(verifier interfaces.IWebhookSignatureVerifier, ledger interfaces.IFulfillmentLedger, fulfiller interfaces.IFulfiller, log *zap.Logger, m *metrics.Metrics) *WebhookUseCase {
	return &WebhookUseCase{
		verifier:  verifier,
		ledger:    ledger,
		fulfiller: fulfiller,
		log:       logger.OrNop(log).Named("webhook.usecase"),
		metrics:   m,
		now:       time.Now,
	}
}

func (u *WebhookUseCase) HandleDelivery(ctx context.Context, payload []byte, signatureHeader string) (WebhookResult, error) {
	if u.verifier != nil {
		if err := u.verifier.Verify(payload, signatureHeader); err != nil {
			u.metrics.RecordWebhookEvent("", "invalid_signature")
			u.log.Warn("signature rejected", zap.Error(err))
			return WebhookResult{}, err
		}
	}

	event, err := ParseWebhookEvent(payload)
	if err != nil {
		u.metrics.RecordWebhookEvent("", "invalid_payload")
		u.log.Warn("invalid payload", zap.Error(err), zap.Int("bytes", len(payload)))
		return WebhookResult{}, err
	}

	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("event_type", event.Type),
		zap.String("order_reference", event.OrderReference.String()),
	}

	result := WebhookResult{Event: event}
	switch {
	case !event.IsPaymentPaidEvent():
		result.Outcome = WebhookOutcomeIgnored
		u.log.Debug("event ignored", fields...)
	case !event.ConfirmsPayment():
		result.Outcome = WebhookOutcomeNotPaid
		u.log.Info("payment event without paid status", append(fields, zap.String("payment_status", event.PaymentStatus))...)
	case event.OrderReference == "":
		result.Outcome = WebhookOutcomeMissingReference
		u.log.Warn("paid event without order reference", append(fields, zap.String("payment_id", event.PaymentID))...)
	default:
		outcome, err := u.fulfill(ctx, event, fields)
		if err != nil {
			u.metrics.RecordWebhookEvent(event.Type, "fulfillment_failed")
			return WebhookResult{}, err
		}
		result.Outcome = outcome
	}

	u.metrics.RecordWebhookEvent(event.Type, string(result.Outcome))
	return result, nil
}

// fulfill claims the order reference and runs the fulfiller for the first
// claim only. A failed fulfillment releases the claim so the gateway's
// redelivery can try again.
func (u *WebhookUseCase) fulfill(ctx context.Context, event entities.WebhookEvent, fields []zap.Field) (WebhookOutcome, error) {
	if u.ledger == nil || u.fulfiller == nil {
		u.log.Error("paid event received but fulfillment is not wired", fields...)
		return "", fmt.Errorf("%w: %w", ErrFulfillmentFailed, ErrFulfillmentNotConfigured)
	}

	record := entities.NewFulfillmentRecord(event, u.now())
	claimed, err := u.ledger.Claim(ctx, record)
	if err != nil {
		u.metrics.RecordFulfillment("ledger_error")
		u.log.Error("ledger claim failed", append(fields, zap.Error(err))...)
		return "", fmt.Errorf("%w: claim: %w", ErrFulfillmentFailed, err)
	}
	if !claimed {
		u.metrics.RecordFulfillment("duplicate")
		u.log.Info("duplicate delivery, already fulfilled", fields...)
		return WebhookOutcomeDuplicate, nil
	}

	if err := u.fulfiller.Fulfill(ctx, record); err != nil {
		u.metrics.RecordFulfillment("failed")
		u.log.Error("fulfillment failed", append(fields, zap.Error(err))...)
		if relErr := u.ledger.Release(context.WithoutCancel(ctx), record.OrderReference); relErr != nil {
			u.log.Error("ledger release failed", append(fields, zap.Error(relErr))...)
		}
		return "", fmt.Errorf("%w: %w", ErrFulfillmentFailed, err)
	}

	u.metrics.RecordFulfillment("fulfilled")
	u.log.Info("payment confirmed, fulfilled", append(fields, zap.String("payment_id", event.PaymentID), zap.Int64("amount", event.Amount))...)
	return WebhookOutcomeFulfilled, nil
}

type webhookEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type jsonObject map[string]json.RawMessage

// objectField decodes key as a nested object, or returns nil for anything else.
func (o jsonObject) objectField(key string) jsonObject {
	var out jsonObject
	if err := json.Unmarshal(o[key], &out); err != nil {
		return nil
	}
	return out
}

func (o jsonObject) stringField(key string) string {
	var out string
	if err := json.Unmarshal(o[key], &out); err != nil {
		return ""
	}
	return out
}

func (o jsonObject) boolField(key string) bool {
	var out bool
	if err := json.Unmarshal(o[key], &out); err != nil {
		return false
	}
	return out
}

// minorUnitsField reads an amount that should be an integer. Fractions are rounded
// and anything unparseable or out of range yields 0.
func (o jsonObject) minorUnitsField(key string) int64 {
	var num json.Number
	if err := json.Unmarshal(o[key], &num); err != nil {
		return 0
	}
	if n, err := num.Int64(); err == nil {
		return n
	}
	f, err := num.Float64()
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int64(math.Round(f))
}

// ParseWebhookEvent flattens a gateway event envelope:
//
//	{"data":{"id":"evt_..","attributes":{"type":"payment.paid","livemode":false,
//	  "data":{"id":"pay_..","attributes":{"status":"paid","amount":99900,
//	  "currency":"PHP","metadata":{"order_reference":"ORD-.."}}}}}}
//
// The body must be a JSON object with a non-empty top-level data object.
// Everything below that is read field by field: a missing or mistyped field
// comes back as its zero value and never rejects the event.
func ParseWebhookEvent(payload []byte) (entities.WebhookEvent, error) {
	var env webhookEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return entities.WebhookEvent{}, fmt.Errorf("%w: %v", ErrMalformedWebhookPayload, err)
	}
	var data jsonObject
	if err := json.Unmarshal(env.Data, &data); err != nil || len(data) == 0 {
		return entities.WebhookEvent{}, fmt.Errorf("%w: missing data object", ErrMalformedWebhookPayload)
	}

	attrs := data.objectField("attributes")
	resource := attrs.objectField("data")
	resAttrs := resource.objectField("attributes")

	event := entities.WebhookEvent{
		ID:            data.stringField("id"),
		Type:          attrs.stringField("type"),
		Livemode:      attrs.boolField("livemode"),
		PaymentID:     resource.stringField("id"),
		PaymentStatus: resAttrs.stringField("status"),
		Amount:        resAttrs.minorUnitsField("amount"),
		Currency:      resAttrs.stringField("currency"),
	}
	if ref := resAttrs.objectField("metadata").stringField(entities.MetadataOrderReferenceKey); ref != "" {
		event.OrderReference = entities.ParseOrderReference(ref)
	}
	return event, nil
}
