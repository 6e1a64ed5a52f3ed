package fulfillment

import (
	"context"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/infrastructure/logger"
	"gcash_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogFulfiller records the entitlement grant as a structured log line. It is
// the stand-in for the access-unlocking service, and is idempotent because it
// has no side effect beyond the log.
type LogFulfiller struct {
	log *zap.Logger
}

var _ interfaces.IFulfiller = (*LogFulfiller)(nil)

func NewLogFulfiller(log *zap.Logger) *LogFulfiller {
	return &LogFulfiller{log: logger.OrNop(log).Named("fulfillment")}
}

func (f *LogFulfiller) Fulfill(ctx context.Context, record entities.FulfillmentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.log.Info("access granted",
		zap.String("order_reference", record.OrderReference.String()),
		zap.String("payment_id", record.PaymentID),
		zap.String("event_id", record.EventID),
		zap.String("amount", entities.MajorFromMinorUnits(record.Amount).StringFixed(entities.MinorUnitExponent)),
		zap.String("currency", record.Currency),
		zap.Bool("livemode", record.Livemode),
	)
	return nil
}
