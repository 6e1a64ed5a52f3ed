package routes

import (
	"context"
	"fmt"

	"gcash_checkout/internal/adapter/persistence/repository"
	"gcash_checkout/internal/infrastructure/config"
	"gcash_checkout/internal/infrastructure/database"
	"gcash_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

func noopClose() error { return nil }

// newFulfillmentLedger picks the deduplication store named by LEDGER_BACKEND.
func newFulfillmentLedger(ctx context.Context, cfg config.Config, log *zap.Logger) (interfaces.IFulfillmentLedger, func() error, error) {
	switch cfg.Ledger.Backend {
	case config.LedgerBackendBolt:
		l, err := repository.NewFulfillmentBoltLedger(cfg.Ledger.BoltPath, cfg.Ledger.TTL)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt ledger %s: %w", cfg.Ledger.BoltPath, err)
		}
		log.Info("fulfillment ledger: bolt", zap.String("path", cfg.Ledger.BoltPath))
		return l, l.Close, nil

	case config.LedgerBackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info("fulfillment ledger: redis", zap.String("addr", cfg.Redis.Addr), zap.Int("db", cfg.Redis.DB))
		return repository.NewFulfillmentRedisLedger(client, cfg.Ledger.TTL), client.Close, nil

	case config.LedgerBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb client: %w", err)
		}
		log.Info("fulfillment ledger: dynamodb", zap.String("table", cfg.Ledger.TableName), zap.String("region", cfg.DynamoDB.Region))
		return repository.NewFulfillmentDynamoLedger(ddb, cfg.Ledger.TableName, cfg.Ledger.TTL), noopClose, nil

	default:
		log.Warn("fulfillment ledger: in-memory; deduplication is lost on restart and not shared between replicas")
		return repository.NewFulfillmentMemoryLedger(cfg.Ledger.TTL), noopClose, nil
	}
}
