package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/usecase/interfaces"

	redis "github.com/redis/go-redis/v9"
)

var ErrRedisLedgerNotConfigured = errors.New("redis ledger client not configured")

// FulfillmentRedisLedger claims order references with SET NX, so every
// replica sharing the Redis instance sees the same claim set. Expiry is
// delegated to Redis.
type FulfillmentRedisLedger struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.IFulfillmentLedger = (*FulfillmentRedisLedger)(nil)

func NewFulfillmentRedisLedger(client *redis.Client, ttl time.Duration) *FulfillmentRedisLedger {
	return &FulfillmentRedisLedger{client: client, ttl: ttl, now: time.Now}
}

func (l *FulfillmentRedisLedger) Claim(ctx context.Context, record entities.FulfillmentRecord) (bool, error) {
	if l == nil || l.client == nil {
		return false, ErrRedisLedgerNotConfigured
	}
	if record.ClaimedAt.IsZero() {
		record.ClaimedAt = l.now().UTC()
	}
	data, err := json.Marshal(record)
	if err != nil {
		return false, err
	}
	return l.client.SetNX(ctx, ledgerKey(record.OrderReference), data, l.ttl).Result()
}

func (l *FulfillmentRedisLedger) Release(ctx context.Context, ref entities.OrderReference) error {
	if l == nil || l.client == nil {
		return ErrRedisLedgerNotConfigured
	}
	return l.client.Del(ctx, ledgerKey(ref)).Err()
}
