package repository

import (
	"context"
	"sync"
	"time"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/usecase/interfaces"
)

// sweepThreshold bounds how large the map grows before expired claims are
// purged in bulk.
const sweepThreshold = 1024

// FulfillmentMemoryLedger is a process-local claim set with TTL. It is the
// minimum bar for webhook deduplication: it forgets everything on restart and
// is not shared between replicas.
type FulfillmentMemoryLedger struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[entities.OrderReference]entities.FulfillmentRecord
	now     func() time.Time
}

var _ interfaces.IFulfillmentLedger = (*FulfillmentMemoryLedger)(nil)

func NewFulfillmentMemoryLedger(ttl time.Duration) *FulfillmentMemoryLedger {
	return &FulfillmentMemoryLedger{
		ttl:     ttl,
		entries: make(map[entities.OrderReference]entities.FulfillmentRecord),
		now:     time.Now,
	}
}

func (l *FulfillmentMemoryLedger) Claim(_ context.Context, record entities.FulfillmentRecord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.entries) >= sweepThreshold {
		l.sweep(now)
	}

	if existing, ok := l.entries[record.OrderReference]; ok && !expired(existing.ClaimedAt, l.ttl, now) {
		return false, nil
	}

	if record.ClaimedAt.IsZero() {
		record.ClaimedAt = now.UTC()
	}
	l.entries[record.OrderReference] = record
	return true, nil
}

func (l *FulfillmentMemoryLedger) Release(_ context.Context, ref entities.OrderReference) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, ref)
	return nil
}

func (l *FulfillmentMemoryLedger) sweep(now time.Time) {
	for ref, rec := range l.entries {
		if expired(rec.ClaimedAt, l.ttl, now) {
			delete(l.entries, ref)
		}
	}
}
