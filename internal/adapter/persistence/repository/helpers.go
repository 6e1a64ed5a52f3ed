package repository

import (
	"time"

	"gcash_checkout/internal/domain/entities"
)

const ledgerKeyPrefix = "fulfillment:"

func ledgerKey(ref entities.OrderReference) string {
	return ledgerKeyPrefix + ref.String()
}

// expired reports whether a claim made at claimedAt has outlived ttl. A zero
// ttl keeps claims forever.
func expired(claimedAt time.Time, ttl time.Duration, now time.Time) bool {
	return ttl > 0 && !claimedAt.IsZero() && now.Sub(claimedAt) >= ttl
}
