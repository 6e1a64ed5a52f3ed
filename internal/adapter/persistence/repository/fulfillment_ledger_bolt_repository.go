package repository

import (
	"context"
	"encoding/json"
	"time"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const fulfillmentsBucket = "fulfillments"

// FulfillmentBoltLedger keeps claims in an embedded BoltDB file. Claim runs
// its check and its write inside one read-write transaction; bolt serializes
// writers, so two deliveries of the same event cannot both win.
type FulfillmentBoltLedger struct {
	db  *bolt.DB
	ttl time.Duration
	now func() time.Time
}

var _ interfaces.IFulfillmentLedger = (*FulfillmentBoltLedger)(nil)

// NewFulfillmentBoltLedger opens (or creates) the database at path and
// ensures the bucket exists.
func NewFulfillmentBoltLedger(path string, ttl time.Duration) (*FulfillmentBoltLedger, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(fulfillmentsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &FulfillmentBoltLedger{db: db, ttl: ttl, now: time.Now}, nil
}

func (l *FulfillmentBoltLedger) Close() error {
	return l.db.Close()
}

func (l *FulfillmentBoltLedger) Claim(_ context.Context, record entities.FulfillmentRecord) (bool, error) {
	claimed := false

	err := l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(fulfillmentsBucket))
		key := []byte(record.OrderReference.String())
		now := l.now()

		if raw := b.Get(key); raw != nil {
			var existing entities.FulfillmentRecord
			if err := json.Unmarshal(raw, &existing); err != nil {
				return err
			}
			if !expired(existing.ClaimedAt, l.ttl, now) {
				return nil
			}
		}

		if record.ClaimedAt.IsZero() {
			record.ClaimedAt = now.UTC()
		}
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		claimed = true
		return b.Put(key, data)
	})
	if err != nil {
		return false, err
	}
	return claimed, nil
}

// Release deletes the claim. Deleting a missing key is a no-op.
func (l *FulfillmentBoltLedger) Release(_ context.Context, ref entities.OrderReference) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(fulfillmentsBucket)).Delete([]byte(ref.String()))
	})
}
