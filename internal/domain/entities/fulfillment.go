package entities

import "time"

// FulfillmentRecord is what the ledger stores when an order reference is
// claimed for fulfillment.
//
// Storage model (DynamoDB):
//   - PK: order_reference
//   - TTL attribute: expires_at (epoch seconds, optional)

type FulfillmentRecord struct {
	OrderReference OrderReference `json:"order_reference"`
	EventID        string         `json:"event_id,omitempty"`
	PaymentID      string         `json:"payment_id,omitempty"`
	Amount         int64          `json:"amount,omitempty"`
	Currency       string         `json:"currency,omitempty"`
	Livemode       bool           `json:"livemode"`
	ClaimedAt      time.Time      `json:"claimed_at"`
}

func NewFulfillmentRecord(event WebhookEvent, now time.Time) FulfillmentRecord {
	return FulfillmentRecord{
		OrderReference: event.OrderReference,
		EventID:        event.ID,
		PaymentID:      event.PaymentID,
		Amount:         event.Amount,
		Currency:       event.Currency,
		Livemode:       event.Livemode,
		ClaimedAt:      now.UTC(),
	}
}
