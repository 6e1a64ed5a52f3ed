package entities

import (
	"testing"
	"time"
)

func TestWebhookEvent_ConfirmsPayment(t *testing.T) {
	cases := []struct {
		name  string
		event WebhookEvent
		want  bool
	}{
		{"paid", WebhookEvent{Type: EventTypePaymentPaid, PaymentStatus: PaymentStatusPaid}, true},
		{"paid type, failed status", WebhookEvent{Type: EventTypePaymentPaid, PaymentStatus: "failed"}, false},
		{"paid type, empty status", WebhookEvent{Type: EventTypePaymentPaid}, false},
		{"failed type", WebhookEvent{Type: EventTypePaymentFailed, PaymentStatus: PaymentStatusPaid}, false},
		{"source.chargeable", WebhookEvent{Type: "source.chargeable"}, false},
	}
	for _, tc := range cases {
		if got := tc.event.ConfirmsPayment(); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestNewFulfillmentRecord(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("PHT", 8*3600))
	rec := NewFulfillmentRecord(WebhookEvent{
		ID:             "evt_1",
		PaymentID:      "pay_1",
		OrderReference: "ORD-1",
		Amount:         99900,
		Currency:       CurrencyPHP,
		Livemode:       true,
	}, now)

	if rec.OrderReference != "ORD-1" || rec.EventID != "evt_1" || rec.PaymentID != "pay_1" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.ClaimedAt.Location() != time.UTC || !rec.ClaimedAt.Equal(now) {
		t.Fatalf("expected UTC claim time, got %v", rec.ClaimedAt)
	}
}
