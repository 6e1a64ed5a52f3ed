package entities

const (
	EventTypePaymentPaid   = "payment.paid"
	EventTypePaymentFailed = "payment.failed"

	PaymentStatusPaid = "paid"

	// MetadataOrderReferenceKey is the metadata key set at session creation
	// and echoed back on every payment event.
	MetadataOrderReferenceKey = "order_reference"
)

// WebhookEvent is the flattened view of a gateway callback once the envelope
// has been structurally validated. Fields other than Type may be empty.
type WebhookEvent struct {
	ID             string
	Type           string
	Livemode       bool
	PaymentID      string
	PaymentStatus  string
	OrderReference OrderReference
	Amount         int64
	Currency       string
}

func (e WebhookEvent) IsPaymentPaidEvent() bool {
	return e.Type == EventTypePaymentPaid
}

// ConfirmsPayment reports whether this event is authoritative proof that money
// moved for OrderReference.
func (e WebhookEvent) ConfirmsPayment() bool {
	return e.IsPaymentPaidEvent() && e.PaymentStatus == PaymentStatusPaid
}
