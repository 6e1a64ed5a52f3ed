package interfaces

//go:generate mockgen -source=webhook_signature_interface.go -destination=mocks/mock_webhook_signature_interface.go

import "errors"

var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

// IWebhookSignatureVerifier authenticates a raw webhook body against the
// signature header the gateway sent with it.
type IWebhookSignatureVerifier interface {
	Verify(payload []byte, signatureHeader string) error
}
