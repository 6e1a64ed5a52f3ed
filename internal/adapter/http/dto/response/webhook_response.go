package response

const (
	WebhookStatusProcessed         = "received and processed"
	WebhookStatusIgnored           = "event ignored"
	WebhookStatusInvalidPayload    = "invalid payload"
	WebhookStatusInvalidSignature  = "invalid signature"
	WebhookStatusFulfillmentFailed = "fulfillment failed"
)

// WebhookAckResponse is the body the gateway sees. Only the status code
// matters to it; the text is for humans reading delivery logs.
type WebhookAckResponse struct {
	Status string `json:"status" example:"received and processed"`
}

func NewWebhookAck(status string) WebhookAckResponse {
	return WebhookAckResponse{Status: status}
}
