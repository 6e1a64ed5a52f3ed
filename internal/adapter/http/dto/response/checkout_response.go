package response

import "gcash_checkout/internal/domain/entities"

type CheckoutSuccessResponse struct {
	Success     bool   `json:"success" example:"true"`
	RedirectURL string `json:"redirect_url" example:"https://checkout.paymongo.com/cs_123"`
}

type CheckoutFailureResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Invalid amount."`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSuccessResponse {
	return CheckoutSuccessResponse{Success: true, RedirectURL: s.RedirectURL}
}

func NewCheckoutFailure(message string) CheckoutFailureResponse {
	return CheckoutFailureResponse{Success: false, Error: message}
}
