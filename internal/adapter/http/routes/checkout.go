package routes

import (
	"gcash_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIndex          = "/"
	PathPaymentStatus  = "/payment-status"
	PathCreatePayment  = "/api/create-gcash-payment"
	PathPaymentWebhook = "/webhooks/payment-handler"
)

func addPageRoutes(r *gin.Engine, h *handlers.PageHandler) {
	r.GET(PathIndex, h.Index)
	r.GET(PathPaymentStatus, h.PaymentStatus)
}

func addCheckoutRoutes(r *gin.Engine, h *handlers.CheckoutHandler) {
	r.POST(PathCreatePayment, h.CreateGCashPayment)
}

func addWebhookRoutes(r *gin.Engine, h *handlers.WebhookHandler) {
	r.POST(PathPaymentWebhook, h.HandlePaymentEvent)
}
