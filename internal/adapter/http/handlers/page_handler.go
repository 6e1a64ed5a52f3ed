package handlers

import (
	"net/http"

	response "gcash_checkout/internal/adapter/http/dto/response"
	"gcash_checkout/internal/adapter/http/views"
	"gcash_checkout/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the two HTML pages. Neither touches the gateway or the
// fulfillment ledger.
type PageHandler struct {
	checkout response.CheckoutPageView
}

func NewPageHandler(product config.ProductConfig) *PageHandler {
	return &PageHandler{checkout: response.NewCheckoutPageView(product.ID, product.Price)}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, views.IndexTemplate, h.checkout)
}

// PaymentStatus renders where the gateway sent the browser back. The status
// query value is display-only and is never treated as proof of payment.
func (h *PageHandler) PaymentStatus(c *gin.Context) {
	c.HTML(http.StatusOK, views.PaymentStatusTemplate, response.NewPaymentStatusView(c.Query("status"), c.Query("ref")))
}
