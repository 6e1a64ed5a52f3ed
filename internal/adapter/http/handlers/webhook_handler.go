package handlers

import (
	"errors"
	"net/http"

	response "gcash_checkout/internal/adapter/http/dto/response"
	"gcash_checkout/internal/infrastructure/logger"
	"gcash_checkout/internal/usecase"
	"gcash_checkout/internal/usecase/interfaces"
	"gcash_checkout/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// PayMongoSignatureHeader carries "t=<unix>,te=<hex>,li=<hex>".
	PayMongoSignatureHeader = "Paymongo-Signature"

	maxWebhookBodyBytes = 1 << 20
)

// WebhookHandler receives gateway callbacks. Anything the processor accepts
// is acknowledged with 200 so the gateway stops retrying.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
	log     *zap.Logger
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{usecase: uc, log: logger.OrNop(log).Named("http.webhook")}
}

// HandlePaymentEvent godoc
// @Summary      Receive a PayMongo webhook event
// @Description  Verifies and processes a gateway event. Only payment.paid with status paid triggers fulfillment, once per order reference.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Paymongo-Signature  header    string  false  "t=<unix>,te=<hex>,li=<hex>"
// @Success      200  {object}  response.WebhookAckResponse
// @Failure      400  {object}  response.WebhookAckResponse
// @Failure      401  {object}  response.WebhookAckResponse
// @Failure      500  {object}  response.WebhookAckResponse
// @Router       /webhooks/payment-handler [post]
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		h.log.Warn("webhook body unreadable", zap.Error(err))
		c.JSON(http.StatusBadRequest, response.NewWebhookAck(response.WebhookStatusInvalidPayload))
		return
	}

	result, err := h.usecase.HandleDelivery(c.Request.Context(), raw, c.GetHeader(PayMongoSignatureHeader))
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, response.NewWebhookAck(appErr.Message))
		return
	}

	if result.Outcome == usecase.WebhookOutcomeIgnored {
		c.JSON(http.StatusOK, response.NewWebhookAck(response.WebhookStatusIgnored))
		return
	}
	c.JSON(http.StatusOK, response.NewWebhookAck(response.WebhookStatusProcessed))
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrInvalidWebhookSignature):
		return pkg.NewDomainError("INVALID_SIGNATURE", response.WebhookStatusInvalidSignature, err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrMalformedWebhookPayload):
		return pkg.NewDomainError("INVALID_PAYLOAD", response.WebhookStatusInvalidPayload, err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("FULFILLMENT_FAILED", response.WebhookStatusFulfillmentFailed, err, http.StatusInternalServerError)
	}
}
