package handlers

import (
	"errors"
	"net/http"

	request "gcash_checkout/internal/adapter/http/dto/request"
	response "gcash_checkout/internal/adapter/http/dto/response"
	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/infrastructure/logger"
	"gcash_checkout/internal/usecase"
	"gcash_checkout/internal/usecase/interfaces"
	"gcash_checkout/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request.", http.StatusBadRequest)
	errNonNumericAmount       = pkg.NewDomainError("INVALID_AMOUNT", "Invalid amount.", entities.ErrInvalidAmount, http.StatusBadRequest)
)

// CheckoutHandler starts hosted checkouts for the buyer's page.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	log     *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, log: logger.OrNop(log).Named("http.checkout")}
}

// CreateGCashPayment godoc
// @Summary      Create a GCash checkout session
// @Description  Validates the amount, creates a PayMongo checkout session and returns the URL the browser must be sent to.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest            true  "Checkout request"
// @Success      200   {object}  response.CheckoutSuccessResponse
// @Failure      400   {object}  response.CheckoutFailureResponse
// @Failure      500   {object}  response.CheckoutFailureResponse
// @Router       /api/create-gcash-payment [post]
func (h *CheckoutHandler) CreateGCashPayment(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("invalid checkout payload", zap.Error(err))
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, response.NewCheckoutFailure(errInvalidCheckoutPayload.Message))
		return
	}
	if payload.Amount.Invalid {
		h.log.Info("non-numeric amount")
		c.JSON(errNonNumericAmount.HTTPStatus, response.NewCheckoutFailure(errNonNumericAmount.Message))
		return
	}

	session, err := h.usecase.CreateCheckout(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCheckoutError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("checkout failed", zap.String("code", appErr.Code), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, response.NewCheckoutFailure(appErr.Message))
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// mapCheckoutError turns usecase errors into user-safe messages. Upstream
// detail stays in err and is only logged.
func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "Invalid amount.", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrGatewayRejected),
		errors.Is(err, interfaces.ErrGatewayResponseMalformed),
		errors.Is(err, interfaces.ErrGatewayUnavailable),
		errors.Is(err, interfaces.ErrGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_FAILURE", "PayMongo API failure.", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error.", err, http.StatusInternalServerError)
	}
}
