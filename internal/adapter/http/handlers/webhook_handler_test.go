package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gcash_checkout/internal/adapter/http/handlers/mocks"
	"gcash_checkout/internal/usecase"
	"gcash_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func postWebhook(h *WebhookHandler, body, signature string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/webhooks/payment-handler", h.HandlePaymentEvent)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-handler", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(PayMongoSignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_HandlePaymentEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		result usecase.WebhookResult
		err    error
		code   int
		status string
	}{
		{"fulfilled", usecase.WebhookResult{Outcome: usecase.WebhookOutcomeFulfilled}, nil, http.StatusOK, "received and processed"},
		{"duplicate", usecase.WebhookResult{Outcome: usecase.WebhookOutcomeDuplicate}, nil, http.StatusOK, "received and processed"},
		{"not paid", usecase.WebhookResult{Outcome: usecase.WebhookOutcomeNotPaid}, nil, http.StatusOK, "received and processed"},
		{"missing reference", usecase.WebhookResult{Outcome: usecase.WebhookOutcomeMissingReference}, nil, http.StatusOK, "received and processed"},
		{"ignored", usecase.WebhookResult{Outcome: usecase.WebhookOutcomeIgnored}, nil, http.StatusOK, "event ignored"},
		{"malformed", usecase.WebhookResult{}, usecase.ErrMalformedWebhookPayload, http.StatusBadRequest, "invalid payload"},
		{"bad signature", usecase.WebhookResult{}, interfaces.ErrInvalidWebhookSignature, http.StatusUnauthorized, "invalid signature"},
		{"fulfillment failed", usecase.WebhookResult{}, usecase.ErrFulfillmentFailed, http.StatusInternalServerError, "fulfillment failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIWebhookUseCase(ctrl)
			h := NewWebhookHandler(uc, nil)

			uc.EXPECT().HandleDelivery(gomock.Any(), []byte(`{"data":{}}`), "t=1,te=abc").Return(tc.result, tc.err)

			w := postWebhook(h, `{"data":{}}`, "t=1,te=abc")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if got := decodeBody(t, w)["status"]; got != tc.status {
				t.Fatalf("expected status %q, got %q", tc.status, got)
			}
		})
	}

	t.Run("unreadable body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc, nil)

		r := gin.New()
		r.POST("/webhooks/payment-handler", h.HandlePaymentEvent)
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-handler", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
