package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gcash_checkout/internal/adapter/http/views"
	"gcash_checkout/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func pageRouter() *gin.Engine {
	h := NewPageHandler(config.ProductConfig{ID: "Product-X-Access", Price: decimal.RequireFromString("999")})
	r := gin.New()
	r.SetHTMLTemplate(views.Templates())
	r.GET("/", h.Index)
	r.GET("/payment-status", h.PaymentStatus)
	r.GET("/v1/ping", Ping)
	return r
}

func TestPageHandler_PaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := pageRouter()

	t.Run("echoes status and reference", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment-status?status=success&ref=ORD-1234", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, ">success<") || !strings.Contains(body, ">ORD-1234<") {
			t.Fatalf("values not echoed: %s", body)
		}
		if !strings.Contains(body, "bg-green-900/50") {
			t.Fatalf("success should render green")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment-status", nil))

		body := w.Body.String()
		if !strings.Contains(body, ">unknown<") || !strings.Contains(body, ">N/A<") {
			t.Fatalf("defaults not rendered: %s", body)
		}
	})

	t.Run("escapes query values", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment-status?status=%3Cb%3Ex%3C%2Fb%3E&ref=ORD-1", nil))

		if strings.Contains(w.Body.String(), "<b>x</b>") {
			t.Fatalf("status was not escaped")
		}
	})
}

func TestPageHandler_Index(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := pageRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "PHP 999.00") || !strings.Contains(w.Body.String(), "/api/create-gcash-payment") {
		t.Fatalf("unexpected page: %s", w.Body.String())
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := pageRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}
