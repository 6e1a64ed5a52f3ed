package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/infrastructure/config"
	"gcash_checkout/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecretKey = "sk_test_secret"

func testSession() entities.CheckoutSession {
	return entities.CheckoutSession{
		OrderReference: "ORD-0011223344556677",
		ProductID:      "Product-X-Access",
		Description:    "Purchase of Product-X-Access",
		AmountMinor:    99900,
		Currency:       entities.CurrencyPHP,
		PaymentMethods: []string{"gcash"},
		SuccessURL:     "http://127.0.0.1:8080/payment-status?ref=ORD-0011223344556677&status=success",
		CancelURL:      "http://127.0.0.1:8080/payment-status?ref=ORD-0011223344556677&status=cancel",
	}
}

func newTestGateway(t *testing.T, srv *httptest.Server, timeout time.Duration) *PayMongoGateway {
	t.Helper()
	g, err := NewPayMongoGateway(config.PayMongoConfig{
		SecretKey:  testSecretKey,
		APIBaseURL: srv.URL + "/v1/",
		Timeout:    timeout,
	}, zap.NewNop(), nil)
	require.NoError(t, err)
	return g
}

func TestNewPayMongoGateway_MissingSecret(t *testing.T) {
	g, err := NewPayMongoGateway(config.PayMongoConfig{APIBaseURL: "https://api.paymongo.com/v1"}, nil, nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrMissingPayMongoSecretKey)
}

func TestPayMongoGateway_NilReceiver(t *testing.T) {
	var g *PayMongoGateway
	_, err := g.CreateCheckoutSession(context.Background(), testSession())
	assert.ErrorIs(t, err, interfaces.ErrGatewayNotConfigured)
}

func TestPayMongoGateway_Success(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"cs_123","type":"checkout_session","attributes":{"checkout_url":"https://checkout.paymongo.com/cs_123"}}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv, time.Second)
	out, err := g.CreateCheckoutSession(context.Background(), testSession())
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.paymongo.com/cs_123", out.RedirectURL)
	assert.Equal(t, "cs_123", out.GatewaySessionID)
	assert.False(t, out.CreatedAt.IsZero())

	assert.Equal(t, "/v1/checkouts", gotPath)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte(testSecretKey+":")), gotAuth)

	attrs := gotBody["data"].(map[string]any)["attributes"].(map[string]any)
	assert.Equal(t, float64(99900), attrs["amount"])
	assert.Equal(t, "PHP", attrs["currency"])
	assert.Equal(t, false, attrs["send_email_receipt"])
	assert.Equal(t, "Purchase of Product-X-Access", attrs["description"])
	assert.Equal(t, []any{"gcash"}, attrs["payment_method_types"])
	assert.Equal(t, map[string]any{"order_reference": "ORD-0011223344556677"}, attrs["metadata"])
	assert.Contains(t, attrs["success_url"], "ref=ORD-0011223344556677")
	assert.Contains(t, attrs["cancel_url"], "status=cancel")
	lineItems := attrs["line_items"].([]any)
	require.Len(t, lineItems, 1)
	assert.Equal(t, float64(1), lineItems[0].(map[string]any)["quantity"])
}

func TestPayMongoGateway_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"errors":[{"code":"resource_failed_state","detail":"The payment method failed."}]}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv, time.Second)
	_, err := g.CreateCheckoutSession(context.Background(), testSession())

	require.ErrorIs(t, err, interfaces.ErrGatewayRejected)
	var rejected *interfaces.GatewayRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusPaymentRequired, rejected.StatusCode)
	assert.Equal(t, "resource_failed_state: The payment method failed.", rejected.Detail)
	assert.NotContains(t, err.Error(), testSecretKey)
}

func TestPayMongoGateway_RejectedUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv, time.Second)
	_, err := g.CreateCheckoutSession(context.Background(), testSession())

	var rejected *interfaces.GatewayRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "gateway returned status 502", rejected.Detail)
}

func TestPayMongoGateway_Malformed(t *testing.T) {
	for _, body := range []string{`{}`, `{"data":{"id":"cs_1"}}`, `{"data":{"attributes":{"checkout_url":"  "}}}`, `not json`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		g := newTestGateway(t, srv, time.Second)
		_, err := g.CreateCheckoutSession(context.Background(), testSession())
		srv.Close()

		assert.ErrorIs(t, err, interfaces.ErrGatewayResponseMalformed, "body %q", body)
	}
}

func TestPayMongoGateway_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	g := newTestGateway(t, srv, 50*time.Millisecond)
	started := time.Now()
	_, err := g.CreateCheckoutSession(context.Background(), testSession())

	assert.ErrorIs(t, err, interfaces.ErrGatewayUnavailable)
	assert.False(t, errors.Is(err, interfaces.ErrGatewayRejected))
	assert.Less(t, time.Since(started), 5*time.Second)
}

func TestPayMongoGateway_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	g := newTestGateway(t, srv, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.CreateCheckoutSession(ctx, testSession())
	assert.ErrorIs(t, err, interfaces.ErrGatewayUnavailable)
}

func TestPayMongoGateway_MockMode(t *testing.T) {
	g, err := NewPayMongoGateway(config.PayMongoConfig{Mock: true}, zap.NewNop(), nil)
	require.NoError(t, err)

	s := testSession()
	out, err := g.CreateCheckoutSession(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, s.SuccessURL, out.RedirectURL)
	assert.True(t, strings.HasPrefix(out.GatewaySessionID, "cs_mock_"))
}
