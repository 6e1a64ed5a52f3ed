package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/infrastructure/config"
	"gcash_checkout/internal/infrastructure/logger"
	"gcash_checkout/internal/infrastructure/metrics"
	"gcash_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrMissingPayMongoSecretKey = errors.New("missing PAYMONGO_SECRET_KEY")

const (
	checkoutsPath = "/checkouts"

	// maxGatewayBody caps how much of a gateway response we buffer.
	maxGatewayBody = 1 << 20
	// maxLoggedBody caps how much of an error body goes into a log line.
	maxLoggedBody = 2048
)

// PayMongoGateway creates hosted checkout sessions through the PayMongo REST
// API. The secret key only ever lives in authHeader.
type PayMongoGateway struct {
	httpClient *http.Client
	baseURL    string
	authHeader string
	mockMode   bool
	log        *zap.Logger
	metrics    *metrics.Metrics
}

var _ interfaces.ICheckoutGateway = (*PayMongoGateway)(nil)

func NewPayMongoGateway(cfg config.PayMongoConfig, log *zap.Logger, m *metrics.Metrics) (*PayMongoGateway, error) {
	log = logger.OrNop(log).Named("payment.gateway")

	if cfg.Mock {
		log.Info("mock mode enabled")
		return &PayMongoGateway{mockMode: true, log: log, metrics: m}, nil
	}

	if cfg.SecretKey == "" {
		log.Warn("missing PAYMONGO_SECRET_KEY")
		return nil, ErrMissingPayMongoSecretKey
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	log.Info("paymongo client initialized", zap.String("api_base_url", cfg.APIBaseURL), zap.Duration("timeout", timeout))
	return &PayMongoGateway{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		authHeader: basicAuthHeader(cfg.SecretKey),
		log:        log,
		metrics:    m,
	}, nil
}

func basicAuthHeader(secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(secretKey+":"))
}

type checkoutCreateRequest struct {
	Data checkoutCreateData `json:"data"`
}

type checkoutCreateData struct {
	Attributes checkoutCreateAttributes `json:"attributes"`
}

type checkoutCreateAttributes struct {
	PaymentMethodTypes []string           `json:"payment_method_types"`
	SendEmailReceipt   bool               `json:"send_email_receipt"`
	Amount             int64              `json:"amount"`
	Currency           string             `json:"currency"`
	Description        string             `json:"description"`
	SuccessURL         string             `json:"success_url"`
	CancelURL          string             `json:"cancel_url"`
	Metadata           map[string]string  `json:"metadata"`
	LineItems          []checkoutLineItem `json:"line_items"`
}

type checkoutLineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type checkoutCreateResponse struct {
	Data *struct {
		ID         string `json:"id"`
		Attributes *struct {
			CheckoutURL string `json:"checkout_url"`
		} `json:"attributes"`
	} `json:"data"`
}

type errorResponse struct {
	Errors []struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (g *PayMongoGateway) CreateCheckoutSession(ctx context.Context, session entities.CheckoutSession) (entities.CheckoutSession, error) {
	if g == nil {
		return entities.CheckoutSession{}, interfaces.ErrGatewayNotConfigured
	}
	ref := session.OrderReference.String()

	if g.mockMode {
		g.log.Info("mock create", zap.String("order_reference", ref), zap.Int64("amount", session.AmountMinor))
		session.GatewaySessionID = "cs_mock_" + strings.TrimPrefix(ref, entities.OrderReferencePrefix+"-")
		session.RedirectURL = session.SuccessURL
		session.CreatedAt = time.Now().UTC()
		return session, nil
	}

	if g.httpClient == nil {
		return entities.CheckoutSession{}, interfaces.ErrGatewayNotConfigured
	}

	body, err := json.Marshal(toCheckoutCreateRequest(session))
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+checkoutsPath, bytes.NewReader(body))
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", g.authHeader)

	g.log.Info("create start", zap.String("order_reference", ref), zap.Int64("amount", session.AmountMinor), zap.String("currency", session.Currency))
	started := time.Now()

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.metrics.ObserveGatewayCall("unavailable", time.Since(started))
		g.log.Error("create transport failure", zap.String("order_reference", ref), zap.Duration("elapsed", time.Since(started)), zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxGatewayBody))
	if err != nil {
		g.metrics.ObserveGatewayCall("unavailable", time.Since(started))
		g.log.Error("read response failed", zap.String("order_reference", ref), zap.Int("status", resp.StatusCode), zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.metrics.ObserveGatewayCall("rejected", time.Since(started))
		rejected := &interfaces.GatewayRejectedError{StatusCode: resp.StatusCode, Detail: parseErrorDetail(raw, resp.StatusCode)}
		g.log.Error("create rejected",
			zap.String("order_reference", ref),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", rejected.Detail),
			zap.String("body", truncate(string(raw), maxLoggedBody)),
		)
		return entities.CheckoutSession{}, rejected
	}

	var parsed checkoutCreateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.Data == nil || parsed.Data.Attributes == nil || strings.TrimSpace(parsed.Data.Attributes.CheckoutURL) == "" {
		g.metrics.ObserveGatewayCall("malformed", time.Since(started))
		g.log.Error("create response malformed",
			zap.String("order_reference", ref),
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(raw), maxGatewayBody)),
		)
		return entities.CheckoutSession{}, interfaces.ErrGatewayResponseMalformed
	}

	g.metrics.ObserveGatewayCall("success", time.Since(started))
	session.GatewaySessionID = parsed.Data.ID
	session.RedirectURL = strings.TrimSpace(parsed.Data.Attributes.CheckoutURL)
	session.CreatedAt = time.Now().UTC()
	g.log.Info("create success", zap.String("order_reference", ref), zap.String("checkout_session_id", session.GatewaySessionID))
	return session, nil
}

func toCheckoutCreateRequest(s entities.CheckoutSession) checkoutCreateRequest {
	return checkoutCreateRequest{Data: checkoutCreateData{Attributes: checkoutCreateAttributes{
		PaymentMethodTypes: s.PaymentMethods,
		SendEmailReceipt:   false,
		Amount:             s.AmountMinor,
		Currency:           s.Currency,
		Description:        s.Description,
		SuccessURL:         s.SuccessURL,
		CancelURL:          s.CancelURL,
		Metadata:           map[string]string{entities.MetadataOrderReferenceKey: s.OrderReference.String()},
		LineItems: []checkoutLineItem{{
			Name:     s.ProductID,
			Quantity: 1,
			Amount:   s.AmountMinor,
			Currency: s.Currency,
		}},
	}}}
}

func parseErrorDetail(raw []byte, status int) string {
	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && len(parsed.Errors) > 0 {
		parts := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			switch {
			case e.Code != "" && e.Detail != "":
				parts = append(parts, e.Code+": "+e.Detail)
			case e.Detail != "":
				parts = append(parts, e.Detail)
			case e.Code != "":
				parts = append(parts, e.Code)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	return fmt.Sprintf("gateway returned status %d", status)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "...(truncated)"
}
