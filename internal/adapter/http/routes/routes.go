package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "gcash_checkout/docs"
	"gcash_checkout/internal/adapter/http/handlers"
	"gcash_checkout/internal/adapter/http/views"
	"gcash_checkout/internal/infrastructure/config"
	"gcash_checkout/internal/infrastructure/fulfillment"
	"gcash_checkout/internal/infrastructure/logger"
	"gcash_checkout/internal/infrastructure/metrics"
	"gcash_checkout/internal/infrastructure/payments"
	"gcash_checkout/internal/usecase"
	"gcash_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies is everything NewRouter needs. Build it with
// BuildDependencies or by hand in tests.
type Dependencies struct {
	Config   config.Config
	Log      *zap.Logger
	Metrics  *metrics.Metrics
	Checkout usecase.ICheckoutUseCase
	Webhook  usecase.IWebhookUseCase
}

// BuildDependencies wires gateway, ledger, fulfiller and usecases from cfg.
// The returned closer releases the ledger backend.
func BuildDependencies(ctx context.Context, cfg config.Config, log *zap.Logger, m *metrics.Metrics) (Dependencies, func() error, error) {
	log = logger.OrNop(log)

	var gateway interfaces.ICheckoutGateway
	pmGateway, err := payments.NewPayMongoGateway(cfg.PayMongo, log, m)
	if err != nil {
		log.Warn("PayMongo gateway not configured; checkout will fail", zap.Error(err))
	} else {
		gateway = pmGateway
	}
	if cfg.PayMongo.Mock {
		log.Warn("payment gateway mock mode enabled; no real checkout sessions will be created")
	}

	var verifier interfaces.IWebhookSignatureVerifier
	if v := payments.NewPayMongoSignatureVerifier(cfg.PayMongo.WebhookSecret, cfg.PayMongo.WebhookTolerance); v != nil {
		verifier = v
	} else {
		log.Warn("PAYMONGO_WEBHOOK_SECRET not set; webhook signatures are not verified")
	}

	ledger, closeLedger, err := newFulfillmentLedger(ctx, cfg, log)
	if err != nil {
		return Dependencies{}, nil, err
	}

	deps := Dependencies{
		Config:   cfg,
		Log:      log,
		Metrics:  m,
		Checkout: usecase.NewCheckoutUseCase(gateway, usecase.NewRandomOrderReferenceGenerator(), cfg, log, m),
		Webhook:  usecase.NewWebhookUseCase(verifier, ledger, fulfillment.NewLogFulfiller(log), log, m),
	}
	return deps, closeLedger, nil
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	log := logger.OrNop(deps.Log).Named("http")

	router := gin.New()
	router.SetHTMLTemplate(views.Templates())
	setMiddlewares(router, log, deps.Metrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	pageHandler := handlers.NewPageHandler(deps.Config.Product)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout, log)
	webhookHandler := handlers.NewWebhookHandler(deps.Webhook, log)

	addPageRoutes(router, pageHandler)
	addCheckoutRoutes(router, checkoutHandler)
	addWebhookRoutes(router, webhookHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	log = logger.OrNop(log)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()
	deps, closeLedger, err := BuildDependencies(ctx, cfg, log, m)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLedger(); err != nil {
			log.Error("ledger close failed", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.PayMongo.Timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("public_base_url", cfg.PublicBaseURL),
			zap.String("ledger_backend", cfg.Ledger.Backend),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
