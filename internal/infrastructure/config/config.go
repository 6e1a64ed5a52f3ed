package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	LedgerBackendMemory   = "memory"
	LedgerBackendBolt     = "bolt"
	LedgerBackendRedis    = "redis"
	LedgerBackendDynamoDB = "dynamodb"
)

var (
	ErrInvalidPublicBaseURL = errors.New("invalid PUBLIC_BASE_URL")
	ErrInvalidProductPrice  = errors.New("invalid PRODUCT_PRICE")
	ErrInvalidLedgerBackend = errors.New("invalid LEDGER_BACKEND")
)

// Config is built once at startup and handed to constructors. Request
// handling code never reads the environment.
type Config struct {
	Port          string
	Environment   string
	LogLevel      string
	PublicBaseURL string

	PayMongo PayMongoConfig
	Product  ProductConfig
	Ledger   LedgerConfig
	Redis    RedisConfig
	DynamoDB DynamoDBConfig
}

type PayMongoConfig struct {
	SecretKey        string
	APIBaseURL       string
	Timeout          time.Duration
	WebhookSecret    string
	WebhookTolerance time.Duration
	PaymentMethods   []string
	Mock             bool
}

type ProductConfig struct {
	ID    string
	Price decimal.Decimal
}

type LedgerConfig struct {
	Backend   string
	TTL       time.Duration
	BoltPath  string
	TableName string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DynamoDBConfig mirrors the AWS env vars. Local DynamoDB does not validate
// credentials, hence the "local" defaults.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	port := strings.TrimSpace(v.GetString("PORT"))

	baseURL, err := resolvePublicBaseURL(v, port)
	if err != nil {
		return Config{}, err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(v.GetString("PRODUCT_PRICE")))
	if err != nil || !price.IsPositive() {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidProductPrice, v.GetString("PRODUCT_PRICE"))
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString("LEDGER_BACKEND")))
	switch backend {
	case LedgerBackendMemory, LedgerBackendBolt, LedgerBackendRedis, LedgerBackendDynamoDB:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidLedgerBackend, backend)
	}

	cfg := Config{
		Port:          port,
		Environment:   v.GetString("ENVIRONMENT"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		PublicBaseURL: baseURL,
		PayMongo: PayMongoConfig{
			SecretKey:        strings.TrimSpace(v.GetString("PAYMONGO_SECRET_KEY")),
			APIBaseURL:       strings.TrimRight(strings.TrimSpace(v.GetString("PAYMONGO_API_BASE_URL")), "/"),
			Timeout:          v.GetDuration("PAYMONGO_TIMEOUT"),
			WebhookSecret:    strings.TrimSpace(v.GetString("PAYMONGO_WEBHOOK_SECRET")),
			WebhookTolerance: v.GetDuration("PAYMONGO_WEBHOOK_TOLERANCE"),
			PaymentMethods:   splitList(v.GetString("PAYMONGO_PAYMENT_METHODS")),
			Mock:             isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")) || isTruthy(v.GetString("PAYMONGO_MOCK")),
		},
		Product: ProductConfig{
			ID:    strings.TrimSpace(v.GetString("PRODUCT_ID")),
			Price: price,
		},
		Ledger: LedgerConfig{
			Backend:   backend,
			TTL:       v.GetDuration("LEDGER_TTL"),
			BoltPath:  v.GetString("LEDGER_BOLT_PATH"),
			TableName: v.GetString("FULFILLMENTS_TABLE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			Endpoint:        strings.TrimSpace(v.GetString("DYNAMODB_ENDPOINT")),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
	}
	if cfg.PayMongo.Timeout <= 0 {
		cfg.PayMongo.Timeout = 15 * time.Second
	}
	if len(cfg.PayMongo.PaymentMethods) == 0 {
		cfg.PayMongo.PaymentMethods = []string{"gcash"}
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// PaymentStatusURL is the browser return page the gateway redirects to.
func (c Config) PaymentStatusURL() string {
	return c.PublicBaseURL + "/payment-status"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PAYMONGO_API_BASE_URL", "https://api.paymongo.com/v1")
	v.SetDefault("PAYMONGO_TIMEOUT", "15s")
	v.SetDefault("PAYMONGO_WEBHOOK_TOLERANCE", "5m")
	v.SetDefault("PAYMONGO_PAYMENT_METHODS", "gcash")
	v.SetDefault("PRODUCT_ID", "Product-X-Access")
	v.SetDefault("PRODUCT_PRICE", "999.00")
	v.SetDefault("LEDGER_BACKEND", LedgerBackendMemory)
	v.SetDefault("LEDGER_TTL", "72h")
	v.SetDefault("LEDGER_BOLT_PATH", "fulfillments.db")
	v.SetDefault("FULFILLMENTS_TABLE", "fulfillments")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
}

func resolvePublicBaseURL(v *viper.Viper, port string) (string, error) {
	raw := strings.TrimSpace(v.GetString("PUBLIC_BASE_URL"))
	if raw == "" {
		raw = strings.TrimSpace(v.GetString("RENDER_EXTERNAL_URL"))
	}
	if raw == "" {
		raw = "http://127.0.0.1:" + port
	}
	raw = strings.TrimRight(raw, "/")

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPublicBaseURL, raw)
	}
	return raw, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
