package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment selects between the processor's sandbox and production.
type Environment string

const (
	EnvSandbox    Environment = "sandbox"
	EnvProduction Environment = "production"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	RedisAddr       string
	KafkaBrokers    []string
	KafkaTopic      string
	JWTSecret       string
	Environment     Environment
	DuitkuBaseURL   string
	MerchantCode    string
	DuitkuAPIKey    string
	CallbackURL     string
	ReturnURL       string
	ShippingFeeFlat int64
	InvoiceTTL      time.Duration
	ExpirerInterval time.Duration
	ExpirerBatch    int
	WorkerPoolSize  int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultKafkaTopic      = "order-events"
	defaultShippingFee     = 10000
	defaultInvoiceTTL      = 15 * time.Minute
	defaultExpirerInterval = 30 * time.Second
	defaultExpirerBatch    = 32
	defaultWorkerPoolSize  = 4
	defaultShutdownTimeout = 10 * time.Second

	sandboxBaseURL    = "https://sandbox.duitku.com/webapi/api/merchant"
	productionBaseURL = "https://passport.duitku.com/webapi/api/merchant"
)

// Load parses configuration from .env file, environment and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		RedisAddr:       getString(lookup, "REDIS_ADDR", ""),
		KafkaTopic:      getString(lookup, "KAFKA_TOPIC", defaultKafkaTopic),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		Environment:     Environment(getString(lookup, "DUITKU_ENV", string(EnvSandbox))),
		MerchantCode:    getString(lookup, "DUITKU_MERCHANT_CODE", ""),
		DuitkuAPIKey:    getString(lookup, "DUITKU_API_KEY", ""),
		CallbackURL:     getString(lookup, "DUITKU_CALLBACK_URL", ""),
		ReturnURL:       getString(lookup, "DUITKU_RETURN_URL", ""),
		ShippingFeeFlat: getInt64(lookup, "SHIPPING_FEE_FLAT", defaultShippingFee),
		InvoiceTTL:      getDuration(lookup, "INVOICE_TTL", defaultInvoiceTTL),
		ExpirerInterval: getDuration(lookup, "EXPIRER_INTERVAL", defaultExpirerInterval),
		ExpirerBatch:    getInt(lookup, "EXPIRER_BATCH", defaultExpirerBatch),
		WorkerPoolSize:  getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	if brokers := getString(lookup, "KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = splitList(brokers)
	}

	fs := flag.NewFlagSet("tokoku", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		invoiceTTLStr      = cfg.InvoiceTTL.String()
		expirerIntervalStr = cfg.ExpirerInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		brokersStr         = strings.Join(cfg.KafkaBrokers, ",")
		envStr             = string(cfg.Environment)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for cart and status cache")
	fs.StringVar(&brokersStr, "kafka-brokers", brokersStr, "Comma separated Kafka broker list")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", cfg.KafkaTopic, "Kafka topic for order events")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&envStr, "env", envStr, "Payment processor environment (sandbox|production)")
	fs.StringVar(&cfg.MerchantCode, "merchant-code", cfg.MerchantCode, "Duitku merchant code")
	fs.StringVar(&cfg.DuitkuAPIKey, "api-key", cfg.DuitkuAPIKey, "Duitku API key")
	fs.StringVar(&cfg.CallbackURL, "callback-url", cfg.CallbackURL, "Public URL of the payment callback endpoint")
	fs.StringVar(&cfg.ReturnURL, "return-url", cfg.ReturnURL, "URL the processor redirects customers back to")
	fs.Int64Var(&cfg.ShippingFeeFlat, "shipping-fee", cfg.ShippingFeeFlat, "Fallback flat courier shipping fee")
	fs.StringVar(&invoiceTTLStr, "invoice-ttl", invoiceTTLStr, "Invoice expiry window")
	fs.StringVar(&expirerIntervalStr, "expirer-interval", expirerIntervalStr, "Interval between payment expiry sweeps")
	fs.IntVar(&cfg.ExpirerBatch, "expirer-batch", cfg.ExpirerBatch, "Maximum payments per expiry sweep")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent expirer workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.InvoiceTTL, err = time.ParseDuration(invoiceTTLStr); err != nil {
		return nil, fmt.Errorf("invalid invoice ttl: %w", err)
	}

	if cfg.ExpirerInterval, err = time.ParseDuration(expirerIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid expirer interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if brokersStr != "" {
		cfg.KafkaBrokers = splitList(brokersStr)
	}

	switch Environment(envStr) {
	case EnvSandbox, EnvProduction:
		cfg.Environment = Environment(envStr)
	default:
		return nil, fmt.Errorf("invalid environment %q", envStr)
	}

	cfg.DuitkuBaseURL = sandboxBaseURL
	if cfg.Environment == EnvProduction {
		cfg.DuitkuBaseURL = productionBaseURL
	}
	if override := getString(lookup, "DUITKU_BASE_URL", ""); override != "" {
		cfg.DuitkuBaseURL = override
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.InvoiceTTL <= 0 {
		cfg.InvoiceTTL = defaultInvoiceTTL
	}

	if cfg.ExpirerInterval <= 0 {
		cfg.ExpirerInterval = defaultExpirerInterval
	}

	if cfg.ExpirerBatch <= 0 {
		cfg.ExpirerBatch = defaultExpirerBatch
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ShippingFeeFlat < 0 {
		cfg.ShippingFeeFlat = defaultShippingFee
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.MerchantCode == "" {
		return nil, fmt.Errorf("merchant code must be provided")
	}

	if cfg.DuitkuAPIKey == "" {
		return nil, fmt.Errorf("API key must be provided")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
