package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション全体の設定
type Config struct {
	Server        ServerConfig
	PayPal        PayPalConfig
	Checkout      CheckoutConfig
	Store         StoreConfig
	Database      DatabaseConfig
	OpenTelemetry OpenTelemetryConfig
	Environment   string
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// PayPalConfig 決済プロセッサー（PayPal）設定
type PayPalConfig struct {
	ClientID       string
	ClientSecret   string
	APIBase        string
	RequestTimeout time.Duration
	TokenMaxTries  int
}

// CheckoutConfig チェックアウトフロー設定
type CheckoutConfig struct {
	Currency      string
	BrandName     string
	PublicBaseURL string
	Merchant      MerchantConfig
}

// MerchantConfig 領収書に記載する発行者情報
type MerchantConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// StoreConfig 領収書ストアのバックエンド設定
type StoreConfig struct {
	Backend string // "memory", "mysql"
}

// DatabaseConfig データベース設定（mysqlバックエンド使用時）
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// OpenTelemetryConfig OpenTelemetry設定
type OpenTelemetryConfig struct {
	Enabled         bool
	ServiceName     string
	ServiceVersion  string
	OTLPEndpoint    string
	OTLPInsecure    bool
	TraceExporter   string // "otlp", "stdout"
	MetricsExporter string // "otlp", "stdout"
}

// Load 設定を読み込む
func Load() (*Config, error) {
	// .envファイルを読み込む（存在しない場合は無視）
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")

	cfg := &Config{
		Environment: env,
		Server: ServerConfig{
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		PayPal: PayPalConfig{
			ClientID:       getEnv("PAYPAL_CLIENT_ID", ""),
			ClientSecret:   getEnv("PAYPAL_CLIENT_SECRET", ""),
			APIBase:        getEnv("PAYPAL_API_BASE", "https://api-m.paypal.com"),
			RequestTimeout: getEnvAsDuration("PAYPAL_REQUEST_TIMEOUT", 10*time.Second),
			TokenMaxTries:  getEnvAsInt("PAYPAL_TOKEN_MAX_TRIES", 3),
		},
		Checkout: CheckoutConfig{
			Currency:      getEnv("CHECKOUT_CURRENCY", "USD"),
			BrandName:     getEnv("CHECKOUT_BRAND_NAME", "BFL Technologies"),
			PublicBaseURL: getEnv("CHECKOUT_PUBLIC_BASE_URL", "http://localhost:8080"),
			Merchant: MerchantConfig{
				Name:    getEnv("MERCHANT_NAME", "BFL Technologies"),
				Address: getEnv("MERCHANT_ADDRESS", "00100 Nairobi, Kenya"),
				Phone:   getEnv("MERCHANT_PHONE", "+254 700 000000"),
				Email:   getEnv("MERCHANT_EMAIL", "bflkenya@gmail.com"),
			},
		},
		Store: StoreConfig{
			Backend: getEnv("RECEIPT_STORE_BACKEND", "memory"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "checkout_db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute),
		},
		OpenTelemetry: OpenTelemetryConfig{
			Enabled:         getEnvAsBool("OTEL_ENABLED", true),
			ServiceName:     getEnv("OTEL_SERVICE_NAME", "checkout-server"),
			ServiceVersion:  getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
			OTLPInsecure:    getEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			TraceExporter:   getEnv("OTEL_TRACES_EXPORTER", "otlp"),
			MetricsExporter: getEnv("OTEL_METRICS_EXPORTER", "otlp"),
		},
	}

	// 必須設定の検証
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate 設定の検証
func (c *Config) validate() error {
	if c.PayPal.ClientID == "" {
		return fmt.Errorf("PAYPAL_CLIENT_ID is required")
	}
	if c.PayPal.ClientSecret == "" {
		return fmt.Errorf("PAYPAL_CLIENT_SECRET is required")
	}
	switch c.Store.Backend {
	case "memory":
	case "mysql":
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required when RECEIPT_STORE_BACKEND is mysql")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("DB_NAME is required when RECEIPT_STORE_BACKEND is mysql")
		}
	default:
		return fmt.Errorf("unsupported RECEIPT_STORE_BACKEND: %s", c.Store.Backend)
	}
	return nil
}

// ReturnURL 決済成功コールバックのURLを返す
func (c *CheckoutConfig) ReturnURL() string {
	return strings.TrimRight(c.PublicBaseURL, "/") + "/api/v1/payments/success"
}

// CancelURL 決済キャンセルコールバックのURLを返す
func (c *CheckoutConfig) CancelURL() string {
	return strings.TrimRight(c.PublicBaseURL, "/") + "/api/v1/payments/cancel"
}

// DSN データベース接続文字列を返す
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// getEnv 環境変数を取得（デフォルト値付き）
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool 環境変数を真偽値として取得
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration 環境変数を時間として取得
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
