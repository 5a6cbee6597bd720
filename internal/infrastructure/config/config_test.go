package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func()
		cleanupEnv  func()
		wantError   bool
		checkConfig func(*testing.T, *Config)
	}{
		{
			name: "正常系: デフォルト値で設定を読み込む",
			setupEnv: func() {
				os.Setenv("PAYPAL_CLIENT_ID", "test-client")
				os.Setenv("PAYPAL_CLIENT_SECRET", "test-secret")
			},
			cleanupEnv: func() {
				os.Unsetenv("PAYPAL_CLIENT_ID")
				os.Unsetenv("PAYPAL_CLIENT_SECRET")
			},
			wantError: false,
			checkConfig: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "test-client", cfg.PayPal.ClientID)
				assert.Equal(t, "https://api-m.paypal.com", cfg.PayPal.APIBase)
				assert.Equal(t, 10*time.Second, cfg.PayPal.RequestTimeout)
				assert.Equal(t, 3, cfg.PayPal.TokenMaxTries)
				assert.Equal(t, "USD", cfg.Checkout.Currency)
				assert.Equal(t, "memory", cfg.Store.Backend)
			},
		},
		{
			name: "正常系: 環境変数から設定を読み込む",
			setupEnv: func() {
				os.Setenv("ENVIRONMENT", "production")
				os.Setenv("SERVER_PORT", "9000")
				os.Setenv("PAYPAL_CLIENT_ID", "prod-client")
				os.Setenv("PAYPAL_CLIENT_SECRET", "prod-secret")
				os.Setenv("PAYPAL_API_BASE", "https://api-m.sandbox.paypal.com")
				os.Setenv("PAYPAL_REQUEST_TIMEOUT", "5s")
				os.Setenv("CHECKOUT_CURRENCY", "EUR")
				os.Setenv("CHECKOUT_PUBLIC_BASE_URL", "https://pay.example.com/")
			},
			cleanupEnv: func() {
				os.Unsetenv("ENVIRONMENT")
				os.Unsetenv("SERVER_PORT")
				os.Unsetenv("PAYPAL_CLIENT_ID")
				os.Unsetenv("PAYPAL_CLIENT_SECRET")
				os.Unsetenv("PAYPAL_API_BASE")
				os.Unsetenv("PAYPAL_REQUEST_TIMEOUT")
				os.Unsetenv("CHECKOUT_CURRENCY")
				os.Unsetenv("CHECKOUT_PUBLIC_BASE_URL")
			},
			wantError: false,
			checkConfig: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "production", cfg.Environment)
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, "https://api-m.sandbox.paypal.com", cfg.PayPal.APIBase)
				assert.Equal(t, 5*time.Second, cfg.PayPal.RequestTimeout)
				assert.Equal(t, "EUR", cfg.Checkout.Currency)
				assert.Equal(t, "https://pay.example.com/api/v1/payments/success", cfg.Checkout.ReturnURL())
				assert.Equal(t, "https://pay.example.com/api/v1/payments/cancel", cfg.Checkout.CancelURL())
			},
		},
		{
			name: "異常系: PAYPAL_CLIENT_IDがない",
			setupEnv: func() {
				os.Setenv("PAYPAL_CLIENT_SECRET", "test-secret")
			},
			cleanupEnv: func() {
				os.Unsetenv("PAYPAL_CLIENT_SECRET")
			},
			wantError: true,
		},
		{
			name: "異常系: 未知のストアバックエンド",
			setupEnv: func() {
				os.Setenv("PAYPAL_CLIENT_ID", "test-client")
				os.Setenv("PAYPAL_CLIENT_SECRET", "test-secret")
				os.Setenv("RECEIPT_STORE_BACKEND", "redis")
			},
			cleanupEnv: func() {
				os.Unsetenv("PAYPAL_CLIENT_ID")
				os.Unsetenv("PAYPAL_CLIENT_SECRET")
				os.Unsetenv("RECEIPT_STORE_BACKEND")
			},
			wantError: true,
		},
		{
			name: "正常系: mysqlバックエンド",
			setupEnv: func() {
				os.Setenv("PAYPAL_CLIENT_ID", "test-client")
				os.Setenv("PAYPAL_CLIENT_SECRET", "test-secret")
				os.Setenv("RECEIPT_STORE_BACKEND", "mysql")
				os.Setenv("DB_HOST", "db.example.com")
				os.Setenv("DB_NAME", "receipts_db")
			},
			cleanupEnv: func() {
				os.Unsetenv("PAYPAL_CLIENT_ID")
				os.Unsetenv("PAYPAL_CLIENT_SECRET")
				os.Unsetenv("RECEIPT_STORE_BACKEND")
				os.Unsetenv("DB_HOST")
				os.Unsetenv("DB_NAME")
			},
			wantError: false,
			checkConfig: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.Store.Backend)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Contains(t, cfg.Database.DSN(), "db.example.com:3306")
				assert.Contains(t, cfg.Database.DSN(), "receipts_db")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			defer tt.cleanupEnv()

			cfg, err := Load()
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}
