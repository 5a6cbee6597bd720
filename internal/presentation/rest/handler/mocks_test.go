package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	checkoutapp "checkout-server/internal/application/checkout"
	checkoutdomain "checkout-server/internal/domain/checkout"
	"checkout-server/internal/domain/processor"
	"checkout-server/internal/domain/receipt"
	otelinfra "checkout-server/internal/infrastructure/observability/otel"
)

// MockProcessorClient モック決済プロセッサークライアント
type MockProcessorClient struct {
	mock.Mock
}

func (m *MockProcessorClient) CreateOrder(ctx context.Context, amount checkoutdomain.Amount, returnURL, cancelURL string) (*processor.Order, error) {
	args := m.Called(ctx, amount, returnURL, cancelURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processor.Order), args.Error(1)
}

func (m *MockProcessorClient) CaptureOrder(ctx context.Context, orderID string) (*processor.CaptureResult, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processor.CaptureResult), args.Error(1)
}

// MockReceiptRepository モック領収書リポジトリ
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) Save(ctx context.Context, rec *receipt.Receipt) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockReceiptRepository) FindByTransactionID(ctx context.Context, transactionID string) (*receipt.Receipt, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) FindByOrderID(ctx context.Context, orderID string) (*receipt.Receipt, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

// MockRenderer モック領収書レンダラー
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(rec *receipt.Receipt) ([]byte, error) {
	args := m.Called(rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newTestCheckoutService(t *testing.T, client *MockProcessorClient, repo *MockReceiptRepository, renderer *MockRenderer) *checkoutapp.CheckoutApplicationService {
	t.Helper()

	metrics, err := otelinfra.NewMetrics("handler-test")
	require.NoError(t, err)
	logger := otelinfra.NewLogger(noop.NewTracerProvider().Tracer("test"))

	return checkoutapp.NewCheckoutApplicationService(
		client,
		repo,
		renderer,
		"https://example.com/api/v1/payments/success",
		"https://example.com/api/v1/payments/cancel",
		logger,
		metrics,
	)
}
