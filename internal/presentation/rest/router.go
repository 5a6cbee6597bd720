package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	checkoutapp "checkout-server/internal/application/checkout"
	"checkout-server/internal/infrastructure/config"
	otelinfra "checkout-server/internal/infrastructure/observability/otel"
	"checkout-server/internal/presentation/rest/handler"
	restmiddleware "checkout-server/internal/presentation/rest/middleware"
)

// HealthChecker 依存コンポーネントのヘルスチェック
type HealthChecker interface {
	HealthCheck() error
}

// Router REST APIルーター
type Router struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	receiptHandler  *handler.ReceiptHandler
}

// NewRouter 新しいRouterを作成
// storeHealthはストアバックエンドがヘルスチェックを持たない場合nil
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	checkoutService *checkoutapp.CheckoutApplicationService,
	storeHealth HealthChecker,
) (*Router, error) {
	e := echo.New()

	// Echoのデフォルトエラーハンドラーを無効化（カスタムエラーハンドラーを使用）
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// エラーハンドリングミドルウェアで処理される
	}

	// ミドルウェアの設定
	setupMiddleware(e, logger, metrics)

	// ハンドラーの作成
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	receiptHandler := handler.NewReceiptHandler(checkoutService)

	// ルーティングの設定
	setupRoutes(e, checkoutHandler, receiptHandler, storeHealth)

	// Swagger UI / ReDoc統合
	SetupSwagger(e)

	return &Router{
		echo:            e,
		checkoutHandler: checkoutHandler,
		receiptHandler:  receiptHandler,
	}, nil
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リカバリーミドルウェア
	e.Use(middleware.Recover())

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // 本番環境では適切に設定
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// リクエストIDの設定
	e.Use(middleware.RequestID())

	// セキュリティヘッダー
	e.Use(restmiddleware.SecurityHeadersMiddleware())

	// トレーシングミドルウェア
	e.Use(restmiddleware.TracingMiddleware())

	// メトリクスミドルウェア
	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// ログミドルウェア
	e.Use(restmiddleware.LoggingMiddleware(logger))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))
}

// setupRoutes ルーティングを設定
func setupRoutes(
	e *echo.Echo,
	checkoutHandler *handler.CheckoutHandler,
	receiptHandler *handler.ReceiptHandler,
	storeHealth HealthChecker,
) {
	// API v1グループ
	api := e.Group("/api/v1")

	// 決済関連エンドポイント
	api.POST("/payments", checkoutHandler.InitiatePayment)
	api.GET("/payments/success", checkoutHandler.PaymentSuccess)
	api.GET("/payments/cancel", checkoutHandler.PaymentCancel)

	// 領収書エンドポイント
	api.GET("/receipts/:transaction_id", receiptHandler.DownloadReceipt)

	// ヘルスチェックエンドポイント
	e.GET("/health", func(c echo.Context) error {
		if storeHealth != nil {
			if err := storeHealth.HealthCheck(); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	return r.echo.Start(address)
}

// Shutdown サーバーをシャットダウン
func (r *Router) Shutdown() error {
	return r.echo.Close()
}
