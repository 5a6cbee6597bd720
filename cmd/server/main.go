package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	checkoutapp "checkout-server/internal/application/checkout"
	"checkout-server/internal/domain/receipt"
	"checkout-server/internal/infrastructure/config"
	"checkout-server/internal/infrastructure/document"
	otelinfra "checkout-server/internal/infrastructure/observability/otel"
	"checkout-server/internal/infrastructure/paypal"
	"checkout-server/internal/infrastructure/persistence/memory"
	"checkout-server/internal/infrastructure/persistence/mysql"
	"checkout-server/internal/presentation/rest"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("checkout-server")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("checkout-server")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// 領収書ストアの初期化
	var receiptRepo receipt.Repository
	var storeHealth rest.HealthChecker
	switch cfg.Store.Backend {
	case "mysql":
		db, err := mysql.NewDB(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		receiptRepo = mysql.NewReceiptRepository(db)
		storeHealth = db
	default:
		receiptRepo = memory.NewReceiptRepository()
	}

	// 決済プロセッサークライアントの初期化
	processorClient := paypal.NewClient(&cfg.PayPal, &cfg.Checkout, logger, metrics)

	// 領収書レンダラーの初期化
	renderer := document.NewPDFRenderer(cfg.Checkout.Merchant)

	// アプリケーションサービスの初期化
	checkoutService := checkoutapp.NewCheckoutApplicationService(
		processorClient,
		receiptRepo,
		renderer,
		cfg.Checkout.ReturnURL(),
		cfg.Checkout.CancelURL(),
		logger,
		metrics,
	)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(
		cfg,
		logger,
		metrics,
		checkoutService,
		storeHealth,
	)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// サーバーアドレスの設定
	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// REST APIサーバーを別ゴルーチンで起動
	go func() {
		log.Printf("Checkout server starting on %s", address)
		if err := router.Start(address); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	// シグナルを待機
	<-quit
	log.Println("Shutting down server...")

	if err := router.Shutdown(); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server stopped")
}
