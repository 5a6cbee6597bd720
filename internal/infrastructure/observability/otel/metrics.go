package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// 作成した注文数
	OrderCount metric.Int64Counter

	// キャプチャ数
	CaptureCount metric.Int64Counter

	// 領収書ダウンロード数
	ReceiptDownloadCount metric.Int64Counter

	// プロセッサー呼び出しのレイテンシー
	UpstreamLatency metric.Float64Histogram

	// エラー率
	ErrorCount metric.Int64Counter

	// HTTPリクエスト数
	RequestCount metric.Int64Counter

	// HTTPレスポンスタイム
	ResponseTime metric.Float64Histogram
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	orderCount, err := meter.Int64Counter(
		"checkout_orders_total",
		metric.WithDescription("Total number of processor orders created"),
	)
	if err != nil {
		return nil, err
	}

	captureCount, err := meter.Int64Counter(
		"checkout_captures_total",
		metric.WithDescription("Total number of captured payments"),
	)
	if err != nil {
		return nil, err
	}

	receiptDownloadCount, err := meter.Int64Counter(
		"receipt_downloads_total",
		metric.WithDescription("Total number of receipt document downloads"),
	)
	if err != nil {
		return nil, err
	}

	upstreamLatency, err := meter.Float64Histogram(
		"upstream_request_seconds",
		metric.WithDescription("Latency of payment processor calls in seconds"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"http_response_time_seconds",
		metric.WithDescription("HTTP response time in seconds"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		OrderCount:           orderCount,
		CaptureCount:         captureCount,
		ReceiptDownloadCount: receiptDownloadCount,
		UpstreamLatency:      upstreamLatency,
		ErrorCount:           errorCount,
		RequestCount:         requestCount,
		ResponseTime:         responseTime,
	}, nil
}

// RecordOrderCreated 注文作成を記録
func (m *Metrics) RecordOrderCreated(ctx context.Context, currency string) {
	m.OrderCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("currency", currency),
		),
	)
}

// RecordCapture キャプチャを記録
func (m *Metrics) RecordCapture(ctx context.Context, status string) {
	m.CaptureCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("status", status),
		),
	)
}

// RecordReceiptDownload 領収書ダウンロードを記録
func (m *Metrics) RecordReceiptDownload(ctx context.Context) {
	m.ReceiptDownloadCount.Add(ctx, 1)
}

// RecordUpstreamLatency プロセッサー呼び出しのレイテンシーを記録
func (m *Metrics) RecordUpstreamLatency(ctx context.Context, operation string, seconds float64) {
	m.UpstreamLatency.Record(ctx, seconds,
		metric.WithAttributes(
			attribute.String("operation", operation),
		),
	)
}

// RecordRequest HTTPリクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordResponseTime HTTPレスポンスタイムを記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, seconds float64) {
	m.ResponseTime.Record(ctx, seconds,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
