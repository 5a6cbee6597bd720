package checkout

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	checkoutdomain "checkout-server/internal/domain/checkout"
	"checkout-server/internal/domain/processor"
	"checkout-server/internal/domain/receipt"
	otelinfra "checkout-server/internal/infrastructure/observability/otel"
)

// CheckoutApplicationService チェックアウトアプリケーションサービス
// 決済開始から領収書取得までのフローを調整する
type CheckoutApplicationService struct {
	client      processor.Client
	receiptRepo receipt.Repository
	renderer    receipt.Renderer
	returnURL   string
	cancelURL   string
	logger      *otelinfra.Logger
	metrics     *otelinfra.Metrics
	tracer      trace.Tracer
}

// NewCheckoutApplicationService 新しいCheckoutApplicationServiceを作成
func NewCheckoutApplicationService(
	client processor.Client,
	receiptRepo receipt.Repository,
	renderer receipt.Renderer,
	returnURL string,
	cancelURL string,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *CheckoutApplicationService {
	return &CheckoutApplicationService{
		client:      client,
		receiptRepo: receiptRepo,
		renderer:    renderer,
		returnURL:   returnURL,
		cancelURL:   cancelURL,
		logger:      logger,
		metrics:     metrics,
		tracer:      otel.Tracer("checkout-service"),
	}
}

// InitiatePayment 決済を開始し、支払者の承認URLを返す
// 金額の検証はプロセッサー呼び出しより前に行う
func (s *CheckoutApplicationService) InitiatePayment(ctx context.Context, req *InitiatePaymentRequest) (*InitiatePaymentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutApplicationService.InitiatePayment")
	defer span.End()

	span.SetAttributes(attribute.String("checkout.amount", req.Amount))

	status := checkoutdomain.AttemptStatusRequested

	amount, err := checkoutdomain.NewAmount(req.Amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.metrics.RecordError(ctx, "invalid_amount")
		return nil, err
	}

	order, err := s.client.CreateOrder(ctx, amount, s.returnURL, s.cancelURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to create processor order", err, map[string]interface{}{
			"amount": amount.Value(),
		})
		s.metrics.RecordError(ctx, "order_creation_failed")
		return nil, err
	}

	status, err = status.TransitionTo(checkoutdomain.AttemptStatusOrderCreated)
	if err != nil {
		return nil, err
	}
	status, err = status.TransitionTo(checkoutdomain.AttemptStatusAwaitingApproval)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("checkout.order_id", order.OrderID))

	s.logger.Info(ctx, "Payment initiated", map[string]interface{}{
		"order_id": order.OrderID,
		"amount":   amount.Value(),
	})

	return &InitiatePaymentResponse{
		OrderID:       order.OrderID,
		ApprovalURL:   order.ApprovalURL,
		AttemptStatus: status.String(),
	}, nil
}

// FinalizePayment 承認済みの注文をキャプチャし、領収書を永続化する
// 同じ注文IDでの再実行は既存の領収書を返し、二重キャプチャしない
func (s *CheckoutApplicationService) FinalizePayment(ctx context.Context, orderID string) (*FinalizePaymentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutApplicationService.FinalizePayment")
	defer span.End()

	span.SetAttributes(attribute.String("checkout.order_id", orderID))

	// 冪等性保証: 既にキャプチャ済みの注文は保存済みの領収書を返す
	existing, err := s.receiptRepo.FindByOrderID(ctx, orderID)
	if err != nil && err != receipt.ErrReceiptNotFound {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to check existing receipt: %w", err)
	}
	if existing != nil {
		span.SetAttributes(attribute.Bool("checkout.duplicate", true))
		s.logger.Info(ctx, "Order already captured, returning existing receipt", map[string]interface{}{
			"order_id":       orderID,
			"transaction_id": existing.TransactionID(),
		})
		return &FinalizePaymentResponse{
			TransactionID: existing.TransactionID(),
			OrderID:       existing.OrderID(),
			PayerName:     existing.PayerName(),
			PayerEmail:    existing.PayerEmail(),
			Amount:        existing.Amount(),
			Currency:      existing.Currency(),
			Status:        existing.Status(),
			AttemptStatus: checkoutdomain.AttemptStatusReceiptAvailable.String(),
			Duplicate:     true,
		}, nil
	}

	result, err := s.client.CaptureOrder(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to capture order", err, map[string]interface{}{
			"order_id": orderID,
		})
		s.metrics.RecordError(ctx, "capture_failed")
		return nil, err
	}

	status, err := checkoutdomain.AttemptStatusAwaitingApproval.TransitionTo(checkoutdomain.AttemptStatusCaptured)
	if err != nil {
		return nil, err
	}

	rec, err := receipt.NewReceipt(
		result.TransactionID,
		result.OrderID,
		result.PayerName,
		result.PayerEmail,
		result.Amount,
		result.Currency,
		result.Status,
		time.Now().UTC(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := s.receiptRepo.Save(ctx, rec); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to save receipt", err, map[string]interface{}{
			"order_id":       orderID,
			"transaction_id": result.TransactionID,
		})
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	status, err = status.TransitionTo(checkoutdomain.AttemptStatusReceiptAvailable)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("checkout.transaction_id", result.TransactionID),
		attribute.String("checkout.status", result.Status),
	)

	s.logger.Info(ctx, "Payment finalized", map[string]interface{}{
		"order_id":       orderID,
		"transaction_id": result.TransactionID,
		"status":         result.Status,
	})

	return &FinalizePaymentResponse{
		TransactionID: result.TransactionID,
		OrderID:       result.OrderID,
		PayerName:     result.PayerName,
		PayerEmail:    result.PayerEmail,
		Amount:        result.Amount,
		Currency:      result.Currency,
		Status:        result.Status,
		AttemptStatus: status.String(),
	}, nil
}

// CancelPayment 支払者によるキャンセルを記録する
// プロセッサー側の注文は承認されないまま期限切れになる
func (s *CheckoutApplicationService) CancelPayment(ctx context.Context, orderID string) *CancelPaymentResponse {
	ctx, span := s.tracer.Start(ctx, "CheckoutApplicationService.CancelPayment")
	defer span.End()

	span.SetAttributes(attribute.String("checkout.order_id", orderID))

	status, _ := checkoutdomain.AttemptStatusAwaitingApproval.TransitionTo(checkoutdomain.AttemptStatusCancelled)

	s.logger.Info(ctx, "Payment cancelled by payer", map[string]interface{}{
		"order_id": orderID,
	})

	return &CancelPaymentResponse{
		OrderID:       orderID,
		AttemptStatus: status.String(),
	}
}

// FetchReceipt 保存済みの領収書をPDFとして取得する
func (s *CheckoutApplicationService) FetchReceipt(ctx context.Context, transactionID string) (*ReceiptDocument, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutApplicationService.FetchReceipt")
	defer span.End()

	span.SetAttributes(attribute.String("checkout.transaction_id", transactionID))

	rec, err := s.receiptRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	content, err := s.renderer.Render(rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to render receipt", err, map[string]interface{}{
			"transaction_id": transactionID,
		})
		return nil, err
	}

	s.metrics.RecordReceiptDownload(ctx)

	return &ReceiptDocument{
		Content:     content,
		ContentType: "application/pdf",
		Filename:    fmt.Sprintf("receipt_%s.pdf", transactionID),
	}, nil
}
