package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"checkout-server/internal/domain/receipt"
)

// ReceiptRepository MySQL実装のreceipt.Repository
type ReceiptRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewReceiptRepository 新しいReceiptRepositoryを作成
func NewReceiptRepository(db *DB) *ReceiptRepository {
	return &ReceiptRepository{
		db:     db,
		tracer: otel.Tracer("receipt-repository"),
	}
}

// Save 領収書を保存
// 同じトランザクションIDの再保存は上書きになる
func (r *ReceiptRepository) Save(ctx context.Context, rec *receipt.Receipt) error {
	ctx, span := r.tracer.Start(ctx, "ReceiptRepository.Save")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.transaction_id", rec.TransactionID()),
		attribute.String("db.order_id", rec.OrderID()),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.table", "receipts"),
	)

	query := `
		INSERT INTO receipts (
			transaction_id, order_id, payer_name, payer_email,
			amount, currency, status, generated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			order_id = VALUES(order_id),
			payer_name = VALUES(payer_name),
			payer_email = VALUES(payer_email),
			amount = VALUES(amount),
			currency = VALUES(currency),
			status = VALUES(status),
			generated_at = VALUES(generated_at)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.TransactionID(),
		rec.OrderID(),
		rec.PayerName(),
		rec.PayerEmail(),
		rec.Amount(),
		rec.Currency(),
		rec.Status(),
		rec.GeneratedAt(),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to save receipt: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "receipt saved")
	return nil
}

// FindByTransactionID トランザクションIDで領収書を取得
func (r *ReceiptRepository) FindByTransactionID(ctx context.Context, transactionID string) (*receipt.Receipt, error) {
	ctx, span := r.tracer.Start(ctx, "ReceiptRepository.FindByTransactionID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.transaction_id", transactionID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "receipts"),
	)

	query := `
		SELECT
			transaction_id, order_id, payer_name, payer_email,
			amount, currency, status, generated_at
		FROM receipts
		WHERE transaction_id = ?
	`

	return r.queryReceipt(ctx, span, query, transactionID)
}

// FindByOrderID 注文IDで領収書を取得
func (r *ReceiptRepository) FindByOrderID(ctx context.Context, orderID string) (*receipt.Receipt, error) {
	ctx, span := r.tracer.Start(ctx, "ReceiptRepository.FindByOrderID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.order_id", orderID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "receipts"),
	)

	query := `
		SELECT
			transaction_id, order_id, payer_name, payer_email,
			amount, currency, status, generated_at
		FROM receipts
		WHERE order_id = ?
		ORDER BY generated_at DESC
		LIMIT 1
	`

	return r.queryReceipt(ctx, span, query, orderID)
}

// queryReceipt 領収書を1件取得してエンティティに復元する
func (r *ReceiptRepository) queryReceipt(ctx context.Context, span trace.Span, query string, arg interface{}) (*receipt.Receipt, error) {
	var transactionID, orderID, payerName, payerEmail string
	var amount, currency, status string
	var generatedAt time.Time

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&transactionID,
		&orderID,
		&payerName,
		&payerEmail,
		&amount,
		&currency,
		&status,
		&generatedAt,
	)

	if err == sql.ErrNoRows {
		span.SetStatus(otelcodes.Ok, "receipt not found")
		return nil, receipt.ErrReceiptNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find receipt: %w", err)
	}

	rec, err := receipt.NewReceipt(
		transactionID,
		orderID,
		payerName,
		payerEmail,
		amount,
		currency,
		status,
		generatedAt,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to reconstruct receipt entity: %w", err)
	}

	span.SetAttributes(attribute.String("db.transaction_id", transactionID))
	span.SetStatus(otelcodes.Ok, "receipt found")
	return rec, nil
}
