package receipt

import (
	"fmt"
	"time"
)

// Receipt 領収書エンティティ
// キャプチャ成功時に一度だけ作成され、以後変更されない
type Receipt struct {
	transactionID string
	orderID       string
	payerName     string
	payerEmail    string
	amount        string
	currency      string
	status        string
	generatedAt   time.Time
}

// NewReceipt 新しいReceiptエンティティを作成
// 必須フィールドが欠けている場合はErrInvalidReceiptDataを返す
func NewReceipt(
	transactionID string,
	orderID string,
	payerName string,
	payerEmail string,
	amount string,
	currency string,
	status string,
	generatedAt time.Time,
) (*Receipt, error) {
	required := map[string]string{
		"transaction_id": transactionID,
		"order_id":       orderID,
		"payer_name":     payerName,
		"payer_email":    payerEmail,
		"amount":         amount,
		"currency":       currency,
		"status":         status,
	}
	for field, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidReceiptData, field)
		}
	}
	if generatedAt.IsZero() {
		return nil, fmt.Errorf("%w: missing generated_at", ErrInvalidReceiptData)
	}

	return &Receipt{
		transactionID: transactionID,
		orderID:       orderID,
		payerName:     payerName,
		payerEmail:    payerEmail,
		amount:        amount,
		currency:      currency,
		status:        status,
		generatedAt:   generatedAt,
	}, nil
}

// TransactionID トランザクションIDを返す
func (r *Receipt) TransactionID() string {
	return r.transactionID
}

// OrderID 注文IDを返す
func (r *Receipt) OrderID() string {
	return r.orderID
}

// PayerName 支払者名を返す
func (r *Receipt) PayerName() string {
	return r.payerName
}

// PayerEmail 支払者メールアドレスを返す
func (r *Receipt) PayerEmail() string {
	return r.payerEmail
}

// Amount 金額を返す
func (r *Receipt) Amount() string {
	return r.amount
}

// Currency 通貨コードを返す
func (r *Receipt) Currency() string {
	return r.currency
}

// Status プロセッサーが返した決済ステータスを返す
func (r *Receipt) Status() string {
	return r.status
}

// GeneratedAt 領収書の生成日時を返す
func (r *Receipt) GeneratedAt() time.Time {
	return r.generatedAt
}
