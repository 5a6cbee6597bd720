package checkout

// InitiatePaymentRequest 決済開始リクエスト
type InitiatePaymentRequest struct {
	Amount string
}

// InitiatePaymentResponse 決済開始レスポンス
type InitiatePaymentResponse struct {
	OrderID       string
	ApprovalURL   string
	AttemptStatus string
}

// FinalizePaymentResponse 決済確定レスポンス
type FinalizePaymentResponse struct {
	TransactionID string
	OrderID       string
	PayerName     string
	PayerEmail    string
	Amount        string
	Currency      string
	Status        string
	AttemptStatus string
	Duplicate     bool
}

// CancelPaymentResponse 決済キャンセルレスポンス
type CancelPaymentResponse struct {
	OrderID       string
	AttemptStatus string
}

// ReceiptDocument 生成済み領収書ドキュメント
type ReceiptDocument struct {
	Content     []byte
	ContentType string
	Filename    string
}
