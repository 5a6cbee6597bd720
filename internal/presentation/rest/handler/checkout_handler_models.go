package handler

// InitiatePaymentRequest 決済開始リクエスト
type InitiatePaymentRequest struct {
	Amount string `json:"amount" form:"amount"`
}

// InitiatePaymentResponse 決済開始レスポンス（リダイレクトしない場合）
type InitiatePaymentResponse struct {
	OrderID     string `json:"order_id"`
	ApprovalURL string `json:"approval_url"`
	Status      string `json:"status"`
}

// PaymentSuccessResponse 決済確定レスポンス
type PaymentSuccessResponse struct {
	TransactionID string `json:"transaction_id"`
	OrderID       string `json:"order_id"`
	PayerName     string `json:"payer_name"`
	PayerEmail    string `json:"payer_email"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	ReceiptURL    string `json:"receipt_url"`
}

// PaymentCancelResponse 決済キャンセルレスポンス
type PaymentCancelResponse struct {
	OrderID string `json:"order_id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse エラーレスポンス（Swagger定義用）
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
