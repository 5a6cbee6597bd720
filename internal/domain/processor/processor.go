package processor

import (
	"context"

	"checkout-server/internal/domain/checkout"
)

// Order プロセッサー側に作成された注文
// 作成後の状態はキャプチャまで外部プロセッサーが保持する
type Order struct {
	OrderID     string
	ApprovalURL string
}

// CaptureResult 注文キャプチャの結果
// TransactionIDはプロセッサーが採番するキャプチャ識別子で、領収書のキーになる
type CaptureResult struct {
	Status        string
	PayerName     string
	PayerEmail    string
	Amount        string
	Currency      string
	TransactionID string
	OrderID       string
}

// Client 外部決済プロセッサーのクライアントインターフェース
type Client interface {
	// CreateOrder 注文を作成し、支払者をリダイレクトする承認URLを返す
	CreateOrder(ctx context.Context, amount checkout.Amount, returnURL, cancelURL string) (*Order, error)

	// CaptureOrder 承認済みの注文をキャプチャする
	// 実際に資金が移動するため、呼び出し側は盲目的にリトライしてはならない
	CaptureOrder(ctx context.Context, orderID string) (*CaptureResult, error)
}
