package receipt

import (
	"context"
)

// Repository 領収書リポジトリインターフェース
// 実装はトランザクションIDをキーとし、並行アクセスに対して安全でなければならない
// （成功コールバックの重複配信は現実的に起こり得る）
type Repository interface {
	// Save 領収書を保存（同一キーは上書き、最終書き込み優先）
	Save(ctx context.Context, receipt *Receipt) error

	// FindByTransactionID トランザクションIDで領収書を取得
	FindByTransactionID(ctx context.Context, transactionID string) (*Receipt, error)

	// FindByOrderID 注文IDで領収書を取得（キャプチャの冪等性ガード用）
	FindByOrderID(ctx context.Context, orderID string) (*Receipt, error)
}
