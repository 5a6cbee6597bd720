package memory

import (
	"context"
	"sync"

	"checkout-server/internal/domain/receipt"
)

// ReceiptRepository インメモリの領収書リポジトリ
// プロセス再起動でデータは消える（開発・テスト用途）
type ReceiptRepository struct {
	mu              sync.RWMutex
	byTransactionID map[string]*receipt.Receipt
	byOrderID       map[string]*receipt.Receipt
}

// NewReceiptRepository 新しいReceiptRepositoryを作成
func NewReceiptRepository() *ReceiptRepository {
	return &ReceiptRepository{
		byTransactionID: make(map[string]*receipt.Receipt),
		byOrderID:       make(map[string]*receipt.Receipt),
	}
}

// Save 領収書を保存（同じトランザクションIDは上書き）
func (r *ReceiptRepository) Save(_ context.Context, rec *receipt.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byTransactionID[rec.TransactionID()] = rec
	r.byOrderID[rec.OrderID()] = rec
	return nil
}

// FindByTransactionID トランザクションIDで領収書を取得
func (r *ReceiptRepository) FindByTransactionID(_ context.Context, transactionID string) (*receipt.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byTransactionID[transactionID]
	if !ok {
		return nil, receipt.ErrReceiptNotFound
	}
	return rec, nil
}

// FindByOrderID 注文IDで領収書を取得
func (r *ReceiptRepository) FindByOrderID(_ context.Context, orderID string) (*receipt.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byOrderID[orderID]
	if !ok {
		return nil, receipt.ErrReceiptNotFound
	}
	return rec, nil
}
