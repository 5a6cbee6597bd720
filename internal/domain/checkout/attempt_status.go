package checkout

import (
	"fmt"
)

// AttemptStatus 決済試行のライフサイクル状態を表す値オブジェクト
type AttemptStatus string

const (
	AttemptStatusRequested        AttemptStatus = "requested"         // 決済要求を受付
	AttemptStatusOrderCreated     AttemptStatus = "order_created"     // プロセッサー側の注文を作成済み
	AttemptStatusAwaitingApproval AttemptStatus = "awaiting_approval" // 支払者の承認待ち
	AttemptStatusCaptured         AttemptStatus = "captured"          // 資金をキャプチャ済み
	AttemptStatusReceiptAvailable AttemptStatus = "receipt_available" // 領収書を取得可能
	AttemptStatusFailed           AttemptStatus = "failed"            // 失敗（吸収状態）
	AttemptStatusCancelled        AttemptStatus = "cancelled"         // 支払者によるキャンセル（吸収状態）
)

// transitions 許可される状態遷移
// failedは全非終端状態から、cancelledはawaiting_approvalからのみ到達可能
var transitions = map[AttemptStatus][]AttemptStatus{
	AttemptStatusRequested:        {AttemptStatusOrderCreated, AttemptStatusFailed},
	AttemptStatusOrderCreated:     {AttemptStatusAwaitingApproval, AttemptStatusFailed},
	AttemptStatusAwaitingApproval: {AttemptStatusCaptured, AttemptStatusCancelled, AttemptStatusFailed},
	AttemptStatusCaptured:         {AttemptStatusReceiptAvailable, AttemptStatusFailed},
	AttemptStatusReceiptAvailable: {},
	AttemptStatusFailed:           {},
	AttemptStatusCancelled:        {},
}

// NewAttemptStatus 新しいAttemptStatusを作成
func NewAttemptStatus(s string) (AttemptStatus, error) {
	status := AttemptStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid attempt status: %s", s)
	}
	return status, nil
}

// String 文字列表現を返す
func (as AttemptStatus) String() string {
	return string(as)
}

// Valid 有効なステータスかどうかを返す
func (as AttemptStatus) Valid() bool {
	_, ok := transitions[as]
	return ok
}

// IsTerminal 終端状態かどうかを返す
func (as AttemptStatus) IsTerminal() bool {
	return len(transitions[as]) == 0
}

// CanTransitionTo 指定した状態へ遷移可能かどうかを返す
func (as AttemptStatus) CanTransitionTo(to AttemptStatus) bool {
	for _, next := range transitions[as] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo 指定した状態へ遷移する
// 許可されていない遷移の場合はErrInvalidTransitionを返す
func (as AttemptStatus) TransitionTo(to AttemptStatus) (AttemptStatus, error) {
	if !as.CanTransitionTo(to) {
		return as, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, as, to)
	}
	return to, nil
}
