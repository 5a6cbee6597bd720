package checkout

import "errors"

var (
	// ErrInvalidAmount 金額が無効なエラー（非数値・0以下・上限超過）
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidTransition 許可されていない状態遷移エラー
	ErrInvalidTransition = errors.New("invalid attempt status transition")
)
