package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmount 1回の決済で受け付ける最大金額
var maxAmount = decimal.NewFromInt(1_000_000)

// Amount 決済金額を表す値オブジェクト
// 外部入力から構築され、正の小数であることを保証する
type Amount struct {
	value decimal.Decimal
}

// NewAmount 外部入力の文字列からAmountを作成
// 非数値・0以下・上限超過の場合はErrInvalidAmountを返す
func NewAmount(raw string) (Amount, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	if value.Cmp(decimal.Zero) <= 0 {
		return Amount{}, ErrInvalidAmount
	}
	if value.Cmp(maxAmount) > 0 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: value}, nil
}

// Value 小数点以下2桁の文字列表現を返す（プロセッサーのワイヤー形式）
func (a Amount) Value() string {
	return a.value.StringFixed(2)
}

// String 文字列表現を返す
func (a Amount) String() string {
	return a.Value()
}
