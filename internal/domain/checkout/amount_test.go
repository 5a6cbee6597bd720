package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantError bool
		wantValue string
	}{
		{
			name:      "正常系: 小数点2桁の金額",
			raw:       "25.00",
			wantError: false,
			wantValue: "25.00",
		},
		{
			name:      "正常系: 整数の金額は2桁に正規化される",
			raw:       "100",
			wantError: false,
			wantValue: "100.00",
		},
		{
			name:      "正常系: 前後の空白は無視される",
			raw:       " 10.50 ",
			wantError: false,
			wantValue: "10.50",
		},
		{
			name:      "異常系: ゼロ",
			raw:       "0",
			wantError: true,
		},
		{
			name:      "異常系: 負の金額",
			raw:       "-1.00",
			wantError: true,
		},
		{
			name:      "異常系: 非数値",
			raw:       "abc",
			wantError: true,
		},
		{
			name:      "異常系: 空文字",
			raw:       "",
			wantError: true,
		},
		{
			name:      "異常系: 上限超過",
			raw:       "1000000.01",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := NewAmount(tt.raw)
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, amount.Value())
		})
	}
}
