package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttemptStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{name: "正常系: requested", input: "requested", wantError: false},
		{name: "正常系: awaiting_approval", input: "awaiting_approval", wantError: false},
		{name: "正常系: receipt_available", input: "receipt_available", wantError: false},
		{name: "異常系: 未知のステータス", input: "unknown", wantError: true},
		{name: "異常系: 空文字", input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := NewAttemptStatus(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, status.String())
		})
	}
}

func TestAttemptStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AttemptStatus
		to   AttemptStatus
		want bool
	}{
		{name: "requested -> order_created", from: AttemptStatusRequested, to: AttemptStatusOrderCreated, want: true},
		{name: "requested -> failed", from: AttemptStatusRequested, to: AttemptStatusFailed, want: true},
		{name: "requested -> captured は不可", from: AttemptStatusRequested, to: AttemptStatusCaptured, want: false},
		{name: "order_created -> awaiting_approval", from: AttemptStatusOrderCreated, to: AttemptStatusAwaitingApproval, want: true},
		{name: "awaiting_approval -> captured", from: AttemptStatusAwaitingApproval, to: AttemptStatusCaptured, want: true},
		{name: "awaiting_approval -> cancelled", from: AttemptStatusAwaitingApproval, to: AttemptStatusCancelled, want: true},
		{name: "captured -> cancelled は不可", from: AttemptStatusCaptured, to: AttemptStatusCancelled, want: false},
		{name: "captured -> receipt_available", from: AttemptStatusCaptured, to: AttemptStatusReceiptAvailable, want: true},
		{name: "receipt_available は終端", from: AttemptStatusReceiptAvailable, to: AttemptStatusFailed, want: false},
		{name: "failed は吸収状態", from: AttemptStatusFailed, to: AttemptStatusRequested, want: false},
		{name: "cancelled は吸収状態", from: AttemptStatusCancelled, to: AttemptStatusCaptured, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAttemptStatus_TransitionTo(t *testing.T) {
	t.Run("正常系: 許可された遷移", func(t *testing.T) {
		next, err := AttemptStatusAwaitingApproval.TransitionTo(AttemptStatusCaptured)
		require.NoError(t, err)
		assert.Equal(t, AttemptStatusCaptured, next)
	})

	t.Run("異常系: 許可されていない遷移は元の状態を保持", func(t *testing.T) {
		next, err := AttemptStatusCancelled.TransitionTo(AttemptStatusCaptured)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, AttemptStatusCancelled, next)
	})
}

func TestAttemptStatus_IsTerminal(t *testing.T) {
	assert.True(t, AttemptStatusReceiptAvailable.IsTerminal())
	assert.True(t, AttemptStatusFailed.IsTerminal())
	assert.True(t, AttemptStatusCancelled.IsTerminal())
	assert.False(t, AttemptStatusRequested.IsTerminal())
	assert.False(t, AttemptStatusAwaitingApproval.IsTerminal())
}
