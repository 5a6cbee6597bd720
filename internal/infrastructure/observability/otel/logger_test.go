package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNewLogger(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := NewLogger(tracer)

	assert.NotNil(t, logger)
	assert.Equal(t, tracer, logger.tracer)
}

func TestLogger_Log(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := NewLogger(tracer)

	tests := []struct {
		name    string
		level   LogLevel
		message string
		fields  map[string]interface{}
	}{
		{
			name:    "Infoレベルのログ",
			level:   LogLevelInfo,
			message: "test message",
			fields:  map[string]interface{}{"key": "value"},
		},
		{
			name:    "Debugレベルのログ",
			level:   LogLevelDebug,
			message: "debug message",
			fields:  nil,
		},
		{
			name:    "Warnレベルのログ",
			level:   LogLevelWarn,
			message: "warn message",
			fields:  map[string]interface{}{"count": 42},
		},
		{
			name:    "Errorレベルのログ",
			level:   LogLevelError,
			message: "error message",
			fields:  map[string]interface{}{"error": "test error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			// ログ出力がパニックやエラーなく行われることを確認
			logger.Log(ctx, tt.level, tt.message, tt.fields)
		})
	}
}

func TestLogger_ErrorWithNilFields(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := NewLogger(tracer)

	// fieldsがnilでもerrorフィールドが付与される
	logger.Error(context.Background(), "failure", assert.AnError, nil)
}
