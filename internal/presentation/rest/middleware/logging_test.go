package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	otelinfra "checkout-server/internal/infrastructure/observability/otel"
)

func TestLoggingMiddleware(t *testing.T) {
	logger := otelinfra.NewLogger(noop.NewTracerProvider().Tracer("test"))

	t.Run("正常系: リクエストを通過させる", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/cancel", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := LoggingMiddleware(logger)
		handler := mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("異常系: エラーをそのまま伝播する", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		wantErr := errors.New("handler failed")
		mw := LoggingMiddleware(logger)
		handler := mw(func(c echo.Context) error {
			return wantErr
		})

		assert.ErrorIs(t, handler(c), wantErr)
	})
}
