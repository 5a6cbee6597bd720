package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelinfra "checkout-server/internal/infrastructure/observability/otel"
)

func TestMetricsMiddleware(t *testing.T) {
	metrics, err := otelinfra.NewMetrics("middleware-test")
	require.NoError(t, err)

	t.Run("正常系: リクエストとレスポンスタイムを記録して通過させる", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/v1/payments")

		mw := MetricsMiddleware(metrics)
		handler := mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("異常系: エラー時もエラーを伝播する", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/receipts/UNKNOWN", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := MetricsMiddleware(metrics)
		handler := mw(func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		})

		err := handler(c)
		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
	})
}
