package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestTracingMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/success", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/payments/success")

	var spanInContext bool
	mw := TracingMiddleware()
	handler := mw(func(c echo.Context) error {
		span := trace.SpanFromContext(c.Request().Context())
		spanInContext = span != nil
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, spanInContext)
	assert.Equal(t, http.StatusOK, rec.Code)
}
