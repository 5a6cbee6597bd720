package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := SecurityHeadersMiddleware()
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.NotContains(t, rec.Header().Get("Content-Security-Policy"), "unpkg.com")
}

func TestSecurityHeadersMiddleware_SwaggerPath(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/redoc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := SecurityHeadersMiddleware()
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	// Swagger関連のパスでは外部CDNを許可
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "cdn.jsdelivr.net")
}

func TestIsSwaggerPath(t *testing.T) {
	assert.True(t, isSwaggerPath("/swagger"))
	assert.True(t, isSwaggerPath("/redoc"))
	assert.True(t, isSwaggerPath("/openapi.yaml"))
	assert.False(t, isSwaggerPath("/api/v1/payments"))
}
