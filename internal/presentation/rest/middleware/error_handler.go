package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"checkout-server/internal/domain/checkout"
	"checkout-server/internal/domain/processor"
	"checkout-server/internal/domain/receipt"
	otelinfra "checkout-server/internal/infrastructure/observability/otel"
)

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			// エラーハンドリング
			return handleError(c, err, logger)
		}
	}
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
// 上流の障害種別ごとに異なるステータスコードを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	if errors.Is(err, checkout.ErrInvalidAmount) {
		logger.Warn(ctx, "Invalid amount", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_amount",
			Message: err.Error(),
		})
	}

	if errors.Is(err, receipt.ErrReceiptNotFound) {
		logger.Warn(ctx, "Receipt not found", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "receipt_not_found",
			Message: err.Error(),
		})
	}

	if errors.Is(err, processor.ErrUpstreamTimeout) {
		logger.Error(ctx, "Upstream timeout", err, nil)
		return c.JSON(http.StatusGatewayTimeout, ErrorResponse{
			Error:   "upstream_timeout",
			Message: "The payment processor did not respond in time",
		})
	}

	if errors.Is(err, processor.ErrUpstreamAuth) {
		logger.Error(ctx, "Upstream authentication failed", err, nil)
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "upstream_auth_error",
			Message: "Failed to authenticate with the payment processor",
		})
	}

	if errors.Is(err, processor.ErrUpstreamOrder) {
		logger.Error(ctx, "Upstream order creation failed", err, nil)
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "upstream_order_error",
			Message: "The payment processor rejected the order",
		})
	}

	if errors.Is(err, processor.ErrUpstreamCapture) {
		logger.Error(ctx, "Upstream capture failed", err, nil)
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "upstream_capture_error",
			Message: "The payment processor rejected the capture",
		})
	}

	if errors.Is(err, processor.ErrUpstreamProtocol) {
		logger.Error(ctx, "Upstream protocol error", err, nil)
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "upstream_protocol_error",
			Message: "The payment processor returned an unexpected response",
		})
	}

	if errors.Is(err, receipt.ErrInvalidReceiptData) {
		logger.Error(ctx, "Invalid receipt data", err, nil)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "invalid_receipt_data",
			Message: "The receipt data is incomplete",
		})
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: "An unexpected error occurred",
	})
}
