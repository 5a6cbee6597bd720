package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	checkoutapp "checkout-server/internal/application/checkout"
)

// CheckoutHandler チェックアウト関連ハンドラー
type CheckoutHandler struct {
	checkoutService *checkoutapp.CheckoutApplicationService
}

// NewCheckoutHandler 新しいCheckoutHandlerを作成
func NewCheckoutHandler(checkoutService *checkoutapp.CheckoutApplicationService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// InitiatePayment 決済開始ハンドラー
// @Summary 決済を開始
// @Description プロセッサー側の注文を作成し、支払者の承認ページへリダイレクトします
// @Tags payments
// @Accept x-www-form-urlencoded
// @Accept json
// @Param amount formData string true "決済金額"
// @Success 302 "承認ページへリダイレクト"
// @Failure 400 {object} ErrorResponse "不正な金額"
// @Failure 502 {object} ErrorResponse "プロセッサーエラー"
// @Failure 504 {object} ErrorResponse "プロセッサータイムアウト"
// @Router /payments [post]
func (h *CheckoutHandler) InitiatePayment(c echo.Context) error {
	var reqBody InitiatePaymentRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.checkoutService.InitiatePayment(c.Request().Context(), &checkoutapp.InitiatePaymentRequest{
		Amount: reqBody.Amount,
	})
	if err != nil {
		return err
	}

	// 支払者をプロセッサーの承認ページへ誘導する
	return c.Redirect(http.StatusFound, resp.ApprovalURL)
}

// PaymentSuccess 決済承認後のコールバックハンドラー
// @Summary 承認済みの決済を確定
// @Description プロセッサーから戻された注文をキャプチャし、領収書を発行します
// @Tags payments
// @Produce json
// @Param token query string true "プロセッサーの注文ID"
// @Success 200 {object} PaymentSuccessResponse "決済確定"
// @Failure 400 {object} ErrorResponse "tokenパラメーター欠落"
// @Failure 502 {object} ErrorResponse "プロセッサーエラー"
// @Failure 504 {object} ErrorResponse "プロセッサータイムアウト"
// @Router /payments/success [get]
func (h *CheckoutHandler) PaymentSuccess(c echo.Context) error {
	orderID := c.QueryParam("token")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token is required")
	}

	resp, err := h.checkoutService.FinalizePayment(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, PaymentSuccessResponse{
		TransactionID: resp.TransactionID,
		OrderID:       resp.OrderID,
		PayerName:     resp.PayerName,
		PayerEmail:    resp.PayerEmail,
		Amount:        resp.Amount,
		Currency:      resp.Currency,
		Status:        resp.Status,
		ReceiptURL:    fmt.Sprintf("/api/v1/receipts/%s", resp.TransactionID),
	})
}

// PaymentCancel 決済キャンセルのコールバックハンドラー
// @Summary 決済キャンセルを記録
// @Description 支払者が承認ページでキャンセルした場合のコールバックです
// @Tags payments
// @Produce json
// @Param token query string false "プロセッサーの注文ID"
// @Success 200 {object} PaymentCancelResponse "キャンセル受付"
// @Router /payments/cancel [get]
func (h *CheckoutHandler) PaymentCancel(c echo.Context) error {
	orderID := c.QueryParam("token")

	resp := h.checkoutService.CancelPayment(c.Request().Context(), orderID)

	return c.JSON(http.StatusOK, PaymentCancelResponse{
		OrderID: resp.OrderID,
		Status:  resp.AttemptStatus,
		Message: "Payment was cancelled",
	})
}
