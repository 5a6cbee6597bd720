package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	checkoutapp "checkout-server/internal/application/checkout"
)

// ReceiptHandler 領収書関連ハンドラー
type ReceiptHandler struct {
	checkoutService *checkoutapp.CheckoutApplicationService
}

// NewReceiptHandler 新しいReceiptHandlerを作成
func NewReceiptHandler(checkoutService *checkoutapp.CheckoutApplicationService) *ReceiptHandler {
	return &ReceiptHandler{
		checkoutService: checkoutService,
	}
}

// DownloadReceipt 領収書ダウンロードハンドラー
// @Summary 領収書PDFをダウンロード
// @Description 保存済みの領収書をPDFファイルとして返します
// @Tags receipts
// @Produce application/pdf
// @Param transaction_id path string true "トランザクションID"
// @Success 200 {file} file "領収書PDF"
// @Failure 404 {object} ErrorResponse "領収書が存在しない"
// @Router /receipts/{transaction_id} [get]
func (h *ReceiptHandler) DownloadReceipt(c echo.Context) error {
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "transaction_id is required")
	}

	doc, err := h.checkoutService.FetchReceipt(c.Request().Context(), transactionID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Content)
}
