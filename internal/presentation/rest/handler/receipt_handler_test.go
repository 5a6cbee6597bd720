package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checkout-server/internal/domain/receipt"
)

func TestReceiptHandler_DownloadReceipt(t *testing.T) {
	t.Run("正常系: 領収書PDFを添付ファイルとして返す", func(t *testing.T) {
		rec, err := receipt.NewReceipt("CAP1", "ORDER1", "Jane Doe", "jane@example.com",
			"25.00", "USD", "COMPLETED", time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC))
		require.NoError(t, err)

		repo := new(MockReceiptRepository)
		repo.On("FindByTransactionID", mock.Anything, "CAP1").Return(rec, nil)
		renderer := new(MockRenderer)
		renderer.On("Render", rec).Return([]byte("%PDF-1.3 test"), nil)

		service := newTestCheckoutService(t, new(MockProcessorClient), repo, renderer)
		h := NewReceiptHandler(service)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/receipts/CAP1", nil)
		w := httptest.NewRecorder()
		c := e.NewContext(req, w)
		c.SetParamNames("transaction_id")
		c.SetParamValues("CAP1")

		require.NoError(t, h.DownloadReceipt(c))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `attachment; filename="receipt_CAP1.pdf"`, w.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "%PDF-1.3 test", w.Body.String())
	})

	t.Run("異常系: 存在しない領収書はErrReceiptNotFound", func(t *testing.T) {
		repo := new(MockReceiptRepository)
		repo.On("FindByTransactionID", mock.Anything, "UNKNOWN").Return(nil, receipt.ErrReceiptNotFound)

		service := newTestCheckoutService(t, new(MockProcessorClient), repo, new(MockRenderer))
		h := NewReceiptHandler(service)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/receipts/UNKNOWN", nil)
		w := httptest.NewRecorder()
		c := e.NewContext(req, w)
		c.SetParamNames("transaction_id")
		c.SetParamValues("UNKNOWN")

		err := h.DownloadReceipt(c)
		assert.ErrorIs(t, err, receipt.ErrReceiptNotFound)
	})
}
