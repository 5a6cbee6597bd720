package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"checkout-server/internal/domain/receipt"
	"checkout-server/internal/infrastructure/config"
)

// PDFRenderer 領収書のPDFレンダラー
// 同じ領収書からは常にバイト単位で同一のPDFを生成する
type PDFRenderer struct {
	merchant config.MerchantConfig
}

// NewPDFRenderer 新しいPDFRendererを作成
func NewPDFRenderer(merchant config.MerchantConfig) *PDFRenderer {
	return &PDFRenderer{
		merchant: merchant,
	}
}

// Render 領収書をPDFに変換する
func (r *PDFRenderer) Render(rec *receipt.Receipt) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: receipt is nil", receipt.ErrInvalidReceiptData)
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	// 決定的な出力にするため圧縮を無効化し、作成日時を領収書の生成日時に固定する
	pdf.SetCompression(false)
	pdf.SetCreationDate(rec.GeneratedAt())
	pdf.SetModificationDate(rec.GeneratedAt())
	pdf.AddPage()

	// タイトル
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 112, 186)
	pdf.CellFormat(0, 12, "PAYMENT RECEIPT", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// 発行者情報
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, r.merchant.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, r.merchant.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, r.merchant.Phone, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, r.merchant.Email, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// 領収書メタ情報
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Date: "+rec.GeneratedAt().Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Transaction ID: "+rec.TransactionID(), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Order ID: "+rec.OrderID(), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// 支払者情報
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Billed To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, rec.PayerName(), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, rec.PayerEmail(), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// 支払明細
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0, 112, 186)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(120, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(120, 8, "Payment for services", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, rec.Amount()+" "+rec.Currency(), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, "TOTAL PAID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, rec.Amount()+" "+rec.Currency(), "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	// 決済ステータス
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Status: "+rec.Status(), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	// フッター
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, "Thank you for your payment!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "This is a computer-generated receipt and requires no signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt pdf: %w", err)
	}

	return buf.Bytes(), nil
}
