package formatter

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/salescraft/outreach-backend/internal/entity"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"
)

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

func (pf *PDFFormatter) Format(report *entity.UsageReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("%s (%s)", baseTitle, report.Period))
	pdf.Ln(14)

	colWidths := []float64{55, 70, 25, 30, 30, 30, 30}
	headers := []string{"User", "Email", "Requests", "Prompt", "Completion", "Total", "Cost (USD)"}

	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, u := range report.Users {
		cells := []string{
			u.Name,
			u.Email,
			fmt.Sprintf("%d", u.TotalRequests),
			fmt.Sprintf("%d", u.PromptTokens),
			fmt.Sprintf("%d", u.CompletionTokens),
			fmt.Sprintf("%d", u.TotalTokens),
			fmt.Sprintf("%.4f", u.TotalCost),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, c, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	t := report.Totals
	pdf.SetFont("Arial", "B", 10)
	totals := []string{
		"Total", "",
		fmt.Sprintf("%d", t.TotalRequests),
		fmt.Sprintf("%d", t.PromptTokens),
		fmt.Sprintf("%d", t.CompletionTokens),
		fmt.Sprintf("%d", t.TotalTokens),
		fmt.Sprintf("%.4f", t.TotalCost),
	}
	for i, c := range totals {
		pdf.CellFormat(colWidths[i], 8, c, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
