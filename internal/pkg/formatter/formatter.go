package formatter

import (
	"fmt"

	"github.com/salescraft/outreach-backend/internal/entity"
)

const baseTitle = "Token Usage Report"

// Formatter renders a usage report in one export encoding
type Formatter interface {
	Format(report *entity.UsageReport) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ReportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatCSV:
		return NewCSVFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
