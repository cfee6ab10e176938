package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/salescraft/outreach-backend/internal/entity"
)

const (
	csvContentType   = "text/csv; charset=utf-8"
	csvFileExtension = ".csv"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (cf *CSVFormatter) Format(report *entity.UsageReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"name", "email", "total_requests", "prompt_tokens", "completion_tokens", "total_tokens", "total_cost_usd"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, u := range report.Users {
		row := []string{
			u.Name,
			u.Email,
			strconv.Itoa(u.TotalRequests),
			strconv.FormatInt(u.PromptTokens, 10),
			strconv.FormatInt(u.CompletionTokens, 10),
			strconv.FormatInt(u.TotalTokens, 10),
			strconv.FormatFloat(u.TotalCost, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (cf *CSVFormatter) ContentType() string {
	return csvContentType
}

func (cf *CSVFormatter) FileExtension() string {
	return csvFileExtension
}
