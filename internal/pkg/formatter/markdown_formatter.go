package formatter

import (
	"bytes"
	"fmt"

	"github.com/salescraft/outreach-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(report *entity.UsageReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s (%s)\n\n", baseTitle, report.Period)
	fmt.Fprintf(&buf, "| User | Email | Requests | Prompt | Completion | Total | Cost (USD) |\n")
	fmt.Fprintf(&buf, "|------|-------|---------:|-------:|-----------:|------:|-----------:|\n")
	for _, u := range report.Users {
		fmt.Fprintf(&buf, "| %s | %s | %d | %d | %d | %d | %.4f |\n",
			u.Name, u.Email, u.TotalRequests, u.PromptTokens, u.CompletionTokens, u.TotalTokens, u.TotalCost)
	}
	t := report.Totals
	fmt.Fprintf(&buf, "| **Total** | | %d | %d | %d | %d | %.4f |\n",
		t.TotalRequests, t.PromptTokens, t.CompletionTokens, t.TotalTokens, t.TotalCost)
	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
