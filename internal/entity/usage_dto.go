package entity

// UsagePeriod filters the usage aggregation window
type UsagePeriod string

const (
	Period7Days  UsagePeriod = "7d"
	Period30Days UsagePeriod = "30d"
	PeriodAll    UsagePeriod = "all"
)

func (p UsagePeriod) IsValid() bool {
	return p == Period7Days || p == Period30Days || p == PeriodAll
}

// UserUsage is the per-user aggregate row
type UserUsage struct {
	UserID           string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	TotalRequests    int     `json:"totalRequests"`
	PromptTokens     int64   `json:"promptTokens"`
	CompletionTokens int64   `json:"completionTokens"`
	TotalTokens      int64   `json:"totalTokens"`
	TotalCost        float64 `json:"totalCost"`
	LastUsed         *string `json:"lastUsed"`
}

// UsageTotals sums the aggregates across users
type UsageTotals struct {
	TotalRequests    int     `json:"totalRequests"`
	PromptTokens     int64   `json:"promptTokens"`
	CompletionTokens int64   `json:"completionTokens"`
	TotalTokens      int64   `json:"totalTokens"`
	TotalCost        float64 `json:"totalCost"`
}

// UsageReport is the admin dashboard payload and the export source
type UsageReport struct {
	Period UsagePeriod `json:"period"`
	Users  []UserUsage `json:"users"`
	Totals UsageTotals `json:"totals"`
}

// ReportFormat selects the usage report export encoding
type ReportFormat string

const (
	FormatMarkdown ReportFormat = "markdown"
	FormatCSV      ReportFormat = "csv"
	FormatPDF      ReportFormat = "pdf"
)

func (f ReportFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatCSV, FormatPDF:
		return true
	}
	return false
}
