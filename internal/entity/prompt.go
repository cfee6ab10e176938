package entity

// Channel selects one of the two templated outreach pipelines
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelLinkedIn Channel = "linkedin"
	ChannelCustom   Channel = "custom"
)

func (c Channel) IsValid() bool {
	return c == ChannelEmail || c == ChannelLinkedIn || c == ChannelCustom
}

// FormData holds the user-supplied business facts. All fields are free
// text; required-field enforcement lives in the extension UI, not here.
type FormData struct {
	CompanyName       string `json:"companyName"`
	CompanyOverview   string `json:"companyOverview"`
	PainPoints        string `json:"painPoints"`
	ValueProposition  string `json:"valueProposition"`
	SocialProof       string `json:"socialProof"`
	Competitors       string `json:"competitors"`
	Differentiators   string `json:"differentiators"`
	CallToAction      string `json:"callToAction"`
	AdditionalContext string `json:"additionalContext"`
}

// ScreenContext is an immutable snapshot of the page the extension
// captured for one generation request. It is never persisted.
type ScreenContext struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	SelectedText string `json:"selectedText,omitempty"`
	Timestamp    int64  `json:"timestamp,omitempty"`
	Author       string `json:"author,omitempty"`
	Date         string `json:"date,omitempty"`
}

// Angle is a named persuasion strategy whose prompt fragment is injected
// into the system instruction when selected
type Angle struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}
