package entity

// GenerateRequest is the original proxy contract: the caller sends
// pre-assembled prompt text.
type GenerateRequest struct {
	SystemInstruction string `json:"systemInstruction,omitempty"`
	UserMessage       string `json:"userMessage"`
	RequestType       string `json:"requestType,omitempty"`
}

// OutreachRequest is the structured contract: the server runs the prompt
// assembler itself before dispatching.
type OutreachRequest struct {
	Channel      Channel        `json:"channel"`
	FormData     FormData       `json:"formData"`
	Tone         string         `json:"tone,omitempty"`
	AngleID      string         `json:"angleId,omitempty"`
	Context      *ScreenContext `json:"context,omitempty"`
	CustomPrompt string         `json:"customPrompt,omitempty"`
}

// GenerationUsage is the token accounting attached to a successful result
type GenerationUsage struct {
	PromptTokens     int     `json:"promptTokens"`
	CompletionTokens int     `json:"completionTokens"`
	TotalTokens      int     `json:"totalTokens"`
	EstimatedCost    float64 `json:"estimatedCost"`
}

// GenerationResult is what callers receive. Variants is only set when the
// splitter found more than one candidate; Content is then the first one.
type GenerationResult struct {
	Success  bool             `json:"success"`
	Content  string           `json:"content"`
	Variants []string         `json:"variants,omitempty"`
	Usage    *GenerationUsage `json:"usage,omitempty"`
}
