package entity

// Settings categories persisted as JSON blobs in the settings table
const (
	SettingsCategoryPrompts   = "prompts"
	SettingsCategoryAPIConfig = "api_config"
)

// PromptSettings holds the admin-managed prompt configuration. Template
// fields are optional: an empty string means "use the compiled-in
// fallback".
type PromptSettings struct {
	Principles       string  `json:"principles"`
	Angles           []Angle `json:"angles"`
	EmailMaxWords    int     `json:"emailMaxWords"`
	LinkedInMaxWords int     `json:"linkedinMaxWords"`

	EmailSystemPrompt       string `json:"emailSystemPrompt"`
	LinkedInSystemPrompt    string `json:"linkedinSystemPrompt"`
	EmailUserPrompt         string `json:"emailUserPrompt"`
	LinkedInUserPrompt      string `json:"linkedinUserPrompt"`
	EmailNoContextPrompt    string `json:"emailNoContextPrompt"`
	LinkedInNoContextPrompt string `json:"linkedinNoContextPrompt"`

	BusinessInfoWarning string `json:"businessInfoWarning"`
}

// AngleByID returns the angle matching id, or nil when absent. A missing
// angle is not an error: the assembler resolves it to an empty fragment.
func (p *PromptSettings) AngleByID(id string) *Angle {
	if p == nil || id == "" {
		return nil
	}
	for i := range p.Angles {
		if p.Angles[i].ID == id {
			return &p.Angles[i]
		}
	}
	return nil
}

// APIConfig holds the admin-managed Gemini configuration
type APIConfig struct {
	GeminiAPIKey string  `json:"geminiApiKey"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"maxTokens"`
	TopP         float64 `json:"topP"`
}

// Settings is the merged view served to clients: compiled-in defaults
// overlaid with whatever the admin stored per category.
type Settings struct {
	Prompts   PromptSettings `json:"prompts"`
	APIConfig APIConfig      `json:"api_config"`
}
