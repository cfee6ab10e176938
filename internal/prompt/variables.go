package prompt

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/salescraft/outreach-backend/internal/entity"
)

const (
	// DefaultTone is used when the caller does not pick one
	DefaultTone = "professional"

	defaultEmailMaxWords    = 200
	defaultLinkedInMaxWords = 300

	// contextContentLimit bounds how much scraped page text reaches the
	// prompt
	contextContentLimit = 2000
)

// BuildVariables assembles the substitution map for the system-instruction
// templates. Every optional input defaults to a safe empty value; the
// builder never fails. Labeled blocks are only emitted when the source
// field is non-empty, so templates never render a stray label.
func BuildVariables(
	form entity.FormData,
	tone string,
	settings *entity.PromptSettings,
	angleID string,
	channel entity.Channel,
) map[string]string {
	if tone == "" {
		tone = DefaultTone
	}

	vars := map[string]string{
		"tone":              tone,
		"maxWords":          strconv.Itoa(maxWordsFor(settings, channel)),
		"principles":        principlesBlock(settings),
		"angle":             angleBlock(settings, angleID),
		"companyName":       form.CompanyName,
		"painPoints":        form.PainPoints,
		"valueProposition":  form.ValueProposition,
		"companyOverview":   labeledLine("Company Overview: ", form.CompanyOverview),
		"competitors":       labeledLine("Primary Competitors: ", form.Competitors),
		"differentiators":   labeledLine("Product Differentiators: ", form.Differentiators),
		"socialProof":       labeledBlock("SOCIAL PROOF:\n", form.SocialProof),
		"callToAction":      labeledBlock("CALL TO ACTION EXAMPLES:\n", form.CallToAction),
		"additionalContext": labeledBlock("ADDITIONAL CONTEXT:\n", form.AdditionalContext),
	}

	return vars
}

// BuildContextVariables assembles the map for the user-message templates,
// built from the screen context alone. Callers with no context must not
// call this; they select the no-context template instead.
func BuildContextVariables(ctx *entity.ScreenContext, channel entity.Channel) map[string]string {
	return map[string]string{
		"prospectContext": prospectContext(ctx, channel),
	}
}

func maxWordsFor(settings *entity.PromptSettings, channel entity.Channel) int {
	if channel == entity.ChannelLinkedIn {
		if settings != nil && settings.LinkedInMaxWords > 0 {
			return settings.LinkedInMaxWords
		}
		return defaultLinkedInMaxWords
	}
	if settings != nil && settings.EmailMaxWords > 0 {
		return settings.EmailMaxWords
	}
	return defaultEmailMaxWords
}

func principlesBlock(settings *entity.PromptSettings) string {
	if settings == nil || settings.Principles == "" {
		return ""
	}
	return "GUIDING PRINCIPLES:\n" + settings.Principles + "\n"
}

// angleBlock resolves the selected angle to its prompt fragment. An
// unknown id is a silent no-op, not an error.
func angleBlock(settings *entity.PromptSettings, angleID string) string {
	angle := settings.AngleByID(angleID)
	if angle == nil || angle.Prompt == "" {
		return ""
	}
	return "MESSAGE ANGLE:\n" + angle.Prompt + "\n"
}

func labeledLine(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}

func labeledBlock(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}

func prospectContext(ctx *entity.ScreenContext, channel entity.Channel) string {
	if ctx == nil {
		return ""
	}

	urlLabel, titleLabel, contentLabel := "Profile/Page URL: ", "Page Title: ", "Profile/Page Content:\n"
	if channel == entity.ChannelLinkedIn {
		urlLabel, titleLabel, contentLabel = "LinkedIn Profile URL: ", "Profile Title: ", "Profile Content:\n"
	}

	var parts []string
	if ctx.URL != "" {
		parts = append(parts, urlLabel+ctx.URL)
	}
	if ctx.Title != "" {
		parts = append(parts, titleLabel+ctx.Title)
	}
	if ctx.Content != "" {
		parts = append(parts, contentLabel+truncate(ctx.Content, contextContentLimit))
	}
	if ctx.SelectedText != "" {
		parts = append(parts, "Key highlighted text: "+ctx.SelectedText)
	}

	return strings.Join(parts, "\n")
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
