package prompt

import (
	"strings"

	"github.com/salescraft/outreach-backend/internal/entity"
)

// legacySeparator joins system instruction and user message for callers
// that still consume a single prompt string.
const legacySeparator = "\n\n---\n\n"

// BuildSystemInstruction renders the stable, non-prospect-specific part of
// a generation request: tone rules plus company knowledge. The admin
// template wins when set; otherwise the compiled-in fallback is used.
func BuildSystemInstruction(
	channel entity.Channel,
	form entity.FormData,
	tone string,
	settings *entity.PromptSettings,
	angleID string,
) string {
	template := systemTemplate(channel, settings)
	vars := BuildVariables(form, tone, settings, angleID, channel)
	return FillTemplate(template, vars)
}

// BuildUserMessage renders the prospect-specific part. With no context the
// no-context template (or fallback sentence) is returned verbatim, with no
// templating applied.
func BuildUserMessage(
	channel entity.Channel,
	ctx *entity.ScreenContext,
	settings *entity.PromptSettings,
) string {
	if ctx == nil {
		return noContextMessage(channel, settings)
	}
	template := userTemplate(channel, settings)
	return FillTemplate(template, BuildContextVariables(ctx, channel))
}

// BuildCombinedPrompt concatenates system instruction and user message for
// legacy single-string callers.
func BuildCombinedPrompt(
	channel entity.Channel,
	form entity.FormData,
	ctx *entity.ScreenContext,
	tone string,
	settings *entity.PromptSettings,
	angleID string,
) string {
	return BuildSystemInstruction(channel, form, tone, settings, angleID) +
		legacySeparator +
		BuildUserMessage(channel, ctx, settings)
}

// BuildCustomPrompt is the free-form pipeline: the user's raw prompt with
// an inline context block and an inline business-information block. This
// path is string-built and has no admin override.
func BuildCustomPrompt(customPrompt string, form entity.FormData, ctx *entity.ScreenContext) string {
	var b strings.Builder
	b.WriteString(customPrompt)
	b.WriteString("\n\n")

	if ctx != nil {
		b.WriteString("CONTEXT FROM WEBPAGE:\n")
		b.WriteString("URL: " + ctx.URL + "\n")
		b.WriteString("Page Title: " + ctx.Title + "\n")
		b.WriteString("Content: " + truncate(ctx.Content, contextContentLimit) + "\n")
		if ctx.SelectedText != "" {
			b.WriteString("Selected Text: " + ctx.SelectedText + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("BUSINESS INFORMATION:\n")
	b.WriteString("Company: " + form.CompanyName + "\n")
	b.WriteString("Overview: " + form.CompanyOverview + "\n")
	b.WriteString("Pain Points: " + form.PainPoints + "\n")
	b.WriteString("Value Proposition: " + form.ValueProposition + "\n")
	b.WriteString("Social Proof: " + form.SocialProof + "\n")
	b.WriteString("Competitors: " + form.Competitors + "\n")
	b.WriteString("Differentiators: " + form.Differentiators + "\n")
	b.WriteString("Call to Action: " + form.CallToAction)
	if form.AdditionalContext != "" {
		b.WriteString("\nAdditional Context: " + form.AdditionalContext)
	}

	return b.String()
}

func systemTemplate(channel entity.Channel, settings *entity.PromptSettings) string {
	if channel == entity.ChannelLinkedIn {
		if settings != nil && settings.LinkedInSystemPrompt != "" {
			return settings.LinkedInSystemPrompt
		}
		return DefaultLinkedInSystemPrompt
	}
	if settings != nil && settings.EmailSystemPrompt != "" {
		return settings.EmailSystemPrompt
	}
	return DefaultEmailSystemPrompt
}

func userTemplate(channel entity.Channel, settings *entity.PromptSettings) string {
	if channel == entity.ChannelLinkedIn {
		if settings != nil && settings.LinkedInUserPrompt != "" {
			return settings.LinkedInUserPrompt
		}
		return DefaultLinkedInUserPrompt
	}
	if settings != nil && settings.EmailUserPrompt != "" {
		return settings.EmailUserPrompt
	}
	return DefaultEmailUserPrompt
}

func noContextMessage(channel entity.Channel, settings *entity.PromptSettings) string {
	if channel == entity.ChannelLinkedIn {
		if settings != nil && settings.LinkedInNoContextPrompt != "" {
			return settings.LinkedInNoContextPrompt
		}
		return DefaultLinkedInNoContextPrompt
	}
	if settings != nil && settings.EmailNoContextPrompt != "" {
		return settings.EmailNoContextPrompt
	}
	return DefaultEmailNoContextPrompt
}
