package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForm() entity.FormData {
	return entity.FormData{
		CompanyName:      "Acme",
		CompanyOverview:  "Device management platform",
		PainPoints:       "Manual rollouts",
		ValueProposition: "Ship in minutes",
		SocialProof:      "500 customers",
		Competitors:      "BigCorp",
		Differentiators:  "Zero-touch setup",
		CallToAction:     "Book a demo",
	}
}

func sampleSettings() *entity.PromptSettings {
	return &entity.PromptSettings{
		Principles: "Be honest",
		Angles: []entity.Angle{
			{ID: "social-proof", Name: "Social Proof", Prompt: "Lead with metrics."},
		},
		EmailMaxWords:    150,
		LinkedInMaxWords: 250,
	}
}

func TestBuildVariablesLabeledBlocks(t *testing.T) {
	vars := BuildVariables(sampleForm(), "casual", sampleSettings(), "social-proof", entity.ChannelEmail)

	assert.Equal(t, "casual", vars["tone"])
	assert.Equal(t, "150", vars["maxWords"])
	assert.Equal(t, "GUIDING PRINCIPLES:\nBe honest\n", vars["principles"])
	assert.Equal(t, "MESSAGE ANGLE:\nLead with metrics.\n", vars["angle"])
	assert.Equal(t, "Acme", vars["companyName"])
	assert.Equal(t, "Company Overview: Device management platform", vars["companyOverview"])
	assert.Equal(t, "Primary Competitors: BigCorp", vars["competitors"])
	assert.Equal(t, "Product Differentiators: Zero-touch setup", vars["differentiators"])
	assert.Equal(t, "SOCIAL PROOF:\n500 customers", vars["socialProof"])
	assert.Equal(t, "CALL TO ACTION EXAMPLES:\nBook a demo", vars["callToAction"])
	assert.Equal(t, "", vars["additionalContext"])
}

func TestBuildVariablesEmptyFieldsYieldNoLabels(t *testing.T) {
	vars := BuildVariables(entity.FormData{}, "", nil, "", entity.ChannelEmail)

	assert.Equal(t, DefaultTone, vars["tone"])
	assert.Equal(t, "200", vars["maxWords"])
	for _, key := range []string{"principles", "angle", "companyOverview", "competitors", "differentiators", "socialProof", "callToAction", "additionalContext"} {
		assert.Empty(t, vars[key], "key %q should be empty", key)
	}
}

func TestBuildVariablesUnknownAngleIsSilent(t *testing.T) {
	vars := BuildVariables(sampleForm(), "professional", sampleSettings(), "does-not-exist", entity.ChannelEmail)
	assert.Equal(t, "", vars["angle"])
}

func TestBuildVariablesChannelMaxWords(t *testing.T) {
	vars := BuildVariables(sampleForm(), "", sampleSettings(), "", entity.ChannelLinkedIn)
	assert.Equal(t, "250", vars["maxWords"])

	vars = BuildVariables(sampleForm(), "", nil, "", entity.ChannelLinkedIn)
	assert.Equal(t, "300", vars["maxWords"])
}

func TestBuildVariablesIdempotent(t *testing.T) {
	first := BuildVariables(sampleForm(), "urgent", sampleSettings(), "social-proof", entity.ChannelEmail)
	second := BuildVariables(sampleForm(), "urgent", sampleSettings(), "social-proof", entity.ChannelEmail)
	assert.Equal(t, first, second)
}

func TestBuildContextVariables(t *testing.T) {
	ctx := &entity.ScreenContext{
		URL:          "https://example.com/in/jane",
		Title:        "Jane Doe - CTO",
		Content:      strings.Repeat("x", 2500),
		SelectedText: "scaling pains",
	}

	vars := BuildContextVariables(ctx, entity.ChannelEmail)
	got := vars["prospectContext"]

	require.Contains(t, got, "Profile/Page URL: https://example.com/in/jane")
	require.Contains(t, got, "Page Title: Jane Doe - CTO")
	require.Contains(t, got, "Key highlighted text: scaling pains")
	// Content is bounded to the first 2000 characters.
	assert.Contains(t, got, "Profile/Page Content:\n"+strings.Repeat("x", 2000)+"\n")
	assert.NotContains(t, got, strings.Repeat("x", 2001))
}

func TestBuildContextVariablesLinkedInLabels(t *testing.T) {
	ctx := &entity.ScreenContext{URL: "https://linkedin.com/in/jane", Title: "Jane", Content: "profile"}
	vars := BuildContextVariables(ctx, entity.ChannelLinkedIn)

	assert.Contains(t, vars["prospectContext"], "LinkedIn Profile URL: ")
	assert.Contains(t, vars["prospectContext"], "Profile Title: Jane")
	assert.Contains(t, vars["prospectContext"], "Profile Content:\nprofile")
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	// Odd ASCII prefix puts the byte limit in the middle of a 2-byte
	// rune, forcing the cut back to the previous boundary.
	s := "abc" + strings.Repeat("é", 1200)

	got := truncate(s, contextContentLimit)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, contextContentLimit-1, len(got))
	assert.True(t, strings.HasPrefix(s, got))

	// An all-ASCII string still cuts at exactly the limit.
	ascii := truncate(strings.Repeat("x", 2500), contextContentLimit)
	assert.Len(t, ascii, contextContentLimit)
}

func TestBuildContextVariablesSkipsEmptyFields(t *testing.T) {
	ctx := &entity.ScreenContext{URL: "https://example.com"}
	vars := BuildContextVariables(ctx, entity.ChannelEmail)

	assert.Equal(t, "Profile/Page URL: https://example.com", vars["prospectContext"])
}
