package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/validator"
	usecaseSettings "github.com/salescraft/outreach-backend/internal/usecase/settings"
)

type fakeGemini struct {
	lastSystemInstruction string
	lastUserMessage       string
	lastConfig            entity.APIConfig
	response              *entity.GeminiResponse
	err                   error
}

func (f *fakeGemini) GenerateContent(
	ctx context.Context, apiCfg entity.APIConfig, systemInstruction, userMessage string,
) (*entity.GeminiResponse, error) {
	f.lastConfig = apiCfg
	f.lastSystemInstruction = systemInstruction
	f.lastUserMessage = userMessage
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type fakeSettings struct {
	settings *entity.Settings
	err      error
}

func (f *fakeSettings) Get(ctx context.Context) (*entity.Settings, error) {
	return f.settings, f.err
}

type fakeUsage struct {
	recorded chan *entity.TokenUsage
	err      error
}

func newFakeUsage() *fakeUsage {
	return &fakeUsage{recorded: make(chan *entity.TokenUsage, 1)}
}

func (f *fakeUsage) Record(ctx context.Context, usage *entity.TokenUsage) error {
	f.recorded <- usage
	return f.err
}

func geminiTextResponse(text string, promptTokens, completionTokens int) *entity.GeminiResponse {
	return &entity.GeminiResponse{
		Candidates: []entity.GeminiCandidate{
			{Content: entity.GeminiContent{
				Role:  "model",
				Parts: []entity.GeminiPart{{Text: text}},
			}},
		},
		UsageMetadata: &entity.GeminiUsageMetadata{
			PromptTokenCount:     promptTokens,
			CandidatesTokenCount: completionTokens,
			TotalTokenCount:      promptTokens + completionTokens,
		},
	}
}

func configuredSettings() *entity.Settings {
	s := usecaseSettings.Defaults()
	s.APIConfig.GeminiAPIKey = "configured-key"
	return s
}

func newTestUsecase(gemini *fakeGemini, settings *fakeSettings, usage *fakeUsage, mockMode bool) *GenerationUsecase {
	return NewUsecase(gemini, settings, usage, validator.NewValidator(), zap.NewNop(), mockMode)
}

func TestGenerateMissingUserMessage(t *testing.T) {
	uc := newTestUsecase(&fakeGemini{}, &fakeSettings{settings: configuredSettings()}, newFakeUsage(), false)

	_, err := uc.Generate(context.Background(), "user-1", &entity.GenerateRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrMissingUserMessage)
}

func TestGenerateAPIKeyNotSet(t *testing.T) {
	uc := newTestUsecase(&fakeGemini{}, &fakeSettings{settings: usecaseSettings.Defaults()}, newFakeUsage(), false)

	_, err := uc.Generate(context.Background(), "user-1", &entity.GenerateRequest{UserMessage: "write an email"})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrAPIKeyNotSet)
}

func TestGenerateMockModeSkipsKeyCheck(t *testing.T) {
	gemini := &fakeGemini{response: geminiTextResponse("mock output", 10, 5)}
	uc := newTestUsecase(gemini, &fakeSettings{settings: usecaseSettings.Defaults()}, newFakeUsage(), true)

	result, err := uc.Generate(context.Background(), "user-1", &entity.GenerateRequest{UserMessage: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "mock output", result.Content)
}

func TestGenerateSplitsVariants(t *testing.T) {
	text := "First variant email body.\n\n---\n\nSecond variant email body."
	gemini := &fakeGemini{response: geminiTextResponse(text, 100, 50)}
	usage := newFakeUsage()
	uc := newTestUsecase(gemini, &fakeSettings{settings: configuredSettings()}, usage, false)

	result, err := uc.Generate(context.Background(), "user-1", &entity.GenerateRequest{UserMessage: "two variants please"})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "First variant email body.", result.Content)
	assert.Equal(t, []string{"First variant email body.", "Second variant email body."}, result.Variants)

	require.NotNil(t, result.Usage)
	assert.Equal(t, 100, result.Usage.PromptTokens)
	assert.Equal(t, 50, result.Usage.CompletionTokens)
	assert.Equal(t, 150, result.Usage.TotalTokens)
	// gemini-2.0-flash: 0.10 in / 0.40 out per 1M tokens
	assert.InDelta(t, (100*0.10+50*0.40)/1_000_000, result.Usage.EstimatedCost, 1e-12)
}

func TestGenerateSingleVariantOmitsVariantsField(t *testing.T) {
	gemini := &fakeGemini{response: geminiTextResponse("Just one email.", 10, 5)}
	uc := newTestUsecase(gemini, &fakeSettings{settings: configuredSettings()}, newFakeUsage(), false)

	result, err := uc.Generate(context.Background(), "user-1", &entity.GenerateRequest{UserMessage: "one"})
	require.NoError(t, err)
	assert.Equal(t, "Just one email.", result.Content)
	assert.Nil(t, result.Variants)
}

func TestGenerateRecordsUsageRow(t *testing.T) {
	gemini := &fakeGemini{response: geminiTextResponse("ok", 42, 8)}
	usage := newFakeUsage()
	uc := newTestUsecase(gemini, &fakeSettings{settings: configuredSettings()}, usage, false)

	_, err := uc.Generate(context.Background(), "user-7", &entity.GenerateRequest{
		UserMessage: "hi",
		RequestType: "email",
	})
	require.NoError(t, err)

	select {
	case row := <-usage.recorded:
		assert.Equal(t, "user-7", row.UserID)
		assert.Equal(t, "gemini-2.0-flash", row.Model)
		assert.Equal(t, 42, row.PromptTokens)
		assert.Equal(t, 8, row.CompletionTokens)
		assert.Equal(t, 50, row.TotalTokens)
		assert.Equal(t, "email", row.RequestType)
	case <-time.After(time.Second):
		t.Fatal("usage row was never recorded")
	}
}

func TestGenerateUsageWriteFailureSwallowed(t *testing.T) {
	gemini := &fakeGemini{response: geminiTextResponse("still fine", 10, 5)}
	usage := newFakeUsage()
	usage.err = errors.New("database is down")
	uc := newTestUsecase(gemini, &fakeSettings{settings: configuredSettings()}, usage, false)

	result, err := uc.Generate(context.Background(), "user-1", &entity.GenerateRequest{UserMessage: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "still fine", result.Content)

	select {
	case <-usage.recorded:
	case <-time.After(time.Second):
		t.Fatal("usage record was never attempted")
	}
}

func TestGenerateOutreachEmailAssemblesPrompts(t *testing.T) {
	gemini := &fakeGemini{response: geminiTextResponse("email text", 10, 5)}
	uc := newTestUsecase(gemini, &fakeSettings{settings: configuredSettings()}, newFakeUsage(), false)

	req := &entity.OutreachRequest{
		Channel: entity.ChannelEmail,
		FormData: entity.FormData{
			CompanyName:      "Acme",
			ValueProposition: "We automate outreach",
			PainPoints:       "Manual prospecting",
			CallToAction:     "Book a demo",
		},
		Context: &entity.ScreenContext{
			URL:     "https://example.com/team",
			Title:   "Team page",
			Content: "About the prospect team",
		},
	}

	_, err := uc.GenerateOutreach(context.Background(), "user-1", req)
	require.NoError(t, err)

	assert.Contains(t, gemini.lastSystemInstruction, "Acme")
	assert.Contains(t, gemini.lastSystemInstruction, "We automate outreach")
	assert.Contains(t, gemini.lastUserMessage, "https://example.com/team")
	assert.Contains(t, gemini.lastUserMessage, "About the prospect team")
}

func TestGenerateOutreachCustomChannel(t *testing.T) {
	gemini := &fakeGemini{response: geminiTextResponse("custom text", 10, 5)}
	uc := newTestUsecase(gemini, &fakeSettings{settings: configuredSettings()}, newFakeUsage(), false)

	req := &entity.OutreachRequest{
		Channel:      entity.ChannelCustom,
		CustomPrompt: "Write a haiku about cold email",
		FormData:     entity.FormData{CompanyName: "Acme"},
	}

	_, err := uc.GenerateOutreach(context.Background(), "user-1", req)
	require.NoError(t, err)

	assert.Empty(t, gemini.lastSystemInstruction)
	assert.Contains(t, gemini.lastUserMessage, "Write a haiku about cold email")
	assert.Contains(t, gemini.lastUserMessage, "BUSINESS INFORMATION:")
}

func TestGenerateOutreachCustomRequiresPrompt(t *testing.T) {
	uc := newTestUsecase(&fakeGemini{}, &fakeSettings{settings: configuredSettings()}, newFakeUsage(), false)

	_, err := uc.GenerateOutreach(context.Background(), "user-1", &entity.OutreachRequest{
		Channel: entity.ChannelCustom,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestGenerateOutreachUnknownChannel(t *testing.T) {
	uc := newTestUsecase(&fakeGemini{}, &fakeSettings{settings: configuredSettings()}, newFakeUsage(), false)

	_, err := uc.GenerateOutreach(context.Background(), "user-1", &entity.OutreachRequest{
		Channel: "carrier-pigeon",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrUnknownChannel)
}

func TestSplitVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "dashed rule",
			text: "one\n\n---\n\ntwo",
			want: []string{"one", "two"},
		},
		{
			name: "long dashed rule",
			text: "one\n----------\ntwo",
			want: []string{"one", "two"},
		},
		{
			name: "variant heading",
			text: "one\n\nVARIANT 2:\n\ntwo",
			want: []string{"one", "two"},
		},
		{
			name: "variant heading lowercase",
			text: "one\n\nvariant 2\n\ntwo",
			want: []string{"one", "two"},
		},
		{
			name: "no delimiter",
			text: "  only one  ",
			want: []string{"only one"},
		},
		{
			name: "two dashes are not a delimiter",
			text: "one--two",
			want: []string{"one--two"},
		},
		{
			name: "blank segments dropped",
			text: "---\n\none\n\n---\n\n   \n\n---",
			want: []string{"one"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitVariants(tt.text))
		})
	}
}
