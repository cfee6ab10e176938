package gemini

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
)

// MockConnector returns canned generations for local development without
// an API key. Enabled via ENABLE_MOCKS.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) GenerateContent(
	ctx context.Context, apiCfg entity.APIConfig, systemInstruction, userMessage string,
) (*entity.GeminiResponse, error) {
	ctxzap.Info(ctx, "[MOCK] generating content",
		zap.String("model", apiCfg.Model),
		zap.Int("user_message_length", len(userMessage)),
	)

	text := `Subject: Quick question about your team's workflow

Hi there,

I noticed your team has been growing quickly and thought this might be relevant. We help teams like yours cut manual busywork so sellers spend more time talking to customers.

Would a short call next week make sense?

Best,
Alex

---

Subject: Congrats on the recent launch

Hi there,

Saw the news about your launch. Teams at this stage usually start feeling the drag of manual outreach, and that is exactly what we take off your plate.

Open to a quick chat?

Best,
Alex`

	resp := &entity.GeminiResponse{
		Candidates: []entity.GeminiCandidate{
			{
				Content: entity.GeminiContent{
					Role:  "model",
					Parts: []entity.GeminiPart{{Text: text}},
				},
			},
		},
		UsageMetadata: &entity.GeminiUsageMetadata{
			PromptTokenCount:     420,
			CandidatesTokenCount: 180,
			TotalTokenCount:      600,
		},
	}

	ctxzap.Info(ctx, "[MOCK] content generated", zap.Int("result_length", len(text)))
	return resp, nil
}
