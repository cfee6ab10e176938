package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/config"
	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/integration/common"
	pkghttp "github.com/salescraft/outreach-backend/pkg/http"
)

const (
	versionStable = "v1"
	versionBeta   = "v1beta"
)

type Connector struct {
	config    config.GeminiConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GeminiConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// GenerateContent calls generateContent against the model configured in
// apiCfg. The API surface differs between the stable and beta versions,
// so the version is picked from the request shape and retried once on the
// alternate version when the upstream rejection looks like a surface
// mismatch rather than a real failure.
func (c *Connector) GenerateContent(
	ctx context.Context, apiCfg entity.APIConfig, systemInstruction, userMessage string,
) (*entity.GeminiResponse, error) {
	req := buildRequest(apiCfg, systemInstruction, userMessage)
	version := pickVersion(apiCfg.Model, req)

	ctxzap.Info(ctx, "dispatching generation request",
		zap.String("model", apiCfg.Model),
		zap.String("api_version", version),
	)

	resp, err := c.call(ctx, version, apiCfg, req)
	if err == nil {
		return resp, nil
	}

	var httpErr *pkghttp.HTTPError
	if !errors.As(err, &httpErr) || !looksLikeVersionMismatch(httpErr) {
		return nil, fmt.Errorf("%w: %s", entity.ErrGenerationFailed, upstreamError(err))
	}

	alternate := alternateVersion(version)
	ctxzap.Warn(ctx, "generation rejected, retrying on alternate API version",
		zap.String("failed_version", version),
		zap.String("retry_version", alternate),
		zap.Int("status_code", httpErr.StatusCode),
	)

	resp, err = c.call(ctx, alternate, apiCfg, req)
	if err != nil {
		return nil, fmt.Errorf("%w on both API versions: %s", entity.ErrGenerationFailed, upstreamError(err))
	}
	return resp, nil
}

func (c *Connector) call(
	ctx context.Context, version string, apiCfg entity.APIConfig, req *entity.GeminiRequest,
) (*entity.GeminiResponse, error) {
	endpoint := fmt.Sprintf("/%s/models/%s:generateContent?key=%s",
		version, apiCfg.Model, url.QueryEscape(apiCfg.GeminiAPIKey))

	var resp entity.GeminiResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func buildRequest(apiCfg entity.APIConfig, systemInstruction, userMessage string) *entity.GeminiRequest {
	req := &entity.GeminiRequest{
		Contents: []entity.GeminiContent{
			{
				Role:  "user",
				Parts: []entity.GeminiPart{{Text: userMessage}},
			},
		},
		GenerationConfig: &entity.GeminiGenerationConfig{
			Temperature:     apiCfg.Temperature,
			MaxOutputTokens: apiCfg.MaxTokens,
			TopP:            apiCfg.TopP,
		},
	}
	if systemInstruction != "" {
		req.SystemInstruction = &entity.GeminiContent{
			Parts: []entity.GeminiPart{{Text: systemInstruction}},
		}
	}
	return req
}

// pickVersion chooses the starting API version. systemInstruction is only
// accepted on v1beta, and preview models are not published on v1.
func pickVersion(model string, req *entity.GeminiRequest) string {
	if req.SystemInstruction != nil || strings.Contains(model, "preview") {
		return versionBeta
	}
	return versionStable
}

func alternateVersion(version string) string {
	if version == versionStable {
		return versionBeta
	}
	return versionStable
}

// looksLikeVersionMismatch reports whether an upstream rejection is the
// kind produced by calling the wrong API surface: unknown model, unknown
// field, or unsupported method. Quota and auth failures return false and
// must not trigger a second call.
func looksLikeVersionMismatch(httpErr *pkghttp.HTTPError) bool {
	var apiErr entity.GeminiError
	if err := json.Unmarshal([]byte(httpErr.Message), &apiErr); err != nil {
		// An unparseable body usually means the route itself did not
		// resolve, which the alternate version may fix.
		return true
	}

	switch apiErr.Error.Status {
	case "NOT_FOUND", "INVALID_ARGUMENT":
		return true
	}

	msg := apiErr.Error.Message
	for _, marker := range []string{"not found", "not supported", "Unknown name", "Cannot find field"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// upstreamError unwraps the structured message out of a Gemini error body
// so callers log something readable instead of a JSON blob.
func upstreamError(err error) error {
	var httpErr *pkghttp.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	var apiErr entity.GeminiError
	if jsonErr := json.Unmarshal([]byte(httpErr.Message), &apiErr); jsonErr != nil || apiErr.Error.Message == "" {
		return err
	}
	return fmt.Errorf("HTTP %d: %s", httpErr.StatusCode, apiErr.Error.Message)
}
