package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescraft/outreach-backend/internal/api/middleware"
	"github.com/salescraft/outreach-backend/internal/entity"
)

type fakeUsecase struct {
	result *entity.GenerationResult
	err    error
}

func (f *fakeUsecase) Generate(ctx context.Context, userID string, req *entity.GenerateRequest) (*entity.GenerationResult, error) {
	return f.result, f.err
}

func (f *fakeUsecase) GenerateOutreach(ctx context.Context, userID string, req *entity.OutreachRequest) (*entity.GenerationResult, error) {
	return f.result, f.err
}

type fixedResolver struct {
	user *entity.User
}

func (f *fixedResolver) GetSessionUser(ctx context.Context, token string) (*entity.User, error) {
	return f.user, nil
}

func (f *fixedResolver) CookieName() string { return "sales_admin_session" }

func doGenerate(t *testing.T, uc GenerationUsecase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := middleware.Authenticate(&fixedResolver{
		user: &entity.User{ID: "u1", Role: entity.RoleRegular},
	})(http.HandlerFunc(NewHandler(uc).Generate))

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGenerateSuccess(t *testing.T) {
	uc := &fakeUsecase{result: &entity.GenerationResult{Success: true, Content: "Hi there"}}

	rec := doGenerate(t, uc, `{"userMessage":"write an email"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result entity.GenerationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Hi there", result.Content)
}

func TestGenerateUpstreamFailureKeepsMessage(t *testing.T) {
	uc := &fakeUsecase{
		err: fmt.Errorf("%w: %s", entity.ErrGenerationFailed, "HTTP 429: insufficient quota"),
	}

	rec := doGenerate(t, uc, `{"userMessage":"write an email"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "insufficient quota")
}

func TestGenerateInternalErrorIsMasked(t *testing.T) {
	uc := &fakeUsecase{err: errors.New("pgx: connection refused")}

	rec := doGenerate(t, uc, `{"userMessage":"write an email"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
}

func TestGenerateMissingAPIKey(t *testing.T) {
	uc := &fakeUsecase{err: entity.ErrAPIKeyNotSet}

	rec := doGenerate(t, uc, `{"userMessage":"write an email"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestGenerateMissingUserMessage(t *testing.T) {
	uc := &fakeUsecase{err: fmt.Errorf("%w: userMessage", entity.ErrMissingUserMessage)}

	rec := doGenerate(t, uc, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateMalformedBody(t *testing.T) {
	rec := doGenerate(t, &fakeUsecase{}, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
