package google

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/config"
	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/integration/common"
	pkghttp "github.com/salescraft/outreach-backend/pkg/http"
)

const (
	defaultAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultTokenURL    = "https://oauth2.googleapis.com/token"
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// Connector talks to Google's OAuth endpoints for the admin web login and
// for verifying access tokens sent by the extension.
type Connector struct {
	config      config.GoogleConnectorConfig
	connector   *pkghttp.Connector
	logger      *zap.Logger
	authURL     string
	tokenURL    string
	userInfoURL string
}

func NewConnector(
	cfg config.GoogleConnectorConfig,
	logger *zap.Logger,
) *Connector {
	c := &Connector{
		connector:   common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:      cfg,
		logger:      logger,
		authURL:     defaultAuthURL,
		tokenURL:    defaultTokenURL,
		userInfoURL: defaultUserInfoURL,
	}
	// Url doubles as a test override pointing all three endpoints at a
	// local server.
	if cfg.Url != "" {
		c.authURL = cfg.Url + "/o/oauth2/v2/auth"
		c.tokenURL = cfg.Url + "/token"
		c.userInfoURL = cfg.Url + "/oauth2/v2/userinfo"
	}
	return c
}

// AuthURL builds the consent-screen redirect for the web login flow.
func (c *Connector) AuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.config.ClientID)
	q.Set("redirect_uri", c.config.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	q.Set("prompt", "select_account")
	return c.authURL + "?" + q.Encode()
}

// ExchangeCode trades an authorization code for tokens.
func (c *Connector) ExchangeCode(ctx context.Context, code string) (*entity.GoogleTokenResponse, error) {
	ctxzap.Info(ctx, "exchanging OAuth authorization code")

	form := url.Values{}
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.config.RedirectURI)

	var resp entity.GoogleTokenResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, "", nil, &resp,
		pkghttp.WithURL(c.tokenURL),
		pkghttp.WithForm(form),
	)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("exchange authorization code: empty access token in response")
	}

	ctxzap.Info(ctx, "authorization code exchanged")
	return &resp, nil
}

// GetUserInfo fetches the profile behind an access token. Used both after
// the web code exchange and to verify extension-supplied tokens.
func (c *Connector) GetUserInfo(ctx context.Context, accessToken string) (*entity.GoogleUserInfo, error) {
	var info entity.GoogleUserInfo
	err := c.connector.DoRequest(ctx, http.MethodGet, "", nil, &info,
		pkghttp.WithURL(c.userInfoURL),
		pkghttp.WithHeader("Authorization", "Bearer "+accessToken),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("fetch userinfo: response has no email")
	}

	ctxzap.Info(ctx, "userinfo fetched", zap.String("email", info.Email))
	return &info, nil
}
