// Package oauth implements the Google sign-in round trip: building the
// consent URL, exchanging the authorization code and reading the userinfo
// endpoint. Account linking lives in the service layer.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	GoogleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	GoogleTokenURL    = "https://oauth2.googleapis.com/token"
	GoogleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

	// placeholderClientID ships in the example .env and means "not configured".
	placeholderClientID = "your_google_client_id_here"
)

var (
	ErrNotConfigured = errors.New("oauth: google client is not configured")
	ErrExchange      = errors.New("oauth: code exchange failed")
	ErrUserInfo      = errors.New("oauth: userinfo request failed")
)

// UserInfo holds the standard OIDC userinfo claims Google returns.
type UserInfo struct {
	Subject       string `json:"sub"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// Endpoint overrides, empty means Google's production endpoints.
	AuthURL     string
	TokenURL    string
	UserInfoURL string

	Scopes     []string
	HTTPClient *http.Client
}

// Configured reports whether a usable client id is present.
func (c GoogleConfig) Configured() bool {
	id := strings.TrimSpace(c.ClientID)
	return id != "" && id != placeholderClientID
}

func (c *GoogleConfig) ApplyDefaults() {
	if c.AuthURL == "" {
		c.AuthURL = GoogleAuthURL
	}
	if c.TokenURL == "" {
		c.TokenURL = GoogleTokenURL
	}
	if c.UserInfoURL == "" {
		c.UserInfoURL = GoogleUserInfoURL
	}
	if len(c.Scopes) == 0 {
		c.Scopes = []string{"openid", "email", "profile"}
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
}

// Google is an authorization-code provider for Google accounts.
type Google struct {
	oauth       oauth2.Config
	userInfoURL string
	client      *http.Client
}

func NewGoogle(cfg GoogleConfig) (*Google, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	if cfg.RedirectURL == "" {
		return nil, fmt.Errorf("%w: redirect url is required", ErrNotConfigured)
	}
	cfg.ApplyDefaults()

	return &Google{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userInfoURL: cfg.UserInfoURL,
		client:      cfg.HTTPClient,
	}, nil
}

// AuthURL returns the consent page URL carrying state.
func (g *Google) AuthURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange trades code for an access token and fetches the user's profile.
func (g *Google) Exchange(ctx context.Context, code string) (UserInfo, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, g.client)

	tok, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: %v", ErrExchange, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return UserInfo{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.oauth.Client(ctx, tok).Do(req)
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: %v", ErrUserInfo, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return UserInfo{}, fmt.Errorf("%w: status %d: %s", ErrUserInfo, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var info UserInfo
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&info); err != nil {
		return UserInfo{}, fmt.Errorf("%w: decode: %v", ErrUserInfo, err)
	}
	if info.Subject == "" {
		return UserInfo{}, fmt.Errorf("%w: missing subject", ErrUserInfo)
	}
	info.Email = strings.ToLower(strings.TrimSpace(info.Email))
	return info, nil
}
