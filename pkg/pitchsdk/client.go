package pitchsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the pitchdeck API. It covers the unauthenticated
// operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new pitchdeck client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a founder or community account and returns a session for it.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	var out Response[AuthData]
	if err := c.postJSON(ctx, "/auth/signup", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, out.Data), nil
}

// SignupInvestor registers an investor account with optional preferences.
func (c *SDKClient) SignupInvestor(ctx context.Context, req InvestorSignupRequest) (*Session, error) {
	var out Response[AuthData]
	if err := c.postJSON(ctx, "/auth/signup/investor", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, out.Data), nil
}

// Login authenticates with email and password.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var out Response[AuthData]
	req := LoginRequest{Email: email, Password: password}
	if err := c.postJSON(ctx, "/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, out.Data), nil
}

// NewSessionFromToken creates a session from a token obtained elsewhere, for
// example the Google sign-in redirect.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
