package pitchsdk

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated pitchdeck session. It holds the bearer token
// and the user it was issued for.
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	user      User
}

func newSession(client *SDKClient, data AuthData) *Session {
	return &Session{
		client:    client,
		token:     data.Token,
		expiresAt: data.ExpiresAt,
		user:      data.User,
	}
}

// Token returns the current bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt returns the token expiry, zero when unknown.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// User returns the user as last reported by the server.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) setUser(u User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// Me reloads the current user.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var out Response[MeData]
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	s.setUser(out.Data.User)
	return &out.Data.User, nil
}

// UpdateProfile applies a partial profile update. When the role changes the
// server issues a new token and the session switches to it.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/auth/profile", req)
	if err != nil {
		return nil, err
	}

	var out Response[AuthData]
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = out.Data.User
	if out.Data.Token != "" {
		s.token = out.Data.Token
		s.expiresAt = out.Data.ExpiresAt
	}
	s.mu.Unlock()

	return &out.Data.User, nil
}

// Logout revokes the session token on the server and clears it locally.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		return err
	}

	if err := decodeJSON(resp, nil, http.StatusOK); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()
	return nil
}

// getList is shared by the list endpoints.
func getList[T any](ctx context.Context, s *Session, path string) ([]T, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out Response[[]T]
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return []T{}, nil
	}
	return out.Data, nil
}
