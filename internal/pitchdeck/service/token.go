package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
)

// TokenService issues and checks the session tokens handed out at signup,
// login and OAuth sign-in.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Store    store.Store
	Issuer   string
	TTL      time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// IssuedToken is a signed session token and the claims it carries.
type IssuedToken struct {
	Token  string
	Claims jwtx.Claims
}

func (t IssuedToken) ExpiresAt() time.Time { return t.Claims.ExpiresAtTime() }

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *TokenService) ttl() time.Duration {
	if s.TTL <= 0 {
		return jwtx.DefaultTokenTTL
	}
	return s.TTL
}

// Issue signs a token for u. The role claim is the role stored on the user.
func (s *TokenService) Issue(u domain.User) (IssuedToken, error) {
	claims := jwtx.NewClaims(
		u.ID,
		u.Role.String(),
		u.Name,
		u.Email,
		u.IsVerified,
		s.Issuer,
		s.ttl(),
		s.now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("sign token: %w", err)
	}
	return IssuedToken{Token: token, Claims: claims}, nil
}

// Verify checks signature, issuer and expiry, then rejects revoked tokens.
func (s *TokenService) Verify(ctx context.Context, raw string) (jwtx.Claims, error) {
	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		return jwtx.Claims{}, ErrInvalidToken
	}

	revoked, err := s.IsRevoked(ctx, claims.ID)
	if err != nil {
		return jwtx.Claims{}, err
	}
	if revoked {
		return jwtx.Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// Revoke blocks raw until it would have expired anyway. Tokens that do not
// verify return ErrInvalidToken and are not recorded.
func (s *TokenService) Revoke(ctx context.Context, raw string) error {
	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		return ErrInvalidToken
	}
	if claims.ID == "" {
		return ErrInvalidToken
	}

	err = s.Store.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
		JTI:       claims.ID,
		UserID:    claims.Subject,
		ExpiresAt: claims.ExpiresAtTime(),
		RevokedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	slogx.FromContext(ctx).Info("session token revoked",
		slog.String("user_id", claims.Subject),
		slog.Time("expires_at", claims.ExpiresAtTime()),
	)
	return nil
}

// IsRevoked satisfies httpx.RevocationChecker.
func (s *TokenService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	revoked, err := s.Store.RevokedTokens().IsTokenRevoked(ctx, jti)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, err
	}
	return revoked, nil
}
