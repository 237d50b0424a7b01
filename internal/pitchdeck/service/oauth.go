package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/oauth"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/pkg/cryptox"
	"github.com/aussiebroadwan/pitchdeck/pkg/idx"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
)

const DefaultOAuthStateTTL = 10 * time.Minute

// IdentityProvider is the part of an OAuth provider the sign-in flow needs.
type IdentityProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (oauth.UserInfo, error)
}

// OAuthService runs the Google sign-in round trip. A nil Provider means
// Google is not configured.
type OAuthService struct {
	Store    store.Store
	Provider IdentityProvider
	Tokens   *TokenService
	Metrics  *Metrics
	StateTTL time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *OAuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *OAuthService) Enabled() bool { return s != nil && s.Provider != nil }

// Begin stores a single-use state and returns the consent page URL.
func (s *OAuthService) Begin(ctx context.Context) (string, error) {
	if !s.Enabled() {
		return "", ErrOAuthNotConfigured
	}

	state, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	ttl := s.StateTTL
	if ttl <= 0 {
		ttl = DefaultOAuthStateTTL
	}

	now := s.now()
	err = s.Store.OAuthStates().CreateOAuthState(ctx, domain.OAuthState{
		StateHash: cryptox.FingerprintToken(state),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	})
	if err != nil {
		return "", fmt.Errorf("store oauth state: %w", err)
	}

	return s.Provider.AuthURL(state), nil
}

// Complete consumes state, exchanges code and signs the Google user in. The
// account is found by Google id, else linked by email, else created as a
// founder without a password.
func (s *OAuthService) Complete(ctx context.Context, state, code string) (Session, error) {
	if !s.Enabled() {
		return Session{}, ErrOAuthNotConfigured
	}
	log := slogx.FromContext(ctx)

	state = strings.TrimSpace(state)
	code = strings.TrimSpace(code)
	if state == "" || code == "" {
		return Session{}, ErrInvalidOAuthState
	}

	if err := s.Store.OAuthStates().ConsumeOAuthState(ctx, cryptox.FingerprintToken(state), s.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("oauth callback with unknown or expired state")
			return Session{}, ErrInvalidOAuthState
		}
		return Session{}, err
	}

	info, err := s.Provider.Exchange(ctx, code)
	if err != nil {
		s.Metrics.login(ctx, "google", "exchange_failed")
		return Session{}, err
	}
	email := NormalizeEmail(info.Email)
	if email == "" {
		return Session{}, ErrOAuthEmailMissing
	}

	var (
		user    domain.User
		created bool
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		user, err = tx.Users().GetUserByGoogleID(ctx, info.Subject)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		now := s.now()
		user, err = tx.Users().GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			if !info.EmailVerified {
				log.Warn("refusing to link unverified google email", slog.String("user_id", user.ID))
				return ErrOAuthEmailUnverified
			}
			if err := tx.Users().LinkGoogleID(ctx, user.ID, info.Subject, now); err != nil {
				return fmt.Errorf("link google id: %w", err)
			}
			user.GoogleID = info.Subject
			user.UpdatedAt = now
			log.Info("google account linked", slog.String("user_id", user.ID))
			return nil
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		name := strings.TrimSpace(info.Name)
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		user = domain.User{
			ID:         idx.NewAt(now).String(),
			Name:       name,
			Email:      email,
			GoogleID:   info.Subject,
			Role:       domain.DefaultRole,
			Profile:    domain.Profile{Avatar: info.Picture},
			IsVerified: info.EmailVerified,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return fmt.Errorf("create google user: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return Session{}, err
	}

	if !user.IsActive {
		s.Metrics.login(ctx, "google", "inactive")
		return Session{}, ErrAccountInactive
	}

	tok, err := s.Tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}

	if created {
		s.Metrics.signup(ctx, user.Role.String(), "google")
	}
	s.Metrics.login(ctx, "google", "success")
	log.Info("google sign-in completed", slog.String("user_id", user.ID), slog.Bool("created", created))

	return Session{Account: Account{User: user, InterestedPitches: []string{}}, Token: tok}, nil
}
