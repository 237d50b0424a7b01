package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/pkg/cryptox"
	"github.com/aussiebroadwan/pitchdeck/pkg/idx"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
	"github.com/aussiebroadwan/pitchdeck/pkg/validx"
)

type SignupInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=founder investor community"`
}

type InvestorSignupInput struct {
	Name                  string            `json:"name" validate:"required,min=2,max=50"`
	Email                 string            `json:"email" validate:"required,email"`
	Password              string            `json:"password" validate:"required,min=6,max=72"`
	InvestmentPreferences *PreferencesInput `json:"investmentPreferences,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PreferencesInput struct {
	Industries    []string `json:"industries,omitempty" yaml:"industries,omitempty" validate:"omitempty,max=20,dive,required,max=100"`
	Stages        []string `json:"stages,omitempty" yaml:"stages,omitempty" validate:"omitempty,dive,oneof='Pre-Seed' 'Seed' 'Series A' 'Series B' 'Series C' 'Growth' 'IPO'"`
	MinInvestment *float64 `json:"minInvestment,omitempty" yaml:"minInvestment,omitempty" validate:"omitempty,min=0"`
	MaxInvestment *float64 `json:"maxInvestment,omitempty" yaml:"maxInvestment,omitempty" validate:"omitempty,min=0"`
}

// check covers the cross-field rule the struct tags cannot express.
func (p *PreferencesInput) check(prefix string) error {
	if p == nil || p.MinInvestment == nil || p.MaxInvestment == nil {
		return nil
	}
	if *p.MaxInvestment < *p.MinInvestment {
		return validx.NewFieldError(prefix+".maxInvestment", "must be greater than or equal to minInvestment")
	}
	return nil
}

func (p *PreferencesInput) toDomain() domain.InvestmentPreferences {
	var out domain.InvestmentPreferences
	if p == nil {
		return out
	}
	for _, ind := range p.Industries {
		ind = strings.TrimSpace(ind)
		if ind != "" && !slices.Contains(out.Industries, ind) {
			out.Industries = append(out.Industries, ind)
		}
	}
	for _, st := range p.Stages {
		if !slices.Contains(out.Stages, st) {
			out.Stages = append(out.Stages, st)
		}
	}
	if p.MinInvestment != nil {
		out.MinInvestment = *p.MinInvestment
	}
	if p.MaxInvestment != nil {
		v := *p.MaxInvestment
		out.MaxInvestment = &v
	}
	return out
}

// NormalizeEmail lower-cases and trims an address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Account is a user together with the pitches they bookmarked.
type Account struct {
	User              domain.User
	InterestedPitches []string
}

// Session is an account plus a freshly issued token.
type Session struct {
	Account
	Token IssuedToken
}

type AuthService struct {
	Store   store.Store
	Hasher  cryptox.PasswordHasher
	Tokens  *TokenService
	Metrics *Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Signup creates a founder, investor or community account with a password.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	in.Role = strings.TrimSpace(in.Role)

	if err := validx.Struct(in); err != nil {
		return Session{}, err
	}

	role := domain.DefaultRole
	if in.Role != "" {
		role = domain.Role(in.Role)
	}

	return s.register(ctx, in.Name, in.Email, in.Password, role, domain.InvestmentPreferences{})
}

// SignupInvestor creates an investor account, optionally with preferences.
func (s *AuthService) SignupInvestor(ctx context.Context, in InvestorSignupInput) (Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)

	if err := validx.Struct(in); err != nil {
		return Session{}, err
	}
	if err := in.InvestmentPreferences.check("investmentPreferences"); err != nil {
		return Session{}, err
	}

	return s.register(ctx, in.Name, in.Email, in.Password, domain.RoleInvestor, in.InvestmentPreferences.toDomain())
}

func (s *AuthService) register(
	ctx context.Context,
	name, email, password string,
	role domain.Role,
	prefs domain.InvestmentPreferences,
) (Session, error) {
	log := slogx.FromContext(ctx)

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info("signup rejected, email already registered", slog.String("role", role.String()))
		return Session{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return Session{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return Session{}, validx.NewFieldError("password", "must be at most 72 bytes")
		}
		return Session{}, err
	}

	now := s.now()
	user := domain.User{
		ID:                    idx.NewAt(now).String(),
		Name:                  name,
		Email:                 email,
		PasswordHash:          hash,
		Role:                  role,
		IsActive:              true,
		InvestmentPreferences: prefs,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, ErrEmailTaken
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	tok, err := s.Tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}

	s.Metrics.signup(ctx, role.String(), "password")
	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", role.String()),
	)

	return Session{Account: Account{User: user, InterestedPitches: []string{}}, Token: tok}, nil
}

// Login checks an email/password pair. Every failure, including accounts
// without a password, returns ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (Session, error) {
	log := slogx.FromContext(ctx)
	in.Email = NormalizeEmail(in.Email)

	if err := validx.Struct(in); err != nil {
		return Session{}, err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Metrics.login(ctx, "password", "unknown_email")
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("lookup email: %w", err)
	}

	if !user.CanPasswordLogin() {
		log.Info("password login refused", slog.String("user_id", user.ID), slog.Bool("active", user.IsActive))
		s.Metrics.login(ctx, "password", "no_password")
		return Session{}, ErrInvalidCredentials
	}

	if err := s.Hasher.Verify(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			s.Metrics.login(ctx, "password", "bad_password")
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	account, err := s.account(ctx, s.Store, user)
	if err != nil {
		return Session{}, err
	}

	tok, err := s.Tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}

	s.Metrics.login(ctx, "password", "success")
	log.Info("user logged in", slog.String("user_id", user.ID))

	return Session{Account: account, Token: tok}, nil
}

// Me reloads the caller's account from the store.
func (s *AuthService) Me(ctx context.Context, userID string) (Account, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Account{}, ErrUserNotFound
		}
		return Account{}, err
	}
	if !user.IsActive {
		return Account{}, ErrAccountInactive
	}
	return s.account(ctx, s.Store, user)
}

// CurrentRole returns the stored role of userID, or "" when the account is
// gone or deactivated. It backs httpx.RequireCurrentRole.
func (s *AuthService) CurrentRole(ctx context.Context, userID string) (string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsActive {
		return "", nil
	}
	return user.Role.String(), nil
}

func (s *AuthService) account(ctx context.Context, st store.Store, user domain.User) (Account, error) {
	acct := Account{User: user, InterestedPitches: []string{}}
	if user.Role != domain.RoleInvestor {
		return acct, nil
	}

	ids, err := st.Interests().ListInterestedPitchIDs(ctx, user.ID)
	if err != nil {
		return Account{}, fmt.Errorf("list interests: %w", err)
	}
	if ids != nil {
		acct.InterestedPitches = ids
	}
	return acct, nil
}
