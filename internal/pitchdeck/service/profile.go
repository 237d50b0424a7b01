package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
	"github.com/aussiebroadwan/pitchdeck/pkg/validx"
)

// ProfileInput is a partial update. Nil fields are left untouched. An empty
// string clears a profile field but is ignored for name.
type ProfileInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`

	// Role is applied only when it names a known role.
	Role *string `json:"role,omitempty"`

	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,url,max=2048"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Website  *string `json:"website,omitempty" validate:"omitempty,url,max=2048"`
	LinkedIn *string `json:"linkedin,omitempty" validate:"omitempty,url,max=2048"`
	Twitter  *string `json:"twitter,omitempty" validate:"omitempty,max=100"`

	InvestmentPreferences *PreferencesInput `json:"investmentPreferences,omitempty"`
}

// ProfileUpdate is the result of UpdateProfile. Token is set only when the
// role changed; the token that made the request is revoked in that case.
type ProfileUpdate struct {
	Account
	Token *IssuedToken
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

// UpdateProfile applies in to the account named by caller.Subject. caller is
// the verified session making the change.
func (s *AuthService) UpdateProfile(ctx context.Context, caller jwtx.Claims, in ProfileInput) (ProfileUpdate, error) {
	log := slogx.FromContext(ctx)
	userID := caller.Subject

	in.Name = trimPtr(in.Name)
	in.Avatar = trimPtr(in.Avatar)
	in.Bio = trimPtr(in.Bio)
	in.Location = trimPtr(in.Location)
	in.Website = trimPtr(in.Website)
	in.LinkedIn = trimPtr(in.LinkedIn)
	in.Twitter = trimPtr(in.Twitter)

	if err := validx.Struct(in); err != nil {
		return ProfileUpdate{}, err
	}
	if err := in.InvestmentPreferences.check("investmentPreferences"); err != nil {
		return ProfileUpdate{}, err
	}

	var result ProfileUpdate
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if !user.IsActive {
			return ErrAccountInactive
		}

		previousRole := user.Role
		applyProfile(&user, in)

		if in.InvestmentPreferences != nil {
			if user.Role != domain.RoleInvestor {
				return validx.NewFieldError("investmentPreferences", "only investors can set investment preferences")
			}
			user.InvestmentPreferences = in.InvestmentPreferences.toDomain()
		}

		user.UpdatedAt = s.now()
		if err := tx.Users().UpdateUser(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		account, err := s.account(ctx, tx, user)
		if err != nil {
			return err
		}
		result.Account = account

		if user.Role != previousRole {
			tok, err := s.Tokens.Issue(user)
			if err != nil {
				return err
			}
			result.Token = &tok

			if caller.ID != "" {
				err := tx.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
					JTI:       caller.ID,
					UserID:    user.ID,
					ExpiresAt: caller.ExpiresAtTime(),
					RevokedAt: user.UpdatedAt,
				})
				if err != nil {
					return fmt.Errorf("revoke previous token: %w", err)
				}
			}
			log.Info("user role changed",
				slog.String("user_id", user.ID),
				slog.String("from", previousRole.String()),
				slog.String("to", user.Role.String()),
			)
		}
		return nil
	})
	if err != nil {
		return ProfileUpdate{}, err
	}

	return result, nil
}

func applyProfile(u *domain.User, in ProfileInput) {
	if in.Name != nil && *in.Name != "" {
		u.Name = *in.Name
	}
	if in.Role != nil {
		if r := domain.Role(strings.TrimSpace(*in.Role)); r.Valid() {
			u.Role = r
		}
	}
	if in.Avatar != nil {
		u.Profile.Avatar = *in.Avatar
	}
	if in.Bio != nil {
		u.Profile.Bio = *in.Bio
	}
	if in.Location != nil {
		u.Profile.Location = *in.Location
	}
	if in.Website != nil {
		u.Profile.Website = *in.Website
	}
	if in.LinkedIn != nil {
		u.Profile.LinkedIn = *in.LinkedIn
	}
	if in.Twitter != nil {
		u.Profile.Twitter = *in.Twitter
	}
}
