package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/service"
	"github.com/aussiebroadwan/pitchdeck/pkg/httpx"
	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
	"github.com/aussiebroadwan/pitchdeck/pkg/validx"
)

// serviceErrors maps service sentinels to the status and message sent to
// clients. Anything not listed is a 500.
var serviceErrors = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrEmailTaken, http.StatusConflict, "User already exists with this email"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{service.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
	{service.ErrAccountInactive, http.StatusForbidden, "Account is deactivated"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrPitchNotFound, http.StatusNotFound, "Pitch not found"},
	{service.ErrPitchNameTaken, http.StatusConflict, "You already have a pitch with this name"},
	{service.ErrNotPitchOwner, http.StatusForbidden, "Access denied"},
	{service.ErrOAuthNotConfigured, http.StatusServiceUnavailable, "Google OAuth is not configured on this server"},
}

// writeServiceError translates err into the JSON envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, exposeStack bool) {
	if fields, ok := validx.FieldErrors(err); ok {
		httpx.WriteValidationError(w, fields)
		return
	}

	for _, e := range serviceErrors {
		if errors.Is(err, e.err) {
			httpx.WriteError(w, e.status, e.message)
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	httpx.WriteInternalError(w, err, exposeStack)
}

// decodeBody decodes the JSON request body into dst, writing a 400 when it
// is malformed. It reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		slogx.FromContext(r.Context()).Debug("invalid request body", "err", err)
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// ============================================================================
// Wire conversions
// ============================================================================

func toProfile(p domain.Profile) pitchsdk.Profile {
	return pitchsdk.Profile{
		Avatar:   p.Avatar,
		Bio:      p.Bio,
		Location: p.Location,
		Website:  p.Website,
		LinkedIn: p.LinkedIn,
		Twitter:  p.Twitter,
	}
}

func toUser(acc service.Account) pitchsdk.User {
	u := acc.User
	out := pitchsdk.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       pitchsdk.Role(u.Role),
		Profile:    toProfile(u.Profile),
		IsVerified: u.IsVerified,
		IsActive:   u.IsActive,
		HasGoogle:  u.GoogleID != "",
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}

	if u.Role == domain.RoleInvestor {
		prefs := u.InvestmentPreferences
		out.InvestmentPreferences = &pitchsdk.InvestmentPreferences{
			Industries:    nonNil(prefs.Industries),
			Stages:        nonNil(prefs.Stages),
			MinInvestment: prefs.MinInvestment,
			MaxInvestment: prefs.MaxInvestment,
		}
		out.InterestedPitches = nonNil(acc.InterestedPitches)
	}
	return out
}

func toAuthData(acc service.Account, tok *service.IssuedToken) pitchsdk.AuthData {
	data := pitchsdk.AuthData{User: toUser(acc)}
	if tok != nil {
		data.Token = tok.Token
		data.ExpiresAt = tok.ExpiresAt()
	}
	return data
}

func toSummary(u domain.UserSummary) pitchsdk.UserSummary {
	return pitchsdk.UserSummary{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    pitchsdk.Role(u.Role),
		Profile: toProfile(u.Profile),
	}
}

func toPitch(p domain.PitchWithFounder) pitchsdk.Pitch {
	return pitchsdk.Pitch{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Industry:    p.Industry,
		Stage:       p.Stage,
		FundingGoal: p.FundingGoal,
		Website:     p.Website,
		Founder:     toSummary(p.Founder),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPitches(ps []domain.PitchWithFounder) []pitchsdk.Pitch {
	out := make([]pitchsdk.Pitch, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPitch(p))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
