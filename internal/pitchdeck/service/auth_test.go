package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/pkg/idx"
	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to founder and issues a matching token", func(t *testing.T) {
		env := newTestEnv(t)

		sess, err := env.auth.Signup(ctx, SignupInput{
			Name:     "  Ada Lovelace ",
			Email:    " Ada@Example.COM ",
			Password: "password123",
		})
		require.NoError(t, err)
		require.Equal(t, "Ada Lovelace", sess.User.Name)
		require.Equal(t, "ada@example.com", sess.User.Email)
		require.Equal(t, domain.RoleFounder, sess.User.Role)
		require.True(t, sess.User.IsActive)
		require.NotEqual(t, "password123", sess.User.PasswordHash)
		require.Empty(t, sess.InterestedPitches)

		claims, err := env.verifier.Verify(sess.Token.Token)
		require.NoError(t, err)
		require.Equal(t, sess.User.ID, claims.Subject)
		require.Equal(t, "founder", claims.Role)
		require.Equal(t, "ada@example.com", claims.Email)

		stored, err := env.store.Users().GetUserByID(ctx, sess.User.ID)
		require.NoError(t, err)
		require.Equal(t, string(stored.Role), claims.Role)
	})

	t.Run("honours an explicit role", func(t *testing.T) {
		env := newTestEnv(t)

		sess := env.signup(t, "Carl Community", "carl@example.com", domain.RoleCommunity)
		require.Equal(t, domain.RoleCommunity, sess.User.Role)

		claims, err := env.verifier.Verify(sess.Token.Token)
		require.NoError(t, err)
		require.Equal(t, "community", claims.Role)
	})

	t.Run("rejects duplicate email regardless of case", func(t *testing.T) {
		env := newTestEnv(t)
		env.signup(t, "First", "dup@example.com", domain.RoleFounder)

		_, err := env.auth.Signup(ctx, SignupInput{Name: "Second", Email: "DUP@example.com", Password: "password123"})
		require.ErrorIs(t, err, ErrEmailTaken)

		_, err = env.auth.SignupInvestor(ctx, InvestorSignupInput{Name: "Third", Email: " dup@EXAMPLE.com", Password: "password123"})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("reports field errors", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.auth.Signup(ctx, SignupInput{Name: "A", Email: "nope", Password: "123", Role: "admin"})
		requireFieldError(t, err, "name")
		requireFieldError(t, err, "email")
		requireFieldError(t, err, "password")
		requireFieldError(t, err, "role")
	})

	t.Run("rejects passwords over 72 bytes", func(t *testing.T) {
		env := newTestEnv(t)

		// 40 two-byte runes pass the character limit but not bcrypt's byte limit.
		long := ""
		for range 40 {
			long += "é"
		}
		_, err := env.auth.Signup(ctx, SignupInput{Name: "Long", Email: "long@example.com", Password: long})
		requireFieldError(t, err, "password")
	})
}

func TestSignupInvestor(t *testing.T) {
	ctx := context.Background()

	t.Run("forces the investor role and stores preferences", func(t *testing.T) {
		env := newTestEnv(t)

		sess, err := env.auth.SignupInvestor(ctx, InvestorSignupInput{
			Name:     "Ivy Investor",
			Email:    "ivy@example.com",
			Password: "password123",
			InvestmentPreferences: &PreferencesInput{
				Industries:    []string{"Fintech", " Fintech ", "Health"},
				Stages:        []string{"Seed", "Series A", "Seed"},
				MinInvestment: ptr(10000.0),
				MaxInvestment: ptr(50000.0),
			},
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleInvestor, sess.User.Role)

		claims, err := env.verifier.Verify(sess.Token.Token)
		require.NoError(t, err)
		require.Equal(t, "investor", claims.Role)

		stored, err := env.store.Users().GetUserByID(ctx, sess.User.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"Fintech", "Health"}, stored.InvestmentPreferences.Industries)
		require.Equal(t, []string{"Seed", "Series A"}, stored.InvestmentPreferences.Stages)
		require.InDelta(t, 10000.0, stored.InvestmentPreferences.MinInvestment, 0.001)
		require.NotNil(t, stored.InvestmentPreferences.MaxInvestment)
		require.InDelta(t, 50000.0, *stored.InvestmentPreferences.MaxInvestment, 0.001)
	})

	t.Run("rejects unknown stages", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.auth.SignupInvestor(ctx, InvestorSignupInput{
			Name:                  "Ivy",
			Email:                 "ivy@example.com",
			Password:              "password123",
			InvestmentPreferences: &PreferencesInput{Stages: []string{"Seed", "Series Z"}},
		})
		requireFieldError(t, err, "investmentPreferences.stages[1]")
	})

	t.Run("rejects max below min", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.auth.SignupInvestor(ctx, InvestorSignupInput{
			Name:     "Ivy",
			Email:    "ivy@example.com",
			Password: "password123",
			InvestmentPreferences: &PreferencesInput{
				MinInvestment: ptr(500.0),
				MaxInvestment: ptr(100.0),
			},
		})
		requireFieldError(t, err, "investmentPreferences.maxInvestment")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	signed := env.signup(t, "Fran Founder", "fran@example.com", domain.RoleFounder)

	t.Run("succeeds with the right password", func(t *testing.T) {
		sess, err := env.auth.Login(ctx, LoginInput{Email: "FRAN@example.com", Password: "password123"})
		require.NoError(t, err)
		require.Equal(t, signed.User.ID, sess.User.ID)

		claims, err := env.verifier.Verify(sess.Token.Token)
		require.NoError(t, err)
		require.Equal(t, "founder", claims.Role)
		require.NotEqual(t, signed.Token.Claims.ID, claims.ID)
	})

	t.Run("fails with a wrong password", func(t *testing.T) {
		_, err := env.auth.Login(ctx, LoginInput{Email: "fran@example.com", Password: "wrong-password"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("fails for an unknown email", func(t *testing.T) {
		_, err := env.auth.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "password123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("oauth-only accounts cannot use a password", func(t *testing.T) {
		now := time.Now().UTC()
		require.NoError(t, env.store.Users().CreateUser(ctx, domain.User{
			ID:        idx.New().String(),
			Name:      "Gina Google",
			Email:     "gina@example.com",
			GoogleID:  "google-sub-1",
			Role:      domain.RoleFounder,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}))

		_, err := env.auth.Login(ctx, LoginInput{Email: "gina@example.com", Password: "password123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		sess := env.signup(t, "Dee Active", "dee@example.com", domain.RoleFounder)
		u := sess.User
		u.IsActive = false
		require.NoError(t, env.store.Users().UpdateUser(ctx, u))

		_, err := env.auth.Login(ctx, LoginInput{Email: "dee@example.com", Password: "password123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = env.auth.Me(ctx, u.ID)
		require.ErrorIs(t, err, ErrAccountInactive)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := env.auth.Login(ctx, LoginInput{Email: "not-an-email"})
		requireFieldError(t, err, "email")
		requireFieldError(t, err, "password")
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	sess := env.signup(t, "Mia", "mia@example.com", domain.RoleFounder)

	acct, err := env.auth.Me(ctx, sess.User.ID)
	require.NoError(t, err)
	require.Equal(t, "mia@example.com", acct.User.Email)

	require.NoError(t, env.store.Users().DeleteUser(ctx, sess.User.ID))
	_, err = env.auth.Me(ctx, sess.User.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCurrentRole(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	sess := env.signup(t, "Cora", "cora@example.com", domain.RoleInvestor)

	role, err := env.auth.CurrentRole(ctx, sess.User.ID)
	require.NoError(t, err)
	require.Equal(t, "investor", role)

	_, err = env.auth.UpdateProfile(ctx, sess.Token.Claims, ProfileInput{Role: ptr("founder")})
	require.NoError(t, err)
	role, err = env.auth.CurrentRole(ctx, sess.User.ID)
	require.NoError(t, err)
	require.Equal(t, "founder", role)

	u, err := env.store.Users().GetUserByID(ctx, sess.User.ID)
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, env.store.Users().UpdateUser(ctx, u))
	role, err = env.auth.CurrentRole(ctx, sess.User.ID)
	require.NoError(t, err)
	require.Empty(t, role)

	role, err = env.auth.CurrentRole(ctx, idx.New().String())
	require.NoError(t, err)
	require.Empty(t, role)
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	sess := env.signup(t, "Tom", "tom@example.com", domain.RoleFounder)

	t.Run("verifies a fresh token", func(t *testing.T) {
		claims, err := env.tokens.Verify(ctx, sess.Token.Token)
		require.NoError(t, err)
		require.Equal(t, sess.User.ID, claims.Subject)
		require.WithinDuration(t, time.Now().Add(time.Hour), sess.Token.ExpiresAt(), time.Minute)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256([]byte("some-other-secret"))
		require.NoError(t, err)
		foreign := &TokenService{Signer: other, Store: env.store, Issuer: testIssuer, TTL: time.Hour}

		issued, err := foreign.Issue(sess.User)
		require.NoError(t, err)

		_, err = env.tokens.Verify(ctx, issued.Token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		past := &TokenService{
			Signer: env.tokens.Signer,
			Store:  env.store,
			Issuer: testIssuer,
			TTL:    time.Minute,
			Now:    func() time.Time { return time.Now().Add(-time.Hour) },
		}
		issued, err := past.Issue(sess.User)
		require.NoError(t, err)

		_, err = env.tokens.Verify(ctx, issued.Token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revoked tokens stop verifying", func(t *testing.T) {
		issued, err := env.tokens.Issue(sess.User)
		require.NoError(t, err)

		require.NoError(t, env.tokens.Revoke(ctx, issued.Token))
		require.NoError(t, env.tokens.Revoke(ctx, issued.Token))

		_, err = env.tokens.Verify(ctx, issued.Token)
		require.ErrorIs(t, err, ErrInvalidToken)

		revoked, err := env.tokens.IsRevoked(ctx, issued.Claims.ID)
		require.NoError(t, err)
		require.True(t, revoked)

		// Other sessions of the same user are unaffected.
		_, err = env.tokens.Verify(ctx, sess.Token.Token)
		require.NoError(t, err)
	})

	t.Run("revoking garbage is an invalid token", func(t *testing.T) {
		require.ErrorIs(t, env.tokens.Revoke(ctx, "not.a.jwt"), ErrInvalidToken)
	})

	t.Run("empty jti is never revoked", func(t *testing.T) {
		revoked, err := env.tokens.IsRevoked(ctx, "")
		require.NoError(t, err)
		require.False(t, revoked)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("changes only the fields that are present", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.signup(t, "Pat", "pat@example.com", domain.RoleFounder)

		up, err := env.auth.UpdateProfile(ctx, sess.Token.Claims, ProfileInput{
			Name:     ptr(" Patricia "),
			Bio:      ptr("Builds things"),
			Location: ptr("Sydney"),
			Website:  ptr("https://pat.example.com"),
		})
		require.NoError(t, err)
		require.Nil(t, up.Token)
		require.Equal(t, "Patricia", up.User.Name)
		require.Equal(t, "Builds things", up.User.Profile.Bio)

		up, err = env.auth.UpdateProfile(ctx, sess.Token.Claims, ProfileInput{Location: ptr("")})
		require.NoError(t, err)
		require.Equal(t, "Patricia", up.User.Name)
		require.Equal(t, "Builds things", up.User.Profile.Bio)
		require.Empty(t, up.User.Profile.Location)
	})

	t.Run("ignores an empty name and an unknown role", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.signup(t, "Quinn", "quinn@example.com", domain.RoleFounder)

		up, err := env.auth.UpdateProfile(ctx, sess.Token.Claims, ProfileInput{Name: ptr(""), Role: ptr("admin")})
		require.NoError(t, err)
		require.Equal(t, "Quinn", up.User.Name)
		require.Equal(t, domain.RoleFounder, up.User.Role)
		require.Nil(t, up.Token)
	})

	t.Run("role change issues a token carrying the new role", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.signup(t, "Rae", "rae@example.com", domain.RoleFounder)

		up, err := env.auth.UpdateProfile(ctx, sess.Token.Claims, ProfileInput{Role: ptr("investor")})
		require.NoError(t, err)
		require.Equal(t, domain.RoleInvestor, up.User.Role)
		require.NotNil(t, up.Token)

		claims, err := env.verifier.Verify(up.Token.Token)
		require.NoError(t, err)
		require.Equal(t, "investor", claims.Role)

		// The founder token that made the change is revoked.
		revoked, err := env.tokens.IsRevoked(ctx, sess.Token.Claims.ID)
		require.NoError(t, err)
		require.True(t, revoked)
		_, err = env.tokens.Verify(ctx, sess.Token.Token)
		require.ErrorIs(t, err, ErrInvalidToken)

		revoked, err = env.tokens.IsRevoked(ctx, up.Token.Claims.ID)
		require.NoError(t, err)
		require.False(t, revoked)
	})

	t.Run("profile edits without a role change keep the token", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.signup(t, "Tess", "tess@example.com", domain.RoleInvestor)

		_, err := env.auth.UpdateProfile(ctx, sess.Token.Claims, ProfileInput{Role: ptr("investor"), Bio: ptr("Angel")})
		require.NoError(t, err)

		revoked, err := env.tokens.IsRevoked(ctx, sess.Token.Claims.ID)
		require.NoError(t, err)
		require.False(t, revoked)
	})

	t.Run("validates profile fields", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.signup(t, "Sam", "sam@example.com", domain.RoleFounder)

		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}
		_, err := env.auth.UpdateProfile(ctx, sess.Token.Claims, ProfileInput{
			Bio:     ptr(string(long)),
			Website: ptr("not a url"),
		})
		requireFieldError(t, err, "bio")
		requireFieldError(t, err, "website")
	})

	t.Run("preferences are investor only", func(t *testing.T) {
		env := newTestEnv(t)
		founder := env.signup(t, "Una", "una@example.com", domain.RoleFounder)

		_, err := env.auth.UpdateProfile(ctx, founder.Token.Claims, ProfileInput{
			InvestmentPreferences: &PreferencesInput{Industries: []string{"AI"}},
		})
		requireFieldError(t, err, "investmentPreferences")

		investor := env.signup(t, "Val", "val@example.com", domain.RoleInvestor)
		up, err := env.auth.UpdateProfile(ctx, investor.Token.Claims, ProfileInput{
			InvestmentPreferences: &PreferencesInput{Industries: []string{"AI"}, Stages: []string{"IPO"}},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"AI"}, up.User.InvestmentPreferences.Industries)
		require.Equal(t, []string{"IPO"}, up.User.InvestmentPreferences.Stages)
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newTestEnv(t)
		nobody := jwtx.NewClaims(idx.New().String(), "founder", "Nobody", "nobody@example.com", false, "", time.Hour, time.Now())
		_, err := env.auth.UpdateProfile(ctx, nobody, ProfileInput{Name: ptr("Nobody")})
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
