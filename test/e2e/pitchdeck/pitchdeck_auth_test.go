package pitchdeck_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
	"github.com/stretchr/testify/require"
)

// TestAuthFlow covers signup, login, the profile and logout against a real container.
func TestAuthFlow(t *testing.T) {
	client := pitchsdk.NewSDKClient(setupContainer(t))
	ctx := t.Context()

	email := uniqueEmail(t, "ada")
	session, err := client.Signup(ctx, pitchsdk.SignupRequest{
		Name:     "Ada Lovelace",
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.Equal(t, pitchsdk.RoleFounder, session.User().Role, "role defaults to founder")

	// Emails are matched case-insensitively.
	_, err = client.Signup(ctx, pitchsdk.SignupRequest{
		Name:     "Ada Again",
		Email:    strings.ToUpper(email),
		Password: testPassword,
	})
	assertStatus(t, err, http.StatusConflict, "duplicate email")

	_, err = client.Login(ctx, email, "wrong-password")
	assertStatus(t, err, http.StatusUnauthorized, "wrong password")

	login, err := client.Login(ctx, email, testPassword)
	require.NoError(t, err)

	me, err := login.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", me.Name)
	require.Equal(t, session.User().ID, me.ID)

	bio := "Analytical engines"
	updated, err := login.UpdateProfile(ctx, pitchsdk.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, bio, updated.Profile.Bio)

	token := login.Token()
	require.NoError(t, login.Logout(ctx))

	_, err = client.NewSessionFromToken(token).Me(ctx)
	assertStatus(t, err, http.StatusUnauthorized, "revoked token")
}

// TestSignupValidation checks that field errors are reported per field.
func TestSignupValidation(t *testing.T) {
	client := pitchsdk.NewSDKClient(setupContainer(t))

	_, err := client.Signup(t.Context(), pitchsdk.SignupRequest{
		Name:     "A",
		Email:    "not-an-email",
		Password: "123",
	})
	assertStatus(t, err, http.StatusBadRequest, "invalid signup")

	fields := pitchsdk.FieldErrors(err)
	require.Contains(t, fields, "name")
	require.Contains(t, fields, "email")
	require.Contains(t, fields, "password")
}

// TestRoleSwitchIssuesNewToken checks that a founder becoming an investor
// gets a token carrying the new role.
func TestRoleSwitchIssuesNewToken(t *testing.T) {
	client := pitchsdk.NewSDKClient(setupContainer(t))
	ctx := t.Context()

	founder := signupFounder(t, client, "Grace Hopper")
	oldToken := founder.Token()

	_, err := founder.InvestorPitches(ctx, pitchsdk.PitchFilter{})
	assertStatus(t, err, http.StatusForbidden, "founder on investor route")

	role := pitchsdk.RoleInvestor
	user, err := founder.UpdateProfile(ctx, pitchsdk.UpdateProfileRequest{Role: &role})
	require.NoError(t, err)
	require.Equal(t, pitchsdk.RoleInvestor, user.Role)
	require.NotEqual(t, oldToken, founder.Token())

	_, err = founder.InvestorPitches(ctx, pitchsdk.PitchFilter{})
	require.NoError(t, err)
}
