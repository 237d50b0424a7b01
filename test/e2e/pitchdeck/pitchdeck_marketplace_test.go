package pitchdeck_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
	"github.com/stretchr/testify/require"
)

// TestFounderPitchLifecycle covers create, update, ownership and delete.
func TestFounderPitchLifecycle(t *testing.T) {
	client := pitchsdk.NewSDKClient(setupContainer(t))
	ctx := t.Context()

	founder := signupFounder(t, client, "Ada Founder")
	other := signupFounder(t, client, "Bob Founder")

	pitch := createPitch(t, founder, "Acme Rockets", "Aerospace", "Seed")
	require.Equal(t, "Ada Founder", pitch.Founder.Name)

	_, err := founder.CreatePitch(ctx, pitchsdk.PitchRequest{
		Name:        "Acme Rockets",
		Description: "Again",
		Industry:    "Aerospace",
		Stage:       "Seed",
	})
	assertStatus(t, err, http.StatusConflict, "duplicate pitch name")

	// Another founder may reuse the name.
	createPitch(t, other, "Acme Rockets", "Aerospace", "Seed")

	updated, err := founder.UpdatePitch(ctx, pitch.ID, pitchsdk.PitchRequest{
		Name:        "Acme Rockets",
		Description: "Rockets for everyone",
		Industry:    "Aerospace",
		Stage:       "Series A",
	})
	require.NoError(t, err)
	require.Equal(t, "Series A", updated.Stage)

	_, err = other.UpdatePitch(ctx, pitch.ID, pitchsdk.PitchRequest{
		Name:        "Hijack",
		Description: "Not mine",
		Industry:    "Aerospace",
		Stage:       "Seed",
	})
	assertStatus(t, err, http.StatusForbidden, "update by non-owner")

	mine, err := founder.MyPitches(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, founder.DeletePitch(ctx, pitch.ID))

	_, err = founder.GetPitch(ctx, pitch.ID)
	assertStatus(t, err, http.StatusNotFound, "deleted pitch")
}

// TestInvestorInterest covers browsing, filters and marking interest.
func TestInvestorInterest(t *testing.T) {
	client := pitchsdk.NewSDKClient(setupContainer(t))
	ctx := t.Context()

	founder := signupFounder(t, client, "Ada Founder")
	investor := signupInvestor(t, client, "Ivan Investor")

	rockets := createPitch(t, founder, "Rockets", "Aerospace", "Seed")
	createPitch(t, founder, "Ledgers", "Fintech", "Series A")

	all, err := investor.InvestorPitches(ctx, pitchsdk.PitchFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Ledgers", all[0].Name, "newest first")

	filtered, err := investor.InvestorPitches(ctx, pitchsdk.PitchFilter{Industry: "Aerospace"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, rockets.ID, filtered[0].ID)

	res, err := investor.MarkInterest(ctx, rockets.ID)
	require.NoError(t, err)
	require.True(t, res.Added)

	res, err = investor.MarkInterest(ctx, rockets.ID)
	require.NoError(t, err)
	require.False(t, res.Added, "marking twice is a no-op")

	_, err = investor.MarkInterest(ctx, "does-not-exist")
	assertStatus(t, err, http.StatusNotFound, "unknown pitch")

	interests, err := investor.Interests(ctx)
	require.NoError(t, err)
	require.Len(t, interests, 1)

	owner, err := founder.PitchInterests(ctx, rockets.ID)
	require.NoError(t, err)
	require.Equal(t, 1, owner.Count)
	require.Equal(t, "Ivan Investor", owner.Investors[0].Name)

	_, err = investor.PitchInterests(ctx, rockets.ID)
	assertStatus(t, err, http.StatusForbidden, "investor on founder route")

	require.NoError(t, investor.UnmarkInterest(ctx, rockets.ID))
	interests, err = investor.Interests(ctx)
	require.NoError(t, err)
	require.Empty(t, interests)
}
