package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestPitchLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.signup(t, "Olive Owner", "olive@example.com", domain.RoleFounder)
	other := env.signup(t, "Otto Other", "otto@example.com", domain.RoleFounder)

	first := env.createPitch(t, owner.User.ID, "Acme")
	require.Equal(t, owner.User.ID, first.FounderID)
	require.Equal(t, "Olive Owner", first.Founder.Name)

	t.Run("rejects a duplicate name for the same founder", func(t *testing.T) {
		_, err := env.pitches.Create(ctx, owner.User.ID, PitchInput{
			Name: "Acme", Description: "again", Industry: "Fintech", Stage: "Seed",
		})
		require.ErrorIs(t, err, ErrPitchNameTaken)

		// Another founder may reuse the name.
		env.createPitch(t, other.User.ID, "Acme")
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := env.pitches.Create(ctx, owner.User.ID, PitchInput{Name: "X", Stage: "Series Z", FundingGoal: ptr(-1.0)})
		requireFieldError(t, err, "name")
		requireFieldError(t, err, "description")
		requireFieldError(t, err, "industry")
		requireFieldError(t, err, "stage")
		requireFieldError(t, err, "fundingGoal")
	})

	t.Run("lists newest first with filters", func(t *testing.T) {
		second, err := env.pitches.Create(ctx, owner.User.ID, PitchInput{
			Name: "Beta", Description: "health", Industry: "Health", Stage: "Series A", FundingGoal: ptr(250000.0),
		})
		require.NoError(t, err)

		all, err := env.pitches.List(ctx, domain.PitchFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, second.ID, all[0].ID)

		health, err := env.pitches.List(ctx, domain.PitchFilter{Industry: " Health "})
		require.NoError(t, err)
		require.Len(t, health, 1)
		require.Equal(t, second.ID, health[0].ID)

		mine, err := env.pitches.Mine(ctx, owner.User.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		for _, p := range mine {
			require.Equal(t, owner.User.ID, p.FounderID)
		}
	})

	t.Run("only the owner can update", func(t *testing.T) {
		in := PitchInput{Name: "Acme 2", Description: "updated", Industry: "Fintech", Stage: "Series A", Website: "https://acme.example"}

		_, err := env.pitches.Update(ctx, other.User.ID, first.ID, in)
		require.ErrorIs(t, err, ErrNotPitchOwner)

		updated, err := env.pitches.Update(ctx, owner.User.ID, first.ID, in)
		require.NoError(t, err)
		require.Equal(t, "Acme 2", updated.Name)
		require.Equal(t, "Series A", updated.Stage)
		require.Equal(t, "https://acme.example", updated.Website)
		require.True(t, updated.UpdatedAt.After(updated.CreatedAt))

		in.Name = "Beta"
		_, err = env.pitches.Update(ctx, owner.User.ID, first.ID, in)
		require.ErrorIs(t, err, ErrPitchNameTaken)
	})

	t.Run("get unknown pitch", func(t *testing.T) {
		_, err := env.pitches.Get(ctx, idx.New().String())
		require.ErrorIs(t, err, ErrPitchNotFound)
	})

	t.Run("only the owner can delete", func(t *testing.T) {
		require.ErrorIs(t, env.pitches.Delete(ctx, other.User.ID, first.ID), ErrNotPitchOwner)
		require.NoError(t, env.pitches.Delete(ctx, owner.User.ID, first.ID))
		require.ErrorIs(t, env.pitches.Delete(ctx, owner.User.ID, first.ID), ErrPitchNotFound)

		_, err := env.pitches.Get(ctx, first.ID)
		require.ErrorIs(t, err, ErrPitchNotFound)
	})
}

func TestInterests(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	founder := env.signup(t, "Fay", "fay@example.com", domain.RoleFounder)
	investor := env.signup(t, "Ian", "ian@example.com", domain.RoleInvestor)

	p1 := env.createPitch(t, founder.User.ID, "One")
	p2 := env.createPitch(t, founder.User.ID, "Two")

	t.Run("marking twice keeps a single entry", func(t *testing.T) {
		added, err := env.interests.Mark(ctx, investor.User.ID, p2.ID)
		require.NoError(t, err)
		require.True(t, added)

		added, err = env.interests.Mark(ctx, investor.User.ID, p2.ID)
		require.NoError(t, err)
		require.False(t, added)

		_, err = env.interests.Mark(ctx, investor.User.ID, p1.ID)
		require.NoError(t, err)

		list, err := env.interests.List(ctx, investor.User.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, p2.ID, list[0].ID, "ordered by when interest was recorded")
		require.Equal(t, p1.ID, list[1].ID)
		require.Equal(t, "Fay", list[0].Founder.Name)

		acct, err := env.auth.Me(ctx, investor.User.ID)
		require.NoError(t, err)
		require.Equal(t, []string{p2.ID, p1.ID}, acct.InterestedPitches)
	})

	t.Run("unknown pitch is not found", func(t *testing.T) {
		_, err := env.interests.Mark(ctx, investor.User.ID, idx.New().String())
		require.ErrorIs(t, err, ErrPitchNotFound)
	})

	t.Run("owner sees interested investors", func(t *testing.T) {
		pi, err := env.pitches.Interests(ctx, founder.User.ID, p2.ID)
		require.NoError(t, err)
		require.Equal(t, 1, pi.Count)
		require.Equal(t, investor.User.ID, pi.Investors[0].ID)

		_, err = env.pitches.Interests(ctx, investor.User.ID, p2.ID)
		require.ErrorIs(t, err, ErrNotPitchOwner)
	})

	t.Run("unmark is idempotent", func(t *testing.T) {
		require.NoError(t, env.interests.Unmark(ctx, investor.User.ID, p2.ID))
		require.NoError(t, env.interests.Unmark(ctx, investor.User.ID, p2.ID))

		list, err := env.interests.List(ctx, investor.User.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, p1.ID, list[0].ID)
	})

	t.Run("deleting a pitch drops its interests", func(t *testing.T) {
		require.NoError(t, env.pitches.Delete(ctx, founder.User.ID, p1.ID))

		list, err := env.interests.List(ctx, investor.User.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
