package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	now := time.Now().UTC()

	require.NoError(t, env.store.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
		JTI: "expired", UserID: "u1", ExpiresAt: now.Add(-time.Minute), RevokedAt: now.Add(-time.Hour),
	}))
	require.NoError(t, env.store.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
		JTI: "live", UserID: "u1", ExpiresAt: now.Add(time.Hour), RevokedAt: now,
	}))
	require.NoError(t, env.store.OAuthStates().CreateOAuthState(ctx, domain.OAuthState{
		StateHash: "old", ExpiresAt: now.Add(-time.Minute), CreatedAt: now.Add(-time.Hour),
	}))

	hk := NewHousekeepingService(env.store, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	require.Equal(t, time.Hour, hk.Interval)

	revoked, states := hk.Cleanup(ctx)
	require.EqualValues(t, 1, revoked)
	require.EqualValues(t, 1, states)

	live, err := env.store.RevokedTokens().IsTokenRevoked(ctx, "live")
	require.NoError(t, err)
	require.True(t, live)

	gone, err := env.store.RevokedTokens().IsTokenRevoked(ctx, "expired")
	require.NoError(t, err)
	require.False(t, gone)
}

func TestHousekeepingStartStop(t *testing.T) {
	env := newTestEnv(t)

	hk := NewHousekeepingService(env.store, slog.New(slog.NewTextHandler(io.Discard, nil)), 10*time.Millisecond)
	hk.Start()
	time.Sleep(30 * time.Millisecond)
	hk.Stop()
}
