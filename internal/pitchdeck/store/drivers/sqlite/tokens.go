package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store/drivers/sqlite/gen"
)

type revokedTokensRepo struct {
	q *gen.Queries
}

func (r *revokedTokensRepo) RevokeToken(ctx context.Context, t domain.RevokedToken) error {
	return r.q.RevokeToken(ctx, gen.RevokeTokenParams{
		Jti:       t.JTI,
		UserID:    t.UserID,
		ExpiresAt: t.ExpiresAt.UTC(),
		RevokedAt: t.RevokedAt.UTC(),
	})
}

func (r *revokedTokensRepo) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.q.CountRevokedToken(ctx, jti)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *revokedTokensRepo) DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredRevokedTokens(ctx, now.UTC())
}

type oauthStatesRepo struct {
	q *gen.Queries
}

func (r *oauthStatesRepo) CreateOAuthState(ctx context.Context, s domain.OAuthState) error {
	err := r.q.CreateOAuthState(ctx, gen.CreateOAuthStateParams{
		StateHash: s.StateHash,
		ExpiresAt: s.ExpiresAt.UTC(),
		CreatedAt: s.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *oauthStatesRepo) ConsumeOAuthState(ctx context.Context, stateHash string, now time.Time) error {
	return requireAffected(r.q.ConsumeOAuthState(ctx, gen.ConsumeOAuthStateParams{
		StateHash: stateHash,
		ExpiresAt: now.UTC(),
	}))
}

func (r *oauthStatesRepo) DeleteExpiredOAuthStates(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredOAuthStates(ctx, now.UTC())
}
