package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store/drivers/sqlite/gen"
)

type interestsRepo struct {
	q *gen.Queries
}

func (r *interestsRepo) AddInterest(ctx context.Context, in domain.Interest) (bool, error) {
	n, err := r.q.AddInterest(ctx, gen.AddInterestParams{
		InvestorID: in.InvestorID,
		PitchID:    in.PitchID,
		CreatedAt:  in.CreatedAt,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *interestsRepo) RemoveInterest(ctx context.Context, investorID, pitchID string) error {
	return r.q.RemoveInterest(ctx, gen.RemoveInterestParams{
		InvestorID: investorID,
		PitchID:    pitchID,
	})
}

func (r *interestsRepo) ListInterestedPitchIDs(ctx context.Context, investorID string) ([]string, error) {
	ids, err := r.q.ListInterestedPitchIDs(ctx, investorID)
	if err != nil {
		return nil, err
	}
	return nonNil(ids), nil
}

func (r *interestsRepo) ListInterestedPitches(ctx context.Context, investorID string) ([]domain.PitchWithFounder, error) {
	rows, err := r.q.ListInterestedPitches(ctx, investorID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PitchWithFounder, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPitchWithFounder(founderRow(row)))
	}
	return out, nil
}

func (r *interestsRepo) ListPitchInvestors(ctx context.Context, pitchID string) ([]domain.UserSummary, error) {
	rows, err := r.q.ListPitchInvestors(ctx, pitchID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.UserSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.UserSummary{
			ID:    row.ID,
			Name:  row.Name,
			Email: row.Email,
			Role:  domain.Role(row.Role),
			Profile: domain.Profile{
				Avatar:   row.Avatar,
				Bio:      row.Bio,
				Location: row.Location,
				Website:  row.Website,
				LinkedIn: row.Linkedin,
				Twitter:  row.Twitter,
			},
		})
	}
	return out, nil
}
