package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store/drivers/sqlite/gen"
)

type pitchesRepo struct {
	q *gen.Queries
}

func (r *pitchesRepo) CreatePitch(ctx context.Context, p domain.Pitch) error {
	err := r.q.CreatePitch(ctx, gen.CreatePitchParams{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Industry:    p.Industry,
		Stage:       p.Stage,
		FounderID:   p.FounderID,
		FundingGoal: mapOptionalFloat(p.FundingGoal),
		Website:     p.Website,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	})
	return mapConstraint(err)
}

func (r *pitchesRepo) GetPitchByID(ctx context.Context, id string) (domain.PitchWithFounder, error) {
	row, err := r.q.GetPitchWithFounder(ctx, id)
	if err != nil {
		return domain.PitchWithFounder{}, mapNotFound(err)
	}
	return mapPitchWithFounder(founderRow(row)), nil
}

func (r *pitchesRepo) ListPitches(ctx context.Context, f domain.PitchFilter) ([]domain.PitchWithFounder, error) {
	rows, err := r.q.ListPitchesWithFounder(ctx, gen.ListPitchesWithFounderParams{
		Industry:  f.Industry,
		Stage:     f.Stage,
		FounderID: f.FounderID,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.PitchWithFounder, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPitchWithFounder(founderRow(row)))
	}
	return out, nil
}

func (r *pitchesRepo) UpdatePitch(ctx context.Context, p domain.Pitch) error {
	return requireAffected(r.q.UpdatePitch(ctx, gen.UpdatePitchParams{
		Name:        p.Name,
		Description: p.Description,
		Industry:    p.Industry,
		Stage:       p.Stage,
		FundingGoal: mapOptionalFloat(p.FundingGoal),
		Website:     p.Website,
		UpdatedAt:   p.UpdatedAt,
		ID:          p.ID,
	}))
}

func (r *pitchesRepo) DeletePitch(ctx context.Context, id string) error {
	return requireAffected(r.q.DeletePitch(ctx, id))
}

func (r *pitchesRepo) PitchExists(ctx context.Context, founderID, name string) (bool, error) {
	n, err := r.q.CountPitchesByFounderAndName(ctx, gen.CountPitchesByFounderAndNameParams{
		FounderID: founderID,
		Name:      name,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// founderRow is the common shape of the generated pitch+founder rows.
type founderRow gen.GetPitchWithFounderRow

func mapPitch(row gen.Pitch) domain.Pitch {
	return domain.Pitch{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Industry:    row.Industry,
		Stage:       row.Stage,
		FounderID:   row.FounderID,
		FundingGoal: mapNullFloatPtr(row.FundingGoal),
		Website:     row.Website,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mapPitchWithFounder(row founderRow) domain.PitchWithFounder {
	return domain.PitchWithFounder{
		Pitch: mapPitch(row.Pitch),
		Founder: domain.UserSummary{
			ID:    row.Pitch.FounderID,
			Name:  row.FounderName,
			Email: row.FounderEmail,
			Role:  domain.Role(row.FounderRole),
			Profile: domain.Profile{
				Avatar:   row.FounderAvatar,
				Bio:      row.FounderBio,
				Location: row.FounderLocation,
				Website:  row.FounderWebsite,
				LinkedIn: row.FounderLinkedin,
				Twitter:  row.FounderTwitter,
			},
		},
	}
}
