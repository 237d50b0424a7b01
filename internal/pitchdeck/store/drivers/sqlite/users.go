package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row)
}

func (r *usersRepo) GetUserByGoogleID(ctx context.Context, googleID string) (domain.User, error) {
	row, err := r.q.GetUserByGoogleID(ctx, mapStringNull(googleID))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	industries, stages, err := encodePreferences(u.InvestmentPreferences)
	if err != nil {
		return err
	}

	err = r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:                   u.ID,
		Name:                 u.Name,
		Email:                u.Email,
		PasswordHash:         mapStringNull(u.PasswordHash),
		GoogleID:             mapStringNull(u.GoogleID),
		Role:                 string(u.Role),
		Avatar:               u.Profile.Avatar,
		Bio:                  u.Profile.Bio,
		Location:             u.Profile.Location,
		Website:              u.Profile.Website,
		Linkedin:             u.Profile.LinkedIn,
		Twitter:              u.Profile.Twitter,
		IsVerified:           u.IsVerified,
		IsActive:             u.IsActive,
		InvestmentIndustries: industries,
		InvestmentStages:     stages,
		MinInvestment:        u.InvestmentPreferences.MinInvestment,
		MaxInvestment:        mapOptionalFloat(u.InvestmentPreferences.MaxInvestment),
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	})
	return mapConstraint(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	industries, stages, err := encodePreferences(u.InvestmentPreferences)
	if err != nil {
		return err
	}

	return requireAffected(r.q.UpdateUser(ctx, gen.UpdateUserParams{
		Name:                 u.Name,
		Role:                 string(u.Role),
		Avatar:               u.Profile.Avatar,
		Bio:                  u.Profile.Bio,
		Location:             u.Profile.Location,
		Website:              u.Profile.Website,
		Linkedin:             u.Profile.LinkedIn,
		Twitter:              u.Profile.Twitter,
		IsVerified:           u.IsVerified,
		IsActive:             u.IsActive,
		InvestmentIndustries: industries,
		InvestmentStages:     stages,
		MinInvestment:        u.InvestmentPreferences.MinInvestment,
		MaxInvestment:        mapOptionalFloat(u.InvestmentPreferences.MaxInvestment),
		UpdatedAt:            u.UpdatedAt,
		ID:                   u.ID,
	}))
}

func (r *usersRepo) LinkGoogleID(ctx context.Context, userID, googleID string, at time.Time) error {
	n, err := r.q.LinkUserGoogleID(ctx, gen.LinkUserGoogleIDParams{
		GoogleID:  mapStringNull(googleID),
		UpdatedAt: at,
		ID:        userID,
	})
	return requireAffected(n, mapConstraint(err))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	return r.q.DeleteUser(ctx, id)
}

// Preference lists are stored as JSON arrays; stage names contain spaces.
func encodePreferences(p domain.InvestmentPreferences) (industries, stages string, err error) {
	ind, err := json.Marshal(nonNil(p.Industries))
	if err != nil {
		return "", "", fmt.Errorf("encode industries: %w", err)
	}
	st, err := json.Marshal(nonNil(p.Stages))
	if err != nil {
		return "", "", fmt.Errorf("encode stages: %w", err)
	}
	return string(ind), string(st), nil
}

func decodeList(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapUser(row gen.User) (domain.User, error) {
	industries, err := decodeList(row.InvestmentIndustries)
	if err != nil {
		return domain.User{}, fmt.Errorf("decode industries for user %s: %w", row.ID, err)
	}
	stages, err := decodeList(row.InvestmentStages)
	if err != nil {
		return domain.User{}, fmt.Errorf("decode stages for user %s: %w", row.ID, err)
	}

	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: mapNullString(row.PasswordHash),
		GoogleID:     mapNullString(row.GoogleID),
		Role:         domain.Role(row.Role),
		Profile: domain.Profile{
			Avatar:   row.Avatar,
			Bio:      row.Bio,
			Location: row.Location,
			Website:  row.Website,
			LinkedIn: row.Linkedin,
			Twitter:  row.Twitter,
		},
		IsVerified: row.IsVerified,
		IsActive:   row.IsActive,
		InvestmentPreferences: domain.InvestmentPreferences{
			Industries:    industries,
			Stages:        stages,
			MinInvestment: row.MinInvestment,
			MaxInvestment: mapNullFloatPtr(row.MaxInvestment),
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

