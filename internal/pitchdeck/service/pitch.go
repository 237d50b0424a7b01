package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/pkg/idx"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
	"github.com/aussiebroadwan/pitchdeck/pkg/validx"
)

type PitchInput struct {
	Name        string   `json:"name" yaml:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" yaml:"description" validate:"required,max=5000"`
	Industry    string   `json:"industry" yaml:"industry" validate:"required,max=100"`
	Stage       string   `json:"stage" yaml:"stage" validate:"required,oneof='Pre-Seed' 'Seed' 'Series A' 'Series B' 'Series C' 'Growth' 'IPO'"`
	FundingGoal *float64 `json:"fundingGoal,omitempty" yaml:"fundingGoal,omitempty" validate:"omitempty,min=0"`
	Website     string   `json:"website,omitempty" yaml:"website,omitempty" validate:"omitempty,url,max=2048"`
}

func (in *PitchInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Industry = strings.TrimSpace(in.Industry)
	in.Stage = strings.TrimSpace(in.Stage)
	in.Website = strings.TrimSpace(in.Website)
}

// PitchInterest is the owner's view of who bookmarked a pitch.
type PitchInterest struct {
	PitchID   string
	Count     int
	Investors []domain.UserSummary
}

type PitchService struct {
	Store   store.Store
	Metrics *Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *PitchService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Create submits a pitch owned by founderID.
func (s *PitchService) Create(ctx context.Context, founderID string, in PitchInput) (domain.PitchWithFounder, error) {
	in.normalize()
	if err := validx.Struct(in); err != nil {
		return domain.PitchWithFounder{}, err
	}

	now := s.now()
	p := domain.Pitch{
		ID:          idx.NewAt(now).String(),
		Name:        in.Name,
		Description: in.Description,
		Industry:    in.Industry,
		Stage:       in.Stage,
		FounderID:   founderID,
		FundingGoal: in.FundingGoal,
		Website:     in.Website,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created domain.PitchWithFounder
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		exists, err := tx.Pitches().PitchExists(ctx, founderID, p.Name)
		if err != nil {
			return err
		}
		if exists {
			return ErrPitchNameTaken
		}
		if err := tx.Pitches().CreatePitch(ctx, p); err != nil {
			return fmt.Errorf("create pitch: %w", err)
		}
		created, err = tx.Pitches().GetPitchByID(ctx, p.ID)
		return err
	})
	if err != nil {
		return domain.PitchWithFounder{}, err
	}

	s.Metrics.pitchCreated(ctx)
	slogx.FromContext(ctx).Info("pitch created",
		slog.String("pitch_id", p.ID),
		slog.String("founder_id", founderID),
	)
	return created, nil
}

// List returns pitches newest first.
func (s *PitchService) List(ctx context.Context, f domain.PitchFilter) ([]domain.PitchWithFounder, error) {
	f.Industry = strings.TrimSpace(f.Industry)
	f.Stage = strings.TrimSpace(f.Stage)
	return s.Store.Pitches().ListPitches(ctx, f)
}

func (s *PitchService) Mine(ctx context.Context, founderID string) ([]domain.PitchWithFounder, error) {
	return s.Store.Pitches().ListPitches(ctx, domain.PitchFilter{FounderID: founderID})
}

func (s *PitchService) Get(ctx context.Context, id string) (domain.PitchWithFounder, error) {
	p, err := s.Store.Pitches().GetPitchByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PitchWithFounder{}, ErrPitchNotFound
		}
		return domain.PitchWithFounder{}, err
	}
	return p, nil
}

// Update replaces the editable fields of a pitch owned by founderID.
func (s *PitchService) Update(ctx context.Context, founderID, id string, in PitchInput) (domain.PitchWithFounder, error) {
	in.normalize()
	if err := validx.Struct(in); err != nil {
		return domain.PitchWithFounder{}, err
	}

	var updated domain.PitchWithFounder
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := ownedPitch(ctx, tx, founderID, id)
		if err != nil {
			return err
		}

		if current.Name != in.Name {
			exists, err := tx.Pitches().PitchExists(ctx, founderID, in.Name)
			if err != nil {
				return err
			}
			if exists {
				return ErrPitchNameTaken
			}
		}

		p := current.Pitch
		p.Name = in.Name
		p.Description = in.Description
		p.Industry = in.Industry
		p.Stage = in.Stage
		p.FundingGoal = in.FundingGoal
		p.Website = in.Website
		p.UpdatedAt = s.now()

		if err := tx.Pitches().UpdatePitch(ctx, p); err != nil {
			return fmt.Errorf("update pitch: %w", err)
		}
		updated, err = tx.Pitches().GetPitchByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.PitchWithFounder{}, err
	}
	return updated, nil
}

// Delete removes a pitch owned by founderID along with its interests.
func (s *PitchService) Delete(ctx context.Context, founderID, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := ownedPitch(ctx, tx, founderID, id); err != nil {
			return err
		}
		return tx.Pitches().DeletePitch(ctx, id)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("pitch deleted",
		slog.String("pitch_id", id),
		slog.String("founder_id", founderID),
	)
	return nil
}

// Interests lists the investors who bookmarked a pitch owned by founderID.
func (s *PitchService) Interests(ctx context.Context, founderID, id string) (PitchInterest, error) {
	if _, err := ownedPitch(ctx, s.Store, founderID, id); err != nil {
		return PitchInterest{}, err
	}

	investors, err := s.Store.Interests().ListPitchInvestors(ctx, id)
	if err != nil {
		return PitchInterest{}, err
	}
	if investors == nil {
		investors = []domain.UserSummary{}
	}
	return PitchInterest{PitchID: id, Count: len(investors), Investors: investors}, nil
}

func ownedPitch(ctx context.Context, st store.Store, founderID, id string) (domain.PitchWithFounder, error) {
	p, err := st.Pitches().GetPitchByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PitchWithFounder{}, ErrPitchNotFound
		}
		return domain.PitchWithFounder{}, err
	}
	if p.FounderID != founderID {
		return domain.PitchWithFounder{}, ErrNotPitchOwner
	}
	return p, nil
}
