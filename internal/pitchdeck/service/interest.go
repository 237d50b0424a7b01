package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
)

// InterestService tracks which pitches an investor has bookmarked.
type InterestService struct {
	Store   store.Store
	Metrics *Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *InterestService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Mark records interest in pitchID. Marking the same pitch again is a no-op;
// added reports whether a new entry was written.
func (s *InterestService) Mark(ctx context.Context, investorID, pitchID string) (added bool, err error) {
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Pitches().GetPitchByID(ctx, pitchID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrPitchNotFound
			}
			return err
		}

		added, err = tx.Interests().AddInterest(ctx, domain.Interest{
			InvestorID: investorID,
			PitchID:    pitchID,
			CreatedAt:  s.now(),
		})
		return err
	})
	if err != nil {
		return false, err
	}

	if added {
		s.Metrics.interest(ctx, "add")
		slogx.FromContext(ctx).Info("interest recorded",
			slog.String("investor_id", investorID),
			slog.String("pitch_id", pitchID),
		)
	}
	return added, nil
}

// Unmark removes interest in pitchID. Removing an absent entry is not an error.
func (s *InterestService) Unmark(ctx context.Context, investorID, pitchID string) error {
	if err := s.Store.Interests().RemoveInterest(ctx, investorID, pitchID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	s.Metrics.interest(ctx, "remove")
	return nil
}

// List returns the investor's bookmarked pitches in the order they were marked.
func (s *InterestService) List(ctx context.Context, investorID string) ([]domain.PitchWithFounder, error) {
	pitches, err := s.Store.Interests().ListInterestedPitches(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if pitches == nil {
		pitches = []domain.PitchWithFounder{}
	}
	return pitches, nil
}
