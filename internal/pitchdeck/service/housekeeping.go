package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
)

// HousekeepingService periodically deletes revoked tokens that have expired
// and abandoned OAuth states.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Now defaults to time.Now.
	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs cleanup once and then on every tick until Stop is called.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes expired rows. Each table is cleaned independently.
func (s *HousekeepingService) Cleanup(ctx context.Context) (revoked, states int64) {
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}

	n, err := s.Store.RevokedTokens().DeleteExpiredRevokedTokens(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired revoked tokens", "error", err)
	} else {
		revoked = n
	}

	n, err = s.Store.OAuthStates().DeleteExpiredOAuthStates(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired oauth states", "error", err)
	} else {
		states = n
	}

	s.Logger.Debug("housekeeping cleanup completed",
		"revoked_tokens_deleted", revoked,
		"oauth_states_deleted", states,
	)
	return revoked, states
}
