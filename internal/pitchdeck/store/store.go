package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories per aggregate. Repositories obtained from a Tx run
// inside that transaction.
type Store interface {
	Users() Users
	Pitches() Pitches
	Interests() Interests
	RevokedTokens() RevokedTokens
	OAuthStates() OAuthStates

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only use the repos of tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already normalised (lower-cased, trimmed) email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	GetUserByGoogleID(ctx context.Context, googleID string) (domain.User, error)

	// CreateUser inserts a new user. A duplicate email or Google id returns
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser overwrites the mutable fields (name, role, profile,
	// investment preferences, flags) and sets updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	// LinkGoogleID attaches a Google identity to an existing account.
	LinkGoogleID(ctx context.Context, userID, googleID string, at time.Time) error

	// DeleteUser cascades to pitches and interests (per schema).
	DeleteUser(ctx context.Context, id string) error
}

type Pitches interface {
	CreatePitch(ctx context.Context, p domain.Pitch) error
	GetPitchByID(ctx context.Context, id string) (domain.PitchWithFounder, error)

	// ListPitches returns pitches newest first.
	ListPitches(ctx context.Context, f domain.PitchFilter) ([]domain.PitchWithFounder, error)

	UpdatePitch(ctx context.Context, p domain.Pitch) error

	// DeletePitch cascades to interests (per schema).
	DeletePitch(ctx context.Context, id string) error

	// PitchExists reports whether founderID already owns a pitch named name.
	PitchExists(ctx context.Context, founderID, name string) (bool, error)
}

type Interests interface {
	// AddInterest records the interest unless it already exists. added is
	// false when the pair was already present.
	AddInterest(ctx context.Context, in domain.Interest) (added bool, err error)

	RemoveInterest(ctx context.Context, investorID, pitchID string) error

	// ListInterestedPitchIDs returns pitch ids in the order interest was recorded.
	ListInterestedPitchIDs(ctx context.Context, investorID string) ([]string, error)

	// ListInterestedPitches returns pitches in the order interest was recorded.
	ListInterestedPitches(ctx context.Context, investorID string) ([]domain.PitchWithFounder, error)

	// ListPitchInvestors returns investors interested in pitchID.
	ListPitchInvestors(ctx context.Context, pitchID string) ([]domain.UserSummary, error)
}

type RevokedTokens interface {
	// RevokeToken records jti as revoked. Revoking twice is not an error.
	RevokeToken(ctx context.Context, t domain.RevokedToken) error

	IsTokenRevoked(ctx context.Context, jti string) (bool, error)

	// DeleteExpiredRevokedTokens removes rows whose token expired before now.
	DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error)
}

type OAuthStates interface {
	CreateOAuthState(ctx context.Context, s domain.OAuthState) error

	// ConsumeOAuthState deletes the state if it exists and has not expired.
	// Missing or expired states return ErrNotFound.
	ConsumeOAuthState(ctx context.Context, stateHash string, now time.Time) error

	DeleteExpiredOAuthStates(ctx context.Context, now time.Time) (int64, error)
}
