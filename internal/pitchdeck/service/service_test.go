package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store/drivers/sqlite"
	"github.com/aussiebroadwan/pitchdeck/pkg/cryptox"
	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/aussiebroadwan/pitchdeck/pkg/validx"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/crypto/bcrypt"
)

const (
	testIssuer = "pitchdeck-test"
	testSecret = "service-test-secret"
)

// stepClock advances by one millisecond on every call so rows created in a
// test have distinct, increasing timestamps.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock() *stepClock { return &stepClock{t: time.Now().UTC()} }

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

type testEnv struct {
	store     *sqlite.Store
	tokens    *TokenService
	auth      *AuthService
	pitches   *PitchService
	interests *InterestService
	verifier  jwtx.Verifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	hasher, err := cryptox.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256([]byte(testSecret), testIssuer, jwtx.DefaultLeeway)

	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("service-test"))
	require.NoError(t, err)

	clock := newStepClock()
	tokens := &TokenService{
		Signer:   signer,
		Verifier: verifier,
		Store:    st,
		Issuer:   testIssuer,
		TTL:      time.Hour,
	}

	return &testEnv{
		store:     st,
		tokens:    tokens,
		auth:      &AuthService{Store: st, Hasher: hasher, Tokens: tokens, Metrics: metrics, Now: clock.Now},
		pitches:   &PitchService{Store: st, Metrics: metrics, Now: clock.Now},
		interests: &InterestService{Store: st, Metrics: metrics, Now: clock.Now},
		verifier:  verifier,
	}
}

func (e *testEnv) signup(t *testing.T, name, email string, role domain.Role) Session {
	t.Helper()
	sess, err := e.auth.Signup(context.Background(), SignupInput{
		Name:     name,
		Email:    email,
		Password: "password123",
		Role:     role.String(),
	})
	require.NoError(t, err)
	return sess
}

func (e *testEnv) createPitch(t *testing.T, founderID, name string) domain.PitchWithFounder {
	t.Helper()
	p, err := e.pitches.Create(context.Background(), founderID, PitchInput{
		Name:        name,
		Description: "A pitch called " + name,
		Industry:    "Fintech",
		Stage:       "Seed",
	})
	require.NoError(t, err)
	return p
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	fields, ok := validx.FieldErrors(err)
	require.True(t, ok, "expected validation error, got %v", err)
	require.Contains(t, fields, field)
}

func ptr[T any](v T) *T { return &v }
