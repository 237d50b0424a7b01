package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *BcryptHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewBcryptHasher_CostRange(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{"min cost", bcrypt.MinCost, false},
		{"default cost", DefaultBcryptCost, false},
		{"max cost", bcrypt.MaxCost, false},
		{"too low", bcrypt.MinCost - 1, true},
		{"too high", bcrypt.MaxCost + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewBcryptHasher(tt.cost)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCost)
				require.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.cost, h.Cost())
		})
	}
}

func TestHashAndVerify(t *testing.T) {
	h := newTestHasher(t)

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
		{"bcrypt limit", strings.Repeat("a", MaxPasswordBytes)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$2a$"), "hash should be bcrypt encoded")
			require.NotEqual(t, tt.password, hash)

			require.NoError(t, h.Verify(tt.password, hash))
			require.ErrorIs(t, h.Verify(tt.password+"x", hash), ErrPasswordMismatch)
		})
	}
}

func TestHash_SaltsEachCall(t *testing.T) {
	h := newTestHasher(t)

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestHash_TooLong(t *testing.T) {
	h := newTestHasher(t)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVerify_MalformedHash(t *testing.T) {
	h := newTestHasher(t)

	err := h.Verify("password", "not-a-bcrypt-hash")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrPasswordMismatch)
}
