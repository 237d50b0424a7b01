package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "pitchdeck"

var testSecret = []byte("test-secret-which-is-long-enough-for-hs256")

func signClaims(t *testing.T, secret []byte, c jwtx.Claims) string {
	t.Helper()
	s, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	tok, err := s.Sign(c)
	require.NoError(t, err)
	return tok
}

func TestNewSignerHS256_EmptySecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256(nil)
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)
}

func TestHS256_RoundTrip(t *testing.T) {
	now := time.Now().UTC()
	claims := jwtx.NewClaims("01HZX", "founder", "Grace", "grace@example.com", false, testIssuer, time.Hour, now)
	tok := signClaims(t, testSecret, claims)

	v := jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.DefaultLeeway)
	got, err := v.Verify(tok)
	require.NoError(t, err)

	require.Equal(t, "01HZX", got.Subject)
	require.Equal(t, "founder", got.Role)
	require.Equal(t, "grace@example.com", got.Email)
	require.Equal(t, claims.ID, got.ID)
}

func TestHS256_Rejects(t *testing.T) {
	now := time.Now().UTC()
	v := jwtx.NewVerifierHS256(testSecret, testIssuer, time.Second)

	t.Run("other secret", func(t *testing.T) {
		tok := signClaims(t, []byte("another-secret"), jwtx.NewClaims("u", "founder", "", "", false, testIssuer, time.Hour, now))
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		tok := signClaims(t, testSecret, jwtx.NewClaims("u", "founder", "", "", false, testIssuer, time.Minute, now.Add(-time.Hour)))
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		tok := signClaims(t, testSecret, jwtx.NewClaims("u", "founder", "", "", false, "elsewhere", time.Hour, now))
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("other hmac algorithm", func(t *testing.T) {
		c := jwtx.NewClaims("u", "founder", "", "", false, testIssuer, time.Hour, now)
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString(testSecret)
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})

	t.Run("alg none", func(t *testing.T) {
		c := jwtx.NewClaims("u", "founder", "", "", false, testIssuer, time.Hour, now)
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})

	t.Run("missing role", func(t *testing.T) {
		tok := signClaims(t, testSecret, jwtx.NewClaims("u", "", "", "", false, testIssuer, time.Hour, now))
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("missing exp", func(t *testing.T) {
		c := jwtx.NewClaims("u", "founder", "", "", false, testIssuer, time.Hour, now)
		c.ExpiresAt = nil
		tok := signClaims(t, testSecret, c)
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}
