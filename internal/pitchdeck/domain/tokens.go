package domain

import "time"

// RevokedToken blocks a session token id until the token would have expired.
type RevokedToken struct {
	JTI       string
	UserID    string
	ExpiresAt time.Time
	RevokedAt time.Time
}

// OAuthState is a pending Google sign-in round trip. Only the fingerprint of
// the state value is stored.
type OAuthState struct {
	StateHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
