package domain

import "time"

// Funding stages an investor may express a preference for.
var InvestmentStages = []string{"Pre-Seed", "Seed", "Series A", "Series B", "Series C", "Growth", "IPO"}

type InvestmentPreferences struct {
	Industries    []string
	Stages        []string
	MinInvestment float64
	MaxInvestment *float64
}

type Profile struct {
	Avatar   string
	Bio      string
	Location string
	Website  string
	LinkedIn string
	Twitter  string
}

type User struct {
	ID           string
	Name         string
	Email        string // lower-cased and trimmed
	PasswordHash string // bcrypt; empty for OAuth-only accounts
	GoogleID     string // empty unless linked to Google
	Role         Role
	Profile      Profile
	IsVerified   bool
	IsActive     bool

	// Only meaningful for investors.
	InvestmentPreferences InvestmentPreferences

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanPasswordLogin reports whether the account has a password credential.
// Google-only accounts cannot log in with a password.
func (u User) CanPasswordLogin() bool {
	return u.PasswordHash != "" && u.IsActive
}

// UserSummary is the public projection of a user embedded in pitch listings.
type UserSummary struct {
	ID      string
	Name    string
	Email   string
	Role    Role
	Profile Profile
}
