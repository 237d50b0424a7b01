package pitchsdk

import "time"

// ============================================================================
// Envelope
// ============================================================================

// Response is the envelope every endpoint answers with.
type Response[T any] struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    T                 `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Stack   string            `json:"stack,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

type Role string

const (
	RoleFounder   Role = "founder"
	RoleInvestor  Role = "investor"
	RoleCommunity Role = "community"
)

type Profile struct {
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

type InvestmentPreferences struct {
	Industries    []string `json:"industries"`
	Stages        []string `json:"stages"`
	MinInvestment float64  `json:"minInvestment"`
	MaxInvestment *float64 `json:"maxInvestment,omitempty"`
}

// User is the public representation of an account. It never carries the
// password hash.
type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
	Profile    Profile `json:"profile"`
	IsVerified bool    `json:"isVerified"`
	IsActive   bool    `json:"isActive"`

	// HasGoogle reports whether the account is linked to Google sign-in.
	HasGoogle bool `json:"hasGoogle"`

	// Only present for investors.
	InvestmentPreferences *InvestmentPreferences `json:"investmentPreferences,omitempty"`
	InterestedPitches     []string               `json:"interestedPitches,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserSummary is the founder or investor projection embedded in pitches.
type UserSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Role    Role    `json:"role"`
	Profile Profile `json:"profile"`
}

// AuthData is returned by signup, login and role-changing profile updates.
type AuthData struct {
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
	User      User      `json:"user"`
}

type MeData struct {
	User User `json:"user"`
}

// ============================================================================
// Pitches
// ============================================================================

type Pitch struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Industry    string      `json:"industry"`
	Stage       string      `json:"stage"`
	FundingGoal *float64    `json:"fundingGoal,omitempty"`
	Website     string      `json:"website,omitempty"`
	Founder     UserSummary `json:"founder"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type PitchInterests struct {
	PitchID   string        `json:"pitchId"`
	Count     int           `json:"count"`
	Investors []UserSummary `json:"investors"`
}

// InterestResult is returned when marking interest.
type InterestResult struct {
	PitchID string `json:"pitchId"`
	Added   bool   `json:"added"`
}

// ============================================================================
// Requests
// ============================================================================

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

type PreferencesRequest struct {
	Industries    []string `json:"industries,omitempty"`
	Stages        []string `json:"stages,omitempty"`
	MinInvestment *float64 `json:"minInvestment,omitempty"`
	MaxInvestment *float64 `json:"maxInvestment,omitempty"`
}

type InvestorSignupRequest struct {
	Name                  string              `json:"name"`
	Email                 string              `json:"email"`
	Password              string              `json:"password"`
	InvestmentPreferences *PreferencesRequest `json:"investmentPreferences,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a partial update; nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name                  *string             `json:"name,omitempty"`
	Role                  *Role               `json:"role,omitempty"`
	Avatar                *string             `json:"avatar,omitempty"`
	Bio                   *string             `json:"bio,omitempty"`
	Location              *string             `json:"location,omitempty"`
	Website               *string             `json:"website,omitempty"`
	LinkedIn              *string             `json:"linkedin,omitempty"`
	Twitter               *string             `json:"twitter,omitempty"`
	InvestmentPreferences *PreferencesRequest `json:"investmentPreferences,omitempty"`
}

type PitchRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Industry    string   `json:"industry"`
	Stage       string   `json:"stage"`
	FundingGoal *float64 `json:"fundingGoal,omitempty"`
	Website     string   `json:"website,omitempty"`
}

// PitchFilter narrows pitch listings. Empty fields match everything.
type PitchFilter struct {
	Industry string
	Stage    string
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by GET / and GET /api/health.
type HealthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ProbeResponse is returned by the /livez and /readyz probes.
type ProbeResponse struct {
	Status  string       `json:"status"`
	Uptime  string       `json:"uptime"`
	Version string       `json:"version"`
	Checks  *ProbeChecks `json:"checks,omitempty"`
}

type ProbeChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
