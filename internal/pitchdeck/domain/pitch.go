package domain

import "time"

type Pitch struct {
	ID          string
	Name        string
	Description string
	Industry    string
	Stage       string
	FounderID   string
	FundingGoal *float64
	Website     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PitchWithFounder is a pitch joined with its founder's public summary.
type PitchWithFounder struct {
	Pitch
	Founder UserSummary
}

// PitchFilter narrows pitch listings. Empty fields match everything.
type PitchFilter struct {
	Industry  string
	Stage     string
	FounderID string
}

// Interest records an investor's bookmark of a pitch.
type Interest struct {
	InvestorID string
	PitchID    string
	CreatedAt  time.Time
}
