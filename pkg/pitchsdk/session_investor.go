package pitchsdk

import (
	"context"
	"net/http"
)

// InvestorPitches lists pitches for investors, newest first.
func (s *Session) InvestorPitches(ctx context.Context, filter PitchFilter) ([]Pitch, error) {
	return getList[Pitch](ctx, s, "/api/investor/pitches"+filter.query())
}

// MarkInterest records interest in a pitch. Marking twice is not an error;
// Added reports whether a new entry was created.
func (s *Session) MarkInterest(ctx context.Context, pitchID string) (*InterestResult, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/investor/interest/"+pathEscape(pitchID), nil)
	if err != nil {
		return nil, err
	}

	var out Response[InterestResult]
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UnmarkInterest removes interest in a pitch.
func (s *Session) UnmarkInterest(ctx context.Context, pitchID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/investor/interest/"+pathEscape(pitchID), nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// Interests lists the pitches the investor is interested in, in the order
// interest was recorded.
func (s *Session) Interests(ctx context.Context) ([]Pitch, error) {
	return getList[Pitch](ctx, s, "/api/investor/interests")
}
