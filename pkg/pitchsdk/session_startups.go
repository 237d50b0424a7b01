package pitchsdk

import (
	"context"
	"net/http"
)

// CreatePitch submits a new pitch. Founders only.
func (s *Session) CreatePitch(ctx context.Context, req PitchRequest) (*Pitch, error) {
	return s.pitchRequest(ctx, http.MethodPost, "/api/startups", req, http.StatusCreated)
}

// ListPitches lists every pitch matching filter, newest first.
func (s *Session) ListPitches(ctx context.Context, filter PitchFilter) ([]Pitch, error) {
	return getList[Pitch](ctx, s, "/api/startups"+filter.query())
}

// MyPitches lists the founder's own pitches.
func (s *Session) MyPitches(ctx context.Context) ([]Pitch, error) {
	return getList[Pitch](ctx, s, "/api/startups/mine")
}

func (s *Session) GetPitch(ctx context.Context, id string) (*Pitch, error) {
	return s.pitchRequest(ctx, http.MethodGet, "/api/startups/"+pathEscape(id), nil, http.StatusOK)
}

// UpdatePitch replaces a pitch the founder owns.
func (s *Session) UpdatePitch(ctx context.Context, id string, req PitchRequest) (*Pitch, error) {
	return s.pitchRequest(ctx, http.MethodPut, "/api/startups/"+pathEscape(id), req, http.StatusOK)
}

// DeletePitch removes a pitch the founder owns along with its interests.
func (s *Session) DeletePitch(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/startups/"+pathEscape(id), nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// PitchInterests returns the investors interested in a pitch the founder owns.
func (s *Session) PitchInterests(ctx context.Context, id string) (*PitchInterests, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/startups/"+pathEscape(id)+"/interests", nil)
	if err != nil {
		return nil, err
	}

	var out Response[PitchInterests]
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Session) pitchRequest(ctx context.Context, method, path string, payload any, expected int) (*Pitch, error) {
	resp, err := s.doAuthRequest(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	var out Response[Pitch]
	if err := decodeJSON(resp, &out, expected); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
