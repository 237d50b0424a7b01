package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/service"
	"github.com/aussiebroadwan/pitchdeck/pkg/httpx"
	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
)

// InvestorHandler serves the investor-only routes. Role checks happen in
// the middleware chain.
type InvestorHandler struct {
	PitchService    *service.PitchService
	InterestService *service.InterestService
	ExposeStack     bool
}

// HandleListPitches lists pitches newest first.
//
//	@Summary		Browse pitches
//	@Tags			Investor
//	@Security		BearerAuth
//	@Produce		json
//	@Param			industry	query		string									false	"Exact industry match"
//	@Param			stage		query		string									false	"Exact stage match"
//	@Success		200			{object}	pitchsdk.Response[[]pitchsdk.Pitch]	"Pitches"
//	@Failure		401			{object}	pitchsdk.Response[any]					"Missing, invalid or revoked token"
//	@Failure		403			{object}	pitchsdk.Response[any]					"Access denied"
//	@Router			/api/investor/pitches [get].
func (h *InvestorHandler) HandleListPitches(w http.ResponseWriter, r *http.Request) {
	pitches, err := h.PitchService.List(r.Context(), pitchFilter(r))
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "", toPitches(pitches))
}

// HandleMarkInterest records interest in a pitch. Marking twice is a no-op.
//
//	@Summary		Mark interest
//	@Tags			Investor
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string										true	"Pitch id"
//	@Success		200	{object}	pitchsdk.Response[pitchsdk.InterestResult]	"Interest recorded"
//	@Failure		403	{object}	pitchsdk.Response[any]						"Access denied"
//	@Failure		404	{object}	pitchsdk.Response[any]						"Pitch not found"
//	@Router			/api/investor/interest/{id} [post].
func (h *InvestorHandler) HandleMarkInterest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	added, err := h.InterestService.Mark(r.Context(), httpx.UserIDFromContext(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Interest recorded successfully", pitchsdk.InterestResult{
		PitchID: id,
		Added:   added,
	})
}

// HandleUnmarkInterest removes interest in a pitch.
//
//	@Summary		Remove interest
//	@Tags			Investor
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Pitch id"
//	@Success		200	{object}	pitchsdk.Response[any]	"Interest removed"
//	@Failure		403	{object}	pitchsdk.Response[any]	"Access denied"
//	@Router			/api/investor/interest/{id} [delete].
func (h *InvestorHandler) HandleUnmarkInterest(w http.ResponseWriter, r *http.Request) {
	err := h.InterestService.Unmark(r.Context(), httpx.UserIDFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Interest removed successfully", nil)
}

// HandleListInterests lists the investor's bookmarked pitches.
//
//	@Summary		My interests
//	@Tags			Investor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	pitchsdk.Response[[]pitchsdk.Pitch]	"Pitches in the order interest was recorded"
//	@Failure		403	{object}	pitchsdk.Response[any]				"Access denied"
//	@Router			/api/investor/interests [get].
func (h *InvestorHandler) HandleListInterests(w http.ResponseWriter, r *http.Request) {
	pitches, err := h.InterestService.List(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "", toPitches(pitches))
}

func pitchFilter(r *http.Request) domain.PitchFilter {
	q := r.URL.Query()
	return domain.PitchFilter{
		Industry: strings.TrimSpace(q.Get("industry")),
		Stage:    strings.TrimSpace(q.Get("stage")),
	}
}
