package http

import (
	"net/http"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/service"
	"github.com/aussiebroadwan/pitchdeck/pkg/httpx"
	"github.com/aussiebroadwan/pitchdeck/pkg/pitchsdk"
)

type StartupsHandler struct {
	PitchService *service.PitchService
	ExposeStack  bool
}

// HandleCreate submits a pitch for the authenticated founder.
//
//	@Summary		Submit a pitch
//	@Tags			Startups
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		pitchsdk.PitchRequest				true	"Pitch"
//	@Success		201		{object}	pitchsdk.Response[pitchsdk.Pitch]	"Created pitch"
//	@Failure		400		{object}	pitchsdk.Response[any]				"Validation failed"
//	@Failure		403		{object}	pitchsdk.Response[any]				"Access denied"
//	@Failure		409		{object}	pitchsdk.Response[any]				"Duplicate pitch name"
//	@Router			/api/startups [post].
func (h *StartupsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.PitchInput
	if !decodeBody(w, r, &in) {
		return
	}

	p, err := h.PitchService.Create(r.Context(), httpx.UserIDFromContext(r.Context()), in)
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, "Pitch created successfully", toPitch(p))
}

// HandleList lists pitches newest first.
//
//	@Summary		List pitches
//	@Tags			Startups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			industry	query		string								false	"Exact industry match"
//	@Param			stage		query		string								false	"Exact stage match"
//	@Success		200			{object}	pitchsdk.Response[[]pitchsdk.Pitch]	"Pitches"
//	@Router			/api/startups [get].
func (h *StartupsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pitches, err := h.PitchService.List(r.Context(), pitchFilter(r))
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "", toPitches(pitches))
}

// HandleMine lists the founder's own pitches.
//
//	@Summary		My pitches
//	@Tags			Startups
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	pitchsdk.Response[[]pitchsdk.Pitch]	"Pitches"
//	@Failure		403	{object}	pitchsdk.Response[any]				"Access denied"
//	@Router			/api/startups/mine [get].
func (h *StartupsHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	pitches, err := h.PitchService.Mine(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "", toPitches(pitches))
}

// HandleGet returns a single pitch.
//
//	@Summary		Get a pitch
//	@Tags			Startups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string								true	"Pitch id"
//	@Success		200	{object}	pitchsdk.Response[pitchsdk.Pitch]	"Pitch"
//	@Failure		404	{object}	pitchsdk.Response[any]				"Pitch not found"
//	@Router			/api/startups/{id} [get].
func (h *StartupsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.PitchService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "", toPitch(p))
}

// HandleUpdate replaces a pitch owned by the founder.
//
//	@Summary		Update a pitch
//	@Tags			Startups
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Pitch id"
//	@Param			body	body		pitchsdk.PitchRequest				true	"Pitch"
//	@Success		200		{object}	pitchsdk.Response[pitchsdk.Pitch]	"Updated pitch"
//	@Failure		403		{object}	pitchsdk.Response[any]				"Not the owner"
//	@Failure		404		{object}	pitchsdk.Response[any]				"Pitch not found"
//	@Router			/api/startups/{id} [put].
func (h *StartupsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in service.PitchInput
	if !decodeBody(w, r, &in) {
		return
	}

	p, err := h.PitchService.Update(r.Context(), httpx.UserIDFromContext(r.Context()), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Pitch updated successfully", toPitch(p))
}

// HandleDelete removes a pitch owned by the founder.
//
//	@Summary		Delete a pitch
//	@Tags			Startups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Pitch id"
//	@Success		200	{object}	pitchsdk.Response[any]	"Deleted"
//	@Failure		403	{object}	pitchsdk.Response[any]	"Not the owner"
//	@Failure		404	{object}	pitchsdk.Response[any]	"Pitch not found"
//	@Router			/api/startups/{id} [delete].
func (h *StartupsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PitchService.Delete(r.Context(), httpx.UserIDFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Pitch deleted successfully", nil)
}

// HandleInterests shows the owner which investors bookmarked a pitch.
//
//	@Summary		Pitch interest
//	@Tags			Startups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string										true	"Pitch id"
//	@Success		200	{object}	pitchsdk.Response[pitchsdk.PitchInterests]	"Interested investors"
//	@Failure		403	{object}	pitchsdk.Response[any]						"Not the owner"
//	@Failure		404	{object}	pitchsdk.Response[any]						"Pitch not found"
//	@Router			/api/startups/{id}/interests [get].
func (h *StartupsHandler) HandleInterests(w http.ResponseWriter, r *http.Request) {
	res, err := h.PitchService.Interests(r.Context(), httpx.UserIDFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, h.ExposeStack)
		return
	}

	investors := make([]pitchsdk.UserSummary, 0, len(res.Investors))
	for _, inv := range res.Investors {
		investors = append(investors, toSummary(inv))
	}
	httpx.WriteSuccess(w, http.StatusOK, "", pitchsdk.PitchInterests{
		PitchID:   res.PitchID,
		Count:     res.Count,
		Investors: investors,
	})
}
