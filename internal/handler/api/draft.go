package api

import (
	"errors"
	"net/http"

	"equiplend/internal/domain/pool"
	"equiplend/internal/domain/schedule"
	reqdto "equiplend/internal/handler/dto/request"
	resdto "equiplend/internal/handler/dto/response"
	"equiplend/internal/handler/httperr"
	"equiplend/internal/pkg/ptr"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftHandler struct {
	draftCommands commands.DraftCommands
	draftQueries  queries.DraftQueries
}

func NewDraftHandler(draftCommands commands.DraftCommands, draftQueries queries.DraftQueries) *DraftHandler {
	return &DraftHandler{
		draftCommands: draftCommands,
		draftQueries:  draftQueries,
	}
}

// @Summary Start reservation draft
// @Description Open a new reservation draft with the current loan policy and inventory
// @Tags drafts
// @Produce json
// @Success 201 {object} resdto.DraftCreatedResponse
// @Failure 502 {object} httperr.Response
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	id, err := h.draftCommands.StartDraft(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPolicyUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Loan policy unavailable", nil)
		case errors.Is(err, commands.ErrInventoryUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Inventory listing unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.DraftCreatedResponse{ID: id})
}

// @Summary Get draft
// @Description Get the draft's phase, range, pools and selection
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	view, err := h.draftQueries.GetDraft(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDraftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Abandon draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Abandon(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	if err := h.draftCommands.AbandonDraft(c.Request.Context(), id); err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Pick a date
// @Description Feed a calendar click into the draft's date selector
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.PickDatesRequest true "Picked date(s)"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /drafts/{id}/dates [post]
func (h *DraftHandler) PickDates(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.PickDatesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	dates, err := req.ToDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, want YYYY-MM-DD", nil)
		return
	}

	if err := h.draftCommands.PickDates(c.Request.Context(), id, dates); err != nil {
		h.renderDraftError(c, err)
		return
	}

	h.renderDraft(c, id)
}

// @Summary Reset dates
// @Description Clear the committed range and return the draft to the issue phase
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id}/dates/reset [post]
func (h *DraftHandler) ResetDates(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	if err := h.draftCommands.ResetDates(c.Request.Context(), id); err != nil {
		h.renderDraftError(c, err)
		return
	}

	h.renderDraft(c, id)
}

// @Summary Toggle a set pool
// @Description Cycle the fungible pool for one equipment type: grab the next available set, or release them all
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.ToggleTypeRequest true "Type key"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id}/pool/toggle [post]
func (h *DraftHandler) ToggleType(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.ToggleTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	key := pool.TypeKey{Manufacturer: req.Manufacturer, Model: req.Model}
	if err := h.draftCommands.ToggleType(c.Request.Context(), id, key); err != nil {
		h.renderDraftError(c, err)
		return
	}

	h.renderDraft(c, id)
}

// @Summary Add a specific set
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param setId path string true "Set ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drafts/{id}/sets/{setId} [put]
func (h *DraftHandler) AddSet(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	setID, ok := h.setID(c)
	if !ok {
		return
	}

	if err := h.draftCommands.AddSet(c.Request.Context(), id, setID); err != nil {
		h.renderDraftError(c, err)
		return
	}

	h.renderDraft(c, id)
}

// @Summary Remove a specific set
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param setId path string true "Set ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id}/sets/{setId} [delete]
func (h *DraftHandler) RemoveSet(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	setID, ok := h.setID(c)
	if !ok {
		return
	}

	if err := h.draftCommands.RemoveSet(c.Request.Context(), id, setID); err != nil {
		h.renderDraftError(c, err)
		return
	}

	h.renderDraft(c, id)
}

// @Summary Submit draft
// @Description Send the confirmed draft to the lending backend and discard it
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.SubmitDraftRequest true "Booking fields"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitDraftRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	msg, err := h.draftCommands.SubmitDraft(c.Request.Context(), id, commands.SubmitDraftParams{
		Name:            req.TrimmedName(),
		Type:            req.Type,
		AssignedTeacher: ptr.Deref(req.AssignedTeacher),
		Location:        ptr.Deref(req.Location),
		Phone:           ptr.Deref(req.Phone),
		Notes:           ptr.Deref(req.Notes),
	})
	if err != nil {
		h.renderDraftError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.SubmitResponse{Message: msg})
}

func (h *DraftHandler) renderDraft(c *gin.Context, id uuid.UUID) {
	view, err := h.draftQueries.GetDraft(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

func (h *DraftHandler) renderDraftError(c *gin.Context, err error) {
	var rejection *schedule.Rejection

	switch {
	case errors.As(err, &rejection):
		// Recoverable validation failure: surface the message, keep the
		// draft in its current phase.
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, rejection.Message, nil)
	case errors.Is(err, commands.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
	case errors.Is(err, pool.ErrUnknownSetType):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown set type", nil)
	case errors.Is(err, pool.ErrUnknownSet):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown set", nil)
	case errors.Is(err, pool.ErrSetUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Set unavailable for the selected range", nil)
	case errors.Is(err, commands.ErrRangeIncomplete):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Pick issue and return dates before submitting", nil)
	case errors.Is(err, commands.ErrEmptySelection):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Select at least one set before submitting", nil)
	case errors.Is(err, commands.ErrBookingRejected):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking submission rejected", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *DraftHandler) draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *DraftHandler) setID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("setId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid set ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
