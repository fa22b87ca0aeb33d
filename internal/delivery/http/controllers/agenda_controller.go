package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// AgendaController handles agenda item operations scoped by event.
type AgendaController struct {
	Logger  *slog.Logger
	Service domain.AgendaService
}

func NewAgendaController(logger *slog.Logger, svc domain.AgendaService) *AgendaController {
	return &AgendaController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateAgendaItemRequest is the request body for POST /api/events/{eventID}/agenda.
type CreateAgendaItemRequest struct {
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
	Speaker     string    `json:"speaker"`
}

// Validate implements Validator.
func (c CreateAgendaItemRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if c.StartTime.IsZero() {
		errs = append(errs, "start_time is required")
	}
	if c.EndTime.IsZero() {
		errs = append(errs, "end_time is required")
	}
	return errs
}

// AgendaItemSuccessResponse is the success envelope carrying a single agenda item.
type AgendaItemSuccessResponse struct {
	Data  *domain.AgendaItem `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// AgendaItemListSuccessResponse is the success envelope carrying a list of agenda items.
type AgendaItemListSuccessResponse struct {
	Data  []*domain.AgendaItem `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// CreateAgendaItem godoc
// @Summary Add an agenda item to an event
// @Description Appends a new agenda item; agenda order is insertion order. An AI summary for the item is generated synchronously on creation.
// @Tags agenda
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param body body CreateAgendaItemRequest true "Agenda item data"
// @Success 201 {object} controllers.AgendaItemSuccessResponse "data contains the created agenda item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/agenda [post]
func (c *AgendaController) CreateAgendaItem(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req CreateAgendaItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.AddAgendaItem(r.Context(), eventID, domain.AgendaItemInput{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		Speaker:     req.Speaker,
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, item)
}

// ListAgendaItems godoc
// @Summary List agenda items of an event
// @Tags agenda
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.AgendaItemListSuccessResponse "data is an array of agenda items in insertion order"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/agenda [get]
func (c *AgendaController) ListAgendaItems(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	items, err := c.Service.ListAgendaItems(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}

// UpdateAgendaItemRequest is the request body for PUT /api/events/{eventID}/agenda/{agendaID}.
// All fields optional; omitted fields are unchanged.
type UpdateAgendaItemRequest struct {
	Title       *string    `json:"title"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Description *string    `json:"description"`
	Speaker     *string    `json:"speaker"`
}

// Validate implements Validator.
func (u UpdateAgendaItemRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	return errs
}

// UpdateAgendaItem godoc
// @Summary Update an agenda item
// @Description Applies a partial update and regenerates the item's AI summary.
// @Tags agenda
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param agendaID path string true "Agenda item ID"
// @Param body body UpdateAgendaItemRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.AgendaItemSuccessResponse "data contains the updated agenda item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/agenda/{agendaID} [put]
func (c *AgendaController) UpdateAgendaItem(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	agendaID := r.PathValue("agendaID")
	if eventID == "" || agendaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID or agendaID")
		return
	}
	var req UpdateAgendaItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.UpdateAgendaItem(r.Context(), eventID, agendaID, domain.AgendaItemUpdate{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		Speaker:     req.Speaker,
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// AgendaItemSummaryResponse is the data payload for GET .../agenda/{agendaID}/summary (200).
type AgendaItemSummaryResponse struct {
	Summary string `json:"summary"`
}

// AgendaItemSummarySuccessResponse is the success envelope for GET .../agenda/{agendaID}/summary (200).
type AgendaItemSummarySuccessResponse struct {
	Data  AgendaItemSummaryResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// GetAgendaItemSummary godoc
// @Summary Generate an on-demand agenda item summary
// @Description Generates a fresh AI summary of the agenda item and returns it without persisting anything.
// @Tags agenda
// @Produce json
// @Param eventID path string true "Event ID"
// @Param agendaID path string true "Agenda item ID"
// @Success 200 {object} controllers.AgendaItemSummarySuccessResponse "data contains the summary text"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/agenda/{agendaID}/summary [get]
func (c *AgendaController) GetAgendaItemSummary(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	agendaID := r.PathValue("agendaID")
	if eventID == "" || agendaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID or agendaID")
		return
	}
	summary, err := c.Service.SummarizeAgendaItem(r.Context(), eventID, agendaID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AgendaItemSummaryResponse{Summary: summary})
}
