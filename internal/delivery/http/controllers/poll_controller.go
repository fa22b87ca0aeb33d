package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// PollController handles poll operations, addressed by agenda item id the
// same way as questions.
type PollController struct {
	Logger  *slog.Logger
	Service domain.PollService
}

func NewPollController(logger *slog.Logger, svc domain.PollService) *PollController {
	return &PollController{
		Logger:  logger,
		Service: svc,
	}
}

// CreatePollRequest is the request body for POST /api/agenda/{agendaID}/polls.
type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Validate implements Validator.
func (c CreatePollRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Question) == "" {
		errs = append(errs, "question is required")
	}
	if len(c.Options) < 2 {
		errs = append(errs, "at least 2 options are required")
	}
	return errs
}

// PollSuccessResponse is the success envelope carrying a single poll.
type PollSuccessResponse struct {
	Data  *domain.Poll      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PollListSuccessResponse is the success envelope carrying a list of polls.
type PollListSuccessResponse struct {
	Data  []*domain.Poll    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreatePoll godoc
// @Summary Create a poll on an agenda item
// @Description Creates a poll with a fixed option set. Duplicate option labels are collapsed; fewer than two distinct options is rejected.
// @Tags polls
// @Accept json
// @Produce json
// @Param agendaID path string true "Agenda item ID"
// @Param body body CreatePollRequest true "Poll data"
// @Success 201 {object} controllers.PollSuccessResponse "data contains the created poll"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/agenda/{agendaID}/polls [post]
func (c *PollController) CreatePoll(w http.ResponseWriter, r *http.Request) {
	agendaID := r.PathValue("agendaID")
	if agendaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing agendaID")
		return
	}
	var req CreatePollRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.CreatePoll(r.Context(), agendaID, req.Question, req.Options)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, p)
}

// ListPolls godoc
// @Summary List polls on an agenda item
// @Tags polls
// @Produce json
// @Param agendaID path string true "Agenda item ID"
// @Success 200 {object} controllers.PollListSuccessResponse "data is an array of polls"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/agenda/{agendaID}/polls [get]
func (c *PollController) ListPolls(w http.ResponseWriter, r *http.Request) {
	agendaID := r.PathValue("agendaID")
	if agendaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing agendaID")
		return
	}
	polls, err := c.Service.ListPolls(r.Context(), agendaID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, polls)
}

// SubmitVoteRequest is the request body for POST .../polls/{pollID}/vote.
type SubmitVoteRequest struct {
	Option string `json:"option"`
}

// Validate implements Validator.
func (s SubmitVoteRequest) Validate() []string {
	if s.Option == "" {
		return []string{"option is required"}
	}
	return nil
}

// SubmitVote godoc
// @Summary Vote on a poll
// @Description Adds one vote to the given option. Votes are anonymous and unlimited; an option outside the poll's set is rejected.
// @Tags polls
// @Accept json
// @Produce json
// @Param agendaID path string true "Agenda item ID"
// @Param pollID path string true "Poll ID"
// @Param body body SubmitVoteRequest true "Option to vote for"
// @Success 200 {object} controllers.PollSuccessResponse "data contains the poll with updated tallies"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/agenda/{agendaID}/polls/{pollID}/vote [post]
func (c *PollController) SubmitVote(w http.ResponseWriter, r *http.Request) {
	agendaID := r.PathValue("agendaID")
	pollID := r.PathValue("pollID")
	if agendaID == "" || pollID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing agendaID or pollID")
		return
	}
	var req SubmitVoteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.SubmitVote(r.Context(), agendaID, pollID, req.Option)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}
