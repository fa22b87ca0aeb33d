package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// QuestionController handles Q&A operations. Routes are addressed by agenda
// item id alone; the owning event is resolved by the service through the
// store's reverse lookup.
type QuestionController struct {
	Logger  *slog.Logger
	Service domain.QuestionService
}

func NewQuestionController(logger *slog.Logger, svc domain.QuestionService) *QuestionController {
	return &QuestionController{
		Logger:  logger,
		Service: svc,
	}
}

// AddQuestionRequest is the request body for POST /api/agenda/{agendaID}/questions.
type AddQuestionRequest struct {
	AskedBy  string `json:"asked_by"`
	Question string `json:"question"`
}

// Validate implements Validator.
func (a AddQuestionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Question) == "" {
		errs = append(errs, "question is required")
	}
	if strings.TrimSpace(a.AskedBy) == "" {
		errs = append(errs, "asked_by is required")
	}
	return errs
}

// QuestionSuccessResponse is the success envelope carrying a single question.
type QuestionSuccessResponse struct {
	Data  *domain.Question  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// QuestionListSuccessResponse is the success envelope carrying a list of questions.
type QuestionListSuccessResponse struct {
	Data  []*domain.Question `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// AddQuestion godoc
// @Summary Ask a question on an agenda item
// @Tags questions
// @Accept json
// @Produce json
// @Param agendaID path string true "Agenda item ID"
// @Param body body AddQuestionRequest true "Question data"
// @Success 201 {object} controllers.QuestionSuccessResponse "data contains the created question"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/agenda/{agendaID}/questions [post]
func (c *QuestionController) AddQuestion(w http.ResponseWriter, r *http.Request) {
	agendaID := r.PathValue("agendaID")
	if agendaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing agendaID")
		return
	}
	var req AddQuestionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	q, err := c.Service.AddQuestion(r.Context(), agendaID, req.AskedBy, req.Question)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, q)
}

// ListQuestions godoc
// @Summary List questions on an agenda item
// @Tags questions
// @Produce json
// @Param agendaID path string true "Agenda item ID"
// @Success 200 {object} controllers.QuestionListSuccessResponse "data is an array of questions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/agenda/{agendaID}/questions [get]
func (c *QuestionController) ListQuestions(w http.ResponseWriter, r *http.Request) {
	agendaID := r.PathValue("agendaID")
	if agendaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing agendaID")
		return
	}
	questions, err := c.Service.ListQuestions(r.Context(), agendaID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, questions)
}

// AnswerQuestionRequest is the request body for POST .../questions/{questionID}/answer.
type AnswerQuestionRequest struct {
	Answer string `json:"answer"`
}

// Validate implements Validator.
func (a AnswerQuestionRequest) Validate() []string {
	if strings.TrimSpace(a.Answer) == "" {
		return []string{"answer is required"}
	}
	return nil
}

// AnswerQuestion godoc
// @Summary Answer a question
// @Description Records the answer and regenerates the agenda item's Q&A summary.
// @Tags questions
// @Accept json
// @Produce json
// @Param agendaID path string true "Agenda item ID"
// @Param questionID path string true "Question ID"
// @Param body body AnswerQuestionRequest true "Answer text"
// @Success 200 {object} controllers.QuestionSuccessResponse "data contains the answered question"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/agenda/{agendaID}/questions/{questionID}/answer [post]
func (c *QuestionController) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	agendaID := r.PathValue("agendaID")
	questionID := r.PathValue("questionID")
	if agendaID == "" || questionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing agendaID or questionID")
		return
	}
	var req AnswerQuestionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	q, err := c.Service.AnswerQuestion(r.Context(), agendaID, questionID, req.Answer)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, q)
}

// UpvoteQuestion godoc
// @Summary Upvote a question
// @Description Increments the question's upvote counter by one. Upvotes are anonymous and unlimited.
// @Tags questions
// @Produce json
// @Param agendaID path string true "Agenda item ID"
// @Param questionID path string true "Question ID"
// @Success 200 {object} controllers.QuestionSuccessResponse "data contains the upvoted question"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/agenda/{agendaID}/questions/{questionID}/upvote [post]
func (c *QuestionController) UpvoteQuestion(w http.ResponseWriter, r *http.Request) {
	agendaID := r.PathValue("agendaID")
	questionID := r.PathValue("questionID")
	if agendaID == "" || questionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing agendaID or questionID")
		return
	}
	q, err := c.Service.UpvoteQuestion(r.Context(), agendaID, questionID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, q)
}
