package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventdesk/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	agendaController *controllers.AgendaController,
	questionController *controllers.QuestionController,
	pollController *controllers.PollController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("PUT /api/events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{eventID}", eventController.DeleteEvent)
	mux.HandleFunc("GET /api/events/{eventID}/summary", eventController.GetEventSummary)

	// Attendees
	mux.HandleFunc("GET /api/events/{eventID}/attendees", eventController.ListAttendees)
	mux.HandleFunc("POST /api/events/{eventID}/attendees/invite", eventController.InviteAttendees)
	mux.HandleFunc("DELETE /api/events/{eventID}/attendees/{attendeeID}", eventController.RemoveAttendee)
	mux.HandleFunc("PATCH /api/events/{eventID}/attendees/{attendeeID}", eventController.UpdateAttendeeStatus)

	// Agenda (event-scoped)
	mux.HandleFunc("POST /api/events/{eventID}/agenda", agendaController.CreateAgendaItem)
	mux.HandleFunc("GET /api/events/{eventID}/agenda", agendaController.ListAgendaItems)
	mux.HandleFunc("PUT /api/events/{eventID}/agenda/{agendaID}", agendaController.UpdateAgendaItem)
	mux.HandleFunc("GET /api/events/{eventID}/agenda/{agendaID}/summary", agendaController.GetAgendaItemSummary)

	// Questions and polls (addressed by agenda item id alone)
	mux.HandleFunc("POST /api/agenda/{agendaID}/questions", questionController.AddQuestion)
	mux.HandleFunc("GET /api/agenda/{agendaID}/questions", questionController.ListQuestions)
	mux.HandleFunc("POST /api/agenda/{agendaID}/questions/{questionID}/answer", questionController.AnswerQuestion)
	mux.HandleFunc("POST /api/agenda/{agendaID}/questions/{questionID}/upvote", questionController.UpvoteQuestion)
	mux.HandleFunc("POST /api/agenda/{agendaID}/polls", pollController.CreatePoll)
	mux.HandleFunc("GET /api/agenda/{agendaID}/polls", pollController.ListPolls)
	mux.HandleFunc("POST /api/agenda/{agendaID}/polls/{pollID}/vote", pollController.SubmitVote)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
