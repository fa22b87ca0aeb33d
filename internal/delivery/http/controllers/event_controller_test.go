package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createEventErr       error
	getEventErr          error
	getEventResult       *domain.Event
	updateEventErr       error
	updateEventResult    *domain.Event
	listEventsErr        error
	listEventsResult     []*domain.Event
	deleteEventErr       error
	summaryErr           error
	summaryResult        *domain.Event
	inviteErr            error
	inviteResult         *domain.Event
	listAttendeesErr     error
	listAttendeesResult  []*domain.Attendee
	removeAttendeeErr    error
	removeAttendeeResult *domain.Event
	updateStatusErr      error
	updateStatusResult   *domain.Event

	lastCreateEvent        *domain.Event
	lastGetEventID         string
	lastUpdateEventID      string
	lastUpdate             domain.EventUpdate
	lastListFilter         domain.EventFilter
	lastDeleteEventID      string
	lastSummaryEventID     string
	lastInviteEventID      string
	lastInvites            []domain.AttendeeInvite
	lastRemoveAttendeeID   string
	lastUpdateStatusID     string
	lastUpdateStatusStatus domain.AttendeeStatus
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	f.lastCreateEvent = event
	if f.createEventErr != nil {
		return f.createEventErr
	}
	event.ID = "ev-created"
	return nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	f.lastGetEventID = eventID
	if f.getEventErr != nil {
		return nil, f.getEventErr
	}
	return f.getEventResult, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, eventID string, upd domain.EventUpdate) (*domain.Event, error) {
	f.lastUpdateEventID = eventID
	f.lastUpdate = upd
	if f.updateEventErr != nil {
		return nil, f.updateEventErr
	}
	return f.updateEventResult, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lastListFilter = filter
	if f.listEventsErr != nil {
		return nil, f.listEventsErr
	}
	if f.listEventsResult != nil {
		return f.listEventsResult, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, eventID string) error {
	f.lastDeleteEventID = eventID
	return f.deleteEventErr
}

func (f *fakeEventService) GenerateEventSummary(ctx context.Context, eventID string) (*domain.Event, error) {
	f.lastSummaryEventID = eventID
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return f.summaryResult, nil
}

func (f *fakeEventService) InviteAttendees(ctx context.Context, eventID string, invites []domain.AttendeeInvite) (*domain.Event, error) {
	f.lastInviteEventID = eventID
	f.lastInvites = invites
	if f.inviteErr != nil {
		return nil, f.inviteErr
	}
	return f.inviteResult, nil
}

func (f *fakeEventService) ListAttendees(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	if f.listAttendeesErr != nil {
		return nil, f.listAttendeesErr
	}
	if f.listAttendeesResult != nil {
		return f.listAttendeesResult, nil
	}
	return []*domain.Attendee{}, nil
}

func (f *fakeEventService) RemoveAttendee(ctx context.Context, eventID, attendeeID string) (*domain.Event, error) {
	f.lastRemoveAttendeeID = attendeeID
	if f.removeAttendeeErr != nil {
		return nil, f.removeAttendeeErr
	}
	return f.removeAttendeeResult, nil
}

func (f *fakeEventService) UpdateAttendeeStatus(ctx context.Context, eventID, attendeeID string, status domain.AttendeeStatus) (*domain.Event, error) {
	f.lastUpdateStatusID = attendeeID
	f.lastUpdateStatusStatus = status
	if f.updateStatusErr != nil {
		return nil, f.updateStatusErr
	}
	return f.updateStatusResult, nil
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	return envelope
}

func TestEventController_CreateEvent(t *testing.T) {
	validBody := `{"name":"Tech Conf","description":"annual","created_by":"alice",` +
		`"start_date":"2026-03-10T09:00:00Z","end_date":"2026-03-10T17:00:00Z"}`

	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkEvent     func(t *testing.T, event domain.Event)
	}{
		{
			name:       "success",
			body:       validBody,
			wantStatus: http.StatusCreated,
			checkEvent: func(t *testing.T, event domain.Event) {
				assert.Equal(t, "ev-created", event.ID)
				assert.Equal(t, "Tech Conf", event.Name)
				assert.Equal(t, "alice", event.CreatedBy)
				assert.NotNil(t, event.Attendees)
				assert.NotNil(t, event.Agenda)
			},
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing name and creator",
			body:           `{"start_date":"2026-03-10T09:00:00Z","end_date":"2026-03-10T17:00:00Z"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required; created_by is required",
		},
		{
			name:           "unknown field rejected",
			body:           `{"name":"Conf","id":"custom-id"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "domain validation error",
			body:           validBody,
			fakeErr:        domain.ErrInvalidInput,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid input",
		},
		{
			name:           "service error",
			body:           validBody,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{createEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var event domain.Event
				require.NoError(t, json.Unmarshal(dataBytes, &event))
				tt.checkEvent(t, event)
			} else {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name           string
		eventID        string
		fakeErr        error
		fakeEvent      *domain.Event
		wantStatus     int
		wantErrCode    string
		wantBodySubstr string
	}{
		{
			name:       "success",
			eventID:    "ev-1",
			fakeEvent:  &domain.Event{ID: "ev-1", Name: "Tech Conf"},
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing eventID",
			eventID:        "",
			wantStatus:     http.StatusBadRequest,
			wantErrCode:    helpers.ErrCodeBadRequest,
			wantBodySubstr: "missing eventID",
		},
		{
			name:           "not found",
			eventID:        "ev-missing",
			fakeErr:        domain.NewNotFound("Event", "ev-missing"),
			wantStatus:     http.StatusNotFound,
			wantErrCode:    helpers.ErrCodeNotFound,
			wantBodySubstr: `Event not found with id "ev-missing"`,
		},
		{
			name:           "service error",
			eventID:        "ev-1",
			fakeErr:        errors.New("db down"),
			wantStatus:     http.StatusInternalServerError,
			wantErrCode:    helpers.ErrCodeInternalError,
			wantBodySubstr: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{getEventErr: tt.fakeErr, getEventResult: tt.fakeEvent}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/api/events/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.GetEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, "ev-1", dataMap["id"])
				assert.Equal(t, "ev-1", fake.lastGetEventID)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantErrCode, envelope.Error.Code, "error code")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestEventController_ListEvents(t *testing.T) {
	t.Run("filters parsed from query", func(t *testing.T) {
		fake := &fakeEventService{}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet,
			"/api/events?created_by=alice&from=2026-03-01T00:00:00Z&to=2026-04-01T00:00:00Z", nil)
		rr := httptest.NewRecorder()

		ctrl.ListEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, fake.lastListFilter.CreatedBy)
		assert.Equal(t, "alice", *fake.lastListFilter.CreatedBy)
		require.NotNil(t, fake.lastListFilter.From)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), fake.lastListFilter.From.UTC())
		require.NotNil(t, fake.lastListFilter.To)
	})

	t.Run("bad from timestamp", func(t *testing.T) {
		fake := &fakeEventService{}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/api/events?from=yesterday", nil)
		rr := httptest.NewRecorder()

		ctrl.ListEvents(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Contains(t, envelope.Error.Message, "from must be RFC3339")
	})

	t.Run("empty result is an array", func(t *testing.T) {
		fake := &fakeEventService{}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		rr := httptest.NewRecorder()

		ctrl.ListEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"data":[]`)
	})
}

func TestEventController_DeleteEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		fakeErr    error
		wantStatus int
	}{
		{name: "success", eventID: "ev-1", wantStatus: http.StatusOK},
		{name: "missing eventID", eventID: "", wantStatus: http.StatusBadRequest},
		{name: "not found", eventID: "ev-x", fakeErr: domain.NewNotFound("Event", "ev-x"), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{deleteEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "/api/events/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.DeleteEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, "deleted", dataMap["status"], "data.status")
				assert.Equal(t, "ev-1", fake.lastDeleteEventID)
			}
		})
	}
}

func TestEventController_GetEventSummary(t *testing.T) {
	summary := "Two-day tech conference."
	fake := &fakeEventService{summaryResult: &domain.Event{ID: "ev-1", AISummary: &summary}}
	ctrl := NewEventController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/api/events/ev-1/summary", nil)
	req.SetPathValue("eventID", "ev-1")
	rr := httptest.NewRecorder()

	ctrl.GetEventSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.Nil(t, envelope.Error)
	dataMap, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "data must be object")
	assert.Equal(t, summary, dataMap["ai_summary"])
	assert.Equal(t, "ev-1", fake.lastSummaryEventID)
}

func TestEventController_InviteAttendees(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkInvites   func(t *testing.T, invites []domain.AttendeeInvite)
	}{
		{
			name:       "success trims emails",
			body:       `{"attendees":[{"email":" bob@example.com ","name":"Bob"},{"email":"carol@example.com","phone":"555-0101"}]}`,
			wantStatus: http.StatusOK,
			checkInvites: func(t *testing.T, invites []domain.AttendeeInvite) {
				require.Len(t, invites, 2)
				assert.Equal(t, "bob@example.com", invites[0].Email)
				assert.Equal(t, "Bob", invites[0].Name)
				assert.Equal(t, "555-0101", invites[1].Phone)
			},
		},
		{
			name:           "empty attendees",
			body:           `{"attendees":[]}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "attendees is required",
		},
		{
			name:           "invalid email",
			body:           `{"attendees":[{"email":"not-an-email"}]}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid email: not-an-email",
		},
		{
			name:           "event not found",
			body:           `{"attendees":[{"email":"bob@example.com"}]}`,
			fakeErr:        domain.NewNotFound("Event", "ev-x"),
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Event not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{inviteErr: tt.fakeErr, inviteResult: &domain.Event{ID: "ev-1"}}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/api/events/ev-1/attendees/invite", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.InviteAttendees(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				tt.checkInvites(t, fake.lastInvites)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestEventController_UpdateAttendeeStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		wantParsed     domain.AttendeeStatus
	}{
		{
			name:       "success",
			body:       `{"status":"confirmed"}`,
			wantStatus: http.StatusOK,
			wantParsed: domain.AttendeeStatusConfirmed,
		},
		{
			name:           "unknown status",
			body:           `{"status":"maybe"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid input",
		},
		{
			name:           "empty status",
			body:           `{"status":""}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "status is required",
		},
		{
			name:           "attendee not found",
			body:           `{"status":"declined"}`,
			fakeErr:        domain.NewNotFound("Attendee", "att-x"),
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Attendee not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{updateStatusErr: tt.fakeErr, updateStatusResult: &domain.Event{ID: "ev-1"}}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPatch, "/api/events/ev-1/attendees/att-1", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", "ev-1")
			req.SetPathValue("attendeeID", "att-1")
			rr := httptest.NewRecorder()

			ctrl.UpdateAttendeeStatus(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				assert.Equal(t, "att-1", fake.lastUpdateStatusID)
				assert.Equal(t, tt.wantParsed, fake.lastUpdateStatusStatus)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}
