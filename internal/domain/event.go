package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is the aggregate root. Attendees and agenda items (with their
// questions and polls) live inside the event and are persisted with it as one
// document; they have no lifecycle of their own.
//
// Mutation methods operate on the in-memory aggregate only. Persisting the
// result is the caller's responsibility, so a failed save never leaves
// partial external effects behind.
type Event struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	CreatedBy   string        `json:"created_by"`
	Attendees   []*Attendee   `json:"attendees"`
	Agenda      []*AgendaItem `json:"agenda"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// AISummary is the cached event-level summary. It is valid only while
	// UpdatedAt <= AISummaryGeneratedAt; see SummaryFresh.
	AISummary            *string    `json:"ai_summary,omitempty"`
	AISummaryGeneratedAt *time.Time `json:"ai_summary_generated_at,omitempty"`
}

// NewEvent returns a new Event with the given fields. ID is assigned by the
// repository on create.
func NewEvent(name, description, createdBy string, startDate, endDate time.Time) *Event {
	now := time.Now()
	return &Event{
		Name:        name,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedBy:   createdBy,
		Attendees:   []*Attendee{},
		Agenda:      []*AgendaItem{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks the event's own invariants.
func (e *Event) Validate() error {
	if e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}
	return nil
}

func (e *Event) touch() {
	e.UpdatedAt = time.Now()
}

// EventUpdate carries a partial event update; nil fields are left unchanged.
type EventUpdate struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// ApplyUpdate applies the provided fields and re-validates date ordering.
// On validation failure the event is left unchanged.
func (e *Event) ApplyUpdate(u EventUpdate) error {
	start := e.StartDate
	end := e.EndDate
	if u.StartDate != nil {
		start = *u.StartDate
	}
	if u.EndDate != nil {
		end = *u.EndDate
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	e.StartDate = start
	e.EndDate = end
	e.touch()
	return nil
}

// FindAgendaItem locates an agenda item by id within this event.
func (e *Event) FindAgendaItem(agendaID string) (*AgendaItem, error) {
	for _, item := range e.Agenda {
		if item.ID == agendaID {
			return item, nil
		}
	}
	return nil, NewNotFound("AgendaItem", agendaID)
}

// AddAgendaItem validates the item's time ordering, assigns it a fresh id,
// and appends it to the agenda. Agenda order is insertion order.
func (e *Event) AddAgendaItem(item *AgendaItem) error {
	if item.EndTime.Before(item.StartTime) {
		return fmt.Errorf("%w: end time must not be before start time", ErrInvalidInput)
	}
	item.ID = uuid.New().String()
	if item.Questions == nil {
		item.Questions = []*Question{}
	}
	if item.Polls == nil {
		item.Polls = []*Poll{}
	}
	e.Agenda = append(e.Agenda, item)
	e.touch()
	return nil
}

// UpdateAgendaItem applies the provided fields to the identified agenda item,
// re-validating time ordering. The item is left unchanged on failure.
func (e *Event) UpdateAgendaItem(agendaID string, u AgendaItemUpdate) (*AgendaItem, error) {
	item, err := e.FindAgendaItem(agendaID)
	if err != nil {
		return nil, err
	}
	if err := item.apply(u); err != nil {
		return nil, err
	}
	e.touch()
	return item, nil
}

// InviteAttendees adds one attendee per request, skipping any whose email is
// already present (case-insensitive). It returns only the newly added
// attendees; re-inviting an existing attendee is a no-op, not an error.
func (e *Event) InviteAttendees(invites []AttendeeInvite) []*Attendee {
	var added []*Attendee
	for _, inv := range invites {
		if e.findAttendeeByEmail(inv.Email) != nil {
			continue
		}
		a := &Attendee{
			ID:     uuid.New().String(),
			Email:  inv.Email,
			Phone:  inv.Phone,
			Name:   inv.Name,
			Status: AttendeeStatusInvited,
		}
		e.Attendees = append(e.Attendees, a)
		added = append(added, a)
	}
	e.touch()
	return added
}

func (e *Event) findAttendeeByEmail(email string) *Attendee {
	for _, a := range e.Attendees {
		if equalFoldEmail(a.Email, email) {
			return a
		}
	}
	return nil
}

// FindAttendee locates an attendee by id.
func (e *Event) FindAttendee(attendeeID string) (*Attendee, error) {
	for _, a := range e.Attendees {
		if a.ID == attendeeID {
			return a, nil
		}
	}
	return nil, NewNotFound("Attendee", attendeeID)
}

// RemoveAttendee removes the attendee with the given id.
func (e *Event) RemoveAttendee(attendeeID string) error {
	for i, a := range e.Attendees {
		if a.ID == attendeeID {
			e.Attendees = append(e.Attendees[:i], e.Attendees[i+1:]...)
			e.touch()
			return nil
		}
	}
	return NewNotFound("Attendee", attendeeID)
}

// UpdateAttendeeStatus replaces the attendee's status. Any status may replace
// any status; there is no enforced transition order.
func (e *Event) UpdateAttendeeStatus(attendeeID string, status AttendeeStatus) (*Attendee, error) {
	a, err := e.FindAttendee(attendeeID)
	if err != nil {
		return nil, err
	}
	a.Status = status
	e.touch()
	return a, nil
}

// SummaryFresh reports whether the cached event-level summary is still valid:
// a summary exists and the event has not been updated after it was generated.
// A summary generated at the exact instant of the last update counts as fresh.
func (e *Event) SummaryFresh() bool {
	return e.AISummary != nil &&
		e.AISummaryGeneratedAt != nil &&
		!e.UpdatedAt.After(*e.AISummaryGeneratedAt)
}

// SetSummary commits a newly generated summary and its generation time.
// It does not touch UpdatedAt: caching a summary is not a visible state
// change and must not invalidate the summary itself.
func (e *Event) SetSummary(text string, generatedAt time.Time) {
	e.AISummary = &text
	e.AISummaryGeneratedAt = &generatedAt
}

// EventFilter holds the independent, combinable listing filters. Nil fields
// are not applied; with no filters set, all events are returned (listing is
// explicitly unbounded).
type EventFilter struct {
	CreatedBy *string
	From      *time.Time
	To        *time.Time
}

// EventRepository is the aggregate store: one record per event, nested
// collections inline. GetByAgendaItemID is the reverse lookup used by the
// flattened addressing shape and must be served by a store-level index, not
// a scan over the whole collection.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetByAgendaItemID(ctx context.Context, agendaID string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines event-level operations including attendee management.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	UpdateEvent(ctx context.Context, eventID string, upd EventUpdate) (*Event, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	GenerateEventSummary(ctx context.Context, eventID string) (*Event, error)
	InviteAttendees(ctx context.Context, eventID string, invites []AttendeeInvite) (*Event, error)
	ListAttendees(ctx context.Context, eventID string) ([]*Attendee, error)
	RemoveAttendee(ctx context.Context, eventID, attendeeID string) (*Event, error)
	UpdateAttendeeStatus(ctx context.Context, eventID, attendeeID string, status AttendeeStatus) (*Event, error)
}
