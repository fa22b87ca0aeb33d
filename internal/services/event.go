package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventdesk/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	summarizer     domain.Summarizer
	notifier       domain.NotificationDispatcher
	contextTimeout time.Duration
}

// NewEventService creates an EventService backed by the given aggregate
// store, summarization capability, and notification dispatcher.
func NewEventService(
	eventRepo domain.EventRepository,
	summarizer domain.Summarizer,
	notifier domain.NotificationDispatcher,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		summarizer:     summarizer,
		notifier:       notifier,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.CreatedBy == "" {
		return fmt.Errorf("%w: created_by is required", domain.ErrInvalidInput)
	}
	if err := event.Validate(); err != nil {
		return err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.Attendees == nil {
		event.Attendees = []*domain.Attendee{}
	}
	if event.Agenda == nil {
		event.Agenda = []*domain.AgendaItem{}
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := mutateEvent(ctx, s.eventRepo, eventID, func(e *domain.Event) error {
		return e.ApplyUpdate(upd)
	})
	if err != nil {
		return nil, err
	}

	// Post-commit, best-effort: a notification failure never affects the
	// already-persisted update.
	s.notifier.NotifyEventUpdated(event)
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete event: %w", err)
	}

	s.notifier.NotifyEventCancelled(event)
	return nil
}

// GenerateEventSummary returns the cached summary when it is still fresh
// (the event has not been updated after the summary was generated; equality
// counts as fresh). Otherwise it invokes the summarizer synchronously,
// commits the new text with a fresh generation time, and saves.
func (s *eventService) GenerateEventSummary(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.SummaryFresh() {
		return event, nil
	}

	text, err := s.summarizer.SummarizeEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("summarize event: %w", err)
	}
	event.SetSummary(text, time.Now())

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	return event, nil
}

func (s *eventService) InviteAttendees(ctx context.Context, eventID string, invites []domain.AttendeeInvite) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var added []*domain.Attendee
	event, err := mutateEvent(ctx, s.eventRepo, eventID, func(e *domain.Event) error {
		added = e.InviteAttendees(invites)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Only newly added attendees are notified; re-invited existing ones
	// were a no-op and get no email.
	if len(added) > 0 {
		s.notifier.NotifyInvitation(event, added)
	}
	return event, nil
}

func (s *eventService) ListAttendees(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Attendees == nil {
		return []*domain.Attendee{}, nil
	}
	return event.Attendees, nil
}

func (s *eventService) RemoveAttendee(ctx context.Context, eventID, attendeeID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return mutateEvent(ctx, s.eventRepo, eventID, func(e *domain.Event) error {
		return e.RemoveAttendee(attendeeID)
	})
}

func (s *eventService) UpdateAttendeeStatus(ctx context.Context, eventID, attendeeID string, status domain.AttendeeStatus) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return mutateEvent(ctx, s.eventRepo, eventID, func(e *domain.Event) error {
		_, err := e.UpdateAttendeeStatus(attendeeID, status)
		return err
	})
}
