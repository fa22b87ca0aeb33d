package services

import (
	"context"
	"fmt"
	"time"

	"eventdesk/internal/domain"
)

type agendaService struct {
	eventRepo      domain.EventRepository
	summarizer     domain.Summarizer
	contextTimeout time.Duration
}

// NewAgendaService creates an AgendaService backed by the given aggregate
// store and summarization capability.
func NewAgendaService(eventRepo domain.EventRepository, summarizer domain.Summarizer, timeout time.Duration) domain.AgendaService {
	return &agendaService{
		eventRepo:      eventRepo,
		summarizer:     summarizer,
		contextTimeout: timeout,
	}
}

// AddAgendaItem appends a new item to the event's agenda. The item-level
// summary is generated on creation (always, no cache); a summarizer failure
// aborts the whole operation before anything is saved.
func (s *agendaService) AddAgendaItem(ctx context.Context, eventID string, input domain.AgendaItemInput) (*domain.AgendaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	item := &domain.AgendaItem{
		Title:       input.Title,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Description: input.Description,
		Speaker:     input.Speaker,
	}
	_, err := mutateEvent(ctx, s.eventRepo, eventID, func(e *domain.Event) error {
		if err := e.AddAgendaItem(item); err != nil {
			return err
		}
		summary, err := s.summarizer.SummarizeAgendaItem(ctx, item)
		if err != nil {
			return fmt.Errorf("summarize agenda item: %w", err)
		}
		item.AISummary = summary
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *agendaService) ListAgendaItems(ctx context.Context, eventID string) ([]*domain.AgendaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Agenda == nil {
		return []*domain.AgendaItem{}, nil
	}
	return event.Agenda, nil
}

// UpdateAgendaItem applies a partial update and regenerates the item-level
// summary from the updated data.
func (s *agendaService) UpdateAgendaItem(ctx context.Context, eventID, agendaID string, upd domain.AgendaItemUpdate) (*domain.AgendaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var item *domain.AgendaItem
	_, err := mutateEvent(ctx, s.eventRepo, eventID, func(e *domain.Event) error {
		var err error
		item, err = e.UpdateAgendaItem(agendaID, upd)
		if err != nil {
			return err
		}
		summary, err := s.summarizer.SummarizeAgendaItem(ctx, item)
		if err != nil {
			return fmt.Errorf("summarize agenda item: %w", err)
		}
		item.AISummary = summary
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// SummarizeAgendaItem generates a summary on demand. The result is returned
// to the caller only; nothing is persisted.
func (s *agendaService) SummarizeAgendaItem(ctx context.Context, eventID, agendaID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	item, err := event.FindAgendaItem(agendaID)
	if err != nil {
		return "", err
	}
	summary, err := s.summarizer.SummarizeAgendaItem(ctx, item)
	if err != nil {
		return "", fmt.Errorf("summarize agenda item: %w", err)
	}
	return summary, nil
}
