package services

import (
	"context"
	"time"

	"eventdesk/internal/domain"
)

type pollService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewPollService creates a PollService backed by the given aggregate store.
func NewPollService(eventRepo domain.EventRepository, timeout time.Duration) domain.PollService {
	return &pollService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *pollService) CreatePoll(ctx context.Context, agendaID, question string, options []string) (*domain.Poll, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var p *domain.Poll
	_, err := mutateOwnerOfAgendaItem(ctx, s.eventRepo, agendaID, func(e *domain.Event) error {
		var err error
		p, err = e.CreatePoll(agendaID, question, options)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pollService) SubmitVote(ctx context.Context, agendaID, pollID, option string) (*domain.Poll, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var p *domain.Poll
	_, err := mutateOwnerOfAgendaItem(ctx, s.eventRepo, agendaID, func(e *domain.Event) error {
		var err error
		p, err = e.SubmitVote(agendaID, pollID, option)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pollService) ListPolls(ctx context.Context, agendaID string) ([]*domain.Poll, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByAgendaItemID(ctx, agendaID)
	if err != nil {
		return nil, err
	}
	item, err := event.FindAgendaItem(agendaID)
	if err != nil {
		return nil, err
	}
	if item.Polls == nil {
		return []*domain.Poll{}, nil
	}
	return item.Polls, nil
}
