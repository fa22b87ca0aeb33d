package services

import (
	"context"
	"fmt"
	"time"

	"eventdesk/internal/domain"
)

type questionService struct {
	eventRepo      domain.EventRepository
	summarizer     domain.Summarizer
	contextTimeout time.Duration
}

// NewQuestionService creates a QuestionService backed by the given aggregate
// store and summarization capability.
func NewQuestionService(eventRepo domain.EventRepository, summarizer domain.Summarizer, timeout time.Duration) domain.QuestionService {
	return &questionService{
		eventRepo:      eventRepo,
		summarizer:     summarizer,
		contextTimeout: timeout,
	}
}

func (s *questionService) AddQuestion(ctx context.Context, agendaID, askedBy, text string) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var q *domain.Question
	_, err := mutateOwnerOfAgendaItem(ctx, s.eventRepo, agendaID, func(e *domain.Event) error {
		var err error
		q, err = e.AddQuestion(agendaID, askedBy, text)
		return err
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

// AnswerQuestion records the answer and regenerates the agenda item's Q&A
// summary from the full question list. That summary is always regenerated
// when the questions change; it carries no staleness timestamp.
func (s *questionService) AnswerQuestion(ctx context.Context, agendaID, questionID, answer string) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var q *domain.Question
	_, err := mutateOwnerOfAgendaItem(ctx, s.eventRepo, agendaID, func(e *domain.Event) error {
		var err error
		q, err = e.AnswerQuestion(agendaID, questionID, answer)
		if err != nil {
			return err
		}
		item, err := e.FindAgendaItem(agendaID)
		if err != nil {
			return err
		}
		summary, err := s.summarizer.SummarizeQuestions(ctx, item.Questions)
		if err != nil {
			return fmt.Errorf("summarize questions: %w", err)
		}
		item.AISummary = summary
		return nil
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *questionService) UpvoteQuestion(ctx context.Context, agendaID, questionID string) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var q *domain.Question
	_, err := mutateOwnerOfAgendaItem(ctx, s.eventRepo, agendaID, func(e *domain.Event) error {
		var err error
		q, err = e.UpvoteQuestion(agendaID, questionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *questionService) ListQuestions(ctx context.Context, agendaID string) ([]*domain.Question, error) {
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
	if item.Questions == nil {
		return []*domain.Question{}, nil
	}
	return item.Questions, nil
}
