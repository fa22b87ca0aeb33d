package ai

import (
	"context"
	"fmt"

	"eventdesk/internal/domain"
)

// stubSummarizer is the deterministic stand-in used when no API key is
// configured. Its output is stable for a given aggregate so it can be
// asserted against in tests and cached like a real summary.
type stubSummarizer struct{}

// NewStubSummarizer returns the deterministic placeholder summarizer.
func NewStubSummarizer() domain.Summarizer {
	return &stubSummarizer{}
}

func (s *stubSummarizer) SummarizeEvent(ctx context.Context, event *domain.Event) (string, error) {
	return fmt.Sprintf(
		"AI summary not available in development mode. Event: %q with %d attendees and %d agenda items. Created by: %s",
		event.Name, len(event.Attendees), len(event.Agenda), event.CreatedBy,
	), nil
}

func (s *stubSummarizer) SummarizeAgendaItem(ctx context.Context, item *domain.AgendaItem) (string, error) {
	speaker := item.Speaker
	if speaker == "" {
		speaker = "Unknown"
	}
	minutes := int(item.EndTime.Sub(item.StartTime).Minutes())
	return fmt.Sprintf(
		"AI summary not available in development mode. Agenda: %q by %s (duration: %d minutes)",
		item.Title, speaker, minutes,
	), nil
}

func (s *stubSummarizer) SummarizeQuestions(ctx context.Context, questions []*domain.Question) (string, error) {
	if len(questions) == 0 {
		return "AI summary not available in development mode. No questions to summarize.", nil
	}
	answered := 0
	for _, q := range questions {
		if q.Answer != nil && *q.Answer != "" {
			answered++
		}
	}
	return fmt.Sprintf(
		"AI summary not available in development mode. Total questions: %d, answered: %d, pending: %d",
		len(questions), answered, len(questions)-answered,
	), nil
}
