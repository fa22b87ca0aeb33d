package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AgendaItem is a scheduled slot inside an event. It owns its questions and
// polls exclusively.
type AgendaItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	StartTime   time.Time   `json:"start_time"`
	EndTime     time.Time   `json:"end_time"`
	Description string      `json:"description,omitempty"`
	Speaker     string      `json:"speaker,omitempty"`
	Questions   []*Question `json:"questions"`
	Polls       []*Poll     `json:"polls"`

	// AISummary is regenerated unconditionally whenever the item or its
	// Q&A changes; unlike the event-level summary it carries no staleness
	// timestamp.
	AISummary string `json:"ai_summary,omitempty"`
}

// AgendaItemUpdate carries a partial agenda item update; nil fields are left
// unchanged.
type AgendaItemUpdate struct {
	Title       *string
	StartTime   *time.Time
	EndTime     *time.Time
	Description *string
	Speaker     *string
}

func (item *AgendaItem) apply(u AgendaItemUpdate) error {
	start := item.StartTime
	end := item.EndTime
	if u.StartTime != nil {
		start = *u.StartTime
	}
	if u.EndTime != nil {
		end = *u.EndTime
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end time must not be before start time", ErrInvalidInput)
	}
	if u.Title != nil {
		item.Title = *u.Title
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.Speaker != nil {
		item.Speaker = *u.Speaker
	}
	item.StartTime = start
	item.EndTime = end
	return nil
}

// FindQuestion locates a question by id. An empty question list yields
// NotFound on the id, not a distinct error.
func (item *AgendaItem) FindQuestion(questionID string) (*Question, error) {
	for _, q := range item.Questions {
		if q.ID == questionID {
			return q, nil
		}
	}
	return nil, NewNotFound("Question", questionID)
}

// FindPoll locates a poll by id.
func (item *AgendaItem) FindPoll(pollID string) (*Poll, error) {
	for _, p := range item.Polls {
		if p.ID == pollID {
			return p, nil
		}
	}
	return nil, NewNotFound("Poll", pollID)
}

// AddQuestion appends a new question with a fresh id and zero upvotes.
func (item *AgendaItem) AddQuestion(askedBy, text string) *Question {
	q := &Question{
		ID:        uuid.New().String(),
		AskedBy:   askedBy,
		Text:      text,
		Timestamp: time.Now(),
	}
	item.Questions = append(item.Questions, q)
	return q
}

// AddPoll appends a validated poll with a fresh id.
func (item *AgendaItem) AddPoll(question string, options []string) (*Poll, error) {
	p, err := NewPoll(question, options)
	if err != nil {
		return nil, err
	}
	item.Polls = append(item.Polls, p)
	return p, nil
}

// AgendaItemInput holds the fields of a new agenda item.
type AgendaItemInput struct {
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Description string
	Speaker     string
}

// AgendaService defines agenda item operations, addressed by event id.
type AgendaService interface {
	AddAgendaItem(ctx context.Context, eventID string, input AgendaItemInput) (*AgendaItem, error)
	ListAgendaItems(ctx context.Context, eventID string) ([]*AgendaItem, error)
	UpdateAgendaItem(ctx context.Context, eventID, agendaID string, upd AgendaItemUpdate) (*AgendaItem, error)
	// SummarizeAgendaItem generates a summary on demand without persisting it.
	SummarizeAgendaItem(ctx context.Context, eventID, agendaID string) (string, error)
}
