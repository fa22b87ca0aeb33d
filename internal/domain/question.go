package domain

import (
	"context"
	"time"
)

// Question is an attendee question on an agenda item. AskedBy is an attendee
// id or free text; Answer stays nil until the question is answered.
type Question struct {
	ID        string    `json:"id"`
	AskedBy   string    `json:"asked_by"`
	Text      string    `json:"question"`
	Answer    *string   `json:"answer,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Upvotes   int       `json:"upvotes"`
}

// SetAnswer records (or replaces) the answer text.
func (q *Question) SetAnswer(text string) {
	q.Answer = &text
}

// Upvote increments the upvote counter. The counter never goes negative;
// there is no downvote.
func (q *Question) Upvote() {
	q.Upvotes++
}

// AddQuestion appends a new question to the identified agenda item and
// stamps the event's UpdatedAt.
func (e *Event) AddQuestion(agendaID, askedBy, text string) (*Question, error) {
	item, err := e.FindAgendaItem(agendaID)
	if err != nil {
		return nil, err
	}
	q := item.AddQuestion(askedBy, text)
	e.touch()
	return q, nil
}

// AnswerQuestion records the answer on the identified question and stamps
// the event's UpdatedAt.
func (e *Event) AnswerQuestion(agendaID, questionID, answer string) (*Question, error) {
	item, err := e.FindAgendaItem(agendaID)
	if err != nil {
		return nil, err
	}
	q, err := item.FindQuestion(questionID)
	if err != nil {
		return nil, err
	}
	q.SetAnswer(answer)
	e.touch()
	return q, nil
}

// UpvoteQuestion increments the question's upvote counter and stamps the
// event's UpdatedAt.
func (e *Event) UpvoteQuestion(agendaID, questionID string) (*Question, error) {
	item, err := e.FindAgendaItem(agendaID)
	if err != nil {
		return nil, err
	}
	q, err := item.FindQuestion(questionID)
	if err != nil {
		return nil, err
	}
	q.Upvote()
	e.touch()
	return q, nil
}

// QuestionService defines Q&A operations. These use the flattened addressing
// shape: the owning event is resolved from the agenda item id via the store's
// reverse lookup.
type QuestionService interface {
	AddQuestion(ctx context.Context, agendaID, askedBy, text string) (*Question, error)
	AnswerQuestion(ctx context.Context, agendaID, questionID, answer string) (*Question, error)
	UpvoteQuestion(ctx context.Context, agendaID, questionID string) (*Question, error)
	ListQuestions(ctx context.Context, agendaID string) ([]*Question, error)
}
