package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Poll is a fixed-option poll on an agenda item. The option set is immutable
// after creation; Votes maps each option label to its counter.
type Poll struct {
	ID       string         `json:"id"`
	Question string         `json:"question"`
	Options  []string       `json:"options"`
	Votes    map[string]int `json:"votes"`
}

// NewPoll validates the option set and returns a poll with every counter at
// zero. Duplicate option labels are collapsed; fewer than two distinct
// options is a validation error.
func NewPoll(question string, options []string) (*Poll, error) {
	seen := make(map[string]struct{}, len(options))
	distinct := make([]string, 0, len(options))
	for _, opt := range options {
		if _, ok := seen[opt]; ok {
			continue
		}
		seen[opt] = struct{}{}
		distinct = append(distinct, opt)
	}
	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w: a poll needs at least 2 distinct options", ErrInvalidInput)
	}
	votes := make(map[string]int, len(distinct))
	for _, opt := range distinct {
		votes[opt] = 0
	}
	return &Poll{
		ID:       uuid.New().String(),
		Question: question,
		Options:  distinct,
		Votes:    votes,
	}, nil
}

// SubmitVote increments the counter for the given option by exactly one.
// Votes are anonymous and unlimited; one call is one vote. An option outside
// the poll's fixed set is rejected and all counters are left unchanged.
func (p *Poll) SubmitVote(option string) error {
	if _, ok := p.Votes[option]; !ok {
		return fmt.Errorf("%w: invalid poll option %q", ErrInvalidInput, option)
	}
	p.Votes[option]++
	return nil
}

// CreatePoll adds a validated poll to the identified agenda item and stamps
// the event's UpdatedAt. Validation failures leave the aggregate unchanged.
func (e *Event) CreatePoll(agendaID, question string, options []string) (*Poll, error) {
	item, err := e.FindAgendaItem(agendaID)
	if err != nil {
		return nil, err
	}
	p, err := item.AddPoll(question, options)
	if err != nil {
		return nil, err
	}
	e.touch()
	return p, nil
}

// SubmitVote records one vote on the identified poll and stamps the event's
// UpdatedAt. An invalid option leaves all counters and the event unchanged.
func (e *Event) SubmitVote(agendaID, pollID, option string) (*Poll, error) {
	item, err := e.FindAgendaItem(agendaID)
	if err != nil {
		return nil, err
	}
	p, err := item.FindPoll(pollID)
	if err != nil {
		return nil, err
	}
	if err := p.SubmitVote(option); err != nil {
		return nil, err
	}
	e.touch()
	return p, nil
}

// PollService defines poll operations, addressed by agenda item id (flattened
// shape, resolved through the store's reverse lookup).
type PollService interface {
	CreatePoll(ctx context.Context, agendaID, question string, options []string) (*Poll, error)
	SubmitVote(ctx context.Context, agendaID, pollID, option string) (*Poll, error)
	ListPolls(ctx context.Context, agendaID string) ([]*Poll, error)
}
