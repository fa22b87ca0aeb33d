package domain

import "context"

// Summarizer is the summarization capability (infrastructure port). It may be
// backed by a real model or by a deterministic stand-in; callers treat both
// identically. Calls are synchronous and on the request path, so failures are
// surfaced to the caller.
type Summarizer interface {
	SummarizeEvent(ctx context.Context, event *Event) (string, error)
	SummarizeAgendaItem(ctx context.Context, item *AgendaItem) (string, error)
	SummarizeQuestions(ctx context.Context, questions []*Question) (string, error)
}
