package services

import (
	"context"
	"errors"
	"fmt"

	"eventdesk/internal/domain"
)

// mutateEvent is the transaction boundary for aggregate writes: load the
// whole document, apply the mutation, save the whole document. If fn returns
// an error the aggregate is discarded unsaved, so validation failures never
// persist partial state. Concurrent writers race at document granularity;
// the later save wins.
func mutateEvent(ctx context.Context, repo domain.EventRepository, eventID string, fn func(*domain.Event) error) (*domain.Event, error) {
	event, err := repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err := fn(event); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("save event: %w", err)
	}
	return event, nil
}

// mutateOwnerOfAgendaItem is mutateEvent for the flattened addressing shape:
// the owning event is resolved from the agenda item id through the store's
// reverse-lookup index, never by scanning.
func mutateOwnerOfAgendaItem(ctx context.Context, repo domain.EventRepository, agendaID string, fn func(*domain.Event) error) (*domain.Event, error) {
	event, err := repo.GetByAgendaItemID(ctx, agendaID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get event by agenda item: %w", err)
	}
	if err := fn(event); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("save event: %w", err)
	}
	return event, nil
}
