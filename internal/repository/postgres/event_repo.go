package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventdesk/internal/domain"
)

// eventRepository persists each event as a single row: the whole aggregate
// (attendees, agenda, questions, polls) is one jsonb document, with a few
// scalar columns duplicated for filtering and an agenda_ids array kept in
// sync on every save as the reverse-lookup index for agenda item ids.
type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func agendaIDs(e *domain.Event) []string {
	ids := make([]string, 0, len(e.Agenda))
	for _, item := range e.Agenda {
		ids = append(ids, item.ID)
	}
	return ids
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = newEventID()
	}
	doc, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event document: %w", err)
	}
	query := `
		INSERT INTO events (id, created_by, start_date, updated_at, agenda_ids, doc)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.DB.ExecContext(ctx, query,
		e.ID, e.CreatedBy, e.StartDate, e.UpdatedAt, pq.Array(agendaIDs(e)), doc)
	return err
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	doc, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event document: %w", err)
	}
	query := `
		UPDATE events
		SET created_by = $2, start_date = $3, updated_at = $4, agenda_ids = $5, doc = $6
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		e.ID, e.CreatedBy, e.StartDate, e.UpdatedAt, pq.Array(agendaIDs(e)), doc)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("Event", e.ID)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT doc FROM events WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id), "Event", id)
}

// GetByAgendaItemID resolves the event owning the given agenda item. The
// agenda_ids column is the store-level index for this; no document is
// decoded except the matching one.
func (r *eventRepository) GetByAgendaItemID(ctx context.Context, agendaID string) (*domain.Event, error) {
	query := `SELECT doc FROM events WHERE $1 = ANY(agenda_ids)`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, agendaID), "AgendaItem", agendaID)
}

func (r *eventRepository) scanOne(row *sql.Row, kind, id string) (*domain.Event, error) {
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(kind, id)
		}
		return nil, err
	}
	e := &domain.Event{}
	if err := json.Unmarshal(doc, e); err != nil {
		return nil, fmt.Errorf("decode event document: %w", err)
	}
	return e, nil
}

// List applies the creator and start-date range filters that are set.
// With no filters it returns every event; listing is deliberately unbounded.
func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	query := `SELECT doc FROM events`
	var conds []string
	var args []any
	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		conds = append(conds, fmt.Sprintf("created_by = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("start_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("start_date <= $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY start_date ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		e := &domain.Event{}
		if err := json.Unmarshal(doc, e); err != nil {
			return nil, fmt.Errorf("decode event document: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("Event", id)
	}
	return nil
}
