package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/memehouse/crew-ops/internal/model"
)

// eventColumns whitelists the patchable event configuration columns.
var eventColumns = map[string]bool{
	"event_name": true, "start_date": true, "end_date": true, "labor_budget_cap": true,
}

// EventRepo provides persistence for the singleton event configuration
// record. The first row by id is the event; there is never more than one in
// practice.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// Get retrieves the event configuration.
func (r *EventRepo) Get(ctx context.Context) (*model.Event, error) {
	const q = `SELECT id, event_name, start_date, end_date, labor_budget_cap
	           FROM events ORDER BY id ASC LIMIT 1`
	var ev model.Event
	err := r.db.QueryRowContext(ctx, q).
		Scan(&ev.ID, &ev.Name, &ev.StartDate, &ev.EndDate, &ev.LaborBudgetCap)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &ev, nil
}

// Create inserts the event configuration row; used at startup when none
// exists yet.
func (r *EventRepo) Create(ctx context.Context, ev *model.Event) error {
	const q = `INSERT INTO events (event_name, start_date, end_date, labor_budget_cap)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, ev.Name, ev.StartDate, ev.EndDate, ev.LaborBudgetCap)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ev.ID = uint64(id)
	return nil
}

// Patch applies a partial update to the singleton row and returns the
// updated record.
func (r *EventRepo) Patch(ctx context.Context, cols map[string]any) (*model.Event, error) {
	if len(cols) == 0 {
		return nil, ErrNoFields
	}
	names := make([]string, 0, len(cols))
	for c := range cols {
		if !eventColumns[c] {
			return nil, fmt.Errorf("%w: %s", ErrBadColumn, c)
		}
		names = append(names, c)
	}
	sort.Strings(names)

	var b strings.Builder
	args := make([]any, 0, len(names))
	for i, c := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c)
		b.WriteString(" = ?")
		args = append(args, cols[c])
	}
	q := `UPDATE events SET ` + b.String() +
		` WHERE id = (SELECT id FROM (SELECT id FROM events ORDER BY id ASC LIMIT 1) AS first)`
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
