package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/memehouse/crew-ops/internal/model"
)

// ShiftRepo provides persistence for worked shifts. Shifts are write-once:
// there is no update path, only create, list and delete.
type ShiftRepo struct {
	db *sql.DB
}

// NewShiftRepo constructs a ShiftRepo with the given DB handle.
func NewShiftRepo(db *sql.DB) *ShiftRepo {
	return &ShiftRepo{db: db}
}

// List retrieves all shifts, most recent date first.
func (r *ShiftRepo) List(ctx context.Context) ([]model.Shift, error) {
	const q = `SELECT id, shift_code, operator_id, operator_name, zone, date,
	                  start_time, end_time, break_minutes, flat_hours, ot_multiplier, day_rate, created_at
	           FROM shifts
	           ORDER BY date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Shift
	for rows.Next() {
		var (
			s     model.Shift
			opID  sql.NullInt64
			date  sql.NullString
			start sql.NullTime
			end   sql.NullTime
		)
		if err := rows.Scan(
			&s.ID, &s.ShiftCode, &opID, &s.OperatorName, &s.Zone, &date,
			&start, &end, &s.BreakMinutes, &s.FlatHours, &s.OTMultiplier, &s.DayRate, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		if opID.Valid {
			id := uint64(opID.Int64)
			s.OperatorID = &id
		}
		s.Date = date.String
		if start.Valid {
			t := start.Time
			s.StartTime = &t
		}
		if end.Valid {
			t := end.Time
			s.EndTime = &t
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a shift record. The shift code is assigned here from the
// insertion timestamp when the caller leaves it empty.
func (r *ShiftRepo) Create(ctx context.Context, s *model.Shift) error {
	if s.ShiftCode == "" {
		s.ShiftCode = fmt.Sprintf("SH-%d", time.Now().UnixMilli())
	}
	const q = `INSERT INTO shifts
		(shift_code, operator_id, operator_name, zone, date,
		 start_time, end_time, break_minutes, flat_hours, ot_multiplier, day_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.ShiftCode, nullUint(s.OperatorID), s.OperatorName, s.Zone, nullStr(s.Date),
		nullTime(s.StartTime), nullTime(s.EndTime),
		s.BreakMinutes, s.FlatHours, s.OTMultiplier, s.DayRate,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Delete removes a shift row.
func (r *ShiftRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrShiftNotFound
	}
	return nil
}

func nullUint(p *uint64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
