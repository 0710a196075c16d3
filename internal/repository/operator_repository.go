package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/memehouse/crew-ops/internal/model"
)

// operatorColumns is the full select list, kept in one place so List and
// GetByID scan identically.
const operatorColumns = `id, op_code, full_name, tier, zone, hire_stage, cred_status, cred_type,
	day_rate, source, is_buffer, phone, reel, refs, loa, w9,
	reliability, worked_with_memehouse, late_to_screen, rate_instability,
	gear, perf_score, rehire_eligible, post_notes, notes, created_at, updated_at`

// patchableColumns whitelists the stored columns a patch may touch. Risk is
// deliberately absent: it is derived, never stored.
var patchableColumns = map[string]bool{
	"full_name": true, "tier": true, "zone": true, "hire_stage": true,
	"cred_status": true, "cred_type": true, "day_rate": true, "source": true,
	"is_buffer": true, "phone": true, "reel": true, "refs": true,
	"loa": true, "w9": true, "reliability": true,
	"worked_with_memehouse": true, "late_to_screen": true,
	"rate_instability": true, "gear": true, "perf_score": true,
	"rehire_eligible": true, "post_notes": true, "notes": true,
}

// OperatorRepo provides persistence for operator records.
type OperatorRepo struct {
	db *sql.DB
}

// NewOperatorRepo constructs an OperatorRepo with the given DB handle.
func NewOperatorRepo(db *sql.DB) *OperatorRepo {
	return &OperatorRepo{db: db}
}

// List retrieves every operator ordered by creation.
func (r *OperatorRepo) List(ctx context.Context) ([]model.Operator, error) {
	q := `SELECT ` + operatorColumns + ` FROM operators ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Operator
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves one operator.
func (r *OperatorRepo) GetByID(ctx context.Context, id uint64) (*model.Operator, error) {
	q := `SELECT ` + operatorColumns + ` FROM operators WHERE id = ?`
	op, err := scanOperator(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOperatorNotFound
		}
		return nil, err
	}
	return &op, nil
}

// Count returns the number of operator rows; used to decide whether the
// roster needs seeding.
func (r *OperatorRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM operators`).Scan(&n)
	return n, err
}

// Create inserts a new operator. Storage assigns the identifier: the row id
// comes from AUTO_INCREMENT, and when OpCode is empty a code derived from
// that id is written back. Client-chosen ids are never honored.
func (r *OperatorRepo) Create(ctx context.Context, op *model.Operator) error {
	gear, err := json.Marshal(op.Gear)
	if err != nil {
		return err
	}
	const q = `INSERT INTO operators
		(op_code, full_name, tier, zone, hire_stage, cred_status, cred_type,
		 day_rate, source, is_buffer, phone, reel, refs, loa, w9,
		 reliability, worked_with_memehouse, late_to_screen, rate_instability,
		 gear, perf_score, rehire_eligible, post_notes, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		op.OpCode, op.Name, op.Tier, op.Zone, op.Stage, op.Cred, op.CredType,
		op.Rate, op.Source, op.IsBuffer, op.Phone, op.Reel, op.Refs, op.LOA, op.W9,
		op.Reliability, op.WorkedWithMemeHouse, op.LateToScreen, op.RateInstability,
		string(gear), nullInt(op.PerfScore), nullBool(op.RehireEligible),
		op.PostNotes, op.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	op.ID = uint64(id)
	if op.OpCode == "" {
		op.OpCode = fmt.Sprintf("OP-%03d", op.ID)
		if _, err := r.db.ExecContext(ctx, `UPDATE operators SET op_code = ? WHERE id = ?`, op.OpCode, op.ID); err != nil {
			return err
		}
	}
	return nil
}

// Patch applies a partial update keyed by stored column names and returns
// the full updated row. The reconciliation layer currently discards the
// returned record (local state stays authoritative); it is returned anyway
// so the storage contract stays complete.
func (r *OperatorRepo) Patch(ctx context.Context, id uint64, cols map[string]any) (*model.Operator, error) {
	set, args, err := buildPatchSet(cols)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	q := `UPDATE operators SET ` + set + `, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also zero for no-op value updates, so confirm the
		// row actually exists before reporting not found.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes an operator row. This is an administrative action; the
// engine itself never deletes operators.
func (r *OperatorRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM operators WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOperatorNotFound
	}
	return nil
}

// buildPatchSet turns a column->value map into a deterministic SET clause
// with placeholder args. Columns outside the whitelist fail the whole patch;
// gear values are marshalled to JSON text.
func buildPatchSet(cols map[string]any) (string, []any, error) {
	if len(cols) == 0 {
		return "", nil, ErrNoFields
	}
	names := make([]string, 0, len(cols))
	for c := range cols {
		if !patchableColumns[c] {
			return "", nil, fmt.Errorf("%w: %s", ErrBadColumn, c)
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
		v := cols[c]
		if c == "gear" {
			raw, err := json.Marshal(v)
			if err != nil {
				return "", nil, err
			}
			v = string(raw)
		}
		args = append(args, v)
	}
	return b.String(), args, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOperator(rs rowScanner) (model.Operator, error) {
	var (
		op        model.Operator
		gearRaw   sql.NullString
		perfScore sql.NullInt64
		rehire    sql.NullBool
		postNotes sql.NullString
		notes     sql.NullString
		source    sql.NullString
		phone     sql.NullString
	)
	err := rs.Scan(
		&op.ID, &op.OpCode, &op.Name, &op.Tier, &op.Zone, &op.Stage, &op.Cred, &op.CredType,
		&op.Rate, &source, &op.IsBuffer, &phone, &op.Reel, &op.Refs, &op.LOA, &op.W9,
		&op.Reliability, &op.WorkedWithMemeHouse, &op.LateToScreen, &op.RateInstability,
		&gearRaw, &perfScore, &rehire, &postNotes, &notes, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		return model.Operator{}, err
	}
	op.Source = source.String
	op.Phone = phone.String
	op.PostNotes = postNotes.String
	op.Notes = notes.String
	if gearRaw.Valid && gearRaw.String != "" {
		if err := json.Unmarshal([]byte(gearRaw.String), &op.Gear); err != nil {
			return model.Operator{}, fmt.Errorf("decode gear for operator %d: %w", op.ID, err)
		}
	}
	if perfScore.Valid {
		n := int(perfScore.Int64)
		op.PerfScore = &n
	}
	if rehire.Valid {
		b := rehire.Bool
		op.RehireEligible = &b
	}
	return op, nil
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullBool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}
