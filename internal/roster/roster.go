// Package roster holds the in-memory roster snapshot and the reconciliation
// rules for mutating it. The snapshot is the source of truth for every read
// endpoint; storage is updated through an asynchronous, fire-and-forget
// forward of the same patch. A failed forward is logged and never rolled
// back: the short-term divergence is an accepted trade for responsiveness,
// and the authoritative row storage returns after a write is discarded.
package roster

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/memehouse/crew-ops/internal/engine"
	"github.com/memehouse/crew-ops/internal/model"
)

// ErrUnknownOperator is returned when a patch references an id that is not
// in the snapshot.
var ErrUnknownOperator = errors.New("operator not found")

// DeniedFieldError is a write-authorization rejection: the reviewer role may
// not edit one of the patched fields. One denied field rejects the whole
// patch.
type DeniedFieldError struct {
	Role  string
	Field string
}

func (e *DeniedFieldError) Error() string {
	return fmt.Sprintf("role %q may not edit field %q", e.Role, e.Field)
}

// ZoneDeniedError is a zone-guard rejection for a patch that would move an
// operator into a zone they cannot access.
type ZoneDeniedError struct {
	Zone   string
	Reason string
}

func (e *ZoneDeniedError) Error() string {
	return fmt.Sprintf("deployment to %q blocked: %s", e.Zone, e.Reason)
}

// ForwardFunc pushes a renamed patch (stored column names) to storage.
// PublishFunc emits the audit event for an applied patch. Both run off the
// request path; errors are logged and otherwise ignored.
type (
	ForwardFunc func(ctx context.Context, id uint64, cols map[string]any) error
	PublishFunc func(ctx context.Context, op model.Operator, role string, fields []string) error
)

// Roster is the mutable in-memory snapshot. A single RWMutex guards the map:
// the upstream design had one synchronous writer per client and no locking
// at all, but an HTTP server handles requests concurrently, so the lock
// keeps the map coherent while preserving last-write-wins semantics.
// Forwards remain independent and unordered with no queue, retry or
// deduplication.
type Roster struct {
	mu      sync.RWMutex
	ops     map[uint64]model.Operator
	order   []uint64
	forward ForwardFunc
	publish PublishFunc
}

// New builds an empty roster. forward is required; publish may be nil when
// no broker is configured.
func New(forward ForwardFunc, publish PublishFunc) *Roster {
	if forward == nil {
		panic("nil forward func passed to roster.New")
	}
	return &Roster{
		ops:     make(map[uint64]model.Operator),
		forward: forward,
		publish: publish,
	}
}

// Load replaces the snapshot with the given records, preserving their order.
func (r *Roster) Load(ops []model.Operator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = make(map[uint64]model.Operator, len(ops))
	r.order = make([]uint64, 0, len(ops))
	for _, op := range ops {
		r.ops[op.ID] = op
		r.order = append(r.order, op.ID)
	}
}

// List returns the snapshot in load/insertion order.
func (r *Roster) List() []model.Operator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Operator, 0, len(r.order))
	for _, id := range r.order {
		if op, ok := r.ops[id]; ok {
			out = append(out, op)
		}
	}
	return out
}

// Get returns one operator by id.
func (r *Roster) Get(id uint64) (model.Operator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[id]
	return op, ok
}

// Add inserts a freshly created operator (id already assigned by storage).
func (r *Roster) Add(op model.Operator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ops[op.ID]; !exists {
		r.order = append(r.order, op.ID)
	}
	r.ops[op.ID] = op
}

// Remove drops an operator from the snapshot. Deletion of the stored row is
// an administrative action handled by the caller; the engine itself never
// deletes records.
func (r *Roster) Remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ops, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of operators in the snapshot.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ops)
}

// ApplyPatch merges a partial update onto the operator with the given id and
// returns the merged record. The sequence is fixed:
//
//  1. reject if the id is unknown;
//  2. reject if the reviewer role may not edit any patched field;
//  3. merge onto a scratch copy, validating values against the closed sets;
//  4. if the patch writes the zone, run the access guard on the merged
//     record and reject on failure; the guard gates the write, not just
//     the display;
//  5. if the patch touches a risk input, recompute risk on the merged
//     record. This is the only place risk legitimately changes;
//  6. commit the scratch copy, then forward the renamed patch to storage and
//     publish the audit event, both asynchronously and fire-and-forget.
//
// The snapshot is updated before the forward resolves; a forward failure
// leaves the optimistic state in place.
func (r *Roster) ApplyPatch(ctx context.Context, role string, id uint64, patch model.Patch) (model.Operator, error) {
	if len(patch) == 0 {
		return model.Operator{}, &model.PatchError{Field: "", Reason: "no fields"}
	}

	// Authorization is checked per field on every write. Sort for a stable
	// rejection when several fields are denied.
	fields := patch.Fields()
	sort.Strings(fields)
	for _, f := range fields {
		if !engine.CanEdit(role, f) {
			return model.Operator{}, &DeniedFieldError{Role: role, Field: f}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.ops[id]
	if !ok {
		return model.Operator{}, ErrUnknownOperator
	}

	merged := current
	merged.Gear = append([]string(nil), current.Gear...)
	if err := patch.ApplyTo(&merged); err != nil {
		return model.Operator{}, err
	}

	if patch.Touches(model.FieldZone) {
		if d := engine.CanAssign(merged, merged.Zone); !d.OK {
			return model.Operator{}, &ZoneDeniedError{Zone: merged.Zone, Reason: d.Reason}
		}
	}

	if patch.Touches(model.RiskFields...) {
		merged.Risk = engine.ClassifyRisk(merged)
	}

	r.ops[id] = merged

	// Forward off the request path. The request context ends with the HTTP
	// response, so the forward runs on its own context.
	go r.forwardPatch(id, patch)
	if r.publish != nil {
		go r.publishPatch(merged, role, fields)
	}

	return merged, nil
}

func (r *Roster) forwardPatch(id uint64, patch model.Patch) {
	cols := make(map[string]any, len(patch))
	for field, v := range patch {
		if col, ok := model.ColumnFor(field); ok {
			cols[col] = v
		}
	}
	if err := r.forward(context.Background(), id, cols); err != nil {
		// No rollback and no retry: local state stays authoritative for
		// rendering and the divergence is only visible here.
		log.Printf("roster: forward patch for operator %d failed: %v", id, err)
	}
}

func (r *Roster) publishPatch(op model.Operator, role string, fields []string) {
	if err := r.publish(context.Background(), op, role, fields); err != nil {
		log.Printf("roster: publish patch event for operator %d failed: %v", op.ID, err)
	}
}
