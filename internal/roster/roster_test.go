package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memehouse/crew-ops/internal/engine"
	"github.com/memehouse/crew-ops/internal/model"
)

type forwardCall struct {
	id   uint64
	cols map[string]any
}

// collector is a forward func that records every call on a channel so tests
// can wait for the asynchronous forward deterministically.
func collector(err error) (ForwardFunc, chan forwardCall) {
	ch := make(chan forwardCall, 8)
	return func(ctx context.Context, id uint64, cols map[string]any) error {
		ch <- forwardCall{id: id, cols: cols}
		return err
	}, ch
}

func awaitForward(t *testing.T, ch chan forwardCall) forwardCall {
	t.Helper()
	select {
	case call := <-ch:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("forward never called")
		return forwardCall{}
	}
}

func seedOperator() model.Operator {
	return model.Operator{
		ID:          1,
		OpCode:      "OP-001",
		Name:        "Jordan Chen",
		Tier:        model.TierT1,
		Zone:        "House 1",
		Stage:       model.StageConfirmed,
		Cred:        model.CredApproved,
		CredType:    model.CredTypeNone,
		Rate:        550,
		Reliability: 5,
		Reel:        true,
		Refs:        true,
		Gear:        []string{"PTZ"},
		Risk:        engine.RiskLow,
	}
}

func newTestRoster(fwd ForwardFunc) *Roster {
	r := New(fwd, nil)
	r.Load([]model.Operator{seedOperator()})
	return r
}

func TestApplyPatchMergesAndForwards(t *testing.T) {
	fwd, ch := collector(nil)
	r := newTestRoster(fwd)

	op, err := r.ApplyPatch(context.Background(), engine.RoleProductionLead, 1, model.Patch{
		"rate":  600,
		"notes": "booked for opening night",
	})
	require.NoError(t, err)
	assert.Equal(t, 600, op.Rate)
	assert.Equal(t, "booked for opening night", op.Notes)
	assert.Equal(t, "Jordan Chen", op.Name, "untouched fields survive the merge")

	got, ok := r.Get(1)
	require.True(t, ok)
	assert.Equal(t, 600, got.Rate)

	call := awaitForward(t, ch)
	assert.Equal(t, uint64(1), call.id)
	assert.Equal(t, map[string]any{"day_rate": 600, "notes": "booked for opening night"}, call.cols)
}

func TestApplyPatchUnknownOperator(t *testing.T) {
	fwd, _ := collector(nil)
	r := newTestRoster(fwd)

	_, err := r.ApplyPatch(context.Background(), engine.RoleProductionLead, 99, model.Patch{"rate": 600})
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestApplyPatchEmpty(t *testing.T) {
	fwd, _ := collector(nil)
	r := newTestRoster(fwd)

	_, err := r.ApplyPatch(context.Background(), engine.RoleProductionLead, 1, model.Patch{})
	var perr *model.PatchError
	assert.ErrorAs(t, err, &perr)
}

func TestApplyPatchRoleDenialRejectsWholePatch(t *testing.T) {
	fwd, ch := collector(nil)
	r := newTestRoster(fwd)

	// Credential manager may edit cred but not rate; the whole patch must
	// fail and leave the record untouched.
	_, err := r.ApplyPatch(context.Background(), engine.RoleCredentialManager, 1, model.Patch{
		"cred": model.CredSubmitted,
		"rate": 580,
	})
	var denied *DeniedFieldError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "rate", denied.Field)

	got, _ := r.Get(1)
	assert.Equal(t, model.CredApproved, got.Cred)
	assert.Equal(t, 550, got.Rate)

	select {
	case <-ch:
		t.Fatal("rejected patch must not be forwarded")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestApplyPatchZoneGuard(t *testing.T) {
	fwd, _ := collector(nil)
	r := newTestRoster(fwd)

	// Approved cred but a badge type that does not open the festival gate.
	_, err := r.ApplyPatch(context.Background(), engine.RoleCredentialManager, 1, model.Patch{
		"zone": model.ZoneFestival,
	})
	var zd *ZoneDeniedError
	require.ErrorAs(t, err, &zd)
	assert.Equal(t, model.ZoneFestival, zd.Zone)

	got, _ := r.Get(1)
	assert.Equal(t, "House 1", got.Zone, "rejected zone write leaves state unchanged")
}

func TestApplyPatchZoneGuardUsesMergedRecord(t *testing.T) {
	fwd, ch := collector(nil)
	r := newTestRoster(fwd)

	// The same patch fixes the badge type and moves the operator; the guard
	// must judge the merged record, not the stored one.
	op, err := r.ApplyPatch(context.Background(), engine.RoleCredentialManager, 1, model.Patch{
		"credType": "Artist",
		"zone":     model.ZoneFestival,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ZoneFestival, op.Zone)
	awaitForward(t, ch)
}

func TestApplyPatchRecomputesRisk(t *testing.T) {
	fwd, ch := collector(nil)
	r := newTestRoster(fwd)

	op, err := r.ApplyPatch(context.Background(), engine.RoleProductionLead, 1, model.Patch{
		"cred": model.CredDenied,
	})
	require.NoError(t, err)
	assert.Equal(t, engine.RiskHigh, op.Risk, "risk input change recomputes risk synchronously")

	// The derived risk is local state only and never forwarded to storage.
	call := awaitForward(t, ch)
	assert.NotContains(t, call.cols, "risk")
}

func TestApplyPatchNonRiskFieldKeepsRisk(t *testing.T) {
	fwd, ch := collector(nil)
	r := newTestRoster(fwd)

	op, err := r.ApplyPatch(context.Background(), engine.RoleProductionLead, 1, model.Patch{
		"notes": "renegotiated",
	})
	require.NoError(t, err)
	assert.Equal(t, engine.RiskLow, op.Risk)
	awaitForward(t, ch)
}

func TestForwardFailureKeepsOptimisticState(t *testing.T) {
	fwd, ch := collector(errors.New("connection refused"))
	r := newTestRoster(fwd)

	op, err := r.ApplyPatch(context.Background(), engine.RoleProductionLead, 1, model.Patch{
		"rate": 575,
	})
	require.NoError(t, err, "forward failures never surface to the caller")
	assert.Equal(t, 575, op.Rate)

	awaitForward(t, ch)
	// Give the error path a moment, then confirm no rollback happened.
	time.Sleep(50 * time.Millisecond)
	got, _ := r.Get(1)
	assert.Equal(t, 575, got.Rate)
}

func TestApplyPatchInvalidValue(t *testing.T) {
	fwd, _ := collector(nil)
	r := newTestRoster(fwd)

	_, err := r.ApplyPatch(context.Background(), engine.RoleProductionLead, 1, model.Patch{
		"zone": "House 9",
	})
	var perr *model.PatchError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "zone", perr.Field)

	got, _ := r.Get(1)
	assert.Equal(t, "House 1", got.Zone)
}

func TestLoadListOrderAndRemove(t *testing.T) {
	fwd, _ := collector(nil)
	r := New(fwd, nil)

	a := seedOperator()
	b := seedOperator()
	b.ID = 2
	b.OpCode = "OP-002"
	c := seedOperator()
	c.ID = 3
	c.OpCode = "OP-003"
	r.Load([]model.Operator{a, b, c})

	require.Equal(t, 3, r.Len())
	list := r.List()
	assert.Equal(t, []string{"OP-001", "OP-002", "OP-003"}, []string{list[0].OpCode, list[1].OpCode, list[2].OpCode})

	r.Remove(2)
	list = r.List()
	require.Len(t, list, 2)
	assert.Equal(t, uint64(1), list[0].ID)
	assert.Equal(t, uint64(3), list[1].ID)

	d := seedOperator()
	d.ID = 4
	r.Add(d)
	assert.Equal(t, uint64(4), r.List()[2].ID, "added operators append at the end")
}
