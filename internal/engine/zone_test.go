package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memehouse/crew-ops/internal/model"
)

func TestCanAssignOpenZones(t *testing.T) {
	// Open zones never consult credentials at all.
	op := model.Operator{Cred: model.CredDenied, CredType: "Guest"}
	for _, zone := range []string{"House 1", "House 8", model.ZoneFloater} {
		d := CanAssign(op, zone)
		assert.True(t, d.OK, "zone %s should be open", zone)
		assert.Empty(t, d.Reason)
	}
}

func TestCanAssignFestival(t *testing.T) {
	tests := []struct {
		name       string
		cred       string
		credType   string
		ok         bool
		wantReason string
	}{
		{"approved artist badge", model.CredApproved, "Artist", true, ""},
		{"approved vendor badge", model.CredApproved, "Vendor", true, ""},
		{"approved festival grounds badge", model.CredApproved, "Festival Grounds", true, ""},
		{"submitted but not approved", model.CredSubmitted, "Artist", false, "credential not approved"},
		{"not started", model.CredNotStarted, "Artist", false, "credential not approved"},
		{"approved house-only badge", model.CredApproved, "House-Only", false, "House-Only badge doesn't allow festival access"},
		{"approved guest badge", model.CredApproved, "Guest", false, "Guest badge doesn't allow festival access"},
		{"approved with no badge", model.CredApproved, model.CredTypeNone, false, "None badge doesn't allow festival access"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := model.Operator{Cred: tt.cred, CredType: tt.credType}
			d := CanAssign(op, model.ZoneFestival)
			assert.Equal(t, tt.ok, d.OK)
			assert.Equal(t, tt.wantReason, d.Reason)
		})
	}
}

func TestCanAssignChecksCredBeforeBadgeType(t *testing.T) {
	// Both checks fail; the credential-status reason must win so the
	// reviewer fixes the blocking problem first.
	op := model.Operator{Cred: model.CredDenied, CredType: "Guest"}
	d := CanAssign(op, model.ZoneFestival)
	assert.False(t, d.OK)
	assert.Equal(t, "credential not approved", d.Reason)
}
