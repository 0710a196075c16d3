package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memehouse/crew-ops/internal/model"
)

func confirmedIn(zone string) model.Operator {
	return model.Operator{
		Zone:  zone,
		Stage: model.StageConfirmed,
		Cred:  model.CredApproved,
	}
}

func reportFor(t *testing.T, reports []ZoneReport, zone string) ZoneReport {
	t.Helper()
	for _, r := range reports {
		if r.Zone == zone {
			return r
		}
	}
	t.Fatalf("no report for zone %s", zone)
	return ZoneReport{}
}

func TestZoneReadinessCoversEveryZone(t *testing.T) {
	reports := ZoneReadiness(nil)
	require.Len(t, reports, len(model.Zones))
	for _, r := range reports {
		assert.Equal(t, ZoneUnassigned, r.Status)
		assert.Zero(t, r.Confirmed)
	}
}

func TestZoneReadinessStatuses(t *testing.T) {
	ops := []model.Operator{
		confirmedIn("House 1"),
		confirmedIn("House 1"),
		confirmedIn("House 2"),
		// Interviewing operators never count, whatever the zone.
		{Zone: "House 3", Stage: "Interviewing", Cred: model.CredApproved},
	}
	reports := ZoneReadiness(ops)

	assert.Equal(t, ZoneReady, reportFor(t, reports, "House 1").Status)
	assert.Equal(t, ZonePartial, reportFor(t, reports, "House 2").Status)
	assert.Equal(t, ZoneUnassigned, reportFor(t, reports, "House 3").Status)
}

func TestZoneReadinessFlagsViolations(t *testing.T) {
	// Confirmed into Festival but the credential regressed after the
	// assignment was made.
	bad := model.Operator{
		ID: 7, OpCode: "OP-007", Name: "Casey Kim",
		Zone: model.ZoneFestival, Stage: model.StageConfirmed,
		Cred: model.CredSubmitted, CredType: "Artist",
	}
	good := model.Operator{
		Zone: model.ZoneFestival, Stage: model.StageConfirmed,
		Cred: model.CredApproved, CredType: "Artist",
	}
	reports := ZoneReadiness([]model.Operator{bad, good})

	rep := reportFor(t, reports, model.ZoneFestival)
	assert.True(t, rep.Restricted)
	assert.Equal(t, 2, rep.Confirmed)
	assert.Equal(t, 1, rep.Valid)
	assert.Equal(t, ZonePartial, rep.Status, "one valid operator is not READY")
	require.Len(t, rep.Violations, 1)
	assert.Equal(t, uint64(7), rep.Violations[0].OperatorID)
	assert.Equal(t, "credential not approved", rep.Violations[0].Reason)
}
