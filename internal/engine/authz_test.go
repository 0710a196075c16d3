package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memehouse/crew-ops/internal/model"
)

func TestCanEditProductionLead(t *testing.T) {
	for _, f := range []string{
		model.FieldName, model.FieldZone, model.FieldCred, model.FieldRate,
		model.FieldNotes, model.FieldPerfScore, model.FieldRehireEligible,
	} {
		assert.True(t, CanEdit(RoleProductionLead, f), "production lead blocked from %s", f)
	}
}

func TestCanEditCredentialManager(t *testing.T) {
	allowed := []string{model.FieldCred, model.FieldCredType, model.FieldZone}
	denied := []string{model.FieldRate, model.FieldStage, model.FieldName, model.FieldReliability}

	for _, f := range allowed {
		assert.True(t, CanEdit(RoleCredentialManager, f), "credential manager should edit %s", f)
	}
	for _, f := range denied {
		assert.False(t, CanEdit(RoleCredentialManager, f), "credential manager should not edit %s", f)
	}
}

func TestCanEditHiringCoordinator(t *testing.T) {
	allowed := []string{
		model.FieldStage, model.FieldTier, model.FieldRate, model.FieldReliability,
		model.FieldWorkedWithMemeHouse, model.FieldLateToScreen,
		model.FieldRateInstability, model.FieldGear,
	}
	denied := []string{model.FieldCred, model.FieldCredType, model.FieldZone, model.FieldName}

	for _, f := range allowed {
		assert.True(t, CanEdit(RoleHiringCoordinator, f), "hiring coordinator should edit %s", f)
	}
	for _, f := range denied {
		assert.False(t, CanEdit(RoleHiringCoordinator, f), "hiring coordinator should not edit %s", f)
	}
}

func TestCanEditImplicitDeny(t *testing.T) {
	assert.False(t, CanEdit("Stage Manager", model.FieldZone), "unknown role must be denied")
	assert.False(t, CanEdit("", model.FieldZone))
	assert.False(t, CanEdit(RoleCredentialManager, "no-such-field"))
}

func TestKnownRole(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, KnownRole(r))
	}
	assert.False(t, KnownRole("production lead"), "role match is case sensitive")
	assert.False(t, KnownRole(""))
}
