package engine

import "github.com/memehouse/crew-ops/internal/model"

// Reviewer roles. Roles are self-selected at session creation; the matrix
// below controls which operator fields each role may write.
const (
	RoleProductionLead    = "Production Lead"
	RoleCredentialManager = "Credential Manager"
	RoleHiringCoordinator = "Hiring Coordinator"
)

// Roles lists every known reviewer role.
var Roles = []string{RoleProductionLead, RoleCredentialManager, RoleHiringCoordinator}

// editableFields is the write-authorization matrix. The production lead is
// handled separately (full access); any role/field pair not present here is
// denied.
var editableFields = map[string]map[string]bool{
	RoleCredentialManager: fieldSet(
		model.FieldCred,
		model.FieldCredType,
		model.FieldZone,
	),
	RoleHiringCoordinator: fieldSet(
		model.FieldStage,
		model.FieldTier,
		model.FieldRate,
		model.FieldReliability,
		model.FieldWorkedWithMemeHouse,
		model.FieldLateToScreen,
		model.FieldRateInstability,
		model.FieldGear,
	),
}

func fieldSet(fields ...string) map[string]bool {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return m
}

// KnownRole reports whether role is one of the defined reviewer roles.
func KnownRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanEdit reports whether the given reviewer role may write the given
// operator field. It is a pure lookup with implicit deny: unknown roles and
// unlisted fields always return false. Callers must check every field of
// every write, not once per screen.
func CanEdit(role, field string) bool {
	if role == RoleProductionLead {
		return true
	}
	return editableFields[role][field]
}
