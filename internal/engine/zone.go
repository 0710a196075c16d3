package engine

import (
	"fmt"

	"github.com/memehouse/crew-ops/internal/model"
)

// Decision is the outcome of a zone access check. When OK is false, Reason
// carries a human-readable explanation suitable for blocking a write or for
// annotating an already-inconsistent record.
type Decision struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// CanAssign decides whether an operator may occupy the given zone. Zones
// outside the restricted set are always allowed. Restricted zones require an
// approved credential of a festival-eligible badge type; the two failure
// reasons are kept distinct so callers can tell a processing problem from a
// badge-category problem.
//
// CanAssign is the sole authority for this check. It must run before any
// zone write is committed, and it also runs read-only over confirmed
// operators to surface violations on records assigned before their
// credentials regressed; those are detectable violations, not engine
// errors.
func CanAssign(op model.Operator, zone string) Decision {
	if !model.RestrictedZone(zone) {
		return Decision{OK: true}
	}
	if op.Cred != model.CredApproved {
		return Decision{OK: false, Reason: "credential not approved"}
	}
	if !model.FestivalEligible(op.CredType) {
		return Decision{OK: false, Reason: fmt.Sprintf("%s badge doesn't allow festival access", op.CredType)}
	}
	return Decision{OK: true}
}
