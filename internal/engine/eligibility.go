package engine

import "github.com/memehouse/crew-ops/internal/model"

// BroadcastGear is the high-value gear subset that qualifies an operator for
// live broadcast positions.
var BroadcastGear = []string{"TVU", "LiveU", "Sony FX6/FX3", "Multi-cam Switching"}

// IsBroadcastQualified reports whether the operator's gear familiarity
// intersects the broadcast subset.
func IsBroadcastQualified(op model.Operator) bool {
	for _, g := range op.Gear {
		for _, b := range BroadcastGear {
			if g == b {
				return true
			}
		}
	}
	return false
}

// InEmergencyPool reports whether the operator belongs to the last-minute
// replacement pool: credential-ready, floating or not yet locked into a
// confirmed slot, proven reliable, and neither already exited nor untouched.
func InEmergencyPool(op model.Operator) bool {
	return op.Cred == model.CredApproved &&
		(op.Zone == model.ZoneFloater || op.Stage != model.StageConfirmed) &&
		op.Reliability >= 4 &&
		op.Stage != model.StagePassed &&
		op.Stage != model.StageOutreach
}

// EmergencyPool filters the roster down to emergency-replacement members.
func EmergencyPool(ops []model.Operator) []model.Operator {
	var pool []model.Operator
	for _, op := range ops {
		if InEmergencyPool(op) {
			pool = append(pool, op)
		}
	}
	return pool
}

// BroadcastQualified filters the roster down to broadcast-qualified members.
func BroadcastQualified(ops []model.Operator) []model.Operator {
	var out []model.Operator
	for _, op := range ops {
		if IsBroadcastQualified(op) {
			out = append(out, op)
		}
	}
	return out
}
