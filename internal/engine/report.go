package engine

import "github.com/memehouse/crew-ops/internal/model"

// Zone readiness statuses.
const (
	ZoneReady      = "READY"
	ZonePartial    = "PARTIAL"
	ZoneUnassigned = "UNASSIGNED"
)

// Violation describes a confirmed operator occupying a zone they no longer
// pass the access guard for, typically because credentials regressed after
// assignment.
type Violation struct {
	OperatorID uint64 `json:"operatorId"`
	OpCode     string `json:"opCode"`
	Name       string `json:"name"`
	Reason     string `json:"reason"`
}

// ZoneReport summarizes staffing readiness for a single zone.
type ZoneReport struct {
	Zone       string      `json:"zone"`
	Restricted bool        `json:"restricted"`
	Confirmed  int         `json:"confirmed"`
	Valid      int         `json:"valid"`
	Status     string      `json:"status"`
	Violations []Violation `json:"violations,omitempty"`
}

// ZoneReadiness runs the access guard read-only over every confirmed
// operator and reports, per zone, how many hold valid access and which ones
// are in violation. It never mutates anything: surfacing an inconsistent
// record is the point, fixing it is a reviewer decision.
//
// A zone is READY with two or more valid confirmed operators, PARTIAL with
// at least one confirmed operator, and UNASSIGNED otherwise.
func ZoneReadiness(ops []model.Operator) []ZoneReport {
	reports := make([]ZoneReport, 0, len(model.Zones))
	for _, zone := range model.Zones {
		rep := ZoneReport{Zone: zone, Restricted: model.RestrictedZone(zone)}
		for _, op := range ops {
			if op.Zone != zone || op.Stage != model.StageConfirmed {
				continue
			}
			rep.Confirmed++
			if d := CanAssign(op, zone); d.OK {
				rep.Valid++
			} else {
				rep.Violations = append(rep.Violations, Violation{
					OperatorID: op.ID,
					OpCode:     op.OpCode,
					Name:       op.Name,
					Reason:     d.Reason,
				})
			}
		}
		switch {
		case rep.Valid >= 2:
			rep.Status = ZoneReady
		case rep.Confirmed > 0:
			rep.Status = ZonePartial
		default:
			rep.Status = ZoneUnassigned
		}
		reports = append(reports, rep)
	}
	return reports
}
