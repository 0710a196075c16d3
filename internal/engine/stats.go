package engine

import "github.com/memehouse/crew-ops/internal/model"

// flatHoursReference is the divisor converting a day rate into an hourly
// rate for overtime purposes. It is a payroll convention fixed at 12 even
// when a shift's own flat-hours threshold differs.
const flatHoursReference = 12

// ShiftPay is the payroll breakdown for a single shift.
type ShiftPay struct {
	WorkedHours   float64 `json:"workedHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	OvertimePay   float64 `json:"overtimePay"`
	Total         float64 `json:"total"`
}

// ComputeShiftPay derives pay for one shift. Worked hours require both
// timestamps; otherwise the shift contributes its day rate with no overtime.
// Break minutes are unpaid and subtracted before the overtime threshold is
// applied.
func ComputeShiftPay(s model.Shift) ShiftPay {
	var worked float64
	if s.StartTime != nil && s.EndTime != nil {
		worked = s.EndTime.Sub(*s.StartTime).Hours() - float64(s.BreakMinutes)/60
		if worked < 0 {
			worked = 0
		}
	}

	flat := s.FlatHours
	if flat <= 0 {
		flat = model.DefaultFlatHours
	}
	ot := worked - flat
	if ot < 0 {
		ot = 0
	}

	mult := s.OTMultiplier
	if mult <= 0 {
		mult = model.DefaultOTMultiplier
	}

	hourly := s.DayRate / flatHoursReference
	otPay := ot * hourly * mult
	return ShiftPay{
		WorkedHours:   worked,
		OvertimeHours: ot,
		OvertimePay:   otPay,
		Total:         s.DayRate + otPay,
	}
}

// StatsSnapshot is the roster-wide aggregate returned by ComputeStats.
type StatsSnapshot struct {
	Total              int     `json:"total"`
	Confirmed          int     `json:"confirmed"`
	CredApproved       int     `json:"credApproved"`
	CredDenied         int     `json:"credDenied"`
	LOASigned          int     `json:"loaSigned"`
	Buffer             int     `json:"buffer"`
	BroadcastQualified int     `json:"broadcastQualified"`
	HighRisk           int     `json:"highRisk"`
	MedRisk            int     `json:"medRisk"`
	LowRisk            int     `json:"lowRisk"`
	ActualLabor        float64 `json:"actualLabor"`
	OTSpend            float64 `json:"otSpend"`
	ProjectedLabor     float64 `json:"projectedLabor"`
	Budget             float64 `json:"budget"`
	Remaining          float64 `json:"remaining"`
	EventName          string  `json:"eventName"`
	EventStart         string  `json:"eventStart"`
	EventEnd           string  `json:"eventEnd"`
}

// ComputeStats aggregates the full record sets into a snapshot. It is pure
// given its three inputs and recomputed on every call; risk is derived from
// scratch per row through ClassifyRisk rather than trusting any stored
// value.
//
// ActualLabor sums every shift's total pay, OTSpend its overtime component.
// ProjectedLabor is the day-rate sum over confirmed operators (one flat day
// each). Remaining is budget minus actual labor and deliberately goes
// negative on overrun: a negative remainder is the signal, clamping it would
// hide the problem.
func ComputeStats(ops []model.Operator, shifts []model.Shift, ev model.Event) StatsSnapshot {
	snap := StatsSnapshot{
		Total:      len(ops),
		Budget:     ev.LaborBudgetCap,
		EventName:  ev.Name,
		EventStart: ev.StartDate,
		EventEnd:   ev.EndDate,
	}

	for _, op := range ops {
		switch ClassifyRisk(op) {
		case RiskHigh:
			snap.HighRisk++
		case RiskMed:
			snap.MedRisk++
		default:
			snap.LowRisk++
		}
		if op.Stage == model.StageConfirmed {
			snap.Confirmed++
			snap.ProjectedLabor += float64(op.Rate)
		}
		if op.Cred == model.CredApproved {
			snap.CredApproved++
		}
		if op.Cred == model.CredDenied {
			snap.CredDenied++
		}
		if op.LOA {
			snap.LOASigned++
		}
		if op.IsBuffer {
			snap.Buffer++
		}
		if IsBroadcastQualified(op) {
			snap.BroadcastQualified++
		}
	}

	for _, s := range shifts {
		pay := ComputeShiftPay(s)
		snap.ActualLabor += pay.Total
		snap.OTSpend += pay.OvertimePay
	}

	snap.Remaining = ev.LaborBudgetCap - snap.ActualLabor
	return snap
}
