package model

import "time"

// Shift records one worked shift for payroll aggregation. Shifts are
// immutable once created; the only mutation is deletion.
//
// Fields:
//  ID           – primary key, assigned by storage.
//  ShiftCode    – human-facing code like SH-1712001234.
//  OperatorID   – operator who worked the shift (nullable for ad-hoc crew).
//  OperatorName – display name captured at creation time.
//  Zone         – zone the shift was worked in.
//  Date         – calendar day of the shift (YYYY-MM-DD).
//  StartTime    – scheduled start, nil when not yet recorded.
//  EndTime      – scheduled end, nil when not yet recorded.
//  BreakMinutes – unpaid break minutes subtracted from worked hours.
//  FlatHours    – contracted hours covered by the flat day rate.
//  OTMultiplier – overtime pay multiplier applied past FlatHours.
//  DayRate      – flat day rate in dollars applied to this shift.
type Shift struct {
	ID           uint64     `json:"id"`
	ShiftCode    string     `json:"shiftCode"`
	OperatorID   *uint64    `json:"operatorId"`
	OperatorName string     `json:"operatorName"`
	Zone         string     `json:"zone"`
	Date         string     `json:"date"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	BreakMinutes int        `json:"breakMinutes"`
	FlatHours    float64    `json:"flatHours"`
	OTMultiplier float64    `json:"otMultiplier"`
	DayRate      float64    `json:"dayRate"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Shift defaults applied at creation when the caller omits them.
const (
	DefaultFlatHours    = 12
	DefaultOTMultiplier = 1.5
)
