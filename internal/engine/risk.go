// Package engine holds the pure derivation rules of the roster: risk
// classification, zone access, reviewer write authorization, eligibility
// filters and roster-wide aggregation. Nothing in this package performs I/O
// or depends on rendering; every function is deterministic over its inputs.
package engine

import "github.com/memehouse/crew-ops/internal/model"

// Risk levels, from worst to best.
const (
	RiskHigh = "HIGH"
	RiskMed  = "MED"
	RiskLow  = "LOW"
)

// ClassifyRisk derives the risk level from an operator's attributes. The
// rules are ordered and the first match wins; they are not independent
// scores. This is the single risk implementation in the system: the
// reconciliation layer calls it on every merge touching a risk input and the
// aggregation engine calls it per row at query time, so a stored risk value
// can never drift from the rules.
//
// A zero Reliability means no score has been recorded; it is read as
// model.DefaultReliability (3) so unscored operators do not trip the <= 2
// rules.
func ClassifyRisk(op model.Operator) string {
	rel := op.Reliability
	if rel == 0 {
		rel = model.DefaultReliability
	}

	// Unconditional red flags first: a denied credential, an unproven
	// operator with no trust signal, and the financial/behavioral flags.
	switch {
	case op.Cred == model.CredDenied:
		return RiskHigh
	case !op.WorkedWithMemeHouse && !op.Refs && rel <= 2:
		return RiskHigh
	case op.RateInstability:
		return RiskHigh
	case op.LateToScreen:
		return RiskHigh
	case rel <= 2:
		return RiskMed
	case !op.WorkedWithMemeHouse && !op.Reel:
		return RiskMed
	case op.Cred == model.CredSubmitted && model.RestrictedZone(op.Zone):
		return RiskMed
	}
	return RiskLow
}
