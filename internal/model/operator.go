package model

import "time"

// Closed enumerations for operator classification. Every value accepted over
// the wire or read from storage must come from these sets; anything else is a
// contract violation by the caller, surfaced as a validation rejection.
var (
	// Zones lists every deployment zone. "Floater" is the unrestricted
	// default assignment; "Festival" is the only restricted zone and
	// requires an approved, festival-eligible credential.
	Zones = []string{
		"House 1", "House 2", "House 3", "House 4",
		"House 5", "House 6", "House 7", "House 8",
		"Festival", "Floater",
	}

	// RestrictedZones enumerates zones gated by the access guard.
	RestrictedZones = []string{"Festival"}

	// FestivalCredTypes is the badge subset allowed into restricted zones.
	FestivalCredTypes = []string{"Artist", "Vendor", "Festival Grounds"}

	// HireStages is the ordered hiring funnel.
	HireStages = []string{
		"Outreach", "Responded", "Screened", "Interviewing",
		"Offered", "LOA Signed", "Confirmed", "Passed",
	}

	// CredStates tracks credential processing.
	CredStates = []string{
		"Not Started", "Info Collected", "Submitted",
		"Approved", "Denied", "Backup Assigned",
	}

	// CredTypes is the badge-category set.
	CredTypes = []string{"None", "House-Only", "Guest", "Vendor", "Artist", "Festival Grounds"}

	// Tiers is the pay-band set, T1 highest through T4 flat floater rate.
	Tiers = []string{"T1", "T2", "T3", "T4"}

	// GearTags enumerates equipment-familiarity tags.
	GearTags = []string{
		"TVU", "LiveU", "IRL Backpack", "Sony FX6/FX3",
		"PTZ", "Comms/Party Line", "Multi-cam Switching",
	}
)

// Named members referenced throughout the engine.
const (
	ZoneFestival = "Festival"
	ZoneFloater  = "Floater"

	StageOutreach  = "Outreach"
	StageConfirmed = "Confirmed"
	StagePassed    = "Passed"

	CredNotStarted = "Not Started"
	CredSubmitted  = "Submitted"
	CredApproved   = "Approved"
	CredDenied     = "Denied"

	CredTypeNone = "None"

	TierT1 = "T1"
	TierT2 = "T2"
	TierT3 = "T3"
	TierT4 = "T4"

	// DefaultReliability is assumed when no score has been recorded yet, so
	// an unscored operator does not trip the "reliability <= 2" risk rules.
	DefaultReliability = 3
)

// TierRateBand gives the inclusive day-rate band for a tier. T4 is a flat
// floater rate so its band collapses to a single value.
func TierRateBand(tier string) (min, max int, ok bool) {
	switch tier {
	case TierT1:
		return 550, 600, true
	case TierT2:
		return 450, 549, true
	case TierT3:
		return 400, 449, true
	case TierT4:
		return 400, 400, true
	}
	return 0, 0, false
}

// ValidZone reports whether z belongs to the closed zone set.
func ValidZone(z string) bool { return contains(Zones, z) }

// ValidStage reports whether s belongs to the hiring funnel.
func ValidStage(s string) bool { return contains(HireStages, s) }

// ValidCredState reports whether s belongs to the credential-state set.
func ValidCredState(s string) bool { return contains(CredStates, s) }

// ValidCredType reports whether t belongs to the badge-category set.
func ValidCredType(t string) bool { return contains(CredTypes, t) }

// ValidTier reports whether t belongs to the tier set.
func ValidTier(t string) bool { return contains(Tiers, t) }

// ValidGearTag reports whether g belongs to the gear-tag set.
func ValidGearTag(g string) bool { return contains(GearTags, g) }

// RestrictedZone reports whether z requires an approved credential.
func RestrictedZone(z string) bool { return contains(RestrictedZones, z) }

// FestivalEligible reports whether the badge type grants restricted access.
func FestivalEligible(credType string) bool { return contains(FestivalCredTypes, credType) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Operator is the central entity: a temporary staff member tracked through
// hiring, credentialing and zone deployment.
//
// Fields:
//  ID                  – primary key, assigned by storage at creation.
//  OpCode              – human-facing code like OP-001, unique.
//  Name                – full name.
//  Tier                – pay band (T1..T4).
//  Zone                – current deployment assignment.
//  Stage               – position in the hiring funnel.
//  Cred / CredType     – credential state and badge category.
//  Rate                – day rate in dollars, bounded by the tier band.
//  Source              – recruitment channel.
//  IsBuffer            – overflow-pool marker.
//  Reel/Refs/LOA/W9    – intake checklist flags.
//  Reliability         – 1..5 score, primary risk driver.
//  WorkedWithMemeHouse – prior-engagement trust signal.
//  LateToScreen        – flagged late to screening call.
//  RateInstability     – flagged for renegotiating agreed rates.
//  Gear                – equipment-familiarity tags.
//  Risk                – derived HIGH/MED/LOW, never set directly; always
//                        the classifier applied to the fields above.
//  PerfScore           – post-event 1..5 rating, nil until reviewed.
//  RehireEligible      – post-event tri-state, nil until decided.
type Operator struct {
	ID                  uint64    `json:"id"`
	OpCode              string    `json:"opCode"`
	Name                string    `json:"name"`
	Tier                string    `json:"tier"`
	Zone                string    `json:"zone"`
	Stage               string    `json:"stage"`
	Cred                string    `json:"cred"`
	CredType            string    `json:"credType"`
	Rate                int       `json:"rate"`
	Source              string    `json:"source"`
	IsBuffer            bool      `json:"isBuffer"`
	Phone               string    `json:"phone"`
	Reel                bool      `json:"reel"`
	Refs                bool      `json:"refs"`
	LOA                 bool      `json:"loa"`
	W9                  bool      `json:"w9"`
	Reliability         int       `json:"reliability"`
	WorkedWithMemeHouse bool      `json:"workedWithMemeHouse"`
	LateToScreen        bool      `json:"lateToScreen"`
	RateInstability     bool      `json:"rateInstability"`
	Gear                []string  `json:"gear"`
	Risk                string    `json:"risk"`
	PerfScore           *int      `json:"perfScore"`
	RehireEligible      *bool     `json:"rehireEligible"`
	PostNotes           string    `json:"postNotes"`
	Notes               string    `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
