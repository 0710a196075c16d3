// Package seed populates an empty database with a realistic opening roster
// and the event configuration record. Generation is deterministic: the same
// seed value always yields the same 62 operators, which keeps local
// environments and fixtures comparable across machines.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"

	"github.com/memehouse/crew-ops/internal/engine"
	"github.com/memehouse/crew-ops/internal/model"
	"github.com/memehouse/crew-ops/internal/repository"
)

const defaultRandomSeed = 62

var (
	firstNames = []string{
		"Jordan", "Alex", "Casey", "Morgan", "Taylor", "Riley", "Avery", "Quinn",
		"Sam", "Drew", "Blake", "Cameron", "Jamie", "Reese", "Skyler", "Devon",
		"Peyton", "Sage", "Emery", "Hayden", "Parker", "Finley", "Kendall",
		"Logan", "Rowan", "Shay", "River", "Ari", "Elliot", "Harlow",
	}
	lastNames = []string{
		"Chen", "Reyes", "Kim", "Patel", "Okafor", "Silva", "Nakamura", "Torres",
		"Williams", "Johnson", "Martinez", "Brown", "Davis", "Garcia", "Wilson",
		"Lee", "Harris", "Thompson", "White", "Jackson", "Martin", "Anderson",
		"Taylor", "Thomas", "Moore", "Lewis", "Hill", "Walker", "Young", "Scott",
	}
	sources = []string{
		"IATSE Local 600", "ProductionHub", "Facebook Group", "Referral",
		"LinkedIn", "Instagram", "StaffMeUp", "Film School",
	}
	credTypePool = []string{"None", "House-Only", "Guest", "Vendor", "Festival Grounds", "Artist"}
)

// Operators builds the opening roster of 62 operators: 14 T1, 18 T2, 18 T3
// and 12 T4 buffer-pool floaters, cycled across every zone. Pipeline stage,
// credentials and the risk inputs are randomized within realistic bounds,
// and the paperwork flags follow the stage (reel after first contact, refs
// after interviewing, LOA and W-9 once an offer is signed).
func Operators() []model.Operator {
	rng := rand.New(rand.NewSource(defaultRandomSeed))
	ops := make([]model.Operator, 0, 62)

	for i := 0; i < 62; i++ {
		var tier string
		switch {
		case i < 14:
			tier = model.TierT1
		case i < 32:
			tier = model.TierT2
		case i < 50:
			tier = model.TierT3
		default:
			tier = model.TierT4
		}

		stageIdx := rng.Intn(8)
		credIdx := rng.Intn(6)
		zone := model.Zones[i%len(model.Zones)]

		min, max, _ := model.TierRateBand(tier)
		rate := min
		if max > min {
			rate = min + rng.Intn(max-min+1)
		}

		credType := model.CredTypeNone
		if stageIdx >= 5 {
			credType = credTypePool[rng.Intn(len(credTypePool))]
		}

		gearCount := 1 + rng.Intn(5)
		gear := append([]string(nil), model.GearTags...)
		rng.Shuffle(len(gear), func(a, b int) { gear[a], gear[b] = gear[b], gear[a] })
		gear = gear[:gearCount]

		op := model.Operator{
			Name:                fmt.Sprintf("%s %s", firstNames[i%len(firstNames)], lastNames[i%len(lastNames)]),
			Tier:                tier,
			Zone:                zone,
			Stage:               model.HireStages[stageIdx],
			Cred:                model.CredStates[credIdx],
			CredType:            credType,
			Rate:                rate,
			Source:              sources[i%len(sources)],
			IsBuffer:            i >= 50,
			Phone:               fmt.Sprintf("(%d) %03d-%04d", 600+rng.Intn(400), 100+rng.Intn(900), 1000+rng.Intn(9000)),
			Reel:                stageIdx > 0,
			Refs:                stageIdx > 3,
			LOA:                 stageIdx >= 6,
			W9:                  stageIdx >= 6,
			Reliability:         1 + rng.Intn(5),
			WorkedWithMemeHouse: rng.Float64() > 0.55,
			LateToScreen:        rng.Float64() > 0.85,
			RateInstability:     rng.Float64() > 0.88,
			Gear:                gear,
		}
		if stageIdx == 7 {
			score := 1 + rng.Intn(5)
			op.PerfScore = &score
			rehire := rng.Float64() > 0.3
			op.RehireEligible = &rehire
		}
		op.Risk = engine.ClassifyRisk(op)
		ops = append(ops, op)
	}
	return ops
}

// Roster inserts the generated roster when the operators table is empty.
// It reports how many rows were inserted; zero means the table already had
// data and nothing was touched.
func Roster(ctx context.Context, db *sql.DB) (int, error) {
	repo := repository.NewOperatorRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count operators: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	ops := Operators()
	for i := range ops {
		if err := repo.Create(ctx, &ops[i]); err != nil {
			return i, fmt.Errorf("insert operator %d: %w", i, err)
		}
	}
	return len(ops), nil
}

// EnsureEvent creates the singleton event record when missing.
func EnsureEvent(ctx context.Context, db *sql.DB) error {
	repo := repository.NewEventRepo(db)
	if _, err := repo.Get(ctx); err == nil {
		return nil
	} else if err != repository.ErrEventNotFound {
		return fmt.Errorf("load event: %w", err)
	}
	ev := model.Event{
		Name:           "MemeHouse Festival 2026",
		StartDate:      "2026-09-18",
		EndDate:        "2026-09-20",
		LaborBudgetCap: 85000,
	}
	if err := repo.Create(ctx, &ev); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}
