package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memehouse/crew-ops/internal/model"
)

func TestOperatorsDeterministic(t *testing.T) {
	a := Operators()
	b := Operators()
	assert.Equal(t, a, b, "generation must be reproducible")
}

func TestOperatorsShape(t *testing.T) {
	ops := Operators()
	require.Len(t, ops, 62)

	tiers := map[string]int{}
	buffers := 0
	for i, op := range ops {
		tiers[op.Tier]++
		if op.IsBuffer {
			buffers++
			assert.Equal(t, model.TierT4, op.Tier, "buffer pool is the T4 block")
		}

		min, max, ok := model.TierRateBand(op.Tier)
		require.True(t, ok)
		assert.GreaterOrEqual(t, op.Rate, min, "operator %d", i)
		assert.LessOrEqual(t, op.Rate, max, "operator %d", i)

		assert.True(t, model.ValidZone(op.Zone))
		assert.True(t, model.ValidStage(op.Stage))
		assert.True(t, model.ValidCredState(op.Cred))
		assert.True(t, model.ValidCredType(op.CredType))
		assert.NotEmpty(t, op.Gear)
		for _, g := range op.Gear {
			assert.True(t, model.ValidGearTag(g), "gear tag %q", g)
		}
		assert.GreaterOrEqual(t, op.Reliability, 1)
		assert.LessOrEqual(t, op.Reliability, 5)
		assert.NotEmpty(t, op.Risk, "risk derived at generation")
		assert.NotEmpty(t, op.Name)
	}

	assert.Equal(t, 14, tiers[model.TierT1])
	assert.Equal(t, 18, tiers[model.TierT2])
	assert.Equal(t, 18, tiers[model.TierT3])
	assert.Equal(t, 12, tiers[model.TierT4])
	assert.Equal(t, 12, buffers)
}

func TestOperatorsPaperworkFollowsStage(t *testing.T) {
	stageIdx := map[string]int{}
	for i, s := range model.HireStages {
		stageIdx[s] = i
	}
	for _, op := range Operators() {
		idx := stageIdx[op.Stage]
		assert.Equal(t, idx > 0, op.Reel, "%s: reel after first contact", op.Name)
		assert.Equal(t, idx > 3, op.Refs, "%s: refs after interviewing", op.Name)
		assert.Equal(t, idx >= 6, op.LOA, "%s: LOA once confirmed", op.Name)
		assert.Equal(t, idx >= 6, op.W9, "%s: W-9 once confirmed", op.Name)
		if idx < 5 {
			assert.Equal(t, model.CredTypeNone, op.CredType, "%s: badge type assigned late in the funnel", op.Name)
		}
		if idx == 7 {
			assert.NotNil(t, op.PerfScore)
			assert.NotNil(t, op.RehireEligible)
		} else {
			assert.Nil(t, op.PerfScore)
			assert.Nil(t, op.RehireEligible)
		}
	}
}

func TestOperatorsCycleZones(t *testing.T) {
	ops := Operators()
	for i, op := range ops {
		assert.Equal(t, model.Zones[i%len(model.Zones)], op.Zone)
	}
}
