package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseOperator() Operator {
	return Operator{
		Name:        "Jordan Chen",
		Tier:        TierT2,
		Zone:        "House 1",
		Stage:       StageConfirmed,
		Cred:        CredApproved,
		CredType:    CredTypeNone,
		Rate:        460,
		Reliability: 4,
	}
}

func TestPatchApplyTo(t *testing.T) {
	op := baseOperator()
	err := Patch{
		"zone":        ZoneFloater,
		"rate":        500,
		"reliability": 5,
		"gear":        []any{"TVU", "PTZ"},
		"notes":       "prefers evening calls",
	}.ApplyTo(&op)
	require.NoError(t, err)
	assert.Equal(t, ZoneFloater, op.Zone)
	assert.Equal(t, 500, op.Rate)
	assert.Equal(t, 5, op.Reliability)
	assert.Equal(t, []string{"TVU", "PTZ"}, op.Gear)
	assert.Equal(t, "prefers evening calls", op.Notes)
	assert.Equal(t, "Jordan Chen", op.Name)
}

func TestPatchApplyToRejections(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
		field string
	}{
		{"unknown field", Patch{"favoriteColor": "blue"}, "favoriteColor"},
		{"unknown zone", Patch{"zone": "House 9"}, "zone"},
		{"unknown tier", Patch{"tier": "T5"}, "tier"},
		{"unknown hire stage", Patch{"stage": "Ghosted"}, "stage"},
		{"unknown credential state", Patch{"cred": "Lost"}, "cred"},
		{"unknown gear tag", Patch{"gear": []any{"Drone"}}, "gear"},
		{"rate outside band", Patch{"rate": 700}, "rate"},
		{"reliability out of range", Patch{"reliability": 6}, "reliability"},
		{"perfScore out of range", Patch{"perfScore": 0}, "perfScore"},
		{"fractional number", Patch{"rate": 460.5}, "rate"},
		{"wrong type for bool", Patch{"loa": "yes"}, "loa"},
		{"wrong type for string", Patch{"name": 42}, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := baseOperator()
			err := tt.patch.ApplyTo(&op)
			var perr *PatchError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestPatchApplyToJSONNumbers(t *testing.T) {
	// JSON decoding yields float64; whole values must pass.
	op := baseOperator()
	require.NoError(t, Patch{"rate": float64(540)}.ApplyTo(&op))
	assert.Equal(t, 540, op.Rate)
}

func TestPatchApplyToNullableFields(t *testing.T) {
	op := baseOperator()
	require.NoError(t, Patch{"perfScore": float64(4), "rehireEligible": true}.ApplyTo(&op))
	require.NotNil(t, op.PerfScore)
	assert.Equal(t, 4, *op.PerfScore)
	require.NotNil(t, op.RehireEligible)
	assert.True(t, *op.RehireEligible)

	// Explicit null clears both.
	require.NoError(t, Patch{"perfScore": nil, "rehireEligible": nil}.ApplyTo(&op))
	assert.Nil(t, op.PerfScore)
	assert.Nil(t, op.RehireEligible)
}

func TestPatchTouchesAndFields(t *testing.T) {
	p := Patch{"cred": CredSubmitted, "notes": ""}
	assert.True(t, p.Touches(FieldCred))
	assert.True(t, p.Touches(RiskFields...))
	assert.False(t, p.Touches(FieldZone, FieldRate))
	assert.ElementsMatch(t, []string{"cred", "notes"}, p.Fields())
}

func TestColumnFor(t *testing.T) {
	renames := map[string]string{
		FieldName:                "full_name",
		FieldStage:               "hire_stage",
		FieldCred:                "cred_status",
		FieldCredType:            "cred_type",
		FieldRate:                "day_rate",
		FieldWorkedWithMemeHouse: "worked_with_memehouse",
	}
	for field, want := range renames {
		col, ok := ColumnFor(field)
		require.True(t, ok, field)
		assert.Equal(t, want, col)
	}

	_, ok := ColumnFor("risk")
	assert.False(t, ok, "derived risk has no storage column")
}

func TestTierRateBand(t *testing.T) {
	tests := []struct {
		tier     string
		min, max int
	}{
		{TierT1, 550, 600},
		{TierT2, 450, 549},
		{TierT3, 400, 449},
		{TierT4, 400, 400},
	}
	for _, tt := range tests {
		min, max, ok := TierRateBand(tt.tier)
		require.True(t, ok, tt.tier)
		assert.Equal(t, tt.min, min)
		assert.Equal(t, tt.max, max)
	}
	_, _, ok := TierRateBand("T5")
	assert.False(t, ok)
}
