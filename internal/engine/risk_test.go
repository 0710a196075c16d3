package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memehouse/crew-ops/internal/model"
)

// trusted returns an operator that classifies LOW so each case can flip the
// one attribute under test.
func trusted() model.Operator {
	return model.Operator{
		Zone:                "House 1",
		Stage:               model.StageConfirmed,
		Cred:                model.CredApproved,
		Reliability:         5,
		WorkedWithMemeHouse: true,
		Reel:                true,
		Refs:                true,
	}
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name string
		op   func() model.Operator
		want string
	}{
		{"baseline trusted operator", trusted, RiskLow},
		{"denied credential", func() model.Operator {
			op := trusted()
			op.Cred = model.CredDenied
			return op
		}, RiskHigh},
		{"unproven with no trust signal", func() model.Operator {
			op := trusted()
			op.WorkedWithMemeHouse = false
			op.Refs = false
			op.Reliability = 2
			return op
		}, RiskHigh},
		{"rate instability", func() model.Operator {
			op := trusted()
			op.RateInstability = true
			return op
		}, RiskHigh},
		{"late to screening", func() model.Operator {
			op := trusted()
			op.LateToScreen = true
			return op
		}, RiskHigh},
		{"low reliability alone", func() model.Operator {
			op := trusted()
			op.Reliability = 2
			return op
		}, RiskMed},
		{"new face without a reel", func() model.Operator {
			op := trusted()
			op.WorkedWithMemeHouse = false
			op.Reel = false
			return op
		}, RiskMed},
		{"pending credential in restricted zone", func() model.Operator {
			op := trusted()
			op.Cred = model.CredSubmitted
			op.Zone = model.ZoneFestival
			return op
		}, RiskMed},
		{"pending credential in open zone", func() model.Operator {
			op := trusted()
			op.Cred = model.CredSubmitted
			return op
		}, RiskLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRisk(tt.op()))
		})
	}
}

func TestClassifyRiskOrderedPrecedence(t *testing.T) {
	// A denied credential outranks everything else, even when several
	// later rules also match.
	op := trusted()
	op.Cred = model.CredDenied
	op.RateInstability = true
	op.LateToScreen = true
	op.Reliability = 1
	assert.Equal(t, RiskHigh, ClassifyRisk(op))

	// Low reliability matches the MED rule only once the HIGH rules have
	// been cleared by a trust signal.
	op = trusted()
	op.WorkedWithMemeHouse = false
	op.Reliability = 2
	assert.Equal(t, RiskMed, ClassifyRisk(op), "refs keep a low-reliability operator out of HIGH")
}

func TestClassifyRiskDefaultReliability(t *testing.T) {
	// An unscored operator must not trip either reliability rule.
	op := trusted()
	op.Reliability = 0
	assert.Equal(t, RiskLow, ClassifyRisk(op))

	op.WorkedWithMemeHouse = false
	op.Refs = false
	assert.Equal(t, RiskLow, ClassifyRisk(op), "no trust signal but default reliability 3 stays below the threshold")
}
