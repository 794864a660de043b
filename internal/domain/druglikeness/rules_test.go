package druglikeness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// aspirinProps mirrors the locally computed descriptor set for aspirin.
func aspirinProps() mtypes.PropertySet {
	return mtypes.PropertySet{
		MolecularWeight: 180.16,
		LogP:            1.3,
		HBondDonors:     1,
		HBondAcceptors:  4,
		TPSA:            63.6,
		RotatableBonds:  3,
		AromaticRings:   1,
		RingCount:       1,
		HeavyAtoms:      13,
	}
}

func TestLipinski(t *testing.T) {
	tests := []struct {
		name           string
		props          mtypes.PropertySet
		wantViolations int
		wantPasses     bool
		wantAcceptable bool
	}{
		{
			name:           "aspirin passes cleanly",
			props:          aspirinProps(),
			wantViolations: 0,
			wantPasses:     true,
			wantAcceptable: true,
		},
		{
			name: "single violation is acceptable",
			props: mtypes.PropertySet{
				MolecularWeight: 612.3,
				LogP:            3.1,
				HBondDonors:     2,
				HBondAcceptors:  8,
			},
			wantViolations: 1,
			wantPasses:     false,
			wantAcceptable: true,
		},
		{
			name: "two violations fail",
			props: mtypes.PropertySet{
				MolecularWeight: 714.6,
				LogP:            6.2,
				HBondDonors:     3,
				HBondAcceptors:  9,
			},
			wantViolations: 2,
			wantPasses:     false,
			wantAcceptable: false,
		},
		{
			name: "boundary values pass",
			props: mtypes.PropertySet{
				MolecularWeight: 500.0,
				LogP:            5.0,
				HBondDonors:     5,
				HBondAcceptors:  10,
			},
			wantViolations: 0,
			wantPasses:     true,
			wantAcceptable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Lipinski(tt.props)
			assert.Equal(t, RuleSetLipinski, report.RuleSet)
			assert.Len(t, report.Checks, 4)
			assert.Equal(t, tt.wantViolations, report.Violations)
			assert.Equal(t, tt.wantPasses, report.Passes)
			assert.Equal(t, tt.wantAcceptable, report.Acceptable)
		})
	}
}

func TestVeber(t *testing.T) {
	report := Veber(aspirinProps())
	assert.Equal(t, RuleSetVeber, report.RuleSet)
	assert.True(t, report.Passes)
	assert.True(t, report.Acceptable)

	flexible := mtypes.PropertySet{RotatableBonds: 14, TPSA: 90}
	report = Veber(flexible)
	assert.Equal(t, 1, report.Violations)
	assert.False(t, report.Passes)
	assert.False(t, report.Acceptable, "Veber has no tolerant variant")

	polar := mtypes.PropertySet{RotatableBonds: 4, TPSA: 151.2}
	assert.False(t, Veber(polar).Passes)
}

func TestEgan(t *testing.T) {
	report := Egan(aspirinProps())
	assert.Equal(t, RuleSetEgan, report.RuleSet)
	assert.True(t, report.Passes)

	greasy := mtypes.PropertySet{LogP: 6.4, TPSA: 40}
	assert.False(t, Egan(greasy).Passes)

	boundary := mtypes.PropertySet{LogP: 5.88, TPSA: 131.6}
	assert.True(t, Egan(boundary).Passes)
}

func TestEvaluate(t *testing.T) {
	eval := Evaluate(aspirinProps())
	assert.True(t, eval.Lipinski.Passes)
	assert.True(t, eval.Veber.Passes)
	assert.True(t, eval.Egan.Passes)
}

func TestRuleCheckValuesCarried(t *testing.T) {
	report := Lipinski(aspirinProps())
	byName := map[string]mtypes.RuleCheck{}
	for _, c := range report.Checks {
		byName[c.Name] = c
	}
	assert.InDelta(t, 180.16, byName["molecular_weight"].Observed, 0.01)
	assert.Equal(t, 500.0, byName["molecular_weight"].Threshold)
	assert.Equal(t, 4.0, byName["h_bond_acceptors"].Observed)
}
