package prediction

import (
	"context"

	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// DemoSource serves a curated table of well-known molecules plus a generic
// placeholder profile for anything else.  It never fails, which makes it the
// terminal link of the fallback chain: screening always produces a report,
// clearly attributed to the demo source.
type DemoSource struct {
	table map[string]Result
}

func f(v float64) *float64 { return &v }

// NewDemoSource builds the source with the built-in compound table.  Keys are
// normalized SMILES exactly as the web form's example shortcuts submit them.
func NewDemoSource() *DemoSource {
	return &DemoSource{table: demoTable()}
}

func (s *DemoSource) Name() mtypes.SourceName {
	return mtypes.SourceDemo
}

func (s *DemoSource) Fetch(ctx context.Context, smiles string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r, ok := s.table[smiles]; ok {
		out := r
		out.Source = mtypes.SourceDemo
		return &out, nil
	}

	// Generic drug-like placeholder; mid-range values that pass all rule sets.
	return &Result{
		Source: mtypes.SourceDemo,
		Properties: mtypes.PropertySet{
			MolecularWeight: 342.4,
			LogP:            2.5,
			HBondDonors:     2,
			HBondAcceptors:  5,
			TPSA:            85.0,
			RotatableBonds:  5,
			AromaticRings:   2,
			RingCount:       3,
			HeavyAtoms:      24,
		},
	}, nil
}

// demoTable holds curated literature values for the example molecules.
func demoTable() map[string]Result {
	return map[string]Result{
		"CC(=O)OC1=CC=CC=C1C(=O)O": { // aspirin
			Formula: "C9H8O4",
			Properties: mtypes.PropertySet{
				MolecularWeight: 180.16, LogP: 1.19,
				HBondDonors: 1, HBondAcceptors: 4,
				TPSA: 63.6, RotatableBonds: 3,
				AromaticRings: 1, RingCount: 1, HeavyAtoms: 13,
			},
			Scores: mtypes.EndpointScores{
				HIAProbability: f(0.98), BBBProbability: f(0.36),
				HERGProbability:   f(0.02),
				CYP3A4Probability: f(0.08), CYP2D6Probability: f(0.04), CYP2C9Probability: f(0.31),
				HepatotoxicityProb: f(0.34), AmesProbability: f(0.05),
				LD50: f(200),
			},
		},
		"CN1C=NC2=C1C(=O)N(C(=O)N2C)C": { // caffeine
			Formula: "C8H10N4O2",
			Properties: mtypes.PropertySet{
				MolecularWeight: 194.19, LogP: -0.07,
				HBondDonors: 0, HBondAcceptors: 6,
				TPSA: 58.4, RotatableBonds: 0,
				AromaticRings: 2, RingCount: 2, HeavyAtoms: 14,
			},
			Scores: mtypes.EndpointScores{
				HIAProbability: f(0.99), BBBProbability: f(0.92),
				HERGProbability:   f(0.03),
				CYP3A4Probability: f(0.12), CYP2D6Probability: f(0.06), CYP2C9Probability: f(0.09),
				HepatotoxicityProb: f(0.21), AmesProbability: f(0.08),
				LD50: f(192),
			},
		},
		"CC(C)CC1=CC=C(C=C1)C(C)C(=O)O": { // ibuprofen
			Formula: "C13H18O2",
			Properties: mtypes.PropertySet{
				MolecularWeight: 206.28, LogP: 3.50,
				HBondDonors: 1, HBondAcceptors: 2,
				TPSA: 37.3, RotatableBonds: 4,
				AromaticRings: 1, RingCount: 1, HeavyAtoms: 15,
			},
			Scores: mtypes.EndpointScores{
				HIAProbability: f(0.99), BBBProbability: f(0.74),
				HERGProbability:   f(0.05),
				CYP3A4Probability: f(0.10), CYP2D6Probability: f(0.07), CYP2C9Probability: f(0.62),
				HepatotoxicityProb: f(0.41), AmesProbability: f(0.03),
				LD50: f(636),
			},
		},
		"CC(=O)NC1=CC=C(C=C1)O": { // paracetamol
			Formula: "C8H9NO2",
			Properties: mtypes.PropertySet{
				MolecularWeight: 151.16, LogP: 0.46,
				HBondDonors: 2, HBondAcceptors: 3,
				TPSA: 49.3, RotatableBonds: 1,
				AromaticRings: 1, RingCount: 1, HeavyAtoms: 11,
			},
			Scores: mtypes.EndpointScores{
				HIAProbability: f(0.99), BBBProbability: f(0.61),
				HERGProbability:   f(0.02),
				CYP3A4Probability: f(0.09), CYP2D6Probability: f(0.05), CYP2C9Probability: f(0.07),
				HepatotoxicityProb: f(0.72), AmesProbability: f(0.06),
				LD50: f(338),
			},
		},
		"CC1(C)SC2C(NC(=O)CC3=CC=CC=C3)C(=O)N2C1C(=O)O": { // penicillin G
			Formula: "C16H18N2O4S",
			Properties: mtypes.PropertySet{
				MolecularWeight: 334.39, LogP: 1.83,
				HBondDonors: 2, HBondAcceptors: 6,
				TPSA: 112.0, RotatableBonds: 4,
				AromaticRings: 1, RingCount: 3, HeavyAtoms: 23,
			},
			Scores: mtypes.EndpointScores{
				HIAProbability: f(0.31), BBBProbability: f(0.06),
				HERGProbability:   f(0.04),
				CYP3A4Probability: f(0.11), CYP2D6Probability: f(0.03), CYP2C9Probability: f(0.08),
				HepatotoxicityProb: f(0.18), AmesProbability: f(0.04),
				LD50: f(5000),
			},
		},
		"CC(C)C1=C(C(=O)NC2=CC=CC=C2)C(C2=CC=CC=C2)=C(C2=CC=C(F)C=C2)N1CCC(O)CC(O)CC(=O)O": { // atorvastatin
			Formula: "C33H35FN2O5",
			Properties: mtypes.PropertySet{
				MolecularWeight: 558.64, LogP: 5.0,
				HBondDonors: 4, HBondAcceptors: 7,
				TPSA: 111.8, RotatableBonds: 12,
				AromaticRings: 4, RingCount: 5, HeavyAtoms: 41,
			},
			Scores: mtypes.EndpointScores{
				HIAProbability: f(0.72), BBBProbability: f(0.08),
				HERGProbability:   f(0.36),
				CYP3A4Probability: f(0.81), CYP2D6Probability: f(0.12), CYP2C9Probability: f(0.44),
				HepatotoxicityProb: f(0.55), AmesProbability: f(0.07),
				LD50: f(5000),
			},
		},
	}
}
