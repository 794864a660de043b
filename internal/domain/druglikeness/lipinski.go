package druglikeness

import (
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// Lipinski rule-of-five thresholds.
const (
	LipinskiMaxWeight    = 500.0
	LipinskiMaxLogP      = 5.0
	LipinskiMaxDonors    = 5
	LipinskiMaxAcceptors = 10
)

// Lipinski evaluates the rule of five.  The strict verdict requires zero
// violations; the tolerant verdict follows the original formulation, which
// flags poor absorption only at two or more violations.
func Lipinski(props mtypes.PropertySet) mtypes.RuleReport {
	return buildReport(RuleSetLipinski, 1,
		maxCheck("molecular_weight", props.MolecularWeight, LipinskiMaxWeight),
		maxCheck("log_p", props.LogP, LipinskiMaxLogP),
		maxCheck("h_bond_donors", float64(props.HBondDonors), float64(LipinskiMaxDonors)),
		maxCheck("h_bond_acceptors", float64(props.HBondAcceptors), float64(LipinskiMaxAcceptors)),
	)
}
