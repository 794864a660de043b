package druglikeness

import (
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// Egan "egg" passive absorption thresholds.
const (
	EganMaxLogP = 5.88
	EganMaxTPSA = 131.6
)

// Egan evaluates the Egan passive-absorption model boundaries.  Both
// conditions must hold; there is no tolerant variant.
func Egan(props mtypes.PropertySet) mtypes.RuleReport {
	return buildReport(RuleSetEgan, 0,
		maxCheck("log_p", props.LogP, EganMaxLogP),
		maxCheck("tpsa", props.TPSA, EganMaxTPSA),
	)
}
