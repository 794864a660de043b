package druglikeness

import (
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// Veber oral bioavailability thresholds.
const (
	VeberMaxRotatableBonds = 10
	VeberMaxTPSA           = 140.0
)

// Veber evaluates the Veber oral bioavailability criteria.  Both conditions
// must hold; there is no tolerant variant.
func Veber(props mtypes.PropertySet) mtypes.RuleReport {
	return buildReport(RuleSetVeber, 0,
		maxCheck("rotatable_bonds", float64(props.RotatableBonds), float64(VeberMaxRotatableBonds)),
		maxCheck("tpsa", props.TPSA, VeberMaxTPSA),
	)
}
