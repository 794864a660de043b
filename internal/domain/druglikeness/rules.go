// Package druglikeness evaluates physicochemical rule sets (Lipinski, Veber,
// Egan) against a computed or predicted property set.  Rule evaluation is
// pure: no I/O, no state, fully deterministic for a given PropertySet.
package druglikeness

import (
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// Rule set identifiers as they appear in RuleReport.RuleSet and API payloads.
const (
	RuleSetLipinski = "lipinski"
	RuleSetVeber    = "veber"
	RuleSetEgan     = "egan"
)

// maxCheck builds a RuleCheck that passes when observed <= threshold.
func maxCheck(name string, observed, threshold float64) mtypes.RuleCheck {
	return mtypes.RuleCheck{
		Name:      name,
		Observed:  observed,
		Threshold: threshold,
		Passed:    observed <= threshold,
	}
}

// buildReport assembles a RuleReport from individual checks.  The tolerant
// verdict permits up to maxViolations failed checks; the classic Lipinski
// formulation allows one, Veber and Egan allow none.
func buildReport(ruleSet string, maxViolations int, checks ...mtypes.RuleCheck) mtypes.RuleReport {
	violations := 0
	for _, c := range checks {
		if !c.Passed {
			violations++
		}
	}
	return mtypes.RuleReport{
		RuleSet:    ruleSet,
		Checks:     checks,
		Violations: violations,
		Passes:     violations == 0,
		Acceptable: violations <= maxViolations,
	}
}

// Evaluation bundles the three rule reports computed for one molecule.
type Evaluation struct {
	Lipinski mtypes.RuleReport
	Veber    mtypes.RuleReport
	Egan     mtypes.RuleReport
}

// Evaluate runs all rule sets against the property set.
func Evaluate(props mtypes.PropertySet) Evaluation {
	return Evaluation{
		Lipinski: Lipinski(props),
		Veber:    Veber(props),
		Egan:     Egan(props),
	}
}
