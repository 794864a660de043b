// Package prediction implements the property/prediction data sources and the
// fallback chain that resolves a molecule's PropertySet and raw ADMET endpoint
// scores.  Remote sources (ADMETlab, PubChem) degrade to the local descriptor
// engine and finally to the built-in demo table, so screening keeps working
// offline.
package prediction

import (
	"context"

	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// Result is what a data source produces for one molecule.
type Result struct {
	Source     mtypes.SourceName     `json:"source"`
	Properties mtypes.PropertySet    `json:"properties"`
	Scores     mtypes.EndpointScores `json:"scores"`

	// Formula is set when the source reports a molecular formula (PubChem,
	// local engine); empty otherwise.
	Formula string `json:"formula,omitempty"`
}

// Source resolves predictions for a normalized SMILES string.
type Source interface {
	Name() mtypes.SourceName
	Fetch(ctx context.Context, smiles string) (*Result, error)
}
