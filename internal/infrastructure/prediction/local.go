package prediction

import (
	"context"

	"github.com/turtacn/MolScreen/internal/domain/molecule"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// LocalSource computes descriptors with the built-in engine.  It needs no
// network and fails only on unparseable SMILES, making it the workhorse of
// offline deployments.  It produces no ADMET probabilities; classification
// falls back to descriptor heuristics.
type LocalSource struct{}

// NewLocalSource returns the descriptor-engine source.
func NewLocalSource() *LocalSource {
	return &LocalSource{}
}

func (s *LocalSource) Name() mtypes.SourceName {
	return mtypes.SourceLocal
}

func (s *LocalSource) Fetch(ctx context.Context, smiles string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := molecule.NewMolecule(smiles)
	if err != nil {
		return nil, err
	}

	return &Result{
		Source:     mtypes.SourceLocal,
		Properties: m.Properties(),
		Formula:    m.Formula(),
	}, nil
}
