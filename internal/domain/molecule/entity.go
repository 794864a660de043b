package molecule

import (
	"strings"

	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// ─────────────────────────────────────────────────────────────────────────────
// Molecule aggregate
// ─────────────────────────────────────────────────────────────────────────────

// MaxSMILESLength bounds accepted input.  Drug-like molecules rarely exceed
// 200 characters; the limit guards the parser against pathological payloads.
const MaxSMILESLength = 1000

// Molecule is the domain aggregate for a single screened compound.  It wraps
// the parsed graph and exposes normalized identity plus computed descriptors.
type Molecule struct {
	// SMILES is the input exactly as received.
	SMILES string

	// Normalized is the canonical form used for cache keys and comparisons:
	// whitespace stripped.  Full canonicalisation (atom reordering) is not
	// performed; callers treating distinct valid encodings of the same
	// structure as distinct cache entries only pay a duplicate lookup.
	Normalized string

	graph *Graph
}

// NewMolecule validates and parses a SMILES string into a Molecule.
// Returns a MOL_001 error for syntactically invalid input.
func NewMolecule(smiles string) (*Molecule, error) {
	normalized := normalizeSMILES(smiles)
	if normalized == "" {
		return nil, errors.InvalidSMILES("SMILES string cannot be empty")
	}
	if len(normalized) > MaxSMILESLength {
		return nil, errors.InvalidSMILES("SMILES string exceeds maximum length").
			WithDetail("limit is 1000 characters")
	}

	g, err := ParseSMILES(normalized)
	if err != nil {
		return nil, err
	}
	if g.HeavyAtomCount() == 0 {
		return nil, errors.InvalidSMILES("molecule contains no heavy atoms")
	}

	return &Molecule{
		SMILES:     smiles,
		Normalized: normalized,
		graph:      g,
	}, nil
}

// normalizeSMILES strips all whitespace from the input.
func normalizeSMILES(smiles string) string {
	return strings.Join(strings.Fields(smiles), "")
}

// Properties computes the physicochemical descriptor set.
func (m *Molecule) Properties() mtypes.PropertySet {
	return m.graph.Descriptors()
}

// Formula returns the molecular formula in Hill order.
func (m *Molecule) Formula() string {
	return m.graph.MolecularFormula()
}

// HeavyAtoms returns the heavy atom count.
func (m *Molecule) HeavyAtoms() int {
	return m.graph.HeavyAtomCount()
}

// Graph exposes the parsed molecular graph for descriptor-level callers.
func (m *Molecule) Graph() *Graph {
	return m.graph
}

// ValidateSMILES reports whether a SMILES string parses without constructing
// the full aggregate.  Used by handlers for early request rejection.
func ValidateSMILES(smiles string) error {
	_, err := NewMolecule(smiles)
	return err
}
