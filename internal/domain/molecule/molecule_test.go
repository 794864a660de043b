package molecule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MolScreen/pkg/errors"
)

const (
	aspirinSMILES  = "CC(=O)OC1=CC=CC=C1C(=O)O"
	caffeineSMILES = "CN1C=NC2=C1C(=O)N(C(=O)N2C)C"
)

func TestParseSMILES(t *testing.T) {
	tests := []struct {
		name      string
		smiles    string
		wantAtoms int
		wantBonds int
	}{
		{"ethanol", "CCO", 3, 2},
		{"benzene aromatic", "c1ccccc1", 6, 6},
		{"benzene kekule", "C1=CC=CC=C1", 6, 6},
		{"aspirin", aspirinSMILES, 13, 13},
		{"caffeine", caffeineSMILES, 14, 15},
		{"disconnected salt", "[Na+].[Cl-]", 2, 0},
		{"two digit ring closure", "C%10CCCCC%10", 6, 6},
		{"charged ammonium", "[NH4+]", 1, 0},
		{"isotope", "[13CH4]", 1, 0},
		{"chirality ignored", "C[C@H](N)C(=O)O", 6, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseSMILES(tt.smiles)
			require.NoError(t, err)
			assert.Len(t, g.Atoms, tt.wantAtoms)
			assert.Len(t, g.Bonds, tt.wantBonds)
		})
	}
}

func TestParseSMILES_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		smiles string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unclosed branch", "CC(C"},
		{"unmatched close", "CC)C"},
		{"unpaired ring digit", "C1CC"},
		{"double bond symbol", "C==C"},
		{"dangling bond", "CC="},
		{"unclosed bracket", "[NH4"},
		{"unknown element", "CXC"},
		{"bond before fragment dot", "C=.C"},
		{"ring bond to self", "C11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSMILES(tt.smiles)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeMoleculeInvalidSMILES),
				"expected MOL_001, got %v", err)
		})
	}
}

func TestMolecule_Aspirin(t *testing.T) {
	m, err := NewMolecule(aspirinSMILES)
	require.NoError(t, err)

	props := m.Properties()

	assert.InDelta(t, 180.16, props.MolecularWeight, 0.5)
	assert.Equal(t, "C9H8O4", m.Formula())
	assert.Equal(t, 1, props.HBondDonors)
	assert.Equal(t, 4, props.HBondAcceptors)
	assert.InDelta(t, 63.6, props.TPSA, 1.0)
	assert.GreaterOrEqual(t, props.LogP, 0.8)
	assert.LessOrEqual(t, props.LogP, 2.0)
	assert.Equal(t, 3, props.RotatableBonds)
	assert.Equal(t, 1, props.RingCount)
	assert.Equal(t, 1, props.AromaticRings)
	assert.Equal(t, 13, props.HeavyAtoms)
}

func TestMolecule_Caffeine(t *testing.T) {
	m, err := NewMolecule(caffeineSMILES)
	require.NoError(t, err)

	props := m.Properties()

	assert.InDelta(t, 194.19, props.MolecularWeight, 0.5)
	assert.Equal(t, "C8H10N4O2", m.Formula())
	assert.Equal(t, 0, props.HBondDonors)
	assert.Equal(t, 6, props.HBondAcceptors)
	assert.Equal(t, 0, props.RotatableBonds)
	assert.Equal(t, 2, props.RingCount)
	assert.Equal(t, 14, props.HeavyAtoms)
	assert.InDelta(t, 56.2, props.TPSA, 6.0)
}

func TestMolecule_Benzene(t *testing.T) {
	for _, smiles := range []string{"c1ccccc1", "C1=CC=CC=C1"} {
		t.Run(smiles, func(t *testing.T) {
			m, err := NewMolecule(smiles)
			require.NoError(t, err)

			props := m.Properties()
			assert.InDelta(t, 78.11, props.MolecularWeight, 0.1)
			assert.Equal(t, "C6H6", m.Formula())
			assert.Equal(t, 1, props.AromaticRings)
			assert.Equal(t, 0, props.HBondDonors)
			assert.Equal(t, 0, props.HBondAcceptors)
		})
	}
}

func TestMolecule_Ethanol(t *testing.T) {
	m, err := NewMolecule("CCO")
	require.NoError(t, err)

	props := m.Properties()
	assert.InDelta(t, 46.07, props.MolecularWeight, 0.1)
	assert.Equal(t, "C2H6O", m.Formula())
	assert.Equal(t, 1, props.HBondDonors)
	assert.Equal(t, 1, props.HBondAcceptors)
	assert.Equal(t, 0, props.RotatableBonds)
	assert.Equal(t, 0, props.RingCount)
	assert.Less(t, props.LogP, 1.0)
}

func TestMolecule_ImplicitHydrogens(t *testing.T) {
	tests := []struct {
		name   string
		smiles string
		atom   int
		wantH  int
	}{
		{"methane carbon", "C", 0, 4},
		{"ethene carbon", "C=C", 0, 2},
		{"ethyne carbon", "C#C", 0, 1},
		{"pyridine nitrogen", "c1ccncc1", 3, 0},
		{"pyrrole NH written", "c1cc[nH]c1", 3, 1},
		{"sulfone sulfur", "CS(=O)(=O)C", 1, 0},
		{"ammonium", "[NH4+]", 0, 4},
		{"hydroxide oxygen", "[OH-]", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseSMILES(tt.smiles)
			require.NoError(t, err)
			require.Greater(t, len(g.Atoms), tt.atom)
			assert.Equal(t, tt.wantH, g.HydrogenCount(tt.atom))
		})
	}
}

func TestNewMolecule_Normalization(t *testing.T) {
	m, err := NewMolecule("  CCO \t")
	require.NoError(t, err)
	assert.Equal(t, "CCO", m.Normalized)
	assert.Equal(t, "  CCO \t", m.SMILES)
}

func TestNewMolecule_TooLong(t *testing.T) {
	long := make([]byte, MaxSMILESLength+1)
	for i := range long {
		long[i] = 'C'
	}
	_, err := NewMolecule(string(long))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMoleculeInvalidSMILES))
}

func TestValidateSMILES(t *testing.T) {
	assert.NoError(t, ValidateSMILES(aspirinSMILES))
	assert.Error(t, ValidateSMILES("not smiles !!"))
}
