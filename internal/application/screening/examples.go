package screening

import (
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// ExampleMolecules returns the shortcut compounds offered by the web form.
// The SMILES strings match the demo source's table keys, so screening these
// examples produces curated values even fully offline.
func ExampleMolecules() []mtypes.ExampleMolecule {
	return []mtypes.ExampleMolecule{
		{
			Name:        "Aspirin",
			SMILES:      "CC(=O)OC1=CC=CC=C1C(=O)O",
			Description: "Acetylsalicylic acid; the classic rule-of-five poster child",
		},
		{
			Name:        "Caffeine",
			SMILES:      "CN1C=NC2=C1C(=O)N(C(=O)N2C)C",
			Description: "Xanthine stimulant; zero donors, crosses the blood-brain barrier",
		},
		{
			Name:        "Ibuprofen",
			SMILES:      "CC(C)CC1=CC=C(C=C1)C(C)C(=O)O",
			Description: "NSAID with moderate lipophilicity",
		},
		{
			Name:        "Paracetamol",
			SMILES:      "CC(=O)NC1=CC=C(C=C1)O",
			Description: "Analgesic with a known hepatotoxicity liability",
		},
		{
			Name:        "Penicillin G",
			SMILES:      "CC1(C)SC2C(NC(=O)CC3=CC=CC=C3)C(=O)N2C1C(=O)O",
			Description: "Beta-lactam antibiotic; poor passive oral absorption",
		},
		{
			Name:        "Atorvastatin",
			SMILES:      "CC(C)C1=C(C(=O)NC2=CC=CC=C2)C(C2=CC=CC=C2)=C(C2=CC=C(F)C=C2)N1CCC(O)CC(O)CC(=O)O",
			Description: "Statin exceeding the Lipinski weight threshold",
		},
	}
}
