package molecule

// Standard atomic masses for the elements that occur in drug-like molecules.
// Values are CIAAW 2021 conventional weights, rounded to three decimals.
var atomicMass = map[string]float64{
	"H":  1.008,
	"B":  10.811,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Si": 28.086,
	"P":  30.974,
	"S":  32.065,
	"Cl": 35.453,
	"K":  39.098,
	"Ca": 40.078,
	"Fe": 55.845,
	"Cu": 63.546,
	"Zn": 65.380,
	"Se": 78.960,
	"Br": 79.904,
	"I":  126.904,
}

// defaultValence is the lowest standard valence per element, used to assign
// implicit hydrogens.  Hypervalent S and P are handled by extendedValences.
var defaultValence = map[string]int{
	"H":  1,
	"B":  3,
	"C":  4,
	"N":  3,
	"O":  2,
	"F":  1,
	"P":  3,
	"S":  2,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

// extendedValences lists the permitted valence states for elements that
// commonly exceed their default (sulfones, phosphates).  Ordered ascending;
// implicit-H assignment picks the smallest state that covers the bond sum.
var extendedValences = map[string][]int{
	"S": {2, 4, 6},
	"P": {3, 5},
	"N": {3, 5},
}

// organicSubset is the set of elements writable without brackets in SMILES.
var organicSubset = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true, "S": true,
	"F": true, "Cl": true, "Br": true, "I": true,
}

// hillOrder returns the Hill-system ordering rank of an element symbol:
// carbon first, hydrogen second, all other elements alphabetically.
func hillOrder(symbol string) string {
	switch symbol {
	case "C":
		return "0"
	case "H":
		return "1"
	default:
		return "2" + symbol
	}
}
