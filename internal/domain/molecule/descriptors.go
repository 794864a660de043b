package molecule

import (
	"fmt"
	"sort"
	"strings"

	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// Descriptors computes the full physicochemical property set for the graph.
// All values are additive-model estimates in the spirit of the classic
// descriptor literature: exact for composition-derived quantities (weight,
// formula, H-bond counts) and approximate for LogP and TPSA.
func (g *Graph) Descriptors() mtypes.PropertySet {
	return mtypes.PropertySet{
		MolecularWeight: g.MolecularWeight(),
		LogP:            g.LogP(),
		HBondDonors:     g.HBondDonors(),
		HBondAcceptors:  g.HBondAcceptors(),
		TPSA:            g.TPSA(),
		RotatableBonds:  g.RotatableBonds(),
		AromaticRings:   g.AromaticRings(),
		RingCount:       g.RingCount(),
		HeavyAtoms:      g.HeavyAtomCount(),
	}
}

// MolecularWeight sums standard atomic masses over all atoms plus implicit
// hydrogens.  Bracket isotopes use the isotope number as the mass.
func (g *Graph) MolecularWeight() float64 {
	var mw float64
	for i, a := range g.Atoms {
		if a.Isotope > 0 {
			mw += float64(a.Isotope)
		} else if m, ok := atomicMass[a.Symbol]; ok {
			mw += m
		}
		mw += float64(g.HydrogenCount(i)) * atomicMass["H"]
	}
	return mw
}

// MolecularFormula renders the composition in Hill order: carbon, hydrogen,
// then remaining elements alphabetically.
func (g *Graph) MolecularFormula() string {
	counts := make(map[string]int)
	hydrogens := 0
	for i, a := range g.Atoms {
		if a.Symbol == "H" {
			hydrogens++
		} else {
			counts[a.Symbol]++
		}
		hydrogens += g.HydrogenCount(i)
	}
	if hydrogens > 0 {
		counts["H"] = hydrogens
	}

	symbols := make([]string, 0, len(counts))
	for s := range counts {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return hillOrder(symbols[i]) < hillOrder(symbols[j])
	})

	var sb strings.Builder
	for _, s := range symbols {
		sb.WriteString(s)
		if counts[s] > 1 {
			fmt.Fprintf(&sb, "%d", counts[s])
		}
	}
	return sb.String()
}

// HBondDonors counts nitrogen and oxygen atoms bearing at least one hydrogen
// (the classic Lipinski donor definition).
func (g *Graph) HBondDonors() int {
	n := 0
	for i, a := range g.Atoms {
		if (a.Symbol == "N" || a.Symbol == "O") && g.HydrogenCount(i) > 0 {
			n++
		}
	}
	return n
}

// HBondAcceptors counts all nitrogen and oxygen atoms (the classic Lipinski
// acceptor definition).
func (g *Graph) HBondAcceptors() int {
	n := 0
	for _, a := range g.Atoms {
		if a.Symbol == "N" || a.Symbol == "O" {
			n++
		}
	}
	return n
}

// HeavyAtomCount counts non-hydrogen atoms.
func (g *Graph) HeavyAtomCount() int {
	n := 0
	for _, a := range g.Atoms {
		if a.Symbol != "H" {
			n++
		}
	}
	return n
}

// RingCount returns the cyclomatic number of the graph, which equals the
// SSSR size.
func (g *Graph) RingCount() int {
	return len(g.cycles)
}

// AromaticRings counts basis cycles that are aromatic: either written in
// aromatic (lowercase) form, or a six-membered Kekulé ring of C/N/O/S atoms
// with alternating single and double bonds.  Five-membered Kekulé
// heteroaromatics are not recognised; write them in aromatic form.
func (g *Graph) AromaticRings() int {
	count := 0
	for _, cycle := range g.cycles {
		if g.isAromaticCycle(cycle) {
			count++
		}
	}
	return count
}

func (g *Graph) isAromaticCycle(cycle []int) bool {
	atoms := g.cycleAtoms(cycle)

	allFlagged := true
	for _, ai := range atoms {
		if !g.Atoms[ai].Aromatic {
			allFlagged = false
			break
		}
	}
	if allFlagged {
		return true
	}

	if len(atoms) != 6 || len(cycle) != 6 {
		return false
	}
	orderSum := 0
	for _, bi := range cycle {
		if g.Bonds[bi].Aromatic {
			return false // mixed notation; handled by the flagged branch
		}
		orderSum += g.Bonds[bi].Order
	}
	for _, ai := range atoms {
		switch g.Atoms[ai].Symbol {
		case "C", "N", "O", "S":
		default:
			return false
		}
	}
	// Three alternating double bonds in a six-ring sum to nine.
	return orderSum == 9
}

// RotatableBonds counts non-ring single bonds between two heavy atoms that
// each carry at least one further heavy neighbour.  Amide C–N bonds are
// excluded, matching the common strict definition.
func (g *Graph) RotatableBonds() int {
	n := 0
	for bi, b := range g.Bonds {
		if b.inRing || b.Aromatic || b.Order != 1 {
			continue
		}
		a1, a2 := g.Atoms[b.From], g.Atoms[b.To]
		if a1.Symbol == "H" || a2.Symbol == "H" {
			continue
		}
		if g.heavyDegree(b.From) < 2 || g.heavyDegree(b.To) < 2 {
			continue
		}
		if isAmideBond(g, bi) {
			continue
		}
		n++
	}
	return n
}

func isAmideBond(g *Graph, bi int) bool {
	b := g.Bonds[bi]
	a1, a2 := g.Atoms[b.From], g.Atoms[b.To]
	if a1.Symbol == "C" && a2.Symbol == "N" {
		return g.hasDoubleBondTo(b.From, "O")
	}
	if a1.Symbol == "N" && a2.Symbol == "C" {
		return g.hasDoubleBondTo(b.To, "O")
	}
	return false
}

// TPSA computes the topological polar surface area from Ertl fragment
// contributions for nitrogen and oxygen environments.  Sulfur and phosphorus
// contributions (the extended parameterisation) are deliberately omitted,
// matching the common default.
func (g *Graph) TPSA() float64 {
	var tpsa float64
	for i, a := range g.Atoms {
		h := g.HydrogenCount(i)
		switch a.Symbol {
		case "N":
			tpsa += nitrogenTPSA(g, i, a, h)
		case "O":
			tpsa += oxygenTPSA(g, i, a, h)
		}
	}
	return tpsa
}

func nitrogenTPSA(g *Graph, ai int, a Atom, h int) float64 {
	if a.Aromatic {
		if h > 0 {
			return 15.79
		}
		return 12.89
	}
	for _, bi := range g.adj[ai] {
		if g.Bonds[bi].Order == 3 {
			return 23.79 // nitrile
		}
	}
	hasDouble := false
	for _, bi := range g.adj[ai] {
		if g.Bonds[bi].Order == 2 {
			hasDouble = true
			break
		}
	}
	if hasDouble {
		if h > 0 {
			return 23.85
		}
		return 12.36
	}
	switch {
	case h >= 2:
		return 26.02
	case h == 1:
		return 12.03
	default:
		return 3.24
	}
}

func oxygenTPSA(g *Graph, ai int, a Atom, h int) float64 {
	if a.Aromatic {
		return 13.14
	}
	if a.Charge < 0 {
		return 23.06 // carboxylate-style anionic oxygen
	}
	for _, bi := range g.adj[ai] {
		if g.Bonds[bi].Order == 2 {
			return 17.07 // carbonyl
		}
	}
	if h > 0 {
		return 20.23 // hydroxyl
	}
	return 9.23 // ether / ester bridge
}

// logPContribution values are united-atom (hydrogens folded in) additive
// terms calibrated against Crippen-style tables.  The model targets ±1 log
// unit on common drug-like molecules, which is sufficient for threshold
// screening.
func (g *Graph) LogP() float64 {
	var logp float64
	for i, a := range g.Atoms {
		logp += atomLogP(g, i, a)
	}
	return logp
}

func atomLogP(g *Graph, ai int, a Atom) float64 {
	h := g.HydrogenCount(ai)
	switch a.Symbol {
	case "C":
		if a.Aromatic {
			if h > 0 {
				return 0.46
			}
			return 0.15
		}
		sp3 := true
		for _, bi := range g.adj[ai] {
			if g.Bonds[bi].Order > 1 {
				sp3 = false
				break
			}
		}
		if !sp3 {
			if g.hasDoubleBondTo(ai, "O") {
				return -0.05 // carbonyl carbon
			}
			return 0.28
		}
		switch h {
		case 3:
			return 0.55
		case 2:
			return 0.44
		case 1:
			return 0.32
		default:
			return 0.20
		}
	case "N":
		if a.Aromatic {
			if h > 0 {
				return -0.53
			}
			return -0.26
		}
		switch {
		case h >= 2:
			return -0.85
		case h == 1:
			return -0.71
		default:
			return -0.60
		}
	case "O":
		if a.Aromatic {
			return -0.08
		}
		for _, bi := range g.adj[ai] {
			if g.Bonds[bi].Order == 2 {
				return -0.13
			}
		}
		if h > 0 {
			return -0.44
		}
		return -0.20
	case "S":
		if a.Aromatic {
			return 0.41
		}
		return 0.26
	case "P":
		return -0.50
	case "F":
		return 0.42
	case "Cl":
		return 0.69
	case "Br":
		return 0.89
	case "I":
		return 1.11
	case "H":
		return 0.10
	default:
		return 0
	}
}
