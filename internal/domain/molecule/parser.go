package molecule

import (
	"fmt"
	"math"
	"strings"

	"github.com/turtacn/MolScreen/pkg/errors"
)

// Atom is one heavy atom (or bracket hydrogen) of a parsed SMILES graph.
type Atom struct {
	Symbol   string
	Aromatic bool
	Charge   int
	Isotope  int

	// ExplicitH is the hydrogen count given inside a bracket atom, or -1 when
	// the atom came from the organic subset and hydrogens are implicit.
	ExplicitH int
}

// Bond connects two atoms by index.  Order is 1, 2 or 3; aromatic bonds keep
// Order 1 with Aromatic set.
type Bond struct {
	From     int
	To       int
	Order    int
	Aromatic bool
	inRing   bool
}

// Graph is the molecular graph parsed from a SMILES string.  Hydrogens are
// implicit unless written explicitly in brackets.
type Graph struct {
	Atoms []Atom
	Bonds []Bond

	adj    [][]int // atom index → incident bond indices
	cycles [][]int // cycle basis: each entry is a list of bond indices
}

type ringRef struct {
	atom int
	bond byte
}

// ParseSMILES tokenizes and parses a SMILES string into a molecular graph.
// It supports the organic subset, bracket atoms with isotope/chirality/
// H-count/charge, single/double/triple/aromatic bonds, directional bonds
// (treated as single), branches, two-digit ring closures, and dot-separated
// fragments.  Stereochemistry is accepted but not retained.
func ParseSMILES(smiles string) (*Graph, error) {
	smiles = strings.TrimSpace(smiles)
	if smiles == "" {
		return nil, errors.InvalidSMILES("SMILES string cannot be empty")
	}

	g := &Graph{}
	prev := -1
	var pendingBond byte
	var branchStack []int
	ringBonds := make(map[int]ringRef)

	i := 0
	for i < len(smiles) {
		c := smiles[i]
		switch {
		case c == '(':
			if prev < 0 {
				return nil, errors.InvalidSMILES("branch opened before any atom").
					WithDetail(posDetail(smiles, i))
			}
			branchStack = append(branchStack, prev)
			i++

		case c == ')':
			if len(branchStack) == 0 {
				return nil, errors.InvalidSMILES("unmatched closing parenthesis").
					WithDetail(posDetail(smiles, i))
			}
			prev = branchStack[len(branchStack)-1]
			branchStack = branchStack[:len(branchStack)-1]
			i++

		case c == '-' || c == '=' || c == '#' || c == ':' || c == '/' || c == '\\':
			if pendingBond != 0 {
				return nil, errors.InvalidSMILES("two consecutive bond symbols").
					WithDetail(posDetail(smiles, i))
			}
			pendingBond = c
			i++

		case c == '.':
			if pendingBond != 0 {
				return nil, errors.InvalidSMILES("bond symbol before fragment separator").
					WithDetail(posDetail(smiles, i))
			}
			prev = -1
			i++

		case c >= '0' && c <= '9':
			if prev < 0 {
				return nil, errors.InvalidSMILES("ring closure before any atom").
					WithDetail(posDetail(smiles, i))
			}
			if err := g.ringClosure(int(c-'0'), prev, &pendingBond, ringBonds); err != nil {
				return nil, err
			}
			i++

		case c == '%':
			if i+2 >= len(smiles) || !isDigit(smiles[i+1]) || !isDigit(smiles[i+2]) {
				return nil, errors.InvalidSMILES("%% ring closure requires two digits").
					WithDetail(posDetail(smiles, i))
			}
			if prev < 0 {
				return nil, errors.InvalidSMILES("ring closure before any atom").
					WithDetail(posDetail(smiles, i))
			}
			n := int(smiles[i+1]-'0')*10 + int(smiles[i+2]-'0')
			if err := g.ringClosure(n, prev, &pendingBond, ringBonds); err != nil {
				return nil, err
			}
			i += 3

		case c == '[':
			end := strings.IndexByte(smiles[i:], ']')
			if end < 0 {
				return nil, errors.InvalidSMILES("unclosed bracket atom").
					WithDetail(posDetail(smiles, i))
			}
			atom, err := parseBracketAtom(smiles[i+1 : i+end])
			if err != nil {
				return nil, err.WithDetail(posDetail(smiles, i))
			}
			idx := g.addAtom(atom)
			if prev >= 0 {
				g.addParsedBond(prev, idx, pendingBond)
			}
			pendingBond = 0
			prev = idx
			i += end + 1

		default:
			atom, width, err := parseOrganicAtom(smiles[i:])
			if err != nil {
				return nil, err.WithDetail(posDetail(smiles, i))
			}
			idx := g.addAtom(atom)
			if prev >= 0 {
				g.addParsedBond(prev, idx, pendingBond)
			}
			pendingBond = 0
			prev = idx
			i += width
		}
	}

	if len(branchStack) != 0 {
		return nil, errors.InvalidSMILES("unclosed parenthesis")
	}
	if pendingBond != 0 {
		return nil, errors.InvalidSMILES("dangling bond symbol at end of input")
	}
	if len(ringBonds) != 0 {
		return nil, errors.InvalidSMILES("unpaired ring-closure digit")
	}
	if len(g.Atoms) == 0 {
		return nil, errors.InvalidSMILES("SMILES contains no atoms")
	}

	g.buildAdjacency()
	g.perceiveRings()
	return g, nil
}

func posDetail(smiles string, i int) string {
	return fmt.Sprintf("position %d in %q", i, smiles)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseOrganicAtom reads an organic-subset atom (Cl and Br are two bytes) at
// the start of s and returns the atom plus the number of bytes consumed.
func parseOrganicAtom(s string) (Atom, int, *errors.AppError) {
	c := s[0]

	// Aromatic organic subset.
	if c == 'b' || c == 'c' || c == 'n' || c == 'o' || c == 'p' || c == 's' {
		return Atom{Symbol: strings.ToUpper(string(c)), Aromatic: true, ExplicitH: -1}, 1, nil
	}

	// Two-letter halogens take precedence over B and C.
	if len(s) >= 2 {
		two := s[:2]
		if two == "Cl" || two == "Br" {
			return Atom{Symbol: two, ExplicitH: -1}, 2, nil
		}
	}

	sym := string(c)
	if organicSubset[sym] {
		return Atom{Symbol: sym, ExplicitH: -1}, 1, nil
	}

	return Atom{}, 0, errors.InvalidSMILES(fmt.Sprintf("unexpected character %q", string(c)))
}

// parseBracketAtom parses the interior of a bracket atom, e.g. "nH", "NH3+",
// "13CH4", "O-", "Fe+2".  Chirality markers and atom-class suffixes are
// consumed and discarded.
func parseBracketAtom(body string) (Atom, *errors.AppError) {
	if body == "" {
		return Atom{}, errors.InvalidSMILES("empty bracket atom")
	}

	atom := Atom{ExplicitH: 0}
	i := 0

	// Isotope prefix.
	for i < len(body) && isDigit(body[i]) {
		atom.Isotope = atom.Isotope*10 + int(body[i]-'0')
		i++
	}
	if i >= len(body) {
		return Atom{}, errors.InvalidSMILES("bracket atom has no element symbol")
	}

	// Element symbol: uppercase + optional lowercase, or an aromatic
	// lowercase symbol.
	c := body[i]
	switch {
	case c >= 'A' && c <= 'Z':
		sym := string(c)
		i++
		if i < len(body) && body[i] >= 'a' && body[i] <= 'z' {
			// Only extend when the two-letter symbol is a known element;
			// otherwise the lowercase letter belongs to what follows (e.g. [CH4]
			// never reaches here, but [Sc] vs [S c...] must not mis-split).
			two := sym + string(body[i])
			if _, ok := atomicMass[two]; ok {
				sym = two
				i++
			}
		}
		atom.Symbol = sym
	case c == 'b' || c == 'c' || c == 'n' || c == 'o' || c == 'p' || c == 's':
		atom.Symbol = strings.ToUpper(string(c))
		atom.Aromatic = true
		i++
	case c == 'H':
		atom.Symbol = "H"
		i++
	case c == '*':
		atom.Symbol = "*"
		i++
	default:
		return Atom{}, errors.InvalidSMILES(fmt.Sprintf("invalid element symbol starting with %q", string(c)))
	}

	// Chirality markers: @ or @@ (extended forms like @TH1 are not supported).
	for i < len(body) && body[i] == '@' {
		i++
	}

	// Hydrogen count.
	if i < len(body) && body[i] == 'H' && atom.Symbol != "H" {
		i++
		atom.ExplicitH = 1
		if i < len(body) && isDigit(body[i]) {
			atom.ExplicitH = int(body[i] - '0')
			i++
		}
	}

	// Charge: +, -, ++, --, +2, -3.
	if i < len(body) && (body[i] == '+' || body[i] == '-') {
		sign := 1
		if body[i] == '-' {
			sign = -1
		}
		mark := body[i]
		count := 1
		i++
		for i < len(body) && body[i] == mark {
			count++
			i++
		}
		if i < len(body) && isDigit(body[i]) {
			count = int(body[i] - '0')
			i++
		}
		atom.Charge = sign * count
	}

	// Atom class suffix ":n" is parsed and ignored.
	if i < len(body) && body[i] == ':' {
		i++
		for i < len(body) && isDigit(body[i]) {
			i++
		}
	}

	if i != len(body) {
		return Atom{}, errors.InvalidSMILES(fmt.Sprintf("trailing characters %q in bracket atom", body[i:]))
	}
	return atom, nil
}

func (g *Graph) addAtom(a Atom) int {
	g.Atoms = append(g.Atoms, a)
	return len(g.Atoms) - 1
}

// addParsedBond appends a bond between from and to using the pending bond
// symbol.  With no explicit symbol, a bond between two aromatic atoms is
// aromatic; everything else is single.
func (g *Graph) addParsedBond(from, to int, symbol byte) {
	b := Bond{From: from, To: to, Order: 1}
	switch symbol {
	case '=':
		b.Order = 2
	case '#':
		b.Order = 3
	case ':':
		b.Aromatic = true
	case 0:
		if g.Atoms[from].Aromatic && g.Atoms[to].Aromatic {
			b.Aromatic = true
		}
	}
	g.Bonds = append(g.Bonds, b)
}

// ringClosure opens or closes ring bond n at the current atom.
func (g *Graph) ringClosure(n, current int, pendingBond *byte, open map[int]ringRef) *errors.AppError {
	ref, ok := open[n]
	if !ok {
		open[n] = ringRef{atom: current, bond: *pendingBond}
		*pendingBond = 0
		return nil
	}
	delete(open, n)

	if ref.atom == current {
		return errors.InvalidSMILES(fmt.Sprintf("ring closure %d bonds an atom to itself", n))
	}

	// The bond symbol may be written at either end; they must agree when both
	// are present.
	symbol := ref.bond
	if *pendingBond != 0 {
		if symbol != 0 && symbol != *pendingBond {
			return errors.InvalidSMILES(fmt.Sprintf("conflicting bond symbols on ring closure %d", n))
		}
		symbol = *pendingBond
	}
	*pendingBond = 0

	g.addParsedBond(ref.atom, current, symbol)
	return nil
}

// buildAdjacency indexes incident bonds per atom.
func (g *Graph) buildAdjacency() {
	g.adj = make([][]int, len(g.Atoms))
	for bi, b := range g.Bonds {
		g.adj[b.From] = append(g.adj[b.From], bi)
		g.adj[b.To] = append(g.adj[b.To], bi)
	}
}

// otherEnd returns the atom on the far side of bond bi from atom ai.
func (g *Graph) otherEnd(bi, ai int) int {
	if g.Bonds[bi].From == ai {
		return g.Bonds[bi].To
	}
	return g.Bonds[bi].From
}

// perceiveRings computes a cycle basis via a BFS spanning forest: every
// non-tree bond closes exactly one cycle through tree paths.  The basis size
// equals the SSSR count for the simple fused systems drug-like molecules
// exhibit.  All bonds on basis cycles are flagged as ring bonds.
func (g *Graph) perceiveRings() {
	n := len(g.Atoms)
	parentBond := make([]int, n)
	parentAtom := make([]int, n)
	depth := make([]int, n)
	visited := make([]bool, n)
	for i := range parentBond {
		parentBond[i] = -1
		parentAtom[i] = -1
	}

	treeBond := make([]bool, len(g.Bonds))

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			a := queue[0]
			queue = queue[1:]
			for _, bi := range g.adj[a] {
				b := g.otherEnd(bi, a)
				if !visited[b] {
					visited[b] = true
					parentBond[b] = bi
					parentAtom[b] = a
					depth[b] = depth[a] + 1
					treeBond[bi] = true
					queue = append(queue, b)
				}
			}
		}
	}

	for bi, b := range g.Bonds {
		if treeBond[bi] {
			continue
		}
		// Walk both endpoints up to their lowest common ancestor.
		cycle := []int{bi}
		u, v := b.From, b.To
		for depth[u] > depth[v] {
			cycle = append(cycle, parentBond[u])
			u = parentAtom[u]
		}
		for depth[v] > depth[u] {
			cycle = append(cycle, parentBond[v])
			v = parentAtom[v]
		}
		for u != v {
			cycle = append(cycle, parentBond[u], parentBond[v])
			u = parentAtom[u]
			v = parentAtom[v]
		}
		for _, cbi := range cycle {
			g.Bonds[cbi].inRing = true
		}
		g.cycles = append(g.cycles, cycle)
	}
}

// cycleAtoms returns the distinct atom indices on a basis cycle.
func (g *Graph) cycleAtoms(cycle []int) []int {
	seen := make(map[int]bool, len(cycle)+1)
	var atoms []int
	for _, bi := range cycle {
		for _, ai := range []int{g.Bonds[bi].From, g.Bonds[bi].To} {
			if !seen[ai] {
				seen[ai] = true
				atoms = append(atoms, ai)
			}
		}
	}
	return atoms
}

// bondOrderSum is the valence consumed by explicit bonds at atom ai; aromatic
// bonds count 1.5.
func (g *Graph) bondOrderSum(ai int) float64 {
	var sum float64
	for _, bi := range g.adj[ai] {
		if g.Bonds[bi].Aromatic {
			sum += 1.5
		} else {
			sum += float64(g.Bonds[bi].Order)
		}
	}
	return sum
}

// ImplicitHydrogens returns the number of implicit hydrogens on atom ai.
// Bracket atoms use their written H count; organic-subset atoms fill up to
// the smallest permitted valence state that covers the bond sum.
func (g *Graph) ImplicitHydrogens(ai int) int {
	a := g.Atoms[ai]
	if a.ExplicitH >= 0 {
		return a.ExplicitH
	}

	consumed := int(math.Ceil(g.bondOrderSum(ai)))

	valences := extendedValences[a.Symbol]
	if valences == nil {
		v, ok := defaultValence[a.Symbol]
		if !ok {
			return 0
		}
		valences = []int{v}
	}

	for _, v := range valences {
		v += a.Charge
		if v >= consumed {
			return v - consumed
		}
	}
	return 0
}

// HydrogenCount returns the total hydrogen count (implicit plus bracket) on
// atom ai.
func (g *Graph) HydrogenCount(ai int) int {
	return g.ImplicitHydrogens(ai)
}

// heavyDegree returns the number of non-hydrogen neighbours of atom ai.
func (g *Graph) heavyDegree(ai int) int {
	d := 0
	for _, bi := range g.adj[ai] {
		if g.Atoms[g.otherEnd(bi, ai)].Symbol != "H" {
			d++
		}
	}
	return d
}

// hasDoubleBondTo reports whether atom ai carries a double bond to any
// neighbouring atom with the given symbol.
func (g *Graph) hasDoubleBondTo(ai int, symbol string) bool {
	for _, bi := range g.adj[ai] {
		if g.Bonds[bi].Order == 2 && g.Atoms[g.otherEnd(bi, ai)].Symbol == symbol {
			return true
		}
	}
	return false
}
