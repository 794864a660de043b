// Package molecule defines all molecule-domain Data Transfer Objects,
// enumerations, and request/response structures used across every layer of the
// MolScreen platform.  No domain logic lives here — only plain data types that
// are safe to import from any layer without creating circular dependencies.
package molecule

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// PropertySet — physicochemical descriptor set
// ─────────────────────────────────────────────────────────────────────────────

// PropertySet holds the physicochemical descriptors a screening run operates
// on.  Values come either from a remote prediction API or from the local
// descriptor engine; the screening pipeline treats both identically.
type PropertySet struct {
	// MolecularWeight is the molecular weight in g/mol.
	MolecularWeight float64 `json:"molecular_weight"`

	// LogP is the octanol-water partition coefficient (Crippen-style estimate
	// when computed locally).
	LogP float64 `json:"log_p"`

	// HBondDonors is the number of hydrogen-bond donor groups (NH, OH).
	HBondDonors int `json:"h_bond_donors"`

	// HBondAcceptors is the number of hydrogen-bond acceptor groups (N, O).
	HBondAcceptors int `json:"h_bond_acceptors"`

	// TPSA is the topological polar surface area in Å².
	TPSA float64 `json:"tpsa"`

	// RotatableBonds is the number of freely rotatable single bonds.
	RotatableBonds int `json:"rotatable_bonds"`

	// AromaticRings is the number of aromatic rings.
	AromaticRings int `json:"aromatic_rings"`

	// RingCount is the total number of rings (SSSR size).
	RingCount int `json:"ring_count"`

	// HeavyAtoms is the number of non-hydrogen atoms.
	HeavyAtoms int `json:"heavy_atoms"`
}

// ─────────────────────────────────────────────────────────────────────────────
// EndpointScores — raw predicted ADMET endpoint values
// ─────────────────────────────────────────────────────────────────────────────

// EndpointScores carries the raw numeric predictions returned by an ADMET
// prediction source.  Probability fields are in [0, 1]; a nil pointer means
// the source did not report the endpoint, in which case the classifier falls
// back to descriptor heuristics.
type EndpointScores struct {
	HIAProbability     *float64 `json:"hia_probability,omitempty"`
	BBBProbability     *float64 `json:"bbb_probability,omitempty"`
	HERGProbability    *float64 `json:"herg_probability,omitempty"`
	CYP3A4Probability  *float64 `json:"cyp3a4_probability,omitempty"`
	CYP2D6Probability  *float64 `json:"cyp2d6_probability,omitempty"`
	CYP2C9Probability  *float64 `json:"cyp2c9_probability,omitempty"`
	HepatotoxicityProb *float64 `json:"hepatotoxicity_probability,omitempty"`
	AmesProbability    *float64 `json:"ames_probability,omitempty"`

	// LD50 is the predicted rat oral LD50 in mg/kg.
	LD50 *float64 `json:"ld50,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Rule evaluation results
// ─────────────────────────────────────────────────────────────────────────────

// RuleCheck is a single threshold comparison inside a rule set, carried fully
// resolved so presentation layers can render it without recomputation.
type RuleCheck struct {
	Name      string  `json:"name"`
	Observed  float64 `json:"observed"`
	Threshold float64 `json:"threshold"`
	Passed    bool    `json:"passed"`
}

// RuleReport is the outcome of evaluating one drug-likeness rule set.
type RuleReport struct {
	// RuleSet is the rule table identifier: "lipinski", "veber", or "egan".
	RuleSet string `json:"rule_set"`

	Checks     []RuleCheck `json:"checks"`
	Violations int         `json:"violations"`

	// Passes is the strict verdict: zero violations.
	Passes bool `json:"passes"`

	// Acceptable is the tolerant verdict used by the classic Lipinski
	// formulation: at most one violation.
	Acceptable bool `json:"acceptable"`
}

// ─────────────────────────────────────────────────────────────────────────────
// ADMET classification
// ─────────────────────────────────────────────────────────────────────────────

// RiskLevel is a categorical ADMET risk label.
type RiskLevel string

const (
	RiskFavorable   RiskLevel = "favorable"
	RiskModerate    RiskLevel = "moderate"
	RiskUnfavorable RiskLevel = "unfavorable"
	RiskUnknown     RiskLevel = "unknown"
)

// ADMETLabel classifies one ADMET endpoint.
type ADMETLabel struct {
	// Endpoint is the endpoint identifier: "hia", "bbb", "herg", "cyp",
	// "hepatotoxicity", "ames", "ld50".
	Endpoint string `json:"endpoint"`

	Level RiskLevel `json:"level"`

	// Verdict is a short human-readable rendering of the label, e.g.
	// "high absorption" or "non-inhibitor".
	Verdict string `json:"verdict"`

	// Score is the numeric value the label was derived from, when available.
	Score *float64 `json:"score,omitempty"`

	// Heuristic is true when the label came from descriptor heuristics rather
	// than a predicted probability.
	Heuristic bool `json:"heuristic"`
}

// ADMETProfile groups all endpoint labels for one molecule.
type ADMETProfile struct {
	Labels []ADMETLabel `json:"labels"`
}

// Label returns the label for the given endpoint, or nil when absent.
func (p *ADMETProfile) Label(endpoint string) *ADMETLabel {
	for i := range p.Labels {
		if p.Labels[i].Endpoint == endpoint {
			return &p.Labels[i]
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// ScreeningReport — the transient per-request analysis record
// ─────────────────────────────────────────────────────────────────────────────

// SourceName identifies a property/prediction data source.
type SourceName string

const (
	SourceADMETLab3 SourceName = "admetlab3"
	SourceADMETLab2 SourceName = "admetlab2"
	SourcePubChem   SourceName = "pubchem"
	SourceLocal     SourceName = "local"
	SourceDemo      SourceName = "demo"
)

// SourceWarning records a data-source failure that caused the fallback chain
// to degrade to the next source.
type SourceWarning struct {
	Source  SourceName `json:"source"`
	Message string     `json:"message"`
}

// ScreeningReport is the complete result of one screening request.  Reports
// are recomputed per request and never persisted.
type ScreeningReport struct {
	ID string `json:"id"`

	// SMILES is the input as submitted; NormalizedSMILES is the whitespace-
	// trimmed, ring-closure-validated form used as the cache key.
	SMILES           string `json:"smiles"`
	NormalizedSMILES string `json:"normalized_smiles"`
	MolecularFormula string `json:"molecular_formula,omitempty"`

	Properties PropertySet    `json:"properties"`
	Scores     EndpointScores `json:"scores"`

	Lipinski RuleReport `json:"lipinski"`
	Veber    RuleReport `json:"veber"`
	Egan     RuleReport `json:"egan"`

	ADMET ADMETProfile `json:"admet"`

	// Source is the data source that ultimately supplied the property values.
	Source   SourceName      `json:"source"`
	Warnings []SourceWarning `json:"warnings,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// ExampleMolecule is a shortcut entry offered by the web form.
type ExampleMolecule struct {
	Name        string `json:"name"`
	SMILES      string `json:"smiles"`
	Description string `json:"description,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// API request/response envelopes
// ─────────────────────────────────────────────────────────────────────────────

// ScreeningRequest is the JSON body of POST /api/v1/screenings.
type ScreeningRequest struct {
	SMILES string `json:"smiles" binding:"required"`

	// Source optionally pins the request to a single data source instead of
	// the configured fallback chain ("local", "pubchem", ...).
	Source string `json:"source,omitempty"`
}

// ErrorDetail provides structured error information for API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
