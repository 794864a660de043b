// Package admet converts raw ADMET endpoint predictions into categorical risk
// labels.  Classification is pure threshold banding; when a source supplied no
// probability for an endpoint the classifier degrades to descriptor
// heuristics, marking the label as heuristic, or to an unknown label when no
// heuristic exists.
package admet

import (
	"fmt"
	"strings"

	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// Endpoint identifiers as they appear in ADMETLabel.Endpoint.
const (
	EndpointHIA            = "hia"
	EndpointBBB            = "bbb"
	EndpointHERG           = "herg"
	EndpointCYP            = "cyp"
	EndpointHepatotoxicity = "hepatotoxicity"
	EndpointAmes           = "ames"
	EndpointLD50           = "ld50"
)

// Probability bands shared by the three-level endpoints.
const (
	HighBand = 0.7
	LowBand  = 0.3

	// BinaryBand splits the two-level endpoints (CYP inhibition, Ames).
	BinaryBand = 0.5
)

// GHS-style acute oral toxicity cut points in mg/kg.
const (
	LD50HighToxicity     = 50.0
	LD50ModerateToxicity = 500.0
	LD50LowToxicity      = 5000.0
)

// Descriptor heuristic boundaries used when no probability is available.
const (
	hiaMaxTPSA = 131.6
	hiaMaxHBD  = 5

	bbbMaxWeight = 450.0
	bbbMaxTPSA   = 90.0
)

// Classify builds the full ADMET profile from predicted endpoint scores,
// falling back to descriptor heuristics where predictions are absent.
func Classify(scores mtypes.EndpointScores, props mtypes.PropertySet) mtypes.ADMETProfile {
	return mtypes.ADMETProfile{
		Labels: []mtypes.ADMETLabel{
			classifyHIA(scores.HIAProbability, props),
			classifyBBB(scores.BBBProbability, props),
			classifyHERG(scores.HERGProbability),
			classifyCYP(scores),
			classifyHepatotoxicity(scores.HepatotoxicityProb),
			classifyAmes(scores.AmesProbability),
			classifyLD50(scores.LD50),
		},
	}
}

func classifyHIA(p *float64, props mtypes.PropertySet) mtypes.ADMETLabel {
	label := mtypes.ADMETLabel{Endpoint: EndpointHIA, Score: p}
	if p != nil {
		switch {
		case *p >= HighBand:
			label.Level, label.Verdict = mtypes.RiskFavorable, "high absorption"
		case *p >= LowBand:
			label.Level, label.Verdict = mtypes.RiskModerate, "moderate absorption"
		default:
			label.Level, label.Verdict = mtypes.RiskUnfavorable, "low absorption"
		}
		return label
	}

	label.Heuristic = true
	if props.TPSA <= hiaMaxTPSA && props.HBondDonors <= hiaMaxHBD {
		label.Level, label.Verdict = mtypes.RiskFavorable, "high absorption (estimated)"
	} else {
		label.Level, label.Verdict = mtypes.RiskUnfavorable, "low absorption (estimated)"
	}
	return label
}

func classifyBBB(p *float64, props mtypes.PropertySet) mtypes.ADMETLabel {
	label := mtypes.ADMETLabel{Endpoint: EndpointBBB, Score: p}
	if p != nil {
		switch {
		case *p >= HighBand:
			label.Level, label.Verdict = mtypes.RiskFavorable, "likely to penetrate"
		case *p >= LowBand:
			label.Level, label.Verdict = mtypes.RiskModerate, "penetration uncertain"
		default:
			label.Level, label.Verdict = mtypes.RiskUnfavorable, "unlikely to penetrate"
		}
		return label
	}

	label.Heuristic = true
	if props.MolecularWeight < bbbMaxWeight && props.TPSA < bbbMaxTPSA {
		label.Level, label.Verdict = mtypes.RiskFavorable, "likely to penetrate (estimated)"
	} else {
		label.Level, label.Verdict = mtypes.RiskUnfavorable, "unlikely to penetrate (estimated)"
	}
	return label
}

func classifyHERG(p *float64) mtypes.ADMETLabel {
	label := mtypes.ADMETLabel{Endpoint: EndpointHERG, Score: p}
	if p == nil {
		label.Level, label.Verdict = mtypes.RiskUnknown, "no prediction available"
		return label
	}
	switch {
	case *p >= HighBand:
		label.Level, label.Verdict = mtypes.RiskUnfavorable, "high inhibition risk"
	case *p >= LowBand:
		label.Level, label.Verdict = mtypes.RiskModerate, "medium inhibition risk"
	default:
		label.Level, label.Verdict = mtypes.RiskFavorable, "low inhibition risk"
	}
	return label
}

// classifyCYP aggregates the three isoform predictions: any probability at or
// above the binary band flags the isoform, and the overall level is the worst
// isoform.
func classifyCYP(scores mtypes.EndpointScores) mtypes.ADMETLabel {
	isoforms := []struct {
		name string
		p    *float64
	}{
		{"CYP3A4", scores.CYP3A4Probability},
		{"CYP2D6", scores.CYP2D6Probability},
		{"CYP2C9", scores.CYP2C9Probability},
	}

	label := mtypes.ADMETLabel{Endpoint: EndpointCYP}
	var flagged []string
	var worst *float64
	seen := false
	for _, iso := range isoforms {
		if iso.p == nil {
			continue
		}
		seen = true
		if worst == nil || *iso.p > *worst {
			worst = iso.p
		}
		if *iso.p >= BinaryBand {
			flagged = append(flagged, iso.name)
		}
	}

	if !seen {
		label.Level, label.Verdict = mtypes.RiskUnknown, "no prediction available"
		return label
	}

	label.Score = worst
	if len(flagged) > 0 {
		label.Level = mtypes.RiskUnfavorable
		label.Verdict = fmt.Sprintf("likely inhibitor: %s", strings.Join(flagged, ", "))
	} else {
		label.Level, label.Verdict = mtypes.RiskFavorable, "non-inhibitor"
	}
	return label
}

func classifyHepatotoxicity(p *float64) mtypes.ADMETLabel {
	label := mtypes.ADMETLabel{Endpoint: EndpointHepatotoxicity, Score: p}
	if p == nil {
		label.Level, label.Verdict = mtypes.RiskUnknown, "no prediction available"
		return label
	}
	switch {
	case *p >= HighBand:
		label.Level, label.Verdict = mtypes.RiskUnfavorable, "high hepatotoxicity risk"
	case *p >= LowBand:
		label.Level, label.Verdict = mtypes.RiskModerate, "medium hepatotoxicity risk"
	default:
		label.Level, label.Verdict = mtypes.RiskFavorable, "low hepatotoxicity risk"
	}
	return label
}

func classifyAmes(p *float64) mtypes.ADMETLabel {
	label := mtypes.ADMETLabel{Endpoint: EndpointAmes, Score: p}
	if p == nil {
		label.Level, label.Verdict = mtypes.RiskUnknown, "no prediction available"
		return label
	}
	if *p >= BinaryBand {
		label.Level, label.Verdict = mtypes.RiskUnfavorable, "mutagenicity risk"
	} else {
		label.Level, label.Verdict = mtypes.RiskFavorable, "no mutagenicity signal"
	}
	return label
}

func classifyLD50(ld50 *float64) mtypes.ADMETLabel {
	label := mtypes.ADMETLabel{Endpoint: EndpointLD50, Score: ld50}
	if ld50 == nil {
		label.Level, label.Verdict = mtypes.RiskUnknown, "no prediction available"
		return label
	}
	switch {
	case *ld50 < LD50HighToxicity:
		label.Level, label.Verdict = mtypes.RiskUnfavorable, "high acute toxicity"
	case *ld50 < LD50ModerateToxicity:
		label.Level, label.Verdict = mtypes.RiskModerate, "moderate acute toxicity"
	case *ld50 < LD50LowToxicity:
		label.Level, label.Verdict = mtypes.RiskFavorable, "low acute toxicity"
	default:
		label.Level, label.Verdict = mtypes.RiskFavorable, "practically non-toxic"
	}
	return label
}
