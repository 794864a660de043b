package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// maxResponseBytes bounds remote response bodies.
const maxResponseBytes = 4 << 20

// Alias lists for the descriptor fields of ADMETlab-style responses.  The
// v2 and v3 payloads disagree on casing and separators; extraction matches
// any alias after key normalisation.
var (
	aliasMW   = []string{"MW", "molecular_weight", "MolWt", "molweight"}
	aliasLogP = []string{"LogP", "clogp", "alogp", "xlogp", "xlogp3"}
	aliasHBD  = []string{"nHD", "HBD", "h_bond_donors", "HBondDonorCount", "donors"}
	aliasHBA  = []string{"nHA", "HBA", "h_bond_acceptors", "HBondAcceptorCount", "acceptors"}
	aliasTPSA = []string{"TPSA", "topological_polar_surface_area"}
	aliasRotB = []string{"nRot", "RotatableBonds", "rotatable_bonds", "RotatableBondCount", "nrotb"}

	aliasAromaticRings = []string{"nAromaticRings", "aromatic_rings", "nAR"}
	aliasRingCount     = []string{"nRing", "ring_count", "rings"}
	aliasHeavyAtoms    = []string{"nHeavy", "heavy_atoms", "HeavyAtomCount", "nheavyatom"}

	aliasHIA    = []string{"HIA", "hia_probability", "HIA_Hou"}
	aliasBBB    = []string{"BBB", "bbb_probability", "BBB_Martins"}
	aliasHERG   = []string{"hERG", "herg_probability", "hERG_blockers"}
	aliasCYP3A4 = []string{"CYP3A4-inh", "cyp3a4", "CYP3A4_inhibition"}
	aliasCYP2D6 = []string{"CYP2D6-inh", "cyp2d6", "CYP2D6_inhibition"}
	aliasCYP2C9 = []string{"CYP2C9-inh", "cyp2c9", "CYP2C9_inhibition"}
	aliasHepato = []string{"H-HT", "hepatotoxicity", "DILI", "dili_probability"}
	aliasAmes   = []string{"Ames", "ames_probability", "AMES"}
	aliasLD50   = []string{"LD50", "LD50_oral", "ld50_mgkg", "Rat_oral_LD50"}
)

// ADMETLabClient talks to an ADMETlab-style prediction endpoint: a single
// POST of {"smiles": "..."} returning a nested JSON document of descriptor
// values and endpoint probabilities.
type ADMETLabClient struct {
	name    mtypes.SourceName
	url     string
	httpCli *http.Client
	logger  logging.Logger
}

// NewADMETLabClient builds a client for one ADMETlab endpoint.  name selects
// the protocol generation label ("admetlab3" or "admetlab2"); both speak the
// same request shape.
func NewADMETLabClient(name mtypes.SourceName, url string, timeout time.Duration, log logging.Logger) *ADMETLabClient {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &ADMETLabClient{
		name:    name,
		url:     url,
		httpCli: &http.Client{Timeout: timeout},
		logger:  log.Named(string(name)),
	}
}

func (c *ADMETLabClient) Name() mtypes.SourceName {
	return c.name
}

func (c *ADMETLabClient) Fetch(ctx context.Context, smiles string) (*Result, error) {
	payload, err := json.Marshal(map[string]string{"smiles": smiles})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSourceUnavailable, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpCli.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSourceTimeout, "prediction request cancelled or timed out")
		}
		return nil, errors.Wrap(err, errors.ErrCodeSourceUnavailable, "prediction request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errors.Newf(errors.ErrCodeSourceRateLimited, "%s rate limited the request", c.name)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.ErrCodeSourceBadStatus, "%s returned status %d", c.name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSourceUnavailable, "failed to read response body")
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSourceParseError, "response is not valid JSON")
	}

	result, aerr := c.extract(doc)
	if aerr != nil {
		return nil, aerr
	}

	c.logger.Debug("prediction fetched",
		logging.String("smiles", smiles),
		logging.Duration("elapsed", time.Since(start)))
	return result, nil
}

// extract pulls the descriptor set and optional endpoint scores out of the
// decoded response document.  The six core descriptors are mandatory; any
// missing one fails the source so the chain can degrade.
func (c *ADMETLabClient) extract(doc interface{}) (*Result, *errors.AppError) {
	required := []struct {
		name    string
		aliases []string
		assign  func(*mtypes.PropertySet, float64)
	}{
		{"molecular weight", aliasMW, func(p *mtypes.PropertySet, v float64) { p.MolecularWeight = v }},
		{"logp", aliasLogP, func(p *mtypes.PropertySet, v float64) { p.LogP = v }},
		{"h-bond donors", aliasHBD, func(p *mtypes.PropertySet, v float64) { p.HBondDonors = roundCount(v) }},
		{"h-bond acceptors", aliasHBA, func(p *mtypes.PropertySet, v float64) { p.HBondAcceptors = roundCount(v) }},
		{"tpsa", aliasTPSA, func(p *mtypes.PropertySet, v float64) { p.TPSA = v }},
		{"rotatable bonds", aliasRotB, func(p *mtypes.PropertySet, v float64) { p.RotatableBonds = roundCount(v) }},
	}

	var props mtypes.PropertySet
	for _, field := range required {
		v, ok := findNumber(doc, field.aliases...)
		if !ok {
			return nil, errors.Newf(errors.ErrCodeSourceFieldMissing,
				"%s response is missing %s", c.name, field.name)
		}
		field.assign(&props, v)
	}

	if v, ok := findNumber(doc, aliasAromaticRings...); ok {
		props.AromaticRings = roundCount(v)
	}
	if v, ok := findNumber(doc, aliasRingCount...); ok {
		props.RingCount = roundCount(v)
	}
	if v, ok := findNumber(doc, aliasHeavyAtoms...); ok {
		props.HeavyAtoms = roundCount(v)
	}

	scores := mtypes.EndpointScores{
		HIAProbability:     probability(doc, aliasHIA),
		BBBProbability:     probability(doc, aliasBBB),
		HERGProbability:    probability(doc, aliasHERG),
		CYP3A4Probability:  probability(doc, aliasCYP3A4),
		CYP2D6Probability:  probability(doc, aliasCYP2D6),
		CYP2C9Probability:  probability(doc, aliasCYP2C9),
		HepatotoxicityProb: probability(doc, aliasHepato),
		AmesProbability:    probability(doc, aliasAmes),
	}
	if v, ok := findNumber(doc, aliasLD50...); ok && v > 0 {
		scores.LD50 = &v
	}

	return &Result{
		Source:     c.name,
		Properties: props,
		Scores:     scores,
	}, nil
}

// probability extracts a [0,1] score; out-of-range values are dropped rather
// than clamped, since they indicate the alias matched a different quantity.
func probability(doc interface{}, aliases []string) *float64 {
	v, ok := findNumber(doc, aliases...)
	if !ok || v < 0 || v > 1 {
		return nil
	}
	return &v
}

func roundCount(v float64) int {
	return int(math.Round(v))
}
