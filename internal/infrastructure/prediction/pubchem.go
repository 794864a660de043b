package prediction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// pubchemProperties is the property list requested from PUG REST.
const pubchemProperties = "MolecularWeight,XLogP,HBondDonorCount,HBondAcceptorCount,TPSA,RotatableBondCount,MolecularFormula"

// PubChemClient resolves descriptors through the PubChem PUG REST API.
// PubChem carries no ADMET probability models, so results trigger the
// descriptor heuristics downstream.
type PubChemClient struct {
	baseURL string
	httpCli *http.Client
	logger  logging.Logger
}

// NewPubChemClient builds a client against the PUG REST base URL, e.g.
// "https://pubchem.ncbi.nlm.nih.gov/rest/pug".
func NewPubChemClient(baseURL string, timeout time.Duration, log logging.Logger) *PubChemClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &PubChemClient{
		baseURL: baseURL,
		httpCli: &http.Client{Timeout: timeout},
		logger:  log.Named("pubchem"),
	}
}

func (c *PubChemClient) Name() mtypes.SourceName {
	return mtypes.SourcePubChem
}

func (c *PubChemClient) Fetch(ctx context.Context, smiles string) (*Result, error) {
	endpoint := fmt.Sprintf("%s/compound/smiles/%s/property/%s/JSON",
		c.baseURL, url.PathEscape(smiles), pubchemProperties)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSourceUnavailable, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSourceTimeout, "pubchem request cancelled or timed out")
		}
		return nil, errors.Wrap(err, errors.ErrCodeSourceUnavailable, "pubchem request failed")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errors.Newf(errors.ErrCodeMoleculeNotFound, "pubchem has no record for this structure")
	case http.StatusServiceUnavailable, http.StatusTooManyRequests:
		return nil, errors.Newf(errors.ErrCodeSourceRateLimited, "pubchem throttled the request (status %d)", resp.StatusCode)
	default:
		return nil, errors.Newf(errors.ErrCodeSourceBadStatus, "pubchem returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSourceUnavailable, "failed to read response body")
	}

	// PUG REST wraps results in PropertyTable.Properties; numeric fields are
	// sometimes serialised as strings, so extraction goes through the generic
	// document walker instead of a rigid struct.
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSourceParseError, "pubchem response is not valid JSON")
	}

	var props mtypes.PropertySet
	required := []struct {
		name   string
		key    string
		assign func(float64)
	}{
		{"molecular weight", "MolecularWeight", func(v float64) { props.MolecularWeight = v }},
		{"h-bond donors", "HBondDonorCount", func(v float64) { props.HBondDonors = roundCount(v) }},
		{"h-bond acceptors", "HBondAcceptorCount", func(v float64) { props.HBondAcceptors = roundCount(v) }},
		{"tpsa", "TPSA", func(v float64) { props.TPSA = v }},
		{"rotatable bonds", "RotatableBondCount", func(v float64) { props.RotatableBonds = roundCount(v) }},
	}
	for _, field := range required {
		v, ok := findNumber(doc, field.key)
		if !ok {
			return nil, errors.Newf(errors.ErrCodeSourceFieldMissing,
				"pubchem response is missing %s", field.name)
		}
		field.assign(v)
	}

	// XLogP is absent for some inorganic and charged species.
	if v, ok := findNumber(doc, "XLogP"); ok {
		props.LogP = v
	} else {
		return nil, errors.New(errors.ErrCodeSourceFieldMissing, "pubchem response is missing xlogp")
	}

	result := &Result{
		Source:     mtypes.SourcePubChem,
		Properties: props,
	}
	if formula, ok := findString(doc, "MolecularFormula"); ok {
		result.Formula = formula
	}
	return result, nil
}
