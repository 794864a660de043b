package prediction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

const aspirin = "CC(=O)OC1=CC=CC=C1C(=O)O"

func testLogger() logging.Logger {
	return logging.NewNopLogger()
}

// admetlabResponse mimics the nested document shape of the real service.
func admetlabResponse() map[string]interface{} {
	return map[string]interface{}{
		"code": 0,
		"data": map[string]interface{}{
			"physicochemical": map[string]interface{}{
				"MW":   180.16,
				"LogP": 1.19,
				"nHD":  1,
				"nHA":  4,
				"TPSA": 63.6,
				"nRot": 3,
			},
			"absorption": map[string]interface{}{
				"HIA": 0.98,
			},
			"toxicity": map[string]interface{}{
				"hERG": 0.02,
				"Ames": 0.05,
				"LD50": 200.0,
			},
		},
	}
}

func TestADMETLabClient_Fetch(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(admetlabResponse())
	}))
	defer srv.Close()

	cli := NewADMETLabClient(mtypes.SourceADMETLab3, srv.URL, 5*time.Second, testLogger())
	result, err := cli.Fetch(context.Background(), aspirin)
	require.NoError(t, err)

	assert.Equal(t, aspirin, gotBody["smiles"])
	assert.Equal(t, mtypes.SourceADMETLab3, result.Source)
	assert.InDelta(t, 180.16, result.Properties.MolecularWeight, 0.01)
	assert.Equal(t, 1, result.Properties.HBondDonors)
	assert.Equal(t, 4, result.Properties.HBondAcceptors)
	assert.Equal(t, 3, result.Properties.RotatableBonds)

	require.NotNil(t, result.Scores.HIAProbability)
	assert.InDelta(t, 0.98, *result.Scores.HIAProbability, 1e-9)
	require.NotNil(t, result.Scores.LD50)
	assert.Equal(t, 200.0, *result.Scores.LD50)
	assert.Nil(t, result.Scores.BBBProbability, "endpoint absent from response")
}

func TestADMETLabClient_MissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"MW": 180.16})
	}))
	defer srv.Close()

	cli := NewADMETLabClient(mtypes.SourceADMETLab2, srv.URL, 5*time.Second, testLogger())
	_, err := cli.Fetch(context.Background(), aspirin)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceFieldMissing))
}

func TestADMETLabClient_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cli := NewADMETLabClient(mtypes.SourceADMETLab3, srv.URL, 5*time.Second, testLogger())
	_, err := cli.Fetch(context.Background(), aspirin)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceBadStatus))
}

func TestADMETLabClient_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cli := NewADMETLabClient(mtypes.SourceADMETLab3, srv.URL, 5*time.Second, testLogger())
	_, err := cli.Fetch(context.Background(), aspirin)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceRateLimited))
}

func TestPubChemClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/compound/smiles/")
		assert.Contains(t, r.URL.Path, "/property/")
		// PUG REST serialises MolecularWeight as a string.
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"PropertyTable": map[string]interface{}{
				"Properties": []map[string]interface{}{{
					"CID":                2244,
					"MolecularWeight":    "180.16",
					"XLogP":              1.2,
					"HBondDonorCount":    1,
					"HBondAcceptorCount": 4,
					"TPSA":               63.6,
					"RotatableBondCount": 3,
					"MolecularFormula":   "C9H8O4",
				}},
			},
		})
	}))
	defer srv.Close()

	cli := NewPubChemClient(srv.URL, 5*time.Second, testLogger())
	result, err := cli.Fetch(context.Background(), aspirin)
	require.NoError(t, err)

	assert.Equal(t, mtypes.SourcePubChem, result.Source)
	assert.InDelta(t, 180.16, result.Properties.MolecularWeight, 0.01)
	assert.InDelta(t, 1.2, result.Properties.LogP, 1e-9)
	assert.Equal(t, "C9H8O4", result.Formula)
	assert.Nil(t, result.Scores.HIAProbability, "pubchem carries no ADMET models")
}

func TestPubChemClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cli := NewPubChemClient(srv.URL, 5*time.Second, testLogger())
	_, err := cli.Fetch(context.Background(), "C1CC1CNC")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMoleculeNotFound))
}

func TestLocalSource(t *testing.T) {
	src := NewLocalSource()
	assert.Equal(t, mtypes.SourceLocal, src.Name())

	result, err := src.Fetch(context.Background(), aspirin)
	require.NoError(t, err)
	assert.InDelta(t, 180.16, result.Properties.MolecularWeight, 0.5)
	assert.Equal(t, "C9H8O4", result.Formula)
	assert.Nil(t, result.Scores.HIAProbability)

	_, err = src.Fetch(context.Background(), "((invalid")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMoleculeInvalidSMILES))
}

func TestDemoSource(t *testing.T) {
	src := NewDemoSource()

	t.Run("known molecule", func(t *testing.T) {
		result, err := src.Fetch(context.Background(), aspirin)
		require.NoError(t, err)
		assert.Equal(t, mtypes.SourceDemo, result.Source)
		assert.Equal(t, "C9H8O4", result.Formula)
		require.NotNil(t, result.Scores.HIAProbability)
	})

	t.Run("unknown molecule gets placeholder", func(t *testing.T) {
		result, err := src.Fetch(context.Background(), "CCCCCCCCCC")
		require.NoError(t, err)
		assert.Equal(t, mtypes.SourceDemo, result.Source)
		assert.Greater(t, result.Properties.MolecularWeight, 0.0)
		assert.Nil(t, result.Scores.HIAProbability)
	})
}

func TestChain_FallsThroughOnFailure(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failing.Close()

	chain := NewChain([]Source{
		NewADMETLabClient(mtypes.SourceADMETLab3, failing.URL, time.Second, testLogger()),
		NewLocalSource(),
	}, testLogger(), nil)

	result, warnings, err := chain.Resolve(context.Background(), aspirin)
	require.NoError(t, err)
	assert.Equal(t, mtypes.SourceLocal, result.Source)
	require.Len(t, warnings, 1)
	assert.Equal(t, mtypes.SourceADMETLab3, warnings[0].Source)
	assert.NotEmpty(t, warnings[0].Message)
}

func TestChain_FirstSuccessWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(admetlabResponse())
	}))
	defer srv.Close()

	chain := NewChain([]Source{
		NewADMETLabClient(mtypes.SourceADMETLab3, srv.URL, time.Second, testLogger()),
		NewLocalSource(),
	}, testLogger(), nil)

	result, warnings, err := chain.Resolve(context.Background(), aspirin)
	require.NoError(t, err)
	assert.Equal(t, mtypes.SourceADMETLab3, result.Source)
	assert.Empty(t, warnings)
}

func TestChain_AllFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failing.Close()

	chain := NewChain([]Source{
		NewADMETLabClient(mtypes.SourceADMETLab3, failing.URL, time.Second, testLogger()),
	}, testLogger(), nil)

	_, warnings, err := chain.Resolve(context.Background(), aspirin)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceExhausted))
	assert.Len(t, warnings, 1)
}

type recordingObserver struct {
	attempts []string
}

func (o *recordingObserver) ObserveSourceAttempt(source mtypes.SourceName, success bool, _ time.Duration) {
	outcome := "ok"
	if !success {
		outcome = "fail"
	}
	o.attempts = append(o.attempts, string(source)+":"+outcome)
}

func TestChain_ObserverSeesAttempts(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failing.Close()

	obs := &recordingObserver{}
	chain := NewChain([]Source{
		NewADMETLabClient(mtypes.SourceADMETLab3, failing.URL, time.Second, testLogger()),
		NewDemoSource(),
	}, testLogger(), obs)

	_, _, err := chain.Resolve(context.Background(), aspirin)
	require.NoError(t, err)
	assert.Equal(t, []string{"admetlab3:fail", "demo:ok"}, obs.attempts)
}
