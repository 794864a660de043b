package screening

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/internal/infrastructure/prediction"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

const aspirin = "CC(=O)OC1=CC=CC=C1C(=O)O"

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, smiles string) (*prediction.Result, []mtypes.SourceWarning, error) {
	args := m.Called(ctx, smiles)
	var result *prediction.Result
	if args.Get(0) != nil {
		result = args.Get(0).(*prediction.Result)
	}
	var warnings []mtypes.SourceWarning
	if args.Get(1) != nil {
		warnings = args.Get(1).([]mtypes.SourceWarning)
	}
	return result, warnings, args.Error(2)
}

func (m *mockResolver) ResolveOne(ctx context.Context, name mtypes.SourceName, smiles string) (*prediction.Result, error) {
	args := m.Called(ctx, name, smiles)
	var result *prediction.Result
	if args.Get(0) != nil {
		result = args.Get(0).(*prediction.Result)
	}
	return result, args.Error(1)
}

func (m *mockResolver) Sources() []mtypes.SourceName {
	args := m.Called()
	return args.Get(0).([]mtypes.SourceName)
}

func fp(v float64) *float64 { return &v }

func aspirinResult(source mtypes.SourceName) *prediction.Result {
	return &prediction.Result{
		Source: source,
		Properties: mtypes.PropertySet{
			MolecularWeight: 180.16, LogP: 1.19,
			HBondDonors: 1, HBondAcceptors: 4,
			TPSA: 63.6, RotatableBonds: 3,
		},
		Scores: mtypes.EndpointScores{
			HIAProbability:  fp(0.98),
			HERGProbability: fp(0.02),
			LD50:            fp(200),
		},
	}
}

func newTestService(resolver Resolver) Service {
	return NewService(resolver, logging.NewNopLogger(), nil)
}

func TestService_Screen(t *testing.T) {
	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, aspirin).
		Return(aspirinResult(mtypes.SourceADMETLab3), []mtypes.SourceWarning(nil), nil)

	svc := newTestService(resolver)
	report, err := svc.Screen(context.Background(), mtypes.ScreeningRequest{SMILES: aspirin})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, aspirin, report.NormalizedSMILES)
	assert.Equal(t, "C9H8O4", report.MolecularFormula, "formula filled from local engine")
	assert.Equal(t, mtypes.SourceADMETLab3, report.Source)
	assert.False(t, report.GeneratedAt.IsZero())

	assert.True(t, report.Lipinski.Passes)
	assert.Equal(t, 0, report.Lipinski.Violations)
	assert.True(t, report.Veber.Passes)
	assert.True(t, report.Egan.Passes)

	hia := report.ADMET.Label("hia")
	require.NotNil(t, hia)
	assert.Equal(t, mtypes.RiskFavorable, hia.Level)

	// Remote response omitted structural counts; they come from the parser.
	assert.Equal(t, 1, report.Properties.RingCount)
	assert.Equal(t, 13, report.Properties.HeavyAtoms)

	resolver.AssertExpectations(t)
}

func TestService_Screen_NormalizesInput(t *testing.T) {
	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, aspirin).
		Return(aspirinResult(mtypes.SourceLocal), []mtypes.SourceWarning(nil), nil)

	svc := newTestService(resolver)
	report, err := svc.Screen(context.Background(), mtypes.ScreeningRequest{SMILES: "  " + aspirin + "  "})
	require.NoError(t, err)
	assert.Equal(t, aspirin, report.NormalizedSMILES)
}

func TestService_Screen_InvalidSMILES(t *testing.T) {
	resolver := &mockResolver{}
	svc := newTestService(resolver)

	_, err := svc.Screen(context.Background(), mtypes.ScreeningRequest{SMILES: "C1CC"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMoleculeInvalidSMILES))
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestService_Screen_CarriesWarnings(t *testing.T) {
	warnings := []mtypes.SourceWarning{
		{Source: mtypes.SourceADMETLab3, Message: "prediction request failed"},
	}
	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, aspirin).
		Return(aspirinResult(mtypes.SourceLocal), warnings, nil)

	svc := newTestService(resolver)
	report, err := svc.Screen(context.Background(), mtypes.ScreeningRequest{SMILES: aspirin})
	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, mtypes.SourceADMETLab3, report.Warnings[0].Source)
}

func TestService_Screen_PinnedSource(t *testing.T) {
	resolver := &mockResolver{}
	resolver.On("ResolveOne", mock.Anything, mtypes.SourceLocal, aspirin).
		Return(aspirinResult(mtypes.SourceLocal), nil)

	svc := newTestService(resolver)
	report, err := svc.Screen(context.Background(), mtypes.ScreeningRequest{SMILES: aspirin, Source: "local"})
	require.NoError(t, err)
	assert.Equal(t, mtypes.SourceLocal, report.Source)
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestService_Screen_PinnedSourceNotConfigured(t *testing.T) {
	resolver := &mockResolver{}
	resolver.On("ResolveOne", mock.Anything, mtypes.SourceName("pubchem"), aspirin).
		Return(nil, errors.Newf(errors.ErrCodeSourceUnavailable, "data source %q is not configured", "pubchem"))

	svc := newTestService(resolver)
	_, err := svc.Screen(context.Background(), mtypes.ScreeningRequest{SMILES: aspirin, Source: "pubchem"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceUnavailable))
}

func TestService_Screen_ChainExhausted(t *testing.T) {
	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, aspirin).
		Return(nil, []mtypes.SourceWarning{{Source: mtypes.SourceADMETLab3, Message: "down"}},
			errors.New(errors.ErrCodeSourceExhausted, "all prediction sources failed"))

	svc := newTestService(resolver)
	_, err := svc.Screen(context.Background(), mtypes.ScreeningRequest{SMILES: aspirin})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceExhausted))
}

func TestService_Examples(t *testing.T) {
	resolver := &mockResolver{}
	svc := newTestService(resolver)

	examples := svc.Examples()
	require.NotEmpty(t, examples)

	names := make(map[string]bool)
	for _, ex := range examples {
		assert.NotEmpty(t, ex.Name)
		assert.NotEmpty(t, ex.SMILES)
		names[ex.Name] = true
	}
	assert.True(t, names["Aspirin"])
	assert.True(t, names["Caffeine"])
}
