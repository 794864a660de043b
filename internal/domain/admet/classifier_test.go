package admet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

func fp(v float64) *float64 { return &v }

func TestClassifyHIA(t *testing.T) {
	tests := []struct {
		name      string
		p         *float64
		props     mtypes.PropertySet
		wantLevel mtypes.RiskLevel
		heuristic bool
	}{
		{"high probability", fp(0.92), mtypes.PropertySet{}, mtypes.RiskFavorable, false},
		{"band edge high", fp(0.7), mtypes.PropertySet{}, mtypes.RiskFavorable, false},
		{"moderate probability", fp(0.45), mtypes.PropertySet{}, mtypes.RiskModerate, false},
		{"low probability", fp(0.1), mtypes.PropertySet{}, mtypes.RiskUnfavorable, false},
		{"heuristic pass", nil, mtypes.PropertySet{TPSA: 63.6, HBondDonors: 1}, mtypes.RiskFavorable, true},
		{"heuristic polar fail", nil, mtypes.PropertySet{TPSA: 180, HBondDonors: 2}, mtypes.RiskUnfavorable, true},
		{"heuristic donor fail", nil, mtypes.PropertySet{TPSA: 80, HBondDonors: 7}, mtypes.RiskUnfavorable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := classifyHIA(tt.p, tt.props)
			assert.Equal(t, EndpointHIA, label.Endpoint)
			assert.Equal(t, tt.wantLevel, label.Level)
			assert.Equal(t, tt.heuristic, label.Heuristic)
		})
	}
}

func TestClassifyBBB_Heuristic(t *testing.T) {
	small := mtypes.PropertySet{MolecularWeight: 194.19, TPSA: 58.4}
	label := classifyBBB(nil, small)
	assert.Equal(t, mtypes.RiskFavorable, label.Level)
	assert.True(t, label.Heuristic)

	large := mtypes.PropertySet{MolecularWeight: 520, TPSA: 58.4}
	assert.Equal(t, mtypes.RiskUnfavorable, classifyBBB(nil, large).Level)
}

func TestClassifyHERG(t *testing.T) {
	assert.Equal(t, mtypes.RiskUnfavorable, classifyHERG(fp(0.85)).Level)
	assert.Equal(t, mtypes.RiskModerate, classifyHERG(fp(0.5)).Level)
	assert.Equal(t, mtypes.RiskFavorable, classifyHERG(fp(0.05)).Level)
	assert.Equal(t, mtypes.RiskUnknown, classifyHERG(nil).Level)
}

func TestClassifyCYP(t *testing.T) {
	t.Run("all isoforms missing", func(t *testing.T) {
		label := classifyCYP(mtypes.EndpointScores{})
		assert.Equal(t, mtypes.RiskUnknown, label.Level)
	})

	t.Run("non-inhibitor", func(t *testing.T) {
		label := classifyCYP(mtypes.EndpointScores{
			CYP3A4Probability: fp(0.2),
			CYP2D6Probability: fp(0.1),
			CYP2C9Probability: fp(0.3),
		})
		assert.Equal(t, mtypes.RiskFavorable, label.Level)
		require.NotNil(t, label.Score)
		assert.Equal(t, 0.3, *label.Score)
	})

	t.Run("flagged isoforms named", func(t *testing.T) {
		label := classifyCYP(mtypes.EndpointScores{
			CYP3A4Probability: fp(0.8),
			CYP2D6Probability: fp(0.2),
			CYP2C9Probability: fp(0.6),
		})
		assert.Equal(t, mtypes.RiskUnfavorable, label.Level)
		assert.Contains(t, label.Verdict, "CYP3A4")
		assert.Contains(t, label.Verdict, "CYP2C9")
		assert.NotContains(t, label.Verdict, "CYP2D6")
	})

	t.Run("partial predictions still classify", func(t *testing.T) {
		label := classifyCYP(mtypes.EndpointScores{CYP2D6Probability: fp(0.1)})
		assert.Equal(t, mtypes.RiskFavorable, label.Level)
	})
}

func TestClassifyAmes(t *testing.T) {
	assert.Equal(t, mtypes.RiskUnfavorable, classifyAmes(fp(0.5)).Level)
	assert.Equal(t, mtypes.RiskFavorable, classifyAmes(fp(0.49)).Level)
	assert.Equal(t, mtypes.RiskUnknown, classifyAmes(nil).Level)
}

func TestClassifyLD50(t *testing.T) {
	tests := []struct {
		ld50        float64
		wantLevel   mtypes.RiskLevel
		wantVerdict string
	}{
		{12, mtypes.RiskUnfavorable, "high acute toxicity"},
		{250, mtypes.RiskModerate, "moderate acute toxicity"},
		{1500, mtypes.RiskFavorable, "low acute toxicity"},
		{8000, mtypes.RiskFavorable, "practically non-toxic"},
	}
	for _, tt := range tests {
		label := classifyLD50(fp(tt.ld50))
		assert.Equal(t, tt.wantLevel, label.Level)
		assert.Equal(t, tt.wantVerdict, label.Verdict)
	}
	assert.Equal(t, mtypes.RiskUnknown, classifyLD50(nil).Level)
}

func TestClassify_FullProfile(t *testing.T) {
	scores := mtypes.EndpointScores{
		HIAProbability:     fp(0.95),
		HERGProbability:    fp(0.1),
		CYP3A4Probability:  fp(0.2),
		HepatotoxicityProb: fp(0.4),
		AmesProbability:    fp(0.1),
		LD50:               fp(200),
	}
	props := mtypes.PropertySet{MolecularWeight: 180.16, TPSA: 63.6, HBondDonors: 1}

	profile := Classify(scores, props)
	require.Len(t, profile.Labels, 7)

	bbb := profile.Label(EndpointBBB)
	require.NotNil(t, bbb)
	assert.True(t, bbb.Heuristic, "missing BBB prediction falls back to descriptors")

	hia := profile.Label(EndpointHIA)
	require.NotNil(t, hia)
	assert.False(t, hia.Heuristic)
	assert.Equal(t, mtypes.RiskFavorable, hia.Level)

	hep := profile.Label(EndpointHepatotoxicity)
	require.NotNil(t, hep)
	assert.Equal(t, mtypes.RiskModerate, hep.Level)

	assert.Nil(t, profile.Label("unknown-endpoint"))
}
