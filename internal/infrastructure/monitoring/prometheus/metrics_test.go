package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	m := NewMetrics()
	require.NotNil(t, m.Registry())

	m.ObserveHTTPRequest("POST", "/api/v1/screenings", 200, 40*time.Millisecond)
	m.ObserveScreening(mtypes.SourceLocal, true, 50*time.Millisecond)
	m.ObserveSourceAttempt(mtypes.SourceADMETLab3, false, 2*time.Second)
	m.ObserveSourceAttempt(mtypes.SourceLocal, true, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/screenings", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.ScreeningsTotal.WithLabelValues("local", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.SourceAttemptsTotal.WithLabelValues("admetlab3", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.SourceAttemptsTotal.WithLabelValues("local", "success")))
}

func TestMetrics_CacheObservations(t *testing.T) {
	m := NewMetrics()

	m.ObserveCacheMiss(mtypes.SourceADMETLab3)
	m.ObserveCacheHit(mtypes.SourceADMETLab3)
	m.ObserveCacheHit(mtypes.SourceADMETLab3)
	m.ObserveCacheHit(mtypes.SourcePubChem)

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.CacheHitsTotal.WithLabelValues("admetlab3")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.CacheMissesTotal.WithLabelValues("admetlab3")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.CacheHitsTotal.WithLabelValues("pubchem")))
	assert.Equal(t, 0.0, testutil.ToFloat64(
		m.CacheMissesTotal.WithLabelValues("pubchem")))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	m1 := NewMetrics()
	m2 := NewMetrics()
	assert.NotSame(t, m1.Registry(), m2.Registry())
}
