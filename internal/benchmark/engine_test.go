package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/types"
)

var testKey = types.BenchmarkKey{Industry: "technology", Role: "engineer", Seniority: "senior"}

type staticProvider struct {
	tables map[types.BenchmarkKey]*types.BenchmarkThresholds
}

func (p *staticProvider) GetThresholds(key types.BenchmarkKey) (*types.BenchmarkThresholds, error) {
	table, ok := p.tables[key]
	if !ok {
		return nil, &DataUnavailableError{Key: key}
	}
	return table, nil
}

func newTestEngine() *Engine {
	return NewEngine(&staticProvider{
		tables: map[types.BenchmarkKey]*types.BenchmarkThresholds{
			testKey: {
				Key: testKey,
				Dimensions: map[string][]float64{
					types.DimContentQuality: {0.85, 0.88, 0.91, 0.94, 0.97},
				},
			},
		},
	})
}

func TestPercentile_ThresholdBands(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		score      float64
		percentile int
		method     types.ResolutionMethod
	}{
		{1.00, 99, types.ResolutionThresholdMatch},
		{0.97, 99, types.ResolutionThresholdMatch}, // inclusive boundary
		{0.969, 95, types.ResolutionThresholdMatch},
		{0.94, 95, types.ResolutionThresholdMatch},
		{0.91, 90, types.ResolutionThresholdMatch},
		{0.88, 85, types.ResolutionThresholdMatch},
		{0.85, 80, types.ResolutionThresholdMatch},
		{0.84, 67, types.ResolutionInterpolated},
		{0.50, 40, types.ResolutionInterpolated},
		{0.01, 1, types.ResolutionInterpolated},
		{0.0, 1, types.ResolutionInterpolated}, // floor never goes below 1
	}

	for _, tt := range tests {
		got, err := e.Percentile(types.DimContentQuality, tt.score, testKey)
		require.NoError(t, err, "score %v", tt.score)
		assert.Equal(t, tt.percentile, got.Percentile, "score %v", tt.score)
		assert.Equal(t, tt.method, got.Method, "score %v", tt.score)
	}
}

func TestPercentile_Monotonic(t *testing.T) {
	e := newTestEngine()

	prev := 0
	for score := 0.0; score <= 1.0; score += 0.005 {
		got, err := e.Percentile(types.DimContentQuality, score, testKey)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Percentile, prev, "score %v", score)
		prev = got.Percentile
	}
}

func TestPercentile_Idempotent(t *testing.T) {
	e := newTestEngine()

	first, err := e.Percentile(types.DimContentQuality, 0.72, testKey)
	require.NoError(t, err)
	second, err := e.Percentile(types.DimContentQuality, 0.72, testKey)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPercentile_DataUnavailable(t *testing.T) {
	e := newTestEngine()

	_, err := e.Percentile(types.DimContentQuality, 0.9, types.BenchmarkKey{Industry: "finance", Role: "analyst", Seniority: "junior"})
	var unavailable *DataUnavailableError
	assert.ErrorAs(t, err, &unavailable)

	_, err = e.Percentile("unknown_dimension", 0.9, testKey)
	assert.ErrorAs(t, err, &unavailable)
}

func TestWeightedOverall(t *testing.T) {
	weights := types.DefaultDimensionWeights()

	scores := map[string]float64{
		types.DimContentQuality:        1.0,
		types.DimStructureOptimization: 1.0,
		types.DimIndustryAlignment:     1.0,
		types.DimAchievementImpact:     1.0,
		types.DimCommunicationClarity:  1.0,
		types.DimPositioningAlignment:  1.0,
	}
	assert.InDelta(t, 1.0, WeightedOverall(scores, weights), 1e-9)

	// Partial score sets renormalize over the weights actually applied.
	partial := map[string]float64{
		types.DimContentQuality:       0.8,
		types.DimCommunicationClarity: 0.4,
	}
	want := (0.8*0.25 + 0.4*0.10) / 0.35
	assert.InDelta(t, want, WeightedOverall(partial, weights), 1e-9)

	assert.Zero(t, WeightedOverall(map[string]float64{"unknown": 0.5}, weights))
	assert.Zero(t, WeightedOverall(nil, weights))
}
