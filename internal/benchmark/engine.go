package benchmark

import (
	"math"

	"github.com/jonathan/career-coach/internal/types"
)

// Provider supplies threshold tables by benchmark key. Implementations must
// be safe for concurrent use; tables are immutable once loaded.
type Provider interface {
	GetThresholds(key types.BenchmarkKey) (*types.BenchmarkThresholds, error)
}

// Engine resolves dimension scores to elite percentiles. It is a pure
// function of its provider's configuration and has no mutable state.
type Engine struct {
	provider Provider
}

// NewEngine creates an engine backed by the given threshold provider.
func NewEngine(provider Provider) *Engine {
	return &Engine{provider: provider}
}

// Percentile resolves the percentile for a dimension score under the given
// key. The five ascending thresholds map to percentiles 80/85/90/95/99,
// checked from the highest threshold down; the first match wins. Scores below
// the lowest threshold resolve to max(1, floor(score*80)) with the
// `interpolated` method.
//
// Fails with DataUnavailableError when the (dimension, key) pair has no
// configured thresholds.
func (e *Engine) Percentile(dimension string, score float64, key types.BenchmarkKey) (*types.DimensionPercentile, error) {
	table, err := e.provider.GetThresholds(key)
	if err != nil || table == nil {
		return nil, &DataUnavailableError{Dimension: dimension, Key: key}
	}

	cuts, ok := table.Dimensions[dimension]
	if !ok || len(cuts) != types.ThresholdCount {
		return nil, &DataUnavailableError{Dimension: dimension, Key: key}
	}

	for i := types.ThresholdCount - 1; i >= 0; i-- {
		if score >= cuts[i] {
			return &types.DimensionPercentile{
				Dimension:  dimension,
				Score:      score,
				Percentile: types.PercentileBands[i],
				Method:     types.ResolutionThresholdMatch,
			}, nil
		}
	}

	// Below the 80th-percentile cut-point. The formula is carried over from
	// the source design as-is; it is not a true interpolation.
	p := int(math.Floor(score * 80))
	if p < 1 {
		p = 1
	}
	return &types.DimensionPercentile{
		Dimension:  dimension,
		Score:      score,
		Percentile: p,
		Method:     types.ResolutionInterpolated,
	}, nil
}

// WeightedOverall computes the weighted mean of dimension scores. Dimensions
// missing from the weight map are ignored; the result is normalized by the
// weight actually applied so partial score sets stay in [0,1].
func WeightedOverall(scores map[string]float64, weights map[string]float64) float64 {
	sum, applied := 0.0, 0.0
	for dim, score := range scores {
		w, ok := weights[dim]
		if !ok {
			continue
		}
		sum += score * w
		applied += w
	}
	if applied == 0 {
		return 0
	}
	return sum / applied
}
