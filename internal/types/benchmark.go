package types

import "fmt"

// Benchmark dimension names used for elite percentile lookup.
const (
	DimContentQuality        = "content_quality"
	DimStructureOptimization = "structure_optimization"
	DimIndustryAlignment     = "industry_alignment"
	DimAchievementImpact     = "achievement_impact"
	DimCommunicationClarity  = "communication_clarity"
	DimPositioningAlignment  = "positioning_alignment"
	DimOverall               = "overall"
)

// ThresholdCount is the number of ascending score cut-points per dimension.
const ThresholdCount = 5

// PercentileBands maps threshold positions to percentiles: thresholds[i]
// corresponds to PercentileBands[i].
var PercentileBands = [ThresholdCount]int{80, 85, 90, 95, 99}

// ResolutionMethod describes how a percentile was resolved
type ResolutionMethod string

const (
	ResolutionThresholdMatch ResolutionMethod = "threshold_match"
	ResolutionInterpolated   ResolutionMethod = "interpolated"
)

// BenchmarkKey identifies a benchmark threshold set by industry, role and seniority.
type BenchmarkKey struct {
	Industry  string `json:"industry"`
	Role      string `json:"role"`
	Seniority string `json:"seniority"`
}

func (k BenchmarkKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Industry, k.Role, k.Seniority)
}

// BenchmarkThresholds holds the ascending 5-element cut-point arrays per
// dimension for one benchmark key. Loaded once at startup and never mutated.
type BenchmarkThresholds struct {
	Key        BenchmarkKey         `json:"key"`
	Dimensions map[string][]float64 `json:"dimensions"`
}

// Validate checks that every dimension has exactly ThresholdCount ascending
// cut-points in [0,1].
func (b *BenchmarkThresholds) Validate() error {
	if len(b.Dimensions) == 0 {
		return fmt.Errorf("benchmark %s: no dimensions configured", b.Key)
	}
	for dim, cuts := range b.Dimensions {
		if len(cuts) != ThresholdCount {
			return fmt.Errorf("benchmark %s: dimension %s has %d thresholds, want %d", b.Key, dim, len(cuts), ThresholdCount)
		}
		for i, c := range cuts {
			if c < 0 || c > 1 {
				return fmt.Errorf("benchmark %s: dimension %s threshold %d out of range: %v", b.Key, dim, i, c)
			}
			if i > 0 && c < cuts[i-1] {
				return fmt.Errorf("benchmark %s: dimension %s thresholds not ascending at %d", b.Key, dim, i)
			}
		}
	}
	return nil
}

// DimensionPercentile is the resolved percentile for one dimension score.
type DimensionPercentile struct {
	Dimension  string           `json:"dimension"`
	Score      float64          `json:"score"`
	Percentile int              `json:"percentile"`
	Method     ResolutionMethod `json:"resolution_method"`
}

// DefaultDimensionWeights returns the weights used to aggregate dimension
// scores into the overall benchmark score. This weighting deliberately differs
// from the quality analyzer's equal sub-score weighting.
func DefaultDimensionWeights() map[string]float64 {
	return map[string]float64{
		DimContentQuality:        0.25,
		DimStructureOptimization: 0.20,
		DimIndustryAlignment:     0.20,
		DimAchievementImpact:     0.15,
		DimCommunicationClarity:  0.10,
		DimPositioningAlignment:  0.10,
	}
}
