// Package types provides type definitions for structured data used throughout the career-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// QualityLevel labels an overall quality score
type QualityLevel string

const (
	QualityExcellent QualityLevel = "excellent"
	QualityGood      QualityLevel = "good"
	QualityAdequate  QualityLevel = "adequate"
	QualityPoor      QualityLevel = "poor"
)

// Quality level band boundaries (inclusive on the lower bound of each band)
const (
	excellentFloor = 0.85
	goodFloor      = 0.65
	adequateFloor  = 0.45
)

// LevelForScore maps an overall score to its quality level.
// It is a pure function of the score; band floors are inclusive.
func LevelForScore(overall float64) QualityLevel {
	switch {
	case overall >= excellentFloor:
		return QualityExcellent
	case overall >= goodFloor:
		return QualityGood
	case overall >= adequateFloor:
		return QualityAdequate
	default:
		return QualityPoor
	}
}

// QualityScore represents the four sub-dimension scores for a single text
// response plus the derived overall score and level. All scores are in [0,1].
type QualityScore struct {
	Clarity            float64      `json:"clarity"`
	Specificity        float64      `json:"specificity"`
	AchievementDensity float64      `json:"achievement_density"`
	Quantification     float64      `json:"quantification"`
	Overall            float64      `json:"overall"`
	Level              QualityLevel `json:"quality_level"`
}

// QualityWeights holds the sub-dimension weights used to compute the overall score.
// These are distinct from the benchmark dimension weights in DimensionWeights.
type QualityWeights struct {
	Clarity            float64 `json:"clarity"`
	Specificity        float64 `json:"specificity"`
	AchievementDensity float64 `json:"achievement_density"`
	Quantification     float64 `json:"quantification"`
}

// DefaultQualityWeights returns the equal weighting used by the quality analyzer.
func DefaultQualityWeights() QualityWeights {
	return QualityWeights{
		Clarity:            0.25,
		Specificity:        0.25,
		AchievementDensity: 0.25,
		Quantification:     0.25,
	}
}
