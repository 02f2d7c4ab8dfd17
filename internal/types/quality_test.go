package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForScore_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  QualityLevel
	}{
		{1.0, QualityExcellent},
		{0.85, QualityExcellent}, // inclusive lower bound
		{0.849, QualityGood},
		{0.65, QualityGood},
		{0.649, QualityAdequate},
		{0.45, QualityAdequate},
		{0.449, QualityPoor},
		{0.0, QualityPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %v", tt.score)
	}
}

func TestDefaultQualityWeights_SumToOne(t *testing.T) {
	w := DefaultQualityWeights()
	sum := w.Clarity + w.Specificity + w.AchievementDensity + w.Quantification
	assert.InDelta(t, 1.0, sum, 1e-9)
}
