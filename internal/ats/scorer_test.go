package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/types"
)

func testProfileSet() *types.ATSProfileSet {
	return &types.ATSProfileSet{
		Profiles: []types.ATSSystemProfile{
			{
				Name:                      "workday",
				MaxLength:                 100,
				OptimalKeywordDensity:     0.5,
				UnsupportedFormatFeatures: []string{"tables", "images"},
			},
		},
		Keywords: []string{"go", "kubernetes"},
	}
}

func TestScore_CleanTextNoPenalties(t *testing.T) {
	s := NewScorer(testProfileSet())

	// Two tokens, one keyword: density exactly matches the optimum.
	got, err := s.Score("go tools", nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, got.PerSystem["workday"])
	assert.Equal(t, 1.0, got.Aggregate)
}

func TestScore_LengthPenaltyCapped(t *testing.T) {
	set := testProfileSet()
	set.Profiles[0].MaxLength = 10
	set.Profiles[0].OptimalKeywordDensity = 0
	set.Keywords = nil
	s := NewScorer(set)

	// 20 chars: 100% over the limit, penalty capped at 0.3.
	got, err := s.Score(strings.Repeat("ab cd ", 3)+"ef", nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, got.PerSystem["workday"], 1e-9)
}

func TestScore_DensityPenaltyCapped(t *testing.T) {
	set := testProfileSet()
	set.Profiles[0].OptimalKeywordDensity = 0
	s := NewScorer(set)

	// Every token is a keyword: density 1.0, deviation 1.0, capped at 0.2.
	got, err := s.Score("go kubernetes go", nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, got.PerSystem["workday"], 1e-9)
}

func TestScore_FormatFeaturePenalty(t *testing.T) {
	s := NewScorer(testProfileSet())

	got, err := s.Score("<table><tr><td>go tools</td></tr></table>", nil)
	require.NoError(t, err)
	// Single format-feature penalty even though only tables are present.
	assert.InDelta(t, 0.85, got.PerSystem["workday"], 1e-9)
}

func TestScore_FeaturePenaltyAppliedOnce(t *testing.T) {
	s := NewScorer(testProfileSet())

	// Both unsupported features present; the penalty is not stacked.
	got, err := s.Score(`<table><tr><td>go tools</td></tr></table><img src="x.png"/>`, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, got.PerSystem["workday"], 1e-9)
}

func TestScore_MarkupStrippedForLength(t *testing.T) {
	set := testProfileSet()
	set.Profiles[0].MaxLength = 10
	set.Profiles[0].UnsupportedFormatFeatures = nil
	set.Profiles[0].OptimalKeywordDensity = 0
	set.Keywords = nil
	s := NewScorer(set)

	// Markup is long but visible text is short; no length penalty.
	got, err := s.Score("<div><section><p>go tools</p></section></div>", nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.PerSystem["workday"])
}

func TestScore_WeightedAggregate(t *testing.T) {
	set := testProfileSet()
	set.Profiles = append(set.Profiles, types.ATSSystemProfile{
		Name:                  "greenhouse",
		MaxLength:             4, // "go tools" is 100% over, capped penalty
		OptimalKeywordDensity: 0.5,
	})
	s := NewScorer(set)

	got, err := s.Score("go tools", map[string]float64{"workday": 0.75, "greenhouse": 0.25})
	require.NoError(t, err)

	assert.Equal(t, 1.0, got.PerSystem["workday"])
	assert.InDelta(t, 0.7, got.PerSystem["greenhouse"], 1e-9)
	assert.InDelta(t, 0.75*1.0+0.25*0.7, got.Aggregate, 1e-9)
}

func TestScore_UnweightedMean(t *testing.T) {
	set := testProfileSet()
	set.Profiles = append(set.Profiles, types.ATSSystemProfile{
		Name:                  "greenhouse",
		MaxLength:             4,
		OptimalKeywordDensity: 0.5,
	})
	s := NewScorer(set)

	got, err := s.Score("go tools", nil)
	require.NoError(t, err)
	assert.InDelta(t, (1.0+0.7)/2, got.Aggregate, 1e-9)
}

func TestScore_InvalidWeights(t *testing.T) {
	s := NewScorer(testProfileSet())

	var weightsErr *WeightsError

	_, err := s.Score("go tools", map[string]float64{"workday": 0.9})
	assert.ErrorAs(t, err, &weightsErr, "weights must sum to 1.0")

	_, err = s.Score("go tools", map[string]float64{"unknown": 1.0})
	assert.ErrorAs(t, err, &weightsErr, "every profile needs a weight")

	_, err = s.Score("go tools", map[string]float64{"workday": -1.0})
	assert.ErrorAs(t, err, &weightsErr, "weights must be non-negative")
}

func TestDetectFormatFeatures_PlainText(t *testing.T) {
	assert.Nil(t, detectFormatFeatures("plain narrative with no markup"))

	found := detectFormatFeatures(`<header>x</header><svg></svg>`)
	assert.True(t, found["headers_footers"])
	assert.True(t, found["graphics"])
	assert.False(t, found["tables"])
}
