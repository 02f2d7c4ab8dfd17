package ats

import (
	"math"
	"strings"

	"github.com/jonathan/career-coach/internal/parsing"
	"github.com/jonathan/career-coach/internal/types"
)

// Penalty caps and defaults
const (
	maxLengthPenalty     = 0.3
	maxDensityPenalty    = 0.2
	formatFeaturePenalty = 0.15
	defaultPenaltyFactor = 1.0
	weightSumTolerance   = 1e-6
)

// Scorer scores text against a set of ATS system profiles. Profiles and the
// keyword list are immutable after construction; the scorer is pure and safe
// for concurrent use.
type Scorer struct {
	profiles []types.ATSSystemProfile
	keywords map[string]bool
}

// NewScorer creates a scorer from the configured profile set.
func NewScorer(set *types.ATSProfileSet) *Scorer {
	keywords := make(map[string]bool, len(set.Keywords))
	for _, k := range set.Keywords {
		keywords[strings.ToLower(k)] = true
	}
	return &Scorer{profiles: set.Profiles, keywords: keywords}
}

// Score computes per-system compatibility scores and their aggregate. When
// weights is nil the aggregate is the unweighted arithmetic mean; otherwise
// it is the weighted mean and the weights must cover every profile and sum
// to 1.0, failing with WeightsError otherwise.
func (s *Scorer) Score(text string, weights map[string]float64) (*types.ATSScoreSet, error) {
	if weights != nil {
		if err := s.validateWeights(weights); err != nil {
			return nil, err
		}
	}

	content := visibleText(text)
	tokens := parsing.Tokens(content)
	density := s.keywordDensity(tokens)
	features := detectFormatFeatures(text)

	perSystem := make(map[string]float64, len(s.profiles))
	aggregate := 0.0
	for i := range s.profiles {
		p := &s.profiles[i]
		score := s.scoreProfile(p, len(content), density, features)
		perSystem[p.Name] = score
		if weights != nil {
			aggregate += score * weights[p.Name]
		} else {
			aggregate += score
		}
	}
	if weights == nil && len(s.profiles) > 0 {
		aggregate /= float64(len(s.profiles))
	}

	return &types.ATSScoreSet{PerSystem: perSystem, Aggregate: clamp01(aggregate)}, nil
}

func (s *Scorer) scoreProfile(p *types.ATSSystemProfile, length int, density float64, features map[string]bool) float64 {
	score := 1.0

	// Over-length penalty only; no bonus for being short.
	if length > p.MaxLength {
		excess := float64(length-p.MaxLength) / float64(p.MaxLength)
		score -= math.Min(maxLengthPenalty, excess)
	}

	factor := p.PenaltyFactor
	if factor == 0 {
		factor = defaultPenaltyFactor
	}
	score -= math.Min(maxDensityPenalty, math.Abs(density-p.OptimalKeywordDensity)*factor)

	for _, feature := range p.UnsupportedFormatFeatures {
		if features[feature] {
			score -= formatFeaturePenalty
			break
		}
	}

	return clamp01(score)
}

func (s *Scorer) keywordDensity(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	matches := 0
	for _, tok := range tokens {
		if s.keywords[strings.ToLower(tok)] {
			matches++
		}
	}
	return float64(matches) / float64(len(tokens))
}

func (s *Scorer) validateWeights(weights map[string]float64) error {
	sum := 0.0
	for i := range s.profiles {
		w, ok := weights[s.profiles[i].Name]
		if !ok {
			return &WeightsError{Message: "missing weight for ATS system " + s.profiles[i].Name}
		}
		if w < 0 {
			return &WeightsError{Message: "negative weight for ATS system " + s.profiles[i].Name}
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return &WeightsError{Message: "ATS weights must sum to 1.0"}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
