package types

import "fmt"

// ATSSystemProfile describes the parsing quirks of one applicant tracking
// system. Immutable configuration, loaded once at startup.
type ATSSystemProfile struct {
	Name                      string   `json:"name"`
	MaxLength                 int      `json:"max_length"`
	OptimalKeywordDensity     float64  `json:"optimal_keyword_density"`
	PenaltyFactor             float64  `json:"penalty_factor,omitempty"`
	UnsupportedFormatFeatures []string `json:"unsupported_format_features,omitempty"`
}

// Validate checks the profile's configured values.
func (p *ATSSystemProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("ats profile: name is required")
	}
	if p.MaxLength <= 0 {
		return fmt.Errorf("ats profile %s: max_length must be positive", p.Name)
	}
	if p.OptimalKeywordDensity < 0 || p.OptimalKeywordDensity > 1 {
		return fmt.Errorf("ats profile %s: optimal_keyword_density out of range: %v", p.Name, p.OptimalKeywordDensity)
	}
	if p.PenaltyFactor < 0 {
		return fmt.Errorf("ats profile %s: penalty_factor must be non-negative", p.Name)
	}
	return nil
}

// ATSProfileSet bundles the configured system profiles with the shared keyword
// list used to compute keyword density.
type ATSProfileSet struct {
	Profiles []ATSSystemProfile `json:"profiles"`
	Keywords []string           `json:"keywords"`
}

// ATSScoreSet holds per-system compatibility scores and their aggregate.
type ATSScoreSet struct {
	PerSystem map[string]float64 `json:"per_system"`
	Aggregate float64            `json:"aggregate"`
}
