package types

// ImpactLevel classifies the magnitude of an achievement's outcome
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// Achievement represents a single Context-Action-Result claim extracted from
// narrative text. Context, Result and Quantification may be empty; Action is
// always present. Confidence is additive over the structural cues matched and
// never decreases when more cues match.
type Achievement struct {
	Context        string      `json:"context,omitempty"`
	Action         string      `json:"action"`
	Result         string      `json:"result,omitempty"`
	Quantification string      `json:"quantification,omitempty"`
	ImpactLevel    ImpactLevel `json:"impact_level"`
	Confidence     float64     `json:"confidence"`
	// Sentence is the source sentence the achievement was mined from
	Sentence string `json:"sentence"`
}

// Quantified reports whether the achievement carries a quantified result.
func (a *Achievement) Quantified() bool {
	return a.Quantification != ""
}
