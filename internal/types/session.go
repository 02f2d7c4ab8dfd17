package types

import "time"

// Phase represents a stage of the coaching conversation.
type Phase string

const (
	PhaseIntroduction           Phase = "introduction"
	PhaseStoryDiscovery         Phase = "story_discovery"
	PhaseAchievementMining      Phase = "achievement_mining"
	PhaseQuantification         Phase = "quantification"
	PhasePsychologicalSynthesis Phase = "psychological_synthesis"
	PhaseCompletion             Phase = "completion"
)

// phaseOrder lists the phases in conversation sequence.
var phaseOrder = []Phase{
	PhaseIntroduction,
	PhaseStoryDiscovery,
	PhaseAchievementMining,
	PhaseQuantification,
	PhasePsychologicalSynthesis,
	PhaseCompletion,
}

// Phases returns the conversation phases in order.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// Index returns the position of the phase in the conversation sequence,
// or -1 for an unknown phase.
func (p Phase) Index() int {
	for i, phase := range phaseOrder {
		if phase == p {
			return i
		}
	}
	return -1
}

// Next returns the following phase in sequence. The second return value is
// false when p is terminal or unknown.
func (p Phase) Next() (Phase, bool) {
	idx := p.Index()
	if idx < 0 || idx >= len(phaseOrder)-1 {
		return p, false
	}
	return phaseOrder[idx+1], true
}

// Terminal reports whether the phase has no outgoing transitions.
func (p Phase) Terminal() bool {
	return p == PhaseCompletion
}

// ProgressPercentage returns the session progress implied by the phase,
// as an integer percentage in [0,100].
func (p Phase) ProgressPercentage() int {
	idx := p.Index()
	if idx < 0 {
		return 0
	}
	return int(float64(idx)/float64(len(phaseOrder)-1)*100 + 0.5)
}

// Turn is a single processed conversation turn. Immutable once created.
type Turn struct {
	ID           string        `json:"id"`
	Input        string        `json:"input"`
	Quality      QualityScore  `json:"quality_score"`
	Achievements []Achievement `json:"achievements,omitempty"`
	ATSScores    *ATSScoreSet  `json:"ats_scores,omitempty"`
	Phase        Phase         `json:"phase"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Session is the per-conversation mutable state. It is owned exclusively by
// the conversation controller and mutated only by processing a turn; turns
// are append-only.
type Session struct {
	ID                       string       `json:"id"`
	Phase                    Phase        `json:"phase"`
	Turns                    []Turn       `json:"turns"`
	ScoreHistory             []float64    `json:"score_history"`
	TurnsInPhase             int          `json:"turns_in_phase"`
	LowConfidenceProgression bool         `json:"low_confidence_progression"`
	Target                   BenchmarkKey `json:"target"`
	CreatedAt                time.Time    `json:"created_at"`
	UpdatedAt                time.Time    `json:"updated_at"`
	// Version is monotonically increasing, for optimistic locking in the store
	Version int64 `json:"version"`
}

// TurnResult is the structured response returned to the caller after a turn
// is processed.
type TurnResult struct {
	Quality                   QualityScore          `json:"quality_score"`
	Achievements              []Achievement         `json:"achievements"`
	DimensionPercentiles      []DimensionPercentile `json:"dimension_percentiles,omitempty"`
	OverallScore              float64               `json:"overall_score"`
	OverallPercentile         *DimensionPercentile  `json:"overall_percentile,omitempty"`
	ATSScores                 *ATSScoreSet          `json:"ats_scores,omitempty"`
	Phase                     Phase                 `json:"phase"`
	FollowUpRequested         bool                  `json:"follow_up_requested"`
	SessionProgressPercentage int                   `json:"session_progress_percentage"`
	LowConfidenceProgression  bool                  `json:"low_confidence_progression,omitempty"`
	Degraded                  bool                  `json:"degraded,omitempty"`
}
