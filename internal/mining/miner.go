package mining

import (
	"strings"

	"github.com/jonathan/career-coach/internal/parsing"
	"github.com/jonathan/career-coach/internal/types"
)

// Confidence contributions per structural cue. Additive, capped at 1.0.
const (
	actionConfidence           = 0.4
	contextConfidence          = 0.2
	quantifiedResultConfidence = 0.3
	resultConfidence           = 0.1
	maxConfidence              = 1.0
)

// Config holds the impact-level threshold heuristics.
type Config struct {
	// HighPercentThreshold marks a percentage as high impact (default 20).
	HighPercentThreshold float64
	// HighAmountThreshold marks a plain or currency amount as high impact
	// (default 1,000,000).
	HighAmountThreshold float64
	// TeamScaleThreshold marks an organizational count as high impact when a
	// team word appears in the sentence (default 50).
	TeamScaleThreshold float64
}

// DefaultConfig returns the default impact thresholds.
func DefaultConfig() Config {
	return Config{
		HighPercentThreshold: 20,
		HighAmountThreshold:  1_000_000,
		TeamScaleThreshold:   50,
	}
}

// Miner extracts achievements from text. It is stateless and safe for
// concurrent use.
type Miner struct {
	cfg Config
}

// NewMiner returns a miner with the default impact thresholds.
func NewMiner() *Miner {
	return &Miner{cfg: DefaultConfig()}
}

// NewMinerWithConfig returns a miner with custom impact thresholds.
func NewMinerWithConfig(cfg Config) *Miner {
	return &Miner{cfg: cfg}
}

// Mine extracts achievements in source sentence order. A sentence qualifies
// when an action verb is present; context and result matches raise
// confidence. Unsegmentable text yields an empty slice, never an error:
// absence of achievements is a valid analysis outcome.
func (m *Miner) Mine(text string) []types.Achievement {
	sentences := parsing.Sentences(text)
	achievements := make([]types.Achievement, 0, len(sentences))

	for _, sentence := range sentences {
		if a, ok := m.mineSentence(sentence); ok {
			achievements = append(achievements, a)
		}
	}

	return achievements
}

func (m *Miner) mineSentence(sentence string) (types.Achievement, bool) {
	toks := parsing.Tokens(sentence)

	verbIdx := -1
	action := ""
	for i, tok := range toks {
		if actionVerbs[strings.ToLower(tok)] {
			verbIdx = i
			action = strings.ToLower(tok)
			break
		}
	}
	if verbIdx < 0 {
		return types.Achievement{}, false
	}

	a := types.Achievement{
		Action:     action,
		Sentence:   sentence,
		Confidence: actionConfidence,
	}

	if ctx := matchContext(sentence, toks); ctx != "" {
		a.Context = ctx
		a.Confidence += contextConfidence
	}

	result, quantification := matchResult(sentence, toks, verbIdx)
	a.Result = result
	a.Quantification = quantification
	switch {
	case quantification != "":
		a.Confidence += quantifiedResultConfidence
	case result != "":
		a.Confidence += resultConfidence
	}
	if a.Confidence > maxConfidence {
		a.Confidence = maxConfidence
	}

	a.ImpactLevel = m.impactLevel(&a, toks)

	return a, true
}

// matchContext finds a temporal/organizational context clause: a leading
// clause opened by In/At/As/During/While, or a mid-sentence "at Company"
// phrase.
func matchContext(sentence string, toks []string) string {
	if comma := strings.Index(sentence, ","); comma > 0 {
		clause := strings.TrimSpace(sentence[:comma])
		clauseToks := parsing.Tokens(clause)
		if len(clauseToks) > 0 && contextOpeners[strings.ToLower(clauseToks[0])] {
			return clause
		}
	}

	for i := 0; i < len(toks)-1; i++ {
		if strings.EqualFold(toks[i], "at") && parsing.IsCapitalized(toks[i+1]) {
			return "at " + toks[i+1]
		}
	}

	return ""
}

// matchResult finds an outcome clause after the action verb. A numeric token
// after the verb makes the result quantified; otherwise a result marker
// phrase counts as an unquantified result.
func matchResult(sentence string, toks []string, verbIdx int) (result, quantification string) {
	for i := verbIdx + 1; i < len(toks); i++ {
		if parsing.IsNumeric(toks[i]) {
			return strings.Join(toks[verbIdx:], " "), toks[i]
		}
	}

	if clause, ok := containsAny(sentence, resultMarkers); ok {
		return clause, ""
	}

	return "", ""
}

func (m *Miner) impactLevel(a *types.Achievement, toks []string) types.ImpactLevel {
	if a.Quantification == "" {
		return types.ImpactLow
	}

	lower := strings.ToLower(a.Sentence)
	for _, w := range scaleWords {
		if strings.Contains(lower, w) {
			return types.ImpactHigh
		}
	}

	value, ok := parsing.NumericValue(a.Quantification)
	if !ok {
		return types.ImpactMedium
	}
	value *= suffixMultiplier(a.Quantification)

	switch {
	case parsing.IsPercent(a.Quantification) && value >= m.cfg.HighPercentThreshold:
		return types.ImpactHigh
	case value >= m.cfg.HighAmountThreshold:
		return types.ImpactHigh
	case value >= m.cfg.TeamScaleThreshold && sentenceHasTeamWord(toks):
		return types.ImpactHigh
	default:
		return types.ImpactMedium
	}
}

// suffixMultiplier handles shorthand magnitudes such as "$2M" or "10k".
func suffixMultiplier(tok string) float64 {
	trimmed := strings.TrimRight(tok, "+%")
	if trimmed == "" {
		return 1
	}
	switch trimmed[len(trimmed)-1] {
	case 'k', 'K':
		return 1_000
	case 'm', 'M':
		return 1_000_000
	case 'b', 'B':
		return 1_000_000_000
	default:
		return 1
	}
}

func sentenceHasTeamWord(toks []string) bool {
	for _, tok := range toks {
		if teamWords[strings.ToLower(tok)] {
			return true
		}
	}
	return false
}
