package quality

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/career-coach/internal/parsing"
	"github.com/jonathan/career-coach/internal/types"
)

// Component weights inside the clarity sub-score
const (
	lengthVarianceWeight = 0.6
	namedSubjectWeight   = 0.4
)

// resultWindow is the maximum token distance between an impact verb and its
// result/outcome clause for a sentence to count toward achievement density.
const resultWindow = 12

// maxControlRuneRatio is the fraction of control runes above which input is
// treated as non-text.
const maxControlRuneRatio = 0.2

// impactVerbs is the curated verb list used for the achievement-density
// sub-score.
var impactVerbs = map[string]bool{
	"led": true, "built": true, "implemented": true, "reduced": true,
	"increased": true, "designed": true, "launched": true, "delivered": true,
	"created": true, "improved": true, "managed": true, "developed": true,
	"optimized": true, "migrated": true, "automated": true, "drove": true,
	"grew": true, "cut": true, "saved": true, "scaled": true, "shipped": true,
}

// outcomeMarkers are non-numeric tokens that signal a result clause.
var outcomeMarkers = map[string]bool{
	"resulting": true, "resulted": true, "result": true, "results": true,
	"improving": true, "improved": true, "increasing": true, "increased": true,
	"reducing": true, "reduced": true, "saving": true, "saved": true,
	"growth": true, "gains": true, "enabling": true, "enabled": true,
	"achieving": true, "achieved": true,
}

// sentenceOpeners are common, non-referential sentence-initial words that do
// not count as named subjects.
var sentenceOpeners = map[string]bool{
	"the": true, "a": true, "an": true, "in": true, "at": true, "on": true,
	"as": true, "during": true, "while": true, "after": true, "before": true,
	"this": true, "that": true, "it": true, "there": true, "my": true,
	"our": true, "his": true, "her": true, "their": true, "when": true,
	"over": true, "throughout": true,
}

// Analyzer scores a single text response. It is stateless and safe for
// concurrent use.
type Analyzer struct {
	weights types.QualityWeights
}

// NewAnalyzer returns an analyzer with the default equal sub-score weights.
func NewAnalyzer() *Analyzer {
	return &Analyzer{weights: types.DefaultQualityWeights()}
}

// NewAnalyzerWithWeights returns an analyzer with custom sub-score weights.
func NewAnalyzerWithWeights(w types.QualityWeights) *Analyzer {
	return &Analyzer{weights: w}
}

// Analyze scores the text on the four sub-dimensions and derives the overall
// score and quality level. It fails with EmptyInputError on empty or
// whitespace-only input and with UnparsableInputError when the input cannot
// be tokenized into sentences.
func (a *Analyzer) Analyze(text string) (*types.QualityScore, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{}
	}
	if !utf8.ValidString(text) || controlRuneRatio(text) > maxControlRuneRatio {
		return nil, &UnparsableInputError{Message: "input is not text"}
	}

	sentences := parsing.Sentences(text)
	if len(sentences) == 0 {
		return nil, &UnparsableInputError{Message: "no sentences found"}
	}

	tokenized := make([][]string, 0, len(sentences))
	totalTokens := 0
	for _, s := range sentences {
		toks := parsing.Tokens(s)
		tokenized = append(tokenized, toks)
		totalTokens += len(toks)
	}
	if totalTokens == 0 {
		return nil, &UnparsableInputError{Message: "no tokens found"}
	}

	score := &types.QualityScore{
		Clarity:            computeClarityScore(tokenized),
		Specificity:        computeSpecificityScore(tokenized, totalTokens),
		AchievementDensity: computeAchievementDensity(tokenized),
		Quantification:     computeQuantificationScore(tokenized),
	}
	score.Overall = clamp01(score.Clarity*a.weights.Clarity +
		score.Specificity*a.weights.Specificity +
		score.AchievementDensity*a.weights.AchievementDensity +
		score.Quantification*a.weights.Quantification)
	score.Level = types.LevelForScore(score.Overall)

	return score, nil
}

// computeClarityScore combines sentence-length consistency with the ratio of
// sentences that have a named subject.
func computeClarityScore(sentences [][]string) float64 {
	lengths := make([]float64, 0, len(sentences))
	named := 0
	for _, toks := range sentences {
		lengths = append(lengths, float64(len(toks)))
		if hasNamedSubject(toks) {
			named++
		}
	}

	mean := 0.0
	for _, l := range lengths {
		mean += l
	}
	mean /= float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths))

	// Coefficient of variation: uneven sentence lengths read as rambling.
	lengthScore := 1.0
	if mean > 0 {
		lengthScore = clamp01(1.0 - math.Sqrt(variance)/mean)
	}

	subjectRatio := float64(named) / float64(len(sentences))

	return clamp01(lengthVarianceWeight*lengthScore + namedSubjectWeight*subjectRatio)
}

// hasNamedSubject reports whether the sentence names its subject: a
// first-person pronoun or a proper noun near the start of the sentence.
func hasNamedSubject(toks []string) bool {
	limit := len(toks)
	if limit > 6 {
		limit = 6
	}
	for i := 0; i < limit; i++ {
		tok := toks[i]
		if tok == "I" || tok == "We" {
			return true
		}
		if parsing.IsCapitalized(tok) && !parsing.IsNumeric(tok) {
			if i > 0 || !sentenceOpeners[strings.ToLower(tok)] {
				return true
			}
		}
	}
	return false
}

// computeSpecificityScore is the ratio of specific-entity tokens (proper
// nouns, numbers, time spans) to total tokens, capped at 1.0.
func computeSpecificityScore(sentences [][]string, totalTokens int) float64 {
	specific := 0
	for _, toks := range sentences {
		for i, tok := range toks {
			switch {
			case parsing.IsNumeric(tok):
				specific++
			case i > 0 && parsing.IsCapitalized(tok):
				specific++
			case isTimeSpanWord(tok):
				specific++
			}
		}
	}
	return clamp01(float64(specific) / float64(totalTokens))
}

func isTimeSpanWord(tok string) bool {
	switch strings.ToLower(tok) {
	case "year", "years", "month", "months", "week", "weeks", "quarter", "quarters":
		return true
	}
	return false
}

// computeAchievementDensity counts sentences where an impact verb is followed
// within resultWindow tokens by a result clause, normalized by sentence count.
func computeAchievementDensity(sentences [][]string) float64 {
	matched := 0
	for _, toks := range sentences {
		if sentenceHasActionResult(toks) {
			matched++
		}
	}
	return clamp01(float64(matched) / float64(len(sentences)))
}

func sentenceHasActionResult(toks []string) bool {
	for i, tok := range toks {
		if !impactVerbs[strings.ToLower(tok)] {
			continue
		}
		end := i + 1 + resultWindow
		if end > len(toks) {
			end = len(toks)
		}
		for j := i + 1; j < end; j++ {
			if parsing.IsNumeric(toks[j]) || outcomeMarkers[strings.ToLower(toks[j])] {
				return true
			}
		}
	}
	return false
}

// computeQuantificationScore counts numeric, percentage and currency tokens
// normalized by sentence count, capped at 1.0.
func computeQuantificationScore(sentences [][]string) float64 {
	numeric := 0
	for _, toks := range sentences {
		for _, tok := range toks {
			if parsing.IsNumeric(tok) {
				numeric++
			}
		}
	}
	return clamp01(float64(numeric) / float64(len(sentences)))
}

func controlRuneRatio(text string) float64 {
	total, control := 0, 0
	for _, r := range text {
		total++
		if unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r' {
			control++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(control) / float64(total)
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
