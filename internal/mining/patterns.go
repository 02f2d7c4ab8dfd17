// Package mining extracts structured Context-Action-Result achievement claims
// from free-form career narrative text.
package mining

import "strings"

// actionVerbs is the curated action-verb list. A sentence qualifies as a
// candidate achievement when one of these is present.
var actionVerbs = map[string]bool{
	"led": true, "built": true, "implemented": true, "reduced": true,
	"increased": true, "designed": true, "launched": true, "delivered": true,
	"created": true, "improved": true, "managed": true, "developed": true,
	"optimized": true, "migrated": true, "automated": true, "drove": true,
	"grew": true, "cut": true, "saved": true, "scaled": true, "shipped": true,
	"mentored": true, "architected": true, "negotiated": true, "streamlined": true,
	"founded": true, "spearheaded": true, "established": true, "restructured": true,
}

// contextOpeners start a temporal/organizational context clause at the head of
// a sentence ("In Q3 2023, ...", "As lead of ...", "At Company X, ...").
var contextOpeners = map[string]bool{
	"in": true, "at": true, "as": true, "during": true, "while": true,
	"throughout": true, "within": true,
}

// resultMarkers signal an unquantified outcome clause.
var resultMarkers = []string{
	"resulting in",
	"which led to",
	"which resulted in",
	"leading to",
	"that resulted in",
	"enabling",
	"which improved",
	"which enabled",
}

// scaleWords mark large magnitudes regardless of the parsed numeric value.
var scaleWords = []string{"million", "billion", "millions", "billions"}

// teamWords are used with large counts to detect organizational scale
// ("team of 50+").
var teamWords = map[string]bool{
	"team": true, "teams": true, "people": true, "engineers": true,
	"developers": true, "employees": true, "reports": true, "staff": true,
}

func containsAny(s string, phrases []string) (string, bool) {
	lower := strings.ToLower(s)
	for _, p := range phrases {
		if idx := strings.Index(lower, p); idx >= 0 {
			return s[idx:], true
		}
	}
	return "", false
}
