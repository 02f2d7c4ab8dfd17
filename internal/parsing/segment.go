package parsing

import (
	"strings"
	"unicode"
)

// Sentences splits normalized text into sentences. Terminators are '.',
// '!' and '?'; a '.' between two digits is treated as a decimal point, not a
// terminator. Empty sentences are dropped.
func Sentences(text string) []string {
	text = CleanText(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	sentences := make([]string, 0, 4)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && i > 0 && i < len(runes)-1 &&
			unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
			continue // decimal point
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); sentenceHasContent(s) {
			sentences = append(sentences, s)
		}
		start = i + 1
	}

	if s := strings.TrimSpace(string(runes[start:])); sentenceHasContent(s) {
		sentences = append(sentences, s)
	}

	return sentences
}

// sentenceHasContent reports whether a candidate sentence contains at least
// one letter or digit.
func sentenceHasContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Tokens splits a sentence (or full text) into word tokens, trimming
// surrounding punctuation while preserving numeric markers such as a leading
// currency symbol, a trailing '%' or a trailing '+'.
func Tokens(text string) []string {
	fields := strings.Fields(CleanText(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := trimToken(f)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func trimToken(tok string) string {
	tok = strings.TrimLeftFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '$' && r != '€' && r != '£'
	})
	tok = strings.TrimRightFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '%' && r != '+'
	})
	return tok
}
