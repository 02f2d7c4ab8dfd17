// Package parsing provides text normalization, sentence segmentation and
// tokenization shared by the quality analyzer and the achievement miner.
package parsing

import "strings"

// CleanText normalizes raw narrative text: line endings become LF, runs of
// whitespace collapse to single spaces, and the result is trimmed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\n", " ")
	content = strings.ReplaceAll(content, "\t", " ")

	return strings.TrimSpace(strings.Join(strings.Fields(content), " "))
}
