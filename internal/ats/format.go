package ats

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// featureSelectors maps config feature names to the markup they correspond to.
var featureSelectors = map[string]string{
	"tables":          "table",
	"images":          "img",
	"text_boxes":      "textarea, [contenteditable]",
	"columns":         "[style*='column']",
	"headers_footers": "header, footer",
	"graphics":        "svg, canvas",
}

// detectFormatFeatures returns the format features present in the text's
// structural markup. Plain text has no markup and yields nothing.
func detectFormatFeatures(text string) map[string]bool {
	if !strings.Contains(text, "<") {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil
	}

	found := make(map[string]bool)
	for feature, selector := range featureSelectors {
		if doc.Find(selector).Length() > 0 {
			found[feature] = true
		}
	}
	return found
}

// visibleText strips markup so length and keyword density are computed on the
// content an ATS parser would actually read.
func visibleText(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	return doc.Text()
}
