package cheda

import (
	"regexp"
	"strings"
)

// spanPattern partitions text into three kinds of spans: Roman letters
// and apostrophe (text), whitespace, and everything else (symbols).
var spanPattern = regexp.MustCompile(`[a-zA-Z']+|\s+|[^a-zA-Z'\s]+`)

// Normalize produces a version of text that is easier for Segment to
// process: spans are classified as text, whitespace, or symbol; every
// whitespace span is dropped, and the remaining spans are rejoined
// with a single " ".
func Normalize(text string) string {
	spans := spanPattern.FindAllString(text, -1)
	var kept []string
	for _, s := range spans {
		if strings.TrimSpace(s) == "" {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, " ")
}
