package core

import (
	"regexp"
	"strings"
)

// minSentenceLen is the minimum trimmed length a fragment must have
// to count as a sentence
const minSentenceLen = 3

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	terminalRe   = regexp.MustCompile(`[.!?]+`)
	fallbackRe   = regexp.MustCompile(`[.!?]+\s+`)
)

// SplitSentences breaks a block of text into sentence strings using
// punctuation heuristics. Whitespace runs are collapsed first, then
// the text is cut after each run of terminal punctuation, keeping the
// punctuation attached to its sentence. Fragments shorter than three
// trimmed characters are discarded. If nothing survives, a simpler
// punctuation-then-whitespace split is tried with the same filter.
// An empty result means the text could not be segmented
func SplitSentences(text string) []string {
	normalized := strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	if normalized == "" {
		return nil
	}

	var sentences []string
	prev := 0
	for _, m := range terminalRe.FindAllStringIndex(normalized, -1) {
		fragment := normalized[prev:m[1]]
		prev = m[1]
		if s := strings.TrimSpace(fragment); len(s) >= minSentenceLen {
			sentences = append(sentences, s)
		}
	}
	if prev < len(normalized) {
		if s := strings.TrimSpace(normalized[prev:]); len(s) >= minSentenceLen {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) > 0 {
		return sentences
	}

	// Nothing survived the primary pass, fall back to a plain split
	for _, fragment := range fallbackRe.Split(normalized, -1) {
		if s := strings.TrimSpace(fragment); len(s) >= minSentenceLen {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
