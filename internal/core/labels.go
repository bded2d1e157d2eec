package core

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LabelBiased and LabelUnbiased are the two friendly labels the
// detection model can map to
const (
	LabelBiased   = "Biased"
	LabelUnbiased = "Unbiased"
)

var titleCaser = cases.Title(language.English)

// FriendlyLabel maps a raw classifier label to a human-readable one.
// Known detection labels collapse onto "Biased"/"Unbiased"; anything
// else is title-cased with underscores treated as word boundaries.
// Applying the mapping to an already-friendly label is a no-op
func FriendlyLabel(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "label_1", "biased", "bias":
		return LabelBiased
	case "label_0", "neutral", "unbiased":
		return LabelUnbiased
	}

	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "_", " ")
	return titleCaser.String(cleaned)
}

// IsBiasedLabel reports whether a friendly label names the biased class
func IsBiasedLabel(friendly string) bool {
	return strings.EqualFold(friendly, LabelBiased)
}
