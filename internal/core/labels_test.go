package core

import (
	"testing"
)

func TestFriendlyLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"label_1", "Biased"},
		{"LABEL_1", "Biased"},
		{"biased", "Biased"},
		{"Bias", "Biased"},
		{"label_0", "Unbiased"},
		{"neutral", "Unbiased"},
		{"Unbiased", "Unbiased"},
		{"framing", "Framing"},
		{"gender_bias", "Gender Bias"},
		{"political bias", "Political Bias"},
	}
	for _, tt := range tests {
		if got := FriendlyLabel(tt.raw); got != tt.want {
			t.Errorf("FriendlyLabel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFriendlyLabelIdempotent(t *testing.T) {
	for _, raw := range []string{"label_1", "framing", "gender_bias", "Biased"} {
		once := FriendlyLabel(raw)
		twice := FriendlyLabel(once)
		if once != twice {
			t.Errorf("FriendlyLabel not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestIsBiasedLabel(t *testing.T) {
	if !IsBiasedLabel("Biased") || !IsBiasedLabel("biased") {
		t.Error("expected biased labels to be recognized")
	}
	if IsBiasedLabel("Unbiased") || IsBiasedLabel("Framing") {
		t.Error("expected non-biased labels to be rejected")
	}
}
