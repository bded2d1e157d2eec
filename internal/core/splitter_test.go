package core

import (
	"strings"
	"testing"
)

func TestSplitSentencesEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  \n"} {
		if got := SplitSentences(input); len(got) != 0 {
			t.Errorf("SplitSentences(%q) = %v, want empty", input, got)
		}
	}
}

func TestSplitSentencesSingleSentenceRoundTrip(t *testing.T) {
	input := "This is a single sentence."
	got := SplitSentences(input)
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %v", len(got), got)
	}
	if got[0] != input {
		t.Errorf("expected %q, got %q", input, got[0])
	}
}

func TestSplitSentencesNormalizesWhitespace(t *testing.T) {
	got := SplitSentences("  This   is\n\ta single    sentence.  ")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %v", len(got), got)
	}
	if got[0] != "This is a single sentence." {
		t.Errorf("whitespace not normalized: %q", got[0])
	}
}

func TestSplitSentencesMultiple(t *testing.T) {
	got := SplitSentences("First sentence. Second one! Third, maybe? Fourth without punctuation")
	want := []string{"First sentence.", "Second one!", "Third, maybe?", "Fourth without punctuation"}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitSentencesKeepsPunctuationRuns(t *testing.T) {
	got := SplitSentences("Wait... really?! Yes.")
	want := []string{"Wait...", "really?!", "Yes."}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitSentencesDropsShortFragments(t *testing.T) {
	got := SplitSentences("Hi. This is long enough. Ok")
	for _, s := range got {
		if len(strings.TrimSpace(s)) < 3 {
			t.Errorf("returned sentence shorter than 3 characters: %q", s)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected 2 sentences, got %d: %v", len(got), got)
	}
}

func TestSplitSentencesMinimumLengthProperty(t *testing.T) {
	inputs := []string{
		"a. b. c.",
		"!!! ??? ...",
		"One proper sentence here. x. y.",
		"No punctuation at all just words",
		"Short? So! Much?! Punc.tu.ation",
	}
	for _, input := range inputs {
		for _, s := range SplitSentences(input) {
			if len(strings.TrimSpace(s)) < 3 {
				t.Errorf("input %q produced sentence shorter than 3 characters: %q", input, s)
			}
		}
	}
}
