package core

import (
	"testing"
)

func record(label string, score float64, biasType *BiasType) SentenceRecord {
	return SentenceRecord{
		Sentence: "some sentence here.",
		Detection: Detection{
			Label:         label,
			FriendlyLabel: FriendlyLabel(label),
			Score:         score,
		},
		BiasType: biasType,
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	stats := Aggregate(nil, DefaultBiasThreshold)
	if stats.TotalSentences != 0 || stats.BiasedSentences != 0 || stats.UnbiasedSentences != 0 {
		t.Errorf("expected zero counts, got %+v", stats)
	}
	if stats.BiasPercentage != 0 || stats.AvgBiasScore != 0 || stats.AvgBiasedScore != 0 {
		t.Errorf("expected zero statistics for empty input, got %+v", stats)
	}
	if stats.BiasTypeCounts == nil {
		t.Error("expected non-nil BiasTypeCounts")
	}
}

func TestAggregateScenario(t *testing.T) {
	records := []SentenceRecord{
		record("label_0", 0.95, nil),
		record("label_1", 0.92, &BiasType{Label: "Framing", Score: 0.8}),
	}
	stats := Aggregate(records, DefaultBiasThreshold)

	if stats.TotalSentences != 2 {
		t.Errorf("TotalSentences = %d, want 2", stats.TotalSentences)
	}
	if stats.BiasedSentences != 1 {
		t.Errorf("BiasedSentences = %d, want 1", stats.BiasedSentences)
	}
	if stats.UnbiasedSentences != 1 {
		t.Errorf("UnbiasedSentences = %d, want 1", stats.UnbiasedSentences)
	}
	if stats.BiasPercentage != 50.0 {
		t.Errorf("BiasPercentage = %v, want 50.0", stats.BiasPercentage)
	}
	if stats.BiasTypeCounts["Framing"] != 1 {
		t.Errorf("BiasTypeCounts = %v, want Framing:1", stats.BiasTypeCounts)
	}
	if stats.AvgBiasScore != 0.935 {
		t.Errorf("AvgBiasScore = %v, want 0.935", stats.AvgBiasScore)
	}
	if stats.AvgBiasedScore != 0.92 {
		t.Errorf("AvgBiasedScore = %v, want 0.92", stats.AvgBiasedScore)
	}
}

func TestAggregateBelowThresholdNotBiased(t *testing.T) {
	// Flagged by the detector but not above threshold
	records := []SentenceRecord{record("label_1", 0.4, nil)}
	stats := Aggregate(records, DefaultBiasThreshold)
	if stats.BiasedSentences != 0 {
		t.Errorf("BiasedSentences = %d, want 0", stats.BiasedSentences)
	}
	if stats.UnbiasedSentences != 1 {
		t.Errorf("UnbiasedSentences = %d, want 1", stats.UnbiasedSentences)
	}
	if stats.AvgBiasedScore != 0 {
		t.Errorf("AvgBiasedScore = %v, want 0", stats.AvgBiasedScore)
	}
}

func TestAggregateInvariants(t *testing.T) {
	batches := [][]SentenceRecord{
		nil,
		{record("label_1", 0.9, &BiasType{Label: "Framing", Score: 0.7})},
		{
			record("label_1", 0.9, &BiasType{Label: "Framing", Score: 0.7}),
			record("label_1", 0.7, nil),
			record("label_0", 0.8, nil),
			record("label_1", 0.3, nil),
		},
		{
			record("label_0", 0.99, nil),
			record("label_0", 0.5, nil),
		},
	}

	for i, records := range batches {
		stats := Aggregate(records, DefaultBiasThreshold)
		if stats.BiasedSentences+stats.UnbiasedSentences != stats.TotalSentences {
			t.Errorf("batch %d: biased %d + unbiased %d != total %d",
				i, stats.BiasedSentences, stats.UnbiasedSentences, stats.TotalSentences)
		}
		typeTotal := 0
		for _, count := range stats.BiasTypeCounts {
			typeTotal += count
		}
		if typeTotal > stats.BiasedSentences {
			t.Errorf("batch %d: bias type counts %d exceed biased sentences %d",
				i, typeTotal, stats.BiasedSentences)
		}
	}
}

func TestAggregateRounding(t *testing.T) {
	records := []SentenceRecord{
		record("label_1", 0.9, nil),
		record("label_0", 0.8, nil),
		record("label_0", 0.7, nil),
	}
	stats := Aggregate(records, DefaultBiasThreshold)
	if stats.BiasPercentage != 33.3 {
		t.Errorf("BiasPercentage = %v, want 33.3", stats.BiasPercentage)
	}
	if stats.AvgBiasScore != 0.8 {
		t.Errorf("AvgBiasScore = %v, want 0.8", stats.AvgBiasScore)
	}
}
