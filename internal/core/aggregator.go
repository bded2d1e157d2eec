package core

import (
	"math"
)

// DefaultBiasThreshold is the detection score above which a sentence
// flagged by the detector counts as biased
const DefaultBiasThreshold = 0.5

// Aggregate reduces a sequence of sentence records into summary
// statistics. Records belong to sentences that were analyzed
// successfully; failed sentences must already have been excluded.
// An empty input yields all-zero statistics rather than an error so
// percentages never divide by zero
func Aggregate(records []SentenceRecord, threshold float64) AggregateStats {
	stats := AggregateStats{
		TotalSentences: len(records),
		BiasTypeCounts: make(map[string]int),
	}

	var scoreSum, biasedScoreSum float64
	for _, rec := range records {
		scoreSum += rec.Detection.Score
		if IsBiasedLabel(rec.Detection.FriendlyLabel) && rec.Detection.Score > threshold {
			stats.BiasedSentences++
			biasedScoreSum += rec.Detection.Score
		}
		if rec.BiasType != nil {
			stats.BiasTypeCounts[rec.BiasType.Label]++
		}
	}

	stats.UnbiasedSentences = stats.TotalSentences - stats.BiasedSentences
	if stats.TotalSentences > 0 {
		stats.BiasPercentage = round1(100 * float64(stats.BiasedSentences) / float64(stats.TotalSentences))
		stats.AvgBiasScore = round3(scoreSum / float64(stats.TotalSentences))
	}
	if stats.BiasedSentences > 0 {
		stats.AvgBiasedScore = round3(biasedScoreSum / float64(stats.BiasedSentences))
	}

	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
