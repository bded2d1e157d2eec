package core

import (
	"time"
)

// ClassificationResult represents a single label/score pair returned
// by a hosted classifier model
type ClassificationResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Detection is the bias-detection result for one sentence
type Detection struct {
	Label         string  `json:"label"`
	FriendlyLabel string  `json:"friendlyLabel"`
	Score         float64 `json:"score"`
}

// BiasType is the bias-category classification for a biased sentence
type BiasType struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentenceRecord is the full analysis of one sentence. BiasType is
// nil when the sentence was not biased above threshold or when the
// type classifier gave no usable answer
type SentenceRecord struct {
	Sentence  string    `json:"sentence"`
	Detection Detection `json:"biasDetection"`
	BiasType  *BiasType `json:"biasType,omitempty"`
}

// AggregateStats summarizes a sequence of sentence records
type AggregateStats struct {
	TotalSentences    int            `json:"totalSentences"`
	BiasedSentences   int            `json:"biasedSentences"`
	UnbiasedSentences int            `json:"unbiasedSentences"`
	BiasPercentage    float64        `json:"biasPercentage"`
	AvgBiasScore      float64        `json:"avgBiasScore"`
	AvgBiasedScore    float64        `json:"avgBiasedScore"`
	BiasTypeCounts    map[string]int `json:"biasTypeCounts"`
}

// AnalysisReport is the top-level result for one analyzed text block
type AnalysisReport struct {
	Text       string           `json:"text"`
	Sentences  []SentenceRecord `json:"sentences"`
	Statistics AggregateStats   `json:"statistics"`
}

// ChatMessage is one turn in a chat conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CacheEntry is a cached detection result for one model/sentence pair
type CacheEntry struct {
	Model     string
	Text      string
	Label     string
	Score     float64
	LastSeen  time.Time
	ExpiresAt time.Time
}
