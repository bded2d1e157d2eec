package core

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AnalysisService is the core service for sentence-level bias analysis
type AnalysisService struct {
	analyzer  *SentenceAnalyzer
	logger    *zap.Logger
	threshold float64
}

// NewAnalysisService creates a new bias analysis service
func NewAnalysisService(analyzer *SentenceAnalyzer, logger *zap.Logger, threshold float64) *AnalysisService {
	return &AnalysisService{
		analyzer:  analyzer,
		logger:    logger,
		threshold: threshold,
	}
}

// AnalyzeText segments a block of text into sentences, classifies each
// one and aggregates the results into a report. Individual sentence
// failures are excluded from the report; the call only fails when the
// input is unusable or no sentence could be analyzed at all
func (s *AnalysisService) AnalyzeText(ctx context.Context, text string) (*AnalysisReport, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, NewValidationError("text is required")
	}
	if err := s.analyzer.Ready(); err != nil {
		return nil, err
	}

	sentences := SplitSentences(trimmed)
	if len(sentences) == 0 {
		return nil, NewValidationError("could not extract any sentences from text")
	}

	start := time.Now()
	records := s.analyzer.AnalyzeAll(ctx, sentences)
	if len(records) == 0 {
		return nil, ErrNoSentencesAnalyzed
	}
	if dropped := len(sentences) - len(records); dropped > 0 {
		s.logger.Warn("Some sentences failed analysis and were excluded",
			zap.Int("dropped", dropped),
			zap.Int("analyzed", len(records)))
	}

	stats := Aggregate(records, s.threshold)
	s.logger.Info("Text analyzed",
		zap.Int("sentences", stats.TotalSentences),
		zap.Int("biased", stats.BiasedSentences),
		zap.Float64("bias_percentage", stats.BiasPercentage),
		zap.Duration("duration", time.Since(start)))

	return &AnalysisReport{
		Text:       trimmed,
		Sentences:  records,
		Statistics: stats,
	}, nil
}
