package core

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// SentenceAnalyzer runs the two-stage classification for single
// sentences and for ordered batches of sentences
type SentenceAnalyzer struct {
	classifier     Classifier
	logger         *zap.Logger
	detectionModel string
	typeModel      string
	threshold      float64
	maxConcurrency int
}

// NewSentenceAnalyzer creates a new sentence analyzer
func NewSentenceAnalyzer(
	classifier Classifier,
	logger *zap.Logger,
	detectionModel string,
	typeModel string,
	threshold float64,
	maxConcurrency int,
) *SentenceAnalyzer {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &SentenceAnalyzer{
		classifier:     classifier,
		logger:         logger,
		detectionModel: detectionModel,
		typeModel:      typeModel,
		threshold:      threshold,
		maxConcurrency: maxConcurrency,
	}
}

// Ready reports whether the analyzer can reach its classifier. It is
// checked before any outbound call so a missing credential fails the
// request instead of every individual sentence
func (a *SentenceAnalyzer) Ready() error {
	if !a.classifier.IsConfigured() {
		return ErrMissingCredential
	}
	return nil
}

// AnalyzeSentence classifies one sentence. The detection call is
// mandatory and its failure fails the sentence. The type call is only
// made for sentences the detector flags above threshold, and its
// failure is logged and recorded as an absent bias type
func (a *SentenceAnalyzer) AnalyzeSentence(ctx context.Context, sentence string) (*SentenceRecord, error) {
	result, err := a.classifier.Classify(ctx, a.detectionModel, sentence)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, &UpstreamError{Model: a.detectionModel, Msg: "no classification returned"}
	}

	friendly := FriendlyLabel(result.Label)
	record := &SentenceRecord{
		Sentence: sentence,
		Detection: Detection{
			Label:         result.Label,
			FriendlyLabel: friendly,
			Score:         result.Score,
		},
	}

	// Type classification is skipped for unbiased sentences to save a round trip
	if IsBiasedLabel(friendly) && result.Score > a.threshold {
		typeResult, err := a.classifier.Classify(ctx, a.typeModel, sentence)
		switch {
		case err != nil:
			a.logger.Warn("Bias type classification failed",
				zap.String("model", a.typeModel),
				zap.Error(err))
		case typeResult == nil:
			a.logger.Warn("Bias type classifier returned no classification",
				zap.String("model", a.typeModel))
		default:
			record.BiasType = &BiasType{
				Label: FriendlyLabel(typeResult.Label),
				Score: typeResult.Score,
			}
		}
	}

	return record, nil
}

// AnalyzeAll analyzes a batch of sentences under a bounded worker pool.
// Results keep the original sentence order. Sentences whose detection
// call failed are logged and excluded from the returned slice
func (a *SentenceAnalyzer) AnalyzeAll(ctx context.Context, sentences []string) []SentenceRecord {
	results := make([]*SentenceRecord, len(sentences))
	sem := make(chan struct{}, a.maxConcurrency)
	var wg sync.WaitGroup

	for i, sentence := range sentences {
		wg.Add(1)
		go func(i int, sentence string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			record, err := a.AnalyzeSentence(ctx, sentence)
			if err != nil {
				a.logger.Error("Sentence analysis failed",
					zap.Int("sentence_index", i),
					zap.Error(err))
				return
			}
			results[i] = record
		}(i, sentence)
	}
	wg.Wait()

	collected := make([]SentenceRecord, 0, len(sentences))
	for _, record := range results {
		if record != nil {
			collected = append(collected, *record)
		}
	}
	return collected
}
