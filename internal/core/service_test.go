package core

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func newTestService(classifier Classifier) *AnalysisService {
	analyzer := newTestAnalyzer(classifier)
	return NewAnalysisService(analyzer, zap.NewNop(), DefaultBiasThreshold)
}

func TestAnalyzeTextScenario(t *testing.T) {
	classifier := &mockClassifier{
		configured: true,
		classify: func(model, text string) (*ClassificationResult, error) {
			if model == testTypeModel {
				return &ClassificationResult{Label: "framing", Score: 0.8}, nil
			}
			if text == "This is a neutral sentence." {
				return &ClassificationResult{Label: "label_0", Score: 0.95}, nil
			}
			return &ClassificationResult{Label: "label_1", Score: 0.92}, nil
		},
	}

	report, err := newTestService(classifier).AnalyzeText(context.Background(),
		"This is a neutral sentence. This is definitely biased.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := report.Statistics
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
}

func TestAnalyzeTextEmptyInput(t *testing.T) {
	service := newTestService(&mockClassifier{configured: true})

	var validationErr *ValidationError
	if _, err := service.AnalyzeText(context.Background(), "   "); !errors.As(err, &validationErr) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestAnalyzeTextUnsegmentableInput(t *testing.T) {
	service := newTestService(&mockClassifier{configured: true})

	var validationErr *ValidationError
	if _, err := service.AnalyzeText(context.Background(), "a. b."); !errors.As(err, &validationErr) {
		t.Errorf("expected validation error for unsegmentable text, got %v", err)
	}
}

func TestAnalyzeTextMissingCredential(t *testing.T) {
	classifier := &mockClassifier{
		configured: false,
		classify: func(model, text string) (*ClassificationResult, error) {
			t.Error("no outbound call should be attempted without a credential")
			return nil, nil
		},
	}

	_, err := newTestService(classifier).AnalyzeText(context.Background(), "This is a sentence.")
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
	if classifier.callCount() != 0 {
		t.Errorf("expected 0 classifier calls, got %d", classifier.callCount())
	}
}

func TestAnalyzeTextPartialFailure(t *testing.T) {
	classifier := &mockClassifier{
		configured: true,
		classify: func(model, text string) (*ClassificationResult, error) {
			if text == "This one fails." {
				return nil, errors.New("boom")
			}
			return &ClassificationResult{Label: "label_0", Score: 0.9}, nil
		},
	}

	report, err := newTestService(classifier).AnalyzeText(context.Background(),
		"This one works. This one fails.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Statistics.TotalSentences != 1 {
		t.Errorf("TotalSentences = %d, want 1 (failed sentence excluded)", report.Statistics.TotalSentences)
	}
}

func TestAnalyzeTextAllSentencesFailed(t *testing.T) {
	classifier := &mockClassifier{
		configured: true,
		classify: func(model, text string) (*ClassificationResult, error) {
			return nil, errors.New("upstream down")
		},
	}

	_, err := newTestService(classifier).AnalyzeText(context.Background(), "First sentence. Second sentence.")
	if !errors.Is(err, ErrNoSentencesAnalyzed) {
		t.Errorf("expected ErrNoSentencesAnalyzed, got %v", err)
	}
}
