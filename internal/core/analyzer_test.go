package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
)

const (
	testDetectionModel = "detector"
	testTypeModel      = "typer"
)

// mockClassifier routes classification calls through a test-supplied function
type mockClassifier struct {
	mu         sync.Mutex
	configured bool
	calls      []string
	classify   func(model, text string) (*ClassificationResult, error)
}

func (m *mockClassifier) IsConfigured() bool {
	return m.configured
}

func (m *mockClassifier) Classify(ctx context.Context, model string, text string) (*ClassificationResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, model)
	m.mu.Unlock()
	return m.classify(model, text)
}

func (m *mockClassifier) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func newTestAnalyzer(classifier Classifier) *SentenceAnalyzer {
	return NewSentenceAnalyzer(classifier, zap.NewNop(), testDetectionModel, testTypeModel, DefaultBiasThreshold, 4)
}

func TestAnalyzeSentenceUnbiasedSkipsTypeCall(t *testing.T) {
	classifier := &mockClassifier{
		configured: true,
		classify: func(model, text string) (*ClassificationResult, error) {
			if model != testDetectionModel {
				t.Errorf("unexpected call to model %q", model)
			}
			return &ClassificationResult{Label: "label_0", Score: 0.95}, nil
		},
	}

	record, err := newTestAnalyzer(classifier).AnalyzeSentence(context.Background(), "This is a neutral sentence.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Detection.FriendlyLabel != "Unbiased" {
		t.Errorf("FriendlyLabel = %q, want Unbiased", record.Detection.FriendlyLabel)
	}
	if record.BiasType != nil {
		t.Errorf("expected no bias type, got %+v", record.BiasType)
	}
	if classifier.callCount() != 1 {
		t.Errorf("expected 1 classifier call, got %d", classifier.callCount())
	}
}

func TestAnalyzeSentenceBiasedGetsType(t *testing.T) {
	classifier := &mockClassifier{
		configured: true,
		classify: func(model, text string) (*ClassificationResult, error) {
			if model == testDetectionModel {
				return &ClassificationResult{Label: "label_1", Score: 0.92}, nil
			}
			return &ClassificationResult{Label: "framing", Score: 0.8}, nil
		},
	}

	record, err := newTestAnalyzer(classifier).AnalyzeSentence(context.Background(), "This is definitely biased.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.BiasType == nil {
		t.Fatal("expected a bias type")
	}
	if record.BiasType.Label != "Framing" {
		t.Errorf("BiasType.Label = %q, want Framing", record.BiasType.Label)
	}
	if record.BiasType.Score != 0.8 {
		t.Errorf("BiasType.Score = %v, want 0.8", record.BiasType.Score)
	}
}

func TestAnalyzeSentenceTypeFailureIsSwallowed(t *testing.T) {
	classifier := &mockClassifier{
		configured: true,
		classify: func(model, text string) (*ClassificationResult, error) {
			if model == testDetectionModel {
				return &ClassificationResult{Label: "label_1", Score: 0.9}, nil
			}
			return nil, errors.New("type model unavailable")
		},
	}

	record, err := newTestAnalyzer(classifier).AnalyzeSentence(context.Background(), "This is definitely biased.")
	if err != nil {
		t.Fatalf("type failure should not fail the sentence: %v", err)
	}
	if record.BiasType != nil {
		t.Errorf("expected absent bias type, got %+v", record.BiasType)
	}
}

func TestAnalyzeSentenceDetectionFailurePropagates(t *testing.T) {
	classifier := &mockClassifier{
		configured: true,
		classify: func(model, text string) (*ClassificationResult, error) {
			return nil, errors.New("detector unavailable")
		},
	}

	if _, err := newTestAnalyzer(classifier).AnalyzeSentence(context.Background(), "Whatever sentence."); err == nil {
		t.Fatal("expected detection failure to propagate")
	}
}

func TestAnalyzeAllKeepsOrderAndDropsFailures(t *testing.T) {
	classifier := &mockClassifier{
		configured: true,
		classify: func(model, text string) (*ClassificationResult, error) {
			if model == testTypeModel {
				return &ClassificationResult{Label: "framing", Score: 0.8}, nil
			}
			switch text {
			case "First sentence.":
				return &ClassificationResult{Label: "label_0", Score: 0.9}, nil
			case "Second sentence.":
				return nil, errors.New("boom")
			default:
				return &ClassificationResult{Label: "label_1", Score: 0.85}, nil
			}
		},
	}

	records := newTestAnalyzer(classifier).AnalyzeAll(context.Background(),
		[]string{"First sentence.", "Second sentence.", "Third sentence."})

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Sentence != "First sentence." || records[1].Sentence != "Third sentence." {
		t.Errorf("order not preserved: %q, %q", records[0].Sentence, records[1].Sentence)
	}
}

func TestAnalyzerReady(t *testing.T) {
	analyzer := newTestAnalyzer(&mockClassifier{configured: false})
	if err := analyzer.Ready(); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}

	analyzer = newTestAnalyzer(&mockClassifier{configured: true})
	if err := analyzer.Ready(); err != nil {
		t.Errorf("expected ready analyzer, got %v", err)
	}
}
