package hf

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/biaslens/biaslens/internal/core"
	"github.com/biaslens/biaslens/internal/utils"
	"go.uber.org/zap"
)

func newTestClassifier(t *testing.T, handler http.HandlerFunc) (*Classifier, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	classifier := NewClassifier(
		"test-token",
		server.URL,
		5*time.Second,
		2048,
		utils.NewTextProcessor(zap.NewNop()),
		zap.NewNop(),
	)
	return classifier, server
}

func TestClassifyMissingCredential(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	classifier := NewClassifier("", server.URL, time.Second, 2048, utils.NewTextProcessor(zap.NewNop()), zap.NewNop())
	_, err := classifier.Classify(context.Background(), "some/model", "Some text.")
	if !errors.Is(err, core.ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
	if called {
		t.Error("no request should be sent without a credential")
	}
	if classifier.IsConfigured() {
		t.Error("IsConfigured should report false without a credential")
	}
}

func TestClassifyRequestShape(t *testing.T) {
	classifier, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/some/model" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		if req.Inputs != "Some text." {
			t.Errorf("Inputs = %q, want %q", req.Inputs, "Some text.")
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{{"label": "label_1", "score": 0.92}})
	})

	result, err := classifier.Classify(context.Background(), "some/model", "Some text.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.Label != "label_1" || result.Score != 0.92 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestClassifyResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *core.ClassificationResult
	}{
		{"single object", `{"label":"label_0","score":0.7}`, &core.ClassificationResult{Label: "label_0", Score: 0.7}},
		{"array", `[{"label":"label_1","score":0.9},{"label":"label_0","score":0.1}]`, &core.ClassificationResult{Label: "label_1", Score: 0.9}},
		{"nested array", `[[{"label":"framing","score":0.8}]]`, &core.ClassificationResult{Label: "framing", Score: 0.8}},
		{"score clamped high", `{"label":"label_1","score":1.7}`, &core.ClassificationResult{Label: "label_1", Score: 1}},
		{"empty object", `{}`, nil},
		{"empty array", `[]`, nil},
		{"not json", `oops`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			result, err := classifier.Classify(context.Background(), "some/model", "Some text.")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == nil {
				if result != nil {
					t.Errorf("expected no classification, got %+v", result)
				}
				return
			}
			if result == nil || *result != *tt.want {
				t.Errorf("result = %+v, want %+v", result, tt.want)
			}
		})
	}
}

func TestClassifyErrorStatus(t *testing.T) {
	classifier, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"model is loading"}`))
	})

	_, err := classifier.Classify(context.Background(), "some/model", "Some text.")
	var upstreamErr *core.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstreamErr.Msg != "model is loading" {
		t.Errorf("Msg = %q, want the body's error field", upstreamErr.Msg)
	}
}

func TestClassifyErrorStatusRawBody(t *testing.T) {
	classifier, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := classifier.Classify(context.Background(), "some/model", "Some text.")
	var upstreamErr *core.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstreamErr.Msg != "upstream exploded" {
		t.Errorf("Msg = %q, want raw body fallback", upstreamErr.Msg)
	}
}

func TestClassifyErrorStatusEmptyBody(t *testing.T) {
	classifier, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := classifier.Classify(context.Background(), "some/model", "Some text.")
	var upstreamErr *core.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstreamErr.Msg != "inference request failed" {
		t.Errorf("Msg = %q, want generic message", upstreamErr.Msg)
	}
}
