package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/biaslens/biaslens/internal/core"
	"github.com/biaslens/biaslens/internal/utils"
	"go.uber.org/zap"
)

// Classifier is an implementation of the core.Classifier interface
// backed by the Hugging Face Inference API. Each call is one
// POST {base_url}/{model} with a JSON body of {"inputs": text}
type Classifier struct {
	httpClient    *http.Client
	apiKey        string
	baseURL       string
	maxTextSize   int
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// inferenceRequest is the request body for the hosted inference endpoint
type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// inferenceError is the error shape the inference endpoint returns
// alongside failing statuses
type inferenceError struct {
	Error string `json:"error"`
}

// NewClassifier creates a new Hugging Face inference classifier
func NewClassifier(
	apiKey string,
	baseURL string,
	timeout time.Duration,
	maxTextSize int,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
) *Classifier {
	return &Classifier{
		httpClient:    &http.Client{Timeout: timeout},
		apiKey:        apiKey,
		baseURL:       strings.TrimRight(baseURL, "/"),
		maxTextSize:   maxTextSize,
		textProcessor: textProcessor,
		logger:        logger,
	}
}

// IsConfigured reports whether an API credential is present
func (c *Classifier) IsConfigured() bool {
	return c.apiKey != ""
}

// Classify sends text to the named model and returns its best
// classification. A nil result with a nil error means the model
// answered with something structurally unusable
func (c *Classifier) Classify(ctx context.Context, model string, text string) (*core.ClassificationResult, error) {
	if c.apiKey == "" {
		return nil, core.ErrMissingCredential
	}

	processed := c.textProcessor.ProcessText(text, c.maxTextSize)
	payload, err := json.Marshal(inferenceRequest{Inputs: processed})
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	url := c.baseURL + "/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &core.UpstreamError{Model: model, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.UpstreamError{Model: model, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug("Inference call completed",
		zap.String("model", model),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &core.UpstreamError{Model: model, Msg: upstreamMessage(body)}
	}

	return parseClassification(body), nil
}

// upstreamMessage extracts the most specific failure message available
// from an error response body
func upstreamMessage(body []byte) string {
	var errResp inferenceError
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return "inference request failed"
}

// parseClassification normalizes the three response shapes the
// inference endpoint produces: a single object, an array of objects,
// or an array of arrays of objects. The first object wins
func parseClassification(body []byte) *core.ClassificationResult {
	var single core.ClassificationResult
	if err := json.Unmarshal(body, &single); err == nil && single.Label != "" {
		return clampScore(&single)
	}

	var list []core.ClassificationResult
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].Label != "" {
		return clampScore(&list[0])
	}

	var nested [][]core.ClassificationResult
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 && nested[0][0].Label != "" {
		return clampScore(&nested[0][0])
	}

	return nil
}

func clampScore(result *core.ClassificationResult) *core.ClassificationResult {
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 1 {
		result.Score = 1
	}
	return result
}
