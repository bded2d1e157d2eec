package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/biaslens/biaslens/internal/core"
	"go.uber.org/zap"
)

// ChatClient is an implementation of the ChatClient interface using
// Amazon Bedrock's response streaming API
type ChatClient struct {
	client      *bedrockruntime.Client
	maxTokens   int
	temperature float32
	logger      *zap.Logger
}

// completionChunk is one streamed fragment of an Anthropic-style
// text completion
type completionChunk struct {
	Completion string `json:"completion"`
	StopReason string `json:"stop_reason"`
}

// NewChatClient creates a new Bedrock chat client
func NewChatClient(client *bedrockruntime.Client, maxTokens int, temperature float32, logger *zap.Logger) *ChatClient {
	return &ChatClient{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// StreamChat streams a model response from Bedrock, delivering each
// completion fragment to onChunk as it arrives
func (c *ChatClient) StreamChat(ctx context.Context, model string, messages []core.ChatMessage, onChunk func(string) error) error {
	payload, err := json.Marshal(map[string]interface{}{
		"prompt":               buildPrompt(messages),
		"max_tokens_to_sample": c.maxTokens,
		"temperature":          c.temperature,
	})
	if err != nil {
		return fmt.Errorf("failed to encode Bedrock request: %w", err)
	}

	output, err := c.client.InvokeModelWithResponseStream(ctx, &bedrockruntime.InvokeModelWithResponseStreamInput{
		ModelId:     aws.String(model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        payload,
	})
	if err != nil {
		return fmt.Errorf("failed to invoke Bedrock model: %w", err)
	}

	stream := output.GetStream()
	defer stream.Close()

	for event := range stream.Events() {
		chunk, ok := event.(*types.ResponseStreamMemberChunk)
		if !ok {
			continue
		}
		var fragment completionChunk
		if err := json.Unmarshal(chunk.Value.Bytes, &fragment); err != nil {
			c.logger.Warn("Skipping undecodable Bedrock chunk", zap.Error(err))
			continue
		}
		if fragment.Completion != "" {
			if err := onChunk(fragment.Completion); err != nil {
				return err
			}
		}
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("Bedrock stream error: %w", err)
	}
	return nil
}

// buildPrompt renders the conversation in the Human/Assistant turn
// format Anthropic text-completion models expect
func buildPrompt(messages []core.ChatMessage) string {
	var b strings.Builder
	for _, m := range messages {
		switch m.Role {
		case "assistant":
			b.WriteString("\n\nAssistant: ")
		default:
			b.WriteString("\n\nHuman: ")
		}
		b.WriteString(m.Content)
	}
	b.WriteString("\n\nAssistant:")
	return b.String()
}
