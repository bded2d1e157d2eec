package openai

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/biaslens/biaslens/internal/core"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ChatClient is an implementation of the ChatClient interface using OpenAI
type ChatClient struct {
	client      *openai.Client
	maxTokens   int
	temperature float32
	logger      *zap.Logger
}

// NewChatClient creates a new OpenAI chat client
func NewChatClient(client *openai.Client, maxTokens int, temperature float32, logger *zap.Logger) *ChatClient {
	return &ChatClient{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// StreamChat streams a chat completion, delivering each content delta
// to onChunk as it arrives
func (c *ChatClient) StreamChat(ctx context.Context, model string, messages []core.ChatMessage, onChunk func(string) error) error {
	req := openai.ChatCompletionRequest{
		Model:       model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Stream:      true,
		Messages:    toOpenAIMessages(messages),
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create chat completion stream with OpenAI: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("OpenAI stream error: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			if err := onChunk(delta); err != nil {
				return err
			}
		}
	}
}

func toOpenAIMessages(messages []core.ChatMessage) []openai.ChatCompletionMessage {
	converted := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		switch role {
		case "user", "assistant", "system":
		default:
			role = openai.ChatMessageRoleUser
		}
		converted = append(converted, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return converted
}
