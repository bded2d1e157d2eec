package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/biaslens/biaslens/internal/core"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ChatClient is an implementation of the ChatClient interface using Google Gemini
type ChatClient struct {
	client      *genai.Client
	maxTokens   int
	temperature float32
	logger      *zap.Logger
}

// NewChatClient creates a new Gemini chat client
func NewChatClient(apiKey string, maxTokens int, temperature float32, logger *zap.Logger) (*ChatClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &ChatClient{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}, nil
}

// Close closes the Gemini client
func (c *ChatClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// StreamChat streams a chat completion from Gemini. Earlier turns are
// passed as chat history; the final user message starts the stream
func (c *ChatClient) StreamChat(ctx context.Context, model string, messages []core.ChatMessage, onChunk func(string) error) error {
	if len(messages) == 0 {
		return errors.New("no messages to send")
	}

	generativeModel := c.client.GenerativeModel(model)
	generativeModel.SetMaxOutputTokens(int32(c.maxTokens))
	generativeModel.SetTemperature(c.temperature)

	session := generativeModel.StartChat()
	session.History = toGeminiHistory(messages[:len(messages)-1])

	last := messages[len(messages)-1]
	iter := session.SendMessageStream(ctx, genai.Text(last.Content))
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Gemini stream error: %w", err)
		}
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if text, ok := part.(genai.Text); ok && text != "" {
					if err := onChunk(string(text)); err != nil {
						return err
					}
				}
			}
		}
	}
}

// toGeminiHistory converts chat messages to Gemini content, mapping
// the assistant role onto Gemini's "model" role
func toGeminiHistory(messages []core.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return history
}
