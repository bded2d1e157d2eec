package factory

import (
	"fmt"
	"sort"

	"github.com/biaslens/biaslens/internal/adapters/bedrock"
	"github.com/biaslens/biaslens/internal/adapters/gemini"
	"github.com/biaslens/biaslens/internal/adapters/openai"
	"github.com/biaslens/biaslens/internal/config"
	"github.com/biaslens/biaslens/internal/core"
	"go.uber.org/zap"
)

// ChatFactory creates the chat client registry from configuration
type ChatFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewChatFactory creates a new chat factory
func NewChatFactory(cfg *config.Config, logger *zap.Logger) *ChatFactory {
	return &ChatFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// ChatRegistry resolves a chat model name to the provider client that
// serves it
type ChatRegistry struct {
	models       map[string]string
	clients      map[string]core.ChatClient
	defaultModel string
}

// NewChatRegistry creates a registry from an explicit model-to-provider
// mapping and provider client set
func NewChatRegistry(models map[string]string, clients map[string]core.ChatClient, defaultModel string) *ChatRegistry {
	return &ChatRegistry{
		models:       models,
		clients:      clients,
		defaultModel: defaultModel,
	}
}

// CreateChatRegistry instantiates one client per provider referenced
// by the configured model registry. A provider whose client cannot be
// built is logged and skipped, leaving its models unavailable
func (f *ChatFactory) CreateChatRegistry() (*ChatRegistry, error) {
	chatCfg := f.cfg.GetChat()

	providers := make(map[string]bool)
	for _, provider := range chatCfg.Models {
		providers[provider] = true
	}

	clients := make(map[string]core.ChatClient)
	for provider := range providers {
		client, err := f.createClient(provider)
		if err != nil {
			f.logger.Warn("Skipping unavailable chat provider",
				zap.String("provider", provider),
				zap.Error(err))
			continue
		}
		clients[provider] = client
	}

	return &ChatRegistry{
		models:       chatCfg.Models,
		clients:      clients,
		defaultModel: chatCfg.DefaultModel,
	}, nil
}

func (f *ChatFactory) createClient(provider string) (core.ChatClient, error) {
	switch provider {
	case "openai":
		return openai.NewFactory(f.cfg, f.logger).CreateChatClient()
	case "gemini":
		return gemini.NewFactory(f.cfg, f.logger).CreateChatClient()
	case "bedrock":
		return bedrock.NewFactory(f.cfg, f.logger).CreateChatClient()
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s", provider)
	}
}

// DefaultModel returns the configured default chat model
func (r *ChatRegistry) DefaultModel() string {
	return r.defaultModel
}

// Models lists the model names that currently have a working provider
func (r *ChatRegistry) Models() []string {
	names := make([]string, 0, len(r.models))
	for name, provider := range r.models {
		if _, ok := r.clients[provider]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ClientFor resolves the chat client serving the named model
func (r *ChatRegistry) ClientFor(model string) (core.ChatClient, error) {
	provider, ok := r.models[model]
	if !ok {
		return nil, fmt.Errorf("unknown chat model: %s", model)
	}
	client, ok := r.clients[provider]
	if !ok {
		return nil, fmt.Errorf("chat provider %s is not available", provider)
	}
	return client, nil
}

// Close releases provider clients that hold connections
func (r *ChatRegistry) Close() error {
	var firstErr error
	for _, client := range r.clients {
		if closer, ok := client.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
