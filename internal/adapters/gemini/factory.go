package gemini

import (
	"github.com/biaslens/biaslens/internal/config"
	"github.com/biaslens/biaslens/internal/core"
	"go.uber.org/zap"
)

// Factory creates new instances of the Gemini chat client
type Factory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewFactory creates a new factory for Gemini chat clients
func NewFactory(cfg *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateChatClient creates a new Gemini chat client
func (f *Factory) CreateChatClient() (core.ChatClient, error) {
	geminiCfg := f.cfg.GetGemini()

	return NewChatClient(
		geminiCfg.APIKey,
		geminiCfg.MaxTokens,
		geminiCfg.Temperature,
		f.logger,
	)
}
