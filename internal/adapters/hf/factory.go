package hf

import (
	"github.com/biaslens/biaslens/internal/config"
	"github.com/biaslens/biaslens/internal/core"
	"github.com/biaslens/biaslens/internal/utils"
	"go.uber.org/zap"
)

// Factory creates new instances of the inference classifier
type Factory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewFactory creates a new factory for inference classifiers
func NewFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *Factory {
	return &Factory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateClassifier creates a new classifier from configuration
func (f *Factory) CreateClassifier() (core.Classifier, error) {
	hfCfg, err := f.cfg.GetHuggingFace()
	if err != nil {
		return nil, err
	}

	return NewClassifier(
		hfCfg.APIKey,
		hfCfg.BaseURL,
		hfCfg.Timeout,
		hfCfg.MaxTextSize,
		f.textProcessor,
		f.logger,
	), nil
}
