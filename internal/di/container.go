package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/biaslens/biaslens/internal/config"
	"github.com/biaslens/biaslens/internal/core"
	"github.com/biaslens/biaslens/internal/factory"
	"github.com/biaslens/biaslens/internal/logging"
	"github.com/biaslens/biaslens/internal/ports"
	"github.com/biaslens/biaslens/internal/transport/httpserver"
	"github.com/biaslens/biaslens/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewClassifierFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewChatFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register classifier, wrapped with the cache when caching is enabled
	if err := container.Provide(func(
		f *factory.ClassifierFactory,
		cacheFactory *factory.CacheFactory,
		cacheRepo core.CacheRepository,
		logger *zap.Logger,
	) (core.Classifier, error) {
		classifier, err := f.CreateClassifier()
		if err != nil {
			return nil, err
		}
		if !cacheFactory.IsCacheEnabled() {
			return classifier, nil
		}
		ttl, err := cacheFactory.GetCacheTTL()
		if err != nil {
			return nil, err
		}
		return core.NewCachedClassifier(classifier, cacheRepo, logger, ttl), nil
	}); err != nil {
		return nil, err
	}

	// Register sentence analyzer
	if err := container.Provide(func(
		classifier core.Classifier,
		logger *zap.Logger,
		cfg *config.Config,
	) (*core.SentenceAnalyzer, error) {
		hfCfg, err := cfg.GetHuggingFace()
		if err != nil {
			return nil, err
		}
		analysisCfg := cfg.GetAnalysis()
		return core.NewSentenceAnalyzer(
			classifier,
			logger,
			hfCfg.DetectionModel,
			hfCfg.TypeModel,
			analysisCfg.BiasThreshold,
			analysisCfg.MaxConcurrency,
		), nil
	}); err != nil {
		return nil, err
	}

	// Register analysis service
	if err := container.Provide(func(
		analyzer *core.SentenceAnalyzer,
		logger *zap.Logger,
		cfg *config.Config,
	) *core.AnalysisService {
		return core.NewAnalysisService(analyzer, logger, cfg.GetAnalysis().BiasThreshold)
	}); err != nil {
		return nil, err
	}

	// Register chat registry
	if err := container.Provide(func(f *factory.ChatFactory) (*factory.ChatRegistry, error) {
		return f.CreateChatRegistry()
	}); err != nil {
		return nil, err
	}

	// Register HTTP server
	if err := container.Provide(func(
		service *core.AnalysisService,
		registry *factory.ChatRegistry,
		cfg *config.Config,
		logger *zap.Logger,
	) (ports.Transport, error) {
		serverCfg, err := cfg.GetServer()
		if err != nil {
			return nil, err
		}
		handler := httpserver.NewRouter(&httpserver.RouterDeps{
			AnalysisService: service,
			ChatRegistry:    registry,
			StaticDir:       serverCfg.StaticDir,
			Logger:          logger,
		})
		return httpserver.NewServer(serverCfg, handler, logger), nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}
