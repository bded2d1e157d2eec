package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/biaslens/biaslens/internal/adapters/cli"
	"github.com/biaslens/biaslens/internal/config"
	"github.com/biaslens/biaslens/internal/core"
	"github.com/biaslens/biaslens/internal/factory"
	"github.com/biaslens/biaslens/internal/logging"
	"go.uber.org/zap"
)

var (
	// Inference flags
	apiKey         = flag.String("api-key", "", "API key for the hosted inference endpoint (or BIASLENS_HUGGINGFACE_API_KEY)")
	baseURL        = flag.String("base-url", "", "Base URL of the hosted inference endpoint")
	detectionModel = flag.String("detection-model", "", "Model for binary bias detection")
	typeModel      = flag.String("type-model", "", "Model for bias type classification")

	// Analysis flags
	biasThreshold  = flag.Float64("threshold", 0.5, "Detection score above which a sentence counts as biased")
	maxConcurrency = flag.Int("max-concurrency", 4, "Maximum concurrent sentence analyses")

	// Input flags
	inputFile  = flag.String("file", "", "Input text file (use stdin if not specified)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg *config.Config

	// Load configuration from file if specified
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		// Create config from command line flags
		cfg = createConfigFromFlags()
	}

	// Build the analysis pipeline
	textProcessor := factory.NewTextProcessorFactory(logger).CreateTextProcessor()
	classifier, err := factory.NewClassifierFactory(cfg, logger, textProcessor).CreateClassifier()
	if err != nil {
		logger.Fatal("Failed to create classifier", zap.Error(err))
	}

	hfCfg, err := cfg.GetHuggingFace()
	if err != nil {
		logger.Fatal("Invalid inference configuration", zap.Error(err))
	}
	analysisCfg := cfg.GetAnalysis()

	analyzer := core.NewSentenceAnalyzer(
		classifier,
		logger,
		hfCfg.DetectionModel,
		hfCfg.TypeModel,
		analysisCfg.BiasThreshold,
		analysisCfg.MaxConcurrency,
	)
	service := core.NewAnalysisService(analyzer, logger, analysisCfg.BiasThreshold)
	printer := cli.NewReportPrinter(service, logger, *verbose)

	// Read text from file or stdin
	var textReader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		textReader = file
		logger.Info("Reading text from file", zap.String("file", *inputFile))
	} else {
		textReader = os.Stdin
		logger.Info("Reading text from stdin")
	}

	textBytes, err := io.ReadAll(textReader)
	if err != nil {
		logger.Fatal("Failed to read input text", zap.Error(err))
	}

	if _, err := printer.ProcessText(context.Background(), string(textBytes)); err != nil {
		os.Exit(1)
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	if *apiKey != "" {
		v.Set("huggingface.api_key", *apiKey)
	} else if envKey := os.Getenv("BIASLENS_HUGGINGFACE_API_KEY"); envKey != "" {
		v.Set("huggingface.api_key", envKey)
	}
	if *baseURL != "" {
		v.Set("huggingface.base_url", *baseURL)
	}
	if *detectionModel != "" {
		v.Set("huggingface.detection_model", *detectionModel)
	}
	if *typeModel != "" {
		v.Set("huggingface.type_model", *typeModel)
	}

	v.Set("analysis.bias_threshold", *biasThreshold)
	v.Set("analysis.max_concurrency", *maxConcurrency)

	return config.NewFromViper(v)
}
