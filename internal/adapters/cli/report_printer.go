package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/biaslens/biaslens/internal/core"
	"go.uber.org/zap"
)

// ReportPrinter runs the analysis pipeline for command-line input and
// renders the report as human-readable text
type ReportPrinter struct {
	service *core.AnalysisService
	logger  *zap.Logger
	verbose bool
}

// NewReportPrinter creates a new CLI report printer
func NewReportPrinter(service *core.AnalysisService, logger *zap.Logger, verbose bool) *ReportPrinter {
	return &ReportPrinter{
		service: service,
		logger:  logger,
		verbose: verbose,
	}
}

// ProcessText analyzes a block of text and prints the resulting report
func (p *ReportPrinter) ProcessText(ctx context.Context, text string) (*core.AnalysisReport, error) {
	p.logger.Debug("Processing text", zap.Int("length", len(text)))

	fmt.Printf("\n=== Input ===\n")
	preview := text
	if !p.verbose && len(preview) > 500 {
		preview = preview[:500] + "..."
	}
	fmt.Printf("%s\n\n", preview)

	fmt.Printf("=== Analysis ===\n")
	fmt.Printf("Analyzing sentences with hosted classifiers...\n")
	startTime := time.Now()
	report, err := p.service.AnalyzeText(ctx, text)
	if err != nil {
		p.logger.Error("Failed to analyze text", zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		return nil, err
	}
	duration := time.Since(startTime)

	for i, record := range report.Sentences {
		marker := " "
		if core.IsBiasedLabel(record.Detection.FriendlyLabel) {
			marker = "!"
		}
		fmt.Printf("%s %2d. [%s %.3f] %s\n",
			marker, i+1, record.Detection.FriendlyLabel, record.Detection.Score, record.Sentence)
		if record.BiasType != nil {
			fmt.Printf("        type: %s (%.3f)\n", record.BiasType.Label, record.BiasType.Score)
		}
	}

	stats := report.Statistics
	fmt.Printf("\n=== Statistics ===\n")
	fmt.Printf("Sentences analyzed: %d\n", stats.TotalSentences)
	fmt.Printf("Biased:             %d\n", stats.BiasedSentences)
	fmt.Printf("Unbiased:           %d\n", stats.UnbiasedSentences)
	fmt.Printf("Bias percentage:    %.1f%%\n", stats.BiasPercentage)
	fmt.Printf("Avg bias score:     %.3f\n", stats.AvgBiasScore)
	fmt.Printf("Avg biased score:   %.3f\n", stats.AvgBiasedScore)
	if len(stats.BiasTypeCounts) > 0 {
		fmt.Printf("Bias types:\n")
		for label, count := range stats.BiasTypeCounts {
			fmt.Printf("  %-16s %d\n", label, count)
		}
	}
	fmt.Printf("Analysis took %s\n", duration.Round(time.Millisecond))

	return report, nil
}
