package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/adapters/report"
	"github.com/mikey/comm-analyzer/internal/config"
	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/di"
	"github.com/mikey/comm-analyzer/internal/metrics"
	"github.com/mikey/comm-analyzer/internal/parser"
	"github.com/mikey/comm-analyzer/internal/ports"
	"github.com/mikey/comm-analyzer/internal/utils"
)

func main() {
	flags := di.ParseFlags()

	// Build the dependency injection container
	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	flags *di.CLIFlags,
	cfg *config.Config,
	logger *zap.Logger,
	p *parser.Parser,
	service *core.AnalysisService,
	writer ports.ReportWriter,
	cacheRepo core.CacheRepository,
) error {
	defer logger.Sync()

	batch := collectMessages(flags, logger, p)
	if len(batch) == 0 {
		logger.Warn("No messages found in input")
	}

	analyzed := service.AnalyzeBatch(context.Background(), batch)

	content := metrics.CalculateContentMetrics(analyzed)
	engagement := metrics.CalculateEngagementMetrics(analyzed)

	outputPath := flags.OutputPath
	if outputPath == "" {
		outputPath = report.ReportFileName(cfg.GetReport().OutputDir)
	}
	if err := writer.WriteReport(outputPath, analyzed, content, engagement); err != nil {
		logger.Error("Failed to write report", zap.Error(err))
		return err
	}
	writer.PrintSummary(content, engagement)

	// Stop the cache if needed
	if stopper, ok := cacheRepo.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	return nil
}

// collectMessages parses every input source into one batch. An unreadable
// source becomes an error record so the rest of the batch still runs.
func collectMessages(flags *di.CLIFlags, logger *zap.Logger, p *parser.Parser) []core.Message {
	if len(flags.Sources) == 0 {
		logger.Info("Reading messages from stdin")
		content, err := readStdin()
		if err != nil {
			logger.Error("Failed to read stdin", zap.Error(err))
			return []core.Message{{
				Source:    "stdin",
				MessageID: "stdin_error",
				Error:     err.Error(),
			}}
		}
		return p.Parse(content, "stdin")
	}

	var batch []core.Message
	for _, path := range flags.Sources {
		name := filepath.Base(path)
		logger.Info("Reading messages from file", zap.String("file", path))

		content, err := utils.ReadTextFile(path)
		if err != nil {
			logger.Error("Failed to read input file", zap.Error(err), zap.String("file", path))
			batch = append(batch, core.Message{
				Source:    name,
				MessageID: name + "_error",
				Error:     err.Error(),
			})
			continue
		}
		batch = append(batch, p.Parse(content, name)...)
	}
	return batch
}

func readStdin() (string, error) {
	data, err := io.ReadAll(utils.DecodeText(bufio.NewReader(os.Stdin)))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
