package di

import (
	"flag"
	"strings"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/adapters/report"
	"github.com/mikey/comm-analyzer/internal/analyzer"
	"github.com/mikey/comm-analyzer/internal/config"
	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/factory"
	"github.com/mikey/comm-analyzer/internal/logging"
	"github.com/mikey/comm-analyzer/internal/parser"
	"github.com/mikey/comm-analyzer/internal/ports"
	"github.com/mikey/comm-analyzer/internal/utils"
	"github.com/mikey/comm-analyzer/internal/whitelist"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Training flags
	TrainingDir string

	// Analysis flags
	Whitelist string

	// Cache flags
	CacheEnabled bool
	CacheType    string
	CacheTTL     string

	// Output flags
	OutputPath string
	Verbose    bool
	JSONLog    bool
	ConfigFile string

	// Sources are the input file paths; empty means read stdin.
	Sources []string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.StringVar(&flags.TrainingDir, "training-dir", "data/training_data", "Directory containing ham_messages.txt and spam_messages.txt")
	flag.StringVar(&flags.Whitelist, "whitelist", "", "Comma-separated list of whitelisted senders (always classified as ham)")
	flag.BoolVar(&flags.CacheEnabled, "cache", false, "Enable the analysis result cache")
	flag.StringVar(&flags.CacheType, "cache-type", "memory", "Cache backend (memory, sqlite, mysql)")
	flag.StringVar(&flags.CacheTTL, "cache-ttl", "24h", "Cache entry TTL")
	flag.StringVar(&flags.OutputPath, "out", "", "Report output path (default: timestamped file under the report directory)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	flags.Sources = flag.Args()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container
// for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewClassifierFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register analyzers
	if err := container.Provide(func(f *factory.ClassifierFactory) core.SpamClassifier {
		return f.CreateClassifier()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func() core.SentimentAnalyzer { return analyzer.NewSentiment() }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() core.StyleAnalyzer { return analyzer.NewStyle() }); err != nil {
		return nil, err
	}

	// Register whitelist checker
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *whitelist.Checker {
		return whitelist.NewChecker(cfg.GetStringSlice("analysis.whitelisted_senders"), logger)
	}); err != nil {
		return nil, err
	}

	// Register cache repository (nil when caching is disabled)
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		if !f.IsCacheEnabled() {
			return nil, nil
		}
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register analysis service
	if err := container.Provide(func(
		classifier core.SpamClassifier,
		sentiment core.SentimentAnalyzer,
		style core.StyleAnalyzer,
		cacheRepo core.CacheRepository,
		cacheFactory *factory.CacheFactory,
		checker *whitelist.Checker,
		logger *zap.Logger,
	) (*core.AnalysisService, error) {
		ttl := time.Duration(0)
		if cacheFactory.IsCacheEnabled() {
			var err error
			ttl, err = cacheFactory.GetCacheTTL()
			if err != nil {
				return nil, err
			}
		}
		return core.NewAnalysisService(
			classifier,
			sentiment,
			style,
			cacheRepo,
			checker,
			logger,
			cacheFactory.IsCacheEnabled(),
			ttl,
		), nil
	}); err != nil {
		return nil, err
	}

	// Register parser
	if err := container.Provide(parser.New); err != nil {
		return nil, err
	}

	// Register report writer
	if err := container.Provide(func(logger *zap.Logger, text *utils.TextProcessor) ports.ReportWriter {
		return report.NewTextReport(logger, text)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	v.Set("training.dir", flags.TrainingDir)

	if flags.Whitelist != "" {
		senders := strings.Split(flags.Whitelist, ",")
		for i, sender := range senders {
			senders[i] = strings.TrimSpace(sender)
		}
		v.Set("analysis.whitelisted_senders", senders)
	}

	v.Set("cache.enabled", flags.CacheEnabled)
	v.Set("cache.type", flags.CacheType)
	v.Set("cache.ttl", flags.CacheTTL)

	return config.NewFromViper(v)
}
