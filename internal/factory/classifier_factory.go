package factory

import (
	"os"

	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/analyzer"
	"github.com/mikey/comm-analyzer/internal/config"
	"github.com/mikey/comm-analyzer/internal/utils"
)

// ClassifierFactory builds the spam classifier from the configured training
// corpora. Missing corpus files degrade to the classifier's built-in minimal
// training pair rather than failing.
type ClassifierFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewClassifierFactory creates a new classifier factory
func NewClassifierFactory(cfg *config.Config, logger *zap.Logger) *ClassifierFactory {
	return &ClassifierFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// LoadTrainingData reads the configured ham and spam corpora. A missing or
// unreadable file yields an empty corpus for that class.
func (f *ClassifierFactory) LoadTrainingData() analyzer.TrainingData {
	training := f.cfg.GetTraining()
	return analyzer.TrainingData{
		Ham:  f.loadCorpus(training.HamPath()),
		Spam: f.loadCorpus(training.SpamPath()),
	}
}

// CreateClassifier builds a trained NaiveBayes classifier.
func (f *ClassifierFactory) CreateClassifier() *analyzer.NaiveBayes {
	return analyzer.NewNaiveBayes(f.LoadTrainingData(), f.logger)
}

func (f *ClassifierFactory) loadCorpus(path string) []string {
	if _, err := os.Stat(path); err != nil {
		f.logger.Warn("Training corpus not found", zap.String("path", path))
		return nil
	}

	lines, err := utils.ReadLines(path)
	if err != nil {
		f.logger.Warn("Failed to read training corpus",
			zap.String("path", path),
			zap.Error(err))
		return nil
	}
	return lines
}
