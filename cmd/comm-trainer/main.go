package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/config"
	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/factory"
	"github.com/mikey/comm-analyzer/internal/logging"
)

var (
	trainingDir = flag.String("training-dir", "data/training_data", "Directory containing ham_messages.txt and spam_messages.txt")
	probe       = flag.String("probe", "", "Optional message to classify with the freshly trained model")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog     = flag.Bool("json-log", false, "Output logs in JSON format")
)

// comm-trainer is a dry-run sanity tool for training data: it trains the spam
// classifier from the given corpora and reports the resulting model shape.
func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	v := config.NewEmptyViper()
	v.Set("training.dir", *trainingDir)
	cfg := config.NewFromViper(v)

	classifierFactory := factory.NewClassifierFactory(cfg, logger)
	data := classifierFactory.LoadTrainingData()
	classifier := classifierFactory.CreateClassifier()

	ham, spam := classifier.TrainedMessages()

	fmt.Printf("\n=== Training Summary ===\n")
	fmt.Printf("Training dir      : %s\n", *trainingDir)
	fmt.Printf("Ham corpus lines  : %d\n", len(data.Ham))
	fmt.Printf("Spam corpus lines : %d\n", len(data.Spam))
	fmt.Printf("Ham messages      : %d\n", ham)
	fmt.Printf("Spam messages     : %d\n", spam)
	fmt.Printf("Vocabulary size   : %d\n", classifier.VocabularySize())
	if data.IsEmpty() {
		fmt.Printf("Note: no corpora found, model uses the built-in minimal training pair\n")
	}

	if *probe != "" {
		label := classifier.Predict(*probe)
		fmt.Printf("\n=== Probe ===\n")
		fmt.Printf("Message : %s\n", *probe)
		fmt.Printf("Verdict : %s\n", label)
		if label == core.LabelSpam {
			logger.Info("Probe message classified as spam",
				zap.String("message", *probe))
		}
	}
}
