// Package analyzer holds the three per-message analyzers: the Naive Bayes
// spam classifier and the lexicon-based sentiment and style scorers. All
// analyzers are read-only after construction and safe for concurrent use.
package analyzer

import (
	"math"

	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/utils"
)

// Built-in minimal training pair used when no labeled corpora are available.
const (
	defaultHamExample  = "hello how are you"
	defaultSpamExample = "buy now free money"
)

// TrainingData carries the labeled corpora for the spam classifier,
// one message per slice element.
type TrainingData struct {
	Ham  []string
	Spam []string
}

// IsEmpty reports whether neither corpus has any messages.
func (d TrainingData) IsEmpty() bool {
	return len(d.Ham) == 0 && len(d.Spam) == 0
}

// NaiveBayes is a word-frequency spam classifier with Laplace smoothing.
// The model is built once at construction and never mutated afterwards.
type NaiveBayes struct {
	hamWords  map[string]int
	spamWords map[string]int
	hamTotal  int
	spamTotal int
	hamCount  int
	spamCount int
	vocab     map[string]struct{}
	logger    *zap.Logger
}

// NewNaiveBayes creates a classifier trained on the given corpora. When both
// corpora are empty it falls back to the built-in minimal training pair
// instead of failing.
func NewNaiveBayes(data TrainingData, logger *zap.Logger) *NaiveBayes {
	nb := &NaiveBayes{
		hamWords:  make(map[string]int),
		spamWords: make(map[string]int),
		vocab:     make(map[string]struct{}),
		logger:    logger,
	}

	if data.IsEmpty() {
		logger.Warn("No training corpora available, using minimal built-in training")
		nb.train(defaultHamExample, false)
		nb.train(defaultSpamExample, true)
		return nb
	}

	for _, msg := range data.Ham {
		nb.train(msg, false)
	}
	for _, msg := range data.Spam {
		nb.train(msg, true)
	}

	logger.Info("Trained spam classifier",
		zap.Int("ham_messages", nb.hamCount),
		zap.Int("spam_messages", nb.spamCount),
		zap.Int("vocabulary_size", len(nb.vocab)))

	return nb
}

// train feeds one labeled message into the model. Only called during construction.
func (nb *NaiveBayes) train(message string, isSpam bool) {
	words := utils.Tokenize(message)
	for _, word := range words {
		nb.vocab[word] = struct{}{}
		if isSpam {
			nb.spamWords[word]++
			nb.spamTotal++
		} else {
			nb.hamWords[word]++
			nb.hamTotal++
		}
	}

	if isSpam {
		nb.spamCount++
	} else {
		nb.hamCount++
	}
}

// VocabularySize returns the number of distinct words seen during training.
func (nb *NaiveBayes) VocabularySize() int {
	return len(nb.vocab)
}

// TrainedMessages returns the ham and spam message counts of the model.
func (nb *NaiveBayes) TrainedMessages() (ham, spam int) {
	return nb.hamCount, nb.spamCount
}

// wordLogProbability computes the Laplace-smoothed log probability of a word
// in one class: log((count+1) / (totalWordsInClass + vocabularySize)).
func (nb *NaiveBayes) wordLogProbability(word string, counts map[string]int, total int) float64 {
	vocabSize := len(nb.vocab)
	if vocabSize == 0 {
		vocabSize = 1
	}
	return math.Log(float64(counts[word]+1) / float64(total+vocabSize))
}

// posteriors returns the log posteriors for ham and spam. A class with zero
// training messages gets -Inf, mirroring a zero prior.
func (nb *NaiveBayes) posteriors(words []string) (logHam, logSpam float64) {
	total := nb.hamCount + nb.spamCount

	logHam = math.Inf(-1)
	logSpam = math.Inf(-1)

	if nb.hamCount > 0 {
		logHam = math.Log(float64(nb.hamCount) / float64(total))
		for _, word := range words {
			logHam += nb.wordLogProbability(word, nb.hamWords, nb.hamTotal)
		}
	}
	if nb.spamCount > 0 {
		logSpam = math.Log(float64(nb.spamCount) / float64(total))
		for _, word := range words {
			logSpam += nb.wordLogProbability(word, nb.spamWords, nb.spamTotal)
		}
	}
	return logHam, logSpam
}

// Predict classifies text as LabelSpam or LabelHam. Spam requires positive
// evidence: empty input, an untrained model and ties all resolve to ham.
func (nb *NaiveBayes) Predict(text string) string {
	words := utils.Tokenize(text)
	if len(words) == 0 || nb.hamCount+nb.spamCount == 0 {
		return core.LabelHam
	}

	logHam, logSpam := nb.posteriors(words)

	// Both -Inf means no class had any evidence.
	if logSpam > logHam {
		return core.LabelSpam
	}
	return core.LabelHam
}
