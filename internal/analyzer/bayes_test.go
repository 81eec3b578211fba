package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/utils"
)

func testCorpus() TrainingData {
	return TrainingData{
		Ham: []string{
			"hello how are you doing today",
			"let us meet for lunch tomorrow",
			"please review the attached report",
			"thanks for your help with the project",
		},
		Spam: []string{
			"buy now and win free money",
			"free prize click here to claim your money",
			"urgent offer act now limited time",
			"win a free vacation click now",
		},
	}
}

func TestNaiveBayesPredict(t *testing.T) {
	nb := NewNaiveBayes(testCorpus(), zap.NewNop())

	tests := []struct {
		name string
		text string
		want string
	}{
		{"obvious spam", "Claim your FREE money now, click here to win!", core.LabelSpam},
		{"obvious ham", "Hello, how are you? Let us meet for lunch.", core.LabelHam},
		{"empty text", "", core.LabelHam},
		{"no alphabetic tokens", "123 456 !!!", core.LabelHam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nb.Predict(tt.text))
		})
	}
}

func TestNaiveBayesFallbackTraining(t *testing.T) {
	nb := NewNaiveBayes(TrainingData{}, zap.NewNop())

	ham, spam := nb.TrainedMessages()
	assert.Equal(t, 1, ham)
	assert.Equal(t, 1, spam)
	assert.Equal(t, 8, nb.VocabularySize())

	assert.Equal(t, core.LabelSpam, nb.Predict("free money"))
	assert.Equal(t, core.LabelHam, nb.Predict("hello how are you"))
}

func TestNaiveBayesSingleClassCorpus(t *testing.T) {
	// With only ham training the spam prior is zero, so nothing can be spam.
	nb := NewNaiveBayes(TrainingData{Ham: []string{"hello there"}}, zap.NewNop())

	assert.Equal(t, core.LabelHam, nb.Predict("free money win now"))
	assert.Equal(t, core.LabelHam, nb.Predict("hello there"))
}

func TestNaiveBayesUnseenWordsResolveToHam(t *testing.T) {
	nb := NewNaiveBayes(testCorpus(), zap.NewNop())

	// Every word unseen: no spam evidence exists, so the verdict is ham.
	assert.Equal(t, core.LabelHam, nb.Predict("zyzzyva quux"))
}

func TestNaiveBayesSpamEvidenceMonotonic(t *testing.T) {
	nb := NewNaiveBayes(testCorpus(), zap.NewNop())

	base := "please review the report"
	grown := base
	prevMargin := spamMargin(t, nb, base)

	for i := 0; i < 5; i++ {
		grown += " free money win"
		margin := spamMargin(t, nb, grown)
		assert.Greater(t, margin, prevMargin,
			"adding spam-indicative words must increase the spam margin")
		prevMargin = margin
	}

	assert.Equal(t, core.LabelSpam, nb.Predict(grown))
}

func spamMargin(t *testing.T, nb *NaiveBayes, text string) float64 {
	t.Helper()
	words := utils.Tokenize(text)
	require.NotEmpty(t, words)
	logHam, logSpam := nb.posteriors(words)
	return logSpam - logHam
}

func TestNaiveBayesVocabularyCountsDistinctWords(t *testing.T) {
	nb := NewNaiveBayes(TrainingData{
		Ham:  []string{"hello hello hello"},
		Spam: []string{"money money"},
	}, zap.NewNop())

	assert.Equal(t, 2, nb.VocabularySize())
}
