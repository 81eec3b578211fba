package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/config"
	"github.com/mikey/comm-analyzer/internal/core"
)

func trainingConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	v := config.NewEmptyViper()
	v.Set("training.dir", dir)
	return config.NewFromViper(v)
}

func TestLoadTrainingData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ham_messages.txt"),
		[]byte("hello how are you\nmeeting at noon\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spam_messages.txt"),
		[]byte("win free money now\n"), 0644))

	f := NewClassifierFactory(trainingConfig(t, dir), zap.NewNop())

	data := f.LoadTrainingData()
	assert.Len(t, data.Ham, 2)
	assert.Len(t, data.Spam, 1)
	assert.False(t, data.IsEmpty())
}

func TestLoadTrainingDataMissingFiles(t *testing.T) {
	f := NewClassifierFactory(trainingConfig(t, t.TempDir()), zap.NewNop())

	data := f.LoadTrainingData()
	assert.True(t, data.IsEmpty())
}

func TestCreateClassifierWithMissingCorpora(t *testing.T) {
	f := NewClassifierFactory(trainingConfig(t, t.TempDir()), zap.NewNop())

	// Falls back to the built-in minimal training pair.
	nb := f.CreateClassifier()
	ham, spam := nb.TrainedMessages()
	assert.Equal(t, 1, ham)
	assert.Equal(t, 1, spam)
	assert.Equal(t, core.LabelSpam, nb.Predict("free money"))
}

func TestCreateClassifierFromCorpora(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ham_messages.txt"),
		[]byte("hello how are you doing\nlet us meet for lunch\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spam_messages.txt"),
		[]byte("win free money now\nclaim your free prize now\n"), 0644))

	f := NewClassifierFactory(trainingConfig(t, dir), zap.NewNop())

	nb := f.CreateClassifier()
	assert.Equal(t, core.LabelSpam, nb.Predict("claim free money"))
	assert.Equal(t, core.LabelHam, nb.Predict("hello how are you"))
}
