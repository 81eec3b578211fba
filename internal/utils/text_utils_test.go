package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"mixed punctuation and digits", "Hello, World! 123", []string{"hello", "world"}},
		{"uppercase", "FREE MONEY", []string{"free", "money"}},
		{"empty", "", nil},
		{"only symbols", "123 !!! ...", nil},
		{"apostrophes split", "don't", []string{"don", "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	tokens := Tokenize("Hello, World! 123")
	rejoined := ""
	for _, tok := range tokens {
		rejoined += tok + " "
	}
	assert.Equal(t, tokens, Tokenize(rejoined))
}

func TestTokenizeWithApostrophes(t *testing.T) {
	assert.Equal(t, []string{"i'm", "gonna", "win"}, TokenizeWithApostrophes("I'm gonna win!"))
	assert.Equal(t, []string{"don't"}, TokenizeWithApostrophes("Don't."))
}

func TestPreview(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "short", tp.Preview("short", 100))
	assert.Equal(t, "abcde", tp.Preview("abcdefgh", 5))

	// Multi-byte runes are never split.
	s := "héllo wörld"
	got := tp.Preview(s, 2)
	assert.Equal(t, "h", got)
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "clean", tp.SanitizeUTF8("clean"))
	assert.Equal(t, "ab", tp.SanitizeUTF8("a\xffb"))
}
