package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

var (
	wordPattern        = regexp.MustCompile(`[a-z]+`)
	contractionPattern = regexp.MustCompile(`[a-z']+`)
)

// Tokenize lowercases the text and returns the contiguous alphabetic runs.
// Digits, punctuation and symbols act as token boundaries and are discarded.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// TokenizeWithApostrophes behaves like Tokenize but keeps apostrophes inside
// tokens so contractions like "don't" survive as single words.
func TokenizeWithApostrophes(text string) []string {
	return contractionPattern.FindAllString(strings.ToLower(text), -1)
}

// TextProcessor provides utilities for preparing text for reports and
// error-record previews.
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// Preview returns at most maxSize bytes of text, cut on a UTF-8 boundary.
// No marker is appended; previews are embedded in report lines as-is.
func (tp *TextProcessor) Preview(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	preview := text[:maxSize]
	for !utf8.ValidString(preview) && len(preview) > 0 {
		preview = preview[:len(preview)-1]
	}
	return preview
}

// SanitizeUTF8 ensures the string contains only valid UTF-8 characters
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	// Replace invalid UTF-8 sequences with the Unicode replacement character
	result := make([]rune, 0, len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			_, size := utf8.DecodeRuneInString(text[i:])
			if size == 1 {
				// Skip invalid UTF-8 sequences
				continue
			}
		}
		result = append(result, r)
	}

	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(string(result))))

	return string(result)
}
