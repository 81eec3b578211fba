package whitelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIsWhitelisted(t *testing.T) {
	checker := NewChecker([]string{" Alice@Example.com ", "bob", ""}, zap.NewNop())

	tests := []struct {
		name   string
		sender string
		want   bool
	}{
		{"exact match", "alice@example.com", true},
		{"case insensitive", "ALICE@EXAMPLE.COM", true},
		{"surrounding whitespace", "  bob  ", true},
		{"unknown sender", "mallory@example.com", false},
		{"substring does not match", "alice", false},
		{"empty sender", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.IsWhitelisted(tt.sender))
		})
	}
}

func TestEmptyWhitelist(t *testing.T) {
	checker := NewChecker(nil, zap.NewNop())
	assert.False(t, checker.IsWhitelisted("anyone"))
}
