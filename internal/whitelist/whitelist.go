package whitelist

import (
	"strings"

	"go.uber.org/zap"
)

// Checker provides functionality to check if message senders are whitelisted.
// Whitelisted senders bypass the spam classifier and are always labeled ham.
type Checker struct {
	senders map[string]struct{}
	logger  *zap.Logger
}

// NewChecker creates a new whitelist checker
func NewChecker(senders []string, logger *zap.Logger) *Checker {
	normalized := make(map[string]struct{}, len(senders))
	for _, sender := range senders {
		sender = strings.ToLower(strings.TrimSpace(sender))
		if sender != "" {
			normalized[sender] = struct{}{}
		}
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized whitelist checker", zap.Int("senders", len(normalized)))
	}

	return &Checker{
		senders: normalized,
		logger:  logger,
	}
}

// IsWhitelisted checks if the sender is in the whitelist. Matching is
// case-insensitive on the full sender string.
func (c *Checker) IsWhitelisted(sender string) bool {
	if len(c.senders) == 0 {
		return false
	}

	_, ok := c.senders[strings.ToLower(strings.TrimSpace(sender))]
	if ok && c.logger != nil {
		c.logger.Debug("Sender is whitelisted", zap.String("sender", sender))
	}
	return ok
}
