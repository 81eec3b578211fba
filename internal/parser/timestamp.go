package parser

import (
	"strings"
	"time"
)

// emailTimestampLayout is the only accepted layout for email Date headers.
const emailTimestampLayout = "2006-01-02 15:04:05"

// chatTimestampLayouts are tried in order for chat-log timestamps:
// 2-digit year 12h, 4-digit year 12h, 2-digit year 24h, 4-digit year 24h.
var chatTimestampLayouts = []string{
	"1/2/06 3:04 PM",
	"1/2/2006 3:04 PM",
	"1/2/06 15:04",
	"1/2/2006 15:04",
}

// parseChatTimestamp tries the chat layouts in order and returns the first
// success, or nil when no layout matches.
func parseChatTimestamp(value string) *time.Time {
	// The am/pm marker is matched case-insensitively during line detection;
	// time.Parse wants it to agree with the layout case.
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for _, layout := range chatTimestampLayouts {
		if ts, err := time.Parse(layout, normalized); err == nil {
			return &ts
		}
	}
	return nil
}

// ParseTimestamp re-parses a textual timestamp through the full ingestion
// fallback chain: the email layout first, then the chat layouts. Returns nil
// when nothing matches. The metrics aggregator uses this for records whose
// timestamps arrived as raw text.
func ParseTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if ts, err := time.Parse(emailTimestampLayout, value); err == nil {
		return &ts
	}
	return parseChatTimestamp(value)
}
