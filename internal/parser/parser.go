// Package parser turns raw log content into canonical message records.
// Format detection is heuristic: chat-log lines win over the multi-email
// boundary marker, and a single-email parse is the fallback that always
// succeeds. A malformed unit becomes an error record; it never aborts the
// batch.
package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/utils"
)

// EmailBoundary is the literal marker separating concatenated email blocks
// within one file.
const EmailBoundary = "---EMAIL_BOUNDARY---"

// errorPreviewSize bounds the content preview stored on error records.
const errorPreviewSize = 200

// detectionWindow is how many leading lines are inspected for the chat format.
const detectionWindow = 5

// chatLinePattern matches one chat-log message line:
// "<d/m/yy>, <h:mm[ am/pm]> - <sender>: <text>".
var chatLinePattern = regexp.MustCompile(
	`^(\d{1,2}/\d{1,2}/\d{2,4}),\s*(\d{1,2}:\d{2}(?:\s*(?i:am|pm))?)\s*-\s*([^:]+?):\s*(.*)$`)

// Parser parses raw file content into canonical message records.
type Parser struct {
	logger *zap.Logger
	text   *utils.TextProcessor
}

// New creates a new Parser.
func New(logger *zap.Logger, text *utils.TextProcessor) *Parser {
	return &Parser{
		logger: logger,
		text:   text,
	}
}

// Parse inspects the content, selects a parsing strategy and returns the
// ordered records. The slice is never empty for non-empty input; blocks that
// fail to parse appear as error records.
func (p *Parser) Parse(content, name string) []core.Message {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	switch {
	case p.isChatFormat(content):
		p.logger.Debug("Detected chat log format", zap.String("source", name))
		return p.parseChatLog(content, name)
	case strings.Contains(content, EmailBoundary):
		p.logger.Debug("Detected multi-email format", zap.String("source", name))
		return p.parseMultiEmail(content, name)
	default:
		return p.parseSingleEmail(content, name)
	}
}

// isChatFormat checks the first few lines for the chat line pattern.
func (p *Parser) isChatFormat(content string) bool {
	lines := strings.Split(content, "\n")
	if len(lines) > detectionWindow {
		lines = lines[:detectionWindow]
	}
	for _, line := range lines {
		if chatLinePattern.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// parseChatLog parses a chat export. Lines that do not match the pattern are
// appended to the body of the open record when one exists; otherwise they
// become standalone unformatted records. All records in the file share one
// conversation id derived from the file name.
func (p *Parser) parseChatLog(content, name string) []core.Message {
	conversationID := "chat_" + strings.ReplaceAll(filepath.Base(name), ".", "_")

	var messages []core.Message
	for i, raw := range strings.Split(content, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		match := chatLinePattern.FindStringSubmatch(line)
		switch {
		case match != nil:
			messages = append(messages, core.Message{
				Source:         name,
				MessageID:      fmt.Sprintf("%s_line_%d", name, lineNum),
				Sender:         strings.TrimSpace(match[3]),
				ConversationID: conversationID,
				Timestamp:      parseChatTimestamp(match[1] + " " + match[2]),
				Subject:        "Chat Message",
				Body:           strings.TrimSpace(match[4]),
			})
		case len(messages) > 0:
			// Continuation of the open record.
			messages[len(messages)-1].Body += "\n" + line
		default:
			messages = append(messages, core.Message{
				Source:         name,
				MessageID:      fmt.Sprintf("%s_line_%d_unformatted", name, lineNum),
				Sender:         "Unknown",
				ConversationID: conversationID,
				Subject:        "Unformatted Chat Line",
				Body:           line,
			})
		}
	}
	return messages
}

// parseMultiEmail splits the content on the boundary marker and parses each
// non-empty block as a single email. Block indexes are kept for message ids
// even when blocks are skipped, so ids stay stable across the file.
func (p *Parser) parseMultiEmail(content, name string) []core.Message {
	var messages []core.Message
	for i, block := range strings.Split(content, EmailBoundary) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		header, body, err := p.parseEmailBlock(block)
		if err != nil {
			p.logger.Warn("Failed to parse email block",
				zap.String("source", name),
				zap.Int("block", i+1),
				zap.Error(err))
			messages = append(messages, core.Message{
				Source:    name,
				MessageID: fmt.Sprintf("%s_email_%d_error", name, i+1),
				Error:     err.Error(),
				Body:      p.text.Preview(block, errorPreviewSize),
			})
			continue
		}

		messages = append(messages, core.Message{
			Source:         name,
			MessageID:      fmt.Sprintf("%s_email_%d", name, i+1),
			Sender:         header.sender,
			ConversationID: header.conversationID,
			Timestamp:      header.timestamp,
			RawTimestamp:   header.rawTimestamp,
			Subject:        header.subject,
			Body:           body,
		})
	}
	return messages
}

// parseSingleEmail parses the whole content as one email block.
func (p *Parser) parseSingleEmail(content, name string) []core.Message {
	header, body, err := p.parseEmailBlock(content)
	if err != nil {
		p.logger.Warn("Failed to parse email",
			zap.String("source", name),
			zap.Error(err))
		return []core.Message{{
			Source:    name,
			MessageID: fmt.Sprintf("%s_msg_error", name),
			Error:     err.Error(),
			Body:      p.text.Preview(content, errorPreviewSize),
		}}
	}

	return []core.Message{{
		Source:         name,
		MessageID:      fmt.Sprintf("%s_msg", name),
		Sender:         header.sender,
		ConversationID: header.conversationID,
		Timestamp:      header.timestamp,
		RawTimestamp:   header.rawTimestamp,
		Subject:        header.subject,
		Body:           body,
	}}
}

// emailHeader holds the recognized headers of one email block.
type emailHeader struct {
	sender         string
	conversationID string
	subject        string
	timestamp      *time.Time
	rawTimestamp   string
}

// parseEmailBlock splits a block into a header region (lines before the first
// blank line) and a body region. Recognized headers are matched
// case-insensitively; unrecognized header lines are ignored. A Date value
// that fails to parse is retained as raw text instead of a timestamp.
func (p *Parser) parseEmailBlock(content string) (emailHeader, string, error) {
	if !utf8.ValidString(content) {
		return emailHeader{}, "", fmt.Errorf("block is not valid UTF-8")
	}

	header := emailHeader{
		sender:         "Unknown",
		conversationID: "N/A",
		subject:        "No Subject",
	}

	var body []string
	headerDone := false
	for _, line := range strings.Split(content, "\n") {
		if !headerDone && strings.TrimSpace(line) == "" {
			headerDone = true
			continue
		}

		if headerDone {
			body = append(body, line)
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "from:"):
			header.sender = strings.TrimSpace(line[len("from:"):])
		case strings.HasPrefix(lower, "date:"):
			raw := strings.TrimSpace(line[len("date:"):])
			if ts, err := time.Parse(emailTimestampLayout, raw); err == nil {
				header.timestamp = &ts
			} else {
				header.rawTimestamp = raw
			}
		case strings.HasPrefix(lower, "conversation-id:"):
			header.conversationID = strings.TrimSpace(line[len("conversation-id:"):])
		case strings.HasPrefix(lower, "subject:"):
			header.subject = strings.TrimSpace(line[len("subject:"):])
		}
	}

	return header, strings.TrimSpace(strings.Join(body, "\n")), nil
}
