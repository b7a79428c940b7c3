package utils

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Ellipsis is appended to shortened display text
const Ellipsis = "..."

// TextProcessor provides utilities for processing text
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextProcessor{
		logger: logger,
	}
}

// Truncate keeps at most maxRunes characters of text, never splitting a rune
func (tp *TextProcessor) Truncate(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	truncated := string([]rune(text)[:maxRunes])
	tp.logger.Debug("Text truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_runes", maxRunes))

	return truncated
}

// Ellipsize shortens text to maxRunes characters plus an ellipsis
func (tp *TextProcessor) Ellipsize(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	return strings.TrimRight(tp.Truncate(text, maxRunes), " ") + Ellipsis
}

// SanitizeUTF8 drops invalid UTF-8 bytes from text
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized := strings.ToValidUTF8(text, "")
	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}

// Prepare sanitizes and truncates text in one operation
func (tp *TextProcessor) Prepare(text string, maxRunes int) string {
	return tp.Truncate(tp.SanitizeUTF8(text), maxRunes)
}
