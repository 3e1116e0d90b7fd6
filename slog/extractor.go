// Package slog provides logging middleware for blogmark interfaces.
// Business logic stays free of logging; decorators wrap the interfaces
// and record operation, key attributes, duration, and error.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/blogmark"
)

// Ensure LoggingExtractor implements blogmark.Extractor.
var _ blogmark.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   blogmark.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next blogmark.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html, sourceURL string) (result *blogmark.ExtractResult, err error) {
	defer func(begin time.Time) {
		method := ""
		if result != nil {
			method = result.Method
		}
		e.logger.Info("content extraction",
			"url", sourceURL,
			"method", method,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
