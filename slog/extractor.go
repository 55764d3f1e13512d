package slog

import (
	"log/slog"
	"time"

	"github.com/gekberg/gptnotes"
)

// Ensure LoggingExtractor implements gptnotes.ContentExtractor.
var _ gptnotes.ContentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ContentExtractor with logging.
type LoggingExtractor struct {
	next   gptnotes.ContentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next gptnotes.ContentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (text string, found bool) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"input_bytes", len(html),
			"output_bytes", len(text),
			"found", found,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}
