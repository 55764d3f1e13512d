package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gekberg/gptnotes"
)

// Ensure LoggingCompleter implements gptnotes.Completer.
var _ gptnotes.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging.
type LoggingCompleter struct {
	next   gptnotes.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next gptnotes.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the operation.
// Prompt and response text are not logged, only their sizes.
func (c *LoggingCompleter) Complete(ctx context.Context, system, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("complete",
			"prompt_bytes", len(prompt),
			"response_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, system, prompt)
}
