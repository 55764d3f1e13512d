package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/gekberg/gptnotes/mock"
	noteslog "github.com/gekberg/gptnotes/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := noteslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := noteslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := noteslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and found flag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentExtractor{
			ExtractFn: func(html string) (string, bool) {
				return "main text", true
			},
		}

		ext := noteslog.NewLoggingExtractor(inner, logger)
		text, found := ext.Extract("<main>main text</main>")

		assert.True(t, found)
		assert.Equal(t, "main text", text)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "input_bytes=22")
		assert.Contains(t, output, "output_bytes=9")
		assert.Contains(t, output, "found=true")
	})

	t.Run("logs not found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentExtractor{
			ExtractFn: func(html string) (string, bool) {
				return "", false
			},
		}

		_, found := noteslog.NewLoggingExtractor(inner, logger).Extract("<html></html>")

		assert.False(t, found)
		assert.Contains(t, buf.String(), "found=false")
	})
}

func TestLoggingCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes without prompt text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Completer{
			CompleteFn: func(ctx context.Context, system, prompt string) (string, error) {
				return "# Note", nil
			},
		}

		completer := noteslog.NewLoggingCompleter(inner, logger)
		text, err := completer.Complete(context.Background(), "system", "secret prompt")

		require.NoError(t, err)
		assert.Equal(t, "# Note", text)
		output := buf.String()
		assert.Contains(t, output, "msg=complete")
		assert.Contains(t, output, "prompt_bytes=13")
		assert.Contains(t, output, "response_bytes=6")
		assert.NotContains(t, output, "secret prompt")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Completer{
			CompleteFn: func(ctx context.Context, system, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		_, err := noteslog.NewLoggingCompleter(inner, logger).Complete(context.Background(), "s", "p")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"quota exceeded\"")
	})
}
