package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gekberg/gptnotes"
	"github.com/gekberg/gptnotes/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path   string
	auth   string
	ctype  string
	method string
	body   openai.ChatCompletionRequest
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()

	captured := make(chan capturedRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := capturedRequest{
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			ctype:  r.Header.Get("Content-Type"),
			method: r.Method,
		}
		_ = json.NewDecoder(r.Body).Decode(&c.body)
		captured <- c

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("sends chat completion request and returns first choice", func(t *testing.T) {
		t.Parallel()

		server, captured := newServer(t, http.StatusOK, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-3.5-turbo",
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
			"choices": [
				{"message": {"role": "assistant", "content": "# Notes\n\n- one"}, "finish_reason": "stop", "index": 0},
				{"message": {"role": "assistant", "content": "ignored"}, "finish_reason": "stop", "index": 1}
			]
		}`)

		completer := openai.NewCompleter("sk-test", openai.WithBaseURL(server.URL+"/"))
		text, err := completer.Complete(context.Background(), gptnotes.SystemPrompt, "write notes")

		require.NoError(t, err)
		assert.Equal(t, "# Notes\n\n- one", text)

		req := <-captured
		assert.Equal(t, http.MethodPost, req.method)
		assert.Equal(t, "/chat/completions", req.path)
		assert.Equal(t, "Bearer sk-test", req.auth)
		assert.Equal(t, "application/json", req.ctype)
		assert.Equal(t, openai.DefaultModel, req.body.Model)
		require.Len(t, req.body.Messages, 2)
		assert.Equal(t, openai.Message{Role: "system", Content: gptnotes.SystemPrompt}, req.body.Messages[0])
		assert.Equal(t, openai.Message{Role: "user", Content: "write notes"}, req.body.Messages[1])
	})

	t.Run("uses configured model", func(t *testing.T) {
		t.Parallel()

		server, captured := newServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`)

		completer := openai.NewCompleter("sk-test", openai.WithBaseURL(server.URL), openai.WithModel("gpt-4o-mini"))
		_, err := completer.Complete(context.Background(), "system", "prompt")

		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", (<-captured).body.Model)
	})

	t.Run("returns API error message", func(t *testing.T) {
		t.Parallel()

		server, _ := newServer(t, http.StatusUnauthorized, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)

		completer := openai.NewCompleter("sk-bad", openai.WithBaseURL(server.URL))
		_, err := completer.Complete(context.Background(), "system", "prompt")

		require.Error(t, err)
		assert.Equal(t, gptnotes.EINTERNAL, gptnotes.ErrorCode(err))
		assert.Contains(t, gptnotes.ErrorMessage(err), "401")
		assert.Contains(t, gptnotes.ErrorMessage(err), "Incorrect API key provided")
	})

	t.Run("returns status when error body is not JSON", func(t *testing.T) {
		t.Parallel()

		server, _ := newServer(t, http.StatusBadGateway, `upstream down`)

		completer := openai.NewCompleter("sk-test", openai.WithBaseURL(server.URL))
		_, err := completer.Complete(context.Background(), "system", "prompt")

		require.Error(t, err)
		assert.Contains(t, gptnotes.ErrorMessage(err), "502")
	})

	t.Run("returns error when no choices", func(t *testing.T) {
		t.Parallel()

		server, _ := newServer(t, http.StatusOK, `{"choices":[]}`)

		completer := openai.NewCompleter("sk-test", openai.WithBaseURL(server.URL))
		_, err := completer.Complete(context.Background(), "system", "prompt")

		require.Error(t, err)
		assert.Contains(t, gptnotes.ErrorMessage(err), "no choices")
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := openai.NewCompleter("").Complete(context.Background(), "system", "prompt")

		require.Error(t, err)
		assert.Equal(t, gptnotes.EINVALID, gptnotes.ErrorCode(err))
	})

	t.Run("requires prompt", func(t *testing.T) {
		t.Parallel()

		_, err := openai.NewCompleter("sk-test").Complete(context.Background(), "system", "")

		require.Error(t, err)
		assert.Equal(t, gptnotes.EINVALID, gptnotes.ErrorCode(err))
	})
}

func TestNewCompleter_Defaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, openai.DefaultModel, openai.NewCompleter("k").Model())
	assert.Equal(t, openai.DefaultModel, openai.NewCompleter("k", openai.WithModel("")).Model())
}
