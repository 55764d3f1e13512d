// Package openai implements gptnotes.Completer against the OpenAI
// chat-completions HTTP API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gekberg/gptnotes"
)

// Defaults for the OpenAI API.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-3.5-turbo"
	DefaultTimeout = 2 * time.Minute
)

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the request body of POST /chat/completions.
type ChatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// ChatCompletionResponse is the subset of the response body the completer reads.
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Usage   Usage    `json:"usage"`
	Choices []Choice `json:"choices"`
}

// Usage reports token consumption of a completion.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Choice is one generated completion.
type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
	Index        int64   `json:"index"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Ensure Completer implements gptnotes.Completer at compile time.
var _ gptnotes.Completer = (*Completer)(nil)

// Completer sends chat-completion requests to OpenAI.
type Completer struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

// Option configures a Completer.
type Option func(*Completer)

// WithBaseURL points the completer at an OpenAI-compatible endpoint.
func WithBaseURL(u string) Option {
	return func(c *Completer) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithModel sets the model. An empty model keeps DefaultModel.
func WithModel(model string) Option {
	return func(c *Completer) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Completer) {
		c.client = client
	}
}

// NewCompleter creates a new Completer authenticated with apiKey.
func NewCompleter(apiKey string, opts ...Option) *Completer {
	c := &Completer{
		client:  &http.Client{Timeout: DefaultTimeout},
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model used for completions.
func (c *Completer) Model() string {
	return c.model
}

// Complete returns the content of the first choice.
func (c *Completer) Complete(ctx context.Context, system, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", gptnotes.Errorf(gptnotes.EINVALID, "API key required")
	}
	if prompt == "" {
		return "", gptnotes.Errorf(gptnotes.EINVALID, "prompt required")
	}

	body, err := json.Marshal(BuildRequest(c.model, system, prompt))
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorResponse
		if json.Unmarshal(data, &e) == nil && e.Error.Message != "" {
			return "", gptnotes.Errorf(gptnotes.EINTERNAL, "openai: HTTP %d: %s", resp.StatusCode, e.Error.Message)
		}
		return "", gptnotes.Errorf(gptnotes.EINTERNAL, "openai: HTTP %d", resp.StatusCode)
	}

	var out ChatCompletionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", gptnotes.Errorf(gptnotes.EINTERNAL, "openai: decode response: %v", err)
	}
	if len(out.Choices) == 0 {
		return "", gptnotes.Errorf(gptnotes.EINTERNAL, "openai: no choices returned")
	}

	return out.Choices[0].Message.Content, nil
}

// BuildRequest builds the request body with the system message first.
func BuildRequest(model, system, prompt string) *ChatCompletionRequest {
	return &ChatCompletionRequest{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}
}
