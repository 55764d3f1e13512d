// Package gemini implements chat completion and token counting with Google Gemini.
package gemini

import (
	"context"

	"github.com/gekberg/gptnotes"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements gptnotes.Completer at compile time.
var _ gptnotes.Completer = (*Completer)(nil)

// Completer implements gptnotes.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Model returns the model used for completions.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends the prompts to Gemini and returns the generated text.
func (c *Completer) Complete(ctx context.Context, system, prompt string) (string, error) {
	if prompt == "" {
		return "", gptnotes.Errorf(gptnotes.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(prompt, "user")},
		BuildConfig(system),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", gptnotes.Errorf(gptnotes.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", gptnotes.Errorf(gptnotes.EINTERNAL, "gemini returned no text")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.4)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}
