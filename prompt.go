package gptnotes

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SystemPrompt instructs the model to behave as a note-taking service.
const SystemPrompt = "You are a notetaking service. You only write answers in the markdown format"

// Prompt budget. Prompts over MaxPromptTokens are cut to TruncatedPromptLength bytes.
const (
	MaxPromptTokens       = 3024
	TruncatedPromptLength = 11000
)

// BuildPrompt composes the user prompt from the note request and any scraped
// page contents. Empty contents are ignored.
func BuildPrompt(prompt string, contents []string) string {
	full := fmt.Sprintf("Write summarizing notes in markdown format, explaining how to do the following: \"%s\"", prompt)

	var parts []string
	for _, content := range contents {
		content = strings.ReplaceAll(strings.TrimSpace(content), "\n\n", "")
		if content != "" {
			parts = append(parts, content)
		}
	}
	if len(parts) == 0 {
		return full
	}

	return fmt.Sprintf("%s. Use this information when creating the note, if relevant: \"%s\".", full, strings.Join(parts, " "))
}

// FitPrompt shortens the prompt when the counter reports more than
// MaxPromptTokens tokens. A nil counter leaves the prompt unchanged.
func FitPrompt(ctx context.Context, counter TokenCounter, prompt string) (string, bool, error) {
	if counter == nil {
		return prompt, false, nil
	}

	n, err := counter.CountTokens(ctx, prompt)
	if err != nil {
		return "", false, err
	}
	if n <= MaxPromptTokens {
		return prompt, false, nil
	}

	return truncate(prompt, TruncatedPromptLength), true, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
