package gptnotes

import "context"

// Completer sends a composed prompt to a hosted chat-completion model.
type Completer interface {
	// Complete returns the text of the first choice produced for the given
	// system and user prompts.
	Complete(ctx context.Context, system, prompt string) (string, error)
}
