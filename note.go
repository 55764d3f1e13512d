package gptnotes

import (
	"context"
	"strings"
)

// Note is a generated markdown note ready to be written to the notes folder.
type Note struct {
	// Title is the first line of the model response without heading markers.
	Title string

	// Content is the raw markdown returned by the model.
	Content string

	// File is the note's file name, derived from the prompt.
	File string

	// URLs are the pages used as context, rendered as references.
	URLs []string
}

// NewNote builds a note from a model response and the request that produced it.
func NewNote(response, prompt string, urls []string) *Note {
	title, _, _ := strings.Cut(response, "\n")
	return &Note{
		Title:   strings.TrimSpace(strings.ReplaceAll(title, "#", "")),
		Content: response,
		File:    NoteFileName(prompt),
		URLs:    urls,
	}
}

// NoteFileName converts a prompt to a note file name.
// Example: "Set up Go modules" → set_up_go_modules.md
func NoteFileName(prompt string) string {
	name := strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(prompt)
	return strings.ToLower(name) + ".md"
}

// Validate returns an error if the note contains invalid fields.
func (n *Note) Validate() error {
	if n.File == "" || n.File == ".md" {
		return Errorf(EINVALID, "note file name required")
	}
	if strings.TrimSpace(n.Content) == "" {
		return Errorf(EINVALID, "note content required")
	}
	return nil
}

// FormatNote renders the note as it is appended to its file.
// Notes with references end with a horizontal rule so that successive notes
// appended to the same file stay visually separated.
func FormatNote(n *Note) string {
	var b strings.Builder
	b.WriteString(n.Content)
	b.WriteString("\n")
	if len(n.URLs) == 0 {
		return b.String()
	}
	for _, url := range n.URLs {
		b.WriteString("\n\n[reference](")
		b.WriteString(url)
		b.WriteString(")")
	}
	b.WriteString("\n\n--------\n\n")
	return b.String()
}

// NoteWriter persists notes.
type NoteWriter interface {
	// WriteNote appends the note to its file, inside the category
	// subfolder when category is non-empty. Returns the written path.
	WriteNote(ctx context.Context, note *Note, category string) (path string, err error)
}
