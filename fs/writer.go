// Package fs provides file-based storage for notes and configuration.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gekberg/gptnotes"
)

// Ensure Writer implements gptnotes.NoteWriter at compile time.
var _ gptnotes.NoteWriter = (*Writer)(nil)

// Writer appends notes as markdown files to a notes folder.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given notes folder.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// NotePath returns where the note is written.
// Example: folder "notes", category "go", file "channels.md" → notes/go/channels.md
func (w *Writer) NotePath(note *gptnotes.Note, category string) string {
	return filepath.Join(w.baseDir, category, note.File)
}

// WriteNote appends the note to its file, creating the file and the
// category directory when needed.
func (w *Writer) WriteNote(ctx context.Context, note *gptnotes.Note, category string) (string, error) {
	if err := note.Validate(); err != nil {
		return "", err
	}

	path := w.NotePath(note, category)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteString(gptnotes.FormatNote(note)); err != nil {
		return "", err
	}
	return path, f.Close()
}
