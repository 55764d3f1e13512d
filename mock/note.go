package mock

import (
	"context"

	"github.com/gekberg/gptnotes"
)

var _ gptnotes.NoteWriter = (*NoteWriter)(nil)

// NoteWriter is a mock implementation of gptnotes.NoteWriter.
type NoteWriter struct {
	WriteNoteFn func(ctx context.Context, note *gptnotes.Note, category string) (string, error)
}

func (w *NoteWriter) WriteNote(ctx context.Context, note *gptnotes.Note, category string) (string, error) {
	return w.WriteNoteFn(ctx, note, category)
}
