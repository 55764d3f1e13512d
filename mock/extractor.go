package mock

import "github.com/gekberg/gptnotes"

var _ gptnotes.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of gptnotes.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (string, bool)
}

func (e *ContentExtractor) Extract(html string) (string, bool) {
	return e.ExtractFn(html)
}

var _ gptnotes.Converter = (*Converter)(nil)

// Converter is a mock implementation of gptnotes.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
