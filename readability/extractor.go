package readability

import (
	"strings"

	"github.com/gekberg/gptnotes"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements gptnotes.ContentExtractor at compile time.
var _ gptnotes.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article text with runs of whitespace collapsed.
func (e *Extractor) Extract(rawHTML string) (string, bool) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", false
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", false
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return "", false
	}
	return text, true
}
