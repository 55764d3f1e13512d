package trafilatura

import (
	"bytes"
	"strings"

	"github.com/gekberg/gptnotes"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements gptnotes.ContentExtractor at compile time.
var _ gptnotes.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// When a Converter is set, the content is returned as Markdown so headings
// and lists survive into the prompt; otherwise plain text is returned.
type Extractor struct {
	Converter gptnotes.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor(conv gptnotes.Converter) *Extractor {
	return &Extractor{Converter: conv}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (string, bool) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", false
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil {
		return "", false
	}

	text := strings.TrimSpace(e.markdown(result.ContentNode))
	if text == "" {
		text = strings.TrimSpace(result.ContentText)
	}
	if text == "" {
		return "", false
	}
	return text, true
}

// markdown renders the content node and converts it, returning "" on any failure.
func (e *Extractor) markdown(n *html.Node) string {
	if e.Converter == nil || n == nil {
		return ""
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}

	md, err := e.Converter.Convert(buf.String())
	if err != nil {
		return ""
	}
	return md
}
