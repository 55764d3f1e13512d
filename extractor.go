package gptnotes

// ContentExtractor locates the main content of an HTML page and flattens it
// to plain text.
type ContentExtractor interface {
	// Extract returns the boilerplate-stripped text of the page.
	// found is false when the page has no usable content; this is a normal
	// outcome and callers should continue without the extra context.
	Extract(html string) (text string, found bool)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
