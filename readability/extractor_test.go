package readability_test

import (
	"testing"

	"github.com/gekberg/gptnotes/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, found := readability.NewExtractor().Extract("  ")

	assert.False(t, found)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	text, found := readability.NewExtractor().Extract(html)

	require.True(t, found)
	assert.Contains(t, text, "main article content")
	assert.NotContains(t, text, "Home Nav Link")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	text, found := readability.NewExtractor().Extract(html)

	require.True(t, found)
	assert.NotContains(t, text, "Footer copyright text")
}

func TestExtractor_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>First paragraph of content.</p>

<p>Second    paragraph of content.</p>
</article>
</body>
</html>`

	text, found := readability.NewExtractor().Extract(html)

	require.True(t, found)
	assert.Contains(t, text, "First paragraph of content.")
	assert.Contains(t, text, "Second paragraph of content.")
	assert.NotContains(t, text, "\n")
}
