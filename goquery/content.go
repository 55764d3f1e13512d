package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gekberg/gptnotes"
	"golang.org/x/net/html"
)

// CandidateSelector matches the elements scored as main content containers.
const CandidateSelector = "main, div, span, article"

// Separator joins the text fragments of the extracted content.
const Separator = " "

// ExcludedTokens drop an element and its subtree when found as a substring
// of the element's class or id attribute. Matching is a raw substring test:
// "nav-bar" and "header-main" are excluded, and so is "headerboard".
var ExcludedTokens = []string{
	"nav", "footer", "header", "sidebar",
	"ad", "advertisement",
	"script", "style",
}

// Ensure ContentExtractor implements gptnotes.ContentExtractor at compile time.
var _ gptnotes.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor picks the candidate container with the most text and
// flattens it to plain text, skipping scripts and boilerplate subtrees.
// It holds no state, so a single value may be shared between goroutines.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract returns the text of the page's main content.
func (e *ContentExtractor) Extract(rawHTML string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", false
	}

	winner := mainContent(doc)
	if winner == nil {
		return "", false
	}

	text := strings.TrimSpace(strings.Join(fragments(winner), Separator))
	if text == "" {
		return "", false
	}
	return text, true
}

// mainContent returns the candidate with the longest text. Ties keep the
// first candidate in document order; candidates without text never win.
func mainContent(doc *goquery.Document) *html.Node {
	var (
		winner *html.Node
		maxLen int
	)
	doc.Find(CandidateSelector).Each(func(_ int, sel *goquery.Selection) {
		if n := len(sel.Text()); n > maxLen {
			maxLen = n
			winner = sel.Get(0)
		}
	})
	return winner
}

// fragments walks the subtree below root in preorder and collects its
// trimmed, non-empty text runs. The root itself is never filtered.
func fragments(root *html.Node) []string {
	var out []string
	stack := pushChildren(nil, root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				out = append(out, text)
			}
		case html.ElementNode:
			if isBoilerplate(n) {
				continue
			}
			stack = pushChildren(stack, n)
		}
	}
	return out
}

// pushChildren pushes the children of n in reverse so they pop in document order.
func pushChildren(stack []*html.Node, n *html.Node) []*html.Node {
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		stack = append(stack, c)
	}
	return stack
}

func isBoilerplate(n *html.Node) bool {
	if n.Data == "script" {
		return true
	}
	class, id := attr(n, "class"), attr(n, "id")
	for _, token := range ExcludedTokens {
		if strings.Contains(class, token) || strings.Contains(id, token) {
			return true
		}
	}
	return false
}

// attr returns the named attribute of n, or "" when absent.
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
