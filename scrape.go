package gptnotes

import "context"

// ScrapeResult holds the outcome of scraping a single URL.
type ScrapeResult struct {
	URL string

	// Content is the extracted page text. Empty when Found is false.
	Content string

	// Found reports whether the page had usable content.
	Found bool
}

// Scraper fetches pages and extracts their main content.
type Scraper interface {
	// Scrape fetches and extracts a single URL.
	// Fetch failures are returned as errors; a page without usable content
	// is a normal result with Found set to false.
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)

	// ScrapeAll scrapes the URLs concurrently and returns results in input order.
	// The first fetch failure aborts the remaining work.
	ScrapeAll(ctx context.Context, urls []string) ([]*ScrapeResult, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
