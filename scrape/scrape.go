// Package scrape fetches pages and extracts their main content.
// It is the only place where several pages are processed concurrently.
package scrape

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gekberg/gptnotes"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of pages scraped at once.
const DefaultConcurrency = 4

var _ gptnotes.Scraper = (*Scraper)(nil)

// Scraper combines a Fetcher and a ContentExtractor.
type Scraper struct {
	Fetcher     gptnotes.Fetcher
	Extractor   gptnotes.ContentExtractor
	RateLimiter gptnotes.DomainLimiter
	Concurrency int
}

// Scrape fetches the URL and extracts its main content.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*gptnotes.ScrapeResult, error) {
	if s.RateLimiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	text, found := s.Extractor.Extract(html)
	return &gptnotes.ScrapeResult{
		URL:     rawURL,
		Content: text,
		Found:   found,
	}, nil
}

// ScrapeAll scrapes the URLs concurrently. Results keep the input order.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string) ([]*gptnotes.ScrapeResult, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*gptnotes.ScrapeResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			result, err := s.Scrape(gctx, u)
			if err != nil {
				return fmt.Errorf("scrape %s: %w", u, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
