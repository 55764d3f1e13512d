package mock

import (
	"context"

	"github.com/gekberg/gptnotes"
)

var _ gptnotes.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of gptnotes.Scraper.
type Scraper struct {
	ScrapeFn    func(ctx context.Context, url string) (*gptnotes.ScrapeResult, error)
	ScrapeAllFn func(ctx context.Context, urls []string) ([]*gptnotes.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*gptnotes.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}

func (s *Scraper) ScrapeAll(ctx context.Context, urls []string) ([]*gptnotes.ScrapeResult, error) {
	return s.ScrapeAllFn(ctx, urls)
}

var _ gptnotes.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of gptnotes.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
