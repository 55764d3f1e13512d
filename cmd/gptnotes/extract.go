package main

import (
	"fmt"

	"github.com/gekberg/gptnotes"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gptnotes.ErrorMessage(err))
		return err
	}

	if !result.Found {
		fmt.Fprintln(deps.Stdout, "Could not extract content from url")
		return nil
	}

	fmt.Fprintln(deps.Stdout, result.Content)
	return nil
}
