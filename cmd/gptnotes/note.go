package main

import (
	"fmt"

	"github.com/gekberg/gptnotes"
)

// Run executes the note command.
func (c *NoteCmd) Run(deps *Dependencies) error {
	var contents []string
	if len(c.URL) > 0 {
		fmt.Fprintln(deps.Stdout, "Scraping url for content")

		results, err := deps.Scraper.ScrapeAll(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gptnotes.ErrorMessage(err))
			return err
		}
		for _, result := range results {
			if !result.Found {
				fmt.Fprintf(deps.Stdout, "Could not extract content from url %s\n", result.URL)
				continue
			}
			contents = append(contents, result.Content)
		}
	}

	prompt, truncated, err := gptnotes.FitPrompt(deps.Ctx, deps.TokenCounter, gptnotes.BuildPrompt(c.Prompt, contents))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: could not count prompt tokens: %v\n", err)
		prompt = gptnotes.BuildPrompt(c.Prompt, contents)
	}
	if truncated {
		fmt.Fprintln(deps.Stdout, "Prompt too long, shortening a bit")
	}

	fmt.Fprintf(deps.Stdout, "Sending prompt to %s\n", deps.Provider)

	response, err := deps.Completer.Complete(deps.Ctx, gptnotes.SystemPrompt, prompt)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gptnotes.ErrorMessage(err))
		return err
	}

	note := gptnotes.NewNote(response, c.Prompt, c.URL)
	path, err := deps.Notes.WriteNote(deps.Ctx, note, c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gptnotes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Note saved to file %s\n", path)
	return nil
}
