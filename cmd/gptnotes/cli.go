package main

import (
	"context"
	"io"
	"time"

	"github.com/gekberg/gptnotes"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Config       *gptnotes.Config
	ConfigPath   string
	Provider     string
	Scraper      gptnotes.Scraper
	Completer    gptnotes.Completer
	TokenCounter gptnotes.TokenCounter
	Notes        gptnotes.NoteWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to the config file" env:"GPTNOTES_CONFIG" type:"path"`
	Verbose bool   `short:"v" help:"Log fetch, extract and completion details to stderr"`

	Note    NoteCmd    `cmd:"" help:"Generate a markdown note from a prompt"`
	Extract ExtractCmd `cmd:"" help:"Print the main content extracted from a web page"`
	Show    ConfigCmd  `cmd:"" name:"config" help:"Show the current configuration"`
}

// ScrapeFlags configure how pages are fetched and extracted.
type ScrapeFlags struct {
	Extractor string        `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Content extractor (${enum})"`
	Timeout   time.Duration `default:"10s" help:"Timeout for fetching each URL"`
}

// NoteCmd is the "note" subcommand.
type NoteCmd struct {
	Prompt   string   `required:"" help:"The input prompt for the model"`
	URL      []string `name:"url" short:"u" help:"Relevant URL for the note being taken (repeatable)"`
	Category string   `short:"c" help:"The category of the note being taken"`
	Provider string   `help:"Chat completion provider (openai or gemini); overrides the config file"`
	Model    string   `help:"Model name; overrides the config file"`
	APIKey   string   `name:"api-key" env:"GPTNOTES_API_KEY" help:"API key; overrides the config file"`
	BaseURL  string   `name:"base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`

	ScrapeFlags `embed:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `name:"url" short:"u" required:"" help:"URL to extract content from"`

	ScrapeFlags `embed:""`
}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct{}
