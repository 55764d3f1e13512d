package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gekberg/gptnotes"
	"github.com/gekberg/gptnotes/fs"
	"github.com/gekberg/gptnotes/gemini"
	"github.com/gekberg/gptnotes/goquery"
	"github.com/gekberg/gptnotes/htmltomarkdown"
	notehttp "github.com/gekberg/gptnotes/http"
	"github.com/gekberg/gptnotes/openai"
	"github.com/gekberg/gptnotes/readability"
	"github.com/gekberg/gptnotes/scrape"
	noteslog "github.com/gekberg/gptnotes/slog"
	"github.com/gekberg/gptnotes/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run(); the --config flag wins.
	ConfigPath string

	// Token counter override for end-to-end testing. When nil, a Gemini
	// local tokenizer is created for the note command.
	TokenCounter gptnotes.TokenCounter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: fs.DefaultConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gptnotes"),
		kong.Description("Generate markdown notes with a chat-completion model."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gptnotes --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	configs := fs.NewConfigStore(configPath)
	cfg, err := configs.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set GPTNOTES_CONFIG to use a different config file\n")
		return fmt.Errorf("failed to load config at %q: %w", configPath, err)
	}
	deps.Config = cfg
	deps.ConfigPath = configs.Path()

	switch kongCtx.Command() {
	case "note":
		provider := cli.Note.Provider
		if provider == "" {
			provider = cfg.Provider
		}
		if provider == "" {
			provider = gptnotes.ProviderOpenAI
		}

		apiKey := resolveAPIKey(cli.Note.APIKey, provider, cfg)
		if apiKey == "" {
			fmt.Fprintf(stdout, "Please set the api_key in %s before taking any notes\n", deps.ConfigPath)
			return nil
		}

		model := cli.Note.Model
		if model == "" {
			model = cfg.Model
		}

		completer, err := newCompleter(ctx, provider, apiKey, model, cli.Note.BaseURL)
		if err != nil {
			return err
		}

		deps.Provider = provider
		deps.Completer = noteslog.NewLoggingCompleter(completer, logger)
		deps.Scraper = newScraper(cli.Note.ScrapeFlags, logger)
		deps.Notes = fs.NewWriter(cfg.NotesFolder)
		deps.TokenCounter = m.TokenCounter
		if deps.TokenCounter == nil {
			tc, err := gemini.NewTokenCounter(gemini.TokenizerModel)
			if err != nil {
				fmt.Fprintf(stderr, "warning: token counting unavailable, prompt length will not be checked: %v\n", err)
			} else {
				deps.TokenCounter = tc
			}
		}

	case "extract":
		deps.Scraper = newScraper(cli.Extract.ScrapeFlags, logger)
	}

	return kongCtx.Run(deps)
}

// resolveAPIKey picks the API key from the flag, the provider's environment
// variable, then the config file.
func resolveAPIKey(flag, provider string, cfg *gptnotes.Config) string {
	if flag != "" {
		return flag
	}

	env := "OPENAI_API_KEY"
	if provider == gptnotes.ProviderGemini {
		env = "GEMINI_API_KEY"
	}
	if key := os.Getenv(env); key != "" {
		return key
	}

	if cfg.APIKey != nil {
		return *cfg.APIKey
	}
	return ""
}

func newCompleter(ctx context.Context, provider, apiKey, model, baseURL string) (gptnotes.Completer, error) {
	switch provider {
	case gptnotes.ProviderOpenAI:
		opts := []openai.Option{openai.WithModel(model)}
		if baseURL != "" {
			opts = append(opts, openai.WithBaseURL(baseURL))
		}
		return openai.NewCompleter(apiKey, opts...), nil

	case gptnotes.ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, model), nil

	default:
		return nil, gptnotes.Errorf(gptnotes.EINVALID, "unknown provider %q (want %s or %s)", provider, gptnotes.ProviderOpenAI, gptnotes.ProviderGemini)
	}
}

// newScraper wires the fetcher and the selected extractor with logging.
func newScraper(flags ScrapeFlags, logger *slog.Logger) *scrape.Scraper {
	fetcher := notehttp.NewFetcher(notehttp.WithTimeout(flags.Timeout))
	return &scrape.Scraper{
		Fetcher:     noteslog.NewLoggingFetcher(fetcher, logger),
		Extractor:   noteslog.NewLoggingExtractor(newExtractor(flags.Extractor), logger),
		RateLimiter: scrape.NewDomainLimiter(1.0),
		Concurrency: scrape.DefaultConcurrency,
	}
}

func newExtractor(name string) gptnotes.ContentExtractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor(htmltomarkdown.NewConverter())
	default:
		return goquery.NewContentExtractor()
	}
}
