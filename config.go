package gptnotes

import "context"

// Provider names accepted in the config file and on the command line.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// DefaultNotesFolder is used when the config file does not name a folder.
const DefaultNotesFolder = "./"

// Config is the persisted user configuration.
type Config struct {
	// APIKey is the chat-completion API key. Nil until the user sets it.
	APIKey *string `json:"api_key"`

	// NotesFolder is the directory notes are appended to.
	NotesFolder string `json:"notes_folder"`

	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// DefaultConfig returns the config written when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		NotesFolder: DefaultNotesFolder,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.NotesFolder == "" {
		return Errorf(ECONFIG, "notes_folder required")
	}
	switch c.Provider {
	case "", ProviderOpenAI, ProviderGemini:
	default:
		return Errorf(ECONFIG, "unknown provider %q", c.Provider)
	}
	return nil
}

// ConfigService loads the user configuration.
type ConfigService interface {
	// Load reads the configuration, creating it with defaults when missing.
	// Returns ECONFIG if the stored configuration cannot be decoded.
	Load(ctx context.Context) (*Config, error)

	// Path returns the location of the configuration.
	Path() string
}
