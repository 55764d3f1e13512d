package main

import "fmt"

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	cfg := deps.Config

	apiKey := "(not set)"
	if cfg.APIKey != nil && *cfg.APIKey != "" {
		apiKey = maskKey(*cfg.APIKey)
	}
	provider := cfg.Provider
	if provider == "" {
		provider = "(default)"
	}
	model := cfg.Model
	if model == "" {
		model = "(default)"
	}

	fmt.Fprintf(deps.Stdout, "config:        %s\n", deps.ConfigPath)
	fmt.Fprintf(deps.Stdout, "notes_folder:  %s\n", cfg.NotesFolder)
	fmt.Fprintf(deps.Stdout, "provider:      %s\n", provider)
	fmt.Fprintf(deps.Stdout, "model:         %s\n", model)
	fmt.Fprintf(deps.Stdout, "api_key:       %s\n", apiKey)
	return nil
}

// maskKey keeps the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
