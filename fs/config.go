package fs

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gekberg/gptnotes"
)

// ConfigFileName is the name of the config file in the user's home directory.
const ConfigFileName = ".gptnotes.json"

// DefaultConfigPath returns ~/.gptnotes.json, or the file name alone when
// the home directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(home, ConfigFileName)
}

// Ensure ConfigStore implements gptnotes.ConfigService at compile time.
var _ gptnotes.ConfigService = (*ConfigStore)(nil)

// ConfigStore reads the JSON config file.
type ConfigStore struct {
	path string
}

// NewConfigStore creates a new ConfigStore for the file at path.
func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

// Path returns the config file location.
func (s *ConfigStore) Path() string {
	return s.path
}

// Load reads the config file. A missing file is created with defaults.
func (s *ConfigStore) Load(ctx context.Context) (*gptnotes.Config, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := gptnotes.DefaultConfig()
		if err := s.save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	} else if err != nil {
		return nil, err
	}

	var cfg gptnotes.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, gptnotes.Errorf(gptnotes.ECONFIG, "invalid config file %s: %v", s.path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, gptnotes.Errorf(gptnotes.ECONFIG, "invalid config file %s: %s", s.path, gptnotes.ErrorMessage(err))
	}
	return &cfg, nil
}

// save writes the config to a temporary file and renames it into place.
func (s *ConfigStore) save(cfg *gptnotes.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
