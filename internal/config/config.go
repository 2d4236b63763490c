// Package config handles configuration loading and saving for goodmood
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration for goodmood
type Config struct {
	// UI preferences
	UI UIConfig `yaml:"ui"`

	// Quote catalog settings
	Quotes QuotesConfig `yaml:"quotes"`
}

// UIConfig holds presentation preferences
type UIConfig struct {
	Theme   string `yaml:"theme"` // "light" or "dark"; empty means unresolved
	Dense   bool   `yaml:"dense"`
	NoColor bool   `yaml:"no_color"`
	ShowBio bool   `yaml:"show_bio"`
}

// QuotesConfig holds catalog settings
type QuotesConfig struct {
	// File is an optional extra catalog merged on top of the built-in one
	File string `yaml:"file,omitempty"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:   "",
			Dense:   false,
			NoColor: false,
			ShowBio: true,
		},
		Quotes: QuotesConfig{},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultPath returns the default config file location for the current user
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "goodmood", "goodmood.yaml"), nil
}

// PreferenceStore persists the theme preference inside the config file. It
// satisfies the theme.Store interface.
type PreferenceStore struct {
	path string
}

// NewPreferenceStore creates a store backed by the config file at path.
func NewPreferenceStore(path string) *PreferenceStore {
	return &PreferenceStore{path: path}
}

// Preference returns the stored theme value, empty when never set.
func (s *PreferenceStore) Preference() (string, error) {
	cfg, err := Load(s.path)
	if err != nil {
		return "", err
	}
	return cfg.UI.Theme, nil
}

// SetPreference writes the theme value back to the config file, keeping the
// rest of the file intact.
func (s *PreferenceStore) SetPreference(value string) error {
	cfg, err := Load(s.path)
	if err != nil {
		cfg = DefaultConfig()
	}
	cfg.UI.Theme = value
	return cfg.Save(s.path)
}
