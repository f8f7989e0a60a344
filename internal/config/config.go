package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shnupta/notequiz/internal/notes"
)

// Config holds notequiz configuration.
type Config struct {
	// DefaultMode is the note set selected when the trainer opens.
	DefaultMode string `json:"default_mode,omitempty"`

	// ShowSequence reveals the full neighbourhood after a correct answer in
	// the twelve-note modes. Nil means the default (on).
	ShowSequence *bool `json:"show_sequence,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	show := true
	return Config{
		DefaultMode:  string(notes.Natural),
		ShowSequence: &show,
	}
}

// Path returns the path to the config file.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".notequiz", "config.json")
}

// LoadFrom reads the config from the given path, or returns defaults if not found or invalid.
func LoadFrom(path string) Config {
	cfg, err := Read(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Read reads the config from the given path. Unlike LoadFrom it reports a
// missing, empty or malformed file as an error instead of falling back.
func Read(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// Parse JSON, keeping defaults for missing fields
	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Override defaults with loaded values
	if _, err := notes.ParseMode(loaded.DefaultMode); err == nil {
		cfg.DefaultMode = loaded.DefaultMode
	}
	if loaded.ShowSequence != nil {
		cfg.ShowSequence = loaded.ShowSequence
	}

	return cfg, nil
}

// SaveTo writes the config to the given path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Mode returns the configured default mode, falling back to natural notes.
func (c Config) Mode() notes.Mode {
	m, err := notes.ParseMode(c.DefaultMode)
	if err != nil {
		return notes.Natural
	}
	return m
}

// RevealSequence reports whether the sequence is shown after a correct answer.
func (c Config) RevealSequence() bool {
	return c.ShowSequence == nil || *c.ShowSequence
}
