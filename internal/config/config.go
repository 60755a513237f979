// Package config loads the optional settings file of the swiftlet command.
// TOML and YAML are both accepted, the format is picked from the file
// extension.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds the settings of the command line tool.
type Config struct {
	// Prompt printed by the REPL before each line.
	Prompt string `toml:"prompt" yaml:"prompt"`
	// HistoryFile keeps REPL history between sessions. A relative path is
	// taken relative to the user's home directory; empty disables history.
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	// ShowTokens dumps the scanned tokens before parsing.
	ShowTokens bool `toml:"show_tokens" yaml:"show_tokens"`
	// WatchDebounce groups bursts of file events in "run --watch".
	WatchDebounce time.Duration `toml:"watch_debounce" yaml:"watch_debounce"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Prompt:        "> ",
		HistoryFile:   ".swiftlet_history",
		WatchDebounce: 100 * time.Millisecond,
	}
}

// DetectFormat picks the format from the extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Load reads path on top of the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := decode(data, format, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys %v", undecoded)
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document leaves the defaults untouched
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
	return ErrUnsupportedFormat
}

// Validate checks value ranges.
func (cfg *Config) Validate() error {
	if cfg.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", cfg.WatchDebounce)
	}
	return nil
}

// HistoryPath resolves HistoryFile against home. It returns "" when history
// is disabled.
func (cfg *Config) HistoryPath(home string) string {
	if cfg.HistoryFile == "" {
		return ""
	}
	if filepath.IsAbs(cfg.HistoryFile) || home == "" {
		return cfg.HistoryFile
	}
	return filepath.Join(home, cfg.HistoryFile)
}
