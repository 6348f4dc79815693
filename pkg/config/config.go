package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config holds settings for the tool's ambient behaviour. The prompt
// heuristic itself is not configurable.
type Config struct {
	LogLevel   string `json:"log_level"`
	LogFile    string `json:"log_file"`   // empty disables logging
	LogFormat  string `json:"log_format"` // "json" or "text"
	Scrollback int    `json:"scrollback"` // lines of input to keep, 0 for all
	Strict     bool   `json:"strict"`     // full-prefix prompt matching
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		LogLevel:   "info",
		LogFile:    "",
		LogFormat:  "json",
		Scrollback: 0,
		Strict:     false,
	}
}

// Load reads configuration from the specified path. Fields missing from the
// file keep their default values; a missing file yields Default().
func Load(configPath string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log_level: %q", c.LogLevel)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "json", "text":
	default:
		return fmt.Errorf("unsupported log_format: %q", c.LogFormat)
	}

	if c.Scrollback < 0 {
		return fmt.Errorf("scrollback must not be negative, got: %d", c.Scrollback)
	}

	return nil
}
