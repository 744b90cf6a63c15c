package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/carmesim/libstring/strbuf"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a config file may provide.
type Config struct {
	MaxCapacity int    `toml:"max_capacity" yaml:"max_capacity"`
	Charset     string `toml:"charset" yaml:"charset"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	JSON        bool   `toml:"json" yaml:"json"`
}

func defaultConfig() Config {
	return Config{
		MaxCapacity: strbuf.DefaultMaxCapacity,
		LogLevel:    "warn",
	}
}

// loadConfig reads path on top of the defaults. The format follows the file
// extension: .yaml/.yml is YAML, anything else TOML.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("YAML parse error in %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return cfg, fmt.Errorf("TOML parse error in %s: %w", path, err)
		}
	}

	if cfg.MaxCapacity < 0 {
		return cfg, fmt.Errorf("config %s: max_capacity must not be negative", path)
	}
	if _, err := cfg.level(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}
