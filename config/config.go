// Package config loads process startup configuration: engine identity
// strings for the UCCI "id" block, the opening-book path, the default
// search depth and the log level.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds every knob the engine reads at startup.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Search SearchConfig `toml:"search"`
	Log    LogConfig    `toml:"log"`
}

// EngineConfig carries the identity strings echoed in the UCCI "id"
// block.
type EngineConfig struct {
	Name      string `toml:"name"`
	Author    string `toml:"author"`
	Copyright string `toml:"copyright"`
	BookPath  string `toml:"book_path"`
}

// SearchConfig carries the default iterative-deepening ceiling used
// when a "go" command doesn't otherwise bound the search.
type SearchConfig struct {
	DefaultDepth int `toml:"default_depth"`
}

// LogConfig selects the go-logging level for stderr diagnostics.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration used when no config file
// path is supplied.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			Name:      "xiangqi-engine 1.0",
			Author:    "the xiangqi-engine project",
			Copyright: "Copyright (c) the xiangqi-engine project",
			BookPath:  "book.txt",
		},
		Search: SearchConfig{DefaultDepth: 6},
		Log:    LogConfig{Level: "INFO"},
	}
}

// Load reads a TOML config file at path, layering it over Default()
// so a file that only sets a few fields doesn't blank out the rest.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %q: %w", path, err)
	}
	return cfg, nil
}
