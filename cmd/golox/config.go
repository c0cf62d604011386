package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type config struct {
	REPL replConfig `yaml:"repl"`
}

type replConfig struct {
	Plain       bool   `yaml:"plain"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
}

func defaultConfig() config {
	return config{
		REPL: replConfig{
			Prompt:      "> ",
			HistoryFile: "~/.golox_history",
			Color:       true,
		},
	}
}

// loadConfig reads ~/.config/golox/config.yaml, or the file named by
// GOLOX_CONFIG when set. A missing file is not an error; a malformed
// one is reported and the defaults are used.
func loadConfig() (config, error) {
	path := configPath()
	if path == "" {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return defaultConfig(), fmt.Errorf("golox: cannot read config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("golox: cannot parse config %s: %w", path, err)
	}
	if cfg.REPL.Prompt == "" {
		cfg.REPL.Prompt = defaultConfig().REPL.Prompt
	}
	if cfg.REPL.HistoryFile == "" {
		cfg.REPL.HistoryFile = defaultConfig().REPL.HistoryFile
	}
	return cfg, nil
}

func configPath() string {
	if path := os.Getenv("GOLOX_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "golox", "config.yaml")
}

// historyPath resolves the configured history file, expanding a leading
// "~/" to the user's home directory.
func (c config) historyPath() string {
	path := c.REPL.HistoryFile
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
