// Package config loads the optional .schemerc.yaml file the REPL driver
// consults for its prompt, history file, preload scripts, and color
// preference.
//
// Grounded on the indirect goccy/go-yaml dependency pulled in by other
// config/test tooling, promoted to a direct dependency here since this is
// the first place the module actually needs to parse YAML itself.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const fileName = ".schemerc.yaml"

// Config holds the recognized .schemerc.yaml keys. Every field has a
// useful zero value, so a missing or partially-populated file degrades
// gracefully rather than failing to load.
type Config struct {
	Prompt      string   `yaml:"prompt"`
	HistoryFile string   `yaml:"history-file"`
	Preload     []string `yaml:"preload"`
	NoColor     bool     `yaml:"no-color"`
}

// Default returns the configuration used when no .schemerc.yaml is found.
func Default() Config {
	return Config{Prompt: "schemer> "}
}

// Load searches the current working directory and then $HOME for
// .schemerc.yaml, parses the first one found, and returns it merged over
// Default's zero values. Absence of the file anywhere is not an error.
func Load() (Config, error) {
	cfg := Default()
	path, ok := find()
	if !ok {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "schemer> "
	}
	return cfg, nil
}

func find() (string, bool) {
	if wd, err := os.Getwd(); err == nil {
		p := filepath.Join(wd, fileName)
		if fileExists(p) {
			return p, true
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, fileName)
		if fileExists(p) {
			return p, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
