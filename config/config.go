// Package config — optional .potranslator.yaml support.
//
// When a .potranslator.yaml file exists in the working directory, its
// values become the run defaults; command-line flags still override it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = ".potranslator.yaml"

// Config holds the resolved run defaults.
type Config struct {
	// SrcLang is the source language code (default "en").
	SrcLang string
	// DestLang is the destination language code (default "es").
	DestLang string
	// Delay is the pause before each engine request.
	Delay time.Duration
}

// rawConfig is the YAML schema. Delay is a string so users can write
// "500ms" or "2s".
type rawConfig struct {
	SrcLang  string `yaml:"src_lang,omitempty"`
	DestLang string `yaml:"dest_lang,omitempty"`
	Delay    string `yaml:"delay,omitempty"`
}

// Load reads .potranslator.yaml from dir. Returns nil if no config file
// exists; that is not an error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg := &Config{
		SrcLang:  raw.SrcLang,
		DestLang: raw.DestLang,
	}
	if raw.Delay != "" {
		d, err := time.ParseDuration(raw.Delay)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid delay %q: %w", path, raw.Delay, err)
		}
		cfg.Delay = d
	}
	return cfg, nil
}
