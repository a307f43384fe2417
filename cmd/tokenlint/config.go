package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .tokenlint/config.yaml.
type ProjectConfig struct {
	Version        string   `yaml:"version"`
	VocabularyPath string   `yaml:"vocabulary_path"`
	Include        []string `yaml:"include"`
	Exclude        []string `yaml:"exclude"`
	FailOn         string   `yaml:"fail_on"`
}

// loadProjectConfig reads .tokenlint/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".tokenlint/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveVocabularyPath returns the vocabulary document to load, applying the
// fallback chain:
//  1. Explicit --vocabulary flag value
//  2. vocabulary_path from .tokenlint/config.yaml
//  3. Empty: the built-in default vocabulary
func resolveVocabularyPath(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.VocabularyPath != "" {
		return cfg.VocabularyPath
	}
	return ""
}

// resolveFailOn returns the exit-code policy, defaulting to "error": only
// error-severity violations fail the process. "warning" fails on anything,
// "none" always exits zero. The policy lives in the CLI, not the engine, so
// CI can flip it without an engine change.
func resolveFailOn(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.FailOn != "" {
		return cfg.FailOn
	}
	return "error"
}
