// Package config loads and validates srcsplit configuration from YAML.
// The defaults reproduce the paw compiler's codegen.cpp split; a config file
// generalizes the tool to other monolithic sources.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"srcsplit/internal/partition"
	"srcsplit/internal/scan"
)

// Config holds all srcsplit configuration.
type Config struct {
	Name string `yaml:"name"`

	// Split paths
	Split SplitConfig `yaml:"split"`

	// Header recognition and output wrapping
	Recognizer RecognizerConfig `yaml:"recognizer"`

	// Symbol classification table
	Classify []ClassifyEntry `yaml:"classify"`

	// Per-category header comment emitted at the top of each partition file
	Headers map[string]string `yaml:"headers"`

	// Core reduction
	Reduce ReduceConfig `yaml:"reduce"`
}

// SplitConfig names the input file and output locations.
type SplitConfig struct {
	Source      string `yaml:"source"`
	OutputDir   string `yaml:"output_dir"`
	FilePattern string `yaml:"file_pattern"` // %s replaced by category
	ReducedFile string `yaml:"reduced_file"`
}

// RecognizerConfig configures definition-header matching and the fixed
// wrapper written around every partition.
type RecognizerConfig struct {
	// ReturnTypes are regex alternatives for the leading return-type token.
	// Empty means headers start directly with the owner qualifier.
	ReturnTypes []string `yaml:"return_types"`
	Owner       string   `yaml:"owner"`
	Namespace   string   `yaml:"namespace"`
	Includes    []string `yaml:"includes"`
}

// ClassifyEntry maps one symbol to a category.
type ClassifyEntry struct {
	Symbol   string `yaml:"symbol"`
	Category string `yaml:"category"`
}

// ReduceConfig lists the symbols the reduced file keeps, in emission order.
type ReduceConfig struct {
	Keep []string `yaml:"keep"`
}

// DefaultConfig returns the configuration matching the original codegen.cpp
// split.
func DefaultConfig() *Config {
	return &Config{
		Name: "srcsplit",

		Split: SplitConfig{
			Source:      "src/codegen/codegen.cpp",
			OutputDir:   "src/codegen",
			FilePattern: "codegen_%s.cpp",
			ReducedFile: "codegen_new.cpp",
		},

		Recognizer: RecognizerConfig{
			ReturnTypes: []string{`llvm::\w+\*`, `void`, `bool`, `std::string`},
			Owner:       "CodeGenerator",
			Namespace:   "pawc",
			Includes:    []string{`#include "codegen.h"`, `#include <iostream>`},
		},

		Classify: defaultClassification(),

		Headers: map[string]string{
			"match":  "// Pattern match code generation",
			"type":   "// Type conversion and generic instantiation",
			"struct": "// Struct and enum code generation",
			"stmt":   "// Statement code generation",
			"expr":   "// Expression code generation",
		},

		Reduce: ReduceConfig{
			Keep: []string{"printIR", "saveIR", "compileToObject", "generate"},
		},
	}
}

// Load loads configuration from a YAML file, returning defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if src := os.Getenv("SRCSPLIT_SOURCE"); src != "" {
		c.Split.Source = src
	}
	if dir := os.Getenv("SRCSPLIT_OUT"); dir != "" {
		c.Split.OutputDir = dir
	}
}

// Table builds the validated classification table. Duplicate symbols and
// unknown categories fail here, before any file is touched.
func (c *Config) Table() (*partition.Table, error) {
	entries := make([]partition.Entry, 0, len(c.Classify))
	for _, e := range c.Classify {
		entries = append(entries, partition.Entry{
			Symbol:   e.Symbol,
			Category: partition.Category(e.Category),
		})
	}
	return partition.NewTable(entries)
}

// NewRecognizer compiles the header matcher from the recognizer section.
func (c *Config) NewRecognizer() (*scan.Recognizer, error) {
	return scan.NewRecognizer(c.Recognizer.ReturnTypes, c.Recognizer.Owner)
}

// Validate checks the whole configuration without touching the filesystem.
func (c *Config) Validate() error {
	if c.Split.Source == "" {
		return fmt.Errorf("split.source is required")
	}
	if c.Split.OutputDir == "" {
		return fmt.Errorf("split.output_dir is required")
	}
	if c.Split.FilePattern == "" {
		return fmt.Errorf("split.file_pattern is required")
	}
	if c.Split.ReducedFile == "" {
		return fmt.Errorf("split.reduced_file is required")
	}
	if c.Recognizer.Namespace == "" {
		return fmt.Errorf("recognizer.namespace is required")
	}
	if _, err := c.NewRecognizer(); err != nil {
		return err
	}
	if _, err := c.Table(); err != nil {
		return err
	}
	for cat := range c.Headers {
		if _, err := partition.ParseCategory(cat); err != nil {
			return fmt.Errorf("headers: %w", err)
		}
	}
	return nil
}
