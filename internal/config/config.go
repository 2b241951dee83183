// Package config builds the immutable scan configuration from defaults, an
// optional .codescan.yml in the scan root, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project config file looked up in the scan root.
const FileName = ".codescan.yml"

// DefaultOutputDirName is appended to the scan root when no output directory
// is given.
const DefaultOutputDirName = "project_analysis"

// defaultExcludes are directory names pruned at any depth: version control,
// dependency caches, and virtual environments.
var defaultExcludes = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"__pycache__",
	"vendor",
	".bundle",
	"venv",
	".venv",
	"env",
	".tox",
}

// Config is the scan configuration. It is built once before scanning starts
// and never mutated afterwards.
type Config struct {
	// Root is the absolute path of the directory being scanned.
	Root string

	// OutputDir is where report artifacts are written.
	OutputDir string

	// ExcludedDirs are directory names (not paths) pruned during enumeration.
	ExcludedDirs []string

	// Languages restricts the scan to the named languages. Empty means all.
	Languages []string

	// RespectGitignore prunes files matched by the root .gitignore.
	RespectGitignore bool
}

// fileConfig is the YAML shape of .codescan.yml. All fields are optional.
type fileConfig struct {
	OutputDir        string   `yaml:"output_dir"`
	Exclude          []string `yaml:"exclude"`
	Languages        []string `yaml:"languages"`
	RespectGitignore *bool    `yaml:"respect_gitignore"`
}

// Default returns the configuration for scanning root with no overrides.
func Default(root string) Config {
	return Config{
		Root:             root,
		OutputDir:        filepath.Join(root, DefaultOutputDirName),
		ExcludedDirs:     append([]string(nil), defaultExcludes...),
		RespectGitignore: true,
	}
}

// Load returns the configuration for root, merging .codescan.yml from the
// root directory over the defaults when present. A missing config file is not
// an error; a malformed one is.
func Load(root string) (Config, error) {
	cfg := Default(root)

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if fc.OutputDir != "" {
		if filepath.IsAbs(fc.OutputDir) {
			cfg.OutputDir = fc.OutputDir
		} else {
			cfg.OutputDir = filepath.Join(root, fc.OutputDir)
		}
	}
	cfg.ExcludedDirs = append(cfg.ExcludedDirs, fc.Exclude...)
	cfg.Languages = append(cfg.Languages, fc.Languages...)
	if fc.RespectGitignore != nil {
		cfg.RespectGitignore = *fc.RespectGitignore
	}

	return cfg, nil
}

// IsExcluded reports whether a directory name is pruned by this config.
func (c Config) IsExcluded(name string) bool {
	for _, d := range c.ExcludedDirs {
		if name == d {
			return true
		}
	}
	return false
}

// WantsLanguage reports whether a language passes the configured filter.
func (c Config) WantsLanguage(name string) bool {
	if len(c.Languages) == 0 {
		return true
	}
	for _, l := range c.Languages {
		if name == l {
			return true
		}
	}
	return false
}
