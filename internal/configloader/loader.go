// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging
// and environment variable support.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/varedit/pkg/config"
	"github.com/yaklabco/varedit/pkg/placeholder"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// LookupEnv reads environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (VAREDIT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.varedit.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/varedit/config.yaml)
//  6. Defaults
//
// A relative catalog path is resolved against the directory of the file
// that set it, or the working directory for environment and flags.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	for _, shadowed := range paths.Shadowed {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("ignoring %s; %s takes precedence", shadowed, paths.Project))
	}

	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", opts.ExplicitPath, false},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		envCfg := &config.Config{}
		if err := LoadFromEnv(envCfg, opts.LookupEnv); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		resolveCatalog(envCfg, workDir)
		cfg = merge(cfg, envCfg)
	}

	if opts.CLIConfig != nil {
		cliCfg := opts.CLIConfig.Clone()
		resolveCatalog(cliCfg, workDir)
		cfg = merge(cfg, cliCfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Catalog != "" && !fileExists(cfg.Catalog) {
		result.Warnings = append(result.Warnings, "catalog file not found: "+cfg.Catalog)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a YAML or TOML configuration file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", placeholder.ErrInvalidConfiguration, path, err)
	}

	resolveCatalog(cfg, filepath.Dir(path))
	return cfg, nil
}

func resolveCatalog(cfg *config.Config, dir string) {
	if cfg.Catalog != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(dir, cfg.Catalog)
	}
}
