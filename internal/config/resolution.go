package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Source names where a resolved value came from.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath  string
	Checker     string
	CheckerArgs []string
	Timeout     time.Duration
	Output      string
	Theme       string
	NoColor     bool
	Debug       bool

	// Flags to track if they were explicitly set by the user
	CheckerSet     bool
	CheckerArgsSet bool
	TimeoutSet     bool
	OutputSet      bool
	ThemeSet       bool
	NoColorSet     bool
	DebugSet       bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Checker     string
	CheckerArgs []string
	Timeout     time.Duration
	Output      string
	Theme       string
	NoColor     bool
	Debug       bool

	// Resolution metadata (for debugging)
	ConfigFile    string
	CheckerSource string
	TimeoutSource string
	OutputSource  string
	ThemeSource   string
}

// ResolveConfig resolves configuration from all sources with explicit priority order:
// CLI flags, then environment, then config file, then defaults.
func ResolveConfig(cliFlags CliFlags, logger *slog.Logger) (*ResolvedConfig, error) {
	appCfg, configFile, err := LoadConfig(cliFlags.ConfigPath, logger)
	if err != nil {
		return nil, err
	}

	fileOrDefault := SourceDefault
	if configFile != "" {
		fileOrDefault = SourceFile
	}

	resolved := &ResolvedConfig{
		Checker:       appCfg.Checker,
		CheckerArgs:   appCfg.CheckerArgs,
		Timeout:       appCfg.Timeout,
		Output:        appCfg.Output,
		Theme:         appCfg.Theme,
		NoColor:       appCfg.NoColor,
		Debug:         appCfg.Debug,
		ConfigFile:    configFile,
		CheckerSource: fileOrDefault,
		TimeoutSource: fileOrDefault,
		OutputSource:  fileOrDefault,
		ThemeSource:   fileOrDefault,
	}

	// Checker: CLI > ENV > file > default
	if cliFlags.CheckerSet {
		resolved.Checker, resolved.CheckerSource = cliFlags.Checker, SourceCLI
	} else if env := os.Getenv("EPICCHECK_CHECKER"); env != "" {
		resolved.Checker, resolved.CheckerSource = env, SourceEnv
	}
	if cliFlags.CheckerArgsSet {
		resolved.CheckerArgs = cliFlags.CheckerArgs
	}

	// Timeout: CLI > ENV > file > default
	if cliFlags.TimeoutSet {
		resolved.Timeout, resolved.TimeoutSource = cliFlags.Timeout, SourceCLI
	} else if env := os.Getenv("EPICCHECK_TIMEOUT"); env != "" {
		d, err := time.ParseDuration(env)
		if err != nil {
			return nil, fmt.Errorf("invalid EPICCHECK_TIMEOUT %q: %w", env, err)
		}
		resolved.Timeout, resolved.TimeoutSource = d, SourceEnv
	}

	// Output: CLI > file > default
	if cliFlags.OutputSet {
		resolved.Output, resolved.OutputSource = cliFlags.Output, SourceCLI
	}

	// Theme: CLI > ENV > file > default
	if cliFlags.ThemeSet {
		resolved.Theme, resolved.ThemeSource = cliFlags.Theme, SourceCLI
	} else if env := os.Getenv("EPICCHECK_REPORT_THEME"); env != "" {
		resolved.Theme, resolved.ThemeSource = env, SourceEnv
	}

	// NoColor: CLI > ENV > file > default
	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
	} else if envNoColor := getEnvBool("EPICCHECK_REPORT_NO_COLOR", "NO_COLOR"); envNoColor != nil {
		resolved.NoColor = *envNoColor
	}

	// Debug: CLI > ENV > file > default
	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
	} else if os.Getenv("EPICCHECK_REPORT_DEBUG") != "" {
		resolved.Debug = true
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

var validThemes = map[string]bool{
	"default": true,
	"orca":    true,
	"mono":    true,
}

func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.Checker == "" {
		return fmt.Errorf("checker command cannot be empty")
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got: %s", cfg.Timeout)
	}
	if cfg.Output == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if !validThemes[cfg.Theme] {
		return fmt.Errorf("invalid theme: %s (must be: default, orca, mono)", cfg.Theme)
	}
	return nil
}
