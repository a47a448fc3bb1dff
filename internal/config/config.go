package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/epiccheck-report/pkg/checker"
)

// AppConfig represents the contents of .epiccheck-report.yaml.
type AppConfig struct {
	Checker     string        `yaml:"checker"`
	CheckerArgs []string      `yaml:"checker_args"`
	Timeout     time.Duration `yaml:"-"` // decoded through fileConfig
	Output      string        `yaml:"output"`
	Theme       string        `yaml:"theme"`
	NoColor     bool          `yaml:"no_color"`
	Debug       bool          `yaml:"debug"`
}

// Constants for default values.
const (
	DefaultOutput    = "epiccheck_report.html"
	DefaultThemeName = "default"
	LocalConfigFile  = ".epiccheck-report.yaml"
	appConfigDirName = "epiccheck-report"
	userConfigFile   = "config.yaml"
)

// Defaults returns the hardcoded configuration.
func Defaults() *AppConfig {
	return &AppConfig{
		Checker: checker.DefaultCommand,
		Timeout: checker.DefaultTimeout,
		Output:  DefaultOutput,
		Theme:   DefaultThemeName,
	}
}

// LoadConfig loads configuration from explicitPath, or from the first
// discovered config file when explicitPath is empty. An explicitly named file
// that cannot be read or parsed is an error; a broken discovered file is
// logged and ignored.
func LoadConfig(explicitPath string, logger *slog.Logger) (*AppConfig, string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	appCfg := Defaults()

	configPath := explicitPath
	if configPath == "" {
		configPath = getConfigPath()
	}
	if configPath == "" {
		logger.Debug("no config file found, using defaults")
		return appCfg, "", nil
	}

	fileCfg, err := readConfigFile(configPath)
	if err != nil {
		if explicitPath != "" {
			return nil, "", err
		}
		logger.Warn("ignoring config file", "path", configPath, "error", err)
		return appCfg, "", nil
	}

	mergeFileConfig(appCfg, fileCfg)
	logger.Debug("loaded config file", "path", configPath)
	return appCfg, configPath, nil
}

// fileConfig is the on-disk form of AppConfig. Timeout is kept as a raw node
// so that an explicit zero, which disables the timeout, is told apart from
// an absent key.
type fileConfig struct {
	AppConfig `yaml:",inline"`

	Timeout *yaml.Node `yaml:"timeout"`

	timeoutSet bool
}

func readConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if fileCfg.Timeout != nil && fileCfg.Timeout.ShortTag() != "!!null" {
		d, err := time.ParseDuration(fileCfg.Timeout.Value)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: timeout: %w", path, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("parse config %s: timeout must not be negative", path)
		}
		fileCfg.AppConfig.Timeout, fileCfg.timeoutSet = d, true
	}
	return &fileCfg, nil
}

// mergeFileConfig overlays file values onto base. Strings keep the base
// value when empty; timeout is taken whenever the key is present.
func mergeFileConfig(base *AppConfig, file *fileConfig) {
	if file.Checker != "" {
		base.Checker = file.Checker
	}
	if file.CheckerArgs != nil {
		base.CheckerArgs = file.CheckerArgs
	}
	if file.timeoutSet {
		base.Timeout = file.AppConfig.Timeout
	}
	if file.Output != "" {
		base.Output = file.Output
	}
	if file.Theme != "" {
		base.Theme = file.Theme
	}
	base.NoColor = file.NoColor
	base.Debug = file.Debug
}

// getConfigPath returns the local config file if present, then the one under
// the user config directory, or "" when neither exists.
func getConfigPath() string {
	if _, err := os.Stat(LocalConfigFile); err == nil {
		return LocalConfigFile
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	userPath := filepath.Join(configHome, appConfigDirName, userConfigFile)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}
