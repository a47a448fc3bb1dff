package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty working directory with an empty user
// config directory and no epiccheck environment variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, key := range []string{
		"EPICCHECK_CHECKER", "EPICCHECK_TIMEOUT", "EPICCHECK_REPORT_THEME",
		"EPICCHECK_REPORT_NO_COLOR", "NO_COLOR", "EPICCHECK_REPORT_DEBUG",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalConfigFile), "checker: local\n")

	assert.Equal(t, LocalConfigFile, getConfigPath())
}

func TestGetConfigPath_UsesUserConfigDir_When_LocalMissing(t *testing.T) {
	dir := isolate(t)
	userPath := filepath.Join(dir, "xdg", "epiccheck-report", "config.yaml")
	writeFile(t, userPath, "checker: xdg\n")

	assert.Equal(t, userPath, getConfigPath())
}

func TestGetConfigPath_ReturnsEmpty_When_NoFiles(t *testing.T) {
	isolate(t)
	assert.Empty(t, getConfigPath())
}

func TestLoadConfig_Defaults_When_NoFile(t *testing.T) {
	isolate(t)

	cfg, path, err := LoadConfig("", nil)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "epiccheck", cfg.Checker)
	assert.Equal(t, "epiccheck_report.html", cfg.Output)
}

func TestLoadConfig_ParsesExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `checker: python3
checker_args: [epiccheck]
timeout: 90s
output: out/report.html
theme: orca
no_color: true
`)

	cfg, got, err := LoadConfig(path, nil)

	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "python3", cfg.Checker)
	assert.Equal(t, []string{"epiccheck"}, cfg.CheckerArgs)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, "out/report.html", cfg.Output)
	assert.Equal(t, "orca", cfg.Theme)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_Errors_When_ExplicitFileMissingOrInvalid(t *testing.T) {
	dir := isolate(t)

	_, _, err := LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "checker: [unterminated\n")
	_, _, err = LoadConfig(bad, nil)
	require.Error(t, err)
}

func TestLoadConfig_IgnoresInvalidDiscoveredFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalConfigFile), "timeout: not-a-duration\n")

	cfg, path, err := LoadConfig("", nil)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadConfig_DisablesTimeout_When_FileSetsZero(t *testing.T) {
	for _, value := range []string{"0", "0s"} {
		t.Run(value, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "zero.yaml")
			writeFile(t, path, "timeout: "+value+"\n")

			cfg, _, err := LoadConfig(path, nil)

			require.NoError(t, err)
			assert.Zero(t, cfg.Timeout)
		})
	}
}

func TestLoadConfig_KeepsDefaultTimeout_When_KeyAbsentOrEmpty(t *testing.T) {
	for name, content := range map[string]string{
		"absent": "checker: python3\n",
		"empty":  "timeout:\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "cfg.yaml")
			writeFile(t, path, content)

			cfg, _, err := LoadConfig(path, nil)

			require.NoError(t, err)
			assert.Equal(t, 5*time.Minute, cfg.Timeout)
		})
	}
}

func TestLoadConfig_Errors_When_FileTimeoutInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"negative":     "timeout: -1s\n",
		"missing unit": "timeout: 90\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "cfg.yaml")
			writeFile(t, path, content)

			_, _, err := LoadConfig(path, nil)
			require.Error(t, err)
		})
	}
}
