// Package config handles configuration loading and merging for epiccheck-report.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--checker, --timeout, --theme, --no-color, --debug, positional output path)
//  2. Environment variables (EPICCHECK_CHECKER, EPICCHECK_TIMEOUT, EPICCHECK_REPORT_THEME, ...)
//  3. YAML config file (--config path, .epiccheck-report.yaml in the working directory,
//     or ~/.config/epiccheck-report/config.yaml)
//  4. Hardcoded defaults
//
// The defaults reproduce the plain invocation `epiccheck <project>` writing
// epiccheck_report.html, so a missing config file changes nothing.
//
// # Environment Variables
//
//   - EPICCHECK_CHECKER: checker executable
//   - EPICCHECK_TIMEOUT: checker timeout as a Go duration ("90s", "0" disables)
//   - EPICCHECK_REPORT_THEME: console theme (default, orca, mono)
//   - EPICCHECK_REPORT_NO_COLOR or NO_COLOR: "true" or "1" disables colors
//   - EPICCHECK_REPORT_DEBUG: any non-empty value enables debug logging
package config
