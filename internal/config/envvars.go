// ABOUTME: Environment variable expansion in config path fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns and a leading ~ in every path field.
func ResolveEnvVars(c *Config) {
	for _, p := range []*string{
		&c.GhosttyConfig,
		&c.GhosttyThemesDir,
		&c.TmuxThemesDir,
		&c.TmuxThemeFile,
		&c.StateFile,
		&c.SettingsFile,
		&c.KeybindingsFile,
	} {
		*p = ExpandHome(expandEnv(*p))
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
