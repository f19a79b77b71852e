// ABOUTME: Configuration for pi-theme: poll interval, persistence backend, and target paths
// ABOUTME: Viper-backed; JSON file in ~/.pi-theme, PI_THEME_* env overrides, defaults for all keys

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
)

// EnvPrefix prefixes every environment override (PI_THEME_INTERVAL, ...).
const EnvPrefix = "PI_THEME"

// DefaultInterval is the appearance poll period.
const DefaultInterval = 2 * time.Second

// Backend selects where the selection is persisted.
type Backend string

const (
	// BackendState keeps {pair, pinned} in a private state file.
	BackendState Backend = "state"
	// BackendSettings writes the resolved theme into the agent's settings.json.
	BackendSettings Backend = "settings"
)

// Config keys.
const (
	KeyInterval         = "interval"
	KeyBackend          = "backend"
	KeyTerminalSyntax   = "terminal_syntax"
	KeyDefaultPair      = "default_pair"
	KeyGhosttyConfig    = "ghostty.config"
	KeyGhosttyThemesDir = "ghostty.themes_dir"
	KeyTmuxThemesDir    = "tmux.themes_dir"
	KeyTmuxThemeFile    = "tmux.theme_file"
	KeyStateFile        = "state_file"
	KeySettingsFile     = "settings_file"
	KeyLogLevel         = "log_level"
	KeyKeybindingsFile  = "keybindings_file"
)

// Config is the resolved configuration.
type Config struct {
	Interval         time.Duration
	Backend          Backend
	TerminalSyntax   resolver.TerminalSyntax
	DefaultPair      string
	GhosttyConfig    string
	GhosttyThemesDir string
	TmuxThemesDir    string
	TmuxThemeFile    string
	StateFile        string
	SettingsFile     string
	LogLevel         string
	KeybindingsFile  string
}

// GhosttyConfigDir is the directory holding the Ghostty config file.
func (c *Config) GhosttyConfigDir() string {
	return filepath.Dir(c.GhosttyConfig)
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Interval:         DefaultInterval,
		Backend:          BackendState,
		TerminalSyntax:   resolver.SyntaxPair,
		DefaultPair:      catalog.DefaultPair,
		GhosttyConfig:    filepath.Join(GhosttyDir(), "config"),
		GhosttyThemesDir: filepath.Join(GhosttyDir(), "themes"),
		TmuxThemesDir:    filepath.Join(TmuxDir(), "themes"),
		TmuxThemeFile:    filepath.Join(TmuxDir(), "theme.conf"),
		StateFile:        filepath.Join(AgentDir(), "theme-pair-state.json"),
		SettingsFile:     filepath.Join(AgentDir(), "settings.json"),
		LogLevel:         "info",
		KeybindingsFile:  filepath.Join(GlobalDir(), "keybindings.json"),
	}
}

// NewViper returns a viper instance with defaults and env bindings set.
// Callers may bind flags on it before passing it to Decode.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(KeyInterval, d.Interval)
	v.SetDefault(KeyBackend, string(d.Backend))
	v.SetDefault(KeyTerminalSyntax, string(d.TerminalSyntax))
	v.SetDefault(KeyDefaultPair, d.DefaultPair)
	v.SetDefault(KeyGhosttyConfig, d.GhosttyConfig)
	v.SetDefault(KeyGhosttyThemesDir, d.GhosttyThemesDir)
	v.SetDefault(KeyTmuxThemesDir, d.TmuxThemesDir)
	v.SetDefault(KeyTmuxThemeFile, d.TmuxThemeFile)
	v.SetDefault(KeyStateFile, d.StateFile)
	v.SetDefault(KeySettingsFile, d.SettingsFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyKeybindingsFile, d.KeybindingsFile)
	return v
}

// Load reads path (GlobalConfigFile when empty) into a fresh viper instance
// and decodes it. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := NewViper()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return Decode(v)
}

// ReadFile merges the JSON config at path into v. A missing file is not an
// error.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		path = GlobalConfigFile()
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

// Decode builds a validated Config from v.
func Decode(v *viper.Viper) (*Config, error) {
	c := &Config{
		Interval:         v.GetDuration(KeyInterval),
		Backend:          Backend(strings.ToLower(v.GetString(KeyBackend))),
		TerminalSyntax:   resolver.TerminalSyntax(strings.ToLower(v.GetString(KeyTerminalSyntax))),
		DefaultPair:      v.GetString(KeyDefaultPair),
		GhosttyConfig:    v.GetString(KeyGhosttyConfig),
		GhosttyThemesDir: v.GetString(KeyGhosttyThemesDir),
		TmuxThemesDir:    v.GetString(KeyTmuxThemesDir),
		TmuxThemeFile:    v.GetString(KeyTmuxThemeFile),
		StateFile:        v.GetString(KeyStateFile),
		SettingsFile:     v.GetString(KeySettingsFile),
		LogLevel:         v.GetString(KeyLogLevel),
		KeybindingsFile:  v.GetString(KeyKeybindingsFile),
	}
	ResolveEnvVars(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects values the session cannot run with.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyInterval, c.Interval)
	}
	switch c.Backend {
	case BackendState, BackendSettings:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", KeyBackend, BackendState, BackendSettings, c.Backend)
	}
	switch c.TerminalSyntax {
	case resolver.SyntaxPair, resolver.SyntaxSingle:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", KeyTerminalSyntax, resolver.SyntaxPair, resolver.SyntaxSingle, c.TerminalSyntax)
	}
	if _, err := catalog.ValidatePair(c.DefaultPair); err != nil {
		return fmt.Errorf("%s: %w", KeyDefaultPair, err)
	}
	return nil
}
