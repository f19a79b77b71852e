// ABOUTME: Builds Session options from configuration: real appearance, stores and targets
// ABOUTME: Installers seed Ghostty theme files and tmux theme confs from embedded assets

package themesync

import (
	"context"

	"github.com/mauromedda/pi-theme-sync/internal/appearance"
	"github.com/mauromedda/pi-theme-sync/internal/assets"
	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/config"
	"github.com/mauromedda/pi-theme-sync/internal/ghostty"
	"github.com/mauromedda/pi-theme-sync/internal/log"
	"github.com/mauromedda/pi-theme-sync/internal/notify"
	"github.com/mauromedda/pi-theme-sync/internal/proc"
	"github.com/mauromedda/pi-theme-sync/internal/state"
	"github.com/mauromedda/pi-theme-sync/internal/tmux"
)

// NewStore returns the persistence backend selected by cfg.
func NewStore(cfg *config.Config) state.Store {
	if cfg.Backend == config.BackendSettings {
		return &state.SettingsStore{Path: cfg.SettingsFile}
	}
	return &state.FileStore{Path: cfg.StateFile}
}

// DefaultOptions wires every target to the host system. A nil runner uses
// proc.Exec. app may be nil when no application theme is managed.
func DefaultOptions(cfg *config.Config, runner proc.Runner, app AppThemer, bus *notify.Bus) Options {
	if runner == nil {
		runner = proc.Exec{}
	}
	return Options{
		Config:     cfg,
		Appearance: appearance.NewDetector(runner),
		Store:      NewStore(cfg),
		App:        app,
		Terminal: &ghostty.Syncer{
			ConfigPath: cfg.GhosttyConfig,
			Reloader:   ghostty.NewReloader(runner),
		},
		Multiplexer: &tmux.Syncer{
			ThemesDir: cfg.TmuxThemesDir,
			ThemeFile: cfg.TmuxThemeFile,
			Client:    tmux.NewClient(runner),
		},
		Installers: Installers(cfg),
		Notices:    bus,
	}
}

// Installers returns the asset installers for Ghostty and tmux.
func Installers(cfg *config.Config) []Installer {
	return []Installer{
		func(context.Context) error {
			pals, err := assets.Palettes()
			if err != nil {
				return err
			}
			written, err := ghostty.InstallThemes(cfg.GhosttyConfigDir(), cfg.GhosttyThemesDir, pals)
			for _, p := range written {
				log.Debug("installed %s", p)
			}
			return err
		},
		func(context.Context) error {
			written, err := tmux.InstallThemes(assets.TmuxThemes(), cfg.TmuxThemesDir, catalog.Names())
			for _, p := range written {
				log.Debug("installed %s", p)
			}
			return err
		},
	}
}
