// ABOUTME: install subcommand: writes bundled Ghostty theme files and tmux theme confs
// ABOUTME: Existing files are kept; failures are reported together

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pi-theme-sync/internal/log"
	"github.com/mauromedda/pi-theme-sync/internal/themesync"
)

func newInstallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install bundled theme files for Ghostty and tmux",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var errs []error
			for _, inst := range themesync.Installers(a.cfg) {
				if err := inst(cmd.Context()); err != nil {
					errs = append(errs, err)
				}
			}
			if err := errors.Join(errs...); err != nil {
				return fmt.Errorf("install: %w", err)
			}
			log.Debug("install: ghostty %s, tmux %s", a.cfg.GhosttyThemesDir, a.cfg.TmuxThemesDir)
			fmt.Fprintln(cmd.OutOrStdout(), "Theme assets installed.")
			return nil
		},
	}
}
