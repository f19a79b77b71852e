// ABOUTME: watch subcommand: applies the selection and follows appearance until interrupted
// ABOUTME: SIGINT/SIGTERM stop the poller and settings watcher before exit

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pi-theme-sync/internal/log"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow system appearance and keep every target in sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := a.newSession(cmd.ErrOrStderr())
			s.Start(ctx)
			log.Info("watching appearance every %s (%s)", a.cfg.Interval, s.Selection())

			<-ctx.Done()
			s.Close()
			log.Debug("watch: stopped")
			return nil
		},
	}
}
