// ABOUTME: status subcommand: prints the persisted selection and what it resolves to now
// ABOUTME: Resolution queries the system appearance for auto selections

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pi-theme-sync/internal/themesync"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current selection and resolved targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.newSession(cmd.ErrOrStderr())
			defer s.Close()
			s.Restore()
			fmt.Fprintln(cmd.OutOrStdout(), describe(cmd.Context(), s))
			return nil
		},
	}
}

// describe renders the session's selection and resolved targets.
func describe(ctx context.Context, s *themesync.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "selection:   %s\n", s.Selection())
	tgt, err := s.Resolve(ctx)
	if err != nil {
		fmt.Fprintf(&b, "resolve:     %v", err)
		return b.String()
	}
	fmt.Fprintf(&b, "app:         %s\n", tgt.App.Name)
	fmt.Fprintf(&b, "ghostty:     %s\n", tgt.Terminal)
	fmt.Fprintf(&b, "tmux:        %s", tgt.Multiplexer)
	return b.String()
}
