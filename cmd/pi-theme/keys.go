// ABOUTME: keys subcommand: prints the picker key bindings after merging the keybindings file
// ABOUTME: Keys shared by several actions are reported as conflicts

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pi-theme-sync/internal/keybindings"
)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show picker key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			km := keybindings.New(a.cfg.KeybindingsFile)
			fmt.Fprint(cmd.OutOrStdout(), km.FormatAll())
			for _, c := range km.Conflicts() {
				names := make([]string, len(c.Actions))
				for i, act := range c.Actions {
					names[i] = string(act)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "conflict: %s is bound to %s\n", c.Key, strings.Join(names, ", "))
			}
			return nil
		},
	}
}
