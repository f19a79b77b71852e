// ABOUTME: Root command: pi-theme [name] switches directly or opens the interactive picker
// ABOUTME: Loads config through viper with flag bindings and builds the theme session

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mauromedda/pi-theme-sync/internal/commands"
	"github.com/mauromedda/pi-theme-sync/internal/config"
	"github.com/mauromedda/pi-theme-sync/internal/keybindings"
	"github.com/mauromedda/pi-theme-sync/internal/log"
	"github.com/mauromedda/pi-theme-sync/internal/notify"
	"github.com/mauromedda/pi-theme-sync/internal/picker"
	"github.com/mauromedda/pi-theme-sync/internal/proc"
	"github.com/mauromedda/pi-theme-sync/internal/themesync"
	"github.com/mauromedda/pi-theme-sync/pkg/tui/theme"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	v      *viper.Viper
	cfg    *config.Config
	runner proc.Runner
	// interactive reports whether the picker may take over the terminal.
	interactive func() bool
}

func newApp() *app {
	return &app{
		v:           config.NewViper(),
		interactive: stdioIsTerminal,
	}
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pi-theme [name]",
		Short: "Keep the pi theme, Ghostty and tmux in sync with system appearance",
		Long: `Switch to a theme pair (follows light/dark appearance) or pin a single theme.
Without a name an interactive picker opens when running in a terminal.`,
		Version:           fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.load() },
		RunE:              a.runRoot,
		ValidArgsFunction: completeThemeNames,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ~/.pi-theme/config.json)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.String("backend", "", `persistence backend: "state" or "settings"`)
	pf.String("terminal-syntax", "", `Ghostty directive form: "pair" or "single"`)
	pf.Duration("interval", 0, "appearance poll interval")
	_ = a.v.BindPFlag(config.KeyBackend, pf.Lookup("backend"))
	_ = a.v.BindPFlag(config.KeyTerminalSyntax, pf.Lookup("terminal-syntax"))
	_ = a.v.BindPFlag(config.KeyInterval, pf.Lookup("interval"))

	cmd.AddCommand(newListCmd(a), newStatusCmd(a), newWatchCmd(a), newInstallCmd(a), newKeysCmd(a))
	return cmd
}

// load reads the config file, applies flags and env, and sets the log level.
func (a *app) load() error {
	if err := config.ReadFile(a.v, a.configPath); err != nil {
		return err
	}
	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelDebug
	if !a.verbose {
		if level, err = log.ParseLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("%s: %w", config.KeyLogLevel, err)
		}
	}
	log.SetLevel(level)
	return nil
}

// newSession builds a session whose info and warning notices are printed to
// w. Error notices are left to the returned error.
func (a *app) newSession(w io.Writer) *themesync.Session {
	bus := notify.New()
	bus.Subscribe(func(n notify.Notice) {
		if n.Level != notify.LevelError {
			fmt.Fprintln(w, n.String())
		}
	})
	return themesync.New(themesync.DefaultOptions(a.cfg, a.runner, theme.Applier{}, bus))
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s := a.newSession(cmd.ErrOrStderr())
	defer s.Close()
	s.Install(ctx)
	s.Restore()

	cc := &commands.CommandContext{
		SetTheme: func(name string) error {
			_, err := s.Set(ctx, name)
			return err
		},
		OpenThemePicker: func() error {
			return a.pick(ctx, cmd.ErrOrStderr(), s)
		},
		Status: func() string {
			return describe(ctx, s)
		},
	}

	input := "/theme"
	switch {
	case len(args) == 1:
		input += " " + args[0]
	case !a.interactive():
		input = "/status"
	}
	out, err := commands.NewRegistry().Dispatch(cc, input)
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return err
}

// pick runs the picker on the terminal, drawing on w.
func (a *app) pick(ctx context.Context, w io.Writer, s *themesync.Session) error {
	ed, err := s.BeginEdit()
	if err != nil {
		return err
	}
	km := keybindings.New(a.cfg.KeybindingsFile)
	res, err := picker.Run(ctx, ed, km, tea.WithOutput(w))
	if err != nil {
		return err
	}
	log.Debug("picker: confirmed=%v %s", res.Confirmed, res.Selection)
	return nil
}

func completeThemeNames(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return commands.CompleteThemeName(toComplete), cobra.ShellCompDirectiveNoFileComp
}
