// ABOUTME: Slash command registry and dispatch for the theme commands
// ABOUTME: Provides /theme (picker or direct switch), /status and /help with argument completion

package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
)

// ErrNotAvailable is returned when a command's callback is not wired.
var ErrNotAvailable = errors.New("not available")

// Command represents a slash command.
type Command struct {
	Name        string
	Description string
	Execute     func(ctx *CommandContext, args string) (string, error)
	// Complete returns argument completions for prefix, or nil.
	Complete func(prefix string) []string
}

// CommandContext provides the host's callbacks. All are nilable; commands
// return ErrNotAvailable when the one they need is nil.
type CommandContext struct {
	// SetTheme switches to a pair (auto) or a theme (pinned) by name.
	SetTheme func(name string) error
	// OpenThemePicker runs the interactive picker to completion.
	OpenThemePicker func() error
	// Status describes the current selection and applied theme.
	Status func() string
}

// Registry holds all registered slash commands.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates a registry with all core commands registered.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]*Command)}
	r.registerCoreCommands()
	return r
}

// Register adds or replaces cmd.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
}

// Get returns a command by name.
// The second return value indicates whether the name was found.
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name for deterministic output.
func (r *Registry) List() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Dispatch parses a "/command args" input, looks up the command, and executes it.
// Returns the command output or an error if the command is not found.
func (r *Registry) Dispatch(ctx *CommandContext, input string) (string, error) {
	name, args, err := split(input)
	if err != nil {
		return "", err
	}
	cmd, ok := r.commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command: /%s", name)
	}
	return cmd.Execute(ctx, args)
}

// Complete returns completions for a partially typed "/command arg".
// Without a space it completes command names; otherwise it defers to the
// command's argument completer.
func (r *Registry) Complete(input string) []string {
	if !IsCommand(input) {
		return nil
	}
	raw := input[1:]
	name, prefix, hasArgs := strings.Cut(raw, " ")
	if !hasArgs {
		var out []string
		for _, cmd := range r.List() {
			if strings.HasPrefix(cmd.Name, name) {
				out = append(out, "/"+cmd.Name)
			}
		}
		return out
	}
	cmd, ok := r.commands[name]
	if !ok || cmd.Complete == nil {
		return nil
	}
	return cmd.Complete(strings.TrimLeft(prefix, " "))
}

// IsCommand returns true if input starts with '/'.
func IsCommand(input string) bool {
	return len(input) > 0 && input[0] == '/'
}

func split(input string) (name, args string, err error) {
	input = strings.TrimSpace(input)
	if !IsCommand(input) {
		return "", "", fmt.Errorf("not a command: %q", input)
	}
	name, args, _ = strings.Cut(input[1:], " ")
	return name, strings.TrimSpace(args), nil
}

// CompleteThemeName returns every pair and theme name starting with prefix,
// pairs first. A name that is both a pair and a theme appears once. It
// returns nil when nothing matches.
func CompleteThemeName(prefix string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range catalog.AllNames() {
		if seen[name] || !strings.HasPrefix(name, prefix) {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// registerCoreCommands adds all built-in slash commands to the registry.
func (r *Registry) registerCoreCommands() {
	core := []*Command{
		{
			Name:        "theme",
			Description: "Switch theme (interactive picker or /theme <name>)",
			Execute: func(ctx *CommandContext, args string) (string, error) {
				if args == "" {
					if ctx.OpenThemePicker == nil {
						return "", ErrNotAvailable
					}
					return "", ctx.OpenThemePicker()
				}
				if ctx.SetTheme == nil {
					return "", ErrNotAvailable
				}
				return "", ctx.SetTheme(args)
			},
			Complete: CompleteThemeName,
		},
		{
			Name:        "status",
			Description: "Show the current theme selection",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.Status == nil {
					return "", ErrNotAvailable
				}
				return ctx.Status(), nil
			},
		},
	}
	for _, cmd := range core {
		r.Register(cmd)
	}

	// help closes over the registry, so it is registered last.
	r.Register(&Command{
		Name:        "help",
		Description: "List available commands",
		Execute: func(_ *CommandContext, _ string) (string, error) {
			var b strings.Builder
			for i, cmd := range r.List() {
				if i > 0 {
					b.WriteByte('\n')
				}
				fmt.Fprintf(&b, "/%-8s %s", cmd.Name, cmd.Description)
			}
			return b.String(), nil
		},
	})
}
