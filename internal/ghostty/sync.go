// ABOUTME: Applies a theme directive to the Ghostty config file and triggers a live reload
// ABOUTME: Writes and reloads only when the directive text actually changed

package ghostty

import (
	"context"
	"os"
	"runtime"

	"github.com/mauromedda/pi-theme-sync/internal/proc"
	"github.com/mauromedda/pi-theme-sync/internal/syncerr"
)

// reloadScript clicks Ghostty's own "Reload Configuration" menu item.
const reloadScript = `tell application "System Events" to tell process "Ghostty" to click menu item "Reload Configuration" of menu "Ghostty" of menu bar item "Ghostty" of menu bar 1`

// Reloader asks a running Ghostty to re-read its config.
type Reloader interface {
	Reload(ctx context.Context) error
}

// CommandReloader reloads Ghostty through a platform command: an AppleScript
// menu click on macOS, SIGUSR2 to ghostty processes elsewhere.
type CommandReloader struct {
	Runner proc.Runner
	GOOS   string
}

// NewReloader returns a CommandReloader for the host platform.
func NewReloader(r proc.Runner) *CommandReloader {
	return &CommandReloader{Runner: r, GOOS: runtime.GOOS}
}

// Reload fires the reload trigger. Failures are ErrExternalToolUnavailable.
func (c *CommandReloader) Reload(ctx context.Context) error {
	var err error
	if c.GOOS == "darwin" {
		_, _, err = c.Runner.Run(ctx, "osascript", "-e", reloadScript)
	} else {
		_, _, err = c.Runner.Run(ctx, "pkill", "-USR2", "-x", "ghostty")
	}
	return syncerr.Wrap(syncerr.ErrExternalToolUnavailable, "reloading ghostty", err)
}

// Syncer keeps the theme directive of one Ghostty config file in sync.
type Syncer struct {
	ConfigPath string
	Reloader   Reloader
}

// Apply rewrites the config so its theme directive reads value. It returns
// whether the file changed. A missing or unwritable config is reported as
// ErrConfigUnavailable; a failed reload does not undo the write.
func (s *Syncer) Apply(ctx context.Context, value string) (bool, error) {
	data, err := os.ReadFile(s.ConfigPath)
	if err != nil {
		return false, syncerr.Wrap(syncerr.ErrConfigUnavailable, "reading ghostty config", err)
	}

	res := Rewrite(string(data), value)
	if !res.Changed {
		return false, nil
	}

	info, err := os.Stat(s.ConfigPath)
	if err != nil {
		return false, syncerr.Wrap(syncerr.ErrConfigUnavailable, "stat ghostty config", err)
	}
	if err := os.WriteFile(s.ConfigPath, []byte(res.Text), info.Mode().Perm()); err != nil {
		return false, syncerr.Wrap(syncerr.ErrConfigUnavailable, "writing ghostty config", err)
	}

	if s.Reloader != nil {
		if err := s.Reloader.Reload(ctx); err != nil {
			return true, err
		}
	}
	return true, nil
}
