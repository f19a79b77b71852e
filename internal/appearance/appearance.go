// ABOUTME: OS light/dark appearance source with a bounded, failure-swallowing query
// ABOUTME: Any failure reads as light so the session degrades deterministically

package appearance

import (
	"context"
	"errors"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/mauromedda/pi-theme-sync/internal/proc"
	"github.com/mauromedda/pi-theme-sync/internal/syncerr"
)

// EnvOverride forces the appearance when set to "dark" or "light".
const EnvOverride = "PI_THEME_APPEARANCE"

// queryTimeout bounds one appearance query.
const queryTimeout = 3 * time.Second

// Source answers whether the system is in dark mode right now.
type Source interface {
	IsDark(ctx context.Context) bool
}

// Static is a Source with a fixed answer.
type Static bool

// IsDark returns the fixed answer.
func (s Static) IsDark(context.Context) bool { return bool(s) }

// Func adapts a function to Source.
type Func func(ctx context.Context) bool

// IsDark calls f.
func (f Func) IsDark(ctx context.Context) bool { return f(ctx) }

// Detector queries the host platform.
type Detector struct {
	Runner proc.Runner
	GOOS   string
	Getenv func(string) string

	mu      sync.Mutex
	lastErr error
}

// NewDetector returns a Detector for the host platform.
func NewDetector(r proc.Runner) *Detector {
	return &Detector{Runner: r, GOOS: runtime.GOOS, Getenv: os.Getenv}
}

// IsDark queries the platform. Errors are recorded (see LastError) and read
// as light.
func (d *Detector) IsDark(ctx context.Context) bool {
	dark, err := d.query(ctx)
	d.mu.Lock()
	d.lastErr = err
	d.mu.Unlock()
	return err == nil && dark
}

// LastError returns the failure swallowed by the most recent IsDark call.
func (d *Detector) LastError() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

func (d *Detector) query(ctx context.Context) (bool, error) {
	if d.Getenv != nil {
		switch strings.ToLower(strings.TrimSpace(d.Getenv(EnvOverride))) {
		case "dark":
			return true, nil
		case "light":
			return false, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	switch d.GOOS {
	case "darwin":
		out, _, err := d.Runner.Run(ctx, "osascript", "-e",
			`tell application "System Events" to tell appearance preferences to return dark mode`)
		if err != nil {
			return false, syncerr.Wrap(syncerr.ErrExternalToolUnavailable, "osascript dark mode", err)
		}
		return ParseDarwin(out), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		out, _, err := d.Runner.Run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return false, syncerr.Wrap(syncerr.ErrExternalToolUnavailable, "gsettings color-scheme", err)
		}
		return ParseGSettings(out), nil
	default:
		return false, syncerr.Wrap(syncerr.ErrExternalToolUnavailable, "appearance query",
			errors.New("unsupported platform "+d.GOOS))
	}
}

// ParseDarwin interprets osascript's "dark mode" answer.
func ParseDarwin(out []byte) bool {
	return strings.TrimSpace(string(out)) == "true"
}

// ParseGSettings interprets the GNOME color-scheme key.
func ParseGSettings(out []byte) bool {
	return strings.Trim(strings.TrimSpace(string(out)), "'\"") == "prefer-dark"
}
