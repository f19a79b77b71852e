// ABOUTME: Copies a bundled theme definition over the tmux theme file and re-sources it
// ABOUTME: Also installs bundled <name>.conf assets into the tmux themes directory

package tmux

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mauromedda/pi-theme-sync/internal/syncerr"
)

// Syncer replaces ThemeFile wholesale with <ThemesDir>/<name>.conf.
type Syncer struct {
	ThemesDir string
	ThemeFile string
	Client    *Client
}

// Apply copies the named theme over ThemeFile. The apply command runs only
// when the destination content actually changed. It returns whether the file
// changed.
func (s *Syncer) Apply(ctx context.Context, themeName string) (bool, error) {
	src := filepath.Join(s.ThemesDir, themeName+".conf")
	content, err := os.ReadFile(src)
	if err != nil {
		return false, syncerr.Wrap(syncerr.ErrConfigUnavailable, "reading tmux theme", err)
	}

	current, err := os.ReadFile(s.ThemeFile)
	if err == nil && bytes.Equal(current, content) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, syncerr.Wrap(syncerr.ErrConfigUnavailable, "reading tmux theme file", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.ThemeFile), 0o755); err != nil {
		return false, syncerr.Wrap(syncerr.ErrConfigUnavailable, "creating tmux config dir", err)
	}
	if err := os.WriteFile(s.ThemeFile, content, 0o644); err != nil {
		return false, syncerr.Wrap(syncerr.ErrConfigUnavailable, "writing tmux theme file", err)
	}

	if s.Client != nil {
		if err := s.Client.SourceFile(ctx, s.ThemeFile); err != nil {
			return true, err
		}
	}
	return true, nil
}

// InstallThemes copies <name>.conf for each name from bundled into dir,
// leaving files that already exist. A missing asset is skipped with an
// ErrAssetMissing entry in the joined error; the rest still install.
func InstallThemes(bundled fs.FS, dir string, names []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, syncerr.Wrap(syncerr.ErrConfigUnavailable, "creating tmux themes dir", err)
	}

	var written []string
	var errs []error
	for _, name := range names {
		file := name + ".conf"
		dst := filepath.Join(dir, file)
		if _, err := os.Stat(dst); err == nil {
			continue
		}

		data, err := fs.ReadFile(bundled, file)
		if err != nil {
			errs = append(errs, syncerr.Wrap(syncerr.ErrAssetMissing, "bundled "+file, err))
			continue
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			errs = append(errs, syncerr.Wrap(syncerr.ErrConfigUnavailable, "writing "+dst, err))
			continue
		}
		written = append(written, dst)
	}
	return written, errors.Join(errs...)
}
