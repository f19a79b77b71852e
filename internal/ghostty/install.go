// ABOUTME: Installs Ghostty theme files rendered from the bundled palettes
// ABOUTME: Skips when Ghostty is not configured; never overwrites an existing theme file

package ghostty

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/pi-theme-sync/internal/assets"
	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/syncerr"
)

// RenderTheme renders a palette in Ghostty's theme file syntax.
func RenderTheme(p assets.Palette) string {
	var b strings.Builder
	for i, c := range p.ANSI {
		fmt.Fprintf(&b, "palette = %d=%s\n", i, c)
	}
	fmt.Fprintf(&b, "background = %s\n", p.Background)
	fmt.Fprintf(&b, "foreground = %s\n", p.Foreground)
	fmt.Fprintf(&b, "cursor-color = %s\n", p.Cursor)
	fmt.Fprintf(&b, "cursor-text = %s\n", p.CursorText)
	fmt.Fprintf(&b, "selection-background = %s\n", p.SelectionBackground)
	fmt.Fprintf(&b, "selection-foreground = %s\n", p.SelectionForeground)
	return b.String()
}

// InstallThemes writes one theme file per catalog theme into themesDir,
// named by the theme's external name. Nothing happens when configDir (the
// Ghostty config directory) does not exist. Existing files are kept. It
// returns the paths written; per-theme failures are joined into err and do
// not stop the others.
func InstallThemes(configDir, themesDir string, palettes map[string]assets.Palette) ([]string, error) {
	if info, err := os.Stat(configDir); err != nil || !info.IsDir() {
		return nil, nil
	}
	if err := os.MkdirAll(themesDir, 0o755); err != nil {
		return nil, syncerr.Wrap(syncerr.ErrConfigUnavailable, "creating ghostty themes dir", err)
	}

	var written []string
	var errs []error
	for _, t := range catalog.All() {
		path := filepath.Join(themesDir, t.ExternalName)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, syncerr.Wrap(syncerr.ErrConfigUnavailable, "stat "+path, err))
			continue
		}

		p, ok := palettes[t.Name]
		if !ok {
			errs = append(errs, syncerr.Wrap(syncerr.ErrAssetMissing, "palette "+t.Name, fs.ErrNotExist))
			continue
		}
		if err := os.WriteFile(path, []byte(RenderTheme(p)), 0o644); err != nil {
			errs = append(errs, syncerr.Wrap(syncerr.ErrConfigUnavailable, "writing "+path, err))
			continue
		}
		written = append(written, path)
	}
	return written, errors.Join(errs...)
}
