// ABOUTME: Tests for Ghostty config sync, reload triggering, and theme file installation
// ABOUTME: Uses temp dirs and a recording runner instead of real osascript/pkill

package ghostty

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/pi-theme-sync/internal/assets"
	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/proc"
	"github.com/mauromedda/pi-theme-sync/internal/syncerr"
)

type countingReloader struct {
	calls int
	err   error
}

func (r *countingReloader) Reload(context.Context) error {
	r.calls++
	return r.err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSyncer_Apply_WritesAndReloads(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "font-size = 14\ntheme = Old\n")
	r := &countingReloader{}
	s := &Syncer{ConfigPath: path, Reloader: r}

	changed, err := s.Apply(context.Background(), "Everforest Dark")
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if !changed {
		t.Error("Apply() changed = false; want true")
	}
	if r.calls != 1 {
		t.Errorf("reload calls = %d; want 1", r.calls)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "font-size = 14\ntheme = Everforest Dark\n" {
		t.Errorf("config = %q", data)
	}
	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v; want 0600", info.Mode().Perm())
	}
}

func TestSyncer_Apply_NoChangeSkipsReload(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "theme = Everforest Dark\n")
	r := &countingReloader{}
	s := &Syncer{ConfigPath: path, Reloader: r}

	changed, err := s.Apply(context.Background(), "Everforest Dark")
	if err != nil {
		t.Fatal(err)
	}
	if changed || r.calls != 0 {
		t.Errorf("changed = %v, reloads = %d; want false, 0", changed, r.calls)
	}
}

func TestSyncer_Apply_NoDirectiveLeavesFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "font-size = 14\n")
	r := &countingReloader{}
	s := &Syncer{ConfigPath: path, Reloader: r}

	changed, err := s.Apply(context.Background(), "Everforest Dark")
	if err != nil || changed || r.calls != 0 {
		t.Errorf("Apply() = %v, %v, reloads %d", changed, err, r.calls)
	}
}

func TestSyncer_Apply_MissingConfig(t *testing.T) {
	t.Parallel()
	s := &Syncer{ConfigPath: filepath.Join(t.TempDir(), "nope")}
	_, err := s.Apply(context.Background(), "X")
	if !errors.Is(err, syncerr.ErrConfigUnavailable) {
		t.Errorf("err = %v; want ErrConfigUnavailable", err)
	}
}

func TestSyncer_Apply_ReloadFailureKeepsWrite(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "theme = Old\n")
	r := &countingReloader{err: syncerr.Wrap(syncerr.ErrExternalToolUnavailable, "reload", errors.New("not running"))}
	s := &Syncer{ConfigPath: path, Reloader: r}

	changed, err := s.Apply(context.Background(), "New")
	if !changed {
		t.Error("changed = false; want true")
	}
	if !errors.Is(err, syncerr.ErrExternalToolUnavailable) {
		t.Errorf("err = %v; want ErrExternalToolUnavailable", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "theme = New\n" {
		t.Errorf("config = %q", data)
	}
}

func TestCommandReloader_PlatformCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "osascript"},
		{"linux", "pkill"},
	}
	for _, tt := range tests {
		var got string
		runner := proc.RunnerFunc(func(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
			got = name
			return nil, nil, nil
		})
		r := &CommandReloader{Runner: runner, GOOS: tt.goos}
		if err := r.Reload(context.Background()); err != nil {
			t.Errorf("%s: Reload() error: %v", tt.goos, err)
		}
		if got != tt.want {
			t.Errorf("%s: ran %q; want %q", tt.goos, got, tt.want)
		}
	}
}

func TestCommandReloader_FailureIsExternalTool(t *testing.T) {
	t.Parallel()
	runner := proc.RunnerFunc(func(context.Context, string, ...string) ([]byte, []byte, error) {
		return nil, nil, errors.New("exit status 1")
	})
	err := (&CommandReloader{Runner: runner, GOOS: "linux"}).Reload(context.Background())
	if !errors.Is(err, syncerr.ErrExternalToolUnavailable) {
		t.Errorf("err = %v; want ErrExternalToolUnavailable", err)
	}
}

func TestRenderTheme(t *testing.T) {
	t.Parallel()
	pals, err := assets.Palettes()
	if err != nil {
		t.Fatal(err)
	}
	out := RenderTheme(pals["catppuccin-mocha"])
	for _, want := range []string{"palette = 0=#45475a\n", "palette = 15=#bac2de\n", "background = #1e1e2e\n", "selection-foreground = #cdd6f4\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTheme() missing %q", want)
		}
	}
}

func TestInstallThemes_SkipsWithoutGhosttyDir(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	written, err := InstallThemes(filepath.Join(root, "ghostty"), filepath.Join(root, "ghostty", "themes"), nil)
	if err != nil || len(written) != 0 {
		t.Errorf("InstallThemes() = %v, %v; want nothing", written, err)
	}
	if _, err := os.Stat(filepath.Join(root, "ghostty")); !os.IsNotExist(err) {
		t.Error("InstallThemes created the ghostty dir")
	}
}

func TestInstallThemes_WritesMissingKeepsExisting(t *testing.T) {
	t.Parallel()
	configDir := t.TempDir()
	themesDir := filepath.Join(configDir, "themes")
	if err := os.MkdirAll(themesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(themesDir, "Everforest Dark")
	if err := os.WriteFile(existing, []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}
	pals, err := assets.Palettes()
	if err != nil {
		t.Fatal(err)
	}

	written, err := InstallThemes(configDir, themesDir, pals)
	if err != nil {
		t.Fatalf("InstallThemes() error: %v", err)
	}
	if len(written) != len(catalog.All())-1 {
		t.Errorf("written %d files; want %d", len(written), len(catalog.All())-1)
	}
	data, _ := os.ReadFile(existing)
	if string(data) != "custom" {
		t.Errorf("existing theme overwritten: %q", data)
	}
}

func TestInstallThemes_MissingPaletteIsAssetMissing(t *testing.T) {
	t.Parallel()
	configDir := t.TempDir()
	pals, _ := assets.Palettes()
	delete(pals, "everforest-light")

	written, err := InstallThemes(configDir, filepath.Join(configDir, "themes"), pals)
	if !errors.Is(err, syncerr.ErrAssetMissing) {
		t.Errorf("err = %v; want ErrAssetMissing", err)
	}
	if len(written) != len(catalog.All())-1 {
		t.Errorf("written %d files; want the other %d", len(written), len(catalog.All())-1)
	}
}
