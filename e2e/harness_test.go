// ABOUTME: PTY harness for end-to-end tests: builds pi-theme once and drives it in a pseudo-terminal
// ABOUTME: Output is accumulated in the background; expectations poll it with a deadline

package e2e

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// binary builds cmd/pi-theme into a temp dir shared by the package's tests.
func binary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		_, file, _, _ := runtime.Caller(0)
		root := filepath.Dir(filepath.Dir(file))
		dir, err := os.MkdirTemp("", "pi-theme-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "pi-theme")
		cmd := exec.Command("go", "build", "-o", binPath, "./cmd/pi-theme")
		cmd.Dir = root
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = errors.New(string(out))
		}
	})
	if buildErr != nil {
		t.Fatalf("building pi-theme: %v", buildErr)
	}
	return binPath
}

// fixture is an isolated set of config, state and target files.
type fixture struct {
	dir     string
	cfgPath string
	ghostty string
	state   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:     dir,
		cfgPath: filepath.Join(dir, "config.json"),
		ghostty: filepath.Join(dir, "ghostty", "config"),
		state:   filepath.Join(dir, "agent", "theme-pair-state.json"),
	}
	if err := os.MkdirAll(filepath.Dir(f.ghostty), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(f.ghostty, []byte("theme = Old\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := map[string]any{
		"state_file":    f.state,
		"settings_file": filepath.Join(dir, "agent", "settings.json"),
		"ghostty":       map[string]string{"config": f.ghostty, "themes_dir": filepath.Join(dir, "ghostty", "themes")},
		"tmux":          map[string]string{"themes_dir": filepath.Join(dir, "tmux", "themes"), "theme_file": filepath.Join(dir, "tmux", "theme.conf")},
	}
	data, _ := json.Marshal(cfg)
	if err := os.WriteFile(f.cfgPath, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return f
}

func (f fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ptySession is a running pi-theme attached to a pseudo-terminal.
type ptySession struct {
	cmd  *exec.Cmd
	pty  *os.File
	done chan error

	mu  sync.Mutex
	out strings.Builder
}

func start(t *testing.T, f fixture, args ...string) *ptySession {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	cmd := exec.Command(binary(t), append([]string{"--config", f.cfgPath}, args...)...)
	cmd.Env = append(os.Environ(), "PI_THEME_APPEARANCE=dark", "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: 100, Rows: 40})
	if err != nil {
		t.Fatalf("pty start: %v", err)
	}
	s := &ptySession{cmd: cmd, pty: ptmx, done: make(chan error, 1)}
	go s.readLoop()
	go func() { s.done <- cmd.Wait() }()
	t.Cleanup(s.close)
	return s
}

func (s *ptySession) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *ptySession) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

func (s *ptySession) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output:\n%s", want, s.output())
}

func (s *ptySession) send(t *testing.T, keys string) {
	t.Helper()
	if _, err := s.pty.Write([]byte(keys)); err != nil {
		t.Fatalf("pty write: %v", err)
	}
}

func (s *ptySession) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case err := <-s.done:
		if err != nil {
			t.Fatalf("pi-theme exited with %v; output:\n%s", err, s.output())
		}
	case <-time.After(timeout):
		t.Fatalf("pi-theme did not exit; output:\n%s", s.output())
	}
}

func (s *ptySession) close() {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.pty.Close()
}
