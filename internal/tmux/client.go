// ABOUTME: Minimal tmux command client; sources a file into the running server
// ABOUTME: Missing binary or no server maps to ErrExternalToolUnavailable

package tmux

import (
	"context"
	"errors"
	"strings"

	"github.com/mauromedda/pi-theme-sync/internal/proc"
	"github.com/mauromedda/pi-theme-sync/internal/syncerr"
)

// Client wraps tmux command helpers.
type Client struct {
	run proc.Runner
}

// NewClient creates a tmux client. A nil runner uses proc.Exec.
func NewClient(r proc.Runner) *Client {
	if r == nil {
		r = proc.Exec{}
	}
	return &Client{run: r}
}

// SourceFile asks the running tmux server to source path. A missing binary or
// server is reported as ErrExternalToolUnavailable.
func (c *Client) SourceFile(ctx context.Context, path string) error {
	_, stderr, err := c.run.Run(ctx, "tmux", "source-file", path)
	if err != nil {
		if isNoServerRunning(stderr) {
			return syncerr.Wrap(syncerr.ErrExternalToolUnavailable, "tmux source-file", ErrNoServer)
		}
		return syncerr.Wrap(syncerr.ErrExternalToolUnavailable, "tmux source-file", err)
	}
	return nil
}

// ErrNoServer reports that tmux is installed but no server is running.
var ErrNoServer = errors.New("no tmux server running")

func isNoServerRunning(stderr []byte) bool {
	s := strings.ToLower(string(stderr))
	return strings.Contains(s, "no server running") || strings.Contains(s, "error connecting to")
}
