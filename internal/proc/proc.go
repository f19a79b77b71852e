// ABOUTME: Bounded external command runner used by reload triggers and appearance queries
// ABOUTME: Applies a default timeout and kills the whole process group when it expires

package proc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// DefaultTimeout bounds commands whose context carries no deadline.
const DefaultTimeout = 5 * time.Second

// Runner executes an external command and captures its output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return f(ctx, name, args...)
}

// Exec runs commands on the host.
type Exec struct {
	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
}

// Run executes name with args. If ctx has no deadline the runner's timeout
// applies; on expiry the process group is killed so that helpers spawned by
// the command (osascript, gsettings) cannot hang the session.
func (e Exec) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if _, ok := ctx.Deadline(); !ok {
		timeout := e.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	setProcGroup(cmd)
	cmd.Cancel = func() error {
		return killProcGroup(cmd)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("%s timed out: %w", name, ctx.Err())
	}
	if runErr != nil {
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("running %s: %w", name, runErr)
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}
