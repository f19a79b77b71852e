// ABOUTME: Report describes what one apply changed and which steps were skipped
// ABOUTME: Skipped steps carry the syncerr class of the failure that was swallowed

package themesync

import (
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
)

// Step names one side effect of an apply.
type Step string

const (
	StepApp         Step = "app"
	StepTerminal    Step = "terminal"
	StepMultiplexer Step = "multiplexer"
	StepPersist     Step = "persist"
)

// Skip records a step that failed and was ignored.
type Skip struct {
	Step Step
	Err  error
}

// Report is the outcome of one apply.
type Report struct {
	Selection resolver.Selection
	Target    resolver.Target

	AppChanged         bool
	TerminalChanged    bool
	MultiplexerChanged bool
	Persisted          bool

	Skipped []Skip
}

// Err returns the swallowed error of step, or nil.
func (r Report) Err(step Step) error {
	for _, s := range r.Skipped {
		if s.Step == step {
			return s.Err
		}
	}
	return nil
}

// Changed reports whether any target was touched.
func (r Report) Changed() bool {
	return r.AppChanged || r.TerminalChanged || r.MultiplexerChanged
}

func (r *Report) skip(step Step, err error) {
	if err != nil {
		r.Skipped = append(r.Skipped, Skip{Step: step, Err: err})
	}
}
