// ABOUTME: Failure classes that sync steps swallow instead of surfacing to the user
// ABOUTME: Each I/O package wraps its errors with one of these so callers can errors.Is them

package syncerr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigUnavailable: a terminal or multiplexer config file is missing,
	// unreadable, or unwritable. The step is skipped and never retried.
	ErrConfigUnavailable = errors.New("config unavailable")

	// ErrExternalToolUnavailable: a reload trigger or the appearance query
	// failed, or the target application is not running.
	ErrExternalToolUnavailable = errors.New("external tool unavailable")

	// ErrAssetMissing: a bundled theme definition is absent.
	ErrAssetMissing = errors.New("asset missing")
)

// Wrap annotates err with a failure class. A nil err stays nil.
func Wrap(class error, what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", what, class, err)
}

// Classify returns the failure class of err, or nil when err carries none.
func Classify(err error) error {
	for _, class := range []error{ErrConfigUnavailable, ErrExternalToolUnavailable, ErrAssetMissing} {
		if errors.Is(err, class) {
			return class
		}
	}
	return nil
}
