// ABOUTME: User-facing validation errors for unknown pair and theme names
// ABOUTME: UnknownNameError lists valid alternatives and matches ErrUnknownPair/ErrUnknownTheme

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownPair  = errors.New("unknown theme pair")
	ErrUnknownTheme = errors.New("unknown theme")
)

// NameKind says which registry rejected a name.
type NameKind string

const (
	KindPair  NameKind = "pair"
	KindTheme NameKind = "theme"
	KindAny   NameKind = "any"
)

// UnknownNameError reports a name absent from the registry or catalog.
type UnknownNameError struct {
	Kind  NameKind
	Name  string
	Valid []string
}

func (e *UnknownNameError) Error() string {
	label := "theme"
	if e.Kind == KindPair {
		label = "theme pair"
	}
	return fmt.Sprintf("Unknown %s %q. Available: %s", label, e.Name, strings.Join(e.Valid, ", "))
}

// Is matches the sentinel for the registry that rejected the name.
// KindAny matches both.
func (e *UnknownNameError) Is(target error) bool {
	switch target {
	case ErrUnknownPair:
		return e.Kind == KindPair || e.Kind == KindAny
	case ErrUnknownTheme:
		return e.Kind == KindTheme || e.Kind == KindAny
	}
	return false
}
