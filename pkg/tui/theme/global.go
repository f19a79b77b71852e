// ABOUTME: Lock-free global theme pointer using atomic.Pointer
// ABOUTME: Current() returns the active theme; Set() and Apply swap it atomically

package theme

import (
	"sync/atomic"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
)

var current atomic.Pointer[Theme]

func init() {
	current.Store(&Theme{Name: DefaultName, Palette: DefaultPalette()})
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load()
}

// Set atomically replaces the active theme.
func Set(t *Theme) {
	current.Store(t)
}

// Applier switches the process-wide theme by catalog name.
type Applier struct{}

// SetTheme makes the named built-in theme current. Unknown names return the
// catalog's validation error and leave the current theme alone.
func (Applier) SetTheme(name string) error {
	if _, err := catalog.ValidateTheme(name); err != nil {
		return err
	}
	t, ok := Builtin(name)
	if !ok {
		return &catalog.UnknownNameError{Kind: catalog.KindTheme, Name: name, Valid: BuiltinNames()}
	}
	Set(t)
	return nil
}
