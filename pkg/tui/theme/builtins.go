// ABOUTME: Built-in themes: one per catalog theme, derived from the bundled palettes
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration in catalog order

package theme

import (
	"sync"

	"github.com/mauromedda/pi-theme-sync/internal/assets"
	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/log"
)

// DefaultName is the theme active before any catalog theme is applied.
const DefaultName = "default"

var (
	builtinsOnce sync.Once
	builtins     map[string]*Theme
)

func loadBuiltins() {
	builtins = map[string]*Theme{
		DefaultName: {Name: DefaultName, Palette: DefaultPalette()},
	}
	pals, err := assets.Palettes()
	if err != nil {
		log.Debug("theme: bundled palettes: %v", err)
		return
	}
	for _, t := range catalog.All() {
		p, ok := pals[t.Name]
		if !ok {
			continue
		}
		builtins[t.Name] = FromPalette(t.Name, t.Variant == catalog.Dark, p)
	}
}

// FromPalette maps a terminal palette onto the semantic roles.
func FromPalette(name string, dark bool, p assets.Palette) *Theme {
	return &Theme{
		Name: name,
		Dark: dark,
		Palette: Palette{
			Primary:   Foreground(p.Foreground),
			Secondary: Foreground(p.ANSI[7]),
			Muted:     Foreground(p.ANSI[8]),
			Accent:    Foreground(p.ANSI[5]),

			Success: Foreground(p.ANSI[2]),
			Warning: Foreground(p.ANSI[3]),
			Error:   Foreground(p.ANSI[1]),
			Info:    Foreground(p.ANSI[4]),

			Border:     Foreground(p.ANSI[8]),
			Selection:  Background(p.SelectionBackground),
			Background: Background(p.Background),

			Bold: NewColor("\x1b[1m"),
			Dim:  NewColor("\x1b[2m"),
		},
	}
}

// Builtin returns the built-in theme for name.
func Builtin(name string) (*Theme, bool) {
	builtinsOnce.Do(loadBuiltins)
	t, ok := builtins[name]
	return t, ok
}

// BuiltinNames returns the catalog theme names that have a built-in theme.
func BuiltinNames() []string {
	builtinsOnce.Do(loadBuiltins)
	var names []string
	for _, name := range catalog.Names() {
		if _, ok := builtins[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
