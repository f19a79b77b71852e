// ABOUTME: Pre-sets the lipgloss background before BubbleTea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EnvAppearance mirrors the appearance override so the picker chrome matches
// the theme being applied.
const EnvAppearance = "PI_THEME_APPEARANCE"

func init() {
	// With an explicit background lipgloss skips the sync.Once that would
	// query the terminal, whose async reply otherwise leaks into the picker
	// input. This package must not import bubbletea.
	lipgloss.SetHasDarkBackground(DarkBackground(os.Getenv(EnvAppearance)))
}

// DarkBackground maps an appearance override to a background guess. Only an
// explicit "light" selects a light background.
func DarkBackground(override string) bool {
	return !strings.EqualFold(strings.TrimSpace(override), "light")
}
