// ABOUTME: Selection: the user's theme intent as one discriminated value
// ABOUTME: Auto follows a pair, Pinned fixes a theme, Settings mirrors the agent settings file

package resolver

import (
	"fmt"
	"strings"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
)

// Mode discriminates the Selection shapes.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModePinned   Mode = "pinned"
	ModeSettings Mode = "settings"
)

// Selection describes what the user asked for. Exactly one of Pair (ModeAuto)
// or Theme (ModePinned, ModeSettings) is meaningful. Pair is also kept for
// pinned selections so that unpinning returns to the last pair.
type Selection struct {
	Mode  Mode
	Pair  string
	Theme string
}

// Auto returns a selection following the named pair.
func Auto(pair string) Selection {
	return Selection{Mode: ModeAuto, Pair: pair}
}

// Pinned returns a selection fixed to the named theme.
func Pinned(theme string) Selection {
	return Selection{Mode: ModePinned, Theme: theme}
}

// Settings returns a selection sourced from the settings file.
func Settings(theme string) Selection {
	return Selection{Mode: ModeSettings, Theme: theme}
}

// Default is the selection used when nothing valid was persisted.
func Default() Selection {
	return Auto(catalog.DefaultPair)
}

// IsAuto reports whether the selection tracks system appearance.
func (s Selection) IsAuto() bool {
	return s.Mode == ModeAuto
}

// Validate checks the selection against the catalog.
func (s Selection) Validate() error {
	switch s.Mode {
	case ModeAuto:
		_, err := catalog.ValidatePair(s.Pair)
		return err
	case ModePinned, ModeSettings:
		_, err := catalog.ValidateTheme(s.Theme)
		return err
	default:
		return fmt.Errorf("invalid selection mode %q", s.Mode)
	}
}

// String renders the selection the way notifications show it.
func (s Selection) String() string {
	if s.Mode == ModeAuto {
		return s.Pair + " (auto)"
	}
	return s.Theme + " (" + string(s.Mode) + ")"
}

// PickerValue encodes the selection as a picker list value.
func (s Selection) PickerValue() string {
	if s.Mode == ModeAuto {
		return "auto:" + s.Pair
	}
	return "pin:" + s.Theme
}

// ParseChoice decodes a picker value ("auto:<pair>" or "pin:<theme>") and
// validates the name.
func ParseChoice(value string) (Selection, error) {
	var sel Selection
	switch {
	case strings.HasPrefix(value, "auto:"):
		sel = Auto(strings.TrimPrefix(value, "auto:"))
	case strings.HasPrefix(value, "pin:"):
		sel = Pinned(strings.TrimPrefix(value, "pin:"))
	default:
		return Selection{}, fmt.Errorf("invalid picker value %q", value)
	}
	if err := sel.Validate(); err != nil {
		return Selection{}, err
	}
	return sel, nil
}
