// ABOUTME: Pure theme resolution: (selection, dark flag) to per-system identifiers
// ABOUTME: No I/O; tmux names equal app names, Ghostty gets a pair directive or a single name

package resolver

import "github.com/mauromedda/pi-theme-sync/internal/catalog"

// TerminalSyntax chooses how an auto selection is written to Ghostty.
type TerminalSyntax string

const (
	// SyntaxPair writes light:<x>,dark:<y> and lets Ghostty switch by itself.
	SyntaxPair TerminalSyntax = "pair"
	// SyntaxSingle writes the currently resolved member only.
	SyntaxSingle TerminalSyntax = "single"
)

// Target is the concrete set of identifiers for one resolution.
type Target struct {
	App         catalog.Theme
	Terminal    string
	Multiplexer string
}

// PairDirective returns the composite Ghostty theme value for a pair.
func PairDirective(p catalog.Pair) string {
	return "light:" + p.Light.ExternalName + ",dark:" + p.Dark.ExternalName
}

// ResolveAuto picks the pair member matching the appearance.
func ResolveAuto(pairName string, dark bool, syntax TerminalSyntax) (Target, error) {
	p, err := catalog.ValidatePair(pairName)
	if err != nil {
		return Target{}, err
	}
	app := p.Member(dark)
	terminal := PairDirective(p)
	if syntax == SyntaxSingle {
		terminal = app.ExternalName
	}
	return Target{
		App:         app,
		Terminal:    terminal,
		Multiplexer: app.Name,
	}, nil
}

// ResolvePinned resolves a single theme regardless of appearance.
func ResolvePinned(themeName string) (Target, error) {
	t, err := catalog.ValidateTheme(themeName)
	if err != nil {
		return Target{}, err
	}
	return Target{
		App:         t,
		Terminal:    t.ExternalName,
		Multiplexer: t.Name,
	}, nil
}

// Resolve dispatches on the selection mode. dark is ignored unless the
// selection is auto.
func Resolve(sel Selection, dark bool, syntax TerminalSyntax) (Target, error) {
	if sel.IsAuto() {
		return ResolveAuto(sel.Pair, dark, syntax)
	}
	if err := sel.Validate(); err != nil {
		return Target{}, err
	}
	return ResolvePinned(sel.Theme)
}
