// ABOUTME: Theme pairs: a dark and a light member switched by system appearance
// ABOUTME: Order-preserving registry keyed by pair name; catppuccin flavours share latte

package catalog

// Pair associates a dark theme with a light theme under one name.
type Pair struct {
	Name  string
	Dark  Theme
	Light Theme
}

// Member returns the dark member when dark is true, the light member otherwise.
func (p Pair) Member(dark bool) Theme {
	if dark {
		return p.Dark
	}
	return p.Light
}

// DefaultPair is used when no valid selection has been persisted.
const DefaultPair = "catppuccin"

var pairNames = []string{
	"catppuccin",
	"catppuccin-macchiato",
	"catppuccin-frappe",
	"everforest",
	"high-contrast",
}

var pairs = map[string]Pair{
	"catppuccin":           mustPair("catppuccin", "catppuccin-mocha", "catppuccin-latte"),
	"catppuccin-macchiato": mustPair("catppuccin-macchiato", "catppuccin-macchiato", "catppuccin-latte"),
	"catppuccin-frappe":    mustPair("catppuccin-frappe", "catppuccin-frappe", "catppuccin-latte"),
	"everforest":           mustPair("everforest", "everforest-dark", "everforest-light"),
	"high-contrast":        mustPair("high-contrast", "high-contrast-dark", "high-contrast-light"),
}

// mustPair builds a Pair from catalog names. It panics at init if a member
// is missing or has the wrong variant, so a bad table never ships.
func mustPair(name, dark, light string) Pair {
	d, ok := byName[dark]
	if !ok || d.Variant != Dark {
		panic("catalog: pair " + name + " has invalid dark member " + dark)
	}
	l, ok := byName[light]
	if !ok || l.Variant != Light {
		panic("catalog: pair " + name + " has invalid light member " + light)
	}
	return Pair{Name: name, Dark: d, Light: l}
}

// PairNames returns the pair names in registry order.
func PairNames() []string {
	out := make([]string, len(pairNames))
	copy(out, pairNames)
	return out
}

// Pairs returns every pair in registry order.
func Pairs() []Pair {
	out := make([]Pair, len(pairNames))
	for i, n := range pairNames {
		out[i] = pairs[n]
	}
	return out
}

// LookupPair returns the pair with the given name.
func LookupPair(name string) (Pair, bool) {
	p, ok := pairs[name]
	return p, ok
}

// IsPair reports whether name is a registered pair.
func IsPair(name string) bool {
	_, ok := pairs[name]
	return ok
}

// ValidatePair returns the named pair or an *UnknownNameError whose message
// enumerates every valid pair name.
func ValidatePair(name string) (Pair, error) {
	p, ok := pairs[name]
	if !ok {
		return Pair{}, &UnknownNameError{Kind: KindPair, Name: name, Valid: PairNames()}
	}
	return p, nil
}
