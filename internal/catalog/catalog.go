// ABOUTME: Static registry of the individual themes and their Ghostty identifiers
// ABOUTME: Dark and light groups partition the catalog; lookups never panic on unknown names

package catalog

// Variant classifies a theme as dark or light.
type Variant string

const (
	Dark  Variant = "dark"
	Light Variant = "light"
)

// Theme is one individual theme. Name doubles as the tmux theme name;
// ExternalName is the identifier Ghostty uses for the same palette.
type Theme struct {
	Name         string
	Variant      Variant
	ExternalName string
}

// themes is the fixed catalog, in display order.
var themes = []Theme{
	{Name: "catppuccin-mocha", Variant: Dark, ExternalName: "Catppuccin Mocha Sync"},
	{Name: "catppuccin-macchiato", Variant: Dark, ExternalName: "Catppuccin Macchiato Sync"},
	{Name: "catppuccin-frappe", Variant: Dark, ExternalName: "Catppuccin Frappe Sync"},
	{Name: "catppuccin-latte", Variant: Light, ExternalName: "Catppuccin Latte Sync"},
	{Name: "everforest-dark", Variant: Dark, ExternalName: "Everforest Dark"},
	{Name: "everforest-light", Variant: Light, ExternalName: "Everforest Light"},
	{Name: "high-contrast-dark", Variant: Dark, ExternalName: "High Contrast Dark"},
	{Name: "high-contrast-light", Variant: Light, ExternalName: "High Contrast Light"},
}

var byName = func() map[string]Theme {
	m := make(map[string]Theme, len(themes))
	for _, t := range themes {
		m[t.Name] = t
	}
	return m
}()

// All returns every theme in catalog order. The slice is a copy.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Names returns every theme name in catalog order.
func Names() []string {
	out := make([]string, len(themes))
	for i, t := range themes {
		out[i] = t.Name
	}
	return out
}

// Lookup returns the theme with the given name.
// The second return value indicates whether the name was found.
func Lookup(name string) (Theme, bool) {
	t, ok := byName[name]
	return t, ok
}

// IsValid reports whether name is a catalog theme.
func IsValid(name string) bool {
	_, ok := byName[name]
	return ok
}

// VariantOf returns the variant of the named theme.
func VariantOf(name string) (Variant, bool) {
	t, ok := byName[name]
	if !ok {
		return "", false
	}
	return t.Variant, true
}

// ExternalNameOf returns the Ghostty identifier of the named theme.
func ExternalNameOf(name string) (string, bool) {
	t, ok := byName[name]
	if !ok {
		return "", false
	}
	return t.ExternalName, true
}

// DarkThemes returns the names of all dark themes in catalog order.
func DarkThemes() []string {
	return namesOf(Dark)
}

// LightThemes returns the names of all light themes in catalog order.
func LightThemes() []string {
	return namesOf(Light)
}

func namesOf(v Variant) []string {
	var out []string
	for _, t := range themes {
		if t.Variant == v {
			out = append(out, t.Name)
		}
	}
	return out
}

// ValidateTheme returns the named theme or an *UnknownNameError listing
// every valid theme name.
func ValidateTheme(name string) (Theme, error) {
	t, ok := byName[name]
	if !ok {
		return Theme{}, &UnknownNameError{Kind: KindTheme, Name: name, Valid: Names()}
	}
	return t, nil
}

// AllNames returns pair names, then dark themes, then light themes.
// This is the vocabulary accepted by the combined /theme <name> form.
func AllNames() []string {
	out := PairNames()
	out = append(out, DarkThemes()...)
	return append(out, LightThemes()...)
}
