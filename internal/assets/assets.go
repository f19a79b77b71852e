// ABOUTME: Embedded bundled assets: one tmux .conf per theme plus the shared palette YAML
// ABOUTME: Palettes decode with yaml.v3 and feed both the app theme and Ghostty theme files

package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed tmux/*.conf palettes.yaml
var files embed.FS

// TmuxThemes returns the bundled tmux theme directory (<name>.conf entries).
func TmuxThemes() fs.FS {
	sub, err := fs.Sub(files, "tmux")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// Palette is the full color set of one theme. ANSI holds the 16 terminal
// colors in index order.
type Palette struct {
	Name                string   `yaml:"name"`
	Background          string   `yaml:"background"`
	Foreground          string   `yaml:"foreground"`
	Cursor              string   `yaml:"cursor"`
	CursorText          string   `yaml:"cursor_text"`
	SelectionBackground string   `yaml:"selection_background"`
	SelectionForeground string   `yaml:"selection_foreground"`
	ANSI                []string `yaml:"ansi"`
}

type paletteFile struct {
	Themes []Palette `yaml:"themes"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Palettes decodes the bundled palette file, keyed by theme name.
func Palettes() (map[string]Palette, error) {
	data, err := files.ReadFile("palettes.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading palettes: %w", err)
	}
	return ParsePalettes(data)
}

// ParsePalettes decodes and validates palette YAML.
func ParsePalettes(data []byte) (map[string]Palette, error) {
	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing palettes: %w", err)
	}

	out := make(map[string]Palette, len(pf.Themes))
	for _, p := range pf.Themes {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := out[p.Name]; dup {
			return nil, fmt.Errorf("palette %q defined twice", p.Name)
		}
		out[p.Name] = p
	}
	return out, nil
}

func (p Palette) validate() error {
	if p.Name == "" {
		return fmt.Errorf("palette without name")
	}
	if len(p.ANSI) != 16 {
		return fmt.Errorf("palette %q: %d ansi colors; want 16", p.Name, len(p.ANSI))
	}
	named := []string{p.Background, p.Foreground, p.Cursor, p.CursorText, p.SelectionBackground, p.SelectionForeground}
	for _, c := range append(named, p.ANSI...) {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("palette %q: invalid color %q", p.Name, c)
		}
	}
	return nil
}
