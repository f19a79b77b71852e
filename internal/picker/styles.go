// ABOUTME: Lipgloss style bridge from the active theme palette
// ABOUTME: Truecolor entries map straight to lipgloss colors; SGR-only entries are parsed

package picker

import (
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-theme-sync/pkg/tui/theme"
)

// themeStylesEntry pairs a theme pointer with its pre-built styles.
type themeStylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

// cachedStyles is keyed by theme pointer identity; theme.Set invalidates it.
var cachedStyles atomic.Pointer[themeStylesEntry]

// sgrRe matches a single ANSI SGR sequence like \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]+)m`)

// ThemeStyles holds the lipgloss styles the picker renders with.
type ThemeStyles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Border    lipgloss.Style
	Selection lipgloss.Style
	Bold      lipgloss.Style
}

// Styles returns styles for the current theme, rebuilt only when the theme
// pointer changes. Previews swap the theme, so the picker restyles itself.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t)
	cachedStyles.Store(&themeStylesEntry{theme: t, styles: s})
	return s
}

func buildStyles(t *theme.Theme) ThemeStyles {
	p := t.Palette
	return ThemeStyles{
		Title:     colorToStyle(p.Accent).Bold(true),
		Header:    colorToStyle(p.Secondary).Bold(true),
		Muted:     colorToStyle(p.Muted),
		Accent:    colorToStyle(p.Accent),
		Error:     colorToStyle(p.Error),
		Border:    colorToStyle(p.Border),
		Selection: selectionStyle(p),
		Bold:      colorToStyle(p.Bold),
	}
}

// selectionStyle highlights with the palette's selection background when it
// has one, and falls back to reverse video otherwise.
func selectionStyle(p theme.Palette) lipgloss.Style {
	if hex := p.Selection.Hex(); hex != "" {
		return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Bold(true)
	}
	return colorToStyle(p.Selection).Bold(true)
}

// colorToStyle builds a lipgloss.Style from a palette color.
func colorToStyle(c theme.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if hex := c.Hex(); hex != "" {
		if isBackground(c.Code()) {
			return s.Background(lipgloss.Color(hex))
		}
		return s.Foreground(lipgloss.Color(hex))
	}

	code := c.Code()
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		params := strings.Split(m[1], ";")
		if spec, bg := colorSpec(params); spec != "" {
			if bg {
				s = s.Background(lipgloss.Color(spec))
			} else {
				s = s.Foreground(lipgloss.Color(spec))
			}
			continue
		}
		for _, p := range params {
			switch p {
			case "1":
				s = s.Bold(true)
			case "2":
				s = s.Faint(true)
			case "3":
				s = s.Italic(true)
			case "4":
				s = s.Underline(true)
			case "7":
				s = s.Reverse(true)
			}
		}
	}
	return s
}

// colorSpec returns the lipgloss color spec carried by SGR params and whether
// it is a background color. Attribute-only params yield "".
func colorSpec(params []string) (string, bool) {
	if len(params) >= 3 && (params[0] == "38" || params[0] == "48") && params[1] == "5" {
		return params[2], params[0] == "48"
	}
	if len(params) != 1 {
		return "", false
	}
	n, err := strconv.Atoi(params[0])
	if err != nil {
		return "", false
	}
	switch {
	case n >= 30 && n <= 37:
		return strconv.Itoa(n - 30), false
	case n >= 40 && n <= 47:
		return strconv.Itoa(n - 40), true
	case n >= 90 && n <= 97:
		return strconv.Itoa(n - 90 + 8), false
	case n >= 100 && n <= 107:
		return strconv.Itoa(n - 100 + 8), true
	}
	return "", false
}

func isBackground(code string) bool {
	return strings.HasPrefix(code, "\x1b[48;")
}
