// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Colors are truecolor hex values; Apply wraps text in the matching SGR sequence

package theme

import (
	"fmt"
	"strconv"
)

// Color is a terminal color or attribute that can style text.
type Color struct {
	code string
	hex  string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Foreground creates a truecolor foreground Color from "#rrggbb".
// Invalid input yields the zero Color.
func Foreground(hex string) Color {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return Color{}
	}
	return Color{code: fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b), hex: hex}
}

// Background creates a truecolor background Color from "#rrggbb".
// Invalid input yields the zero Color.
func Background(hex string) Color {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return Color{}
	}
	return Color{code: fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b), hex: hex}
}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Hex returns "#rrggbb" for truecolor colors and "" otherwise.
func (c Color) Hex() string {
	return c.hex
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code, hex: c.hex}
}

func parseHex(s string) (r, g, b uint8, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// Palette holds the semantic colors of a theme.
type Palette struct {
	// Text
	Primary   Color
	Secondary Color
	Muted     Color
	Accent    Color

	// Semantic
	Success Color
	Warning Color
	Error   Color
	Info    Color

	// UI
	Border     Color
	Selection  Color
	Background Color

	// Formatting
	Bold Color
	Dim  Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Dark    bool
	Palette Palette
}

// DefaultPalette returns a palette of plain ANSI codes that works on any
// terminal background.
func DefaultPalette() Palette {
	return Palette{
		Primary:   NewColor("\x1b[0m"),
		Secondary: NewColor("\x1b[90m"),
		Muted:     NewColor("\x1b[2m"),
		Accent:    NewColor("\x1b[38;5;208m"),

		Success: NewColor("\x1b[32m"),
		Warning: NewColor("\x1b[33m"),
		Error:   NewColor("\x1b[31m"),
		Info:    NewColor("\x1b[36m"),

		Border:    NewColor("\x1b[90m"),
		Selection: NewColor("\x1b[7m"),

		Bold: NewColor("\x1b[1m"),
		Dim:  NewColor("\x1b[2m"),
	}
}
