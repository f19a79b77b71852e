// ABOUTME: Table tests for pure theme resolution against literal (pair, dark) inputs
// ABOUTME: Covers variant agreement, directives for both syntaxes, and unknown names

package resolver

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
)

func TestResolveAuto_VariantFollowsAppearance(t *testing.T) {
	t.Parallel()
	for _, pair := range catalog.PairNames() {
		for _, dark := range []bool{true, false} {
			got, err := ResolveAuto(pair, dark, SyntaxPair)
			if err != nil {
				t.Fatalf("ResolveAuto(%q, %v) error: %v", pair, dark, err)
			}
			isDark := got.App.Variant == catalog.Dark
			if isDark != dark {
				t.Errorf("ResolveAuto(%q, %v).App.Variant = %q", pair, dark, got.App.Variant)
			}
			if got.Multiplexer != got.App.Name {
				t.Errorf("Multiplexer = %q; want %q", got.Multiplexer, got.App.Name)
			}
		}
	}
}

func TestResolveAuto_Table(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pair string
		dark bool
		want string
	}{
		{"catppuccin", true, "catppuccin-mocha"},
		{"catppuccin", false, "catppuccin-latte"},
		{"catppuccin-macchiato", true, "catppuccin-macchiato"},
		{"catppuccin-frappe", false, "catppuccin-latte"},
		{"everforest", true, "everforest-dark"},
		{"everforest", false, "everforest-light"},
		{"high-contrast", true, "high-contrast-dark"},
		{"high-contrast", false, "high-contrast-light"},
	}
	for _, tt := range tests {
		got, err := ResolveAuto(tt.pair, tt.dark, SyntaxPair)
		if err != nil {
			t.Fatalf("ResolveAuto(%q, %v) error: %v", tt.pair, tt.dark, err)
		}
		if got.App.Name != tt.want {
			t.Errorf("ResolveAuto(%q, %v).App = %q; want %q", tt.pair, tt.dark, got.App.Name, tt.want)
		}
	}
}

func TestResolveAuto_PairDirective(t *testing.T) {
	t.Parallel()
	got, err := ResolveAuto("catppuccin", true, SyntaxPair)
	if err != nil {
		t.Fatal(err)
	}
	want := "light:Catppuccin Latte Sync,dark:Catppuccin Mocha Sync"
	if got.Terminal != want {
		t.Errorf("Terminal = %q; want %q", got.Terminal, want)
	}
}

func TestResolveAuto_SingleSyntax(t *testing.T) {
	t.Parallel()
	got, err := ResolveAuto("everforest", false, SyntaxSingle)
	if err != nil {
		t.Fatal(err)
	}
	if got.Terminal != "Everforest Light" {
		t.Errorf("Terminal = %q; want %q", got.Terminal, "Everforest Light")
	}
}

func TestResolveAuto_UnknownPair(t *testing.T) {
	t.Parallel()
	_, err := ResolveAuto("nonexistent", true, SyntaxPair)
	if !errors.Is(err, catalog.ErrUnknownPair) {
		t.Errorf("err = %v; want ErrUnknownPair", err)
	}
}

func TestResolvePinned(t *testing.T) {
	t.Parallel()
	got, err := ResolvePinned("everforest-light")
	if err != nil {
		t.Fatal(err)
	}
	if got.App.Name != "everforest-light" || got.Terminal != "Everforest Light" || got.Multiplexer != "everforest-light" {
		t.Errorf("ResolvePinned(everforest-light) = %+v", got)
	}
}

func TestResolvePinned_UnknownTheme(t *testing.T) {
	t.Parallel()
	_, err := ResolvePinned("everforest")
	if !errors.Is(err, catalog.ErrUnknownTheme) {
		t.Errorf("err = %v; want ErrUnknownTheme", err)
	}
}

func TestResolve_PinnedIgnoresAppearance(t *testing.T) {
	t.Parallel()
	for _, dark := range []bool{true, false} {
		got, err := Resolve(Pinned("everforest-light"), dark, SyntaxPair)
		if err != nil {
			t.Fatal(err)
		}
		if got.App.Name != "everforest-light" {
			t.Errorf("Resolve(pinned, %v).App = %q", dark, got.App.Name)
		}
	}
}

func TestResolve_SettingsBehavesLikePinned(t *testing.T) {
	t.Parallel()
	got, err := Resolve(Settings("catppuccin-frappe"), false, SyntaxPair)
	if err != nil {
		t.Fatal(err)
	}
	if got.Terminal != "Catppuccin Frappe Sync" {
		t.Errorf("Terminal = %q", got.Terminal)
	}
}

func TestResolve_InvalidMode(t *testing.T) {
	t.Parallel()
	_, err := Resolve(Selection{Mode: "bogus", Theme: "catppuccin-mocha"}, true, SyntaxPair)
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Errorf("err = %v; want invalid mode error", err)
	}
}

func TestSelection_StringAndPickerValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sel        Selection
		str, value string
	}{
		{Auto("everforest"), "everforest (auto)", "auto:everforest"},
		{Pinned("catppuccin-latte"), "catppuccin-latte (pinned)", "pin:catppuccin-latte"},
		{Settings("catppuccin-mocha"), "catppuccin-mocha (settings)", "pin:catppuccin-mocha"},
	}
	for _, tt := range tests {
		if got := tt.sel.String(); got != tt.str {
			t.Errorf("String() = %q; want %q", got, tt.str)
		}
		if got := tt.sel.PickerValue(); got != tt.value {
			t.Errorf("PickerValue() = %q; want %q", got, tt.value)
		}
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	if d := Default(); d.Mode != ModeAuto || d.Pair != "catppuccin" {
		t.Errorf("Default() = %+v", d)
	}
}

func TestParseChoice(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value string
		want  Selection
	}{
		{"auto:catppuccin-macchiato", Auto("catppuccin-macchiato")},
		{"pin:everforest-light", Pinned("everforest-light")},
		{Auto("high-contrast").PickerValue(), Auto("high-contrast")},
	}
	for _, tt := range tests {
		got, err := ParseChoice(tt.value)
		if err != nil {
			t.Errorf("ParseChoice(%q) error: %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChoice(%q) = %+v; want %+v", tt.value, got, tt.want)
		}
	}
}

func TestParseChoice_Rejects(t *testing.T) {
	t.Parallel()
	for _, value := range []string{"", "catppuccin", "auto:catppuccin-mocha", "pin:catppuccin", "§dark"} {
		if got, err := ParseChoice(value); err == nil {
			t.Errorf("ParseChoice(%q) = %+v; want error", value, got)
		}
	}
}
