// ABOUTME: Tests for built-in themes derived from the bundled palettes
// ABOUTME: Verifies one theme per catalog entry with a populated palette and variant flag

package theme

import (
	"reflect"
	"testing"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
)

func TestBuiltinNames_MatchCatalog(t *testing.T) {
	t.Parallel()
	got := BuiltinNames()
	want := catalog.Names()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuiltinNames() = %v; want %v", got, want)
	}
}

func TestBuiltin_UnknownMissing(t *testing.T) {
	t.Parallel()
	if th, ok := Builtin("dracula"); ok {
		t.Errorf("Builtin(dracula) = %v; want missing", th)
	}
	if _, ok := Builtin(DefaultName); !ok {
		t.Error("Builtin(default) missing")
	}
}

func TestBuiltin_VariantAndPalette(t *testing.T) {
	t.Parallel()
	for _, ct := range catalog.All() {
		th, ok := Builtin(ct.Name)
		if !ok {
			t.Fatalf("Builtin(%q) missing", ct.Name)
		}
		if th.Dark != (ct.Variant == catalog.Dark) {
			t.Errorf("Builtin(%q).Dark = %v", ct.Name, th.Dark)
		}
		v := reflect.ValueOf(th.Palette)
		for i := range v.NumField() {
			c := v.Field(i).Interface().(Color)
			if c.Code() == "" {
				t.Errorf("Builtin(%q).Palette.%s has empty code", ct.Name, v.Type().Field(i).Name)
			}
		}
	}
}

func TestBuiltin_MochaColors(t *testing.T) {
	t.Parallel()
	th, _ := Builtin("catppuccin-mocha")
	if got := th.Palette.Background.Hex(); got != "#1e1e2e" {
		t.Errorf("mocha Background = %q; want #1e1e2e", got)
	}
	if got := th.Palette.Primary.Hex(); got != "#cdd6f4" {
		t.Errorf("mocha Primary = %q; want #cdd6f4", got)
	}
}
