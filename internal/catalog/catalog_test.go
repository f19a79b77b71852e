// ABOUTME: Tests for the theme catalog and pair registry
// ABOUTME: Verifies the dark/light partition, external names, pair members, and error messages

package catalog

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestAll_ContainsEightUniqueThemes(t *testing.T) {
	t.Parallel()
	all := All()
	if len(all) != 8 {
		t.Fatalf("All() len = %d; want 8", len(all))
	}
	seen := make(map[string]bool)
	for _, th := range all {
		if seen[th.Name] {
			t.Errorf("duplicate theme %q", th.Name)
		}
		seen[th.Name] = true
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	t.Parallel()
	a := All()
	a[0].Name = "mutated"
	if All()[0].Name != "catppuccin-mocha" {
		t.Error("All() exposed internal slice")
	}
}

func TestVariants_PartitionCatalog(t *testing.T) {
	t.Parallel()
	dark := DarkThemes()
	light := LightThemes()

	for _, d := range dark {
		if slices.Contains(light, d) {
			t.Errorf("%q is both dark and light", d)
		}
	}

	combined := append(slices.Clone(dark), light...)
	slices.Sort(combined)
	names := Names()
	slices.Sort(names)
	if !slices.Equal(combined, names) {
		t.Errorf("dark+light = %v; want %v", combined, names)
	}
}

func TestVariantOf_MatchesPartition(t *testing.T) {
	t.Parallel()
	for _, name := range Names() {
		v, ok := VariantOf(name)
		if !ok {
			t.Fatalf("VariantOf(%q) not found", name)
		}
		inDark := slices.Contains(DarkThemes(), name)
		inLight := slices.Contains(LightThemes(), name)
		switch v {
		case Dark:
			if !inDark || inLight {
				t.Errorf("%q: variant dark but dark=%v light=%v", name, inDark, inLight)
			}
		case Light:
			if !inLight || inDark {
				t.Errorf("%q: variant light but dark=%v light=%v", name, inDark, inLight)
			}
		default:
			t.Errorf("%q: unexpected variant %q", name, v)
		}
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want bool
	}{
		{"catppuccin-mocha", true},
		{"everforest-light", true},
		{"high-contrast-dark", true},
		{"nonexistent", false},
		{"catppuccin", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.name); got != tt.want {
			t.Errorf("IsValid(%q) = %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestUnknownName_NotFoundSignals(t *testing.T) {
	t.Parallel()
	if _, ok := VariantOf("nope"); ok {
		t.Error("VariantOf(nope) reported found")
	}
	if _, ok := ExternalNameOf("nope"); ok {
		t.Error("ExternalNameOf(nope) reported found")
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) reported found")
	}
}

func TestExternalNameOf(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"catppuccin-mocha":     "Catppuccin Mocha Sync",
		"catppuccin-latte":     "Catppuccin Latte Sync",
		"catppuccin-macchiato": "Catppuccin Macchiato Sync",
		"catppuccin-frappe":    "Catppuccin Frappe Sync",
		"everforest-dark":      "Everforest Dark",
		"everforest-light":     "Everforest Light",
		"high-contrast-dark":   "High Contrast Dark",
		"high-contrast-light":  "High Contrast Light",
	}
	for name, want := range tests {
		got, ok := ExternalNameOf(name)
		if !ok || got != want {
			t.Errorf("ExternalNameOf(%q) = %q, %v; want %q", name, got, ok, want)
		}
	}
}

func TestPairNames_Order(t *testing.T) {
	t.Parallel()
	want := []string{"catppuccin", "catppuccin-macchiato", "catppuccin-frappe", "everforest", "high-contrast"}
	if got := PairNames(); !slices.Equal(got, want) {
		t.Errorf("PairNames() = %v; want %v", got, want)
	}
}

func TestPairs_MembersHaveMatchingVariants(t *testing.T) {
	t.Parallel()
	for _, p := range Pairs() {
		if p.Dark.Variant != Dark {
			t.Errorf("pair %q dark member %q has variant %q", p.Name, p.Dark.Name, p.Dark.Variant)
		}
		if p.Light.Variant != Light {
			t.Errorf("pair %q light member %q has variant %q", p.Name, p.Light.Name, p.Light.Variant)
		}
	}
}

func TestPairs_CatppuccinFlavoursShareLatte(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"catppuccin", "catppuccin-macchiato", "catppuccin-frappe"} {
		p, ok := LookupPair(name)
		if !ok {
			t.Fatalf("LookupPair(%q) not found", name)
		}
		if p.Light.Name != "catppuccin-latte" {
			t.Errorf("pair %q light = %q; want catppuccin-latte", name, p.Light.Name)
		}
	}
}

func TestPair_Member(t *testing.T) {
	t.Parallel()
	p, _ := LookupPair("everforest")
	if got := p.Member(true).Name; got != "everforest-dark" {
		t.Errorf("Member(true) = %q; want everforest-dark", got)
	}
	if got := p.Member(false).Name; got != "everforest-light" {
		t.Errorf("Member(false) = %q; want everforest-light", got)
	}
}

func TestValidatePair_Unknown(t *testing.T) {
	t.Parallel()
	_, err := ValidatePair("nonexistent")
	if err == nil {
		t.Fatal("ValidatePair(nonexistent) returned nil error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "nonexistent") {
		t.Errorf("error %q does not mention the name", msg)
	}
	for _, name := range PairNames() {
		if !strings.Contains(msg, name) {
			t.Errorf("error %q does not list pair %q", msg, name)
		}
	}
	if !errors.Is(err, ErrUnknownPair) {
		t.Error("errors.Is(err, ErrUnknownPair) = false")
	}
	if errors.Is(err, ErrUnknownTheme) {
		t.Error("pair error should not match ErrUnknownTheme")
	}
}

func TestValidatePair_Known(t *testing.T) {
	t.Parallel()
	p, err := ValidatePair("high-contrast")
	if err != nil {
		t.Fatalf("ValidatePair(high-contrast) error: %v", err)
	}
	if p.Dark.Name != "high-contrast-dark" || p.Light.Name != "high-contrast-light" {
		t.Errorf("ValidatePair(high-contrast) = %+v", p)
	}
}

func TestValidateTheme_Unknown(t *testing.T) {
	t.Parallel()
	_, err := ValidateTheme("catppuccin")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("ValidateTheme(catppuccin) = %v; want ErrUnknownTheme", err)
	}
	var une *UnknownNameError
	if !errors.As(err, &une) {
		t.Fatal("error is not *UnknownNameError")
	}
	if len(une.Valid) != 8 {
		t.Errorf("Valid len = %d; want 8", len(une.Valid))
	}
}

func TestAllNames_PairsThenDarkThenLight(t *testing.T) {
	t.Parallel()
	got := AllNames()
	if len(got) != 13 {
		t.Fatalf("AllNames() len = %d; want 13", len(got))
	}
	if got[0] != "catppuccin" || got[5] != "catppuccin-mocha" || got[12] != "high-contrast-light" {
		t.Errorf("AllNames() = %v", got)
	}
}
