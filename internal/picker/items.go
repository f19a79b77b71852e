// ABOUTME: Builds the picker's sectioned list from the catalog
// ABOUTME: Auto pairs first, then dark and light themes; section headers are not selectable

package picker

import (
	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
)

// Section headers.
const (
	HeaderAuto  = "Auto follows system"
	HeaderDark  = "Dark"
	HeaderLight = "Light"
)

// Item is one row of the picker. Header rows carry no Value.
type Item struct {
	Label       string
	Description string
	Value       string
	Header      bool
}

// Selectable reports whether the cursor may rest on the item.
func (it Item) Selectable() bool {
	return !it.Header && it.Value != ""
}

// Items returns the full picker list in display order.
func Items() []Item {
	items := []Item{{Label: HeaderAuto, Header: true}}
	for _, name := range catalog.PairNames() {
		p, _ := catalog.LookupPair(name)
		items = append(items, Item{
			Label:       name,
			Description: p.Dark.Name + " / " + p.Light.Name,
			Value:       resolver.Auto(name).PickerValue(),
		})
	}

	items = append(items, Item{Label: HeaderDark, Header: true})
	for _, name := range catalog.DarkThemes() {
		items = append(items, themeItem(name))
	}
	items = append(items, Item{Label: HeaderLight, Header: true})
	for _, name := range catalog.LightThemes() {
		items = append(items, themeItem(name))
	}
	return items
}

func themeItem(name string) Item {
	ext, _ := catalog.ExternalNameOf(name)
	return Item{
		Label:       name,
		Description: ext,
		Value:       resolver.Pinned(name).PickerValue(),
	}
}
