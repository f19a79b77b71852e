// ABOUTME: Model is a Bubble Tea list for choosing a theme pair or a single theme
// ABOUTME: Emits PreviewMsg on cursor moves, ConfirmMsg on confirm and CancelMsg on cancel keys

package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/pi-theme-sync/internal/keybindings"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
)

// Title is rendered above the list.
const Title = "Select theme"

// PreviewMsg asks the host to preview the highlighted choice.
type PreviewMsg struct{ Selection resolver.Selection }

// ConfirmMsg reports the chosen selection.
type ConfirmMsg struct{ Selection resolver.Selection }

// CancelMsg reports that the picker was dismissed.
type CancelMsg struct{}

// Model is a filterable, scrollable, sectioned list.
// Implements tea.Model with value semantics.
type Model struct {
	items     []Item
	visible   []Item
	selected  int
	scrollOff int
	maxHeight int
	filter    string
	width     int
	keys      *keybindings.Manager
}

// New creates a Model over items with the cursor on the row whose value
// matches current, or on the first selectable row.
func New(items []Item, current resolver.Selection) Model {
	m := Model{
		items:     items,
		maxHeight: 100,
		keys:      keybindings.NewFromBindings(keybindings.Defaults()),
	}
	m.applyFilter()
	want := current.PickerValue()
	for i, it := range m.visible {
		if it.Selectable() && it.Value == want {
			m.selected = i
			m.adjustScroll()
			return m
		}
	}
	m.selected = m.nextSelectable(-1, 1)
	m.adjustScroll()
	return m
}

// Init returns nil; no commands needed at startup.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation, filtering, confirm and cancel keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.ActionFor(msg.String()) {
		case keybindings.ActionUp:
			return m.move(-1)
		case keybindings.ActionDown:
			return m.move(1)
		case keybindings.ActionPageUp:
			return m.page(-1)
		case keybindings.ActionPageDown:
			return m.page(1)
		case keybindings.ActionConfirm:
			sel, ok := m.Choice()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return ConfirmMsg{Selection: sel} }
		case keybindings.ActionCancel:
			return m, func() tea.Msg { return CancelMsg{} }
		case keybindings.ActionClearFilter:
			return m.refilter("")
		}
		switch msg.Type {
		case tea.KeyBackspace:
			if m.filter == "" {
				return m, nil
			}
			r := []rune(m.filter)
			return m.refilter(string(r[:len(r)-1]))
		case tea.KeyRunes, tea.KeySpace:
			return m.refilter(m.filter + string(msg.Runes))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m = m.SetMaxHeight(max(msg.Height-4, 3))
	}
	return m, nil
}

// View renders the title, the filter line and the visible rows.
func (m Model) View() string {
	s := Styles()
	var b strings.Builder
	b.WriteString(s.Title.Render(Title))
	if m.filter != "" {
		b.WriteString(s.Muted.Render("  filter: "))
		b.WriteString(m.filter)
	}
	b.WriteByte('\n')

	if len(m.visible) == 0 {
		b.WriteString(s.Muted.Render("  No matching themes"))
		return b.String()
	}

	end := min(m.scrollOff+m.maxHeight, len(m.visible))
	for i := m.scrollOff; i < end; i++ {
		b.WriteByte('\n')
		it := m.visible[i]
		if it.Header {
			b.WriteString(formatHeader(s, it.Label, m.width))
			continue
		}
		b.WriteString(formatItem(s, it, m.width, i == m.selected))
	}
	b.WriteByte('\n')
	b.WriteString(s.Muted.Render(m.keys.Help()))
	return b.String()
}

// SetFilter sets the fuzzy filter string and refilters. Returns a new model.
func (m Model) SetFilter(f string) Model {
	m.filter = f
	m.scrollOff = 0
	m.applyFilter()
	m.selected = m.nextSelectable(-1, 1)
	m.adjustScroll()
	return m
}

// SetKeys replaces the key bindings. A nil manager keeps the current ones.
func (m Model) SetKeys(km *keybindings.Manager) Model {
	if km != nil {
		m.keys = km
	}
	return m
}

// SetMaxHeight limits the number of visible rows. Returns a new model.
func (m Model) SetMaxHeight(h int) Model {
	m.maxHeight = h
	m.adjustScroll()
	return m
}

// Choice returns the selection under the cursor.
func (m Model) Choice() (resolver.Selection, bool) {
	it := m.SelectedItem()
	if !it.Selectable() {
		return resolver.Selection{}, false
	}
	sel, err := resolver.ParseChoice(it.Value)
	if err != nil {
		return resolver.Selection{}, false
	}
	return sel, true
}

// SelectedItem returns the item under the cursor, or the zero Item.
func (m Model) SelectedItem() Item {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return Item{}
	}
	return m.visible[m.selected]
}

// VisibleItems returns the currently filtered/visible items.
func (m Model) VisibleItems() []Item {
	return m.visible
}

// Filter returns the current filter text.
func (m Model) Filter() string {
	return m.filter
}

func (m Model) move(dir int) (tea.Model, tea.Cmd) {
	next := m.nextSelectable(m.selected, dir)
	if next < 0 || next == m.selected {
		return m, nil
	}
	m.selected = next
	m.adjustScroll()
	return m, m.previewCmd()
}

func (m Model) page(dir int) (tea.Model, tea.Cmd) {
	start := m.selected
	for range max(m.maxHeight-1, 1) {
		next := m.nextSelectable(m.selected, dir)
		if next < 0 || next == m.selected {
			break
		}
		m.selected = next
	}
	if m.selected == start {
		return m, nil
	}
	m.adjustScroll()
	return m, m.previewCmd()
}

func (m Model) refilter(f string) (tea.Model, tea.Cmd) {
	before := m.SelectedItem().Value
	m = m.SetFilter(f)
	if m.SelectedItem().Value == before {
		return m, nil
	}
	return m, m.previewCmd()
}

func (m Model) previewCmd() tea.Cmd {
	sel, ok := m.Choice()
	if !ok {
		return nil
	}
	return func() tea.Msg { return PreviewMsg{Selection: sel} }
}

// nextSelectable walks from index from in direction dir and returns the first
// selectable row, or from itself when there is none.
func (m *Model) nextSelectable(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.visible); i += dir {
		if m.visible[i].Selectable() {
			return i
		}
	}
	return from
}

func (m *Model) adjustScroll() {
	top := m.selected
	// Keep the section header of the first entry on screen.
	if top > 0 && m.visible[top-1].Header {
		top--
	}
	if top < m.scrollOff {
		m.scrollOff = max(top, 0)
	}
	if m.selected >= m.scrollOff+m.maxHeight {
		m.scrollOff = m.selected - m.maxHeight + 1
	}
}

// applyFilter rebuilds visible. Without a filter all rows show, headers
// included; with one, matches are ranked and headers dropped.
func (m *Model) applyFilter() {
	if m.filter == "" {
		m.visible = make([]Item, len(m.items))
		copy(m.visible, m.items)
		return
	}

	var candidates []Item
	for _, it := range m.items {
		if it.Selectable() {
			candidates = append(candidates, it)
		}
	}
	labels := make([]string, len(candidates))
	for i, it := range candidates {
		labels[i] = it.Label + " " + it.Description
	}
	matches := fuzzy.Find(m.filter, labels)
	m.visible = make([]Item, len(matches))
	for i, match := range matches {
		m.visible[i] = candidates[match.Index]
	}
}

func formatHeader(s ThemeStyles, label string, w int) string {
	head := "── " + label + " "
	if w > 0 {
		if fill := w - uniseg.StringWidth(head); fill > 0 {
			head += strings.Repeat("─", fill)
		}
	}
	return s.Header.Render(head)
}

func formatItem(s ThemeStyles, it Item, w int, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}
	line := prefix + it.Label
	if it.Description != "" {
		line = fmt.Sprintf("%s%-22s %s", prefix, it.Label, s.Muted.Render(it.Description))
		if selected {
			line = fmt.Sprintf("%s%-22s %s", prefix, it.Label, it.Description)
		}
	}
	if w > 0 && runewidth.StringWidth(stripStyle(line)) > w {
		line = runewidth.Truncate(prefix+it.Label+" "+it.Description, w, "…")
	}
	if selected {
		return s.Selection.Render(line)
	}
	return line
}

// stripStyle removes SGR sequences so widths count printable cells only.
func stripStyle(s string) string {
	return sgrRe.ReplaceAllString(s, "")
}
