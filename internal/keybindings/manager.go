// ABOUTME: Keybindings manager with O(1) key-to-action lookup
// ABOUTME: Merges the keybindings file over the defaults and detects conflicts

package keybindings

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"sort"
	"strings"

	"github.com/mauromedda/pi-theme-sync/internal/log"
)

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []Action
}

// Manager provides O(1) key-to-action lookup from merged keybindings.
type Manager struct {
	bindings *Keybindings
	lookup   map[string]Action // "ctrl+n" → ActionDown
}

// New creates a Manager from the defaults overridden by the file at path.
// A missing file is ignored; an unreadable one is logged and ignored.
func New(path string) *Manager {
	kb := Defaults()
	if path != "" {
		if f, err := Load(path); err == nil {
			mergeBindings(kb, f)
		} else if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("keybindings: %v", err)
		}
	}
	return NewFromBindings(kb)
}

// NewFromBindings creates a Manager from an existing Keybindings instance.
func NewFromBindings(kb *Keybindings) *Manager {
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionFor returns the action bound to key, or "" if unbound. key uses
// Bubble Tea's KeyMsg.String() form.
func (m *Manager) ActionFor(key string) Action {
	if m == nil {
		return ""
	}
	return m.lookup[key]
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]Action)
	for _, action := range Actions() {
		for _, k := range m.bindings.GetBindings(action) {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Key < conflicts[j].Key })
	return conflicts
}

// FormatAll returns a table of all bindings in action order.
func (m *Manager) FormatAll() string {
	var b strings.Builder
	b.WriteString("Keybindings:\n\n")
	for _, action := range Actions() {
		keys := m.bindings.GetBindings(action)
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-20s %s\n", strings.Join(keys, ", "), action)
	}
	return b.String()
}

// Help returns a one-line hint for the picker footer.
func (m *Manager) Help() string {
	if m == nil {
		return ""
	}
	first := func(a Action) string {
		if keys := m.bindings.GetBindings(a); len(keys) > 0 {
			return keys[0]
		}
		return "-"
	}
	return fmt.Sprintf("%s/%s move · type to filter · %s select · %s cancel",
		first(ActionUp), first(ActionDown), first(ActionConfirm), first(ActionCancel))
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]Action, len(m.bindings.Bindings)*2)
	// Later actions win on conflict; Actions() order keeps that stable.
	for _, action := range Actions() {
		for _, k := range m.bindings.GetBindings(action) {
			m.lookup[k] = action
		}
	}
}

// mergeBindings overrides base bindings with overrides where present.
func mergeBindings(base, overrides *Keybindings) {
	maps.Copy(base.Bindings, overrides.Bindings)
}
