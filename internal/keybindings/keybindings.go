// ABOUTME: Picker key actions, their default keys, and the JSON keybindings file format
// ABOUTME: Keys use Bubble Tea's names ("up", "ctrl+n", "esc"); a file entry replaces an action's keys

package keybindings

import (
	"encoding/json"
	"fmt"
	"os"
)

// Action is a picker command a key can trigger.
type Action string

const (
	ActionUp          Action = "up"
	ActionDown        Action = "down"
	ActionPageUp      Action = "pageUp"
	ActionPageDown    Action = "pageDown"
	ActionConfirm     Action = "confirm"
	ActionCancel      Action = "cancel"
	ActionClearFilter Action = "clearFilter"
)

// Actions lists every action in display order.
func Actions() []Action {
	return []Action{ActionUp, ActionDown, ActionPageUp, ActionPageDown, ActionConfirm, ActionCancel, ActionClearFilter}
}

// Keybindings maps actions to the keys bound to them.
type Keybindings struct {
	Bindings map[Action][]string `json:"bindings"`
}

// Defaults returns the built-in bindings.
func Defaults() *Keybindings {
	return &Keybindings{Bindings: map[Action][]string{
		ActionUp:          {"up", "ctrl+p"},
		ActionDown:        {"down", "ctrl+n"},
		ActionPageUp:      {"pgup"},
		ActionPageDown:    {"pgdown"},
		ActionConfirm:     {"enter"},
		ActionCancel:      {"esc", "ctrl+c"},
		ActionClearFilter: {"ctrl+u"},
	}}
}

// GetBindings returns the keys bound to action.
func (kb *Keybindings) GetBindings(action Action) []string {
	return kb.Bindings[action]
}

// Load reads a keybindings file. Unknown actions are rejected so typos
// surface instead of being ignored.
func Load(path string) (*Keybindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var kb Keybindings
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parsing keybindings %s: %w", path, err)
	}
	known := make(map[Action]bool)
	for _, a := range Actions() {
		known[a] = true
	}
	for a := range kb.Bindings {
		if !known[a] {
			return nil, fmt.Errorf("keybindings %s: unknown action %q", path, a)
		}
	}
	return &kb, nil
}
