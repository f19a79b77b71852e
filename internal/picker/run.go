// ABOUTME: Runs the picker against a theme session edit inside a Bubble Tea program
// ABOUTME: Previews are applied live; confirm persists; cancel or interrupt restores

package picker

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pi-theme-sync/internal/keybindings"
	"github.com/mauromedda/pi-theme-sync/internal/log"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
	"github.com/mauromedda/pi-theme-sync/internal/themesync"
)

// Editor is the session edit the picker drives.
type Editor interface {
	Initial() resolver.Selection
	Preview(sel resolver.Selection) error
	Confirm(ctx context.Context, sel resolver.Selection) (themesync.Report, error)
	Cancel(ctx context.Context) themesync.Report
}

// Result is the outcome of a picker run.
type Result struct {
	Confirmed bool
	Selection resolver.Selection
	Report    themesync.Report
}

// Host wires a Model to an Editor.
type Host struct {
	ctx    context.Context
	ed     Editor
	list   Model
	done   bool
	result Result
	err    error
}

// NewHost creates a Host with the cursor on the edit's initial selection.
// A nil km uses the default key bindings.
func NewHost(ctx context.Context, ed Editor, km *keybindings.Manager) Host {
	return Host{ctx: ctx, ed: ed, list: New(Items(), ed.Initial()).SetKeys(km)}
}

// Init returns nil; no commands needed at startup.
func (h Host) Init() tea.Cmd {
	return nil
}

// Update forwards input to the list and acts on its messages.
func (h Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PreviewMsg:
		if err := h.ed.Preview(msg.Selection); err != nil {
			log.Debug("picker: preview %s: %v", msg.Selection, err)
		}
		return h, nil
	case ConfirmMsg:
		h.done = true
		rep, err := h.ed.Confirm(h.ctx, msg.Selection)
		h.result = Result{Confirmed: err == nil, Selection: rep.Selection, Report: rep}
		h.err = err
		return h, tea.Quit
	case CancelMsg:
		h.done = true
		rep := h.ed.Cancel(h.ctx)
		h.result = Result{Selection: rep.Selection, Report: rep}
		return h, tea.Quit
	}
	next, cmd := h.list.Update(msg)
	h.list = next.(Model)
	return h, cmd
}

// View renders the list.
func (h Host) View() string {
	if h.done {
		return ""
	}
	return h.list.View()
}

// Run shows the picker until the user confirms or cancels. An edit left open
// by an aborted program is cancelled before returning.
func Run(ctx context.Context, ed Editor, km *keybindings.Manager, opts ...tea.ProgramOption) (Result, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewHost(ctx, ed, km), opts...)
	final, err := p.Run()

	h, ok := final.(Host)
	if err != nil || !ok || !h.done {
		rep := ed.Cancel(context.WithoutCancel(ctx))
		if err != nil {
			return Result{Selection: rep.Selection, Report: rep}, fmt.Errorf("bubble tea: %w", err)
		}
		return Result{Selection: rep.Selection, Report: rep}, nil
	}
	return h.result, h.err
}
