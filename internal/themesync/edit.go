// ABOUTME: Picker edits: live preview of the app theme, then confirm or cancel
// ABOUTME: Previews never touch files or persistence; cancel restores with a full re-apply

package themesync

import (
	"context"
	"errors"
	"sync"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
)

// ErrEditClosed is returned when an edit is used after Confirm or Cancel.
var ErrEditClosed = errors.New("theme edit already finished")

// Edit is an open picker session. Appearance ticks are suspended until it
// is confirmed or cancelled.
type Edit struct {
	s       *Session
	prevSel resolver.Selection

	once sync.Once
}

// BeginEdit snapshots the current selection and suspends ticks.
func (s *Session) BeginEdit() (*Edit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing != nil {
		return nil, ErrEditInProgress
	}
	e := &Edit{s: s, prevSel: s.sel}
	s.editing = e
	return e, nil
}

// Initial returns the selection the edit started from.
func (e *Edit) Initial() resolver.Selection {
	return e.prevSel
}

// Preview shows sel in the app only. Pairs preview their dark member so
// flavours stay distinguishable whatever the appearance.
func (e *Edit) Preview(sel resolver.Selection) error {
	name, err := previewTheme(sel)
	if err != nil {
		return err
	}
	s := e.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing != e {
		return ErrEditClosed
	}
	if s.app == nil {
		return nil
	}
	if err := s.app.SetTheme(name); err != nil {
		return err
	}
	// The app no longer shows lastApplied; the next apply must not skip it.
	s.lastApplied = ""
	return nil
}

// Confirm makes sel current, persists it and fully re-applies. It ends the
// edit; an invalid sel restores the prior selection instead.
func (e *Edit) Confirm(ctx context.Context, sel resolver.Selection) (Report, error) {
	var rep Report
	valErr := sel.Validate()
	ok := e.finish(func(s *Session) {
		if valErr != nil {
			s.sel = e.prevSel
			rep = s.applyLocked(ctx, true)
			return
		}
		if !sel.IsAuto() {
			sel = s.pinLocked(sel.Theme)
		}
		rep = s.switchLocked(ctx, sel)
	})
	if !ok {
		return Report{}, ErrEditClosed
	}
	if valErr != nil {
		e.s.notices.Error(valErr)
		return rep, valErr
	}
	e.s.notifySwitch(rep.Selection)
	return rep, nil
}

// Cancel restores the selection from before the edit with a full re-apply.
// Nothing is persisted. Cancelling a finished edit does nothing.
func (e *Edit) Cancel(ctx context.Context) Report {
	var rep Report
	e.finish(func(s *Session) {
		s.sel = e.prevSel
		rep = s.applyLocked(ctx, true)
	})
	return rep
}

// finish runs fn under the session lock once and reports whether it ran.
func (e *Edit) finish(fn func(s *Session)) bool {
	ran := false
	e.once.Do(func() {
		s := e.s
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.editing == e {
			s.editing = nil
		}
		fn(s)
		ran = true
	})
	return ran
}

func previewTheme(sel resolver.Selection) (string, error) {
	if sel.IsAuto() {
		p, err := catalog.ValidatePair(sel.Pair)
		if err != nil {
			return "", err
		}
		return p.Dark.Name, nil
	}
	t, err := catalog.ValidateTheme(sel.Theme)
	if err != nil {
		return "", err
	}
	return t.Name, nil
}
