// ABOUTME: Session owns the selection state machine and keeps app, terminal and tmux in sync
// ABOUTME: One mutex serializes every writer; side-effect failures are reported, never raised

package themesync

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/pi-theme-sync/internal/appearance"
	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/config"
	"github.com/mauromedda/pi-theme-sync/internal/log"
	"github.com/mauromedda/pi-theme-sync/internal/notify"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
	"github.com/mauromedda/pi-theme-sync/internal/state"
)

// AppThemer switches the primary application's theme.
type AppThemer interface {
	SetTheme(name string) error
}

// FileSyncer writes one identifier into an external tool's config and
// reports whether anything changed.
type FileSyncer interface {
	Apply(ctx context.Context, value string) (bool, error)
}

// Installer seeds an external tool with bundled theme files.
type Installer func(ctx context.Context) error

// ErrEditInProgress is returned by BeginEdit while another edit is open.
var ErrEditInProgress = errors.New("theme picker already open")

// Options wires a Session. Nil Terminal, Multiplexer or App disables that
// target; a nil Appearance reads as light.
type Options struct {
	Config      *config.Config
	Appearance  appearance.Source
	Store       state.Store
	App         AppThemer
	Terminal    FileSyncer
	Multiplexer FileSyncer
	Installers  []Installer
	Notices     *notify.Bus
}

// Session is the live theme sync state.
type Session struct {
	cfg        *config.Config
	appearance appearance.Source
	store      state.Store
	app        AppThemer
	terminal   FileSyncer
	mux        FileSyncer
	installers []Installer
	notices    *notify.Bus

	mu          sync.Mutex
	sel         resolver.Selection
	lastApplied string
	editing     *Edit

	poller    *Poller
	watcher   *config.Watcher
	closeOnce sync.Once
	closed    bool
}

// New creates a session holding the default selection. Nothing is applied
// until Start, Restore or a setter runs.
func New(opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	src := opts.Appearance
	if src == nil {
		src = appearance.Static(false)
	}
	s := &Session{
		cfg:        cfg,
		appearance: src,
		store:      opts.Store,
		app:        opts.App,
		terminal:   opts.Terminal,
		mux:        opts.Multiplexer,
		installers: opts.Installers,
		notices:    opts.Notices,
		sel:        resolver.Auto(cfg.DefaultPair),
	}
	s.poller = NewPoller(s.interval(), s.poll)
	return s
}

// Start installs bundled assets, restores the persisted selection, applies
// it to every target and begins polling the appearance. ctx bounds the
// session's background work.
func (s *Session) Start(ctx context.Context) Report {
	s.Install(ctx)
	s.Restore()

	s.mu.Lock()
	rep := s.applyLocked(ctx, true)
	s.mu.Unlock()

	if s.cfg.Backend == config.BackendSettings {
		s.watcher = config.NewWatcher([]string{s.cfg.SettingsFile}, func([]string) {
			s.ReloadStore(ctx)
		})
	}
	s.poller.Start(ctx)
	return rep
}

// poll is the body of the session's single periodic loop: an appearance
// tick, then a settings file check when the settings backend is active.
func (s *Session) poll(ctx context.Context) {
	s.Tick(ctx)
	if s.watcher != nil {
		s.watcher.Check()
	}
}

// Install runs every installer concurrently. Failures are logged and
// otherwise ignored.
func (s *Session) Install(ctx context.Context) {
	var g errgroup.Group
	for _, inst := range s.installers {
		g.Go(func() error {
			if err := inst(ctx); err != nil {
				log.Debug("themesync: install: %v", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Restore loads the persisted selection, falling back to the configured
// default pair.
func (s *Session) Restore() resolver.Selection {
	sel := resolver.Auto(s.cfg.DefaultPair)
	if s.store != nil {
		if loaded, ok := s.store.Load(); ok {
			sel = loaded
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = sel
	s.lastApplied = ""
	return sel
}

// Close stops polling, waiting for an in-flight tick or settings check. It
// is idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.poller.Stop()
	})
}

// Selection returns the current selection.
func (s *Session) Selection() resolver.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// LastApplied returns the app theme most recently applied, or "".
func (s *Session) LastApplied() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastApplied
}

// Resolve returns what the current selection resolves to right now without
// applying it.
func (s *Session) Resolve(ctx context.Context) (resolver.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolver.Resolve(s.sel, s.isDarkLocked(ctx), s.cfg.TerminalSyntax)
}

// Set switches by name: pair names select auto mode, theme names pin. Pair
// names win when a name is both.
func (s *Session) Set(ctx context.Context, name string) (Report, error) {
	switch {
	case catalog.IsPair(name):
		return s.SetPair(ctx, name)
	case catalog.IsValid(name):
		return s.SetIndividual(ctx, name)
	}
	err := &catalog.UnknownNameError{Kind: catalog.KindAny, Name: name, Valid: catalog.AllNames()}
	s.notices.Error(err)
	return Report{}, err
}

// SetPair switches to auto mode following pair.
func (s *Session) SetPair(ctx context.Context, pair string) (Report, error) {
	if _, err := catalog.ValidatePair(pair); err != nil {
		s.notices.Error(err)
		return Report{}, err
	}
	s.mu.Lock()
	rep := s.switchLocked(ctx, resolver.Auto(pair))
	s.mu.Unlock()

	s.notifySwitch(rep.Selection)
	return rep, nil
}

// SetIndividual pins theme regardless of appearance. The current pair is
// remembered so a later auto switch can return to it.
func (s *Session) SetIndividual(ctx context.Context, theme string) (Report, error) {
	if _, err := catalog.ValidateTheme(theme); err != nil {
		s.notices.Error(err)
		return Report{}, err
	}
	s.mu.Lock()
	rep := s.switchLocked(ctx, s.pinLocked(theme))
	s.mu.Unlock()

	s.notifySwitch(rep.Selection)
	return rep, nil
}

// Tick re-reads the appearance and re-applies when the resolved app theme
// changed. Terminal and multiplexer configs are reconciled on every tick;
// both only write when their content differs. Ticks do nothing while an
// edit is open or after Close.
func (s *Session) Tick(ctx context.Context) Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.editing != nil {
		return Report{Selection: s.sel}
	}

	prev := s.lastApplied
	rep := s.applyLocked(ctx, false)
	if !rep.Changed() {
		return rep
	}
	log.Debug("themesync: tick reconciled %s", rep.Target.App.Name)
	if rep.AppChanged && prev != "" {
		log.Debug("themesync: appearance switch %s -> %s", prev, rep.Target.App.Name)
		s.persistLocked(&rep)
	}
	return rep
}

// ReloadStore adopts a theme written to the store by another program. Only
// settings-backed selections are reloaded; the theme this session last
// applied is ignored.
func (s *Session) ReloadStore(ctx context.Context) {
	if s.store == nil {
		return
	}
	loaded, ok := s.store.Load()
	if !ok || loaded.Mode != resolver.ModeSettings {
		return
	}

	s.mu.Lock()
	if s.closed || s.editing != nil || loaded.Theme == s.lastApplied {
		s.mu.Unlock()
		return
	}
	s.sel = loaded
	rep := s.applyLocked(ctx, true)
	s.mu.Unlock()

	s.notifySwitch(rep.Selection)
}

func (s *Session) interval() time.Duration {
	if s.cfg.Interval <= 0 {
		return config.DefaultInterval
	}
	return s.cfg.Interval
}

func (s *Session) pinLocked(theme string) resolver.Selection {
	if s.cfg.Backend == config.BackendSettings {
		return resolver.Settings(theme)
	}
	sel := resolver.Pinned(theme)
	sel.Pair = s.sel.Pair
	if sel.Pair == "" {
		sel.Pair = s.cfg.DefaultPair
	}
	return sel
}

// switchLocked makes sel current, persists it and fully re-applies.
func (s *Session) switchLocked(ctx context.Context, sel resolver.Selection) Report {
	s.sel = sel
	rep := s.applyLocked(ctx, true)
	s.persistLocked(&rep)
	return rep
}

func (s *Session) persistLocked(rep *Report) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.sel, rep.Target.App.Name); err != nil {
		log.Debug("themesync: persist: %v", err)
		rep.skip(StepPersist, err)
		return
	}
	rep.Persisted = true
}

// applyLocked resolves the current selection and pushes it to the targets.
// With full unset the app (and its multiplexer theme) is only touched when
// the resolved app theme differs from the last applied one.
func (s *Session) applyLocked(ctx context.Context, full bool) Report {
	rep := Report{Selection: s.sel}
	target, err := resolver.Resolve(s.sel, s.isDarkLocked(ctx), s.cfg.TerminalSyntax)
	if err != nil {
		// Selections are validated on entry; an invalid one here means a
		// corrupt store slipped through. Fall back to the default pair.
		log.Warn("themesync: %v; using %s", err, s.cfg.DefaultPair)
		s.sel = resolver.Auto(s.cfg.DefaultPair)
		rep.Selection = s.sel
		target, _ = resolver.Resolve(s.sel, s.isDarkLocked(ctx), s.cfg.TerminalSyntax)
	}
	rep.Target = target

	if full || target.App.Name != s.lastApplied {
		if s.app != nil {
			if err := s.app.SetTheme(target.App.Name); err != nil {
				rep.skip(StepApp, err)
			} else {
				s.lastApplied = target.App.Name
				rep.AppChanged = true
			}
		} else {
			s.lastApplied = target.App.Name
			rep.AppChanged = true
		}
	}

	if s.terminal != nil {
		changed, err := s.terminal.Apply(ctx, target.Terminal)
		rep.TerminalChanged = changed
		rep.skip(StepTerminal, err)
	}
	if s.mux != nil {
		changed, err := s.mux.Apply(ctx, target.Multiplexer)
		rep.MultiplexerChanged = changed
		rep.skip(StepMultiplexer, err)
	}

	for _, sk := range rep.Skipped {
		log.Debug("themesync: skipped %s: %v", sk.Step, sk.Err)
	}
	return rep
}

func (s *Session) isDarkLocked(ctx context.Context) bool {
	if !s.sel.IsAuto() {
		return false
	}
	return s.appearance.IsDark(ctx)
}

func (s *Session) notifySwitch(sel resolver.Selection) {
	s.notices.Infof("Theme: %s", sel)
}
