// ABOUTME: Persistence backends for the theme selection: private state file or agent settings
// ABOUTME: Invalid persisted values read as absent; Load never fails, Save reports errors

package state

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mailru/easyjson"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/log"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
	"github.com/mauromedda/pi-theme-sync/internal/syncerr"
)

// Store loads and saves the user's selection.
type Store interface {
	// Load returns the persisted selection and whether one was found.
	Load() (resolver.Selection, bool)
	// Save persists sel. applied is the theme currently resolved for sel,
	// used by backends that only record a concrete theme.
	Save(sel resolver.Selection, applied string) error
}

// record is the on-disk shape of the private state file.
type record struct {
	Pair   string  `json:"pair"`
	Pinned *string `json:"pinned"`
}

// FileStore keeps {pair, pinned} in a private JSON file.
type FileStore struct {
	Path string
}

// Load reads the state file. An unknown pair makes the whole record absent;
// an unknown pinned theme is dropped and the pair is kept.
func (s *FileStore) Load() (resolver.Selection, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug("state: reading %s: %v", s.Path, err)
		}
		return resolver.Selection{}, false
	}

	var r record
	if err := easyjson.Unmarshal(data, &r); err != nil {
		log.Debug("state: decoding %s: %v", s.Path, err)
		return resolver.Selection{}, false
	}
	if !catalog.IsPair(r.Pair) {
		return resolver.Selection{}, false
	}
	if r.Pinned != nil && catalog.IsValid(*r.Pinned) {
		sel := resolver.Pinned(*r.Pinned)
		sel.Pair = r.Pair
		return sel, true
	}
	return resolver.Auto(r.Pair), true
}

// Save writes sel unless the file already holds it. A pinned selection keeps its last pair so that unpinning
// returns to it; a pinned selection without one records the default pair.
func (s *FileStore) Save(sel resolver.Selection, _ string) error {
	r := record{Pair: sel.Pair}
	if r.Pair == "" {
		r.Pair = catalog.DefaultPair
	}
	if !sel.IsAuto() {
		theme := sel.Theme
		r.Pinned = &theme
	}

	data, err := easyjson.Marshal(&r)
	if err != nil {
		return err
	}
	if prev, err := os.ReadFile(s.Path); err == nil && bytes.Equal(prev, data) {
		return nil
	}
	return writeFile(s.Path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return syncerr.Wrap(syncerr.ErrConfigUnavailable, "creating state dir", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return syncerr.Wrap(syncerr.ErrConfigUnavailable, "writing "+path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return syncerr.Wrap(syncerr.ErrConfigUnavailable, "renaming "+path, err)
	}
	return nil
}
