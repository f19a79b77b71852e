// ABOUTME: Settings-file backend: the agent's settings.json "theme" key is the source of truth
// ABOUTME: Rewrites only that key; every other key keeps its raw value and position

package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/log"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
	"github.com/mauromedda/pi-theme-sync/internal/syncerr"
)

const themeKey = "theme"

// SettingsStore persists the applied theme under "theme" in a JSON settings
// object shared with other tools.
type SettingsStore struct {
	Path string
}

// Load returns Settings(theme) when the file names a catalog theme.
func (s *SettingsStore) Load() (resolver.Selection, bool) {
	doc, err := s.read()
	if err != nil {
		log.Debug("settings: %v", err)
		return resolver.Selection{}, false
	}
	raw, ok := doc.get(themeKey)
	if !ok {
		return resolver.Selection{}, false
	}
	name := stringOrSkip(&jlexer.Lexer{Data: raw})
	if !catalog.IsValid(name) {
		return resolver.Selection{}, false
	}
	return resolver.Settings(name), true
}

// Save records applied as the settings theme. sel is not stored: the
// settings file only knows concrete themes.
func (s *SettingsStore) Save(_ resolver.Selection, applied string) error {
	doc, err := s.read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		// An unreadable or malformed settings file is not ours to replace.
		return err
	}

	w := jwriter.Writer{}
	w.String(applied)
	val, _ := w.BuildBytes()
	doc.set(themeKey, val)

	var buf bytes.Buffer
	if err := json.Indent(&buf, doc.encode(), "", "  "); err != nil {
		return syncerr.Wrap(syncerr.ErrConfigUnavailable, "formatting settings", err)
	}
	buf.WriteByte('\n')
	return writeFile(s.Path, buf.Bytes())
}

func (s *SettingsStore) read() (*object, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &object{}, err
		}
		return nil, syncerr.Wrap(syncerr.ErrConfigUnavailable, "reading settings", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &object{}, nil
	}
	doc, err := decodeObject(data)
	if err != nil {
		return nil, syncerr.Wrap(syncerr.ErrConfigUnavailable, "decoding settings", err)
	}
	return doc, nil
}

// object is a JSON object kept as ordered raw members.
type object struct {
	keys []string
	vals [][]byte
}

func decodeObject(data []byte) (*object, error) {
	in := jlexer.Lexer{Data: data}
	o := &object{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		raw := in.Raw()
		o.keys = append(o.keys, key)
		o.vals = append(o.vals, append([]byte(nil), raw...))
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	return o, in.Error()
}

func (o *object) get(key string) ([]byte, bool) {
	for i, k := range o.keys {
		if k == key {
			return o.vals[i], true
		}
	}
	return nil, false
}

func (o *object) set(key string, val []byte) {
	for i, k := range o.keys {
		if k == key {
			o.vals[i] = val
			return
		}
	}
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
}

func (o *object) encode() []byte {
	w := jwriter.Writer{}
	w.RawByte('{')
	for i, k := range o.keys {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(k)
		w.RawByte(':')
		w.Raw(o.vals[i], nil)
	}
	w.RawByte('}')
	b, _ := w.BuildBytes()
	return b
}
