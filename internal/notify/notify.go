// ABOUTME: User-facing notice bus: theme switches and validation errors reach the UI here
// ABOUTME: Subscribers are called synchronously in subscription order; a nil Bus drops notices

package notify

import (
	"fmt"
	"sync"
)

// Level is the severity shown with a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one message for the user.
type Notice struct {
	Level Level
	Text  string
}

// String renders the notice as printed by the CLI.
func (n Notice) String() string {
	if n.Level == LevelInfo {
		return n.Text
	}
	return string(n.Level) + ": " + n.Text
}

// Handler receives notices.
type Handler func(Notice)

type subscriber struct {
	id int
	h  Handler
}

// Bus delivers notices to subscribers.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscriber
	nextID int
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers h and returns its unsubscribe function.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, h: h})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers n to every subscriber.
func (b *Bus) Publish(n Notice) {
	if b == nil {
		return
	}
	b.mu.RLock()
	// Snapshot so handlers may unsubscribe.
	snapshot := make([]Handler, len(b.subs))
	for i, s := range b.subs {
		snapshot[i] = s.h
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(n)
	}
}

// Infof publishes an info notice.
func (b *Bus) Infof(format string, args ...any) {
	b.Publish(Notice{Level: LevelInfo, Text: fmt.Sprintf(format, args...)})
}

// Error publishes err's message at error level.
func (b *Bus) Error(err error) {
	if err == nil {
		return
	}
	b.Publish(Notice{Level: LevelError, Text: err.Error()})
}

// Count returns the number of subscribers.
func (b *Bus) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Recorder collects notices; usable as a subscriber in tests and the CLI.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Handle records n.
func (r *Recorder) Handle(n Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

// Notices returns a copy of what was recorded.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}
