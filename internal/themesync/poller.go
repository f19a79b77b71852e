// ABOUTME: Fixed-interval poller; the session's only loop (appearance ticks and settings checks)
// ABOUTME: Runs ticks serially on one goroutine; Stop cancels and waits for the loop to exit

package themesync

import (
	"context"
	"sync"
	"time"
)

// Poller calls fn every interval until stopped.
type Poller struct {
	interval time.Duration
	fn       func(ctx context.Context)

	mu        sync.Mutex
	running   bool
	cancel    context.CancelFunc
	doneCh    chan struct{}
	stopOnce  sync.Once
	startOnce sync.Once
}

// NewPoller creates a stopped poller.
func NewPoller(interval time.Duration, fn func(ctx context.Context)) *Poller {
	return &Poller{
		interval: interval,
		fn:       fn,
		doneCh:   make(chan struct{}),
	}
}

// Start begins polling. ctx bounds every call to fn. Calls after the first,
// or after Stop, are no-ops.
func (p *Poller) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.cancel != nil {
			// Stopped before it ever started.
			return
		}
		ctx, cancel := context.WithCancel(ctx)
		p.cancel = cancel
		p.running = true
		go p.loop(ctx)
	})
}

// Stop halts polling and waits for an in-flight fn to return. Safe to call
// multiple times and concurrently; no fn call starts after Stop returns.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		running := p.running
		if p.cancel == nil {
			p.cancel = func() {}
		}
		cancel := p.cancel
		p.running = false
		p.mu.Unlock()

		cancel()
		if running {
			<-p.doneCh
		}
	})
}

// Running reports whether the loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.doneCh)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			p.fn(ctx)
		}
	}
}
