package deck

import (
	"sync"
	"time"
)

// DebounceDelay is the quiet period before a debounced edit propagates.
// Rapid typing resets the timer on every keystroke so the document store and
// history are not flooded per keystroke.
const DebounceDelay = 100 * time.Millisecond

// Debouncer coalesces a burst of calls into one trailing invocation. The last
// function wins; earlier pending ones are discarded.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer. A non-positive delay uses DebounceDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, replacing any pending call.
func (b *Debouncer) Trigger(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.delay, fn)
}

// Stop cancels any pending call without running it.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
