package search

import (
	"sync"
	"time"
)

// Debouncer emits the last submitted term once no new submission has
// arrived for the configured quiet period. Every Submit cancels the pending
// emission and restarts the clock, so a burst of keystrokes produces a
// single emission for the final value.
type Debouncer struct {
	quiet time.Duration

	mu    sync.Mutex
	timer *time.Timer
	out   chan string
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet, out: make(chan string, 1)}
}

// Submit registers a new term. The previous pending emission, if any, is
// cancelled.
func (d *Debouncer) Submit(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() {
		// keep only the freshest value if the receiver is lagging
		select {
		case d.out <- term:
		default:
			select {
			case <-d.out:
			default:
			}
			select {
			case d.out <- term:
			default:
			}
		}
	})
}

// C delivers debounced terms.
func (d *Debouncer) C() <-chan string {
	return d.out
}

// Stop cancels any pending emission. The output channel stays open.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
