// Package clock implements the background countdown that drives a session.
// The clock owns no UI or task knowledge; it only reports remaining seconds.
package clock

import (
	"sync"
	"time"
)

// Clock emits one tick per interval until the countdown reaches zero or
// Stop is called. At most one countdown runs at a time.
type Clock struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New creates a clock that ticks once per second.
func New() *Clock {
	return NewWithInterval(time.Second)
}

// NewWithInterval creates a clock with a custom tick interval. Tests use
// millisecond intervals to run countdowns deterministically fast.
func NewWithInterval(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Start begins a countdown of the given number of seconds, invoking onTick
// with the remaining count once per interval. The final tick at zero is
// delivered exactly once unless Stop preempts it, so a caller can tell a
// natural expiry apart from an explicit stop. A non-positive duration is an
// immediate zero tick. Starting while a countdown is running is a no-op.
func (c *Clock) Start(seconds int, onTick func(remaining int)) {
	c.mu.Lock()
	if c.stop != nil {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop = stop
	c.done = done
	c.mu.Unlock()

	go c.run(seconds, onTick, stop, done)
}

func (c *Clock) run(seconds int, onTick func(int), stop, done chan struct{}) {
	defer close(done)
	defer c.clear()

	if seconds <= 0 {
		onTick(0)
		return
	}

	remaining := seconds
	for remaining > 0 {
		// The stop signal is checked before every wait, never only at
		// loop entry: a Stop issued mid-countdown must win the race
		// against the next tick.
		select {
		case <-stop:
			return
		default:
		}

		onTick(remaining)

		select {
		case <-stop:
			return
		case <-time.After(c.interval):
		}
		remaining--
	}

	select {
	case <-stop:
	default:
		onTick(0)
	}
}

func (c *Clock) clear() {
	c.mu.Lock()
	c.stop = nil
	c.done = nil
	c.mu.Unlock()
}

// Stop cancels the countdown and waits for the ticking goroutine to exit.
// After Stop returns no further ticks are delivered. Stopping an idle clock
// is a no-op.
func (c *Clock) Stop() {
	c.mu.Lock()
	done := c.done
	if c.stop != nil {
		select {
		case <-c.stop:
		default:
			close(c.stop)
		}
	}
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Running reports whether a countdown goroutine is active.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}
