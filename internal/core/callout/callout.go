// Package callout arbitrates the per-column header popovers. At most one
// callout is open at a time; the single-slot registry keeps the mutual
// exclusion in one place instead of scattered flags.
//
// Dismissal is debounced rather than immediate: moving the pointer from the
// trigger to the callout surface arms a countdown that re-entry cancels.
// The host drives the countdown with Tick, the same way the TUI drives
// toast TTLs.
package callout

import "time"

// DefaultDismissDelay is the hover-intent grace period.
const DefaultDismissDelay = 300 * time.Millisecond

// Coordinator tracks the single open callout and its pending dismissal.
type Coordinator struct {
	active    string
	delay     time.Duration
	arming    bool
	remaining time.Duration
}

// New creates a Coordinator with the given dismiss delay; zero or negative
// falls back to DefaultDismissDelay.
func New(delay time.Duration) *Coordinator {
	if delay <= 0 {
		delay = DefaultDismissDelay
	}
	return &Coordinator{delay: delay}
}

// Open opens the callout for a column key, implicitly dismissing any other
// and cancelling a pending dismissal.
func (c *Coordinator) Open(key string) {
	c.active = key
	c.arming = false
}

// Active returns the open callout's column key, or "".
func (c *Coordinator) Active() string { return c.active }

// IsOpen reports whether the callout for the given key is open.
func (c *Coordinator) IsOpen(key string) bool {
	return key != "" && c.active == key
}

// RequestDismiss arms the debounced dismissal of the open callout.
func (c *Coordinator) RequestDismiss() {
	if c.active == "" {
		return
	}
	c.arming = true
	c.remaining = c.delay
}

// CancelDismiss disarms a pending dismissal; called on pointer re-entry
// within the delay window.
func (c *Coordinator) CancelDismiss() {
	c.arming = false
}

// Dismiss closes the open callout immediately.
func (c *Coordinator) Dismiss() {
	c.active = ""
	c.arming = false
}

// Tick advances the dismissal countdown by the elapsed duration, closing
// the callout when it expires.
func (c *Coordinator) Tick(elapsed time.Duration) {
	if !c.arming {
		return
	}
	c.remaining -= elapsed
	if c.remaining <= 0 {
		c.Dismiss()
	}
}

// PendingDismiss reports whether a dismissal countdown is running; hosts
// use it to know whether Tick needs driving.
func (c *Coordinator) PendingDismiss() bool { return c.arming }
