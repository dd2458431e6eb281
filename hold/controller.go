// Package hold contains the domain logic for hold-to-activate buttons: the
// Controller state machine that arbitrates pointer and keyboard presses,
// runs the per-second countdown and replays the captured input when the
// countdown expires.
//
// Maintenance notes:
//   - Mutable fields (remaining, captures, ticker) are accessed both by the
//     UI event handlers and by the ticker callback. The default ticker
//     delivers from its own goroutine, so all of them are protected by mu.
//   - Host callbacks (ReplayPress, CountdownChanged) are always invoked
//     outside the lock; a replayed press may re-enter the controller through
//     the host's activation handler.
//   - The countdown is exclusive per controller. There is never more than one
//     live ticker; every active→idle transition stops it. The seq counter
//     guards against a tick that was already in flight when the countdown
//     was cancelled.
package hold

import "sync"

// Source identifies which physical input channel captured a press.
type Source int

const (
	SourcePointer Source = iota
	SourceSpace
	SourceEnter

	sourceCount
)

// DefaultHoldSeconds is the countdown length used until the host configures one.
const DefaultHoldSeconds = 3

// Host is the interface the controller needs to communicate back to the
// widget that owns it.
type Host interface {
	// ReplayPress re-delivers a captured press into the base activation
	// path, as if the press had just happened.
	ReplayPress(src Source, ev any)
	// CountdownChanged reports the remaining-seconds readout. active is
	// false exactly when left is 0 (idle).
	CountdownChanged(left int, active bool)
}

// Controller is the hold-activation state machine for a single button.
type Controller struct {
	host Host

	// mutable state - protect with mu
	mu          sync.Mutex
	enabled     bool
	holdSeconds int
	remaining   int // 0 while idle, >=1 while a countdown is active
	captures    [sourceCount]any
	ticker      Ticker
	newTicker   TickerFactory
	seq         uint64
}

// NewController creates a controller reporting to host. A nil factory selects
// the time.Ticker based default; widgets pass a factory that re-enters their
// UI thread, tests pass a manual one.
func NewController(host Host, factory TickerFactory) *Controller {
	if factory == nil {
		factory = NewSecondTicker
	}
	return &Controller{
		host:        host,
		enabled:     true,
		holdSeconds: DefaultHoldSeconds,
		newTicker:   factory,
	}
}

// SetEnabled toggles hold behavior. When disabled, presses bypass the
// countdown and activate immediately.
func (c *Controller) SetEnabled(on bool) {
	c.mu.Lock()
	c.enabled = on
	c.mu.Unlock()
}

// Enabled reports whether hold behavior is on.
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// SetHoldSeconds sets the countdown length. Values below 1 make presses
// bypass the countdown, mirroring the disabled case. The new value is read
// at the next hold start; an active countdown is not affected.
func (c *Controller) SetHoldSeconds(sec int) {
	c.mu.Lock()
	c.holdSeconds = sec
	c.mu.Unlock()
}

// HoldSeconds returns the configured countdown length.
func (c *Controller) HoldSeconds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.holdSeconds
}

// Remaining returns the seconds left and whether a countdown is active.
func (c *Controller) Remaining() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining, c.remaining > 0
}

// Press records a press from src and decides whether it starts a countdown.
// It returns true only when a new countdown was started.
//
// While a countdown is active the press joins the capture record, so its
// event replays at expiry, but the shared countdown is never restarted or
// extended. When holds are disabled or the duration is below one second the
// press is replayed immediately and no countdown starts.
func (c *Controller) Press(src Source, ev any) bool {
	c.mu.Lock()
	if c.remaining > 0 {
		c.captures[src] = ev
		c.mu.Unlock()
		return false
	}
	if !c.enabled || c.holdSeconds < 1 {
		c.mu.Unlock()
		c.host.ReplayPress(src, ev)
		return false
	}
	c.captures[src] = ev
	c.remaining = c.holdSeconds
	left := c.remaining
	c.seq++
	seq := c.seq
	c.ticker = c.newTicker(func() { c.tick(seq) })
	c.mu.Unlock()

	c.host.CountdownChanged(left, true)
	return true
}

// Release ends src's participation in the hold. The countdown is cancelled
// only when that same source's capture is outstanding; releasing a source
// that never joined leaves a hold driven by another source untouched.
func (c *Controller) Release(src Source) bool {
	c.mu.Lock()
	if c.remaining == 0 || c.captures[src] == nil {
		c.mu.Unlock()
		return false
	}
	c.stopLocked()
	c.mu.Unlock()

	c.host.CountdownChanged(0, false)
	return true
}

// FocusLost cancels the countdown only when a keyboard-originated capture is
// outstanding. A pointer-driven hold survives focus moving elsewhere.
func (c *Controller) FocusLost() bool {
	c.mu.Lock()
	if c.remaining == 0 || (c.captures[SourceSpace] == nil && c.captures[SourceEnter] == nil) {
		c.mu.Unlock()
		return false
	}
	c.stopLocked()
	c.mu.Unlock()

	c.host.CountdownChanged(0, false)
	return true
}

// Cancel aborts any active countdown, clearing the remaining seconds and all
// three capture slots. It reports whether a cancellation actually occurred;
// cancelling while idle is a no-op.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	if c.remaining == 0 {
		c.mu.Unlock()
		return false
	}
	c.stopLocked()
	c.mu.Unlock()

	c.host.CountdownChanged(0, false)
	return true
}

// stopLocked transitions active→idle: stops the ticker, clears the countdown
// and every capture slot. Cancellation is global - any tracked source ending
// early aborts the whole hold. Callers hold mu.
func (c *Controller) stopLocked() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.seq++
	c.remaining = 0
	for i := range c.captures {
		c.captures[i] = nil
	}
}

type pendingReplay struct {
	src Source
	ev  any
}

// tick processes one second of the countdown. Calls carrying a stale seq
// (the ticker fired while a cancellation was racing it) are ignored.
func (c *Controller) tick(seq uint64) {
	c.mu.Lock()
	if seq != c.seq || c.remaining == 0 {
		c.mu.Unlock()
		return
	}
	if c.remaining > 1 {
		c.remaining--
		left := c.remaining
		c.mu.Unlock()
		c.host.CountdownChanged(left, true)
		return
	}

	// Expiry: replay every pending capture in pointer, space, enter order,
	// each consumed exactly once.
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.seq++
	c.remaining = 0
	var replays []pendingReplay
	for src := Source(0); src < sourceCount; src++ {
		if ev := c.captures[src]; ev != nil {
			replays = append(replays, pendingReplay{src: src, ev: ev})
			c.captures[src] = nil
		}
	}
	c.mu.Unlock()

	c.host.CountdownChanged(0, false)
	for _, r := range replays {
		c.host.ReplayPress(r.src, r.ev)
	}
}

// Snapshot is an atomic snapshot of the controller fields the UI needs to
// render a consistent view.
type Snapshot struct {
	Enabled     bool
	HoldSeconds int
	Remaining   int
	Active      bool
	Captured    [sourceCount]bool
}

// GetSnapshot returns a consistent snapshot of the controller's state.
func (c *Controller) GetSnapshot() Snapshot {
	c.mu.Lock()
	snap := Snapshot{
		Enabled:     c.enabled,
		HoldSeconds: c.holdSeconds,
		Remaining:   c.remaining,
		Active:      c.remaining > 0,
	}
	for i, ev := range c.captures {
		snap.Captured[i] = ev != nil
	}
	c.mu.Unlock()
	return snap
}
