package hold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	onTick  func()
	stopped bool
}

func (f *fakeTicker) Stop() { f.stopped = true }
func (f *fakeTicker) fire() { f.onTick() }

// tickerLog records every ticker the controller creates so tests can drive
// the countdown by hand and observe start/stop transitions.
type tickerLog struct {
	created []*fakeTicker
}

func (l *tickerLog) factory(onTick func()) Ticker {
	t := &fakeTicker{onTick: onTick}
	l.created = append(l.created, t)
	return t
}

func (l *tickerLog) last() *fakeTicker {
	return l.created[len(l.created)-1]
}

type replayed struct {
	src Source
	ev  any
}

type recordingHost struct {
	replays []replayed
	changes []int
}

func (h *recordingHost) ReplayPress(src Source, ev any) {
	h.replays = append(h.replays, replayed{src: src, ev: ev})
}

func (h *recordingHost) CountdownChanged(left int, _ bool) {
	h.changes = append(h.changes, left)
}

func newTestController() (*Controller, *recordingHost, *tickerLog) {
	host := &recordingHost{}
	log := &tickerLog{}
	return NewController(host, log.factory), host, log
}

type pressEvent struct{ name string }

func TestPointerHoldCountsDownAndReplays(t *testing.T) {
	c, host, ticks := newTestController()
	ev := &pressEvent{name: "pointer"}

	require.True(t, c.Press(SourcePointer, ev), "first press should start a countdown")
	left, active := c.Remaining()
	assert.True(t, active)
	assert.Equal(t, 3, left, "countdown should start at the default hold seconds")
	require.Len(t, ticks.created, 1)

	ticks.last().fire()
	left, _ = c.Remaining()
	assert.Equal(t, 2, left)

	ticks.last().fire()
	left, _ = c.Remaining()
	assert.Equal(t, 1, left)

	assert.Empty(t, host.replays, "nothing should replay before expiry")

	ticks.last().fire()
	left, active = c.Remaining()
	assert.False(t, active)
	assert.Equal(t, 0, left)
	assert.True(t, ticks.last().stopped, "expiry should stop the ticker")

	require.Len(t, host.replays, 1)
	assert.Equal(t, SourcePointer, host.replays[0].src)
	assert.Same(t, ev, host.replays[0].ev, "the captured event must replay unmodified")

	assert.Equal(t, []int{3, 2, 1, 0}, host.changes)
	assert.Len(t, ticks.created, 1, "exactly one ticker serves the whole hold")
}

func TestActiveCountdownIsExclusive(t *testing.T) {
	c, host, ticks := newTestController()
	pointerEv := &pressEvent{name: "pointer"}
	spaceEv := &pressEvent{name: "space"}

	require.True(t, c.Press(SourcePointer, pointerEv))
	ticks.last().fire()

	// A second source cannot restart or extend the countdown.
	assert.False(t, c.Press(SourceSpace, spaceEv))
	left, _ := c.Remaining()
	assert.Equal(t, 2, left, "joining press must not reset the countdown")
	assert.Len(t, ticks.created, 1, "joining press must not start another ticker")

	// It does join the capture record and replays at expiry, after the
	// pointer capture.
	snap := c.GetSnapshot()
	assert.True(t, snap.Captured[SourcePointer])
	assert.True(t, snap.Captured[SourceSpace])

	ticks.last().fire()
	ticks.last().fire()

	require.Len(t, host.replays, 2)
	assert.Equal(t, SourcePointer, host.replays[0].src)
	assert.Same(t, pointerEv, host.replays[0].ev)
	assert.Equal(t, SourceSpace, host.replays[1].src)
	assert.Same(t, spaceEv, host.replays[1].ev)

	snap = c.GetSnapshot()
	assert.False(t, snap.Captured[SourcePointer], "captures are consumed exactly once")
	assert.False(t, snap.Captured[SourceSpace])
}

func TestDisabledBypassesCountdown(t *testing.T) {
	c, host, ticks := newTestController()
	c.SetEnabled(false)
	ev := &pressEvent{name: "pointer"}

	assert.False(t, c.Press(SourcePointer, ev))

	_, active := c.Remaining()
	assert.False(t, active, "bypass must not touch the countdown")
	assert.Empty(t, ticks.created)
	require.Len(t, host.replays, 1)
	assert.Same(t, ev, host.replays[0].ev)
}

func TestShortDurationBypassesCountdown(t *testing.T) {
	c, host, ticks := newTestController()
	c.SetHoldSeconds(0)

	assert.False(t, c.Press(SourceEnter, &pressEvent{name: "enter"}))

	_, active := c.Remaining()
	assert.False(t, active)
	assert.Empty(t, ticks.created)
	require.Len(t, host.replays, 1)
	assert.Equal(t, SourceEnter, host.replays[0].src)
}

func TestFocusLostKeepsPointerHold(t *testing.T) {
	c, _, _ := newTestController()
	require.True(t, c.Press(SourcePointer, &pressEvent{name: "pointer"}))

	assert.False(t, c.FocusLost(), "focus loss must not cancel a pointer hold")
	left, active := c.Remaining()
	assert.True(t, active)
	assert.Equal(t, 3, left)
}

func TestPointerReleaseKeepsKeyboardHold(t *testing.T) {
	c, _, _ := newTestController()
	require.True(t, c.Press(SourceSpace, &pressEvent{name: "space"}))

	assert.False(t, c.Release(SourcePointer), "pointer leaving must not cancel a keyboard hold")
	_, active := c.Remaining()
	assert.True(t, active)
}

func TestUnrelatedKeyReleaseKeepsHold(t *testing.T) {
	c, _, _ := newTestController()
	require.True(t, c.Press(SourcePointer, &pressEvent{name: "pointer"}))

	// Releasing Space after e.g. a Tab focus change has no outstanding
	// space capture and must not abort the pointer hold.
	assert.False(t, c.Release(SourceSpace))
	_, active := c.Remaining()
	assert.True(t, active)
}

func TestMatchingKeyReleaseCancels(t *testing.T) {
	c, host, ticks := newTestController()
	require.True(t, c.Press(SourceSpace, &pressEvent{name: "space"}))

	assert.True(t, c.Release(SourceSpace))
	_, active := c.Remaining()
	assert.False(t, active)
	assert.True(t, ticks.last().stopped)
	assert.Empty(t, host.replays, "a cancelled hold never activates")
}

func TestFocusLostCancelsKeyboardHold(t *testing.T) {
	c, _, ticks := newTestController()
	require.True(t, c.Press(SourceEnter, &pressEvent{name: "enter"}))

	assert.True(t, c.FocusLost())
	_, active := c.Remaining()
	assert.False(t, active)
	assert.True(t, ticks.last().stopped)
}

func TestCancelClearsAllCaptures(t *testing.T) {
	c, host, ticks := newTestController()
	require.True(t, c.Press(SourcePointer, &pressEvent{name: "pointer"}))
	c.Press(SourceSpace, &pressEvent{name: "space"})

	assert.True(t, c.Cancel())
	snap := c.GetSnapshot()
	assert.False(t, snap.Active)
	for src, captured := range snap.Captured {
		assert.False(t, captured, "capture slot %d must be cleared on cancel", src)
	}

	// A later hold starts from a clean idle state.
	spaceEv := &pressEvent{name: "space again"}
	require.True(t, c.Press(SourceSpace, spaceEv))
	left, _ := c.Remaining()
	assert.Equal(t, 3, left)
	require.Len(t, ticks.created, 2)

	ticks.last().fire()
	ticks.last().fire()
	ticks.last().fire()

	require.Len(t, host.replays, 1, "only the new capture replays")
	assert.Same(t, spaceEv, host.replays[0].ev)
}

func TestCancelWhileIdleIsNoOp(t *testing.T) {
	c, host, _ := newTestController()

	assert.False(t, c.Cancel())
	assert.False(t, c.Release(SourcePointer))
	assert.False(t, c.Release(SourceSpace))
	assert.False(t, c.FocusLost())
	assert.Empty(t, host.replays)
	assert.Empty(t, host.changes)
}

func TestStaleTickIsIgnored(t *testing.T) {
	c, host, ticks := newTestController()
	require.True(t, c.Press(SourcePointer, &pressEvent{name: "pointer"}))
	stale := ticks.last()

	require.True(t, c.Cancel())
	assert.True(t, stale.stopped)

	// A tick that was already in flight when the cancel landed.
	stale.fire()
	_, active := c.Remaining()
	assert.False(t, active)
	assert.Empty(t, host.replays)
	assert.Equal(t, []int{3, 0}, host.changes, "a stale tick must not report progress")
}

func TestHoldSecondsReadAtHoldStart(t *testing.T) {
	c, _, ticks := newTestController()
	require.True(t, c.Press(SourcePointer, &pressEvent{name: "pointer"}))
	c.SetHoldSeconds(5)

	ticks.last().fire()
	left, _ := c.Remaining()
	assert.Equal(t, 2, left, "changing the duration must not affect the running countdown")

	require.True(t, c.Cancel())
	require.True(t, c.Press(SourcePointer, &pressEvent{name: "pointer"}))
	left, _ = c.Remaining()
	assert.Equal(t, 5, left)
}

func TestLongCountdownScenario(t *testing.T) {
	c, host, ticks := newTestController()
	c.SetHoldSeconds(5)
	require.True(t, c.Press(SourceSpace, &pressEvent{name: "space"}))

	want := []int{5, 4, 3, 2, 1}
	for i := 0; i < 4; i++ {
		left, active := c.Remaining()
		require.True(t, active)
		require.Equal(t, want[i], left)
		ticks.last().fire()
	}
	left, active := c.Remaining()
	require.True(t, active)
	require.Equal(t, 1, left)

	ticks.last().fire()
	_, active = c.Remaining()
	assert.False(t, active)
	assert.Len(t, host.replays, 1)
}
