package ui

import (
	"HoldButton/hold"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// HoldButton is a button that activates only after the press has been held
// for a configured number of seconds. Pointer and keyboard presses are
// intercepted before the base button's immediate activation path, fed to a
// hold.Controller, and the original press is replayed into the base path
// when the countdown expires.
//
// Activation is still delivered through OnTapped, so consumers see a normal
// button that just fires late.
type HoldButton struct {
	widget.Button

	// Left observably tracks the seconds remaining in an active countdown.
	// It reads 0 while idle; an active countdown always reads >= 1.
	Left binding.Int

	ctl *hold.Controller

	// keysDown tracks which key names are physically held. Fyne key events
	// carry no repeat flag, so a KeyDown for a name already in the set is
	// an auto-repeat and is ignored. Also supplies the Alt state for the
	// Alt+Space window-menu passthrough.
	keysDown map[fyne.KeyName]bool
}

// NewHoldButton creates a hold-to-activate button with the given label and
// activation handler.
func NewHoldButton(label string, tapped func()) *HoldButton {
	return newHoldButton(label, tapped, uiTicker)
}

// newHoldButton lets tests swap the countdown ticker for a manual one.
func newHoldButton(label string, tapped func(), factory hold.TickerFactory) *HoldButton {
	b := &HoldButton{
		Left:     binding.NewInt(),
		keysDown: make(map[fyne.KeyName]bool),
	}
	b.Text = label
	b.OnTapped = tapped
	b.ctl = hold.NewController(b, factory)
	b.ExtendBaseWidget(b)
	return b
}

// uiTicker delivers countdown ticks on the Fyne UI thread, so every
// controller callback runs serialized with the input handlers.
func uiTicker(onTick func()) hold.Ticker {
	return hold.NewSecondTicker(func() { fyne.Do(onTick) })
}

// SetLongPressEnabled toggles hold behavior. When off, presses activate
// immediately like a stock button.
func (b *HoldButton) SetLongPressEnabled(on bool) {
	b.ctl.SetEnabled(on)
}

// LongPressEnabled reports whether hold behavior is on.
func (b *HoldButton) LongPressEnabled() bool {
	return b.ctl.Enabled()
}

// SetHoldSeconds sets the countdown length. Values below 1 make presses
// activate immediately.
func (b *HoldButton) SetHoldSeconds(sec int) {
	b.ctl.SetHoldSeconds(sec)
}

// HoldSeconds returns the configured countdown length.
func (b *HoldButton) HoldSeconds() int {
	return b.ctl.HoldSeconds()
}

// LeftSeconds returns the seconds remaining and whether a hold is in
// progress.
func (b *HoldButton) LeftSeconds() (int, bool) {
	return b.ctl.Remaining()
}

// MouseDown intercepts a primary pointer press before the base button's tap
// handling and hands it to the controller.
func (b *HoldButton) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || b.Disabled() {
		return
	}
	b.ctl.Press(hold.SourcePointer, ev)
}

// MouseUp cancels the hold only when a pointer-driven capture is
// outstanding; a keyboard-driven hold is unaffected.
func (b *HoldButton) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ctl.Release(hold.SourcePointer)
}

// MouseOut treats the pointer leaving the button like a pointer release,
// then defers to the base hover handling.
func (b *HoldButton) MouseOut() {
	b.ctl.Release(hold.SourcePointer)
	b.Button.MouseOut()
}

// KeyDown starts or joins a hold for Space and Return/Enter presses.
// Auto-repeats are ignored entirely. Alt+Space is left untouched so the
// platform window menu keeps working.
func (b *HoldButton) KeyDown(ev *fyne.KeyEvent) {
	if b.keysDown[ev.Name] {
		return
	}
	b.keysDown[ev.Name] = true

	if b.Disabled() {
		return
	}
	switch ev.Name {
	case fyne.KeySpace:
		if b.keysDown[desktop.KeyAltLeft] || b.keysDown[desktop.KeyAltRight] {
			return
		}
		b.ctl.Press(hold.SourceSpace, ev)
	case fyne.KeyReturn, fyne.KeyEnter:
		b.ctl.Press(hold.SourceEnter, ev)
	}
}

// KeyUp cancels the hold only when the released key's own capture is
// outstanding. Releasing a key that never joined (say, Space released after
// a Tab focus change while a pointer hold runs) changes nothing.
func (b *HoldButton) KeyUp(ev *fyne.KeyEvent) {
	delete(b.keysDown, ev.Name)
	switch ev.Name {
	case fyne.KeySpace:
		b.ctl.Release(hold.SourceSpace)
	case fyne.KeyReturn, fyne.KeyEnter:
		b.ctl.Release(hold.SourceEnter)
	}
}

// FocusLost cancels a keyboard-driven hold; a pointer-driven one keeps
// counting. Key-down tracking is reset because release events stop arriving
// once focus is elsewhere.
func (b *HoldButton) FocusLost() {
	clear(b.keysDown)
	b.ctl.FocusLost()
	b.Button.FocusLost()
}

// Tapped swallows the driver's click-release tap. The press was either
// captured for the countdown or already replayed through the bypass path;
// letting the driver's tap through would activate twice.
func (b *HoldButton) Tapped(*fyne.PointEvent) {}

// TypedKey swallows the base button's space-to-tap shortcut; keyboard
// activation goes through KeyDown/KeyUp so it can be held.
func (b *HoldButton) TypedKey(*fyne.KeyEvent) {}

// ReplayPress implements hold.Host. The captured press re-enters the base
// button's activation path: a pointer replay carries its original
// fyne.PointEvent, a key replay uses the base's event-less key activation.
func (b *HoldButton) ReplayPress(src hold.Source, ev any) {
	if src == hold.SourcePointer {
		if me, ok := ev.(*desktop.MouseEvent); ok {
			b.Button.Tapped(&me.PointEvent)
			return
		}
	}
	b.Button.Tapped(nil)
}

// CountdownChanged implements hold.Host.
func (b *HoldButton) CountdownChanged(left int, _ bool) {
	_ = b.Left.Set(left)
}

// CreateRenderer wraps the base renderer so teardown cancels any countdown
// still running when the button is removed from a canvas.
func (b *HoldButton) CreateRenderer() fyne.WidgetRenderer {
	return &holdButtonRenderer{WidgetRenderer: b.Button.CreateRenderer(), btn: b}
}

// Hide force-cancels like teardown does; a hidden button must not fire.
func (b *HoldButton) Hide() {
	b.ctl.Cancel()
	b.Button.Hide()
}

type holdButtonRenderer struct {
	fyne.WidgetRenderer
	btn *HoldButton
}

// Destroy stops the countdown ticker before the base renderer is torn down.
// Renderers can be created and destroyed repeatedly for the same widget;
// cancelling while idle is a no-op, so repeated teardowns are safe.
func (r *holdButtonRenderer) Destroy() {
	r.btn.ctl.Cancel()
	r.WidgetRenderer.Destroy()
}
