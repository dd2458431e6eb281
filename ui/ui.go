package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"HoldButton/control"
	"HoldButton/hold"
	"HoldButton/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is the minimal interface the UI needs from the application manager.
type App interface {
	EnqueueCommand(cmd control.Command)
	ShowInfoDialog(title, contentFile string, minSize fyne.Size)
	SetTallyLabel(l *widget.Label)
}

// DemoButton pairs a configured HoldButton with its countdown readout.
type DemoButton struct {
	Config *hold.ButtonConfig
	Button *HoldButton
}

// NewDemoButton builds one hold button from its config, wiring activation
// into the application command loop.
func NewDemoButton(a App, cfg *hold.ButtonConfig) *DemoButton {
	d := &DemoButton{Config: cfg}
	d.Button = NewHoldButton(i18n.T(cfg.Label), func() {
		reply := make(chan error, 1)
		a.EnqueueCommand(control.Command{Type: control.CmdActivated, Name: cfg.Name, ToneHz: cfg.ToneHz, Reply: reply})
		select {
		case <-reply:
		case <-time.After(200 * time.Millisecond):
		}
	})
	d.Button.SetLongPressEnabled(cfg.Enabled)
	d.Button.SetHoldSeconds(cfg.HoldSeconds)
	return d
}

// row lays the button out beside its remaining-seconds readout. The readout
// is bound to the button's Left value and shows nothing while idle.
func (d *DemoButton) row() fyne.CanvasObject {
	left := widget.NewLabelWithData(binding.IntToStringWithFormat(d.Button.Left, "%d s"))
	d.Button.Left.AddListener(binding.NewDataListener(func() {
		if v, err := d.Button.Left.Get(); err == nil && v == 0 {
			left.Hide()
		} else {
			left.Show()
		}
	}))

	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(hold.ButtonWidth, hold.ButtonHeight))
	padded := container.NewStack(sizer, d.Button)
	return container.NewBorder(nil, nil, nil, left, padded)
}

// BuildButtonsList builds the demo button column from the loaded configs.
func BuildButtonsList(a App) (*fyne.Container, []*DemoButton) {
	listContainer := container.NewVBox()
	var buttons []*DemoButton
	for _, cfg := range hold.ButtonConfigs {
		d := NewDemoButton(a, cfg)
		buttons = append(buttons, d)
		listContainer.Add(d.row())
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(0, hold.ButtonSpacing))
		listContainer.Add(spacer)
	}
	return listContainer, buttons
}

// BuildSettings builds the shared configuration row: the long-press toggle
// and the hold-duration entry, both applied to every demo button.
func BuildSettings(buttons []*DemoButton) fyne.CanvasObject {
	enabledCheck := widget.NewCheck(i18n.T("Long press"), func(on bool) {
		for _, d := range buttons {
			d.Button.SetLongPressEnabled(on)
		}
	})
	enabledCheck.SetChecked(true)

	secondsEntry := widget.NewEntry()
	secondsEntry.SetPlaceHolder(i18n.T("Hold seconds"))
	secondsEntry.OnSubmitted = func(text string) {
		sec, err := parseSeconds(text)
		if err != nil {
			return
		}
		for _, d := range buttons {
			d.Button.SetHoldSeconds(sec)
		}
	}

	sizeEnforcer := canvas.NewRectangle(color.Transparent)
	sizeEnforcer.SetMinSize(fyne.NewSize(hold.HoldSecondsWidth, 0))
	entryWrapper := container.NewStack(sizeEnforcer, secondsEntry)

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(hold.SettingsGap, 0))

	return container.NewHBox(layout.NewSpacer(), enabledCheck, gap, entryWrapper, layout.NewSpacer())
}

// BuildFooter builds the activation tally, the tally reset and the help
// button.
func BuildFooter(a App) fyne.CanvasObject {
	tally := widget.NewLabel(fmt.Sprintf("%s: 0", i18n.T("Activations")))
	a.SetTallyLabel(tally)

	resetButton := widget.NewButton(i18n.T("Reset tally"), func() {
		reply := make(chan error, 1)
		a.EnqueueCommand(control.Command{Type: control.CmdResetTally, Reply: reply})
		select {
		case <-reply:
		case <-time.After(200 * time.Millisecond):
		}
	})

	helpButton := widget.NewButtonWithIcon("", theme.QuestionIcon(), func() {
		a.ShowInfoDialog(i18n.T("About HoldButton"), "assets/dialogue_about.json", fyne.NewSize(420, 300))
	})

	return container.NewHBox(helpButton, layout.NewSpacer(), tally, layout.NewSpacer(), resetButton)
}

// CreateMainWindow builds the demo window.
func CreateMainWindow(a App, fyneApp fyne.App) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "HoldButton"
	}
	w := fyneApp.NewWindow(title)

	listContainer, buttons := BuildButtonsList(a)

	bottomSpacer := canvas.NewRectangle(color.Transparent)
	bottomSpacer.SetMinSize(fyne.NewSize(0, hold.FooterGap))

	content := container.NewVBox(
		widget.NewLabel(i18n.T("Hold to activate")),
		listContainer,
		BuildSettings(buttons),
		bottomSpacer,
		BuildFooter(a),
	)

	w.SetContent(content)
	w.Resize(fyne.NewSize(hold.ButtonWidth+120, 420))
	w.SetFixedSize(true)
	return w
}

// parseSeconds accepts either a bare seconds value or mm:ss.
func parseSeconds(input string) (int, error) {
	var val int
	var err error
	if strings.Contains(input, ":") {
		parts := strings.Split(input, ":")
		if len(parts) == 2 {
			var min, sec int
			min, err = strconv.Atoi(parts[0])
			if err == nil {
				sec, err = strconv.Atoi(parts[1])
				if err == nil && sec >= 0 && sec < 60 {
					val = min*60 + sec
				} else {
					err = fmt.Errorf("invalid seconds (must be 0-59)")
				}
			}
		} else {
			err = fmt.Errorf("invalid time format")
		}
	} else {
		val, err = strconv.Atoi(input)
	}

	if err != nil || val < 0 || val > 600 {
		return 0, fmt.Errorf("invalid value")
	}
	return val, nil
}
