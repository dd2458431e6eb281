// Package main contains the demo application wiring and the AppManager which
// coordinates the hold buttons, audio and the UI. This file centralizes the
// shared application state and the command loop used to serialize activation
// handling.
//
// Maintenance notes / tips:
//   - Concurrency model: activations arrive from UI callbacks and are
//     enqueued on `cmdCh`; a single command-loop goroutine applies them, so
//     the tally needs no locking of its own. UI updates hop back to the Fyne
//     thread with fyne.Do.
//   - `cmdCh` is a buffered channel. The enqueue path drops commands after a
//     short timeout instead of blocking the UI indefinitely.
package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"HoldButton/control"
	"HoldButton/hold"
	"HoldButton/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/gopxl/beep/speaker"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	cmdCh      chan control.Command
	cmdCtx     context.Context
	cmdCancel  context.CancelFunc

	tallyLabel *widget.Label
	counts     map[string]int
	total      int

	audioOK     bool
	speakerLock sync.Mutex
	content     embed.FS // Embedded file system for assets
}

// NewAppManager creates a new application manager.
func NewAppManager(content embed.FS) *AppManager {
	a := &AppManager{counts: make(map[string]int), content: content}
	if err := hold.LoadButtonConfigs(content); err != nil {
		log.Fatalf("Failed to load button configs: %v", err)
	}
	log.Printf("Loaded %d button configs.", len(hold.ButtonConfigs))
	a.initAudio()

	a.cmdCh = make(chan control.Command, 256)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()

	return a
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	// Try to enqueue the command but avoid blocking UI indefinitely. If the
	// channel stays full for the configured short timeout, drop and log.
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping command")
	}
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			switch cmd.Type {
			case control.CmdActivated:
				a.counts[cmd.Name]++
				a.total++
				log.Printf("Activated %q (%d total)", cmd.Name, a.total)
				a.PlayChime(cmd.ToneHz)
				a.updateTally()
			case control.CmdResetTally:
				a.counts = make(map[string]int)
				a.total = 0
				a.updateTally()
			}
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

func (a *AppManager) updateTally() {
	total := a.total
	fyne.Do(func() {
		if a.tallyLabel != nil {
			a.tallyLabel.SetText(fmt.Sprintf("%s: %d", i18n.T("Activations"), total))
		}
	})
}

func (a *AppManager) initAudio() {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return
	}
	a.audioOK = true
}

// PlayChime plays the activation chime at the given frequency.
func (a *AppManager) PlayChime(hz float64) {
	if !a.audioOK || hz <= 0 {
		return
	}

	a.speakerLock.Lock()
	defer a.speakerLock.Unlock()

	speaker.Play(NewChime(hz, 250*time.Millisecond))
}

// ShowInfoDialog shows a dialog with the given title and the language-keyed
// content from the given embedded JSON file.
func (a *AppManager) ShowInfoDialog(title, contentFile string, minSize fyne.Size) {
	bytes, err := a.content.ReadFile(contentFile)
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	var dialogues map[string]string
	if err := json.Unmarshal(bytes, &dialogues); err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}
	contentText, ok := dialogues[i18n.GetLang()]
	if !ok {
		contentText = dialogues["en"]
	}

	text := widget.NewLabel(contentText)
	text.Wrapping = fyne.TextWrapWord

	scrollableContent := container.NewVScroll(text)
	scrollableContent.SetMinSize(minSize)

	dialog.ShowCustom(title, i18n.T("Close"), scrollableContent, a.mainWindow)
}

// SetTallyLabel sets the activation tally label widget.
func (a *AppManager) SetTallyLabel(l *widget.Label) {
	a.tallyLabel = l
}

// Shutdown attempts to gracefully stop the AppManager command loop. It
// cancels the internal context and allows background goroutines to exit.
func (a *AppManager) Shutdown() {
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
}
