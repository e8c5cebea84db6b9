// Package main contains the application wiring and the AppManager which
// owns the widget state and the loop that drives it.
//
// Maintenance notes / tips:
//   - Concurrency model: every state mutation happens on the goroutine running
//     `Run`. It selects over UI commands, the 10ms stopwatch ticker (only
//     present while the stopwatch runs) and the 1s wall-clock ticker. Timer
//     callbacks such as the 300ms date flip never touch state directly; they
//     post a command back onto `cmdCh`.
//   - `cmdCh` is buffered. EnqueueCommand drops a command if the loop does not
//     accept it within a short timeout, so the UI never blocks for long.
//   - All scheduling goes through a clockwork.Clock. Tests drive the loop with
//     a fake clock; production uses the real one.
//   - The view handed to the Renderer is rebuilt from scratch after each
//     change (see buildView), so rendering never reads half-updated state.
package main

import (
	"context"
	"encoding/json"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"Chronodesk/calendar"
	"Chronodesk/config"
	"Chronodesk/control"
	"Chronodesk/dial"
	"Chronodesk/i18n"
	"Chronodesk/period"
	"Chronodesk/sound"
	"Chronodesk/stopwatch"
	"Chronodesk/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"
)

// StopwatchInterval is the stopwatch tick period.
const StopwatchInterval = 10 * time.Millisecond

// WallInterval is the clock, date and day-period refresh period.
const WallInterval = time.Second

// Renderer receives a complete view after every state change.
type Renderer interface {
	Render(ui.View)
}

// SoundPlayer plays clips on a best-effort basis.
type SoundPlayer interface {
	Play(sound.Clip)
	SetVolume(float64)
	SetMuted(bool)
}

// QuoteSource supplies the quote box.
type QuoteSource interface {
	Next() string
	Current() string
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	content    fs.FS
	clock      clockwork.Clock
	renderer   Renderer
	player     SoundPlayer
	quotes     QuoteSource

	soundCfg  config.SoundConfig
	soundLock sync.RWMutex

	stopwatch *stopwatch.Stopwatch
	panel     *calendar.Panel
	periods   period.Indicator
	hands     dial.Hands

	cmdCh chan control.Command

	// only touched by the Run goroutine
	swTicker clockwork.Ticker
}

// NewAppManager creates a new application manager.
func NewAppManager(content fs.FS, clock clockwork.Clock, player SoundPlayer, quotes QuoteSource) *AppManager {
	return &AppManager{
		content:   content,
		clock:     clock,
		player:    player,
		quotes:    quotes,
		soundCfg:  config.DefaultConfig().Sound,
		stopwatch: stopwatch.New(),
		panel:     calendar.NewPanel(),
		cmdCh:     make(chan control.Command, 256),
	}
}

// SetRenderer sets the render target. Must be called before Run.
func (a *AppManager) SetRenderer(r Renderer) {
	a.renderer = r
}

// ApplySoundConfig updates which clips play and at what volume.
func (a *AppManager) ApplySoundConfig(cfg config.SoundConfig) {
	a.soundLock.Lock()
	a.soundCfg = cfg
	a.soundLock.Unlock()

	a.player.SetMuted(cfg.Muted)
	a.player.SetVolume(cfg.Volume)
}

func (a *AppManager) soundConfig() config.SoundConfig {
	a.soundLock.RLock()
	defer a.soundLock.RUnlock()
	return a.soundCfg
}

// EnqueueCommand posts a command to the loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	// Try to enqueue the command but avoid blocking UI indefinitely. If the
	// channel stays full for the configured short timeout, drop and log.
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping %s command", cmd.Type)
	}
}

// Run shows the initial state and then processes commands and ticks until
// ctx is done.
func (a *AppManager) Run(ctx context.Context) {
	a.quotes.Next()
	a.updateDate()
	a.updateClock()
	a.render()

	wall := a.clock.NewTicker(WallInterval)
	defer wall.Stop()
	defer a.stopTicker()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-a.cmdCh:
			a.handle(cmd)
			a.render()
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		case <-a.stopwatchTicks():
			a.stopwatch.Tick()
			a.render()
		case <-wall.Chan():
			a.updateDate()
			a.updateClock()
			a.render()
		}
	}
}

func (a *AppManager) handle(cmd control.Command) {
	switch cmd.Type {
	case control.CmdStart:
		a.start()
	case control.CmdPause:
		a.pause()
	case control.CmdToggle:
		if a.stopwatch.GetState() == stopwatch.StateRunning {
			a.pause()
		} else {
			a.start()
		}
	case control.CmdReset:
		a.stopTicker()
		a.stopwatch.Reset()
		a.quotes.Next()
	case control.CmdLap:
		if _, ok := a.stopwatch.RecordLap(); ok {
			a.quotes.Next()
		}
	case control.CmdSettle:
		a.panel.Settle(cmd.Field, cmd.Value)
	}
}

func (a *AppManager) start() {
	// Start is a no-op while running, so a second ticker is never created.
	if a.stopwatch.Start() {
		a.swTicker = a.clock.NewTicker(StopwatchInterval)
	}
}

func (a *AppManager) pause() {
	if a.stopwatch.Pause() {
		a.stopTicker()
	}
}

func (a *AppManager) stopTicker() {
	if a.swTicker != nil {
		a.swTicker.Stop()
		a.swTicker = nil
	}
}

func (a *AppManager) stopwatchTicks() <-chan time.Time {
	if a.swTicker == nil {
		return nil
	}
	return a.swTicker.Chan()
}

func (a *AppManager) updateDate() {
	now := a.clock.Now()
	for _, c := range a.panel.Update(now) {
		cmd := control.Command{Type: control.CmdSettle, Field: c.Field, Value: c.Value}
		a.clock.AfterFunc(calendar.FlipDelay, func() {
			a.EnqueueCommand(cmd)
		})
	}

	if _, chime := a.periods.Update(now.Hour()); chime && a.soundConfig().TransitionChime {
		a.player.Play(sound.ClipBip)
	}
}

func (a *AppManager) updateClock() {
	a.hands = dial.At(a.clock.Now())
	if a.soundConfig().AmbientTick {
		a.player.Play(sound.ClipTick)
	}
}

func (a *AppManager) render() {
	if a.renderer == nil {
		return
	}
	p, _ := a.periods.Current()
	a.renderer.Render(buildView(a.stopwatch.GetSnapshot(), a.panel.Boxes(), p, a.quotes.Current(), a.hands))
}

// buildView turns the application state into what the board shows.
func buildView(sw stopwatch.Snapshot, boxes [4]calendar.Box, p period.Period, quote string, hands dial.Hands) ui.View {
	v := ui.View{
		Digits:      sw.Elapsed.Fields(),
		Running:     sw.State == stopwatch.StateRunning,
		Paused:      sw.State == stopwatch.StatePaused,
		Quote:       quote,
		Period:      p.String(),
		PeriodEmoji: p.Emoji(),
		Hands:       hands,
		Labels: ui.Labels{
			Start: i18n.T("Start"),
			Pause: i18n.T("Pause"),
			Reset: i18n.T("Reset"),
			Lap:   i18n.T("Lap"),
		},
	}
	for _, lap := range sw.Laps {
		v.Laps = append(v.Laps, i18n.Tf("Lap %d: %s", lap.Index, lap.Time.String()))
	}
	for i := 0; i < 3; i++ {
		v.Date[i] = ui.DateBox{Text: boxes[i].Text, Flipping: boxes[i].Flipping}
	}
	wd := boxes[calendar.FieldWeekday]
	v.Weekday = ui.DateBox{Text: i18n.T(wd.Text), Flipping: wd.Flipping}
	return v
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		a.EnqueueCommand(control.Command{Type: control.CmdToggle})
	case 'l', 'L':
		a.EnqueueCommand(control.Command{Type: control.CmdLap})
	case 'r', 'R':
		a.EnqueueCommand(control.Command{Type: control.CmdReset})
	}
}

// ShowInfoDialog shows the about text in the current language.
func (a *AppManager) ShowInfoDialog(title string, minSize fyne.Size) {
	bytes, err := fs.ReadFile(a.content, "assets/about.json")
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

// loadAudioFiles decodes the tick and bip clips, preferring the paths from
// the config file and falling back to the embedded assets.
func loadAudioFiles(p *sound.Player, content fs.FS, cfg config.SoundConfig) {
	clips := []struct {
		clip     sound.Clip
		override string
		embedded string
	}{
		{sound.ClipTick, cfg.TickPath, "assets/tick.wav"},
		{sound.ClipBip, cfg.BipPath, "assets/bip.wav"},
	}

	for _, c := range clips {
		if c.override != "" {
			f, err := os.Open(c.override)
			if err == nil {
				err = p.Load(c.clip, c.override, f)
			}
			if err == nil {
				log.Printf("Loaded %s sound from %s", c.clip, c.override)
				continue
			}
			log.Printf("Failed to load audio %s: %v", c.override, err)
		}

		if err := p.LoadFS(content, c.clip, c.embedded); err != nil {
			log.Printf("Failed to load audio %s: %v", c.embedded, err)
			continue
		}
		log.Printf("Loaded %s sound from %s", c.clip, c.embedded)
	}
}
