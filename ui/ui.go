package ui

import (
	"image/color"

	"Chronodesk/control"
	"Chronodesk/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// UI constants
const (
	FontSizeDigits float32 = 40.0
	FontSizeDate   float32 = 22.0
	FontSizeEmoji  float32 = 30.0

	// Dimensions
	ClockSize      = 180
	DateBoxWidth   = 54
	DateBoxHeight  = 40
	LapListHeight  = 120
	QuoteMinHeight = 64
	ControlsGap    = 5
	CornerRadius   = 10.0
)

var (
	// BackgroundColor is the base background color for boxes.
	BackgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	// FlipColor tints a date box while its text is being replaced.
	FlipColor = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}

	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	fadedColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	digitColors = [4]color.Color{textColor, textColor, textColor, color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}}
)

// App is what the board needs from the application.
type App interface {
	EnqueueCommand(cmd control.Command)
	HandleKeyRune(rune)
	ShowInfoDialog(title string, minSize fyne.Size)
}

// Board holds every render target of the window. Render is the only way its
// contents change.
type Board struct {
	fyneApp fyne.App
	theme   *CustomTheme

	digits [4]*canvas.Text

	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	lapButton   *widget.Button

	lapList   *fyne.Container
	lapScroll *container.Scroll
	lapCount  int

	quoteLabel *widget.Label

	dateTexts [4]*canvas.Text
	dateRects [4]*canvas.Rectangle

	periodText *canvas.Text
	periodRect *canvas.Rectangle
	period     string

	clock *ClockFace
}

// NewBoard builds every widget. Nothing is shown until Render is called.
func NewBoard(a App, fyneApp fyne.App, th *CustomTheme) *Board {
	b := &Board{fyneApp: fyneApp, theme: th}

	for i := range b.digits {
		t := canvas.NewText("00", digitColors[i])
		t.TextSize = FontSizeDigits
		t.TextStyle.Monospace = true
		b.digits[i] = t
	}

	b.startButton = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdStart})
	})
	b.pauseButton = widget.NewButtonWithIcon(i18n.T("Pause"), theme.MediaPauseIcon(), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdPause})
	})
	b.resetButton = widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaReplayIcon(), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdReset})
	})
	b.lapButton = widget.NewButtonWithIcon(i18n.T("Lap"), theme.ContentAddIcon(), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdLap})
	})

	b.lapList = container.NewVBox()
	b.lapScroll = container.NewVScroll(b.lapList)
	b.lapScroll.SetMinSize(fyne.NewSize(0, LapListHeight))

	b.quoteLabel = widget.NewLabel("")
	b.quoteLabel.Wrapping = fyne.TextWrapWord
	b.quoteLabel.Alignment = fyne.TextAlignCenter
	b.quoteLabel.TextStyle.Italic = true

	for i := range b.dateTexts {
		t := canvas.NewText("", textColor)
		t.TextSize = FontSizeDate
		t.TextStyle.Bold = true
		t.Alignment = fyne.TextAlignCenter
		b.dateTexts[i] = t

		r := canvas.NewRectangle(BackgroundColor)
		r.CornerRadius = CornerRadius
		r.SetMinSize(fyne.NewSize(DateBoxWidth, DateBoxHeight))
		b.dateRects[i] = r
	}
	b.dateRects[3].SetMinSize(fyne.NewSize(DateBoxWidth*1.3, DateBoxHeight))

	b.periodText = canvas.NewText("", textColor)
	b.periodText.TextSize = FontSizeEmoji
	b.periodText.Alignment = fyne.TextAlignCenter
	b.periodRect = canvas.NewRectangle(BackgroundColor)
	b.periodRect.CornerRadius = CornerRadius
	b.periodRect.SetMinSize(fyne.NewSize(DateBoxHeight*1.4, DateBoxHeight*1.4))

	b.clock = NewClockFace(ClockSize, th.Accent())
	return b
}

// Render applies v to the widgets on the fyne goroutine.
func (b *Board) Render(v View) {
	fyne.Do(func() {
		b.apply(v)
	})
}

func (b *Board) apply(v View) {
	for i, d := range v.Digits {
		if b.digits[i].Text != d {
			b.digits[i].Text = d
			b.digits[i].Refresh()
		}
	}

	b.applyControls(v)

	if len(v.Laps) != b.lapCount {
		b.lapList.RemoveAll()
		for _, l := range v.Laps {
			b.lapList.Add(widget.NewLabel(l))
		}
		b.lapCount = len(v.Laps)
		b.lapScroll.ScrollToBottom()
	}

	if b.quoteLabel.Text != v.Quote {
		b.quoteLabel.SetText(v.Quote)
	}

	boxes := [4]DateBox{v.Date[0], v.Date[1], v.Date[2], v.Weekday}
	for i, box := range boxes {
		applyDateBox(b.dateTexts[i], b.dateRects[i], box)
	}

	if b.periodText.Text != v.PeriodEmoji {
		b.periodText.Text = v.PeriodEmoji
		b.periodText.Refresh()
	}
	if v.Period != b.period {
		b.period = v.Period
		if b.theme.SetPeriod(v.Period) {
			b.fyneApp.Settings().SetTheme(b.theme)
			b.clock.SetAccent(b.theme.Accent())
		}
		b.periodRect.FillColor = withAlpha(b.theme.Accent(), 0x55)
		b.periodRect.Refresh()
	}

	b.clock.SetHands(v.Hands)
}

func (b *Board) applyControls(v View) {
	b.startButton.SetText(v.Labels.Start)
	b.pauseButton.SetText(v.Labels.Pause)
	b.resetButton.SetText(v.Labels.Reset)
	b.lapButton.SetText(v.Labels.Lap)

	start, pause := widget.MediumImportance, widget.MediumImportance
	if v.Running {
		start = widget.HighImportance
	}
	if v.Paused {
		pause = widget.WarningImportance
	}
	if b.startButton.Importance != start {
		b.startButton.Importance = start
		b.startButton.Refresh()
	}
	if b.pauseButton.Importance != pause {
		b.pauseButton.Importance = pause
		b.pauseButton.Refresh()
	}
}

func applyDateBox(t *canvas.Text, r *canvas.Rectangle, box DateBox) {
	fill, fg := color.Color(BackgroundColor), color.Color(textColor)
	if box.Flipping {
		fill, fg = FlipColor, fadedColor
	}
	if t.Text != box.Text || t.Color != fg {
		t.Text = box.Text
		t.Color = fg
		t.Refresh()
	}
	if r.FillColor != fill {
		r.FillColor = fill
		r.Refresh()
	}
}

func (b *Board) buildStopwatch() fyne.CanvasObject {
	row := []fyne.CanvasObject{layout.NewSpacer()}
	for i, d := range b.digits {
		if i > 0 {
			sep := canvas.NewText(":", fadedColor)
			sep.TextSize = FontSizeDigits
			row = append(row, sep)
		}
		row = append(row, d)
	}
	row = append(row, layout.NewSpacer())

	buttons := container.NewHBox(
		layout.NewSpacer(),
		b.startButton, b.pauseButton, b.resetButton, b.lapButton,
		layout.NewSpacer(),
	)
	return container.NewVBox(container.NewHBox(row...), buttons, b.lapScroll)
}

func (b *Board) buildDatePanel() fyne.CanvasObject {
	items := []fyne.CanvasObject{layout.NewSpacer()}
	for i := range b.dateTexts {
		items = append(items, container.NewStack(b.dateRects[i], container.NewCenter(b.dateTexts[i])))
	}
	items = append(items, container.NewStack(b.periodRect, container.NewCenter(b.periodText)), layout.NewSpacer())
	return container.NewHBox(items...)
}

func (b *Board) buildQuote() fyne.CanvasObject {
	bg := canvas.NewRectangle(withAlpha(BackgroundColor, 0xaa))
	bg.CornerRadius = CornerRadius
	bg.SetMinSize(fyne.NewSize(0, QuoteMinHeight))
	return container.NewStack(bg, container.NewPadded(b.quoteLabel))
}

// CreateMainWindow builds the window around b.
func CreateMainWindow(a App, b *Board, width, height float32) fyne.Window {
	title := b.fyneApp.Metadata().Name
	if title == "" {
		title = "Chronodesk"
	}
	w := b.fyneApp.NewWindow(title)

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	aboutIcon := widget.NewIcon(theme.QuestionIcon())
	helpButton := NewTappableContainer(aboutIcon, func() {
		a.ShowInfoDialog(i18n.T("About Chronodesk"), fyne.NewSize(380, 300))
	}, nil)

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, ControlsGap))

	content := container.NewVBox(
		b.clock.CanvasObject(),
		b.buildDatePanel(),
		gap,
		b.buildStopwatch(),
		b.buildQuote(),
		container.NewHBox(helpButton, layout.NewSpacer()),
	)

	w.SetContent(container.NewPadded(content))
	w.Resize(fyne.NewSize(width, height))
	return w
}

type TappableContainer struct {
	widget.BaseWidget
	Content           fyne.CanvasObject
	OnTappedPrimary   func()
	OnTappedSecondary func(e *fyne.PointEvent)
}

func NewTappableContainer(c fyne.CanvasObject, onP func(), onS func(e *fyne.PointEvent)) *TappableContainer {
	t := &TappableContainer{
		Content:           c,
		OnTappedPrimary:   onP,
		OnTappedSecondary: onS,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(t.Content, layout.NewSpacer()))
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func (t *TappableContainer) TappedSecondary(e *fyne.PointEvent) {
	if t.OnTappedSecondary != nil {
		t.OnTappedSecondary(e)
	}
}

func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
