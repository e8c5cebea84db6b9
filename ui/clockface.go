package ui

import (
	"image/color"

	"Chronodesk/dial"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// ClockFace draws the analog clock: a dial, twelve hour marks and three
// hands positioned from dial.Hands.
type ClockFace struct {
	size   float32
	object fyne.CanvasObject

	face   *canvas.Circle
	hour   *canvas.Line
	minute *canvas.Line
	second *canvas.Line
}

// NewClockFace creates a face of the given diameter.
func NewClockFace(size float32, accent color.Color) *ClockFace {
	cf := &ClockFace{size: size}
	c := size / 2

	cf.face = canvas.NewCircle(BackgroundColor)
	cf.face.StrokeColor = accent
	cf.face.StrokeWidth = 3
	cf.face.Position1 = fyne.NewPos(2, 2)
	cf.face.Position2 = fyne.NewPos(size-2, size-2)

	objects := []fyne.CanvasObject{cf.face}
	for i := 0; i < 12; i++ {
		deg := float64(i)*30 + dial.BaseRotation
		mark := canvas.NewLine(color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff})
		mark.StrokeWidth = 2
		x1, y1 := dial.Tip(c, c, c*0.78, deg)
		x2, y2 := dial.Tip(c, c, c*0.9, deg)
		mark.Position1 = fyne.NewPos(x1, y1)
		mark.Position2 = fyne.NewPos(x2, y2)
		objects = append(objects, mark)
	}

	cf.hour = newHand(color.White, 5)
	cf.minute = newHand(color.White, 3)
	cf.second = newHand(accent, 1.5)
	objects = append(objects, cf.hour, cf.minute, cf.second)

	sizeEnforcer := canvas.NewRectangle(color.Transparent)
	sizeEnforcer.SetMinSize(fyne.NewSize(size, size))
	cf.object = container.New(layout.NewCenterLayout(),
		container.NewStack(sizeEnforcer, container.NewWithoutLayout(objects...)))

	cf.SetHands(dial.Hands{Second: dial.BaseRotation, Minute: dial.BaseRotation, Hour: dial.BaseRotation})
	return cf
}

func newHand(c color.Color, width float32) *canvas.Line {
	l := canvas.NewLine(c)
	l.StrokeWidth = width
	return l
}

// CanvasObject returns the object to place in a layout.
func (cf *ClockFace) CanvasObject() fyne.CanvasObject {
	return cf.object
}

// SetHands moves the hands. Must run on the fyne goroutine.
func (cf *ClockFace) SetHands(h dial.Hands) {
	c := cf.size / 2
	place(cf.hour, c, c*0.5, h.Hour)
	place(cf.minute, c, c*0.72, h.Minute)
	place(cf.second, c, c*0.82, h.Second)
}

// SetAccent recolours the rim and the second hand.
func (cf *ClockFace) SetAccent(accent color.Color) {
	cf.face.StrokeColor = accent
	cf.second.StrokeColor = accent
	cf.face.Refresh()
	cf.second.Refresh()
}

func place(l *canvas.Line, c, length float32, deg float64) {
	x, y := dial.Tip(c, c, length, deg)
	l.Position1 = fyne.NewPos(c, c)
	l.Position2 = fyne.NewPos(x, y)
	l.Refresh()
}
