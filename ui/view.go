package ui

import "Chronodesk/dial"

// DateBox is the rendered state of one date panel field.
type DateBox struct {
	Text     string
	Flipping bool
}

// Labels are the translated button captions.
type Labels struct {
	Start string
	Pause string
	Reset string
	Lap   string
}

// View is everything the board shows. It is built from the application
// state after every change and applied as a whole by Board.Render.
type View struct {
	Digits  [4]string // hours, minutes, seconds, hundredths
	Running bool
	Paused  bool
	Laps    []string

	Quote string

	Date    [3]DateBox // day, month, year
	Weekday DateBox

	Period      string
	PeriodEmoji string

	Hands dial.Hands

	Labels Labels
}
