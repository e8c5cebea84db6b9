package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// periodAccents maps a day-period class to the accent colour it gives the
// window.
var periodAccents = map[string]color.NRGBA{
	"morning":   {R: 0xf5, G: 0xa6, B: 0x23, A: 0xff},
	"afternoon": {R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff},
	"evening":   {R: 0xe0, G: 0x6c, B: 0x4f, A: 0xff},
	"night":     {R: 0x5b, G: 0x7d, B: 0xd8, A: 0xff},
}

// CustomTheme is the default theme with a primary colour that follows the
// day period.
type CustomTheme struct {
	fyne.Theme
	mu     sync.RWMutex
	accent color.Color
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() *CustomTheme {
	return &CustomTheme{Theme: theme.DefaultTheme(), accent: periodAccents["morning"]}
}

// Color returns the accent for primary-coloured elements.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		t.mu.RLock()
		defer t.mu.RUnlock()
		return t.accent
	}
	return t.Theme.Color(name, variant)
}

// SetPeriod switches the accent to the colour of the given period class and
// reports whether it changed.
func (t *CustomTheme) SetPeriod(class string) bool {
	c, ok := periodAccents[class]
	if !ok {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.accent == c {
		return false
	}
	t.accent = c
	return true
}

// Accent returns the current accent colour.
func (t *CustomTheme) Accent() color.Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.accent
}
