// Package period derives the coarse day period from the hour and detects
// transitions between periods.
package period

import "sync"

// Period is one of four coarse buckets of the day.
type Period int

const (
	Morning Period = iota
	Afternoon
	Evening
	Night
)

// Of returns the period for an hour in 0..23.
func Of(hour int) Period {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// String returns the lower-case name, used as the display class.
func (p Period) String() string {
	switch p {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	case Night:
		return "night"
	}
	return ""
}

// Emoji returns the symbol shown in the period box.
func (p Period) Emoji() string {
	switch p {
	case Morning:
		return "🌅"
	case Afternoon:
		return "🌞"
	case Evening:
		return "🌇"
	case Night:
		return "🌙"
	}
	return ""
}

// Indicator remembers the last computed period.
type Indicator struct {
	mu      sync.Mutex
	current Period
	seen    bool
}

// Update records the period for hour. chime is true only when a previous
// period was recorded and differs from the new one.
func (i *Indicator) Update(hour int) (p Period, chime bool) {
	p = Of(hour)

	i.mu.Lock()
	defer i.mu.Unlock()
	chime = i.seen && i.current != p
	i.current = p
	i.seen = true
	return p, chime
}

// Current returns the last recorded period and whether one was recorded.
func (i *Indicator) Current() (Period, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.current, i.seen
}
