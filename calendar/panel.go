// Package calendar tracks the flip-style date panel: day, month, two-digit
// year and short weekday name.
//
// Each field is compared with the last value seen; only changed fields
// start a flip. The caller schedules the flip timer and calls Settle when it
// fires, so the panel itself never touches a clock.
package calendar

import (
	"fmt"
	"sync"
	"time"
)

// FlipDelay is how long a field shows its transient flip state before the
// new text is put in place.
const FlipDelay = 300 * time.Millisecond

// Field identifies one box of the date panel.
type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
	FieldWeekday
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldDay:
		return "day"
	case FieldMonth:
		return "month"
	case FieldYear:
		return "year"
	case FieldWeekday:
		return "weekday"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Values returns the text of every field for t. The weekday is the English
// short name; translation happens at render time.
func Values(t time.Time) [4]string {
	return [4]string{
		fmt.Sprintf("%02d", t.Day()),
		fmt.Sprintf("%02d", int(t.Month())),
		fmt.Sprintf("%02d", t.Year()%100),
		t.Weekday().String()[:3],
	}
}

// Change is a field whose value differs from the previously recorded one.
type Change struct {
	Field Field
	Value string
}

// Box is the rendered state of one field.
type Box struct {
	Text     string
	Flipping bool
}

// Panel holds the last computed value and the rendered box of each field.
type Panel struct {
	mu    sync.RWMutex
	prev  [fieldCount]string
	boxes [fieldCount]Box
}

// NewPanel returns a panel with every field empty, so the first Update
// flips all four.
func NewPanel() *Panel {
	return &Panel{}
}

// Update recomputes the fields for now and starts a flip on each one that
// changed. Unchanged fields are left untouched.
func (p *Panel) Update(now time.Time) []Change {
	vals := Values(now)

	p.mu.Lock()
	defer p.mu.Unlock()
	var changes []Change
	for i, v := range vals {
		if v == p.prev[i] {
			continue
		}
		p.prev[i] = v
		p.boxes[i].Flipping = true
		changes = append(changes, Change{Field: Field(i), Value: v})
	}
	return changes
}

// Settle puts value in place for field and clears its flip state.
func (p *Panel) Settle(field Field, value string) {
	if field < 0 || field >= fieldCount {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.boxes[field] = Box{Text: value}
}

// Boxes returns the rendered state of every field.
func (p *Panel) Boxes() [4]Box {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.boxes
}
