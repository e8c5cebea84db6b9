package stopwatch

import (
	"fmt"
	"time"
)

// Elapsed holds the stopwatch counters. Hundredths wrap at 100, seconds and
// minutes at 60; hours are unbounded.
type Elapsed struct {
	Hours      int
	Minutes    int
	Seconds    int
	Hundredths int
}

// Advance returns e moved forward by one hundredth of a second.
func (e Elapsed) Advance() Elapsed {
	e.Hundredths++
	if e.Hundredths == 100 {
		e.Hundredths = 0
		e.Seconds++
	}
	if e.Seconds == 60 {
		e.Seconds = 0
		e.Minutes++
	}
	if e.Minutes == 60 {
		e.Minutes = 0
		e.Hours++
	}
	return e
}

// IsZero reports whether every counter is zero.
func (e Elapsed) IsZero() bool {
	return e == Elapsed{}
}

// Centis returns the elapsed time in hundredths of a second.
func (e Elapsed) Centis() int64 {
	return ((int64(e.Hours)*60+int64(e.Minutes))*60+int64(e.Seconds))*100 + int64(e.Hundredths)
}

// Duration converts e into a time.Duration.
func (e Elapsed) Duration() time.Duration {
	return time.Duration(e.Centis()) * 10 * time.Millisecond
}

// Fields returns hours, minutes, seconds and hundredths as two-character text.
func (e Elapsed) Fields() [4]string {
	return [4]string{Pad(e.Hours), Pad(e.Minutes), Pad(e.Seconds), Pad(e.Hundredths)}
}

// String formats e as hh:mm:ss:cc.
func (e Elapsed) String() string {
	f := e.Fields()
	return fmt.Sprintf("%s:%s:%s:%s", f[0], f[1], f[2], f[3])
}

// Pad renders a counter zero-padded to at least two digits.
func Pad(n int) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%02d", n)
}
