// Package dial computes the rotation of the analog clock hands.
package dial

import (
	"math"
	"time"
)

// BaseRotation turns a hand that rests pointing at 9 o'clock up to 12.
const BaseRotation = 90.0

// Hands holds the rotation of each hand in degrees, base rotation included.
type Hands struct {
	Second float64
	Minute float64
	Hour   float64
}

// At returns the hand rotations for the wall-clock time t.
func At(t time.Time) Hands {
	s := float64(t.Second())
	m := float64(t.Minute())
	h := float64(t.Hour() % 12)
	return Hands{
		Second: s/60*360 + BaseRotation,
		Minute: m/60*360 + s/60*6 + BaseRotation,
		Hour:   h/12*360 + m/60*30 + BaseRotation,
	}
}

// Tip returns the end point of a hand of the given length anchored at
// (cx, cy) and rotated clockwise by deg. Screen y grows downwards.
func Tip(cx, cy, length float32, deg float64) (float32, float32) {
	rad := deg * math.Pi / 180
	x := float64(cx) - float64(length)*math.Cos(rad)
	y := float64(cy) - float64(length)*math.Sin(rad)
	return float32(x), float32(y)
}
