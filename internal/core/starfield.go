package core

import (
	"math"
	"math/rand"
	"time"
)

// TwinklePeriod is the length of one fade-out/fade-in cycle of a star.
const TwinklePeriod = 3 * time.Second

// Twinkle is one decorative background star.
type Twinkle struct {
	Pos   Point         // Position in percent of the field
	Phase time.Duration // Offset into the twinkle cycle
}

// StarField is a set of twinkling background stars.
type StarField struct {
	stars []Twinkle
}

// NewStarField scatters count stars using the given seed.
func NewStarField(count int, seed int64) StarField {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Twinkle, count)
	for i := range stars {
		stars[i] = Twinkle{
			Pos:   Point{X: rng.Float64() * 100, Y: rng.Float64() * 100},
			Phase: time.Duration(rng.Int63n(int64(TwinklePeriod))),
		}
	}
	return StarField{stars: stars}
}

// Stars returns the stars in the field.
func (f StarField) Stars() []Twinkle {
	return f.stars
}

// Brightness returns a star's brightness in [0.2, 1] at time now.
// It cycles smoothly between dim and bright once per TwinklePeriod.
func (t Twinkle) Brightness(now time.Duration) float64 {
	phase := float64((now+t.Phase)%TwinklePeriod) / float64(TwinklePeriod)
	return 0.6 + 0.4*math.Cos(2*math.Pi*phase)
}

// Render draws the field into area at time now.
func (f StarField) Render(dst *Screen, area Rect, now time.Duration) {
	for _, s := range f.stars {
		x, y := area.FromPercent(s.Pos)
		b := s.Brightness(now)
		switch {
		case b > 0.85:
			dst.SetColored(x, y, '*', ColorBrightWhite)
		case b > 0.5:
			dst.SetColored(x, y, '·', ColorWhite)
		default:
			dst.SetColored(x, y, '.', ColorDim)
		}
	}
}
