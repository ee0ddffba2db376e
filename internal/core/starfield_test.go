package core

import (
	"testing"
	"time"
)

func TestStarFieldDeterministic(t *testing.T) {
	a := NewStarField(40, 7)
	b := NewStarField(40, 7)

	if len(a.Stars()) != 40 {
		t.Fatalf("len(Stars()) = %d, expected 40", len(a.Stars()))
	}
	for i := range a.Stars() {
		if a.Stars()[i] != b.Stars()[i] {
			t.Fatalf("star %d differs for the same seed", i)
		}
		p := a.Stars()[i].Pos
		if p.X < 0 || p.X >= 100 || p.Y < 0 || p.Y >= 100 {
			t.Errorf("star %d out of field: %+v", i, p)
		}
	}
}

func TestTwinkleBrightnessCycle(t *testing.T) {
	s := Twinkle{}

	if got := s.Brightness(0); got < 0.999 {
		t.Errorf("Brightness(0) = %v, expected full brightness", got)
	}
	if got := s.Brightness(TwinklePeriod / 2); got > 0.201 {
		t.Errorf("Brightness(half period) = %v, expected dimmest", got)
	}
	if a, b := s.Brightness(time.Second), s.Brightness(time.Second+TwinklePeriod); a != b {
		t.Errorf("brightness should repeat every period: %v vs %v", a, b)
	}
}

func TestStarFieldRenderStaysInArea(t *testing.T) {
	dst := NewScreen(30, 10)
	area := NewRect(5, 2, 20, 6)
	NewStarField(100, 1).Render(dst, area, 0)

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if dst.Get(x, y) != ' ' && !area.Contains(x, y) {
				t.Fatalf("star drawn outside area at (%d, %d)", x, y)
			}
		}
	}
}
