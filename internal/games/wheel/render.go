package wheel

import (
	"math"

	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/random"
)

// Wedge colors, cycled clockwise from the top.
var wedgeColors = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorGold,
	core.ColorWhite,
}

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Render draws the wheel at its current angle with the pointer on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	dst.DrawTextCenteredColored(0, "✦ FORTUNE WHEEL ✦", core.ColorGold)

	cx, cy := w/2, h/2-1
	radius := float64(min(h/2-3, (w/2-2)/int(cellAspect)))
	if radius < 2 {
		radius = 2
	}

	angle := g.session.Angle()
	g.renderWheel(dst, cx, cy, radius, angle)
	dst.SetColored(cx, cy-int(radius)-1, '▼', core.ColorBrightWhite)

	statusY := cy + int(radius) + 2
	switch g.session.Status() {
	case StatusIdle:
		dst.DrawTextCenteredColored(statusY, "Press Enter to spin the wheel of Fortuna", core.ColorWhite)
	case StatusSpinning:
		dst.DrawTextCenteredColored(statusY, "The wheel turns...", core.ColorYellow)
	case StatusSettled:
		if fortune, ok := g.session.Revealed(); ok {
			dst.DrawTextCenteredColored(statusY, "✨ "+fortune+" ✨", core.ColorBrightYellow)
		}
	}

	dst.DrawTextCenteredColored(h-1, "Enter/Click: Spin  |  B: Back to Menu", core.ColorGray)
}

// renderWheel fills a disc of wedges rotated clockwise by angle degrees.
// Wedges carry colors only: rotation accumulates across spins, so after the
// first spin the wedge under the pointer is not the one revealed.
func (g *Game) renderWheel(dst *core.Screen, cx, cy int, radius, angle float64) {
	n := len(g.fortunes)
	a := random.AnglePerOutcome(n)
	r := int(radius)

	for dy := -r; dy <= r; dy++ {
		for dx := -r * int(cellAspect); dx <= r*int(cellAspect); dx++ {
			fx := float64(dx) / cellAspect
			fy := float64(dy)
			d := math.Hypot(fx, fy)
			if d > radius {
				continue
			}
			// Clockwise from the top, in the wheel's own frame
			phi := math.Atan2(fx, -fy) * 180 / math.Pi
			wedge := int(random.Mod360(phi-angle) / a)
			if wedge >= n {
				wedge = n - 1
			}
			ch := '░'
			if d > radius-1 {
				ch = '█'
			}
			dst.SetColored(cx+dx, cy+dy, ch, wedgeColors[wedge%len(wedgeColors)])
		}
	}

	dst.SetColored(cx, cy, '●', core.ColorBrightWhite)
}
