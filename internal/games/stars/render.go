package stars

import (
	"fmt"

	"github.com/vovakirdan/mysteries/internal/core"
)

const discoveredMarker = '✦'

// skyBorder is the frame around the sky; skyArea is its interior.
func skyBorder(w, h int) core.Rect {
	return core.NewRect(0, 2, w, h-4)
}

func skyArea(w, h int) core.Rect {
	b := skyBorder(w, h)
	return core.NewRect(b.X+1, b.Y+1, b.W-2, b.H-2)
}

// overlayBox is the centred question panel.
func overlayBox(w, h, options int) core.Rect {
	bw := min(w-4, 64)
	bh := options + 7
	return core.NewRect((w-bw)/2, (h-bh)/2, bw, bh)
}

func optionsTop(box core.Rect) int {
	return box.Y + 4
}

// Render draws the sky, the discoveries, and the quiz overlay when open.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	// Clicks are mapped against the last drawn layout
	g.screenW, g.screenH = w, h
	dst.DrawTextCenteredColored(0, "✦ STARRY SKY MYSTERY ✦", core.ColorGold)

	if g.session.Complete() {
		mid := h / 2
		dst.DrawTextCenteredColored(mid-1, "🌌 "+g.finalTitle+" 🌌", core.ColorBrightYellow)
		dst.DrawTextCentered(mid+1, g.finalText)
		dst.DrawTextCenteredColored(h-1, "B: Back to Menu", core.ColorGray)
		return
	}

	target, _, open := g.session.Overlay()

	found := fmt.Sprintf("Found %d/%d", len(g.session.Discovered()), len(g.targets))
	if !open {
		dst.DrawTextCenteredColored(1, instruction, core.ColorWhite)
	}
	dst.DrawTextColored(w-core.TextWidth(found)-1, 1, found, core.ColorYellow)

	borderColor := core.ColorGray
	if g.session.WrongClick() {
		borderColor = core.ColorBrightRed
	}
	dst.DrawBox(skyBorder(w, h), borderColor)

	sky := skyArea(w, h)
	g.field.Render(dst, sky, g.timers.Now())

	for _, d := range g.session.Discovered() {
		x, y := sky.FromPercent(d.At)
		dst.SetColored(x, y, discoveredMarker, core.ColorGold)
		label := d.Name
		if x+2+core.TextWidth(label) > sky.Right() {
			dst.DrawTextColored(x-1-core.TextWidth(label), y, label, core.ColorYellow)
		} else {
			dst.DrawTextColored(x+2, y, label, core.ColorYellow)
		}
	}

	if open {
		g.renderOverlay(dst, target)
		dst.DrawTextCenteredColored(h-1, "Up/Down: Choose  |  Enter: Answer  |  1-3: Quick pick  |  B: Menu", core.ColorGray)
		return
	}

	if !g.session.CompletionPending() {
		x, y := sky.FromPercent(g.crosshair)
		dst.SetColored(x, y, '+', core.ColorBrightWhite)
	}
	dst.DrawTextCenteredColored(h-1, "Arrows: Move  |  Enter/Click: Look here  |  B: Menu", core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen, target Target) {
	box := overlayBox(dst.Width(), dst.Height(), len(target.Options))
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorGold)

	centre := func(y int, text string, c core.Color) {
		x := box.X + (box.W-core.TextWidth(text))/2
		dst.DrawTextColored(x, y, text, c)
	}

	centre(box.Y+1, "✦ "+target.Name+" ✦", core.ColorGold)
	centre(box.Y+2, target.Prompt, core.ColorWhite)

	for i, opt := range target.Options {
		line := fmt.Sprintf("  %d. %s  ", i+1, opt)
		color := core.ColorDefault
		if i == g.cursor {
			line = fmt.Sprintf("> %d. %s <", i+1, opt)
			color = core.ColorBrightWhite
		}
		centre(optionsTop(box)+i, line, color)
	}

	if g.session.HintVisible() {
		centre(box.Bottom()-2, g.hintText, core.ColorYellow)
	}
}
