package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/registry"
)

const (
	menuTitle    = "✦ MYSTERIES OF MITHRAS ✦"
	menuSubtitle = "Choose your path, initiate"
	menuFirstRow = 8 // Row of the first menu entry
	menuRowStep  = 2
)

// menuItemRow returns the screen row of menu entry i.
func menuItemRow(i int) int {
	return menuFirstRow + i*menuRowStep
}

// menuItemAt returns the entry drawn on row y, or -1.
func menuItemAt(y, count int) int {
	for i := range count {
		if menuItemRow(i) == y {
			return i
		}
	}
	return -1
}

// renderMenu draws the game picker over a twinkling sky.
func renderMenu(dst *core.Screen, items []registry.GameInfo, cursor int, field core.StarField, now time.Duration, journal bool) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	field.Render(dst, core.NewRect(0, 0, w, h), now)

	dst.DrawTextCenteredColored(3, menuTitle, core.ColorGold)
	dst.DrawTextCenteredColored(5, menuSubtitle, core.ColorWhite)

	widest := 0
	for _, it := range items {
		widest = max(widest, core.TextWidth(it.Title))
	}
	box := core.NewRect((w-widest-12)/2, menuFirstRow-1, widest+12, len(items)*menuRowStep+1)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorGold)

	for i, it := range items {
		line := fmt.Sprintf("  %d. %s  ", i+1, it.Title)
		color := core.ColorYellow
		if i == cursor {
			line = fmt.Sprintf("> %d. %s <", i+1, it.Title)
			color = core.ColorBrightWhite
		}
		dst.DrawTextCenteredColored(menuItemRow(i), line, color)
	}

	footer := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	if journal {
		footer = "Up/Down: Navigate  |  Enter: Select  |  Tab: Journal  |  Q: Quit"
	}
	dst.DrawTextCenteredColored(h-1, footer, core.ColorGray)
}
