package stars

import "github.com/vovakirdan/mysteries/internal/core"

// Snapshot is the star map view-model after the latest transition.
type Snapshot struct {
	Discovered  []Discovery
	TargetCount int
	Crosshair   core.Point
	WrongClick  bool

	OverlayOpen bool
	Overlay     Target
	TapAt       core.Point
	Cursor      int
	HintVisible bool

	CompletionPending bool
	Complete          bool
}

// Snapshot returns the current star map view-model.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Discovered:        append([]Discovery(nil), g.session.Discovered()...),
		TargetCount:       len(g.targets),
		Crosshair:         g.crosshair,
		WrongClick:        g.session.WrongClick(),
		Cursor:            g.cursor,
		HintVisible:       g.session.HintVisible(),
		CompletionPending: g.session.CompletionPending(),
		Complete:          g.session.Complete(),
	}
	snap.Overlay, snap.TapAt, snap.OverlayOpen = g.session.Overlay()
	return snap
}
