package wheel

// Snapshot is the wheel view-model after the latest transition.
type Snapshot struct {
	Status   Status
	Angle    float64
	Rotation float64
	Pointer  int // Wedge under the pointer; matches the pick only on a visit's first spin
	Fortune  string
	Revealed bool
}

// Snapshot returns the current wheel view-model.
func (g *Game) Snapshot() Snapshot {
	angle := g.session.Angle()
	snap := Snapshot{
		Status:   g.session.Status(),
		Angle:    angle,
		Rotation: g.session.Rotation(),
		Pointer:  PointerWedge(angle, len(g.fortunes)),
	}
	snap.Fortune, snap.Revealed = g.session.Revealed()
	return snap
}
