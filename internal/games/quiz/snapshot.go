package quiz

// Snapshot is the quiz view-model after the latest transition.
type Snapshot struct {
	StageIndex int
	StageCount int
	StageName  string
	Prompt     string
	Options    []string
	Cursor     int
	Outcome    Outcome
	Complete   bool
}

// Snapshot returns the current quiz view-model.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		StageIndex: g.session.StageIndex(),
		StageCount: len(g.stages),
		Cursor:     g.cursor,
		Outcome:    g.session.Outcome(),
		Complete:   g.session.Phase() == PhaseComplete,
	}
	if stage, ok := g.session.Current(); ok {
		snap.StageName = stage.Name
		snap.Prompt = stage.Prompt
		snap.Options = stage.Options
	}
	return snap
}
