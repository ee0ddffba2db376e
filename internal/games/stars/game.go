// Package stars implements the Starry Sky Mystery: find the constellations
// of the Mithraic mysteries in a twinkling sky and answer a question for each.
package stars

import (
	"fmt"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/registry"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// ID is the registry identifier of the star map.
const ID = "stars"

const (
	backgroundStars = 80
	crosshairStep   = 5.0 // Percent per arrow press
	instruction     = "Find the constellations associated with Mithraism"
)

// Game adapts a constellation Session to the platform.
type Game struct {
	targets    []Target
	hintText   string
	finalTitle string
	finalText  string

	session   *Session
	timers    *timer.Group
	field     core.StarField
	crosshair core.Point
	cursor    int
	screenW   int
	screenH   int
	events    []core.Event
}

// New creates a star map over the given content.
func New(content config.StarsContent) (*Game, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("stars: %w", err)
	}
	return &Game{
		targets:    TargetsFromConfig(content.Constellations),
		hintText:   content.Hint,
		finalTitle: content.FinalTitle,
		finalText:  content.FinalText,
	}, nil
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Starry Sky Mystery", Order: 20},
		func(c config.Content) (registry.Game, error) {
			return New(c.Stars)
		})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Starry Sky Mystery"
}

// Reset clears all discoveries and centres the crosshair.
func (g *Game) Reset(cfg core.RuntimeConfig, timers *timer.Group) {
	if g.session != nil {
		g.session.Stop()
	}
	session, err := NewSession(g.targets, timers)
	if err != nil {
		// New validated the content, so this is a programming error
		panic(fmt.Sprintf("stars: reset: %v", err))
	}
	g.session = session
	g.session.OnDiscover = func(d Discovery) {
		g.events = append(g.events, core.Event{Kind: core.EventProgress, Detail: d.Name})
	}
	g.session.OnComplete = func() {
		g.events = append(g.events, core.Event{Kind: core.EventCompleted})
	}

	g.timers = timers
	g.field = core.NewStarField(backgroundStars, cfg.Seed)
	g.crosshair = core.Point{X: 50, Y: 50}
	g.cursor = 0
	g.events = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// Session exposes the underlying discovery state.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one tick of input. With the overlay closed the arrows move
// the crosshair and confirm taps under it; with it open they pick an answer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if target, _, open := g.session.Overlay(); open {
		g.stepOverlay(in, target)
	} else if !g.session.Complete() {
		g.stepSky(in)
	}

	result := core.StepResult{State: g.State(), Events: g.events}
	g.events = nil
	return result
}

func (g *Game) stepSky(in core.InputFrame) {
	if in.Click != nil {
		sky := skyArea(g.screenW, g.screenH)
		if sky.Contains(in.Click.X, in.Click.Y) {
			p := sky.ToPercent(in.Click.X, in.Click.Y)
			g.crosshair = p
			g.tap(p)
		}
		return
	}

	switch {
	case in.Has(core.ActionUp):
		g.crosshair.Y = core.ClampF(g.crosshair.Y-crosshairStep, 0, 100)
	case in.Has(core.ActionDown):
		g.crosshair.Y = core.ClampF(g.crosshair.Y+crosshairStep, 0, 100)
	case in.Has(core.ActionLeft):
		g.crosshair.X = core.ClampF(g.crosshair.X-crosshairStep, 0, 100)
	case in.Has(core.ActionRight):
		g.crosshair.X = core.ClampF(g.crosshair.X+crosshairStep, 0, 100)
	case in.Has(core.ActionConfirm):
		g.tap(g.crosshair)
	}
}

func (g *Game) tap(p core.Point) {
	if g.session.HandleTap(p) == TapHit {
		g.cursor = 0
	}
}

func (g *Game) stepOverlay(in core.InputFrame, target Target) {
	switch {
	case in.Option > 0 && in.Option <= len(target.Options):
		g.cursor = in.Option - 1
		g.session.SubmitAnswer(target.Options[g.cursor])
	case in.Click != nil:
		box := overlayBox(g.screenW, g.screenH, len(target.Options))
		i := in.Click.Y - optionsTop(box)
		if box.Contains(in.Click.X, in.Click.Y) && i >= 0 && i < len(target.Options) {
			g.cursor = i
			g.session.SubmitAnswer(target.Options[i])
		}
	case in.Has(core.ActionConfirm):
		g.session.SubmitAnswer(target.Options[g.cursor])
	case in.Has(core.ActionUp):
		if g.cursor > 0 {
			g.cursor--
		}
	case in.Has(core.ActionDown):
		if g.cursor < len(target.Options)-1 {
			g.cursor++
		}
	}
}

// HandleTap forwards a tap in sky percentages to the session.
func (g *Game) HandleTap(p core.Point) TapResult {
	return g.session.HandleTap(p)
}

// SubmitAnswer forwards an answer to the session.
func (g *Game) SubmitAnswer(option string) AnswerResult {
	return g.session.SubmitAnswer(option)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Complete: g.session.Complete(),
		Busy:     g.session.CompletionPending(),
	}
}
