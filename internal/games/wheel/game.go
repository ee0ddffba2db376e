// Package wheel implements the Fortune Wheel: spin, decelerate, and reveal
// one of Fortuna's messages.
package wheel

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/random"
	"github.com/vovakirdan/mysteries/internal/registry"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// ID is the registry identifier of the wheel.
const ID = "wheel"

// Game adapts a wheel Session to the platform.
type Game struct {
	fortunes []string
	picker   random.Picker

	session *Session
	timers  *timer.Group
	events  []core.Event
}

// New creates a wheel over the given content. A nil picker is replaced on
// Reset by a source seeded from the visit's seed.
func New(content config.WheelContent, picker random.Picker) (*Game, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("wheel: %w", err)
	}
	return &Game{
		fortunes: content.Fortunes,
		picker:   picker,
	}, nil
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Fortune Wheel", Order: 30},
		func(c config.Content) (registry.Game, error) {
			return New(c.Wheel, nil)
		})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Fortune Wheel"
}

// Reset returns the wheel to rest at zero.
func (g *Game) Reset(cfg core.RuntimeConfig, timers *timer.Group) {
	if g.session != nil {
		g.session.Stop()
	}
	if g.picker == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.picker = random.New(seed)
	}

	session, err := NewSession(g.fortunes, g.picker, timers)
	if err != nil {
		// New validated the content, so this is a programming error
		panic(fmt.Sprintf("wheel: reset: %v", err))
	}
	g.session = session
	g.session.OnReveal = func(_ int, fortune string) {
		g.events = append(g.events, core.Event{Kind: core.EventRevealed, Detail: fortune})
	}
	g.timers = timers
	g.events = nil
}

// Session exposes the underlying wheel state.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one tick of input. Confirm or a click spins the wheel.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionConfirm) || in.Click != nil {
		g.session.RequestSpin()
	}

	result := core.StepResult{State: g.State(), Events: g.events}
	g.events = nil
	return result
}

// RequestSpin forwards a spin request to the session.
func (g *Game) RequestSpin() bool {
	return g.session.RequestSpin()
}

// State returns the current game state. The wheel never completes; it can
// be spun for as long as the visitor likes.
func (g *Game) State() core.GameState {
	return core.GameState{Busy: g.session.Status() == StatusSpinning}
}
