// Package quiz implements the Quiz of Mithras: seven grades of initiation,
// each gated by a multiple-choice question.
package quiz

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/registry"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// ID is the registry identifier of the quiz.
const ID = "quiz"

// Feedback lines shown under the options.
const (
	correctText   = "Correct! Proceed to the next stage."
	incorrectText = "Incorrect... Try again!"
)

// Game adapts a quiz Session to the platform.
type Game struct {
	stages     []Stage
	finalTitle string
	finalText  string

	session *Session
	cursor  int
	screenW int
	screenH int
	events  []core.Event
}

// New creates a quiz game over the given content.
func New(content config.QuizContent) (*Game, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}
	return &Game{
		stages:     StagesFromConfig(content.Stages),
		finalTitle: content.FinalTitle,
		finalText:  content.FinalText,
	}, nil
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Quiz of Mithras", Order: 10},
		func(c config.Content) (registry.Game, error) {
			return New(c.Quiz)
		})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Quiz of Mithras"
}

// Reset starts a fresh visit at the first stage.
func (g *Game) Reset(cfg core.RuntimeConfig, timers *timer.Group) {
	if g.session != nil {
		g.session.Stop()
	}
	// Stages were validated in New, so this cannot fail.
	session, err := NewSession(g.stages, timers)
	if err != nil {
		// New validated the content, so this is a programming error
		panic(fmt.Sprintf("quiz: reset: %v", err))
	}
	g.session = session
	g.session.OnAdvance = g.onAdvance
	g.cursor = 0
	g.events = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

func (g *Game) onAdvance(from, to int) {
	g.cursor = 0
	g.events = append(g.events, core.Event{Kind: core.EventProgress, Detail: g.stages[from].Name})
	if to >= len(g.stages) {
		g.events = append(g.events, core.Event{Kind: core.EventCompleted})
	}
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if stage, ok := g.session.Current(); ok {
		switch {
		case in.Option > 0 && in.Option <= len(stage.Options):
			g.cursor = in.Option - 1
			g.session.SubmitAnswer(stage.Options[g.cursor])
		case in.Has(core.ActionConfirm):
			g.session.SubmitAnswer(stage.Options[g.cursor])
		case in.Has(core.ActionUp):
			if g.cursor > 0 {
				g.cursor--
			}
		case in.Has(core.ActionDown):
			if g.cursor < len(stage.Options)-1 {
				g.cursor++
			}
		}
	}

	result := core.StepResult{State: g.State(), Events: g.events}
	g.events = nil
	return result
}

// SubmitAnswer forwards an answer to the session.
func (g *Game) SubmitAnswer(option string) (Outcome, bool) {
	return g.session.SubmitAnswer(option)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Complete: g.session.Phase() == PhaseComplete,
		Busy:     g.session.ShowingFeedback(),
	}
}

// Render draws the stepper, the current question and feedback.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCenteredColored(1, "✦ QUIZ OF MITHRAS ✦", core.ColorGold)

	stage, ok := g.session.Current()
	if !ok {
		g.renderFinal(dst)
		g.renderFooter(dst, "B: Back to Menu")
		return
	}

	g.renderStepper(dst, 3)

	label := fmt.Sprintf("Stage %d of %d: %s %s", g.session.StageIndex()+1, len(g.stages), stage.Symbol, stage.Name)
	dst.DrawTextCenteredColored(6, label, core.ColorYellow)
	dst.DrawTextCentered(8, stage.Prompt)

	for i, opt := range stage.Options {
		line := fmt.Sprintf("  %d. %s  ", i+1, opt)
		color := core.ColorDefault
		if i == g.cursor {
			line = fmt.Sprintf("> %d. %s <", i+1, opt)
			color = core.ColorBrightWhite
		}
		dst.DrawTextCenteredColored(10+i*2, line, color)
	}

	feedbackY := 10 + len(stage.Options)*2 + 1
	switch g.session.Outcome() {
	case OutcomeCorrect:
		dst.DrawTextCenteredColored(feedbackY, correctText, core.ColorBrightGreen)
	case OutcomeIncorrect:
		dst.DrawTextCenteredColored(feedbackY, incorrectText, core.ColorBrightRed)
	}

	g.renderFooter(dst, "Up/Down: Choose  |  Enter: Answer  |  1-3: Quick pick  |  B: Menu")
}

// renderStepper draws the grade names joined by connectors. Reached grades are
// gold, the rest gray. Narrow screens get a compact progress bar instead.
func (g *Game) renderStepper(dst *core.Screen, y int) {
	idx := g.session.StageIndex()

	parts := make([]string, len(g.stages))
	for i, s := range g.stages {
		parts[i] = s.Name
	}
	full := strings.Join(parts, " ── ")

	if core.TextWidth(full) > dst.Width()-2 {
		bar := strings.Repeat("●", idx+1) + strings.Repeat("○", len(g.stages)-idx-1)
		dst.DrawTextCenteredColored(y, bar, core.ColorGold)
		return
	}

	x := (dst.Width() - core.TextWidth(full)) / 2
	for i, s := range g.stages {
		color := core.ColorGray
		if i <= idx {
			color = core.ColorGold
		}
		dst.DrawTextColored(x, y, s.Name, color)
		x += core.TextWidth(s.Name)

		if i < len(g.stages)-1 {
			lineColor := core.ColorGray
			if i < idx {
				lineColor = core.ColorGold
			}
			dst.DrawTextColored(x, y, " ── ", lineColor)
			x += 4
		}
	}
}

func (g *Game) renderFinal(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-1, "🌟 "+g.finalTitle+" 🌟", core.ColorBrightYellow)
	dst.DrawTextCentered(mid+1, g.finalText)
}

func (g *Game) renderFooter(dst *core.Screen, text string) {
	dst.DrawTextCenteredColored(dst.Height()-1, text, core.ColorGray)
}
