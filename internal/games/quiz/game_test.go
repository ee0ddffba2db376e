package quiz

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/timer"
)

func newTestGame(t *testing.T) (*Game, *timer.Scheduler) {
	t.Helper()
	g, err := New(config.DefaultContent().Quiz)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	sched := timer.NewScheduler()
	g.Reset(core.DefaultConfig(), sched.NewGroup())
	return g, sched
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestNewRejectsEmptyContent(t *testing.T) {
	if _, err := New(config.QuizContent{}); err == nil {
		t.Error("expected error for empty quiz content")
	}
}

func TestCursorAndConfirm(t *testing.T) {
	g, sched := newTestGame(t)

	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionDown)) // Clamped at last option
	if snap := g.Snapshot(); snap.Cursor != 2 {
		t.Fatalf("Cursor = %d, expected 2", snap.Cursor)
	}

	g.Step(frame(core.ActionConfirm))
	if g.Snapshot().Outcome != OutcomeIncorrect {
		t.Errorf("Lion should be incorrect, got %v", g.Snapshot().Outcome)
	}
	if !g.State().Busy {
		t.Error("State().Busy should be true during feedback")
	}

	sched.Advance(config.AnswerFeedbackDuration)
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionConfirm))
	sched.Advance(config.AnswerFeedbackDuration)

	res := g.Step(core.NewInputFrame())
	snap := g.Snapshot()
	if snap.StageIndex != 1 || snap.StageName != "Nymphus" {
		t.Errorf("expected Nymphus at index 1, got %+v", snap)
	}
	if snap.Cursor != 0 {
		t.Errorf("cursor should reset on advance, got %d", snap.Cursor)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventProgress || res.Events[0].Detail != "Corax" {
		t.Errorf("expected progress event for Corax, got %+v", res.Events)
	}
}

func TestQuickPickCompletesQuiz(t *testing.T) {
	g, sched := newTestGame(t)
	var events []core.Event

	for !g.State().Complete {
		snap := g.Snapshot()
		pick := 0
		for i, opt := range snap.Options {
			if opt == g.stages[snap.StageIndex].Answer {
				pick = i + 1
			}
		}
		in := core.NewInputFrame()
		in.Option = pick
		events = append(events, g.Step(in).Events...)
		sched.Advance(config.AnswerFeedbackDuration)
		events = append(events, g.Step(core.NewInputFrame()).Events...)
	}

	last := events[len(events)-1]
	if last.Kind != core.EventCompleted {
		t.Errorf("last event = %+v, expected completed", last)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PATER of the Mysteries") {
		t.Errorf("final screen missing title:\n%s", screen.String())
	}
}

func TestRenderShowsQuestionAndFeedback(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"QUIZ OF MITHRAS", "Corax", "What creature is associated with the Corax stage?", "> 1. Crow <"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.SubmitAnswer("Bull")
	g.Render(screen)
	if !strings.Contains(screen.String(), incorrectText) {
		t.Error("render missing incorrect feedback")
	}
}

func TestRenderNarrowStepper(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(40, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(3), "●○○○○○○") {
		t.Errorf("narrow stepper row = %q", screen.Row(3))
	}
}

func TestResetStartsOver(t *testing.T) {
	g, sched := newTestGame(t)
	g.SubmitAnswer("Crow")
	sched.Advance(config.AnswerFeedbackDuration)

	g.Reset(core.DefaultConfig(), sched.NewGroup())
	if g.Snapshot().StageIndex != 0 {
		t.Errorf("Reset should return to stage 0, got %d", g.Snapshot().StageIndex)
	}
}

func TestResetWithoutContentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Reset on a game built without content should panic, not leave a nil session")
		}
	}()
	g := &Game{}
	g.Reset(core.DefaultConfig(), timer.NewScheduler().NewGroup())
}
