package stars

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/timer"
)

func testTargets() []Target {
	return []Target{
		{Name: "Taurus", Prompt: "Bull?", Options: []string{"The Bull of Heaven", "God of War"}, Answer: "The Bull of Heaven", Pos: core.Point{X: 30, Y: 40}},
		{Name: "Canis Major", Prompt: "Dog?", Options: []string{"Guardian of the Bull", "Solar Chariot"}, Answer: "Guardian of the Bull", Pos: core.Point{X: 70, Y: 60}},
		{Name: "Near Taurus", Prompt: "Near?", Options: []string{"Yes", "No"}, Answer: "Yes", Pos: core.Point{X: 35, Y: 40}},
	}
}

func newTestSession(t *testing.T) (*Session, *timer.Scheduler) {
	t.Helper()
	sched := timer.NewScheduler()
	s, err := NewSession(testTargets(), sched.NewGroup())
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, sched
}

func TestNewSessionValidation(t *testing.T) {
	sched := timer.NewScheduler()

	if _, err := NewSession(nil, sched.NewGroup()); !errors.Is(err, ErrNoTargets) {
		t.Errorf("NewSession(nil) = %v, expected ErrNoTargets", err)
	}

	dup := testTargets()
	dup[1].Name = "Taurus"
	if _, err := NewSession(dup, sched.NewGroup()); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("NewSession(dup) = %v, expected ErrDuplicateName", err)
	}

	bad := testTargets()
	bad[0].Answer = "A cow"
	if _, err := NewSession(bad, sched.NewGroup()); err == nil {
		t.Error("expected error for answer outside options")
	}
}

func TestHandleTapTolerance(t *testing.T) {
	tests := []struct {
		name string
		tap  core.Point
		want TapResult
	}{
		{"nominal", core.Point{X: 70, Y: 60}, TapHit},
		{"inside x", core.Point{X: 79.9, Y: 60}, TapHit},
		{"inside corner", core.Point{X: 79, Y: 69}, TapHit},
		{"eleven right", core.Point{X: 81, Y: 60}, TapMiss},
		{"exactly ten", core.Point{X: 80, Y: 60}, TapMiss},
		{"eleven up", core.Point{X: 70, Y: 49}, TapMiss},
		{"empty sky", core.Point{X: 5, Y: 5}, TapMiss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			if got := s.HandleTap(tt.tap); got != tt.want {
				t.Errorf("HandleTap(%v) = %v, want %v", tt.tap, got, tt.want)
			}
		})
	}
}

func TestTapPicksFirstInListOrder(t *testing.T) {
	s, _ := newTestSession(t)

	// (33, 40) is within tolerance of both Taurus and Near Taurus
	if s.HandleTap(core.Point{X: 33, Y: 40}) != TapHit {
		t.Fatal("expected a hit")
	}
	target, tap, open := s.Overlay()
	if !open || target.Name != "Taurus" {
		t.Fatalf("overlay = %q open=%v, expected Taurus", target.Name, open)
	}
	if tap != (core.Point{X: 33, Y: 40}) {
		t.Errorf("tap position = %v, expected the exact tap", tap)
	}

	s.SubmitAnswer("The Bull of Heaven")

	// Taurus is discovered, so the same tap now finds its neighbour
	s.HandleTap(core.Point{X: 33, Y: 40})
	if target, _, _ := s.Overlay(); target.Name != "Near Taurus" {
		t.Errorf("second tap opened %q, expected Near Taurus", target.Name)
	}
}

func TestTapsIgnoredWhileOverlayOpen(t *testing.T) {
	s, _ := newTestSession(t)
	s.HandleTap(core.Point{X: 30, Y: 40})

	if got := s.HandleTap(core.Point{X: 70, Y: 60}); got != TapIgnored {
		t.Errorf("tap with overlay open = %v, expected TapIgnored", got)
	}
	if target, _, _ := s.Overlay(); target.Name != "Taurus" {
		t.Errorf("overlay changed to %q", target.Name)
	}
	if s.WrongClick() {
		t.Error("ignored tap should not flash the sky")
	}
}

func TestMissFlashesForWrongClickDuration(t *testing.T) {
	s, sched := newTestSession(t)

	s.HandleTap(core.Point{X: 5, Y: 5})
	if !s.WrongClick() {
		t.Fatal("miss should set WrongClick")
	}
	if _, _, open := s.Overlay(); open {
		t.Error("miss should not open the overlay")
	}

	sched.Advance(400 * time.Millisecond)
	// A second miss restarts the flash
	s.HandleTap(core.Point{X: 5, Y: 5})
	sched.Advance(400 * time.Millisecond)
	if !s.WrongClick() {
		t.Error("second miss should extend the flash")
	}

	sched.Advance(200 * time.Millisecond)
	if s.WrongClick() {
		t.Error("flash should clear 600ms after the last miss")
	}
}

func TestIncorrectAnswerShowsHint(t *testing.T) {
	s, _ := newTestSession(t)
	s.HandleTap(core.Point{X: 70, Y: 60})

	if got := s.SubmitAnswer("Solar Chariot"); got != AnswerIncorrect {
		t.Fatalf("SubmitAnswer = %v, expected AnswerIncorrect", got)
	}
	if !s.HintVisible() {
		t.Error("hint should be visible after a wrong answer")
	}
	if _, _, open := s.Overlay(); !open {
		t.Error("overlay should stay open after a wrong answer")
	}
	if len(s.Discovered()) != 0 {
		t.Error("wrong answer should not discover anything")
	}

	if got := s.SubmitAnswer("Guardian of the Bull"); got != AnswerCorrect {
		t.Fatalf("SubmitAnswer = %v, expected AnswerCorrect", got)
	}
	if s.HintVisible() {
		t.Error("hint should clear on the next answer")
	}
}

func TestSubmitWithoutOverlayIgnored(t *testing.T) {
	s, _ := newTestSession(t)
	if got := s.SubmitAnswer("The Bull of Heaven"); got != AnswerIgnored {
		t.Errorf("SubmitAnswer without overlay = %v", got)
	}
}

func TestCompleteOnlyAfterAllTargets(t *testing.T) {
	s, sched := newTestSession(t)
	completed := 0
	s.OnComplete = func() { completed++ }

	targets := s.Targets()
	for i, target := range targets {
		if s.HandleTap(target.Pos) != TapHit {
			t.Fatalf("tap on %s missed", target.Name)
		}
		s.SubmitAnswer(target.Answer)
		sched.Advance(5 * time.Second)

		last := i == len(targets)-1
		if s.Complete() != last {
			t.Fatalf("after %d of %d: Complete() = %v", i+1, len(targets), s.Complete())
		}
	}

	if completed != 1 {
		t.Errorf("OnComplete fired %d times, expected 1", completed)
	}
	if got := s.HandleTap(core.Point{X: 5, Y: 5}); got != TapIgnored {
		t.Errorf("tap after completion = %v, expected TapIgnored", got)
	}
}

func TestCompletionDelay(t *testing.T) {
	s, sched := newTestSession(t)
	for _, target := range s.Targets() {
		s.HandleTap(target.Pos)
		s.SubmitAnswer(target.Answer)
	}

	if !s.CompletionPending() || s.Complete() {
		t.Fatal("expected completion to be pending")
	}

	// Taps during the delay find nothing undiscovered
	if got := s.HandleTap(core.Point{X: 30, Y: 40}); got != TapMiss {
		t.Errorf("tap during delay = %v, expected TapMiss", got)
	}

	sched.Advance(config.CompletionDelay - time.Millisecond)
	if s.Complete() {
		t.Fatal("completed before the delay elapsed")
	}
	sched.Advance(time.Millisecond)
	if !s.Complete() {
		t.Error("expected Complete after the delay")
	}
}

func TestStopCancelsCompletion(t *testing.T) {
	s, sched := newTestSession(t)
	for _, target := range s.Targets() {
		s.HandleTap(target.Pos)
		s.SubmitAnswer(target.Answer)
	}
	s.Stop()
	sched.Advance(time.Minute)

	if s.Complete() {
		t.Error("stopped session should not complete")
	}
}
