package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/timer"
)

func testStages() []Stage {
	return StagesFromConfig(config.DefaultContent().Quiz.Stages)
}

func newTestSession(t *testing.T) (*Session, *timer.Scheduler) {
	t.Helper()
	sched := timer.NewScheduler()
	s, err := NewSession(testStages(), sched.NewGroup())
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, sched
}

func TestNewSessionValidation(t *testing.T) {
	sched := timer.NewScheduler()

	if _, err := NewSession(nil, sched.NewGroup()); !errors.Is(err, ErrNoStages) {
		t.Errorf("NewSession(nil) error = %v, expected ErrNoStages", err)
	}

	bad := []Stage{{Name: "Corax", Options: []string{"Crow", "Bull"}, Answer: "Owl"}}
	if _, err := NewSession(bad, sched.NewGroup()); err == nil {
		t.Error("expected error when answer is not an option")
	}
}

func TestCorrectAnswerAdvancesAfterDelay(t *testing.T) {
	s, sched := newTestSession(t)

	outcome, ok := s.SubmitAnswer("Crow")
	if !ok || outcome != OutcomeCorrect {
		t.Fatalf("SubmitAnswer(Crow) = (%v, %v), expected (correct, true)", outcome, ok)
	}

	// Still on stage 0 while feedback shows
	sched.Advance(1999 * time.Millisecond)
	if s.StageIndex() != 0 {
		t.Fatalf("stage advanced early: %d", s.StageIndex())
	}
	if s.Outcome() != OutcomeCorrect {
		t.Error("correct outcome should be displayed during the delay")
	}

	sched.Advance(time.Millisecond)
	if s.StageIndex() != 1 {
		t.Errorf("StageIndex() = %d after delay, expected 1", s.StageIndex())
	}
	if s.Outcome() != OutcomeNone {
		t.Error("outcome should clear after the delay")
	}
}

func TestIncorrectAnswerKeepsStage(t *testing.T) {
	s, sched := newTestSession(t)

	outcome, ok := s.SubmitAnswer("Bull")
	if !ok || outcome != OutcomeIncorrect {
		t.Fatalf("SubmitAnswer(Bull) = (%v, %v), expected (incorrect, true)", outcome, ok)
	}

	sched.Advance(5 * time.Second)
	if s.StageIndex() != 0 {
		t.Errorf("StageIndex() = %d, expected 0", s.StageIndex())
	}
	if s.Outcome() != OutcomeNone {
		t.Error("incorrect outcome should clear after the delay")
	}
}

func TestSubmissionsDuringFeedbackIgnored(t *testing.T) {
	s, sched := newTestSession(t)

	s.SubmitAnswer("Crow")
	sched.Advance(500 * time.Millisecond)

	if _, ok := s.SubmitAnswer("Crow"); ok {
		t.Error("second submission during feedback should be ignored")
	}

	sched.Advance(10 * time.Second)
	if s.StageIndex() != 1 {
		t.Errorf("double submission advanced to %d, expected exactly 1", s.StageIndex())
	}
}

func TestFullRunCompletes(t *testing.T) {
	s, sched := newTestSession(t)
	stages := s.Stages()

	advances := 0
	s.OnAdvance = func(from, to int) {
		if to != from+1 {
			t.Errorf("advance %d -> %d, expected +1", from, to)
		}
		advances++
	}

	for i, st := range stages {
		if s.Phase() != PhaseInProgress {
			t.Fatalf("completed early at stage %d", i)
		}
		// A wrong answer first never moves the index
		for _, opt := range st.Options {
			if opt != st.Answer {
				s.SubmitAnswer(opt)
				sched.Advance(config.AnswerFeedbackDuration)
				break
			}
		}
		if s.StageIndex() != i {
			t.Fatalf("wrong answer moved stage to %d", s.StageIndex())
		}
		s.SubmitAnswer(st.Answer)
		sched.Advance(config.AnswerFeedbackDuration)
	}

	if s.Phase() != PhaseComplete {
		t.Fatal("expected PhaseComplete after all stages")
	}
	if s.StageIndex() != len(stages) {
		t.Errorf("StageIndex() = %d, expected %d", s.StageIndex(), len(stages))
	}
	if advances != len(stages) {
		t.Errorf("OnAdvance called %d times, expected %d", advances, len(stages))
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() should report false when complete")
	}
	if _, ok := s.SubmitAnswer("Enlightenment"); ok {
		t.Error("submissions after completion should be ignored")
	}
}

func TestStopCancelsPendingAdvance(t *testing.T) {
	s, sched := newTestSession(t)

	s.SubmitAnswer("Crow")
	s.Stop()
	sched.Advance(time.Minute)

	if s.StageIndex() != 0 {
		t.Errorf("stopped session advanced to %d", s.StageIndex())
	}
}

func TestGroupStopCancelsPendingAdvance(t *testing.T) {
	sched := timer.NewScheduler()
	group := sched.NewGroup()
	s, _ := NewSession(testStages(), group)

	s.SubmitAnswer("Crow")
	group.Stop()
	sched.Advance(time.Minute)

	if s.StageIndex() != 0 {
		t.Errorf("session advanced after its timer group stopped")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeNone:      "none",
		OutcomeCorrect:   "correct",
		OutcomeIncorrect: "incorrect",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", o, got, want)
		}
	}
}
