package quiz

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// Stage is one grade of the quiz.
type Stage struct {
	Name    string
	Symbol  string
	Prompt  string
	Options []string
	Answer  string
}

// StagesFromConfig converts content stages into quiz stages.
func StagesFromConfig(cfg []config.StageConfig) []Stage {
	stages := make([]Stage, len(cfg))
	for i, s := range cfg {
		stages[i] = Stage{
			Name:    s.Name,
			Symbol:  s.Symbol,
			Prompt:  s.Question,
			Options: slices.Clone(s.Options),
			Answer:  s.Answer,
		}
	}
	return stages
}

// Outcome is the result of the last submitted answer while it is displayed.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Phase is the session's top-level state.
type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseComplete
)

// ErrNoStages is returned when a session is built without stages.
var ErrNoStages = errors.New("quiz: no stages")

// Session steps through the stages in order. A correct answer is shown for
// the feedback delay and then advances by exactly one stage; an incorrect
// answer is shown for the same delay and leaves the stage unchanged.
// Answers submitted while feedback is showing are ignored.
type Session struct {
	stages []Stage
	timers *timer.Group
	delay  time.Duration

	index    int
	outcome  Outcome
	feedback timer.Handle

	// OnAdvance is called after the stage index moves forward.
	OnAdvance func(from, to int)
}

// NewSession validates the stages and starts at stage 0.
func NewSession(stages []Stage, timers *timer.Group) (*Session, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	for i, s := range stages {
		if !slices.Contains(s.Options, s.Answer) {
			return nil, fmt.Errorf("quiz: stage %d (%s): answer %q is not an option", i+1, s.Name, s.Answer)
		}
	}
	return &Session{
		stages: stages,
		timers: timers,
		delay:  config.AnswerFeedbackDuration,
	}, nil
}

// SubmitAnswer evaluates option against the current stage.
// Returns the displayed outcome and whether the submission was accepted.
func (s *Session) SubmitAnswer(option string) (Outcome, bool) {
	if s.Phase() == PhaseComplete || s.feedback.Active() {
		return OutcomeNone, false
	}

	correct := option == s.stages[s.index].Answer
	if correct {
		s.outcome = OutcomeCorrect
	} else {
		s.outcome = OutcomeIncorrect
	}

	s.feedback = s.timers.After(s.delay, func() {
		s.outcome = OutcomeNone
		if correct {
			from := s.index
			s.index++
			if s.OnAdvance != nil {
				s.OnAdvance(from, s.index)
			}
		}
	})
	return s.outcome, true
}

// Stop cancels any pending feedback transition.
func (s *Session) Stop() {
	s.timers.Cancel(s.feedback)
}

// Phase returns InProgress until every stage is answered.
func (s *Session) Phase() Phase {
	if s.index >= len(s.stages) {
		return PhaseComplete
	}
	return PhaseInProgress
}

// StageIndex returns the current stage index; len(stages) when complete.
func (s *Session) StageIndex() int {
	return s.index
}

// Current returns the stage being asked, false when complete.
func (s *Session) Current() (Stage, bool) {
	if s.index >= len(s.stages) {
		return Stage{}, false
	}
	return s.stages[s.index], true
}

// Stages returns the stage list.
func (s *Session) Stages() []Stage {
	return s.stages
}

// Outcome returns the outcome currently on display.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// ShowingFeedback reports whether an outcome is on display.
func (s *Session) ShowingFeedback() bool {
	return s.feedback.Active()
}
