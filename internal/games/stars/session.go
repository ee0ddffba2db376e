package stars

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// Target is a constellation hidden in the sky. Pos is in percent of the sky.
type Target struct {
	Name    string
	Prompt  string
	Options []string
	Answer  string
	Pos     core.Point
}

// TargetsFromConfig converts content constellations into targets.
func TargetsFromConfig(cfg []config.ConstellationConfig) []Target {
	targets := make([]Target, len(cfg))
	for i, c := range cfg {
		targets[i] = Target{
			Name:    c.Name,
			Prompt:  c.Question,
			Options: slices.Clone(c.Options),
			Answer:  c.Answer,
			Pos:     core.Point{X: c.X, Y: c.Y},
		}
	}
	return targets
}

// Discovery records a solved target at the position where it was tapped.
type Discovery struct {
	Name string
	At   core.Point
}

// TapResult is the effect of a tap on the sky.
type TapResult int

const (
	TapIgnored TapResult = iota // Overlay open or session complete
	TapHit                      // Opened the quiz for a target
	TapMiss                     // Nothing undiscovered within tolerance
)

// AnswerResult is the effect of an answer on the open overlay.
type AnswerResult int

const (
	AnswerIgnored AnswerResult = iota
	AnswerCorrect
	AnswerIncorrect
)

var (
	ErrNoTargets     = errors.New("stars: no targets")
	ErrDuplicateName = errors.New("stars: duplicate target name")
)

// Session tracks which constellations have been found.
type Session struct {
	targets   []Target
	timers    *timer.Group
	tolerance float64

	discovered []Discovery
	active     int // Index of the target under quiz, -1 if none
	activeTap  core.Point
	hint       bool

	wrongClick timer.Handle
	completing timer.Handle
	complete   bool

	OnDiscover func(d Discovery)
	OnComplete func()
}

// NewSession validates targets and returns a session with nothing found.
func NewSession(targets []Target, timers *timer.Group) (*Session, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		if seen[t.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, t.Name)
		}
		seen[t.Name] = true
		if !slices.Contains(t.Options, t.Answer) {
			return nil, fmt.Errorf("stars: %s: answer %q is not an option", t.Name, t.Answer)
		}
	}
	return &Session{
		targets:   targets,
		timers:    timers,
		tolerance: config.TapTolerance,
		active:    -1,
	}, nil
}

// HandleTap looks for the first undiscovered target, in list order, whose
// square tolerance region contains p. A hit opens its quiz; a miss flashes
// the sky for the wrong-click duration.
func (s *Session) HandleTap(p core.Point) TapResult {
	if s.active >= 0 || s.complete {
		return TapIgnored
	}

	for i, t := range s.targets {
		if s.IsDiscovered(t.Name) {
			continue
		}
		if p.Within(t.Pos, s.tolerance) {
			s.active = i
			s.activeTap = p
			s.hint = false
			return TapHit
		}
	}

	s.timers.Cancel(s.wrongClick)
	s.wrongClick = s.timers.After(config.WrongClickDuration, func() {})
	return TapMiss
}

// SubmitAnswer answers the open quiz. A correct answer records the
// discovery and closes the overlay; once every target is found the session
// completes after the completion delay. An incorrect answer shows the hint
// and leaves the overlay open.
func (s *Session) SubmitAnswer(option string) AnswerResult {
	if s.active < 0 {
		return AnswerIgnored
	}
	t := s.targets[s.active]

	if option != t.Answer {
		s.hint = true
		return AnswerIncorrect
	}

	d := Discovery{Name: t.Name, At: s.activeTap}
	s.discovered = append(s.discovered, d)
	s.active = -1
	s.hint = false
	if s.OnDiscover != nil {
		s.OnDiscover(d)
	}

	if len(s.discovered) == len(s.targets) {
		s.completing = s.timers.After(config.CompletionDelay, func() {
			s.complete = true
			if s.OnComplete != nil {
				s.OnComplete()
			}
		})
	}
	return AnswerCorrect
}

// Stop cancels the wrong-click flash and any pending completion.
func (s *Session) Stop() {
	s.timers.Cancel(s.wrongClick)
	s.timers.Cancel(s.completing)
}

// Overlay returns the target under quiz and the tap that opened it.
func (s *Session) Overlay() (Target, core.Point, bool) {
	if s.active < 0 {
		return Target{}, core.Point{}, false
	}
	return s.targets[s.active], s.activeTap, true
}

// IsDiscovered reports whether the named target has been solved.
func (s *Session) IsDiscovered(name string) bool {
	return slices.ContainsFunc(s.discovered, func(d Discovery) bool { return d.Name == name })
}

// Discovered returns the solved targets in the order they were found.
func (s *Session) Discovered() []Discovery {
	return s.discovered
}

// Targets returns the target list.
func (s *Session) Targets() []Target {
	return s.targets
}

// WrongClick reports whether the miss flash is showing.
func (s *Session) WrongClick() bool {
	return s.wrongClick.Active()
}

// HintVisible reports whether the last answer on the open overlay was wrong.
func (s *Session) HintVisible() bool {
	return s.hint
}

// CompletionPending reports whether every target is found but the final
// screen has not appeared yet.
func (s *Session) CompletionPending() bool {
	return s.completing.Active()
}

// Complete reports whether the final screen is showing.
func (s *Session) Complete() bool {
	return s.complete
}
