package wheel

import (
	"errors"
	"math"
	"time"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/random"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// Status is the wheel's animation state.
type Status int

const (
	StatusIdle Status = iota
	StatusSpinning
	StatusSettled
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSpinning:
		return "spinning"
	case StatusSettled:
		return "settled"
	default:
		return "idle"
	}
}

// ErrNoOutcomes is returned when a wheel is built without fortunes.
var ErrNoOutcomes = errors.New("wheel: no outcomes")

// Session is one visit to the wheel. Rotation accumulates across spins so
// every spin continues forward from where the last one stopped.
type Session struct {
	outcomes []string
	picker   random.Picker
	timers   *timer.Group

	duration  time.Duration
	fullSpins int

	status    Status
	rotation  float64 // Resting angle once the current spin settles
	from      float64 // Angle at the start of the current spin
	startedAt time.Duration
	selected  int
	revealed  int
	settle    timer.Handle

	// OnReveal is called when a spin settles.
	OnReveal func(index int, fortune string)
}

// NewSession creates an idle wheel over outcomes, in wedge order clockwise
// from the top.
func NewSession(outcomes []string, picker random.Picker, timers *timer.Group) (*Session, error) {
	if len(outcomes) == 0 {
		return nil, ErrNoOutcomes
	}
	return &Session{
		outcomes:  outcomes,
		picker:    picker,
		timers:    timers,
		duration:  config.SpinDuration,
		fullSpins: config.FullSpins,
		selected:  -1,
		revealed:  -1,
	}, nil
}

// RequestSpin picks an outcome and starts the animation towards it.
// Returns false while a spin is already running.
func (s *Session) RequestSpin() bool {
	if s.status == StatusSpinning {
		return false
	}

	s.selected = s.picker.PickUniform(len(s.outcomes))
	s.from = s.rotation
	s.rotation += random.ComputeTargetRotation(s.selected, len(s.outcomes), s.fullSpins)
	s.startedAt = s.timers.Now()
	s.status = StatusSpinning

	s.settle = s.timers.After(s.duration, func() {
		s.status = StatusSettled
		s.revealed = s.selected
		if s.OnReveal != nil {
			s.OnReveal(s.revealed, s.outcomes[s.revealed])
		}
	})
	return true
}

// Stop cancels a running spin. The wheel stays where the animation was.
func (s *Session) Stop() {
	if s.timers.Cancel(s.settle) {
		s.rotation = s.Angle()
		s.status = StatusIdle
	}
}

// Angle returns the wheel's current clockwise rotation in degrees.
func (s *Session) Angle() float64 {
	if s.status != StatusSpinning {
		return s.rotation
	}
	t := float64(s.timers.Now()-s.startedAt) / float64(s.duration)
	return s.from + (s.rotation-s.from)*EaseOut(t)
}

// Status returns the animation state.
func (s *Session) Status() Status {
	return s.status
}

// Rotation returns the cumulative target rotation.
func (s *Session) Rotation() float64 {
	return s.rotation
}

// Selected returns the index picked for the running or last spin, -1 before
// the first spin.
func (s *Session) Selected() int {
	return s.selected
}

// Revealed returns the fortune of the last settled spin.
func (s *Session) Revealed() (string, bool) {
	if s.revealed < 0 || s.status != StatusSettled {
		return "", false
	}
	return s.outcomes[s.revealed], true
}

// Outcomes returns the fortunes in wedge order.
func (s *Session) Outcomes() []string {
	return s.outcomes
}

// EaseOut maps linear progress t in [0, 1] to a decelerating curve.
func EaseOut(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Pow(1-t, 3)
}

// PointerWedge returns the wedge under the top pointer at the given angle.
func PointerWedge(angle float64, total int) int {
	a := random.AnglePerOutcome(total)
	i := int(random.Mod360(-angle) / a)
	if i >= total {
		i = total - 1
	}
	return i
}
