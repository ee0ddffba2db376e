// Package idle implements the inactivity monitor that warns an idle
// player and then resets the kiosk back to its menu.
package idle

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// ErrInvalidDelays is returned when the timeout does not come after the warning.
var ErrInvalidDelays = errors.New("idle: timeout delay must be greater than warn delay")

// Config holds the two countdown lengths.
type Config struct {
	WarnDelay    time.Duration
	TimeoutDelay time.Duration
}

// DefaultConfig returns the kiosk defaults: warn after four minutes, reset after five.
func DefaultConfig() Config {
	return Config{
		WarnDelay:    config.WarnDelay,
		TimeoutDelay: config.TimeoutDelay,
	}
}

// Validate checks that both delays are positive and the timeout comes last.
func (c Config) Validate() error {
	if c.WarnDelay <= 0 || c.TimeoutDelay <= 0 {
		return fmt.Errorf("idle: delays must be positive (warn=%v, timeout=%v)", c.WarnDelay, c.TimeoutDelay)
	}
	if c.TimeoutDelay <= c.WarnDelay {
		return fmt.Errorf("%w (warn=%v, timeout=%v)", ErrInvalidDelays, c.WarnDelay, c.TimeoutDelay)
	}
	return nil
}

// State is a read-only view of the monitor.
type State struct {
	Running      bool
	LastActivity time.Duration
	WarnFired    bool
	TimeoutFired bool
}

// Monitor runs two independent countdowns from the last activity.
// Both callbacks fire on their own schedule unless activity cancels them.
type Monitor struct {
	cfg    Config
	timers *timer.Group

	onWarn    func()
	onTimeout func()

	warn    timer.Handle
	timeout timer.Handle

	running      bool
	lastActivity time.Duration
	warnFired    bool
	timeoutFired bool
}

// New creates a monitor whose timers live on sched.
func New(sched *timer.Scheduler, cfg Config) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Monitor{
		cfg:    cfg,
		timers: sched.NewGroup(),
	}, nil
}

// Config returns the delays the monitor was built with.
func (m *Monitor) Config() Config {
	return m.cfg
}

// Start begins both countdowns from now. Starting a running monitor
// replaces its callbacks and restarts the countdowns.
func (m *Monitor) Start(onWarn, onTimeout func()) {
	m.onWarn = onWarn
	m.onTimeout = onTimeout
	m.running = true
	m.reschedule()
}

// NotifyActivity cancels both pending countdowns and restarts them from now.
// Ignored while the monitor is stopped.
func (m *Monitor) NotifyActivity() {
	if !m.running {
		return
	}
	m.reschedule()
}

// Stop cancels both countdowns unconditionally.
func (m *Monitor) Stop() {
	m.cancel()
	m.running = false
}

// State returns a snapshot of the monitor.
func (m *Monitor) State() State {
	return State{
		Running:      m.running,
		LastActivity: m.lastActivity,
		WarnFired:    m.warnFired,
		TimeoutFired: m.timeoutFired,
	}
}

// reschedule cancels the current cycle and starts a new one.
// Cancellation and rescheduling happen in one call on the scheduler's
// goroutine, so a stale timer can never fire in between.
func (m *Monitor) reschedule() {
	m.cancel()
	m.lastActivity = m.timers.Now()
	m.warnFired = false
	m.timeoutFired = false

	m.warn = m.timers.After(m.cfg.WarnDelay, func() {
		m.warnFired = true
		if m.onWarn != nil {
			m.onWarn()
		}
	})
	m.timeout = m.timers.After(m.cfg.TimeoutDelay, func() {
		m.timeoutFired = true
		if m.onTimeout != nil {
			m.onTimeout()
		}
	})
}

func (m *Monitor) cancel() {
	m.timers.Cancel(m.warn)
	m.timers.Cancel(m.timeout)
	m.warn = timer.Handle{}
	m.timeout = timer.Handle{}
}
