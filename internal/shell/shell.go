// Package shell is the kiosk's navigation layer. It owns the menu, the
// active game visit, and the inactivity monitor that sends an idle visitor
// back to the menu.
package shell

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/idle"
	"github.com/vovakirdan/mysteries/internal/random"
	"github.com/vovakirdan/mysteries/internal/registry"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// Mode is the top-level screen.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModePlaying {
		return "playing"
	}
	return "menu"
}

// ExitReason tells why a visit ended.
type ExitReason int

const (
	ExitBack    ExitReason = iota // Visitor chose to go back
	ExitTimeout                   // Inactivity timeout
	ExitQuit                      // Application shutting down
)

// String returns the reason name.
func (r ExitReason) String() string {
	switch r {
	case ExitTimeout:
		return "timeout"
	case ExitQuit:
		return "quit"
	default:
		return "back"
	}
}

// Visit is one stay inside a game, from selection to leaving it.
type Visit struct {
	ID     string
	GameID string
}

// Hooks observe visits. Any of them may be nil.
type Hooks struct {
	OnEnter func(v Visit)
	OnEvent func(v Visit, e core.Event)
	OnExit  func(v Visit, reason ExitReason)
}

// Options configure a Shell.
type Options struct {
	Scheduler *timer.Scheduler
	Content   config.Content
	Runtime   core.RuntimeConfig
	Idle      idle.Config
	Logger    *log.Logger
	Hooks     Hooks
}

// ErrUnknownGame is returned by Select for an id that is not registered.
var ErrUnknownGame = errors.New("shell: unknown game")

// Shell switches between the menu and one game at a time.
type Shell struct {
	sched   *timer.Scheduler
	content config.Content
	runtime core.RuntimeConfig
	logger  *log.Logger
	hooks   Hooks
	monitor *idle.Monitor
	seeds   *random.Source // One stream for the whole run; each visit draws from it

	mode    Mode
	items   []registry.GameInfo
	cursor  int
	game    registry.Game
	visit   Visit
	timers  *timer.Group
	warning bool
}

// New creates a shell showing the menu. Call Start to arm the idle monitor.
func New(opts Options) (*Shell, error) {
	if opts.Scheduler == nil {
		return nil, errors.New("shell: scheduler is required")
	}
	if opts.Idle == (idle.Config{}) {
		opts.Idle = idle.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	monitor, err := idle.New(opts.Scheduler, opts.Idle)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Shell{
		sched:   opts.Scheduler,
		content: opts.Content,
		runtime: opts.Runtime,
		logger:  opts.Logger,
		hooks:   opts.Hooks,
		monitor: monitor,
		seeds:   random.New(seed),
		items:   registry.List(),
	}, nil
}

// Start arms the inactivity monitor.
func (s *Shell) Start() {
	s.monitor.Start(s.onWarn, s.onTimeout)
}

// Stop ends any visit and disarms the monitor.
func (s *Shell) Stop() {
	s.endVisit(ExitQuit)
	s.monitor.Stop()
}

func (s *Shell) onWarn() {
	s.warning = true
	s.logger.Info("idle warning", "mode", s.mode, "game", s.visit.GameID)
}

func (s *Shell) onTimeout() {
	s.logger.Info("idle timeout", "mode", s.mode, "game", s.visit.GameID)
	s.warning = false
	s.endVisit(ExitTimeout)
	s.cursor = 0
}

// NotifyActivity records visitor input: it restarts both idle countdowns
// and dismisses the warning.
func (s *Shell) NotifyActivity() {
	s.monitor.NotifyActivity()
	if s.warning {
		s.logger.Debug("idle warning dismissed")
	}
	s.warning = false
}

// Select opens the game with the given id. Any current visit ends first.
func (s *Shell) Select(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}

	game, err := registry.Create(id, s.content)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	s.endVisit(ExitBack)

	// Each visit draws its own seed from the run's stream
	runtime := s.runtime
	runtime.Seed = s.seeds.NextSeed()

	s.timers = s.sched.NewGroup()
	s.game = game
	s.game.Reset(runtime, s.timers)
	s.visit = Visit{ID: uuid.NewString(), GameID: id}
	s.mode = ModePlaying
	for i, it := range s.items {
		if it.ID == id {
			s.cursor = i
		}
	}

	s.logger.Info("visit started", "game", id, "visit", s.visit.ID)
	if s.hooks.OnEnter != nil {
		s.hooks.OnEnter(s.visit)
	}
	return nil
}

// ReturnToMenu ends the current visit. Calling it from the menu does nothing.
func (s *Shell) ReturnToMenu() {
	s.endVisit(ExitBack)
}

// endVisit tears down the game: its timer group is stopped, so no pending
// transition can fire after the visitor has left.
func (s *Shell) endVisit(reason ExitReason) {
	if s.mode != ModePlaying {
		return
	}
	visit := s.visit

	s.timers.Stop()
	s.timers = nil
	s.game = nil
	s.visit = Visit{}
	s.mode = ModeMenu

	s.logger.Info("visit ended", "game", visit.GameID, "visit", visit.ID, "reason", reason)
	if s.hooks.OnExit != nil {
		s.hooks.OnExit(visit, reason)
	}
}

// Step applies one tick of input. Non-empty input counts as activity.
// Back leaves a game; in the menu the cursor keys pick a game.
func (s *Shell) Step(in core.InputFrame) core.StepResult {
	if !in.Empty() {
		s.NotifyActivity()
	}

	if s.mode == ModeMenu {
		s.stepMenu(in)
		return core.StepResult{}
	}

	if in.Has(core.ActionBack) {
		s.ReturnToMenu()
		return core.StepResult{}
	}

	visit := s.visit
	result := s.game.Step(in)
	if s.hooks.OnEvent != nil {
		for _, e := range result.Events {
			s.hooks.OnEvent(visit, e)
		}
	}
	return result
}

func (s *Shell) stepMenu(in core.InputFrame) {
	if len(s.items) == 0 {
		return
	}
	switch {
	case in.Option > 0 && in.Option <= len(s.items):
		s.cursor = in.Option - 1
		s.selectCursor()
	case in.Has(core.ActionConfirm):
		s.selectCursor()
	case in.Has(core.ActionUp):
		if s.cursor > 0 {
			s.cursor--
		}
	case in.Has(core.ActionDown):
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	}
}

func (s *Shell) selectCursor() {
	id := s.items[s.cursor].ID
	if err := s.Select(id); err != nil {
		s.logger.Error("cannot open game", "game", id, "error", err)
	}
}

// Resize updates the screen size handed to future visits.
func (s *Shell) Resize(w, h int) {
	s.runtime.ScreenW = w
	s.runtime.ScreenH = h
}

// Mode returns the current screen.
func (s *Shell) Mode() Mode {
	return s.mode
}

// Game returns the active game, nil in the menu.
func (s *Shell) Game() registry.Game {
	return s.game
}

// Visit returns the active visit; zero in the menu.
func (s *Shell) Visit() Visit {
	return s.visit
}

// Warning reports whether the idle warning is showing.
func (s *Shell) Warning() bool {
	return s.warning
}

// Items returns the menu entries in order.
func (s *Shell) Items() []registry.GameInfo {
	return s.items
}

// Cursor returns the highlighted menu entry.
func (s *Shell) Cursor() int {
	return s.cursor
}

// IdleState exposes the monitor for diagnostics.
func (s *Shell) IdleState() idle.State {
	return s.monitor.State()
}

