package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/idle"
	"github.com/vovakirdan/mysteries/internal/shell"
	"github.com/vovakirdan/mysteries/internal/storage"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// menuStars is the number of twinkling stars behind the menu.
const menuStars = 60

// Options configure the kiosk application.
type Options struct {
	Content config.Content
	Runtime core.RuntimeConfig
	Idle    idle.Config
	Store   *storage.Store // May be nil; the journal is then disabled
	Logger  *log.Logger

	// StartGame opens this game immediately instead of the menu.
	StartGame string
	// QuitOnMenu exits the program when the visitor leaves the game.
	QuitOnMenu bool
}

// Model is the Bubble Tea model for the kiosk. All state lives behind
// pointers, so value copies made by Bubble Tea share it.
type Model struct {
	shell      *shell.Shell
	sched      *timer.Scheduler
	screen     *core.Screen
	keys       KeyMap
	inputFrame core.InputFrame
	field      core.StarField
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig

	journal    *JournalModel // Non-nil while the journal is open
	lastTick   time.Time
	quitOnMenu bool
	quitting   bool
}

// NewModel creates the kiosk model and its shell.
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := &Model{
		sched:      timer.NewScheduler(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		field:      core.NewStarField(menuStars, cfg.Seed),
		store:      opts.Store,
		logger:     opts.Logger,
		config:     cfg,
		quitOnMenu: opts.QuitOnMenu,
	}

	sh, err := shell.New(shell.Options{
		Scheduler: m.sched,
		Content:   opts.Content,
		Runtime:   cfg,
		Idle:      opts.Idle,
		Logger:    opts.Logger,
		Hooks:     newJournalHooks(opts.Store, opts.Logger),
	})
	if err != nil {
		return nil, err
	}
	m.shell = sh

	if opts.StartGame != "" {
		if err := sh.Select(opts.StartGame); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Shell returns the navigation shell.
func (m *Model) Shell() *shell.Shell {
	return m.shell
}

// Init starts the idle monitor and the tick loop.
func (m *Model) Init() tea.Cmd {
	m.shell.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Any key counts as presence, bound or not
		m.shell.NotifyActivity()
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Drags, releases and wheel scrolls count too, not only clicks
		m.shell.NotifyActivity()
		if m.journal == nil && MapMouseToFrame(msg, &m.inputFrame) {
			m.mapMenuClick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.journal != nil {
		j, cmd := m.journal.Update(msg)
		if j.IsQuitting() {
			return m.quit()
		}
		if j.Done() {
			m.journal = nil
			return m, nil
		}
		m.journal = &j
		return m, cmd
	}

	if m.shell.Mode() == shell.ModeMenu && m.store != nil && msg.String() == "tab" {
		j := NewJournalModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.journal = &j
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		return m.quit()
	}
	return m, nil
}

// mapMenuClick turns a click on a menu entry into a direct pick.
func (m *Model) mapMenuClick() {
	if m.shell.Mode() != shell.ModeMenu || m.inputFrame.Click == nil {
		return
	}
	if i := menuItemAt(m.inputFrame.Click.Y, len(m.shell.Items())); i >= 0 {
		m.inputFrame.Option = i + 1
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.shell.Stop()
	m.quitting = true
	return m, tea.Quit
}

// handleResize processes window resize events. Running games keep their
// state; they read the screen size when they render.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.shell.Resize(msg.Width, msg.Height)

	if m.journal != nil {
		j, _ := m.journal.Update(msg)
		m.journal = &j
	}
	return m, nil
}

// handleTick advances virtual time by the wall-clock gap since the last
// tick, then steps the shell with the input gathered in between.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.sched.Advance(elapsed(m.lastTick, now, m.config.TickRate))
	m.lastTick = now

	// The idle reset also closes the journal
	if m.journal != nil && m.shell.IdleState().TimeoutFired {
		m.journal = nil
	}

	m.shell.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.quitOnMenu && m.shell.Mode() == shell.ModeMenu {
		return m.quit()
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.journal != nil {
		return m.journal.View()
	}

	m.renderTo(m.screen)
	return RenderScreen(m.screen)
}

// renderTo draws the active screen and the idle warning into dst.
func (m *Model) renderTo(dst *core.Screen) {
	if game := m.shell.Game(); game != nil {
		dst.Clear()
		game.Render(dst)
	} else {
		renderMenu(dst, m.shell.Items(), m.shell.Cursor(), m.field, m.sched.Now(), m.store != nil)
	}

	if m.shell.Warning() {
		drawWarning(dst)
	}
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks tap the sky and pick menu entries
	)

	_, err = p.Run()
	return err
}
