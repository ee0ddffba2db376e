package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mysteries/internal/registry"
	"github.com/vovakirdan/mysteries/internal/storage"
)

// Journal layout constants
const (
	maxEntries = 200 // Max entries to load per tab
)

// JournalKeyMap defines the key bindings for the journal.
type JournalKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// journalTab is one filter of the journal: everything, or one game.
type journalTab struct {
	gameID string // Empty for all games
	title  string
}

// JournalModel shows the play journal in a table, one tab per game.
type JournalModel struct {
	tabs     []journalTab
	tab      int
	store    *storage.Store
	entries  []storage.Entry
	stats    *storage.GameStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     JournalKeyMap
	width    int
	height   int
	quitting bool
	done     bool // True once the visitor left the journal
}

// NewJournalModel creates a journal view sized to the terminal.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	tabs := []journalTab{{title: "All games"}}
	for _, g := range registry.List() {
		tabs = append(tabs, journalTab{gameID: g.ID, title: g.Title})
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := JournalModel{
		tabs:   tabs,
		store:  store,
		keys:   DefaultJournalKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *JournalModel) createTable() table.Model {
	detailWidth := m.width - 4 - 14 - 20 - 12 - 8
	if detailWidth < 12 {
		detailWidth = 12
	}
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Game", Width: 20},
		{Title: "Event", Width: 12},
		{Title: "Detail", Width: detailWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats, and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("94")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the entries and stats for the current tab.
func (m *JournalModel) load() {
	m.entries, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		tab := m.tabs[m.tab]
		if tab.gameID == "" {
			m.entries, m.loadErr = m.store.Recent(maxEntries)
		} else {
			m.entries, m.loadErr = m.store.ForGame(tab.gameID, maxEntries)
			if m.loadErr == nil {
				m.stats, m.loadErr = m.store.GetGameStats(tab.gameID)
			}
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded entries.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.CreatedAt.Local().Format("Jan 02 15:04"),
			registry.Title(e.GameID),
			kindLabel(e.Kind),
			e.Detail,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// kindLabel returns the journal wording for an entry kind.
func kindLabel(k storage.Kind) string {
	switch k {
	case storage.KindEntered:
		return "entered"
	case storage.KindProgress:
		return "cleared"
	case storage.KindCompleted:
		return "completed"
	case storage.KindRevealed:
		return "fortune"
	case storage.KindLeft:
		return "left"
	case storage.KindIdleReset:
		return "idle reset"
	default:
		return string(k)
	}
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (JournalModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab--
			if m.tab < 0 {
				m.tab = len(m.tabs) - 1
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("178"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("✦ JOURNAL OF THE MYSTERIES ✦", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.stats != nil {
		line := fmt.Sprintf("Visits: %d   Completed: %d   Fortunes: %d   Idle resets: %d",
			m.stats.Visits, m.stats.Completions, m.stats.Reveals, m.stats.IdleResets)
		b.WriteString(statsStyle.Render(centerText(line, m.width)))
	}
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the game filter tabs.
func (m JournalModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("94")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	width := 0
	for i, t := range m.tabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t.title)
		} else {
			tabs[i] = tabStyle.Render(" " + t.title + " ")
		}
		width += len(t.title) + 3
	}

	if width > m.width-4 {
		return fmt.Sprintf("< %s >", m.tabs[m.tab].title)
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or an explanatory message.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("The journal is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot read the journal: " + m.loadErr.Error())
	case len(m.entries) == 0:
		return emptyStyle.Render("No visits recorded yet.\nThe stars are waiting.")
	}
	return m.table.View()
}

// Done reports whether the visitor left the journal.
func (m JournalModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
