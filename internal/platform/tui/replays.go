package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// maxReplays is the number of replays loaded per filter.
const maxReplays = 100

// ReplaySource lists stored replays. Implemented by *storage.Store.
type ReplaySource interface {
	RecentReplays(gameID string, limit int) ([]storage.ReplayEntry, error)
}

// ReplaySummary is a stored replay with its outcome recomputed.
type ReplaySummary struct {
	Entry  storage.ReplayEntry
	Score  int
	Lines  int
	Pieces int
}

// SummarizeReplay re-simulates a stored replay to recover its outcome.
func SummarizeReplay(e storage.ReplayEntry) (ReplaySummary, error) {
	j, err := e.Journal()
	if err != nil {
		return ReplaySummary{Entry: e}, err
	}
	eng, err := tetris.Replay(j)
	if err != nil {
		return ReplaySummary{Entry: e}, fmt.Errorf("replay %d: %w", e.ID, err)
	}
	return ReplaySummary{
		Entry:  e,
		Score:  eng.Score(),
		Lines:  eng.Lines(),
		Pieces: eng.PiecesLocked(),
	}, nil
}

// ReplayKeyMap defines the key bindings for the replay browser.
type ReplayKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Select, k.Quit},
	}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayBrowserModel is the Bubble Tea model for browsing stored replays.
type ReplayBrowserModel struct {
	filters  []registry.GameInfo // First entry matches every mode
	filter   int
	source   ReplaySource
	replays  []ReplaySummary
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ReplayKeyMap
	width    int
	height   int
	quitting bool
	selected int64
}

// NewReplayBrowserModel creates a replay browser over source.
func NewReplayBrowserModel(source ReplaySource, width, height int) ReplayBrowserModel {
	filters := append([]registry.GameInfo{{ID: "", Title: "All"}}, registry.List()...)

	m := ReplayBrowserModel{
		filters: filters,
		source:  source,
		keys:    DefaultReplayKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates the replay table sized to the window.
func (m *ReplayBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Mode", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Pieces", Width: 7},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, tabs and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches replays for the current filter and recomputes their outcomes.
func (m *ReplayBrowserModel) load() {
	m.replays = nil
	m.loadErr = nil

	if m.source != nil {
		entries, err := m.source.RecentReplays(m.filters[m.filter].ID, maxReplays)
		if err != nil {
			m.loadErr = err
		}
		for _, e := range entries {
			sum, err := SummarizeReplay(e)
			if err != nil {
				continue // Unreadable rows are skipped
			}
			m.replays = append(m.replays, sum)
		}
	}

	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.Entry.ID),
			modeTitle(m.filters, r.Entry.GameID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%d", r.Pieces),
			r.Entry.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func modeTitle(filters []registry.GameInfo, id string) string {
	for _, f := range filters[1:] {
		if f.ID == id {
			return f.Title
		}
	}
	return id
}

// Init initializes the browser.
func (m ReplayBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m ReplayBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.replays) > 0 {
				m.selected = m.replays[m.table.Cursor()].Entry.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.filter = (m.filter + 1) % len(m.filters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.filter = (m.filter + len(m.filters) - 1) % len(m.filters)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m ReplayBrowserModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("REPLAYS"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.filters))
	for i, f := range m.filters {
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(f.Title)
		} else {
			tabs[i] = tabStyle.Render(f.Title)
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ReplayBrowserModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render(fmt.Sprintf("Could not load replays:\n%v", m.loadErr))
	case len(m.replays) == 0:
		return emptyStyle.Render("No replays recorded yet.\nFinish a game to record one!")
	}
	return m.table.View()
}

// Selected returns the ID of the chosen replay, or 0.
func (m ReplayBrowserModel) Selected() int64 {
	return m.selected
}

// Replays returns the summaries currently shown.
func (m ReplayBrowserModel) Replays() []ReplaySummary {
	return m.replays
}

// RunReplayBrowser runs the browser and returns the chosen replay ID, or 0.
func RunReplayBrowser(source ReplaySource, width, height int) (int64, error) {
	model := NewReplayBrowserModel(source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(ReplayBrowserModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
