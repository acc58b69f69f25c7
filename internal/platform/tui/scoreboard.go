package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/flapper/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the view list sidebar
	sidebarWidth       = 20  // Width of the view list sidebar
	maxScores          = 100 // Max rows to load
)

// ScoreView selects what the scoreboard lists.
type ScoreView int

const (
	ViewTop     ScoreView = iota // Best runs of all players
	ViewMine                     // Best runs of the current player
	ViewPlayers                  // Per-player statistics
)

var scoreViews = []ScoreView{ViewTop, ViewMine, ViewPlayers}

// Title returns the tab label for the view.
func (v ScoreView) Title() string {
	switch v {
	case ViewTop:
		return "Top runs"
	case ViewMine:
		return "Your runs"
	case ViewPlayers:
		return "Players"
	default:
		return "Unknown"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextView key.Binding
	PrevView key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev view"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next view"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev view"),
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

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store       *storage.Store
	player      string
	view        int // Index into scoreViews
	rows        []table.Row
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	renderer    *lipgloss.Renderer
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the view list sidebar
}

// NewScoreboardModel creates a new scoreboard model. A nil renderer uses the
// default one.
func NewScoreboardModel(store *storage.Store, player string, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	if player == "" {
		player = storage.DefaultPlayer
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		store:       store,
		player:      player,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		renderer:    r,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// current returns the selected view.
func (m ScoreboardModel) current() ScoreView {
	return scoreViews[m.view]
}

// columns returns the table columns for the current view.
func (m ScoreboardModel) columns() []table.Column {
	if m.current() == ViewPlayers {
		return []table.Column{
			{Title: "Player", Width: 14},
			{Title: "Runs", Width: 6},
			{Title: "Best", Width: 6},
			{Title: "Avg", Width: 6},
			{Title: "Last played", Width: 16},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Frames", Width: 8},
		{Title: "When", Width: 16},
	}
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := m.columns()

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Shrink the last column on narrow terminals
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width + 2
	}
	if rest := tableWidth - used - 2; rest < columns[len(columns)-1].Width {
		columns[len(columns)-1].Width = max(rest, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
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

// load queries the store for the current view.
func (m *ScoreboardModel) load() {
	m.rows = nil
	m.loadErr = nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	switch m.current() {
	case ViewTop, ViewMine:
		var (
			runs []storage.Run
			err  error
		)
		if m.current() == ViewTop {
			runs, err = m.store.TopScores(maxScores)
		} else {
			runs, err = m.store.TopScoresForPlayer(m.player, maxScores)
		}
		if err != nil {
			m.loadErr = err
			break
		}
		m.rows = runRows(runs)

	case ViewPlayers:
		stats, err := m.store.AllPlayerStats()
		if err != nil {
			m.loadErr = err
			break
		}
		m.rows = statsRows(stats)
	}
	m.updateTableRows()
}

// runRows formats runs as ranked table rows.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			strconv.Itoa(r.Score),
			humanize.Comma(int64(r.Frames)),
			humanize.Time(r.CreatedAt),
		}
	}
	return rows
}

// statsRows formats per-player statistics as table rows.
func statsRows(stats []storage.PlayerStats) []table.Row {
	rows := make([]table.Row, len(stats))
	for i, s := range stats {
		rows[i] = table.Row{
			s.Player,
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.HighScore),
			fmt.Sprintf("%.1f", s.AvgScore),
			humanize.Time(s.LastPlayed),
		}
	}
	return rows
}

// updateTableRows updates the table with the loaded rows.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(m.rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// switchView moves to another view and reloads.
func (m *ScoreboardModel) switchView(delta int) {
	m.view = (m.view + delta + len(scoreViews)) % len(scoreViews)
	m.table = m.createTable()
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView), key.Matches(msg, m.keys.Right):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView), key.Matches(msg, m.keys.Left):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("HIGH SCORES - %s", m.current().Title())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		// Wide layout: sidebar + table
		b.WriteString(m.renderWideLayout())
	} else {
		// Narrow layout: tabs + table
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := m.renderer.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar for view selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Views\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range scoreViews {
		cursor := "  "
		style := m.renderer.NewStyle()
		if i == m.view {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + v.Title()))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	tableStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	// Join horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the scoreboard with view tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := m.renderer.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(scoreViews))
	for i, v := range scoreViews {
		if i == m.view {
			tabs[i] = activeTabStyle.Render(v.Title())
		} else {
			tabs[i] = tabStyle.Render(" " + v.Title() + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		// Just show current view with arrows
		tabLine = fmt.Sprintf("< %s >", m.current().Title())
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.loadErr != nil || m.store == nil || len(m.rows) == 0 {
		msg := "No runs recorded yet.\nPlay a round to set a high score!"
		switch {
		case m.store == nil:
			msg = "Score storage is unavailable."
		case m.loadErr != nil:
			msg = "Cannot load scores:\n" + m.loadErr.Error()
		}
		emptyStyle := m.renderer.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render(msg)
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
