package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/storage"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{ChoicePlay, "Play"},
	{ChoiceScores, "High scores"},
	{ChoiceQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	player   string
	best     int
	renderer *lipgloss.Renderer
	quitting bool
	selected MenuChoice
}

// NewMenuModel creates a new menu model. The store is only read for the
// player's best score and may be nil.
func NewMenuModel(store *storage.Store, player string, width, height int, r *lipgloss.Renderer, logger *log.Logger) MenuModel {
	if player == "" {
		player = storage.DefaultPlayer
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	best := 0
	if store != nil {
		var err error
		best, err = store.PlayerHighScore(player)
		if err != nil && logger != nil {
			logger.Warn("cannot read player high score", "player", player, "err", err)
		}
	}

	return MenuModel{
		items:    menuItems,
		width:    width,
		height:   height,
		player:   player,
		best:     best,
		renderer: r,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.items[m.cursor].Choice
		if m.selected == ChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700"))
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	// Leave a little headroom on tall terminals
	for range max((m.height-len(m.items)-9)/3, 1) {
		b.WriteString("\n")
	}

	b.WriteString(centerText(titleStyle.Render("F L A P P E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("%s  |  best %d", m.player, m.best)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width. Styled text is measured by its
// printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
