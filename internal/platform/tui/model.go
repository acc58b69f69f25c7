package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/canvas"
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/storage"
)

// Muter is implemented by audio sinks that can be silenced at runtime.
type Muter interface {
	ToggleMute() bool
}

// Options configures a game model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // May be nil; scores are then not persisted
	Audio   game.AudioSink // May be nil
	Logger  *log.Logger    // May be nil
	Player  string

	// ScreenshotDir defaults to ~/.flapper/screenshots.
	ScreenshotDir string
	// NoScreenshots disables the screenshot key, e.g. for remote sessions.
	NoScreenshots bool
	// AllowBack enables the back-to-menu key.
	AllowBack bool
	// Renderer styles output; nil uses the default renderer (SSH sessions
	// pass their own).
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model running one flapper session.
type Model struct {
	opts    Options
	log     *log.Logger
	session *game.Session
	driver  *game.Driver
	overlay *Overlay
	raster  *canvas.Raster
	canvas  *canvas.Canvas
	screen  *core.Screen
	styles  *styleCache
	keys    KeyMap
	help    help.Model
	tickID  int64

	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current round has been saved
}

// NewModel creates a new Bubble Tea model with a fresh session.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	opts.Runtime = rt
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = config.UserPath("screenshots")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	overlay := NewOverlay()
	if opts.Store != nil {
		best, err := opts.Store.HighScore()
		if err != nil {
			logger.Warn("cannot read high score", "err", err)
		}
		overlay.SetBest(best)
	}

	lp := LoggingPresenter{Next: overlay, Audio: opts.Audio, Logger: logger}
	session := game.NewSession(opts.Config,
		game.WithRand(game.NewRand(rt.Seed)),
		game.WithPresenter(lp),
		game.WithAudio(lp),
	)

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)
	keys.Screenshot.SetEnabled(!opts.NoScreenshots)

	m := Model{
		opts:    opts,
		log:     logger,
		session: session,
		driver:  game.NewDriver(session),
		overlay: overlay,
		raster:  canvas.NewRaster(0, 0),
		screen:  core.NewScreen(0, 0),
		styles:  newStyleCache(opts.Renderer),
		keys:    keys,
		help:    help.New(),
		tickID:  nextTickID(),
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickID, m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.flap()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. The impulse is applied immediately
// instead of waiting for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, nil
	case core.ActionFlap:
		m.flap()
	case core.ActionMute:
		m.toggleMute()
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.log.Warn("screenshot failed", "err", err)
			m.overlay.SetStatus("screenshot failed")
		} else {
			m.log.Info("screenshot saved", "path", path)
			m.overlay.SetStatus("saved " + filepath.Base(path))
		}
	}
	return m, nil
}

func (m *Model) flap() {
	m.session.Impulse()
	if m.session.State() == game.StatePlaying {
		m.scoreSaved = false
	}
}

func (m *Model) toggleMute() {
	mu, ok := m.opts.Audio.(Muter)
	if !ok {
		m.overlay.SetStatus("sound unavailable")
		return
	}
	if mu.ToggleMute() {
		m.overlay.SetStatus("sound off")
	} else {
		m.overlay.SetStatus("sound on")
	}
}

// resize fits the playfield to the terminal. The last row holds the help line.
func (m *Model) resize(w, h int) {
	m.opts.Runtime.ScreenW = w
	m.opts.Runtime.ScreenH = h
	rows := core.Max(h-1, 0)
	m.screen.Resize(w, rows)
	pw, ph := rasterSize(w, rows, m.opts.Config.TUI.HalfBlock)
	m.raster.Resize(pw, ph)
	m.canvas = canvas.New(m.raster, m.opts.Config.Canvas.Width, m.opts.Config.Canvas.Height)
	m.canvas.Fit()
	m.help.Width = w
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.driver.Update()
	m.overlay.Tick()

	// Save the run on game over (once)
	if m.session.State() == game.StateGameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.saveRun()
	}

	return m, tickCmd(m.tickID, m.opts.Runtime.TickRate)
}

func (m *Model) saveRun() {
	score := m.session.Score()
	if score > m.overlay.Best() {
		m.overlay.SetBest(score)
	}
	if m.opts.Store == nil {
		return
	}
	run, err := m.opts.Store.SaveRun(m.opts.Player, score, m.session.Frames())
	if err != nil {
		m.log.Warn("cannot save run", "err", err)
		return
	}
	m.log.Info("run saved", "run", run.RunID, "player", run.Player, "score", run.Score)
}

// saveScreenshot writes the current frame as plain text and as a PNG rendered
// at the logical canvas size.
func (m *Model) saveScreenshot() (string, error) {
	if m.opts.ScreenshotDir == "" {
		return "", errors.New("tui: no screenshot directory")
	}
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	// Generate filename with timestamp
	base := filepath.Join(m.opts.ScreenshotDir, "flapper_"+time.Now().Format("20060102_150405"))

	m.render()
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}

	cfg := m.opts.Config.Canvas
	r := canvas.NewRaster(int(cfg.Width), int(cfg.Height))
	m.driver.Draw(canvas.New(r, cfg.Width, cfg.Height))

	f, err := os.Create(base + ".png")
	if err != nil {
		return "", fmt.Errorf("tui: create screenshot: %w", err)
	}
	defer f.Close()
	if err := r.WritePNG(f); err != nil {
		return "", fmt.Errorf("tui: encode screenshot: %w", err)
	}
	return base + ".png", nil
}

// render draws the scene into the cell buffer.
func (m *Model) render() {
	m.driver.Draw(m.canvas)
	m.screen.Clear()
	RasterToScreen(m.raster, m.screen, m.opts.Config.TUI.HalfBlock)
	m.overlay.Draw(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.render()
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Session returns the running game session.
func (m Model) Session() *game.Session {
	return m.session
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse click flaps
	)

	_, err := p.Run()
	return err
}
