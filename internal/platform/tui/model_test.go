package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapper/internal/audio"
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Config:        config.Default(),
		Runtime:       core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1},
		ScreenshotDir: t.TempDir(),
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

// tickUntil ticks until the session reaches the state or the limit is hit.
func tickUntil(t *testing.T, m Model, state game.State, limit int) Model {
	t.Helper()
	for range limit {
		if m.Session().State() == state {
			return m
		}
		m, _ = update(t, m, TickMsg{ID: m.tickID})
	}
	t.Fatalf("state %v not reached after %d ticks (at %v)", state, limit, m.Session().State())
	return m
}

type fakeMuter struct {
	audio.Counter
	muted bool
}

func (f *fakeMuter) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func TestModelStartsOnStartPanel(t *testing.T) {
	m := NewModel(testOptions(t))

	if m.Session().State() != game.StateStart {
		t.Fatalf("State() = %v, expected start", m.Session().State())
	}
	if !strings.Contains(m.View(), "F L A P P E R") {
		t.Error("view should show the start panel")
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
}

func TestModelFlapIsImmediate(t *testing.T) {
	m := NewModel(testOptions(t))

	m, _ = update(t, m, spaceKey)

	if m.Session().State() != game.StatePlaying {
		t.Fatalf("State() = %v, expected playing", m.Session().State())
	}
	if v := m.Session().Bird().Velocity; v != -9 {
		t.Errorf("Velocity = %v, expected -9 before any tick", v)
	}
}

func TestModelMouseClickFlaps(t *testing.T) {
	m := NewModel(testOptions(t))

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.Session().State() != game.StatePlaying {
		t.Errorf("State() = %v, expected playing after a click", m.Session().State())
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	opts := testOptions(t)
	opts.Store = openTestStore(t)
	opts.Player = "alice"
	m := NewModel(opts)

	m, _ = update(t, m, spaceKey)
	m = tickUntil(t, m, game.StateGameOver, 500)
	frames := m.Session().Frames()

	// More ticks in game over must not save again
	for range 10 {
		m, _ = update(t, m, TickMsg{ID: m.tickID})
	}

	runs, err := opts.Store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Player != "alice" || runs[0].Frames != frames {
		t.Errorf("saved run = %+v, expected player alice with %d frames", runs[0], frames)
	}

	// Replay and lose again
	m, _ = update(t, m, spaceKey)
	if m.Session().State() != game.StatePlaying {
		t.Fatalf("State() = %v, expected playing after replay", m.Session().State())
	}
	tickUntil(t, m, game.StateGameOver, 500)

	runs, err = opts.Store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("saved %d runs after replay, expected 2", len(runs))
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(testOptions(t))

	m, _ = update(t, m, spaceKey)
	m = tickUntil(t, m, game.StateGameOver, 500)

	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should show the game over panel")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := NewModel(testOptions(t))
	m, _ = update(t, m, spaceKey)

	m, cmd := update(t, m, TickMsg{ID: m.tickID + 1000})
	if cmd != nil {
		t.Error("a stale tick should not schedule another tick")
	}
	if m.Session().Frames() != 0 {
		t.Errorf("Frames() = %d, expected 0 after a stale tick", m.Session().Frames())
	}

	m, cmd = update(t, m, TickMsg{ID: m.tickID})
	if cmd == nil || m.Session().Frames() != 1 {
		t.Error("an own tick should advance and reschedule")
	}
}

func TestModelMute(t *testing.T) {
	t.Run("muter", func(t *testing.T) {
		opts := testOptions(t)
		mu := &fakeMuter{}
		opts.Audio = mu
		m := NewModel(opts)

		m, _ = update(t, m, runeKey("m"))
		if !mu.muted {
			t.Error("m should toggle mute")
		}
		m, _ = update(t, m, spaceKey)
		if mu.Count(game.CueFap) != 1 {
			t.Errorf("fap cue count = %d, expected 1", mu.Count(game.CueFap))
		}
	})

	t.Run("no muter", func(t *testing.T) {
		opts := testOptions(t)
		opts.Audio = &audio.Counter{}
		m := NewModel(opts)

		m, _ = update(t, m, runeKey("m"))
		if !strings.Contains(m.View(), "sound unavailable") {
			t.Error("status should report missing sound control")
		}
	})
}

func TestModelScreenshot(t *testing.T) {
	opts := testOptions(t)
	m := NewModel(opts)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(opts.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	var txt, png int
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".txt":
			txt++
		case ".png":
			png++
		}
	}
	if txt != 1 || png != 1 {
		t.Errorf("screenshot wrote %d txt and %d png files, expected one each", txt, png)
	}
}

func TestModelScreenshotDisabled(t *testing.T) {
	opts := testOptions(t)
	opts.NoScreenshots = true
	m := NewModel(opts)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(opts.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("screenshots disabled but %d files written", len(entries))
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := NewModel(testOptions(t))

	m, _ = update(t, m, escKey)
	if m.BackToMenu() {
		t.Error("back should be ignored when not allowed")
	}

	m, cmd := update(t, m, runeKey("q"))
	if !m.Quitting() || cmd == nil {
		t.Error("q should quit")
	}

	opts := testOptions(t)
	opts.AllowBack = true
	m = NewModel(opts)
	m, _ = update(t, m, escKey)
	if !m.BackToMenu() {
		t.Error("esc should go back when allowed")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(testOptions(t))
	m, _ = update(t, m, spaceKey)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 31})

	if w, h := m.raster.Size(); w != 60 || h != 60 {
		t.Errorf("raster = %dx%d, expected 60x60", w, h)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 60x30", m.screen.Width(), m.screen.Height())
	}
	if m.Session().State() != game.StatePlaying {
		t.Error("resize should not reset the round")
	}
}

func TestModelStatusClearsAfterTicks(t *testing.T) {
	opts := testOptions(t)
	opts.Audio = &audio.Counter{}
	m := NewModel(opts)

	m, _ = update(t, m, runeKey("m"))
	if !strings.Contains(m.View(), "sound unavailable") {
		t.Fatal("status should show after pressing m")
	}
	for range statusFrames {
		m, _ = update(t, m, TickMsg{ID: m.tickID})
	}
	if strings.Contains(m.View(), "sound unavailable") {
		t.Error("status should clear once its frames run out")
	}
}
