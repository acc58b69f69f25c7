// Package desktop runs flapper in an Ebitengine window.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flapper/internal/canvas"
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/storage"
)

// Options configures the desktop window.
type Options struct {
	Config   config.Config
	Runtime  core.RuntimeConfig
	Store    *storage.Store // May be nil
	Settings *SettingsStore // May be nil
	Player   string
	Logger   *log.Logger // May be nil
}

// App implements ebiten.Game around one session.
type App struct {
	opts     Options
	log      *log.Logger
	session  *game.Session
	driver   *game.Driver
	hud      *HUD
	sound    *Sound
	settings Settings
	backend  *triangleBackend
	canvas   *canvas.Canvas
	width    int
	height   int
	touches  []ebiten.TouchID
	input    core.InputFrame
	saved    bool
}

// DefaultSettings derives the initial settings from the configuration.
func DefaultSettings(cfg config.Config) Settings {
	return Settings{
		Muted:  !cfg.Audio.Enabled,
		Volume: cfg.Audio.Volume,
		Scale:  cfg.Window.Scale,
	}
}

// NewApp creates the window game. It creates the process-wide audio context.
func NewApp(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	st, err := opts.Settings.Load(DefaultSettings(opts.Config))
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}
	hud.SetMuted(st.Muted)
	if opts.Store != nil {
		best, err := opts.Store.HighScore()
		if err != nil {
			logger.Warn("cannot read high score", "err", err)
		}
		hud.SetBest(best)
	}

	a := &App{
		opts:     opts,
		log:      logger,
		hud:      hud,
		sound:    NewSound(opts.Config.Audio, st.Volume, st.Muted),
		settings: st,
		backend:  &triangleBackend{},
		input:    core.NewInputFrame(),
	}
	a.canvas = canvas.New(a.backend, opts.Config.Canvas.Width, opts.Config.Canvas.Height)
	a.session = game.NewSession(opts.Config,
		game.WithRand(game.NewRand(seed)),
		game.WithPresenter(hud),
		game.WithAudio(a.sound),
	)
	a.driver = game.NewDriver(a.session)
	return a, nil
}

// Update reads input and advances the simulation by one frame.
func (a *App) Update() error {
	a.input.Clear()
	a.pollInput(&a.input)
	if !a.apply(a.input) {
		return ebiten.Termination
	}
	return nil
}

// apply runs one frame with the given input. It reports false once the
// window should close.
func (a *App) apply(in core.InputFrame) bool {
	if in.Has(core.ActionQuit) {
		return false
	}
	if in.Has(core.ActionMute) {
		a.toggleMute()
	}
	if in.Has(core.ActionFlap) {
		a.session.Impulse()
		if a.session.State() == game.StatePlaying {
			a.saved = false
		}
	}

	a.driver.Update()

	// Save the run on game over (once)
	if a.session.State() == game.StateGameOver && !a.saved {
		a.saved = true
		a.saveRun()
	}
	return true
}

func (a *App) pollInput(f *core.InputFrame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		f.Set(core.ActionQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		f.Set(core.ActionMute)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Set(core.ActionFlap)
		return
	}
	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	if len(a.touches) > 0 {
		f.Set(core.ActionFlap)
	}
}

func (a *App) toggleMute() {
	a.settings.Muted = a.sound.ToggleMute()
	a.hud.SetMuted(a.settings.Muted)
	if err := a.opts.Settings.Save(a.settings); err != nil {
		a.log.Warn("cannot save settings", "err", err)
	}
}

func (a *App) saveRun() {
	score := a.session.Score()
	if score > a.hud.Best() {
		a.hud.SetBest(score)
	}
	if a.opts.Store == nil {
		return
	}
	run, err := a.opts.Store.SaveRun(a.opts.Player, score, a.session.Frames())
	if err != nil {
		a.log.Warn("cannot save run", "err", err)
		return
	}
	a.log.Info("run saved", "run", run.RunID, "score", run.Score)
}

// Draw renders the scene and the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	a.backend.dst = screen
	if s := screen.Bounds().Size(); s.X != a.width || s.Y != a.height {
		a.width, a.height = s.X, s.Y
		a.canvas.Fit()
	}
	a.driver.Draw(a.canvas)
	a.hud.Draw(screen, a.canvas)
}

// Layout keeps a one-to-one mapping with the window; the canvas letterboxes
// the playfield inside it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}

	scale := app.settings.Scale
	if scale <= 0 {
		scale = 1
	}
	cw, ch := opts.Config.Canvas.Width, opts.Config.Canvas.Height
	ebiten.SetWindowSize(int(cw*scale), int(ch*scale))
	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
