package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/audio"
	"github.com/vovakirdan/flapper/internal/canvas"
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/game"
)

var (
	flagSimFrames    int
	flagSimFlapEvery int
	flagSimRealtime  bool
	flagSimPNG       string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless deterministic round",
	Long: `Run the simulation without a display. An autopilot flaps every
--flap-every frames; the run ends at the first game over or after --frames
frames, whichever comes first. The same seed always gives the same outcome;
--seed 0 falls back to seed 1 so runs stay reproducible.

Examples:
  flapper simulate --seed 42
  flapper simulate --seed 7 --flap-every 30 --frames 3000
  flapper simulate --seed 7 --png final.png
  flapper simulate --realtime --fps 60`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 10000, "Maximum frames to simulate")
	simulateCmd.Flags().IntVar(&flagSimFlapEvery, "flap-every", 35, "Autopilot flap interval in frames (0 = never)")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
	simulateCmd.Flags().StringVar(&flagSimPNG, "png", "", "Write the final frame to this PNG file")
}

// simOptions configures a headless run.
type simOptions struct {
	Seed      int64
	MaxFrames int
	FlapEvery int
	Realtime  bool
	FPS       int
}

// simResult is the outcome of a headless run.
type simResult struct {
	State     game.State
	Score     int
	Frames    int // Frames counted by the session (playing only)
	Steps     int // Driver frames run
	Flaps     int64
	Scores    int64
	GameOvers int64
}

// autopilot flaps on a fixed cadence and stops the run at game over.
type autopilot struct {
	next    game.Scheduler
	session *game.Session
	every   int
	steps   int
}

func (a *autopilot) Wait(ctx context.Context) error {
	a.steps++
	if a.session.State() == game.StateGameOver {
		return game.ErrStop
	}
	if a.every > 0 && a.steps%a.every == 0 {
		a.session.Impulse()
	}
	return a.next.Wait(ctx)
}

// simulate runs one round. The session starts with an impulse so the round
// begins on the first frame.
func simulate(ctx context.Context, cfg config.Config, opts simOptions, dst canvas.Surface) (*game.Session, simResult, error) {
	cues := &audio.Counter{}
	s := game.NewSession(cfg,
		game.WithRand(game.NewRand(opts.Seed)),
		game.WithAudio(cues),
	)
	d := game.NewDriver(s)

	var base game.Scheduler = game.Unthrottled{}
	if opts.Realtime {
		t := game.NewTicker(opts.FPS)
		defer t.Stop()
		base = t
	}
	pilot := &autopilot{session: s, every: opts.FlapEvery, next: base}
	limited := game.Limit(pilot, max(opts.MaxFrames, 1))
	steps := 0
	sched := game.SchedulerFunc(func(ctx context.Context) error {
		steps++
		return limited.Wait(ctx)
	})

	s.Impulse()
	err := d.Run(ctx, sched, dst)

	return s, simResult{
		State:     s.State(),
		Score:     s.Score(),
		Frames:    s.Frames(),
		Steps:     steps,
		Flaps:     cues.Count(game.CueFap),
		Scores:    cues.Count(game.CueScore),
		GameOvers: cues.Count(game.CueGameOver),
	}, err
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "flapper-sim")
	logger.Debug("config loaded", "source", configSource)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	opts := simOptions{
		Seed:      seed,
		MaxFrames: flagSimFrames,
		FlapEvery: flagSimFlapEvery,
		Realtime:  flagSimRealtime,
		FPS:       flagFPS,
	}

	s, res, err := simulate(ctx, gameConfig, opts, nil)
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	printResult(cmd.OutOrStdout(), seed, res)

	if flagSimPNG != "" {
		if err := writeFramePNG(flagSimPNG, s); err != nil {
			return err
		}
		logger.Info("final frame written", "path", flagSimPNG)
	}
	return nil
}

func printResult(w io.Writer, seed int64, r simResult) {
	fmt.Fprintf(w, "seed:       %d\n", seed)
	fmt.Fprintf(w, "state:      %s\n", r.State)
	fmt.Fprintf(w, "score:      %d\n", r.Score)
	fmt.Fprintf(w, "frames:     %d\n", r.Frames)
	fmt.Fprintf(w, "steps:      %d\n", r.Steps)
	fmt.Fprintf(w, "cues:       fap=%d score=%d gameOver=%d\n", r.Flaps, r.Scores, r.GameOvers)
}

// writeFramePNG renders the session at the logical canvas size.
func writeFramePNG(path string, s *game.Session) error {
	cfg := s.Config().Canvas
	r := canvas.NewRaster(int(cfg.Width), int(cfg.Height))
	game.NewDriver(s).Draw(canvas.New(r, cfg.Width, cfg.Height))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
