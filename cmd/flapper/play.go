package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapper/internal/audio"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/platform/tui"
	"github.com/vovakirdan/flapper/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal.

Controls:
  Space/Up/W  - Flap (also starts and restarts)
  Mouse click - Flap
  M           - Toggle sound
  Ctrl+S      - Save a screenshot (text and PNG)
  Q/Ctrl+C    - Quit

Examples:
  flapper play
  flapper play --seed 42
  flapper play --config ./my-flapper.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Menu with play and high scores",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, windowCmd} {
		c.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name stored with scores")
	}
}

// defaultPlayer is the login name, or the shared local player.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.DefaultPlayer
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// openSpeaker opens the sound device, falling back to silence.
func openSpeaker(logger *log.Logger) (game.AudioSink, func()) {
	sp, err := audio.NewSpeaker(gameConfig.Audio)
	if err != nil {
		if errors.Is(err, audio.ErrNoDevice) {
			logger.Warn("sound disabled", "err", err)
		} else {
			logger.Error("sound disabled", "err", err)
		}
		return audio.Silent{}, func() {}
	}
	return sp, sp.Close
}

// tuiOptions assembles the shared terminal front-end options. The returned
// cleanup closes everything that was opened.
func tuiOptions() (tui.Options, func()) {
	logger, closeLog := fileLogger("flapper")
	logger.Info("starting", "config", configSource)

	store := openStore(logger)
	sink, closeSound := openSpeaker(logger)

	width, height := terminalSize()
	opts := tui.Options{
		Config:  gameConfig,
		Runtime: runtimeConfig(width, height),
		Store:   store,
		Audio:   sink,
		Logger:  logger,
		Player:  flagPlayer,
	}
	return opts, func() {
		closeSound()
		if store != nil {
			store.Close()
		}
		closeLog()
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts, cleanup := tuiOptions()
	defer cleanup()

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	opts, cleanup := tuiOptions()
	defer cleanup()

	if err := tui.RunSession(opts); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
