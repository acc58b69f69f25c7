// flapper is a side-scrolling flap-through-the-gaps game for the terminal,
// the desktop and SSH.
//
// Usage:
//
//	flapper play      - Play in the terminal
//	flapper menu      - Menu with play and high scores
//	flapper window    - Play in a desktop window
//	flapper serve     - Start SSH server for remote play
//	flapper scores    - Show high scores
//	flapper simulate  - Run a headless deterministic round
//	flapper config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flapper/scores.db)
//	--config <path>      - Load game tuning from a YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// Loaded by the root PersistentPreRunE.
var (
	gameConfig   config.Config
	configSource string
	logLevel     log.Level
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapper",
	Short: "Flapper - flap through the gaps",
	Long: `Flapper is a one-button side-scroller: tap to flap, pass between the
pipes, do not touch anything.

Available commands:
  play      - Play in the terminal
  menu      - Menu with play and high scores
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Headless deterministic run
  config    - Print the effective configuration

Examples:
  flapper play
  flapper window
  flapper serve --ssh :2222
  flapper scores --player alice
  flapper simulate --seed 42 --flap-every 35`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game configuration and log level for every command.
func loadConfig(cmd *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logLevel = lvl

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	gameConfig = cfg
	configSource = src
	return nil
}

// runtimeConfig builds the front-end settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger creates a logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel,
	})
}

// fileLogger logs to ~/.flapper/flapper.log for front-ends that own the
// terminal. The returned closer must be called on exit.
func fileLogger(prefix string) (*log.Logger, func()) {
	path := config.UserPath("flapper.log")
	if path == "" {
		return newLogger(io.Discard, prefix), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	return newLogger(f, prefix), func() { f.Close() }
}

// openStore opens the scores database. Failure is not fatal for the game
// front-ends: they log a warning and continue without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
