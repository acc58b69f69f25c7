package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window running the same simulation.

Controls:
  Space/Up/W, click or tap - Flap
  M                        - Toggle sound (remembered)
  Esc/Q                    - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog := fileLogger("flapper-window")
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	settings, err := desktop.OpenSettings("flapper")
	if err != nil {
		logger.Warn("settings will not be saved", "err", err)
	}

	err = desktop.Run(desktop.Options{
		Config:   gameConfig,
		Runtime:  runtimeConfig(0, 0),
		Store:    store,
		Settings: settings,
		Player:   flagPlayer,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
