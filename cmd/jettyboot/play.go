package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jetty-boot/internal/core"
	"github.com/vovakirdan/jetty-boot/internal/games/jettyboot"
	"github.com/vovakirdan/jetty-boot/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

The game opens on name entry, then shows the high score menu.

Controls:
  Space/Up/E - Climb (also starts a game from the menu)
  Enter      - Confirm name / start game / climb
  Backspace  - Delete a character of the name
  P          - Pause
  Esc/Ctrl+C - Quit

Examples:
  jettyboot play
  jettyboot play --difficulty easy
  jettyboot play --seed 42
  jettyboot play --config ./my-jettyboot.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	// A broken store only costs persistence; the game still works.
	var records jettyboot.RecordStore
	store, err := openStore(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high score store: %v\n", err)
		logger.Warn("could not open high score store", "err", err)
	} else {
		records = store
		defer store.Close()
	}

	logger.Debug("starting", "seed", seed, "backend", gameCfg.Storage.Backend, "fps", cfg.TickRate)
	session := jettyboot.NewSession(gameCfg, records, rand.NewSource(seed), logger)

	if runErr := tui.Run(session, cfg, gameCfg.Gameplay.ClimbHoldTicks); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
