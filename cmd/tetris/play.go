package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Without a mode, a picker menu is shown first.

Controls:
  Left/Right, H/L, A/D  - Move
  Up, K, W, X           - Rotate
  Down, J, S, Space     - Hard drop
  P/Esc                 - Pause
  R                     - Restart
  Q/Ctrl+C              - Quit

Examples:
  tetris play
  tetris play tetris
  tetris play tetris_bag --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	tcfg := loadConfig()

	cfg := core.DefaultConfig()
	cfg.Gravity = tcfg.Interval()
	cfg.Seed = flagSeed

	// Get terminal size
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
			os.Exit(1)
		}
	} else {
		menuResult, err := tui.RunMenu(cfg, modeFor(tcfg))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if menuResult.Quit {
			return
		}
		gameID = menuResult.GameID
		cfg = menuResult.Config
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage - game still works
	var opts []tui.Option
	store, err := storage.Open(tcfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open replay database", "path", tcfg.Storage.Path, "error", err)
	} else {
		opts = append(opts, tui.WithSaver(store))
	}

	result, runErr := tui.Run(game, cfg, opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if result.State.GameOver {
		fmt.Printf("Game over. Score: %d\n", result.State.Score)
	}
	if result.ReplayID > 0 {
		fmt.Printf("Replay saved as #%d (tetris replay %d)\n", result.ReplayID, result.ReplayID)
	}
}
