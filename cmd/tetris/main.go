// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play a mode (menu when omitted)
//	tetris serve             - Start SSH server for remote play
//	tetris replays           - Browse saved replays
//	tetris replay <id>       - Re-simulate a saved replay
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set replay database path (default from config)
//	--config <path>  - Path to a custom tetris.yaml
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

// logger reports non-fatal problems; the game itself owns stdout.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "tetris",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly, or pick one from the menu
  serve    - Start SSH server for remote play
  replays  - Browse saved replays
  replay   - Re-simulate a saved replay and print the final board

Examples:
  tetris list
  tetris play
  tetris play tetris_bag --seed 42
  tetris serve --ssh :2222
  tetris replay 3`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to replay database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig resolves the configuration, applies the scoring rule to new
// games and lets --db override the configured database path.
func loadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	tetris.SetPointsPerLine(cfg.Scoring.PointsPerLine)
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg
}

// modeFor maps the configured randomizer to the mode the menu starts on.
func modeFor(cfg config.TetrisConfig) string {
	if cfg.Randomizer == config.RandomizerBag {
		return tetris.IDBag
	}
	return tetris.IDClassic
}
