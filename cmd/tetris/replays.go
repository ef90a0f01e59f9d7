package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse saved replays",
	Long: `Open an interactive table of recorded games, newest first.
Scores are recomputed by re-simulating each replay.

Use Tab/Shift+Tab to switch modes, Up/Down to move, Enter to show the
final board of the selected replay.

With --clear, deletes the replays of --mode (or of every mode) instead.

Examples:
  tetris replays
  tetris replays --db ./replays.db
  tetris replays --clear --mode tetris_bag`,
	Run: runReplays,
}

var (
	flagClear bool
	flagMode  string
)

func init() {
	replaysCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete saved replays instead of browsing them")
	replaysCmd.Flags().StringVar(&flagMode, "mode", "", "Mode whose replays --clear deletes (default: all modes)")
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a saved replay",
	Long: `Rebuild a recorded game from its seed and command stream and print
the final board together with its score.

Examples:
  tetris replay 3`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runReplays(_ *cobra.Command, _ []string) {
	tcfg := loadConfig()
	store := openStore(tcfg.Storage.Path)

	if flagClear {
		clearReplays(store, flagMode)
		return
	}

	size := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		size.ScreenW = w
		size.ScreenH = h
	}

	id, err := tui.RunReplayBrowser(store, size.ScreenW, size.ScreenH)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if id == 0 {
		store.Close()
		return
	}
	err = printReplay(os.Stdout, store, id)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearReplays(store *storage.Store, mode string) {
	if mode != "" && !registry.Exists(mode) {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		os.Exit(1)
	}

	err := store.ClearReplays(mode)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if mode == "" {
		fmt.Println("Deleted all replays.")
		return
	}
	fmt.Printf("Deleted replays for %s.\n", mode)
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	tcfg := loadConfig()
	store := openStore(tcfg.Storage.Path)

	err = printReplay(os.Stdout, store, id)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printReplay re-simulates a stored replay and writes its final board to w.
// Errors are returned; the caller closes the store.
func printReplay(w io.Writer, store *storage.Store, id int64) error {
	entry, err := store.Replay(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("replay %d not found", id)
	}

	j, err := entry.Journal()
	if err != nil {
		return err
	}
	game, err := tetris.FromJournal(j)
	if err != nil {
		return err
	}

	lw, lh := tetris.LayoutSize()
	screen := core.NewScreen(lw, lh)
	game.Render(screen)
	fmt.Fprintln(w, tui.RenderScreen(screen))

	f := game.Frame()
	fmt.Fprintf(w, "Replay #%d  %s  seed %d  recorded %s\n",
		entry.ID, game.Title(), entry.Seed, entry.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Score: %d  Lines: %d  Pieces: %d  Commands: %d\n",
		f.Score, f.Lines, f.Pieces, len(j.Commands))
	return nil
}
