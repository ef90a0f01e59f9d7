// Package tetris implements the falling-block puzzle: piece catalog, board,
// collision, the game engine, and its adapter to the mode registry.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Registered mode IDs.
const (
	IDClassic = "tetris"
	IDBag     = "tetris_bag"
)

// Package-level scoring rule, set once from configuration before games are created.
var pointsPerLine = DefaultPointsPerLine

// SetPointsPerLine sets the per-row score used by games reset after this call.
// Non-positive values restore the default.
func SetPointsPerLine(n int) {
	if n <= 0 {
		n = DefaultPointsPerLine
	}
	pointsPerLine = n
}

// Game adapts the Engine to the registry.Game interface and journals every
// command it forwards.
type Game struct {
	id         string
	title      string
	randomizer string

	engine  *Engine
	journal Journal
	seeds   *rand.Rand

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates the classic mode: uniformly random pieces.
func New() *Game {
	return &Game{id: IDClassic, title: "Tetris", randomizer: RandomizerUniform}
}

// NewBag creates the 7-bag mode.
func NewBag() *Game {
	return &Game{id: IDBag, title: "Tetris (7-bag)", randomizer: RandomizerBag}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDBag, func() registry.Game {
		return NewBag()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seeds = rand.New(rand.NewSource(cfg.Seed))
	g.start(cfg.Seed)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// start builds a fresh engine and journal for seed.
func (g *Game) start(seed int64) {
	r, err := NewRandomizer(g.randomizer, seed)
	if err != nil {
		panic(err) // randomizer names are fixed by the constructors
	}
	g.engine = NewEngine(r, WithPointsPerLine(pointsPerLine))
	g.journal = Journal{
		GameID:        g.id,
		Randomizer:    g.randomizer,
		Seed:          seed,
		PointsPerLine: pointsPerLine,
	}
}

// Resize records the screen size and checks that the playfield fits.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < layoutWidth || h < layoutHeight
}

// Handle applies a single player action immediately.
func (g *Game) Handle(a core.Action) core.StepResult {
	if a == core.ActionRestart {
		g.start(g.seeds.Int63())
		return g.result(Outcome{})
	}
	if g.tooSmall {
		return g.result(Outcome{})
	}

	var cmd Command
	switch a {
	case core.ActionMoveLeft:
		cmd = CmdMoveLeft
	case core.ActionMoveRight:
		cmd = CmdMoveRight
	case core.ActionRotate:
		cmd = CmdRotate
	case core.ActionHardDrop:
		cmd = CmdHardDrop
	case core.ActionPause:
		cmd = CmdTogglePause
	default:
		return g.result(Outcome{})
	}

	if g.engine.GameOver() {
		return g.result(Outcome{})
	}
	return g.apply(cmd)
}

// Step applies one gravity tick.
func (g *Game) Step() core.StepResult {
	if g.tooSmall || g.engine.Status() != StatusRunning {
		return g.result(Outcome{})
	}
	return g.apply(CmdTick)
}

func (g *Game) apply(cmd Command) core.StepResult {
	g.journal.Record(cmd)
	return g.result(g.engine.Apply(cmd))
}

func (g *Game) result(out Outcome) core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Lines:  out.Lines,
		Locked: out.Locked,
	}
}

// State returns the current game state. A window too small to show the
// playfield reports the game as paused so the platform stops gravity.
func (g *Game) State() core.GameState {
	s := g.engine.State()
	if g.tooSmall && !s.GameOver {
		s.Paused = true
	}
	return s
}

// Frame returns the render projection of the engine.
func (g *Game) Frame() Frame {
	return g.engine.Frame()
}

// Journal returns a copy of the commands recorded since the last reset.
func (g *Game) Journal() Journal {
	j := g.journal
	j.Commands = append([]Command(nil), g.journal.Commands...)
	return j
}

// FromJournal rebuilds the game a journal describes, replaying every command.
// The result renders the final position and can be played on from there.
func FromJournal(j Journal) (*Game, error) {
	var g *Game
	switch j.GameID {
	case IDClassic:
		g = New()
	case IDBag:
		g = NewBag()
	default:
		return nil, fmt.Errorf("tetris: unknown mode %q", j.GameID)
	}
	if j.Randomizer != g.randomizer {
		return nil, fmt.Errorf("tetris: mode %q does not use randomizer %q", g.id, j.Randomizer)
	}

	e, err := Replay(j)
	if err != nil {
		return nil, err
	}

	g.engine = e
	g.journal = j
	g.journal.Commands = append([]Command(nil), j.Commands...)
	g.seeds = rand.New(rand.NewSource(j.Seed))
	g.Resize(layoutWidth, layoutHeight)
	return g, nil
}

// LayoutSize returns the smallest screen that shows the whole playfield.
func LayoutSize() (w, h int) {
	return layoutWidth, layoutHeight
}
