package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// sequence deals a fixed, repeating list of kinds.
type sequence struct {
	kinds []Kind
	i     int
}

func (s *sequence) Next() Kind {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return k
}

func newTestEngine(kinds ...Kind) *Engine {
	return NewEngine(&sequence{kinds: kinds})
}

func TestNewEngineInitialState(t *testing.T) {
	e := newTestEngine(KindT)

	assert.Equal(t, StatusRunning, e.Status())
	assert.Zero(t, e.Score())
	assert.Equal(t, EmptyBoard(), e.Board())
	assert.Equal(t, Spawn(KindT), e.Piece())
	assert.Equal(t, Point{X: 3, Y: 0}, e.Piece().Pos)
	assert.Equal(t, core.GameState{}, e.State())
}

func TestMoveStopsAtWalls(t *testing.T) {
	e := newTestEngine(KindO)

	for i := 0; i < 4; i++ {
		require.True(t, e.MoveLeft().Changed, "move %d left should succeed", i)
	}
	assert.False(t, e.MoveLeft().Changed)
	assert.Equal(t, -1, e.Piece().Pos.X)

	for i := 0; i < 8; i++ {
		require.True(t, e.MoveRight().Changed, "move %d right should succeed", i)
	}
	assert.False(t, e.MoveRight().Changed)
	assert.Equal(t, 7, e.Piece().Pos.X)
}

func TestMoveInvalidDirectionPanics(t *testing.T) {
	e := newTestEngine(KindT)
	assert.Panics(t, func() { e.Move(0) })
	assert.Panics(t, func() { e.Move(2) })
}

func TestRotateCyclesStates(t *testing.T) {
	e := newTestEngine(KindT)
	for want := 1; want <= 4; want++ {
		require.True(t, e.Rotate().Changed)
		assert.Equal(t, want%4, e.Piece().Rotation)
	}
}

func TestRotateBlockedByWall(t *testing.T) {
	e := newTestEngine(KindI)
	require.True(t, e.Rotate().Changed)
	require.Equal(t, 1, e.Piece().Rotation)

	for e.MoveLeft().Changed {
	}
	require.Equal(t, -2, e.Piece().Pos.X)

	// Horizontal I would stick out past the left wall; no kick is tried.
	assert.False(t, e.Rotate().Changed)
	assert.Equal(t, 1, e.Piece().Rotation)
	assert.Equal(t, -2, e.Piece().Pos.X)
}

func TestTickFallsThenLocks(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			e := newTestEngine(k, KindO)

			bottom := 0
			for _, off := range DefinitionFor(k).Cells(0) {
				bottom = max(bottom, off.Y)
			}
			wantFalls := Height - 1 - bottom

			falls := 0
			for {
				out := e.Tick()
				require.True(t, out.Changed)
				if out.Locked {
					break
				}
				falls++
				require.Less(t, falls, Height, "piece never locked")
			}

			assert.Equal(t, wantFalls, falls)
			assert.Equal(t, 4, e.Board().FilledCount())
			assert.Equal(t, 1, e.PiecesLocked())
			assert.Equal(t, Spawn(KindO), e.Piece())
			assert.Zero(t, e.Score())
		})
	}
}

func TestHardDropMatchesGravity(t *testing.T) {
	for _, k := range Kinds() {
		dropped := newTestEngine(k, KindT)
		dropped.MoveRight()
		out := dropped.HardDrop()
		require.True(t, out.Locked)

		ticked := newTestEngine(k, KindT)
		ticked.MoveRight()
		for !ticked.Tick().Locked {
		}

		assert.Equal(t, ticked.Board(), dropped.Board(), "kind %s", k)
		assert.Equal(t, ticked.Piece(), dropped.Piece(), "kind %s", k)
	}
}

func TestSingleLineClearScoresHundred(t *testing.T) {
	e := newTestEngine(KindI)
	var b Board
	fillRow(&b, Height-1, 3, 4, 5, 6)
	e.board = b

	out := e.HardDrop()

	assert.True(t, out.Locked)
	assert.Equal(t, 1, out.Lines)
	assert.Equal(t, 100, e.Score())
	assert.Equal(t, 1, e.Lines())
	assert.Zero(t, e.Board().FilledCount())
}

func TestVerticalPieceCompletesRow(t *testing.T) {
	e := newTestEngine(KindI)
	var b Board
	fillRow(&b, Height-1, 0)
	e.board = b
	e.piece = ActivePiece{Kind: KindI, Rotation: 1, Pos: Point{X: -2, Y: 0}}

	out := e.HardDrop()

	assert.Equal(t, 1, out.Lines)
	assert.Equal(t, 100, e.Score())
	assert.Equal(t, 3, e.Board().FilledCount())
}

func TestTetrisScoresFourHundred(t *testing.T) {
	e := newTestEngine(KindI)
	var b Board
	for y := Height - 4; y < Height; y++ {
		fillRow(&b, y, 0)
	}
	e.board = b
	e.piece = ActivePiece{Kind: KindI, Rotation: 1, Pos: Point{X: -2, Y: 0}}

	out := e.HardDrop()

	assert.Equal(t, 4, out.Lines)
	assert.Equal(t, 400, e.Score())
	assert.Equal(t, EmptyBoard(), e.Board())
}

func TestPointsPerLineOption(t *testing.T) {
	e := NewEngine(&sequence{kinds: []Kind{KindI}}, WithPointsPerLine(40))
	var b Board
	fillRow(&b, Height-1, 3, 4, 5, 6)
	e.board = b

	e.HardDrop()
	assert.Equal(t, 40, e.Score())

	// Non-positive values keep the default.
	e = NewEngine(&sequence{kinds: []Kind{KindI}}, WithPointsPerLine(0))
	e.board = b
	e.HardDrop()
	assert.Equal(t, DefaultPointsPerLine, e.Score())
}

// blockSpawn fills the two spawn rows except the last column, so nothing
// clears and every spawned piece collides.
func blockSpawn(e *Engine) Board {
	var b Board
	fillRow(&b, 0, Width-1)
	fillRow(&b, 1, Width-1)
	e.board = b
	return b
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	e := newTestEngine(KindO)
	before := blockSpawn(e)
	piece := e.Piece()

	out := e.Tick()

	require.True(t, out.GameOver)
	assert.True(t, out.Locked)
	assert.Equal(t, StatusGameOver, e.Status())
	assert.True(t, e.State().GameOver)
	assert.Equal(t, before, e.Board(), "board is left as it was before the lock")
	assert.Equal(t, piece, e.Piece())
	assert.Zero(t, e.Score())
}

func TestGameOverFreezesState(t *testing.T) {
	e := newTestEngine(KindO)
	blockSpawn(e)
	require.True(t, e.Tick().GameOver)

	snap := e.Snapshot()
	board := e.Board()

	for _, cmd := range []Command{CmdTick, CmdMoveLeft, CmdMoveRight, CmdRotate, CmdHardDrop, CmdTogglePause} {
		out := e.Apply(cmd)
		assert.Equal(t, Outcome{}, out, "command %c after game over", cmd)
	}

	assert.Equal(t, snap, e.Snapshot())
	assert.Equal(t, board, e.Board())
	assert.False(t, e.Paused())
}

func TestResetAfterGameOver(t *testing.T) {
	e := newTestEngine(KindO, KindL)
	blockSpawn(e)
	require.True(t, e.Tick().GameOver)

	e.Reset()

	assert.Equal(t, StatusRunning, e.Status())
	assert.Zero(t, e.Score())
	assert.Zero(t, e.Lines())
	assert.Zero(t, e.PiecesLocked())
	assert.Equal(t, EmptyBoard(), e.Board())
	assert.Equal(t, SpawnPoint, e.Piece().Pos)
}

func TestPauseFreezesGravity(t *testing.T) {
	e := newTestEngine(KindT, KindS, KindZ)
	control := newTestEngine(KindT, KindS, KindZ)

	for i := 0; i < 3; i++ {
		e.Tick()
		control.Tick()
	}

	require.True(t, e.TogglePause().Changed)
	assert.Equal(t, StatusPaused, e.Status())
	assert.True(t, e.State().Paused)

	snap := e.Snapshot()
	for i := 0; i < 10; i++ {
		assert.Equal(t, Outcome{}, e.Tick())
	}
	assert.Equal(t, snap, e.Snapshot())

	require.True(t, e.TogglePause().Changed)
	for i := 0; i < 40; i++ {
		e.Tick()
		control.Tick()
		require.Equal(t, control.Snapshot(), e.Snapshot(), "tick %d after resume", i)
	}
	assert.Equal(t, control.Board(), e.Board())
}

func TestPlayerCommandsWhilePaused(t *testing.T) {
	e := newTestEngine(KindT)
	e.TogglePause()

	assert.True(t, e.MoveLeft().Changed)
	assert.True(t, e.Rotate().Changed)
	assert.True(t, e.HardDrop().Locked)
	assert.True(t, e.Paused(), "player commands do not unpause")
}

func TestApplyUnknownCommandPanics(t *testing.T) {
	e := newTestEngine(KindT)
	assert.Panics(t, func() { e.Apply(Command('?')) })
}

func TestFrameOverlaysActivePiece(t *testing.T) {
	e := newTestEngine(KindT)
	var b Board
	b[Height-1][0] = Cell(core.ColorRed)
	e.board = b

	f := e.Frame()

	assert.Equal(t, KindT, f.Kind)
	assert.Equal(t, core.ColorRed, f.Cells[Height-1][0])

	filled := 0
	for y := range f.Cells {
		for _, c := range f.Cells[y] {
			if c != core.ColorDefault {
				filled++
			}
		}
	}
	assert.Equal(t, 5, filled)
	for _, pt := range e.Piece().Cells() {
		assert.Equal(t, core.ColorMagenta, f.Cells[pt.Y][pt.X])
	}

	f.Cells[5][5] = core.ColorGreen
	assert.False(t, e.Board().OccupiedAt(5, 5), "frame is a copy")
}

// TestRandomPlayInvariants drives the engine with a long random command
// stream and checks the properties that must hold after every command.
func TestRandomPlayInvariants(t *testing.T) {
	e := NewEngine(NewUniformRandomizer(2024))
	rng := rand.New(rand.NewSource(7))
	cmds := []Command{CmdMoveLeft, CmdMoveRight, CmdRotate, CmdHardDrop, CmdTick, CmdTick, CmdTick, CmdTick}

	games := 0
	for i := 0; i < 20000; i++ {
		if e.GameOver() {
			games++
			e.Reset()
		}

		board := e.Board()
		require.False(t, e.Piece().Collides(&board), "step %d: active piece overlaps", i)
		_, skipped := board.MergeClamped(e.Piece())
		require.Zero(t, skipped, "step %d: piece cell outside the board", i)

		before := e.Score()
		cmd := cmds[rng.Intn(len(cmds))]
		out := e.Apply(cmd)

		delta := e.Score() - before
		require.GreaterOrEqual(t, delta, 0, "step %d: score decreased", i)
		require.Zero(t, delta%DefaultPointsPerLine)
		require.Equal(t, out.Lines*DefaultPointsPerLine, delta)
		if !out.Locked {
			require.Zero(t, out.Lines)
		}

		if cmd == CmdMoveLeft || cmd == CmdMoveRight || cmd == CmdRotate {
			board := e.Board()
			require.False(t, e.Piece().Collides(&board), "step %d: %c produced a collision", i, cmd)
		}
	}
	assert.Positive(t, games+e.PiecesLocked())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "paused", StatusPaused.String())
	assert.Equal(t, "game_over", StatusGameOver.String())
	assert.Equal(t, "unknown", Status(9).String())
}
