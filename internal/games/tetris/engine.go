package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// DefaultPointsPerLine is the score awarded for each cleared row.
const DefaultPointsPerLine = 100

// Status is the lifecycle state of an Engine.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome describes what a single command did.
type Outcome struct {
	Changed  bool // Piece, board or flags changed
	Locked   bool // The active piece was merged into the board
	Lines    int  // Rows cleared by the lock
	GameOver bool // The lock ended the game
}

// Engine owns the complete game state and is its only mutator.
// It is not safe for concurrent use; the host delivers commands one at a time.
type Engine struct {
	board  Board
	piece  ActivePiece
	score  int
	lines  int
	locked int

	gameOver bool
	paused   bool

	rand          Randomizer
	pointsPerLine int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPointsPerLine overrides the score awarded per cleared row.
func WithPointsPerLine(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.pointsPerLine = n
		}
	}
}

// NewEngine creates an engine drawing pieces from r and starts a game.
func NewEngine(r Randomizer, opts ...Option) *Engine {
	e := &Engine{
		rand:          r,
		pointsPerLine: DefaultPointsPerLine,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Reset discards the current game and starts a new one: empty board,
// fresh piece at the spawn point, zero score, not paused, not over.
func (e *Engine) Reset() {
	e.board = EmptyBoard()
	e.piece = Spawn(e.rand.Next())
	e.score = 0
	e.lines = 0
	e.locked = 0
	e.gameOver = false
	e.paused = false
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status {
	switch {
	case e.gameOver:
		return StatusGameOver
	case e.paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// TogglePause switches between running and paused. No-op after game over.
func (e *Engine) TogglePause() Outcome {
	if e.gameOver {
		return Outcome{}
	}
	e.paused = !e.paused
	return Outcome{Changed: true}
}

// Move shifts the piece one column left (dir=-1) or right (dir=+1) if the
// destination is free. A blocked move is silently ignored.
func (e *Engine) Move(dir int) Outcome {
	if dir != -1 && dir != 1 {
		panic(fmt.Sprintf("tetris: invalid move direction %d", dir))
	}
	if e.gameOver {
		return Outcome{}
	}
	return e.replace(e.piece.Moved(dir, 0))
}

// MoveLeft is Move(-1).
func (e *Engine) MoveLeft() Outcome {
	return e.Move(-1)
}

// MoveRight is Move(+1).
func (e *Engine) MoveRight() Outcome {
	return e.Move(1)
}

// Rotate advances the piece to its next clockwise rotation state if it fits
// where it stands. No wall kicks are tried.
func (e *Engine) Rotate() Outcome {
	if e.gameOver {
		return Outcome{}
	}
	return e.replace(e.piece.Rotated())
}

// Tick applies one step of gravity: the piece falls a row, or locks if it
// cannot. No-op while paused or after game over.
func (e *Engine) Tick() Outcome {
	if e.gameOver || e.paused {
		return Outcome{}
	}
	if out := e.replace(e.piece.Moved(0, 1)); out.Changed {
		return out
	}
	return e.lockAndSpawn()
}

// HardDrop moves the piece straight down to the lowest free row and locks it.
func (e *Engine) HardDrop() Outcome {
	if e.gameOver {
		return Outcome{}
	}
	landed := e.piece
	for {
		next := landed.Moved(0, 1)
		if next.Collides(&e.board) {
			break
		}
		landed = next
	}
	e.piece = landed
	return e.lockAndSpawn()
}

// replace installs candidate as the active piece if it does not collide.
func (e *Engine) replace(candidate ActivePiece) Outcome {
	if candidate.Collides(&e.board) {
		return Outcome{}
	}
	e.piece = candidate
	return Outcome{Changed: true}
}

// lockAndSpawn merges the piece, clears rows, scores, and spawns the next
// piece. If the next piece cannot be placed the game ends and the board and
// piece are left as they were before the lock.
func (e *Engine) lockAndSpawn() Outcome {
	merged := e.board.Merge(e.piece)
	cleared, lines := merged.ClearFullRows()

	e.score += lines * e.pointsPerLine
	e.lines += lines
	e.locked++

	out := Outcome{Changed: true, Locked: true, Lines: lines}

	next := Spawn(e.rand.Next())
	if next.Collides(&cleared) {
		e.gameOver = true
		out.GameOver = true
		return out
	}

	e.board = cleared
	e.piece = next
	return out
}

// Apply dispatches a journaled command.
func (e *Engine) Apply(cmd Command) Outcome {
	switch cmd {
	case CmdMoveLeft:
		return e.MoveLeft()
	case CmdMoveRight:
		return e.MoveRight()
	case CmdRotate:
		return e.Rotate()
	case CmdHardDrop:
		return e.HardDrop()
	case CmdTick:
		return e.Tick()
	case CmdTogglePause:
		return e.TogglePause()
	case CmdReset:
		e.Reset()
		return Outcome{Changed: true}
	default:
		panic(fmt.Sprintf("tetris: unknown command %q", rune(cmd)))
	}
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() Board {
	return e.board
}

// Piece returns the active piece.
func (e *Engine) Piece() ActivePiece {
	return e.piece
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the number of rows cleared since the last reset.
func (e *Engine) Lines() int {
	return e.lines
}

// PiecesLocked returns the number of pieces locked since the last reset.
func (e *Engine) PiecesLocked() int {
	return e.locked
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Paused reports whether gravity is suspended.
func (e *Engine) Paused() bool {
	return e.paused
}

// State returns the platform-level summary of the game.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		GameOver: e.gameOver,
		Paused:   e.paused,
	}
}

// Frame is a read-only projection of the game for one render.
// Cells holds the board with the active piece drawn on top.
type Frame struct {
	Cells    [Height][Width]core.Color
	Kind     Kind
	Score    int
	Lines    int
	Pieces   int
	GameOver bool
	Paused   bool
}

// Frame builds the render projection of the current state.
func (e *Engine) Frame() Frame {
	f := Frame{
		Kind:     e.piece.Kind,
		Score:    e.score,
		Lines:    e.lines,
		Pieces:   e.locked,
		GameOver: e.gameOver,
		Paused:   e.paused,
	}
	for y := range e.board {
		for x, c := range e.board[y] {
			f.Cells[y][x] = c.Color()
		}
	}
	color := e.piece.Definition().Color
	for _, pt := range e.piece.Cells() {
		if InBounds(pt.X, pt.Y) {
			f.Cells[pt.Y][pt.X] = color
		}
	}
	return f
}
