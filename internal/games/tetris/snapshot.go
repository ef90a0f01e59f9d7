package tetris

// Snapshot captures the game state for determinism testing and replay checks.
type Snapshot struct {
	Score    int
	Lines    int
	Pieces   int
	Filled   int // Locked cells on the board
	Kind     Kind
	Rotation int
	X        int
	Y        int
	Status   Status
	Commands int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.engine.Snapshot()
	s.Commands = len(g.journal.Commands)
	return s
}

// Snapshot returns the engine's state summary.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Score:    e.score,
		Lines:    e.lines,
		Pieces:   e.locked,
		Filled:   e.board.FilledCount(),
		Kind:     e.piece.Kind,
		Rotation: e.piece.Rotation,
		X:        e.piece.Pos.X,
		Y:        e.piece.Pos.Y,
		Status:   e.Status(),
	}
}
