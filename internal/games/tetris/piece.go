package tetris

// SpawnPoint is where every new piece appears: horizontally centered, top row.
var SpawnPoint = Point{X: Width/2 - 2, Y: 0}

// ActivePiece is the falling piece under player control.
// It is a small value; commands replace it rather than mutate it in place.
type ActivePiece struct {
	Kind     Kind
	Rotation int
	Pos      Point
}

// Spawn returns a piece of the given kind at the spawn point in rotation 0.
func Spawn(kind Kind) ActivePiece {
	return ActivePiece{Kind: kind, Rotation: 0, Pos: SpawnPoint}
}

// Definition returns the catalog entry for the piece's kind.
func (p ActivePiece) Definition() *Definition {
	return DefinitionFor(p.Kind)
}

// Cells returns the absolute board coordinates the piece occupies.
func (p ActivePiece) Cells() [4]Point {
	var pts [4]Point
	for i, off := range p.Definition().Cells(p.Rotation) {
		pts[i] = Point{X: p.Pos.X + off.X, Y: p.Pos.Y + off.Y}
	}
	return pts
}

// Moved returns a copy shifted by (dx, dy).
func (p ActivePiece) Moved(dx, dy int) ActivePiece {
	p.Pos.X += dx
	p.Pos.Y += dy
	return p
}

// Rotated returns a copy in the next clockwise rotation state.
func (p ActivePiece) Rotated() ActivePiece {
	p.Rotation = p.Definition().NextRotation(p.Rotation)
	return p
}

// Collides reports whether the piece overlaps the board's walls or blocks.
func (p ActivePiece) Collides(board *Board) bool {
	return Collides(p.Pos, p.Rotation, board, p.Definition())
}
