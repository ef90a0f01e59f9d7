package tetris

// Collides reports whether def, placed at pos in the given rotation state,
// would leave the board or overlap a locked cell.
// It is pure: neither the board nor the definition is modified.
func Collides(pos Point, rotation int, board *Board, def *Definition) bool {
	for _, off := range def.Cells(rotation) {
		x := pos.X + off.X
		y := pos.Y + off.Y
		if x < 0 || x >= Width || y < 0 || y >= Height {
			return true
		}
		if board.OccupiedAt(x, y) {
			return true
		}
	}
	return false
}
