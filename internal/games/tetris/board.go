package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board dimensions.
const (
	Width  = 10
	Height = 20
)

// Cell is a single board position: empty, or the color of the piece locked there.
type Cell core.Color

// Empty is the zero cell.
const Empty = Cell(core.ColorDefault)

// Filled reports whether the cell holds a locked block.
func (c Cell) Filled() bool {
	return c != Empty
}

// Color returns the display color of the cell.
func (c Cell) Color() core.Color {
	return core.Color(c)
}

// Board is the grid of locked cells, indexed [y][x] with y=0 at the top.
// Being an array, assigning or passing a Board by value copies it.
type Board [Height][Width]Cell

// Point is an absolute board coordinate.
type Point struct {
	X, Y int
}

// EmptyBoard returns a board with every cell empty.
func EmptyBoard() Board {
	return Board{}
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// OccupiedAt reports whether (x, y) is on the board and holds a block.
// Out-of-range coordinates are not occupied.
func (b Board) OccupiedAt(x, y int) bool {
	if !InBounds(x, y) {
		return false
	}
	return b[y][x].Filled()
}

// Merge returns a copy of the board with the piece's four cells set to its color.
// The receiver is not modified.
func (b Board) Merge(p ActivePiece) Board {
	merged, _ := b.MergeClamped(p)
	return merged
}

// MergeClamped is Merge that also reports how many of the piece's cells fell
// outside the board and were skipped. Legal play never skips a cell.
func (b Board) MergeClamped(p ActivePiece) (Board, int) {
	def := p.Definition()
	skipped := 0
	for _, pt := range p.Cells() {
		if !InBounds(pt.X, pt.Y) {
			skipped++
			continue
		}
		b[pt.Y][pt.X] = Cell(def.Color)
	}
	return b, skipped
}

// RowFull reports whether every cell of row y is filled.
func (b Board) RowFull(y int) bool {
	for _, c := range b[y] {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row at once and shifts the remaining rows
// down, inserting one empty row at the top per removed row.
// Returns the new board and the number of rows removed.
func (b Board) ClearFullRows() (Board, int) {
	var out Board
	dst := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if b.RowFull(y) {
			continue
		}
		out[dst] = b[y]
		dst--
	}
	// Rows 0..dst stay empty in out.
	return out, dst + 1
}

// FilledCount returns the number of filled cells on the board.
func (b Board) FilledCount() int {
	n := 0
	for y := range b {
		for _, c := range b[y] {
			if c.Filled() {
				n++
			}
		}
	}
	return n
}
