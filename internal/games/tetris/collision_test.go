package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	var blocked Board
	blocked[10][5] = gray

	tdef := DefinitionFor(KindT)
	idef := DefinitionFor(KindI)

	tests := []struct {
		name     string
		pos      Point
		rotation int
		board    Board
		def      *Definition
		expected bool
	}{
		{"spawn on empty board", SpawnPoint, 0, Board{}, tdef, false},
		{"left wall", Point{X: -1, Y: 5}, 0, Board{}, tdef, true},
		{"flush with left wall", Point{X: 0, Y: 5}, 0, Board{}, tdef, false},
		{"right wall", Point{X: Width - 2, Y: 5}, 0, Board{}, tdef, true},
		{"flush with right wall", Point{X: Width - 3, Y: 5}, 0, Board{}, tdef, false},
		{"floor", Point{X: 3, Y: Height - 1}, 0, Board{}, tdef, true},
		{"resting on floor", Point{X: 3, Y: Height - 2}, 0, Board{}, tdef, false},
		{"above top", Point{X: 3, Y: -1}, 0, Board{}, tdef, true},
		{"horizontal I at y=-1 sits in row 0", Point{X: 3, Y: -1}, 0, Board{}, idef, false},
		{"overlaps locked cell", Point{X: 4, Y: 9}, 0, blocked, tdef, true},
		{"next to locked cell", Point{X: 6, Y: 9}, 0, blocked, tdef, false},
		{"vertical I past left wall", Point{X: -3, Y: 0}, 1, Board{}, idef, true},
		{"vertical I flush left", Point{X: -2, Y: 0}, 1, Board{}, idef, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Collides(tc.pos, tc.rotation, &tc.board, tc.def))
		})
	}
}

func TestCollidesIsPure(t *testing.T) {
	var b Board
	fillRow(&b, 19, 2)
	b[12][4] = gray
	before := b

	def := DefinitionFor(KindS)
	defBefore := *def
	defBefore.Rotations = append([][4]Offset(nil), def.Rotations...)

	for y := -2; y < Height+2; y++ {
		for x := -3; x < Width+1; x++ {
			for r := range def.Rotations {
				first := Collides(Point{X: x, Y: y}, r, &b, def)
				second := Collides(Point{X: x, Y: y}, r, &b, def)
				assert.Equal(t, first, second)
			}
		}
	}

	assert.Equal(t, before, b)
	assert.Equal(t, defBefore.Rotations, def.Rotations)
}

func TestCollidesBadRotationPanics(t *testing.T) {
	assert.Panics(t, func() {
		Collides(SpawnPoint, 4, &Board{}, DefinitionFor(KindT))
	})
}
