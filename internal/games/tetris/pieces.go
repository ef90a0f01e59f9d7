package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
	kindCount
)

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Offset is a cell position relative to a piece's local origin.
type Offset struct {
	X, Y int
}

// Definition describes a tetromino: its rotation states and color.
// Every rotation state holds exactly four offsets in the 0..3 range.
type Definition struct {
	Kind      Kind
	Rotations [][4]Offset
	Color     core.Color
	Hex       string // #RRGGBB used by truecolor renderers
}

// Cells returns the offsets of the given rotation state.
// Panics if rotation is outside [0, len(Rotations)).
func (d *Definition) Cells(rotation int) [4]Offset {
	if rotation < 0 || rotation >= len(d.Rotations) {
		panic(fmt.Sprintf("tetris: rotation %d out of range for %s (%d states)", rotation, d.Kind, len(d.Rotations)))
	}
	return d.Rotations[rotation]
}

// NextRotation returns the clockwise successor of rotation, wrapping around.
func (d *Definition) NextRotation(rotation int) int {
	return (rotation + 1) % len(d.Rotations)
}

var catalog = [kindCount]Definition{
	KindI: {
		Kind: KindI,
		Rotations: [][4]Offset{
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		},
		Color: core.ColorCyan,
		Hex:   "#00FFFF",
	},
	KindJ: {
		Kind: KindJ,
		Rotations: [][4]Offset{
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
		},
		Color: core.ColorBlue,
		Hex:   "#0000FF",
	},
	KindL: {
		Kind: KindL,
		Rotations: [][4]Offset{
			{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		},
		Color: core.ColorOrange,
		Hex:   "#FFA500",
	},
	KindO: {
		Kind: KindO,
		Rotations: [][4]Offset{
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		},
		Color: core.ColorYellow,
		Hex:   "#FFFF00",
	},
	KindS: {
		Kind: KindS,
		Rotations: [][4]Offset{
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		},
		Color: core.ColorGreen,
		Hex:   "#00FF00",
	},
	KindT: {
		Kind: KindT,
		Rotations: [][4]Offset{
			{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
		Color: core.ColorMagenta,
		Hex:   "#FF00FF",
	},
	KindZ: {
		Kind: KindZ,
		Rotations: [][4]Offset{
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		},
		Color: core.ColorRed,
		Hex:   "#FF0000",
	},
}

// DefinitionFor returns the catalog entry for kind.
// The returned definition is shared and must not be modified.
func DefinitionFor(kind Kind) *Definition {
	if kind < 0 || kind >= kindCount {
		panic(fmt.Sprintf("tetris: unknown piece kind %d", int(kind)))
	}
	return &catalog[kind]
}

// Kinds returns all piece kinds in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// PickRandom selects a definition uniformly at random. Repeats are allowed.
func PickRandom(rng *rand.Rand) *Definition {
	return DefinitionFor(Kind(rng.Intn(int(kindCount))))
}
