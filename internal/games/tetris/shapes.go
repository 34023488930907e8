package tetris

import (
	"fmt"

	"github.com/termtris/termtris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	// KindCount is the number of distinct tetromino kinds.
	KindCount = 7
)

// String returns the canonical single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Grid is one rotation state of a shape: a row-major occupancy grid.
// Rows all have equal length; dimensions vary between 1 and 4 per shape.
type Grid [][]bool

// Width returns the number of columns in the grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows in the grid.
func (g Grid) Height() int {
	return len(g)
}

// Shape rotation states, defined visually and parsed at init.
// 'X' marks an occupied cell. The first entry is the spawn orientation;
// successive entries are clockwise 90-degree turns. O has a single state,
// I/S/Z alternate between two, T/J/L cycle through four.
var shapeDefs = [KindCount][][]string{
	KindI: {
		{"XXXX"},
		{"X", "X", "X", "X"},
	},
	KindO: {
		{"XX", "XX"},
	},
	KindT: {
		{".X.", "XXX"},
		{"X.", "XX", "X."},
		{"XXX", ".X."},
		{".X", "XX", ".X"},
	},
	KindS: {
		{".XX", "XX."},
		{"X.", "XX", ".X"},
	},
	KindZ: {
		{"XX.", ".XX"},
		{".X", "XX", "X."},
	},
	KindJ: {
		{"X..", "XXX"},
		{"XX", "X.", "X."},
		{"XXX", "..X"},
		{".X", ".X", "XX"},
	},
	KindL: {
		{"..X", "XXX"},
		{"X.", "X.", "XX"},
		{"XXX", "X.."},
		{"XX", ".X", ".X"},
	},
}

// shapeColors maps each kind to its identity tag. Settled board cells
// carry this tag so the renderer keeps per-shape colors after locking.
var shapeColors = [KindCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorMagenta,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

// shapeGrids holds the parsed rotation states per kind.
var shapeGrids [KindCount][]Grid

func init() {
	for k := range shapeDefs {
		grids := make([]Grid, 0, len(shapeDefs[k]))
		for _, def := range shapeDefs[k] {
			g, err := parseGrid(def)
			if err != nil {
				panic(fmt.Sprintf("tetris: bad shape definition for %s: %v", Kind(k), err))
			}
			grids = append(grids, g)
		}
		shapeGrids[k] = grids
	}
}

// parseGrid converts a visual definition into an occupancy grid.
func parseGrid(def []string) (Grid, error) {
	if len(def) == 0 {
		return nil, fmt.Errorf("empty definition")
	}
	width := len(def[0])
	g := make(Grid, len(def))
	for y, row := range def {
		if len(row) != width {
			return nil, fmt.Errorf("ragged row %d", y)
		}
		g[y] = make([]bool, width)
		for x, ch := range row {
			g[y][x] = ch == 'X'
		}
	}
	return g, nil
}

// Rotations returns the ordered rotation states for a kind.
// The caller must reduce rotation indices modulo RotationCount.
func Rotations(k Kind) []Grid {
	return shapeGrids[k]
}

// RotationCount returns how many distinct rotation states the kind has.
func RotationCount(k Kind) int {
	return len(shapeGrids[k])
}

// ShapeColor returns the identity color tag for a kind.
func ShapeColor(k Kind) core.Color {
	return shapeColors[k]
}
