package tetris

import "github.com/termtris/termtris/internal/core"

// Board is the playfield: a fixed-size grid of cells. A cell holds
// core.ColorDefault when empty, otherwise the color tag of the piece
// that settled there.
type Board struct {
	width  int
	height int
	cells  [][]core.Color
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
	}
	b.cells = make([][]core.Color, height)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, width)
	}
	return b
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the tag at (x, y). Out-of-bounds reads return empty.
func (b *Board) Cell(x, y int) core.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// setCell writes the tag at (x, y). Out-of-bounds writes are ignored.
func (b *Board) setCell(x, y int, tag core.Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = tag
}

// rowFull reports whether every cell in row y is occupied.
func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if b.cells[y][x] == core.ColorDefault {
			return false
		}
	}
	return true
}

// removeRow deletes row y and inserts a fresh empty row at the top,
// shifting everything above down by one. The new row is independently
// allocated so rows are never shared between positions.
func (b *Board) removeRow(y int) {
	if y < 0 || y >= b.height {
		return
	}
	copy(b.cells[1:y+1], b.cells[0:y])
	b.cells[0] = make([]core.Color, b.width)
}

// fullRows returns the indices of all completely filled rows, top to
// bottom.
func (b *Board) fullRows() []int {
	var rows []int
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// occupiedCount returns the number of non-empty cells. Used by tests.
func (b *Board) occupiedCount() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != core.ColorDefault {
				n++
			}
		}
	}
	return n
}

// clone returns a deep copy of the board.
func (b *Board) clone() *Board {
	nb := NewBoard(b.width, b.height)
	for y := range b.cells {
		copy(nb.cells[y], b.cells[y])
	}
	return nb
}
