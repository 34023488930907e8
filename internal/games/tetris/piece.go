package tetris

import "github.com/termtris/termtris/internal/core"

// Piece is an immutable tetromino value: kind, rotation index, and the
// board position of the top-left corner of its rotation grid. Every
// transform returns a fresh value; nothing mutates a Piece in place, so
// ghost projection and wall-kick probing can never corrupt the active
// piece by aliasing.
type Piece struct {
	Kind     Kind
	X, Y     int
	Rotation int
	Color    core.Color
}

// NewPiece creates a piece of the given kind at the given position in
// its spawn orientation.
func NewPiece(k Kind, x, y int) Piece {
	return Piece{
		Kind:  k,
		X:     x,
		Y:     y,
		Color: ShapeColor(k),
	}
}

// Grid returns the occupancy grid of the piece's current rotation state.
func (p Piece) Grid() Grid {
	return shapeGrids[p.Kind][p.Rotation%RotationCount(p.Kind)]
}

// Width returns the bounding width of the current rotation state.
func (p Piece) Width() int {
	return p.Grid().Width()
}

// Height returns the bounding height of the current rotation state.
func (p Piece) Height() int {
	return p.Grid().Height()
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned clockwise by one state.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % RotationCount(p.Kind)
	return p
}

// At returns a copy of the piece re-anchored to (x, y).
func (p Piece) At(x, y int) Piece {
	p.X = x
	p.Y = y
	return p
}
