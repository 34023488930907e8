package tetris

import "github.com/termtris/termtris/internal/core"

// Direction vectors for piece movement.
var (
	DirLeft  = [2]int{-1, 0}
	DirRight = [2]int{1, 0}
	DirDown  = [2]int{0, 1}
)

// wallKickOffsets are the horizontal shifts tried, in order, when a
// rotation collides in place.
var wallKickOffsets = [4]int{-1, 1, -2, 2}

// Base points awarded per simultaneous line clear.
var lineScores = map[int]int{
	1: 100,
	2: 300,
	3: 500,
	4: 800,
}

// Bonus constants for combo and back-to-back scoring.
const (
	comboBonus      = 50
	backToBackBonus = 400
)

// linesPerLevel is how many total cleared lines raise the level by one.
const linesPerLevel = 10

// Collides reports whether the piece overlaps the board walls, the floor,
// or a settled cell. Cells above the top row (negative y) are allowed so
// tall pieces can spawn partially off-screen; only the visible playfield
// constrains them.
func Collides(p Piece, b *Board) bool {
	grid := p.Grid()
	for dy, row := range grid {
		for dx, occupied := range row {
			if !occupied {
				continue
			}
			x := p.X + dx
			y := p.Y + dy
			if x < 0 || x >= b.Width() {
				return true
			}
			if y >= b.Height() {
				return true
			}
			if y >= 0 && b.Cell(x, y) != core.ColorDefault {
				return true
			}
		}
	}
	return false
}

// Stamp writes the piece's occupied cells into the board using its color
// tag. Cells above the top row are clipped silently.
func Stamp(p Piece, b *Board) {
	grid := p.Grid()
	for dy, row := range grid {
		for dx, occupied := range row {
			if !occupied {
				continue
			}
			x := p.X + dx
			y := p.Y + dy
			if y < 0 {
				continue
			}
			b.setCell(x, y, p.Color)
		}
	}
}

// GhostY projects the piece straight down and returns the lowest row at
// which it still fits. Terminates within board-height steps.
func GhostY(p Piece, b *Board) int {
	ghost := p
	for !Collides(ghost, b) {
		ghost = ghost.Moved(0, 1)
	}
	return ghost.Y - 1
}

// LevelForLines returns the level implied by a total line count.
func LevelForLines(totalLines int) int {
	return 1 + totalLines/linesPerLevel
}

// ClearResult describes the outcome of a line-clear pass.
type ClearResult struct {
	Lines   int  // Rows removed
	Points  int  // Score awarded, including combo and back-to-back bonuses
	LevelUp bool // Whether the clear raised the level
	Rows    []int
}

// clearLines removes all full rows in one pass and applies scoring,
// combo, back-to-back and leveling rules. A placement that clears nothing
// breaks both the combo streak and the back-to-back chain.
func (g *Game) clearLines() ClearResult {
	rows := g.board.fullRows()
	if len(rows) == 0 {
		g.combo = 0
		g.lastClearWasTetris = false
		return ClearResult{}
	}

	for _, y := range rows {
		g.board.removeRow(y)
	}

	cleared := len(rows)
	points := lineScores[cleared] + comboBonus*g.combo
	g.combo++

	if cleared == 4 {
		if g.lastClearWasTetris {
			points += backToBackBonus
		}
		g.lastClearWasTetris = true
	} else {
		g.lastClearWasTetris = false
	}

	g.score += points

	g.totalLines += cleared
	levelUp := false
	if newLevel := LevelForLines(g.totalLines); newLevel > g.level {
		g.level = newLevel
		g.recomputeFallTicks()
		levelUp = true
	}

	return ClearResult{
		Lines:   cleared,
		Points:  points,
		LevelUp: levelUp,
		Rows:    rows,
	}
}
