package tetris

import (
	"fmt"

	"github.com/termtris/termtris/internal/core"
)

// Layout constants. Board cells render two characters wide so the
// playfield looks roughly square in a terminal.
const (
	hudHeight    = 2  // Title line plus separator
	boardOffsetX = 1  // Left margin before the playfield
	sidebarWidth = 16 // Next/hold/stats column to the right of the board
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderGhost(dst)
	g.renderPiece(dst, g.current, g.current.X, g.current.Y)
	g.renderFlash(dst)
	g.renderSidebar(dst)

	switch {
	case g.showHelp:
		g.renderHelp(dst)
	case g.gameOver:
		g.renderOverlay(dst, "GAME OVER", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.levelUpTick != 0 && g.tick-g.levelUpTick < uint64(g.tickRate):
		dst.DrawTextCentered(dst.Height()/2, "LEVEL UP!")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Termtris   Score: %d  Level: %d  Lines: %d  High: %d",
		g.score, g.level, g.totalLines, g.highScore)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// cellX/cellY convert board coordinates to the screen position of the
// two-character cell.
func (g *Game) cellX(x int) int {
	return boardOffsetX + x*2
}

func (g *Game) cellY(y int) int {
	return hudHeight + y
}

// renderBoard draws the settled cells and the playfield border.
func (g *Game) renderBoard(dst *core.Screen) {
	w := g.board.Width()
	h := g.board.Height()

	for y := 0; y < h; y++ {
		sy := g.cellY(y)
		dst.Set(g.cellX(0)-1, sy, '│')
		dst.Set(g.cellX(w), sy, '│')
		for x := 0; x < w; x++ {
			sx := g.cellX(x)
			if tag := g.board.Cell(x, y); tag != core.ColorDefault {
				dst.SetCell(sx, sy, '[', tag)
				dst.SetCell(sx+1, sy, ']', tag)
			} else {
				dst.SetCell(sx, sy, ' ', core.ColorGray)
				dst.SetCell(sx+1, sy, '.', core.ColorGray)
			}
		}
	}
	dst.DrawHLine(g.cellX(0)-1, g.cellY(h), w*2+2, '─')
}

// renderGhost draws the landing preview of the active piece.
func (g *Game) renderGhost(dst *core.Screen) {
	if g.gameOver || g.ghostY == g.current.Y {
		return
	}
	grid := g.current.Grid()
	for dy, row := range grid {
		for dx, occupied := range row {
			if !occupied {
				continue
			}
			y := g.ghostY + dy
			if y < 0 {
				continue
			}
			sx := g.cellX(g.current.X + dx)
			sy := g.cellY(y)
			dst.SetCell(sx, sy, ':', core.ColorGray)
			dst.SetCell(sx+1, sy, ':', core.ColorGray)
		}
	}
}

// renderPiece draws a piece at the given board position.
func (g *Game) renderPiece(dst *core.Screen, p Piece, atX, atY int) {
	grid := p.Grid()
	for dy, row := range grid {
		for dx, occupied := range row {
			if !occupied {
				continue
			}
			y := atY + dy
			if y < 0 {
				continue
			}
			sx := g.cellX(atX + dx)
			sy := g.cellY(y)
			dst.SetCell(sx, sy, '[', p.Color)
			dst.SetCell(sx+1, sy, ']', p.Color)
		}
	}
}

// renderFlash highlights rows that were just cleared.
func (g *Game) renderFlash(dst *core.Screen) {
	if g.flashTicks <= 0 {
		return
	}
	for _, y := range g.flashRows {
		sy := g.cellY(y)
		for x := 0; x < g.board.Width(); x++ {
			sx := g.cellX(x)
			dst.SetCell(sx, sy, '#', core.ColorBrightWhite)
			dst.SetCell(sx+1, sy, '#', core.ColorBrightWhite)
		}
	}
}

// renderSidebar draws the next-piece queue, the hold slot and session
// stats to the right of the playfield.
func (g *Game) renderSidebar(dst *core.Screen) {
	sx := g.cellX(g.board.Width()) + 3
	y := hudHeight

	dst.DrawText(sx, y, "Next:")
	y++
	for _, p := range g.queue {
		g.renderPreview(dst, p, sx+1, y)
		y += p.Height() + 1
	}

	dst.DrawText(sx, y, "Hold:")
	y++
	if g.held != nil {
		g.renderPreview(dst, *g.held, sx+1, y)
		y += g.held.Height() + 1
	} else {
		dst.DrawTextColored(sx+1, y, "(empty)", core.ColorGray)
		y += 2
	}

	y++
	dst.DrawText(sx, y, fmt.Sprintf("Time:  %ds", g.ElapsedSeconds()))
	y++
	if g.combo > 1 {
		dst.DrawTextColored(sx, y, fmt.Sprintf("Combo: x%d", g.combo), core.ColorBrightYellow)
	}
}

// renderPreview draws a piece in sidebar coordinates (not board space).
func (g *Game) renderPreview(dst *core.Screen, p Piece, sx, sy int) {
	grid := shapeGrids[p.Kind][p.Rotation%RotationCount(p.Kind)]
	for dy, row := range grid {
		for dx, occupied := range row {
			if !occupied {
				continue
			}
			dst.SetCell(sx+dx*2, sy+dy, '[', p.Color)
			dst.SetCell(sx+dx*2+1, sy+dy, ']', p.Color)
		}
	}
}

// renderHelp draws the controls overlay.
func (g *Game) renderHelp(dst *core.Screen) {
	lines := []string{
		"Left/Right  Move",
		"Z / Up      Rotate",
		"Down        Soft drop",
		"Space       Hard drop",
		"C           Hold piece",
		"P           Pause",
		"H           Toggle help",
		"Q           Quit",
		"R           Restart (game over)",
	}

	boxW := 0
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, "Controls")
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+3+i, l)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
