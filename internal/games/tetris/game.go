package tetris

import (
	"math/rand"

	"github.com/termtris/termtris/internal/config"
	"github.com/termtris/termtris/internal/core"
	"github.com/termtris/termtris/internal/registry"
)

// HighScores persists the single best score across sessions. A missing or
// unreadable store reads as 0; saving is best-effort.
type HighScores interface {
	Load() int
	Save(score int) error
}

// Package-level configuration, set by the CLI before the game is created
// (same pattern as the per-game Set functions in the platform).
var (
	configPath         string
	selectedStartLevel int
	highScoreStore     HighScores
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the starting level (1-10). 0 means use the config.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetHighScoreStore installs the persistent high-score store.
func SetHighScoreStore(hs HighScores) {
	highScoreStore = hs
}

// Game implements the falling-block puzzle. It owns the board, the
// active and queued pieces, and all session state. It is driven purely
// by Step calls: the platform owns timing and input, the game never
// blocks and never spawns goroutines.
type Game struct {
	rules config.TetrisConfig
	rng   *rand.Rand
	tick  uint64

	board   *Board
	bag     *Bag
	queue   []Piece
	current Piece
	held    *Piece
	canHold bool
	ghostY  int

	score              int
	highScore          int
	level              int
	startLevel         int
	totalLines         int
	combo              int
	lastClearWasTetris bool

	tickRate     int
	elapsedTicks uint64
	fallTicks    int    // Gravity interval in ticks, derived from level
	fallCounter  int    // Ticks since the last gravity step
	lockTicks    int    // Lock delay length in ticks
	lockDeadline uint64 // Active tick (elapsedTicks) at which the piece locks; 0 = unarmed

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	showHelp bool
	tooSmall bool

	// Line clear / level up flash animation
	flashRows   []int
	flashTicks  int
	levelUpTick uint64
}

// New creates a new game. State is established by Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Termtris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.rules = config.LoadTetris(configPath)
	g.tick = 0
	g.elapsedTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	// The CLI selection applies once; afterwards the session keeps its
	// start level across restarts.
	if selectedStartLevel > 0 {
		g.startLevel = clampLevel(selectedStartLevel)
		selectedStartLevel = 0
	} else if g.startLevel == 0 {
		g.startLevel = clampLevel(g.rules.Rules.StartLevel)
	}

	g.score = 0
	g.level = g.startLevel
	// Seed the line count so level = 1 + totalLines/10 holds from the start.
	g.totalLines = (g.startLevel - 1) * linesPerLevel
	g.combo = 0
	g.lastClearWasTetris = false
	g.gameOver = false
	g.paused = false
	g.showHelp = false
	g.flashRows = nil
	g.flashTicks = 0
	g.levelUpTick = 0

	g.highScore = 0
	if highScoreStore != nil {
		g.highScore = highScoreStore.Load()
	}

	g.board = NewBoard(g.rules.Board.Width, g.rules.Board.Height)
	g.bag = NewBag(g.rng)

	g.queue = make([]Piece, 0, g.rules.Queue.Lookahead)
	for range g.rules.Queue.Lookahead {
		g.queue = append(g.queue, SpawnPiece(g.bag.Next(), g.board.Width()))
	}
	g.current = g.nextFromQueue()
	g.held = nil
	g.canHold = true

	g.lockTicks = secondsToTicks(g.rules.Timing.LockDelay, g.tickRate)
	g.lockDeadline = 0
	g.fallCounter = 0
	g.recomputeFallTicks()
	g.recomputeGhost()
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the playfield plus sidebar.
func (g *Game) checkScreenSize() {
	minW := g.board.Width()*2 + sidebarWidth + 4
	minH := g.board.Height() + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// clampLevel restricts a starting level to the supported [1,10] range.
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 10 {
		return 10
	}
	return level
}

// secondsToTicks converts a duration in seconds to simulation ticks,
// never rounding below one tick.
func secondsToTicks(seconds float64, tickRate int) int {
	t := int(seconds * float64(tickRate))
	if t < 1 {
		t = 1
	}
	return t
}

// recomputeFallTicks derives the gravity interval from the current level.
func (g *Game) recomputeFallTicks() {
	d := g.rules.Timing.BaseFallDelay - float64(g.level-1)*g.rules.Timing.FallDelayStep
	if d < g.rules.Timing.MinFallDelay {
		d = g.rules.Timing.MinFallDelay
	}
	g.fallTicks = secondsToTicks(d, g.tickRate)
}

// recomputeGhost refreshes the ghost projection of the active piece.
func (g *Game) recomputeGhost() {
	g.ghostY = GhostY(g.current, g.board)
}

// nextFromQueue pops the front of the lookahead queue and tops it up so
// the queue length stays constant.
func (g *Game) nextFromQueue() Piece {
	p := g.queue[0]
	copy(g.queue, g.queue[1:])
	g.queue[len(g.queue)-1] = SpawnPiece(g.bag.Next(), g.board.Width())
	return p
}

// FallDelaySeconds returns the current gravity interval in seconds.
func (g *Game) FallDelaySeconds() float64 {
	return float64(g.fallTicks) / float64(g.tickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart after game over
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Help overlay suspends the simulation while visible
	if in.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
	}
	if in.Has(core.ActionPause) && !g.showHelp && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.showHelp || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.elapsedTicks++
	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flashRows = nil
		}
	}

	var result ClearResult
	placed := false

	// An expired lock delay forces placement before anything else. The
	// deadline is measured in active ticks, so suspended time (pause,
	// help overlay, small window) never eats into the grace window.
	if g.lockDeadline != 0 && g.elapsedTicks >= g.lockDeadline {
		g.lockDeadline = 0
		result = g.placeActivePiece()
		placed = true
	}

	if !placed {
		switch {
		case in.Has(core.ActionLeft):
			g.move(DirLeft)
		case in.Has(core.ActionRight):
			g.move(DirRight)
		}

		if in.Has(core.ActionRotate) {
			g.rotate()
		}
		if in.Has(core.ActionHold) {
			g.hold()
		}

		switch {
		case in.Has(core.ActionHardDrop):
			result = g.hardDrop()
			placed = true
		case in.Has(core.ActionSoftDrop):
			result, placed = g.softDrop()
		}
	}

	// Gravity: the piece falls one row every fallTicks.
	if !placed && !g.gameOver {
		g.fallCounter++
		if g.fallCounter >= g.fallTicks {
			g.fallCounter = 0
			g.gravityStep()
		}
	}

	if result.Lines > 0 {
		g.flashRows = result.Rows
		g.flashTicks = g.tickRate / 6
	}
	if result.LevelUp {
		g.levelUpTick = g.tick
	}

	return core.StepResult{
		State:        g.State(),
		LinesCleared: result.Lines,
		LevelUp:      result.LevelUp,
	}
}

// gravityStep tries to advance the piece one row down. When the piece is
// grounded it arms the lock-delay deadline instead of placing outright,
// giving the player a grace window to keep moving.
func (g *Game) gravityStep() {
	if g.move(DirDown) {
		return
	}
	if g.lockDeadline == 0 {
		g.lockDeadline = g.elapsedTicks + uint64(g.lockTicks)
	}
}

// move translates the active piece by the direction vector. A successful
// move disarms the lock delay and refreshes the ghost.
func (g *Game) move(dir [2]int) bool {
	cand := g.current.Moved(dir[0], dir[1])
	if Collides(cand, g.board) {
		return false
	}
	g.current = cand
	g.lockDeadline = 0
	g.recomputeGhost()
	return true
}

// rotate turns the active piece clockwise, trying wall-kick offsets when
// the in-place rotation collides. A failed rotation leaves the piece
// untouched.
func (g *Game) rotate() {
	cand := g.current.Rotated()
	if !Collides(cand, g.board) {
		g.commitRotation(cand)
		return
	}
	for _, dx := range wallKickOffsets {
		kicked := cand.Moved(dx, 0)
		if !Collides(kicked, g.board) {
			g.commitRotation(kicked)
			return
		}
	}
}

func (g *Game) commitRotation(p Piece) {
	g.current = p
	g.lockDeadline = 0
	g.recomputeGhost()
}

// hold stashes the active piece, swapping with a previously held piece
// if there is one. Only one hold is allowed per piece in play. The
// swapped-in piece keeps its rotation but is re-anchored to its spawn
// position.
func (g *Game) hold() {
	if !g.canHold {
		return
	}

	if g.held == nil {
		h := g.current
		g.held = &h
		g.current = g.nextFromQueue()
	} else {
		h := g.current
		spawn := SpawnPiece(g.held.Kind, g.board.Width())
		g.current = g.held.At(spawn.X, spawn.Y)
		g.held = &h
	}

	g.canHold = false
	g.lockDeadline = 0
	g.recomputeGhost()
}

// softDrop moves the piece down one row, placing it when it is blocked.
func (g *Game) softDrop() (ClearResult, bool) {
	if g.move(DirDown) {
		return ClearResult{}, false
	}
	return g.placeActivePiece(), true
}

// hardDrop sends the piece straight to the bottom and places it.
func (g *Game) hardDrop() ClearResult {
	for g.move(DirDown) {
	}
	return g.placeActivePiece()
}

// placeActivePiece stamps the active piece into the board, clears lines,
// and pulls the next piece from the queue. A fresh piece that collides
// immediately ends the game; the high score persists at that point.
func (g *Game) placeActivePiece() ClearResult {
	Stamp(g.current, g.board)
	result := g.clearLines()

	g.current = g.nextFromQueue()
	g.canHold = true
	g.fallCounter = 0
	g.lockDeadline = 0

	if Collides(g.current, g.board) {
		g.gameOver = true
		if g.score > g.highScore {
			g.highScore = g.score
			if highScoreStore != nil {
				//nolint:errcheck // Best-effort save, the session ends regardless
				highScoreStore.Save(g.highScore)
			}
		}
	}

	g.recomputeGhost()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.totalLines,
		GameOver: g.gameOver,
		Paused:   g.paused || g.showHelp || g.tooSmall,
	}
}

// ElapsedSeconds returns whole seconds of active play time.
func (g *Game) ElapsedSeconds() int {
	return int(g.elapsedTicks) / g.tickRate
}
