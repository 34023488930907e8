package tetris

// Phase represents the coarse session state.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhasePaused      Phase = "paused"
	PhaseHelp        Phase = "help"
	PhaseGameOver    Phase = "game_over"
	PhaseSmallWindow Phase = "paused_small_window"
)

// Snapshot captures the complete session state with primitive fields,
// for determinism tests and debugging.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	HighScore  int
	Level      int
	TotalLines int
	Combo      int
	BackToBack bool

	CurrentKind     string
	CurrentX        int
	CurrentY        int
	CurrentRotation int
	GhostY          int

	HeldKind string // Empty when nothing is held
	CanHold  bool
	Queue    []string

	LockArmed bool

	// Board cells flattened row-major; 0 is empty, otherwise the color tag.
	BoardWidth  int
	BoardHeight int
	Board       []uint8
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhaseSmallWindow
	case g.gameOver:
		phase = PhaseGameOver
	case g.showHelp:
		phase = PhaseHelp
	case g.paused:
		phase = PhasePaused
	}

	queue := make([]string, len(g.queue))
	for i, p := range g.queue {
		queue[i] = p.Kind.String()
	}

	held := ""
	if g.held != nil {
		held = g.held.Kind.String()
	}

	w := g.board.Width()
	h := g.board.Height()
	cells := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells = append(cells, uint8(g.board.Cell(x, y)))
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Phase:      phase,
		Score:      g.score,
		HighScore:  g.highScore,
		Level:      g.level,
		TotalLines: g.totalLines,
		Combo:      g.combo,
		BackToBack: g.lastClearWasTetris,

		CurrentKind:     g.current.Kind.String(),
		CurrentX:        g.current.X,
		CurrentY:        g.current.Y,
		CurrentRotation: g.current.Rotation,
		GhostY:          g.ghostY,

		HeldKind: held,
		CanHold:  g.canHold,
		Queue:    queue,

		LockArmed: g.lockDeadline != 0,

		BoardWidth:  w,
		BoardHeight: h,
		Board:       cells,
	}
}
