package tetris

import (
	"reflect"
	"testing"

	"github.com/termtris/termtris/internal/core"
)

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// forceTopOut drives the game into a game-over state: the stack is
// raised to row 2 (with a gap so nothing clears) and the active piece is
// dropped on top, leaving no room for the next spawn.
func forceTopOut(g *Game) {
	for y := 2; y < g.board.Height(); y++ {
		fillRowExcept(g.board, y, 0)
	}
	g.current = NewPiece(KindO, 4, 0)
	g.recomputeGhost()
	g.Step(frameWith(core.ActionHardDrop))
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t, 1)

	state := g.State()
	if state.Score != 0 || state.Level != 1 || state.Lines != 0 {
		t.Errorf("fresh state = %+v", state)
	}
	if state.GameOver || state.Paused {
		t.Error("fresh game should be running")
	}

	if len(g.queue) != g.rules.Queue.Lookahead {
		t.Errorf("queue length = %d, want %d", len(g.queue), g.rules.Queue.Lookahead)
	}
	if g.current.Y != 0 {
		t.Errorf("active piece should spawn at the top, got y=%d", g.current.Y)
	}
	if !g.canHold {
		t.Error("hold should be available at spawn")
	}
	if g.board.occupiedCount() != 0 {
		t.Error("board should start empty")
	}
}

func TestStartLevelSeedsLineCount(t *testing.T) {
	SetStartLevel(5)
	g := newTestGame(t, 1)

	if g.level != 5 {
		t.Fatalf("level = %d, want 5", g.level)
	}
	if g.totalLines != 40 {
		t.Fatalf("total lines = %d, want 40", g.totalLines)
	}
	// Level 5 gravity: 0.5 - 4*0.05 = 0.3s at 60 ticks/s.
	if g.fallTicks != 18 {
		t.Fatalf("fall ticks = %d, want 18", g.fallTicks)
	}

	// The selection applies to the game it was made for, not to later ones.
	g2 := newTestGame(t, 1)
	if g2.level != 1 {
		t.Errorf("second game level = %d, want 1", g2.level)
	}
}

func TestRestartKeepsStartLevel(t *testing.T) {
	SetStartLevel(7)
	g := newTestGame(t, 1)

	forceTopOut(g)
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(frameWith(core.ActionRestart))

	state := g.State()
	if state.GameOver {
		t.Fatal("restart should clear game over")
	}
	if state.Score != 0 {
		t.Errorf("restart score = %d, want 0", state.Score)
	}
	if g.level != 7 {
		t.Errorf("restart level = %d, want 7", g.level)
	}
	if g.board.occupiedCount() != 0 {
		t.Error("restart should empty the board")
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 1)
	forceTopOut(g)

	snap := g.Snapshot()
	for i := 0; i < 50; i++ {
		g.Step(frameWith(core.ActionLeft, core.ActionSoftDrop))
	}

	after := g.Snapshot()
	if after.Phase != PhaseGameOver {
		t.Fatalf("phase = %s, want %s", after.Phase, PhaseGameOver)
	}
	if after.Score != snap.Score || after.CurrentX != snap.CurrentX {
		t.Error("inputs must not advance a finished game")
	}
	if !reflect.DeepEqual(after.Board, snap.Board) {
		t.Error("board must not change after game over")
	}
}

func TestGravityInterval(t *testing.T) {
	g := newTestGame(t, 1)
	empty := core.NewInputFrame()

	startY := g.current.Y
	for i := 0; i < g.fallTicks-1; i++ {
		g.Step(empty)
	}
	if g.current.Y != startY {
		t.Fatalf("piece fell early: y=%d", g.current.Y)
	}

	g.Step(empty)
	if g.current.Y != startY+1 {
		t.Fatalf("piece should fall one row after %d ticks, y=%d", g.fallTicks, g.current.Y)
	}
}

func TestHardDropLandsOnGhost(t *testing.T) {
	g := newTestGame(t, 1)
	pre := g.current
	ghost := g.ghostY

	g.Step(frameWith(core.ActionHardDrop))

	if g.board.occupiedCount() != 4 {
		t.Fatalf("occupied cells = %d, want 4", g.board.occupiedCount())
	}

	landed := pre.At(pre.X, ghost)
	for dy, row := range landed.Grid() {
		for dx, occupied := range row {
			if occupied && g.board.Cell(landed.X+dx, landed.Y+dy) != landed.Color {
				t.Fatalf("cell (%d,%d) not stamped at ghost position", landed.X+dx, landed.Y+dy)
			}
		}
	}

	if g.current.Y != 0 {
		t.Error("next piece should spawn at the top")
	}
}

func TestSoftDropPlacesWhenBlocked(t *testing.T) {
	g := newTestGame(t, 1)
	g.current = NewPiece(KindO, 4, g.board.Height()-2)
	g.recomputeGhost()

	g.Step(frameWith(core.ActionSoftDrop))

	if g.board.occupiedCount() != 4 {
		t.Fatalf("blocked soft drop should place the piece, occupied = %d", g.board.occupiedCount())
	}
}

func TestWallKick(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		wantX int
	}{
		// Vertical I near the right wall: the in-place rotation to the
		// 4-wide state collides, and the kick offsets are tried in
		// order. From x=7 the -1 shift resolves; from x=8 it takes -2.
		{"minus one resolves", 7, 6},
		{"minus two resolves", 8, 6},
	}

	for _, tt := range tests {
		g := newTestGame(t, 1)
		p := NewPiece(KindI, tt.x, 5)
		p.Rotation = 1
		g.current = p
		g.recomputeGhost()

		g.rotate()

		if g.current.Rotation != 0 {
			t.Fatalf("%s: rotation = %d, want 0", tt.name, g.current.Rotation)
		}
		if g.current.X != tt.wantX {
			t.Errorf("%s: kicked x = %d, want %d", tt.name, g.current.X, tt.wantX)
		}
		if g.current.Y != 5 {
			t.Errorf("%s: kick must not change y, got %d", tt.name, g.current.Y)
		}
	}
}

func TestRotationBlockedLeavesPieceUntouched(t *testing.T) {
	g := newTestGame(t, 1)

	// Vertical I in the last column: no kick offset can fit the 4-wide
	// state, so the rotation is refused.
	p := NewPiece(KindI, 9, 5)
	p.Rotation = 1
	g.current = p
	g.recomputeGhost()

	g.rotate()

	if g.current.Rotation != 1 || g.current.X != 9 || g.current.Y != 5 {
		t.Errorf("blocked rotation changed the piece: %+v", g.current)
	}
}

func TestHoldFirstUse(t *testing.T) {
	g := newTestGame(t, 1)
	first := g.current.Kind
	next := g.queue[0].Kind

	g.hold()

	if g.held == nil || g.held.Kind != first {
		t.Fatal("first hold should stash the active piece")
	}
	if g.current.Kind != next {
		t.Errorf("current = %s, want next queued %s", g.current.Kind, next)
	}
	if len(g.queue) != g.rules.Queue.Lookahead {
		t.Error("queue should be topped back up after hold")
	}
}

func TestHoldOncePerPiece(t *testing.T) {
	g := newTestGame(t, 1)

	g.hold()
	heldKind := g.held.Kind
	currentKind := g.current.Kind

	g.hold()

	if g.held.Kind != heldKind || g.current.Kind != currentKind {
		t.Fatal("second hold before placement should be a no-op")
	}

	// Placing the piece re-arms hold.
	g.placeActivePiece()
	if !g.canHold {
		t.Error("hold should be available again after placement")
	}
}

func TestHoldSwapPreservesRotation(t *testing.T) {
	g := newTestGame(t, 1)

	h := NewPiece(KindT, 0, 15)
	h.Rotation = 2
	g.held = &h
	prev := g.current.Kind

	g.hold()

	if g.current.Kind != KindT {
		t.Fatalf("swap should activate the held piece, got %s", g.current.Kind)
	}
	if g.current.Rotation != 2 {
		t.Errorf("swap rotation = %d, want 2 (preserved)", g.current.Rotation)
	}
	spawn := SpawnPiece(KindT, g.board.Width())
	if g.current.X != spawn.X || g.current.Y != spawn.Y {
		t.Errorf("swap position = (%d,%d), want spawn anchor (%d,%d)",
			g.current.X, g.current.Y, spawn.X, spawn.Y)
	}
	if g.held.Kind != prev {
		t.Errorf("held = %s, want previous active %s", g.held.Kind, prev)
	}
}

func TestLockDelayGraceWindow(t *testing.T) {
	g := newTestGame(t, 1)
	g.current = NewPiece(KindO, 4, g.board.Height()-2)
	g.recomputeGhost()
	empty := core.NewInputFrame()

	// Gravity fails on a grounded piece and arms the lock deadline
	// instead of placing immediately.
	for i := 0; i < g.fallTicks; i++ {
		g.Step(empty)
	}
	if g.lockDeadline == 0 {
		t.Fatal("grounded piece should arm the lock delay")
	}
	if g.board.occupiedCount() != 0 {
		t.Fatal("piece must not place before the delay expires")
	}

	// A successful move resets the window.
	g.Step(frameWith(core.ActionLeft))
	if g.lockDeadline != 0 {
		t.Fatal("movement should disarm the lock delay")
	}

	// Left alone, the piece eventually locks.
	for i := 0; i < g.fallTicks+g.lockTicks+2; i++ {
		g.Step(empty)
	}
	if g.board.occupiedCount() != 4 {
		t.Fatalf("piece should lock after the delay, occupied = %d", g.board.occupiedCount())
	}
}

func TestPauseDoesNotConsumeLockDelay(t *testing.T) {
	g := newTestGame(t, 1)
	g.current = NewPiece(KindO, 4, g.board.Height()-2)
	g.recomputeGhost()
	empty := core.NewInputFrame()

	for i := 0; i < g.fallTicks; i++ {
		g.Step(empty)
	}
	if g.lockDeadline == 0 {
		t.Fatal("grounded piece should arm the lock delay")
	}

	// Sit paused for far longer than the lock delay.
	g.Step(frameWith(core.ActionPause))
	for i := 0; i < g.lockTicks*3; i++ {
		g.Step(empty)
	}
	g.Step(frameWith(core.ActionPause))

	if g.board.occupiedCount() != 0 {
		t.Fatal("paused time must not expire the lock delay")
	}

	// The grace window resumes where it left off: the first move after
	// unpausing still disarms it.
	g.Step(frameWith(core.ActionLeft))
	if g.lockDeadline != 0 {
		t.Fatal("movement after unpausing should disarm the lock delay")
	}
	if g.board.occupiedCount() != 0 {
		t.Fatal("piece placed despite a disarmed lock delay")
	}
}

func TestHelpOverlayDoesNotConsumeLockDelay(t *testing.T) {
	g := newTestGame(t, 1)
	g.current = NewPiece(KindO, 4, g.board.Height()-2)
	g.recomputeGhost()
	empty := core.NewInputFrame()

	for i := 0; i < g.fallTicks; i++ {
		g.Step(empty)
	}
	if g.lockDeadline == 0 {
		t.Fatal("grounded piece should arm the lock delay")
	}

	g.Step(frameWith(core.ActionHelp))
	for i := 0; i < g.lockTicks*3; i++ {
		g.Step(empty)
	}
	g.Step(frameWith(core.ActionHelp))

	if g.board.occupiedCount() != 0 {
		t.Fatal("time under the help overlay must not expire the lock delay")
	}
}

func TestPauseSuspendsSimulation(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.Snapshot()
	for i := 0; i < 50; i++ {
		g.Step(frameWith(core.ActionSoftDrop))
	}
	after := g.Snapshot()
	if after.CurrentY != before.CurrentY || after.Score != before.Score {
		t.Error("inputs must not advance a paused game")
	}

	g.Step(frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestHelpOverlaySuspendsSimulation(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frameWith(core.ActionHelp))
	if g.Snapshot().Phase != PhaseHelp {
		t.Fatal("help action should open the overlay")
	}

	ticks := g.elapsedTicks
	g.Step(core.NewInputFrame())
	if g.elapsedTicks != ticks {
		t.Error("simulation must not advance under the help overlay")
	}

	g.Step(frameWith(core.ActionHelp))
	if g.Snapshot().Phase != PhasePlaying {
		t.Error("second help action should close the overlay")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		input.Clear()
		switch {
		case i%37 == 5:
			input.Set(core.ActionLeft)
		case i%53 == 11:
			input.Set(core.ActionRotate)
		case i%71 == 20:
			input.Set(core.ActionHardDrop)
		case i%29 == 3:
			input.Set(core.ActionSoftDrop)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed and inputs should produce identical snapshots")
	}
}

type fakeHighScores struct {
	best  int
	saved []int
}

func (f *fakeHighScores) Load() int { return f.best }

func (f *fakeHighScores) Save(score int) error {
	f.saved = append(f.saved, score)
	f.best = score
	return nil
}

func TestHighScorePersistedOnGameOver(t *testing.T) {
	store := &fakeHighScores{best: 250}
	SetHighScoreStore(store)
	defer SetHighScoreStore(nil)

	g := newTestGame(t, 1)
	if g.highScore != 250 {
		t.Fatalf("high score loaded = %d, want 250", g.highScore)
	}

	g.score = 500
	forceTopOut(g)

	if !g.gameOver {
		t.Fatal("expected game over")
	}
	if len(store.saved) != 1 || store.saved[0] != 500 {
		t.Fatalf("saved = %v, want [500]", store.saved)
	}
	if g.highScore != 500 {
		t.Errorf("high score = %d, want 500", g.highScore)
	}
}

func TestHighScoreNotSavedWhenBelowBest(t *testing.T) {
	store := &fakeHighScores{best: 9000}
	SetHighScoreStore(store)
	defer SetHighScoreStore(nil)

	g := newTestGame(t, 1)
	g.score = 100
	forceTopOut(g)

	if len(store.saved) != 0 {
		t.Fatalf("saved = %v, want none", store.saved)
	}
	if g.highScore != 9000 {
		t.Errorf("high score = %d, want 9000", g.highScore)
	}
}
