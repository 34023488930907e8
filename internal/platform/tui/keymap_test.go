package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termtris/termtris/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		want     core.Action
		wantQuit bool
	}{
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{"down", core.ActionSoftDrop, false},
		{"s", core.ActionSoftDrop, false},
		{" ", core.ActionHardDrop, false},
		{"z", core.ActionRotate, false},
		{"up", core.ActionRotate, false},
		{"w", core.ActionRotate, false},
		{"c", core.ActionHold, false},
		{"h", core.ActionHelp, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if action != tt.want || isQuit != tt.wantQuit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				tt.key, action, isQuit, tt.want, tt.wantQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("left"), &frame) {
		t.Error("movement key should not request quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("mapped action should be set in the frame")
	}

	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should request quit")
	}
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone must never be recorded")
	}
}
