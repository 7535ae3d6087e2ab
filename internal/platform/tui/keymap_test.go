package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thinthought/spyke/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKeySceneActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
	}{
		{"a", core.ActionLeft},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"right", core.ActionRight},
		{" ", core.ActionJump},
		{"w", core.ActionJump},
		{"up", core.ActionJump},
		{"s", core.ActionDuck},
		{"down", core.ActionDuck},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"b", core.ActionBack},
		{"esc", core.ActionBack},
		{"z", core.ActionNone},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if action != tc.action {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.action)
		}
		if isQuit {
			t.Errorf("MapKey(%q) flagged quit", tc.key)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(key))
		if !isQuit {
			t.Errorf("MapKey(%q) should flag quit", key)
		}
		if action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, expected ActionQuit", key, action)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("d"), &frame); quit {
		t.Error("Movement key flagged quit")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("Expected ActionRight in frame")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("Quit key not flagged")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"tab", MenuActionBrowser},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.action)
		}
	}
}
