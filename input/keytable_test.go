package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Intent{Type: IntentQuit}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), Intent{Type: IntentToggleMute}},
		{"select first", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), Intent{Type: IntentSelect, Index: 0}},
		{"select ninth", tcell.NewEventKey(tcell.KeyRune, '9', tcell.ModNone), Intent{Type: IntentSelect, Index: 8}},
		{"start", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Intent{Type: IntentStart}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Intent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Parse(tt.ev); got != tt.want {
				t.Errorf("Parse = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadAndMergeKeyConfig(t *testing.T) {
	override, err := LoadKeyConfig(
		map[string]string{"x": "quit", "q": "none", "space": "toggle_mute"},
		map[string]string{"Ctrl-Q": "none"},
	)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)
	if got := kt.Parse(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); got.Type != IntentQuit {
		t.Errorf("x should quit, got %+v", got)
	}
	if got := kt.Parse(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); got.Type != IntentNone {
		t.Errorf("q should be unbound, got %+v", got)
	}
	if got := kt.Parse(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); got.Type != IntentToggleMute {
		t.Errorf("space should toggle mute, got %+v", got)
	}
	if _, ok := kt.SpecialKeys[tcell.KeyCtrlQ]; ok {
		t.Error("Ctrl-Q should be unbound")
	}

	// Base table is untouched
	if got := DefaultKeyTable().Parse(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); got.Type != IntentQuit {
		t.Error("Default table mutated")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	if _, err := LoadKeyConfig(map[string]string{"x": "fly"}, nil); err == nil {
		t.Error("Expected unknown action error")
	}
	if _, err := LoadKeyConfig(map[string]string{"xy": "quit"}, nil); err == nil {
		t.Error("Expected invalid rune error")
	}
	if _, err := LoadKeyConfig(nil, map[string]string{"Hyper-Z": "quit"}); err == nil {
		t.Error("Expected unknown key name error")
	}
}
