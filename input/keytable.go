package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorSystem
	BehaviorAction
	BehaviorSelect
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	IntentType IntentType
	Index      int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {BehaviorSystem, IntentQuit, 0},
			tcell.KeyCtrlQ:  {BehaviorSystem, IntentQuit, 0},
			tcell.KeyEscape: {BehaviorSystem, IntentQuit, 0},
			tcell.KeyEnter:  {BehaviorAction, IntentStart, 0},
		},
		Runes: map[rune]KeyEntry{
			'q': {BehaviorSystem, IntentQuit, 0},
			'm': {BehaviorSystem, IntentToggleMute, 0},
			' ': {BehaviorAction, IntentStart, 0},
		},
	}
	for i := 0; i < 9; i++ {
		kt.Runes[rune('1'+i)] = KeyEntry{BehaviorSelect, IntentSelect, i}
	}
	return kt
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}

// Parse maps a key event to its intent
func (kt *KeyTable) Parse(ev *tcell.EventKey) Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = kt.Runes[ev.Rune()]
	} else {
		entry, ok = kt.SpecialKeys[ev.Key()]
	}
	if !ok || entry.Behavior == BehaviorNone {
		return Intent{}
	}
	return Intent{Type: entry.IntentType, Index: entry.Index}
}
