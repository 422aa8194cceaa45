package input

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve configured action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	return map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		"quit":        {BehaviorSystem, IntentQuit, 0},
		"toggle_mute": {BehaviorSystem, IntentToggleMute, 0},
		"start":       {BehaviorAction, IntentStart, 0},

		"select_1": {BehaviorSelect, IntentSelect, 0},
		"select_2": {BehaviorSelect, IntentSelect, 1},
		"select_3": {BehaviorSelect, IntentSelect, 2},
		"select_4": {BehaviorSelect, IntentSelect, 3},
		"select_5": {BehaviorSelect, IntentSelect, 4},
		"select_6": {BehaviorSelect, IntentSelect, 5},
		"select_7": {BehaviorSelect, IntentSelect, 6},
		"select_8": {BehaviorSelect, IntentSelect, 7},
		"select_9": {BehaviorSelect, IntentSelect, 8},
	}
}

// ActionEntry returns the KeyEntry for an action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
