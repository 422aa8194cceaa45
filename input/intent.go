package input

// IntentType discriminates semantic keyboard actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Ctrl+C, Ctrl+Q
	IntentToggleMute // m
	IntentSelect     // 1-9, category by display position
	IntentStart      // Enter, Space
)

// Intent is a parsed keyboard action
type Intent struct {
	Type  IntentType
	Index int // zero-based category position for IntentSelect
}
