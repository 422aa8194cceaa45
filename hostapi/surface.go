package hostapi

import (
	"log"
	"time"

	"github.com/lixenwraith/word-mole/round"
	"github.com/lixenwraith/word-mole/scene"
)

// Event is a server to client message
type Event struct {
	Type       string        `json:"type"`
	Value      int           `json:"value"`
	Text       string        `json:"text,omitempty"`
	Slot       int           `json:"slot"`
	X          float64       `json:"x,omitempty"`
	Y          float64       `json:"y,omitempty"`
	DurationMS int64         `json:"duration_ms,omitempty"`
	Correct    bool          `json:"correct,omitempty"`
	Result     *round.Result `json:"result,omitempty"`
}

// Server event types
const (
	EventReady      = "ready"
	EventScore      = "score"
	EventTimer      = "timer"
	EventTitle      = "title"
	EventMessage    = "message"
	EventWord       = "word"
	EventResolution = "resolution"
	EventRoundEnd   = "round_end"
	EventError      = "error"
)

// wsSurface queues UI updates for the connection writer
// Called only on the session loop goroutine
type wsSurface struct {
	out   chan<- Event
	field *scene.Field
}

func (s *wsSurface) send(ev Event) {
	select {
	case s.out <- ev:
	default:
		log.Printf("hostapi: outbox full, dropping %s event", ev.Type)
	}
}

func (s *wsSurface) SetScoreDisplay(score int) {
	s.send(Event{Type: EventScore, Value: score})
}

func (s *wsSurface) SetTimerDisplay(seconds int) {
	s.send(Event{Type: EventTimer, Value: seconds})
}

func (s *wsSurface) SetCategoryTitle(title string) {
	s.send(Event{Type: EventTitle, Text: title})
}

func (s *wsSurface) ShowMessage(text string, d time.Duration) {
	s.send(Event{Type: EventMessage, Text: text, DurationMS: d.Milliseconds()})
}

// RenderWordOnEntity includes the mole's projected screen position so the page can place the label
func (s *wsSurface) RenderWordOnEntity(slot int, word string) {
	ev := Event{Type: EventWord, Slot: slot, Text: word}
	if pos, ok := s.field.Position(slot); ok {
		p := s.field.ProjectToScreen(pos)
		ev.X, ev.Y = p.X, p.Y
	}
	s.send(ev)
}
