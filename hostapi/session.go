package hostapi

import (
	"errors"
	"log"
	"net"
	"math/rand/v2"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/core"
	"github.com/lixenwraith/word-mole/engine"
	"github.com/lixenwraith/word-mole/input"
	"github.com/lixenwraith/word-mole/round"
	"github.com/lixenwraith/word-mole/scene"
)

// ClientMessage is a client to server message
type ClientMessage struct {
	Type     string  `json:"type"`
	Category string  `json:"category,omitempty"`
	Source   string  `json:"source,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
}

// Client message types
const (
	MsgSelect      = "select"
	MsgStart       = "start"
	MsgViewport    = "viewport"
	MsgInteraction = "interaction"
)

var errUnknownMessage = errors.New("unknown message type")

// session is one game bound to one websocket connection
type session struct {
	conn    *websocket.Conn
	loop    *engine.Loop
	field   *scene.Field
	surface *wsSurface
	ctrl    *round.Controller
	out     chan Event
}

func newSession(s *Server, conn *websocket.Conn, seed uint64) *session {
	loop := engine.NewLoop(s.clock, constants.InboxSize)
	sched := loop.Scheduler()
	field := scene.NewField(sched, scene.DefaultCamera(constants.DefaultViewportWidth, constants.DefaultViewportHeight), scene.MoleRadius)
	out := make(chan Event, constants.WSOutboxSize)
	surface := &wsSurface{out: out, field: field}

	ss := &session{
		conn:    conn,
		loop:    loop,
		field:   field,
		surface: surface,
		out:     out,
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	// Sounds belong to the browser page
	ss.ctrl = round.NewController(sched, field, surface, nil, s.bank, s.cfg, rng, s.reg)
	ss.ctrl.OnRoundEnd(func(res round.Result) {
		s.recordResult(res)
		surface.send(Event{Type: EventRoundEnd, Value: res.Score, Result: &res})
	})

	ready := Event{Type: EventReady}
	if cat, ok := ss.ctrl.Category(); ok {
		ready.Text = cat.ID
	}
	surface.send(ready)
	return ss
}

// run serves the connection until the client goes away
func (ss *session) run() {
	defer ss.conn.Close()

	ss.loop.Start()
	writerDone := make(chan struct{})
	core.Go(func() {
		defer close(writerDone)
		ss.writePump()
	})

	ss.readPump()

	// No surface call can happen once the loop has stopped
	ss.loop.Stop()
	close(ss.out)
	<-writerDone
}

// close sends a going-away close frame and closes the connection, which ends readPump.
// Safe to call concurrently with the writer
func (ss *session) close() {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown")
	if err := ss.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(constants.WSWriteTimeout)); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		log.Printf("hostapi: close frame: %v", err)
	}
	ss.conn.Close()
}

func (ss *session) readPump() {
	ss.conn.SetReadLimit(constants.WSReadLimit)
	for {
		var msg ClientMessage
		if err := ss.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && !errors.Is(err, net.ErrClosed) {
				log.Printf("hostapi: read: %v", err)
			}
			return
		}
		if err := ss.loop.Post(func() { ss.dispatch(msg) }); err != nil {
			return
		}
	}
}

func (ss *session) writePump() {
	for ev := range ss.out {
		ss.conn.SetWriteDeadline(time.Now().Add(constants.WSWriteTimeout))
		if err := ss.conn.WriteJSON(ev); err != nil {
			log.Printf("hostapi: write: %v", err)
			// Keep draining until the session closes the outbox
			for range ss.out {
			}
			return
		}
	}
}

// dispatch runs on the session loop
func (ss *session) dispatch(msg ClientMessage) {
	var err error
	switch msg.Type {
	case MsgSelect:
		err = ss.ctrl.SelectCategory(msg.Category)
	case MsgStart:
		err = ss.ctrl.StartCountdown()
	case MsgViewport:
		if msg.Width > 0 && msg.Height > 0 {
			ss.field.SetViewport(msg.Width, msg.Height, 1)
		}
	case MsgInteraction:
		res := ss.ctrl.HandleInteraction(input.ParseSource(msg.Source), msg.X, msg.Y)
		ss.surface.send(Event{Type: EventResolution, Text: res.Kind.String(), Slot: res.Slot, Correct: res.Correct})
	default:
		err = errUnknownMessage
	}
	if err != nil {
		ss.surface.send(Event{Type: EventError, Text: err.Error()})
	}
}
