// Package hostapi bridges a browser host page to the game over HTTP and websockets
package hostapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/word-mole/core"
	"github.com/lixenwraith/word-mole/engine"
	"github.com/lixenwraith/word-mole/round"
	"github.com/lixenwraith/word-mole/status"
	"github.com/lixenwraith/word-mole/wordbank"
)

// CategoryInfo is the JSON form of a category in listings
type CategoryInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Words int    `json:"words"`
}

// Server serves the category list, the last round result, metrics and one game per websocket
type Server struct {
	bank  *wordbank.Bank
	cfg   round.Config
	reg   *status.Registry
	clock engine.TimeProvider
	seed  uint64

	upgrader websocket.Upgrader
	sessions atomic.Uint64

	// open holds the running sessions, closing refuses new ones
	connMu  sync.Mutex
	open    map[*session]struct{}
	closing bool
	active  sync.WaitGroup

	mu   sync.Mutex
	last *round.Result
}

// NewServer creates a bridge, a zero seed draws session seeds from the clock
func NewServer(bank *wordbank.Bank, cfg round.Config, reg *status.Registry, clock engine.TimeProvider, seed uint64) *Server {
	return &Server{
		bank:  bank,
		cfg:   cfg,
		reg:   reg,
		clock: clock,
		seed:  seed,
		open:  make(map[*session]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Router returns the HTTP routes
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/categories", s.handleCategories).Methods("GET")
	api.HandleFunc("/rounds/last", s.handleLastRound).Methods("GET")
	api.HandleFunc("/status", s.handleStatus).Methods("GET")
	r.HandleFunc("/ws", s.handleWS)
	return r
}

// Wait blocks until every websocket session has shut down
func (s *Server) Wait() {
	s.active.Wait()
}

// Shutdown refuses new sessions, sends a going-away close frame to every open session,
// closes their connections and waits for them to finish or ctx to expire.
// http.Server.Shutdown does not track hijacked websocket connections
func (s *Server) Shutdown(ctx context.Context) error {
	s.connMu.Lock()
	s.closing = true
	open := make([]*session, 0, len(s.open))
	for ss := range s.open {
		open = append(open, ss)
	}
	s.connMu.Unlock()

	for _, ss := range open {
		ss.close()
	}

	done := make(chan struct{})
	core.Go(func() {
		s.Wait()
		close(done)
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// track registers a session, false once Shutdown has begun
func (s *Server) track(ss *session) bool {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.closing {
		return false
	}
	s.open[ss] = struct{}{}
	s.active.Add(1)
	return true
}

func (s *Server) untrack(ss *session) {
	s.connMu.Lock()
	delete(s.open, ss)
	s.connMu.Unlock()
	s.active.Done()
}

// LastResult returns the most recent round finished on any session
func (s *Server) LastResult() (round.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return round.Result{}, false
	}
	return *s.last, true
}

func (s *Server) recordResult(res round.Result) {
	s.mu.Lock()
	s.last = &res
	s.mu.Unlock()
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := s.bank.Categories()
	out := make([]CategoryInfo, len(cats))
	for i, c := range cats {
		out[i] = CategoryInfo{ID: c.ID, Title: c.Title, Words: len(c.Words)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLastRound(w http.ResponseWriter, r *http.Request) {
	res, ok := s.LastResult()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no round finished yet"})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reg.Snapshot())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("hostapi: upgrade: %v", err)
		return
	}

	seed := s.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	seed += s.sessions.Add(1)

	ss := newSession(s, conn, seed)
	if !s.track(ss) {
		ss.close()
		return
	}
	defer s.untrack(ss)
	ss.run()
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("hostapi: encode response: %v", err)
	}
}
