package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/word-mole/input"
	"github.com/lixenwraith/word-mole/render"
	"github.com/lixenwraith/word-mole/round"
	"github.com/lixenwraith/word-mole/wordbank"
)

// muter is the audio control reachable from the keyboard
type muter interface {
	ToggleMute() bool
	Muted() bool
}

// game routes terminal events into the round controller
// All methods run on the game loop goroutine
type game struct {
	ctrl   *round.Controller
	term   *render.Terminal
	screen tcell.Screen
	keys   *input.KeyTable
	sounds muter
	source input.SourceKind
	menu   []render.MenuItem

	// buttons is the mask of the previous mouse event, clicks fire on press only
	buttons tcell.ButtonMask
	quit    func()
}

func newGame(ctrl *round.Controller, term *render.Terminal, screen tcell.Screen, keys *input.KeyTable,
	sounds muter, source input.SourceKind, categories []wordbank.Category, quit func()) *game {
	g := &game{
		ctrl:   ctrl,
		term:   term,
		screen: screen,
		keys:   keys,
		sounds: sounds,
		source: source,
		quit:   quit,
	}
	for _, cat := range categories {
		g.menu = append(g.menu, render.MenuItem{ID: cat.ID, Title: cat.Title})
	}

	selected := ""
	if cat, ok := ctrl.Category(); ok {
		selected = cat.ID
	}
	term.Attach(ctrl.Board())
	term.SetMenu(g.menu, selected)
	term.SetMuteIndicator(sounds.Muted)
	return g
}

// handle processes one terminal event
func (g *game) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ev)
	case *tcell.EventMouse:
		g.handleMouse(ev)
	case *tcell.EventResize:
		g.term.Resize()
		g.screen.Sync()
	}
}

func (g *game) handleKey(ev *tcell.EventKey) {
	intent := g.keys.Parse(ev)
	switch intent.Type {
	case input.IntentQuit:
		g.quit()

	case input.IntentToggleMute:
		muted := g.sounds.ToggleMute()
		log.Printf("game: muted=%v", muted)

	case input.IntentStart:
		if err := g.ctrl.StartCountdown(); err != nil {
			log.Printf("game: start: %v", err)
		}

	case input.IntentSelect:
		if intent.Index >= len(g.menu) {
			return
		}
		id := g.menu[intent.Index].ID
		if err := g.ctrl.SelectCategory(id); err != nil {
			log.Printf("game: select: %v", err)
			return
		}
		g.term.SetMenu(g.menu, id)
	}
}

func (g *game) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
	g.buttons = buttons
	if !pressed {
		return
	}

	x, y := ev.Position()
	sx, sy := g.term.CellCenter(x, y)
	res := g.ctrl.HandleInteraction(g.source, sx, sy)
	if res.Kind == input.Hit {
		log.Printf("game: hit slot %d correct=%v proximity=%v", res.Slot, res.Correct, res.Proximity)
	}
}

// frame draws the field with the overlay matching the phase
func (g *game) frame() {
	g.term.Draw(overlayFor(g.ctrl.Phase()))
}

func overlayFor(p round.Phase) render.Overlay {
	switch p {
	case round.PhaseIdle:
		return render.OverlayMenu
	case round.PhaseEnded:
		return render.OverlayGameOver
	}
	return render.OverlayNone
}
