package main

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/engine"
	"github.com/lixenwraith/word-mole/input"
	"github.com/lixenwraith/word-mole/render"
	"github.com/lixenwraith/word-mole/round"
	"github.com/lixenwraith/word-mole/scene"
	"github.com/lixenwraith/word-mole/status"
	"github.com/lixenwraith/word-mole/wordbank"
)

type fakeMuter struct {
	muted bool
}

func (f *fakeMuter) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func (f *fakeMuter) Muted() bool {
	return f.muted
}

type testGame struct {
	*game
	sched  *engine.Scheduler
	screen tcell.SimulationScreen
	field  *scene.Field
	reg    *status.Registry
	bank   *wordbank.Bank
	mute   *fakeMuter
	quits  int
}

func newTestGame(t *testing.T) *testGame {
	t.Helper()
	bank, err := wordbank.Default()
	if err != nil {
		t.Fatalf("wordbank: %v", err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	sched := engine.NewScheduler(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	field := scene.NewField(sched, scene.DefaultCamera(100, 40), scene.MoleRadius)
	reg := status.NewRegistry()
	term := render.NewTerminal(screen, sched, field, reg)

	cfg := round.DefaultConfig()
	cfg.Input.YScale = constants.TerminalCellAspect
	ctrl := round.NewController(sched, field, term, nil, bank, cfg, rand.New(rand.NewPCG(1, 1)), reg)

	tg := &testGame{sched: sched, screen: screen, field: field, reg: reg, bank: bank, mute: &fakeMuter{}}
	tg.game = newGame(ctrl, term, screen, input.DefaultKeyTable(), tg.mute, input.Pointer, bank.Categories(), func() { tg.quits++ })
	return tg
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSelectKeyChangesCategory(t *testing.T) {
	g := newTestGame(t)
	want := g.bank.Categories()[1].ID

	g.handle(key('2'))

	cat, ok := g.ctrl.Category()
	if !ok || cat.ID != want {
		t.Errorf("Expected category %q after pressing 2, got %q", want, cat.ID)
	}
}

func TestStartKeyRunsCountdown(t *testing.T) {
	g := newTestGame(t)

	g.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if g.ctrl.Phase() != round.PhaseCountdown {
		t.Fatalf("Expected countdown after Enter, got %s", g.ctrl.Phase())
	}

	// Selection is refused mid-round
	before, _ := g.ctrl.Category()
	g.handle(key('3'))
	if cat, _ := g.ctrl.Category(); cat.ID != before.ID {
		t.Error("Category must not change during the countdown")
	}

	g.sched.Advance(time.Duration(constants.CountdownSteps+1)*constants.CountdownStep + constants.StartDelay)
	if g.ctrl.Phase() != round.PhaseActive {
		t.Errorf("Expected active round after the countdown, got %s", g.ctrl.Phase())
	}
}

func TestMouseClickFiresOnPressOnly(t *testing.T) {
	g := newTestGame(t)
	interactions := func() int64 {
		return g.reg.Counter(status.InputAccepted).Load() + g.reg.Counter(status.InputDebounced).Load()
	}

	g.handle(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	if g.ctrl.Phase() != round.PhaseCountdown {
		t.Fatalf("Expected a click while idle to start the countdown, got %s", g.ctrl.Phase())
	}

	// Drag with the button held, then release
	g.handle(tcell.NewEventMouse(11, 10, tcell.Button1, tcell.ModNone))
	g.handle(tcell.NewEventMouse(11, 10, tcell.ButtonNone, tcell.ModNone))
	if n := interactions(); n != 1 {
		t.Errorf("Expected one interaction for one press, got %d", n)
	}

	g.sched.Advance(time.Second)
	g.handle(tcell.NewEventMouse(12, 10, tcell.Button1, tcell.ModNone))
	if n := interactions(); n != 2 {
		t.Errorf("Expected a second press to register, got %d", n)
	}
}

func TestQuitAndMuteKeys(t *testing.T) {
	g := newTestGame(t)

	g.handle(key('m'))
	if !g.mute.muted {
		t.Error("Expected m to mute")
	}
	g.handle(key('m'))
	if g.mute.muted {
		t.Error("Expected second m to unmute")
	}

	g.handle(key('q'))
	g.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if g.quits != 2 {
		t.Errorf("Expected two quit requests, got %d", g.quits)
	}
}

func TestResizeEventUpdatesViewport(t *testing.T) {
	g := newTestGame(t)

	g.screen.SetSize(60, 24)
	g.handle(tcell.NewEventResize(60, 24))

	cam := g.field.Camera()
	if cam.Width != 60 || cam.Height != 24 {
		t.Errorf("Expected 60x24 viewport, got %vx%v", cam.Width, cam.Height)
	}
}

func TestFrameDrawsMenuWhileIdle(t *testing.T) {
	g := newTestGame(t)
	g.frame()

	first := g.bank.Categories()[0].Title
	w, h := g.screen.Size()
	found := false
	for y := 0; y < h && !found; y++ {
		row := make([]rune, 0, w)
		for x := 0; x < w; x++ {
			r, _, _, _ := g.screen.GetContent(x, y)
			row = append(row, r)
		}
		found = containsRunes(row, "1. "+first)
	}
	if !found {
		t.Error("Expected the category menu while idle")
	}
}

func TestOverlayForPhase(t *testing.T) {
	cases := map[round.Phase]render.Overlay{
		round.PhaseIdle:      render.OverlayMenu,
		round.PhaseCountdown: render.OverlayNone,
		round.PhaseActive:    render.OverlayNone,
		round.PhaseEnded:     render.OverlayGameOver,
	}
	for phase, want := range cases {
		if got := overlayFor(phase); got != want {
			t.Errorf("overlayFor(%s) = %v, want %v", phase, got, want)
		}
	}
}

func containsRunes(row []rune, s string) bool {
	want := []rune(s)
	for i := 0; i+len(want) <= len(row); i++ {
		match := true
		for j, r := range want {
			if row[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
