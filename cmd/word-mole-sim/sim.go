package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/engine"
	"github.com/lixenwraith/word-mole/input"
	"github.com/lixenwraith/word-mole/round"
	"github.com/lixenwraith/word-mole/scene"
	"github.com/lixenwraith/word-mole/status"
	"github.com/lixenwraith/word-mole/ui"
	"github.com/lixenwraith/word-mole/wordbank"
)

var errRoundStuck = errors.New("round did not end")

// botConfig describes the simulated player
type botConfig struct {
	Category string
	Seed     uint64
	// Accuracy is the chance of a right decision on each mole, hitting targets and skipping distractors
	Accuracy float64
	// Reaction is the delay between a mole coming fully up and the bot acting on it
	Reaction time.Duration
	// Step is the simulated frame interval
	Step time.Duration
	// Trace logs every display update of the round
	Trace bool
}

// traceSurface logs display updates
type traceSurface struct {
	seed uint64
}

func (t traceSurface) SetScoreDisplay(score int) {
	log.Printf("sim[%d]: score %d", t.seed, score)
}

func (t traceSurface) SetTimerDisplay(seconds int) {
	log.Printf("sim[%d]: timer %d", t.seed, seconds)
}

func (t traceSurface) SetCategoryTitle(title string) {
	log.Printf("sim[%d]: title %q", t.seed, title)
}

func (t traceSurface) ShowMessage(text string, d time.Duration) {
	log.Printf("sim[%d]: message %q for %v", t.seed, text, d)
}

func (t traceSurface) RenderWordOnEntity(slot int, word string) {
	log.Printf("sim[%d]: slot %d word %q", t.seed, slot, word)
}

var simEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// simulate plays one round on a logical clock and returns its result
func simulate(bank *wordbank.Bank, rc round.Config, bc botConfig, reg *status.Registry) (round.Result, error) {
	cat, ok := bank.Category(bc.Category)
	if !ok {
		return round.Result{}, fmt.Errorf("simulate %q: %w", bc.Category, wordbank.ErrUnknownCategory)
	}
	if bc.Step <= 0 {
		bc.Step = constants.FrameUpdateInterval
	}

	sched := engine.NewScheduler(simEpoch)
	field := scene.NewField(sched, scene.DefaultCamera(constants.DefaultViewportWidth, constants.DefaultViewportHeight), scene.MoleRadius)
	rec := ui.NewRecorder()
	var surface ui.Surface = rec
	if bc.Trace {
		surface = ui.Multi{rec, traceSurface{seed: bc.Seed}}
	}

	// The game and the bot draw from separate streams so bot settings do not change the spawns
	gameRNG := rand.New(rand.NewPCG(bc.Seed, bc.Seed))
	botRNG := rand.New(rand.NewPCG(bc.Seed, ^bc.Seed))

	rc.DefaultCategory = ""
	ctrl := round.NewController(sched, field, surface, nil, bank, rc, gameRNG, reg)

	var (
		result round.Result
		done   bool
	)
	ctrl.OnRoundEnd(func(res round.Result) {
		result = res
		done = true
	})

	if err := ctrl.SelectCategory(cat.ID); err != nil {
		return round.Result{}, err
	}
	if err := ctrl.StartCountdown(); err != nil {
		return round.Result{}, err
	}

	seen := make(map[uint64]time.Time)
	decisions := make(map[uint64]bool)
	acted := make(map[uint64]bool)

	countdown := time.Duration(rc.CountdownSteps+1)*rc.CountdownStep + rc.StartDelay
	limit := simEpoch.Add(countdown + time.Duration(rc.RoundSeconds+5)*time.Second)

	for !done {
		sched.Advance(bc.Step)
		now := sched.Now()
		if now.After(limit) {
			return round.Result{}, errRoundStuck
		}
		if ctrl.Phase() != round.PhaseActive {
			continue
		}

		for _, m := range ctrl.Board().Moles() {
			if !m.Hittable() || acted[m.Token] {
				continue
			}
			first, ok := seen[m.Token]
			if !ok {
				seen[m.Token] = now
				continue
			}
			if now.Sub(first) < bc.Reaction {
				continue
			}

			click, decided := decisions[m.Token]
			if !decided {
				target := slices.Contains(cat.Words, rec.Word(m.Slot))
				right := botRNG.Float64() < bc.Accuracy
				click = target == right
				decisions[m.Token] = click
			}
			if !click {
				acted[m.Token] = true
				continue
			}

			pos, ok := field.Position(m.Slot)
			if !ok {
				continue
			}
			p := field.ProjectToScreen(pos)
			// A debounced click is retried on a later frame
			if res := ctrl.HandleInteraction(input.Pointer, p.X, p.Y); res.Kind != input.Debounced {
				acted[m.Token] = true
			}
		}
	}
	return result, nil
}
