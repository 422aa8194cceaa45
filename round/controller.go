package round

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/core"
	"github.com/lixenwraith/word-mole/engine"
	"github.com/lixenwraith/word-mole/input"
	"github.com/lixenwraith/word-mole/mole"
	"github.com/lixenwraith/word-mole/scene"
	"github.com/lixenwraith/word-mole/score"
	"github.com/lixenwraith/word-mole/spawn"
	"github.com/lixenwraith/word-mole/status"
	"github.com/lixenwraith/word-mole/ui"
	"github.com/lixenwraith/word-mole/wordbank"
)

var (
	// ErrRoundInProgress is returned when selection or start is attempted mid-round
	ErrRoundInProgress = errors.New("round in progress")
	// ErrNoCategory is returned when a round is started before any category was selected
	ErrNoCategory = errors.New("no category selected")
)

// Sounds plays feedback cues, implemented by audio.SoundManager
type Sounds interface {
	Play(core.SoundType)
}

// Controller owns one game: its board, spawner, input pipeline, session and phase
// Every method must be called on the goroutine that advances sched
type Controller struct {
	sched    *engine.Scheduler
	bank     *wordbank.Bank
	board    *mole.Board
	spawner  *spawn.Spawner
	resolver *input.Resolver
	surface  ui.Surface
	sounds   Sounds
	rng      *rand.Rand
	cfg      Config

	phase    Phase
	category wordbank.Category
	selected bool
	words    wordbank.RoundConfig
	session  score.Session
	result   Result
	last     *Result

	// gen invalidates countdown steps and round ticks on every phase change
	gen    uint64
	ticker *engine.Timer
	onEnd  []func(Result)

	started  *atomic.Int64
	ended    *atomic.Int64
	bonuses  *atomic.Int64
	catLabel *status.AtomicString
	phaseLbl *status.AtomicString
}

// NewController assembles a game on sc and selects the configured default category if present
// sounds may be nil
func NewController(sched *engine.Scheduler, sc scene.Scene, surface ui.Surface, sounds Sounds,
	bank *wordbank.Bank, cfg Config, rng *rand.Rand, reg *status.Registry) *Controller {
	board := mole.NewBoard(sched, sc, surface, scene.HolePositions(cfg.Holes), cfg.Timing, reg)

	c := &Controller{
		sched:    sched,
		bank:     bank,
		board:    board,
		spawner:  spawn.New(sched, board, cfg.Spawn, rng),
		resolver: input.NewResolver(sched, sc, board, cfg.Input, reg),
		surface:  surface,
		sounds:   sounds,
		rng:      rng,
		cfg:      cfg,
		started:  reg.Counter(status.RoundStarted),
		ended:    reg.Counter(status.RoundEnded),
		bonuses:  reg.Counter(status.ScoreBonuses),
		catLabel: reg.Label(status.RoundCategory),
		phaseLbl: reg.Label(status.RoundPhase),
	}
	c.spawner.OnExpire = c.onExpire
	c.phaseLbl.Store(c.phase.String())

	if cfg.DefaultCategory != "" {
		if err := c.SelectCategory(cfg.DefaultCategory); err != nil {
			log.Printf("round: default category: %v", err)
		}
	}
	return c
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Session returns a copy of the current session
func (c *Controller) Session() score.Session {
	return c.session
}

// Category returns the selected category
func (c *Controller) Category() (wordbank.Category, bool) {
	return c.category, c.selected
}

// Board exposes the moles for rendering
func (c *Controller) Board() *mole.Board {
	return c.board
}

// LastResult returns the most recent finished round
func (c *Controller) LastResult() (Result, bool) {
	if c.last == nil {
		return Result{}, false
	}
	return *c.last, true
}

// OnRoundEnd registers fn to receive every final result
func (c *Controller) OnRoundEnd(fn func(Result)) {
	c.onEnd = append(c.onEnd, fn)
}

// SelectCategory picks the target category for the next round
// Allowed while idle or after a round ended; on error the previous selection stays
func (c *Controller) SelectCategory(id string) error {
	if c.phase == PhaseCountdown || c.phase == PhaseActive {
		return ErrRoundInProgress
	}

	cat, ok := c.bank.Category(id)
	if !ok {
		return fmt.Errorf("select %q: %w", id, wordbank.ErrUnknownCategory)
	}
	if len(cat.Words) == 0 {
		return fmt.Errorf("select %q: %w", id, wordbank.ErrEmptyCategory)
	}

	if c.phase == PhaseEnded {
		c.transition(PhaseIdle)
	}
	c.category = cat
	c.selected = true
	c.catLabel.Store(cat.ID)
	c.surface.SetCategoryTitle(cat.Title)
	return nil
}

// StartCountdown runs the 3, 2, 1, Start! countdown and then starts the round
func (c *Controller) StartCountdown() error {
	switch c.phase {
	case PhaseCountdown, PhaseActive:
		return ErrRoundInProgress
	case PhaseEnded:
		c.transition(PhaseIdle)
	}
	if !c.selected {
		return ErrNoCategory
	}
	if !c.transition(PhaseCountdown) {
		return fmt.Errorf("cannot start countdown from %s", c.phase)
	}

	c.board.Reset()
	c.session = score.Session{}
	c.surface.SetScoreDisplay(0)
	c.surface.SetTimerDisplay(c.cfg.RoundSeconds)
	c.surface.SetCategoryTitle(c.category.Title)

	gen := c.gen
	for i := 0; i < c.cfg.CountdownSteps; i++ {
		text := strconv.Itoa(c.cfg.CountdownSteps - i)
		c.sched.After(time.Duration(i)*c.cfg.CountdownStep, func() {
			if c.gen != gen {
				return
			}
			c.surface.ShowMessage(text, c.cfg.CountdownStep)
			c.play(core.SoundTick)
		})
	}

	startAt := time.Duration(c.cfg.CountdownSteps) * c.cfg.CountdownStep
	c.sched.After(startAt, func() {
		if c.gen != gen {
			return
		}
		c.surface.ShowMessage(constants.StartText, c.cfg.CountdownStep)
	})
	c.sched.After(startAt+c.cfg.CountdownStep+c.cfg.StartDelay, func() {
		if c.gen != gen {
			return
		}
		c.begin()
	})
	return nil
}

// HandleInteraction runs a pointer or touch interaction at screen position (x, y)
// During a round it resolves hits and scores them before returning; otherwise an
// accepted interaction starts the countdown from idle or returns to selection after a round
func (c *Controller) HandleInteraction(source input.SourceKind, x, y float64) input.Resolution {
	active := c.phase == PhaseActive && c.session.Active
	res := c.resolver.Resolve(input.Event{Source: source, X: x, Y: y}, active)

	switch res.Kind {
	case input.Control:
		c.control()

	case input.Hit:
		outcome := score.Incorrect
		if res.Correct {
			outcome = score.Correct
		}
		c.apply(outcome)

	case input.Miss:
		c.result.Misses++
	}
	return res
}

func (c *Controller) control() {
	switch c.phase {
	case PhaseIdle:
		if err := c.StartCountdown(); err != nil {
			log.Printf("round: start countdown: %v", err)
		}
	case PhaseEnded:
		c.transition(PhaseIdle)
		c.surface.ShowMessage(constants.SelectPrompt, constants.PersistentMessage)
		c.surface.SetCategoryTitle(c.category.Title)
	}
}

func (c *Controller) begin() {
	words, err := c.bank.NewRoundConfig(c.category.ID, c.rng)
	if err != nil {
		log.Printf("round: %v", err)
		c.transition(PhaseIdle)
		return
	}
	if !c.transition(PhaseActive) {
		return
	}

	c.words = words
	c.session = score.NewSession(c.cfg.RoundSeconds)
	c.result = Result{
		RoundID:    uuid.New(),
		CategoryID: words.CategoryID,
		Title:      words.Title,
		StartedAt:  c.sched.Now(),
	}
	c.resolver.Reset()
	c.board.Reset()
	c.board.SetWordSource(func() (string, bool) {
		return c.words.Draw(c.rng, c.cfg.CorrectRatio)
	})
	c.started.Add(1)

	c.surface.SetScoreDisplay(0)
	c.surface.SetTimerDisplay(c.session.TimeRemaining)
	c.surface.SetCategoryTitle(words.Title)
	c.surface.ShowMessage(fmt.Sprintf(constants.InstructionsFormat, words.Title), c.cfg.InstructionsDuration)
	c.play(core.SoundStart)
	log.Printf("round: %s started, category %s", c.result.RoundID, words.CategoryID)

	c.spawner.Start()
	c.scheduleTick(c.gen)
}

func (c *Controller) scheduleTick(gen uint64) {
	c.ticker = c.sched.After(time.Second, func() {
		if c.gen != gen {
			return
		}
		var over bool
		c.session, over = score.Tick(c.session)
		c.surface.SetTimerDisplay(c.session.TimeRemaining)
		if over {
			c.end()
			return
		}
		if c.session.TimeRemaining <= constants.FinalSecondsWarning {
			c.play(core.SoundTick)
		}
		c.scheduleTick(gen)
	})
}

func (c *Controller) end() {
	if !c.transition(PhaseEnded) {
		return
	}
	c.session.Active = false
	c.spawner.Stop()
	c.board.RetireAll()
	c.ticker.Stop()

	c.result.Score = c.session.Score
	c.result.EndedAt = c.sched.Now()
	res := c.result
	c.last = &res
	c.ended.Add(1)

	c.surface.ShowMessage(fmt.Sprintf(constants.GameOverFormat, res.Score), constants.PersistentMessage)
	c.surface.SetCategoryTitle("")
	c.play(core.SoundGameOver)
	log.Printf("round: %s ended, score %d", res.RoundID, res.Score)

	for _, fn := range c.onEnd {
		fn(res)
	}
}

func (c *Controller) apply(outcome score.Outcome) {
	var fx score.Effects
	c.session, fx = score.Apply(c.session, outcome, c.cfg.Rules)

	switch outcome {
	case score.Correct:
		c.result.Correct++
		c.result.BestStreak = max(c.result.BestStreak, c.session.Streak)
		c.play(core.SoundHit)
	case score.Incorrect:
		c.result.Incorrect++
		c.play(core.SoundMiss)
	}
	c.result.Score = c.session.Score

	c.surface.SetScoreDisplay(c.session.Score)
	if fx.StreakBonus {
		c.result.Bonuses++
		c.bonuses.Add(1)
		c.surface.ShowMessage(constants.StreakBonusText, c.cfg.BonusDuration)
		c.play(core.SoundBonus)
	}
}

func (c *Controller) onExpire(int) {
	if c.phase != PhaseActive {
		return
	}
	c.result.Expired++
	c.session, _ = score.Apply(c.session, score.Timeout, c.cfg.Rules)
}

// transition moves to phase to if allowed, invalidating timers of the previous phase
func (c *Controller) transition(to Phase) bool {
	if !CanTransition(c.phase, to) {
		log.Printf("round: rejected transition %s -> %s", c.phase, to)
		return false
	}
	c.phase = to
	c.gen++
	c.phaseLbl.Store(to.String())
	return true
}

func (c *Controller) play(s core.SoundType) {
	if c.sounds != nil {
		c.sounds.Play(s)
	}
}
