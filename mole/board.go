package mole

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/word-mole/engine"
	"github.com/lixenwraith/word-mole/scene"
	"github.com/lixenwraith/word-mole/status"
	"github.com/lixenwraith/word-mole/vmath"
)

// WordRenderer shows a word on a mole, an empty word clears it
type WordRenderer interface {
	RenderWordOnEntity(slot int, word string)
}

// WordSource draws the word for a new appearance and reports whether it is a target word
type WordSource func() (word string, correct bool)

// Timing holds the animation durations
type Timing struct {
	Rise     time.Duration
	Fall     time.Duration
	HitDelay time.Duration
}

// Board owns every mole and is the only writer of their state
// All methods and completions run on the game loop goroutine
//
// Lock and appearance token arbitrate between a user hit and an auto-hide: only the first
// transition out of an unlocked Up state acts, and a timer holding a token from an earlier
// appearance finds a mismatch. Every transition that restarts motion bumps the mole's motion
// generation so completions of superseded animations and delayed falls are dropped
type Board struct {
	sched    *engine.Scheduler
	scene    scene.Scene
	renderer WordRenderer
	timing   Timing
	source   WordSource

	entities  []*entity
	nextToken uint64

	spawned  *atomic.Int64
	expired  *atomic.Int64
	stale    *atomic.Int64
	repaired *atomic.Int64
}

type entity struct {
	Mole
	home   vmath.Vec3F
	gen    uint64
	retire bool
}

// NewBoard places one mole per home position, all down
func NewBoard(sched *engine.Scheduler, sc scene.Scene, renderer WordRenderer, homes []vmath.Vec3F, timing Timing, reg *status.Registry) *Board {
	b := &Board{
		sched:    sched,
		scene:    sc,
		renderer: renderer,
		timing:   timing,
		spawned:  reg.Counter(status.MoleSpawned),
		expired:  reg.Counter(status.MoleExpired),
		stale:    reg.Counter(status.MoleStaleTimeouts),
		repaired: reg.Counter(status.MoleRepaired),
	}
	for i, home := range homes {
		home.Y = scene.MoleDownY
		b.entities = append(b.entities, &entity{Mole: Mole{Slot: i}, home: home})
		sc.PlaceEntity(i, home)
	}
	return b
}

// SetWordSource installs the word draw for subsequent spawns
func (b *Board) SetWordSource(src WordSource) {
	b.source = src
}

// Len returns the number of moles
func (b *Board) Len() int {
	return len(b.entities)
}

// Mole returns a snapshot of the mole in slot
func (b *Board) Mole(slot int) (Mole, bool) {
	e := b.get(slot)
	if e == nil {
		return Mole{}, false
	}
	return e.Mole, true
}

// Moles returns snapshots of every mole in slot order
func (b *Board) Moles() []Mole {
	out := make([]Mole, len(b.entities))
	for i, e := range b.entities {
		out[i] = e.Mole
	}
	return out
}

// Idle returns the slots that can be spawned
func (b *Board) Idle() []int {
	var out []int
	for _, e := range b.entities {
		if e.Idle() {
			out = append(out, e.Slot)
		}
	}
	return out
}

// Hittable returns the slots that accept a hit
func (b *Board) Hittable() []int {
	var out []int
	for _, e := range b.entities {
		if e.Hittable() {
			out = append(out, e.Slot)
		}
	}
	return out
}

// Spawn raises the mole in slot with a freshly drawn word
// Returns the new appearance token, ok is false unless the mole was down and unlocked
func (b *Board) Spawn(slot int) (token uint64, ok bool) {
	e := b.get(slot)
	if e == nil || !e.Idle() {
		return 0, false
	}

	word, correct := "", false
	if b.source != nil {
		word, correct = b.source()
	}

	b.nextToken++
	e.Locked = true
	e.State = Rising
	e.Token = b.nextToken
	e.Word = word
	e.Correct = correct
	e.retire = false
	b.spawned.Add(1)

	b.renderer.RenderWordOnEntity(slot, word)

	e.gen++
	gen := e.gen
	b.scene.AnimateProperty(slot, scene.PropHeight, scene.MoleDownY, scene.MoleUpY, b.timing.Rise, func() {
		b.riseComplete(e, gen)
	})
	return e.Token, true
}

func (b *Board) riseComplete(e *entity, gen uint64) {
	if e.gen != gen || e.State != Rising {
		return
	}
	e.State = Up
	e.Locked = false

	if e.retire {
		b.lockForFall(e)
		b.startFall(e, e.gen)
	}
}

// Hit claims the mole in slot for a user hit and reports whether it showed a target word
// The mole is locked and Falling when Hit returns; the fall animation starts after the hit delay
// ok is false when the mole was not hittable, a duplicate hit is a no-op
func (b *Board) Hit(slot int) (correct bool, ok bool) {
	e := b.get(slot)
	if e == nil || !e.Hittable() {
		return false, false
	}

	b.lockForFall(e)
	gen := e.gen
	b.sched.After(b.timing.HitDelay, func() {
		b.startFall(e, gen)
	})
	return e.Correct, true
}

// Expire hides the mole in slot if it is still showing the appearance identified by token
// A matching appearance that is still rising falls as soon as it is up
func (b *Board) Expire(slot int, token uint64) bool {
	e := b.get(slot)
	if e == nil {
		return false
	}
	if token != 0 && e.Token == token && e.State == Rising {
		e.retire = true
		return false
	}
	if token == 0 || e.Token != token || !e.Hittable() {
		// Hit first, or the mole has already moved on to a later appearance
		b.stale.Add(1)
		return false
	}

	b.lockForFall(e)
	b.expired.Add(1)
	b.startFall(e, e.gen)
	return true
}

// RetireAll sends every mole down at round end
// Up moles fall now, rising moles fall as soon as they are up, moles already falling finish
func (b *Board) RetireAll() {
	for _, e := range b.entities {
		switch {
		case e.Hittable():
			b.lockForFall(e)
			b.startFall(e, e.gen)
		case e.State == Rising:
			e.retire = true
		}
	}
}

// Reset forces every mole down and unlocked, dropping pending completions
func (b *Board) Reset() {
	for _, e := range b.entities {
		e.gen++
		e.State = Down
		e.Locked = false
		e.Token = 0
		e.Word = ""
		e.Correct = false
		e.retire = false
		b.scene.PlaceEntity(e.Slot, e.home)
		b.renderer.RenderWordOnEntity(e.Slot, "")
	}
}

// Sweep repairs moles reporting Up without a word by forcing them down
// Returns the number of repaired moles
func (b *Board) Sweep() int {
	n := 0
	for _, e := range b.entities {
		if e.State != Up || e.Word != "" {
			continue
		}
		log.Printf("mole: repairing slot %d, up without a word", e.Slot)
		e.gen++
		e.State = Down
		e.Locked = false
		e.Token = 0
		e.Correct = false
		e.retire = false
		b.scene.PlaceEntity(e.Slot, e.home)
		b.repaired.Add(1)
		n++
	}
	return n
}

// lockForFall is the synchronous half of leaving Up: no second hit or auto-hide can act after it
func (b *Board) lockForFall(e *entity) {
	e.Locked = true
	e.State = Falling
	e.retire = false
	e.gen++
}

func (b *Board) startFall(e *entity, gen uint64) {
	if e.gen != gen || e.State != Falling {
		return
	}
	b.renderer.RenderWordOnEntity(e.Slot, "")
	b.scene.AnimateProperty(e.Slot, scene.PropHeight, scene.MoleUpY, scene.MoleDownY, b.timing.Fall, func() {
		b.fallComplete(e, gen)
	})
}

func (b *Board) fallComplete(e *entity, gen uint64) {
	if e.gen != gen || e.State != Falling {
		return
	}
	e.State = Down
	e.Locked = false
	e.Token = 0
	e.Word = ""
	e.Correct = false
}

func (b *Board) get(slot int) *entity {
	if slot < 0 || slot >= len(b.entities) {
		return nil
	}
	return b.entities[slot]
}
