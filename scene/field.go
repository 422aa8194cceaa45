package scene

import (
	"log"
	"slices"
	"sort"
	"time"

	"github.com/lixenwraith/word-mole/engine"
	"github.com/lixenwraith/word-mole/vmath"
)

// Field is the built-in Scene: sphere colliders seen through a perspective camera
// Animations are evaluated lazily against the scheduler clock and complete through a scheduler timer
// Owned by the game loop goroutine
type Field struct {
	sched  *engine.Scheduler
	camera Camera
	radius float64
	bodies map[int]*body
}

type body struct {
	pos  vmath.Vec3F
	anim *animation
}

type animation struct {
	prop     Property
	from, to float64
	start    time.Time
	d        time.Duration
	timer    *engine.Timer
}

// NewField creates an empty field using radius for every collider
func NewField(sched *engine.Scheduler, camera Camera, radius float64) *Field {
	return &Field{
		sched:  sched,
		camera: camera,
		radius: radius,
		bodies: make(map[int]*body),
	}
}

// Camera returns the current camera
func (f *Field) Camera() Camera {
	return f.camera
}

// SetViewport resizes the projection, called on terminal resize or host viewport messages
func (f *Field) SetViewport(width, height, pixelAspect float64) {
	f.camera.Width = width
	f.camera.Height = height
	if pixelAspect > 0 {
		f.camera.PixelAspect = pixelAspect
	}
}

// IDs returns every placed entity id in ascending order
func (f *Field) IDs() []int {
	ids := make([]int, 0, len(f.bodies))
	for id := range f.bodies {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// PlaceEntity puts an entity at pos, cancelling any running animation on it
func (f *Field) PlaceEntity(id int, pos vmath.Vec3F) {
	b, ok := f.bodies[id]
	if !ok {
		b = &body{}
		f.bodies[id] = b
	}
	if b.anim != nil {
		b.anim.timer.Stop()
		b.anim = nil
	}
	b.pos = pos
}

// AnimateProperty eases prop from from to to over d and calls done once the value is final
// A newer animation on the same entity supersedes the running one, whose done never runs
func (f *Field) AnimateProperty(id int, prop Property, from, to float64, d time.Duration, done func()) {
	b, ok := f.bodies[id]
	if !ok {
		log.Printf("scene: animate on unplaced entity %d", id)
		f.sched.After(d, func() {
			if done != nil {
				done()
			}
		})
		return
	}

	if b.anim != nil {
		b.anim.timer.Stop()
	}
	setProperty(&b.pos, prop, from)

	a := &animation{
		prop:  prop,
		from:  from,
		to:    to,
		start: f.sched.Now(),
		d:     d,
	}
	a.timer = f.sched.After(d, func() {
		if b.anim != a {
			return
		}
		setProperty(&b.pos, prop, to)
		b.anim = nil
		if done != nil {
			done()
		}
	})
	b.anim = a
}

// Position returns the entity position at the scheduler's current time
func (f *Field) Position(id int) (vmath.Vec3F, bool) {
	b, ok := f.bodies[id]
	if !ok {
		return vmath.Vec3F{}, false
	}
	pos := b.pos
	if a := b.anim; a != nil {
		progress := 1.0
		if a.d > 0 {
			progress = float64(f.sched.Now().Sub(a.start)) / float64(a.d)
		}
		setProperty(&pos, a.prop, vmath.Lerp(a.from, a.to, vmath.EaseInOutQuad(progress)))
	}
	return pos, true
}

// PickAlongRay intersects the ray with each candidate's collider, nearest first
func (f *Field) PickAlongRay(ray vmath.Ray, candidates []int) []Pick {
	var picks []Pick
	for _, id := range candidates {
		pos, ok := f.Position(id)
		if !ok {
			continue
		}
		if dist, hit := ray.IntersectSphere(pos, f.radius); hit {
			picks = append(picks, Pick{ID: id, Distance: dist})
		}
	}
	slices.SortStableFunc(picks, func(a, b Pick) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return picks
}

// ProjectToScreen projects through the current camera
func (f *Field) ProjectToScreen(pos vmath.Vec3F) Point {
	return f.camera.Project(pos)
}

// ScreenRay casts from the current camera
func (f *Field) ScreenRay(x, y float64) vmath.Ray {
	return f.camera.Ray(x, y)
}

func setProperty(pos *vmath.Vec3F, prop Property, v float64) {
	switch prop {
	case PropHeight:
		pos.Y = v
	}
}
