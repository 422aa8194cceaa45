package scene

import (
	"time"

	"github.com/lixenwraith/word-mole/vmath"
)

// Property identifies an animatable scalar of a placed entity
type Property int

const (
	// PropHeight is the entity's Y coordinate
	PropHeight Property = iota
)

// Point is a screen position; Depth is the camera-space distance along the view axis
// and is not positive for points behind the camera
type Point struct {
	X, Y  float64
	Depth float64
}

// Pick is one ray intersection
type Pick struct {
	ID       int
	Distance float64
}

// Scene is the spatial capability the game core drives
// Completion callbacks passed to AnimateProperty run later on the owning loop, never inside the call
type Scene interface {
	PlaceEntity(id int, pos vmath.Vec3F)
	AnimateProperty(id int, prop Property, from, to float64, d time.Duration, done func())
	PickAlongRay(ray vmath.Ray, candidates []int) []Pick
	ProjectToScreen(pos vmath.Vec3F) Point
	ScreenRay(x, y float64) vmath.Ray
	Position(id int) (vmath.Vec3F, bool)
}
