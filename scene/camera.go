package scene

import (
	"math"

	"github.com/lixenwraith/word-mole/vmath"
)

// Camera is a perspective camera looking from Eye at Target
// PixelAspect is the height/width ratio of one screen unit (2 for terminal cells, 1 for pixels)
type Camera struct {
	Eye    vmath.Vec3F
	Target vmath.Vec3F
	Up     vmath.Vec3F
	FovY   float64 // degrees

	Width       float64
	Height      float64
	PixelAspect float64
}

// DefaultCamera frames the four holes from above and in front
func DefaultCamera(width, height float64) Camera {
	return Camera{
		Eye:         vmath.Vec3F{X: 0, Y: 10, Z: 12},
		Target:      vmath.Vec3F{},
		Up:          vmath.Vec3F{X: 0, Y: 1, Z: 0},
		FovY:        75,
		Width:       width,
		Height:      height,
		PixelAspect: 1,
	}
}

// basis returns the camera's forward, right and up unit vectors
func (c Camera) basis() (forward, right, up vmath.Vec3F) {
	forward = vmath.V3FNormalize(vmath.V3FSub(c.Target, c.Eye))
	right = vmath.V3FNormalize(vmath.V3FCross(forward, c.Up))
	up = vmath.V3FCross(right, forward)
	return
}

func (c Camera) frustum() (tanHalf, aspect float64) {
	tanHalf = math.Tan(c.FovY * math.Pi / 360)
	pa := c.PixelAspect
	if pa <= 0 {
		pa = 1
	}
	if c.Height <= 0 {
		return tanHalf, 1
	}
	aspect = c.Width / (c.Height * pa)
	return
}

// Project maps a world position to screen coordinates, origin top-left
func (c Camera) Project(p vmath.Vec3F) Point {
	forward, right, up := c.basis()
	tanHalf, aspect := c.frustum()

	d := vmath.V3FSub(p, c.Eye)
	z := vmath.V3FDot(d, forward)
	if z <= 0 {
		return Point{Depth: z}
	}
	ndcX := vmath.V3FDot(d, right) / (z * tanHalf * aspect)
	ndcY := vmath.V3FDot(d, up) / (z * tanHalf)

	return Point{
		X:     (ndcX + 1) / 2 * c.Width,
		Y:     (1 - ndcY) / 2 * c.Height,
		Depth: z,
	}
}

// Ray returns the ray from the eye through screen position (x, y)
func (c Camera) Ray(x, y float64) vmath.Ray {
	forward, right, up := c.basis()
	tanHalf, aspect := c.frustum()

	var ndcX, ndcY float64
	if c.Width > 0 {
		ndcX = 2*x/c.Width - 1
	}
	if c.Height > 0 {
		ndcY = 1 - 2*y/c.Height
	}

	dir := vmath.V3FAdd(forward, vmath.V3FScale(right, ndcX*tanHalf*aspect))
	dir = vmath.V3FAdd(dir, vmath.V3FScale(up, ndcY*tanHalf))
	return vmath.NewRay(c.Eye, dir)
}
