package vmath

import "math"

// Ray is a half-line with a normalized direction
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// NewRay normalizes dir
func NewRay(origin, dir Vec3F) Ray {
	return Ray{Origin: origin, Dir: V3FNormalize(dir)}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, t))
}

// IntersectSphere returns the distance to the nearest intersection in front of the origin
// An origin inside the sphere reports distance 0
func (r Ray) IntersectSphere(center Vec3F, radius float64) (float64, bool) {
	oc := V3FSub(r.Origin, center)
	b := V3FDot(oc, r.Dir)
	c := V3FMagSq(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		return 0, false
	}
	return t, true
}
