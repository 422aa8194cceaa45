package scene

import "github.com/lixenwraith/word-mole/vmath"

const (
	// MoleDownY hides a mole below the ground
	MoleDownY = -1.8
	// MoleUpY shows a mole above its hole
	MoleUpY = 0.7
	// MoleRadius is the collider radius of a mole body
	MoleRadius = 0.8

	holeSpread = 1.5
)

var holeOffsets = []vmath.Vec3F{
	{X: -1.5, Z: -1.5},
	{X: 2.2, Z: -1.5},
	{X: -2.3, Z: 1.5},
	{X: 2.2, Z: 2.0},
}

// HolePositions returns the resting (down) position of each hole's mole
// Counts beyond the fixed layout continue on a row behind the last hole
func HolePositions(count int) []vmath.Vec3F {
	out := make([]vmath.Vec3F, 0, count)
	for i := 0; i < count; i++ {
		var off vmath.Vec3F
		if i < len(holeOffsets) {
			off = holeOffsets[i]
		} else {
			extra := i - len(holeOffsets)
			off = vmath.Vec3F{X: -2.3 + 1.5*float64(extra), Z: 3.5}
		}
		out = append(out, vmath.Vec3F{X: off.X * holeSpread, Y: MoleDownY, Z: off.Z * holeSpread})
	}
	return out
}
