package camera

// Vec3 is a minimal three-component vector. Only what the rig needs.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp moves v toward target by fraction t and returns the result.
func (v Vec3) Lerp(target Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (target.X-v.X)*t,
		Y: v.Y + (target.Y-v.Y)*t,
		Z: v.Z + (target.Z-v.Z)*t,
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
