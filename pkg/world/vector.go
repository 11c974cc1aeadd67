package world

// Vec3 is a world-space position. The engine's coordinate convention
// is X/Y on the ground plane and Z up.
type Vec3 struct {
	X, Y, Z float32
}

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}
