// pkg/geom/transform.go
package geom

// Transform is a rigid 2D transform: translation plus rotation in radians.
type Transform struct {
	Pos Vec2
	Rot float64
}

// Right is the local +X axis in world space.
func (t Transform) Right() Vec2 {
	return FromAngle(t.Rot)
}

// Up is the local +Y axis in world space.
func (t Transform) Up() Vec2 {
	return FromAngle(t.Rot).Perp()
}

// ToWorld maps a point from local space into world space.
func (t Transform) ToWorld(local Vec2) Vec2 {
	return t.Pos.Add(local.Rotate(t.Rot))
}

// ToLocal maps a world point into local space.
func (t Transform) ToLocal(world Vec2) Vec2 {
	return world.Sub(t.Pos).Rotate(-t.Rot)
}
