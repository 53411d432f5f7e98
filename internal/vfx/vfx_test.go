package vfx

import (
	"image/color"
	"math"
	"testing"

	"go-porcle/internal/config"
	"go-porcle/internal/defs"
	"go-porcle/internal/effects"
	"go-porcle/pkg/geom"
)

func TestCameraMapsWorldYUp(t *testing.T) {
	cam := NewCamera(1024, 1024, 1)
	x, y := cam.ToScreen(geom.V(0, 0))
	if x != 512 || y != 512 {
		t.Fatalf("origin at (%v, %v), want screen centre", x, y)
	}
	x, y = cam.ToScreen(geom.V(100, 200))
	if x != 612 || y != 312 {
		t.Fatalf("(100, 200) at (%v, %v), want (612, 312)", x, y)
	}
	if w := cam.ToWorld(612, 312); w != geom.V(100, 200) {
		t.Fatalf("ToWorld = %v, want (100, 200)", w)
	}
	if l := cam.Length(30); l != 30 {
		t.Fatalf("Length = %v, want 30 at unit scale", l)
	}
}

func TestCameraScalesToSmallerSide(t *testing.T) {
	cam := NewCamera(1024, 512, 1)
	if l := cam.Length(100); l != 50 {
		t.Fatalf("Length = %v, want 50", l)
	}
}

func TestTraumaSaturatesAndDecays(t *testing.T) {
	cam := NewCamera(1024, 1024, 7)
	cam.AddTrauma(0.7)
	cam.AddTrauma(0.7)
	if cam.Trauma != 1 {
		t.Fatalf("trauma = %f, want 1", cam.Trauma)
	}

	cam.Update(0.25, 0)
	want := 1 - config.TraumaDecay*0.25
	if math.Abs(cam.Trauma-want) > 1e-9 {
		t.Fatalf("trauma = %f, want %f", cam.Trauma, want)
	}
	limit := config.MaxShake * want * want
	if math.Abs(cam.Offset.X) > limit || math.Abs(cam.Offset.Y) > limit {
		t.Fatalf("offset %v exceeds shake %f", cam.Offset, limit)
	}

	cam.Update(1, 0)
	if cam.Trauma != 0 || cam.Offset != geom.Zero {
		t.Fatalf("camera still shaking: trauma %f offset %v", cam.Trauma, cam.Offset)
	}
}

func TestFastBallsStretchShake(t *testing.T) {
	calm := NewCamera(1024, 1024, 7)
	fast := NewCamera(1024, 1024, 7)
	calm.AddTrauma(1)
	fast.AddTrauma(1)

	calm.Update(0.25, 0)
	fast.Update(0.25, 1)
	want := 1 - config.TraumaDecay*(1-config.ShakeSpeedLinger)*0.25
	if math.Abs(fast.Trauma-want) > 1e-9 || fast.Trauma <= calm.Trauma {
		t.Fatalf("trauma at full speed = %f, want %f (calm %f)", fast.Trauma, want, calm.Trauma)
	}
	// Одинаковое зерно: смещения отличаются только амплитудой.
	scale := (1 + config.ShakeSpeedBoost) * want * want / (calm.Trauma * calm.Trauma)
	if math.Abs(fast.Offset.X-calm.Offset.X*scale) > 1e-9 {
		t.Fatalf("offset %v not scaled from %v by %f", fast.Offset, calm.Offset, scale)
	}
}

func TestParticlePoolOverwritesOldest(t *testing.T) {
	pool := NewParticlePool(16, 3)
	n := pool.Spawn(effects.ParticleEnemyBurst, geom.Zero, 0)
	if n != emitters[effects.ParticleEnemyBurst].count {
		t.Fatalf("spawned %d", n)
	}
	if pool.Alive() != 16 {
		t.Fatalf("alive = %d, want the full pool", pool.Alive())
	}
	if pool.Spawn(effects.Particle(99), geom.Zero, 0) != 0 {
		t.Fatal("unknown kind emitted particles")
	}
}

func TestParticlesAgeOut(t *testing.T) {
	pool := NewParticlePool(64, 3)
	pool.Spawn(effects.ParticleReflection, geom.V(10, 0), 0)
	alive := pool.Alive()
	if alive != emitters[effects.ParticleReflection].count {
		t.Fatalf("alive = %d", alive)
	}

	// Reflection sparks fly within +/-35 deg of the request rotation.
	pool.Update(0.05)
	pool.Each(func(pos geom.Vec2, size float64, c color.RGBA) {
		if pos.X <= 10 {
			t.Fatalf("particle at %v moved backwards", pos)
		}
		if math.Abs(pos.Y) > (pos.X-10)*math.Tan(36*math.Pi/180) {
			t.Fatalf("particle at %v left the cone", pos)
		}
		if c.A == 0 || size <= 0 {
			t.Fatalf("live particle invisible: size %f colour %v", size, c)
		}
	})

	pool.Update(1)
	if pool.Alive() != 0 {
		t.Fatalf("alive = %d after its lifetime", pool.Alive())
	}
	pool.Spawn(effects.ParticleCoreClear, geom.Zero, 0)
	pool.Clear()
	if pool.Alive() != 0 {
		t.Fatal("Clear kept particles")
	}
}

func TestColorHelpers(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}
	if got := LerpColor(a, b, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Fatalf("LerpColor = %v", got)
	}
	if got := LerpColor(a, b, 3); got != b {
		t.Fatalf("LerpColor clamps: %v", got)
	}
	if got := WithAlpha(b, 0.5); got != (color.RGBA{100, 50, 25, 127}) {
		t.Fatalf("WithAlpha = %v", got)
	}
	if BloomIntensity(0) != config.BloomBase || BloomIntensity(1) <= BloomIntensity(0.5) {
		t.Fatalf("bloom %f %f %f", BloomIntensity(0), BloomIntensity(0.5), BloomIntensity(1))
	}
	if got := DarkenColor(b); got != (color.RGBA{100, 50, 25, 255}) {
		t.Fatalf("DarkenColor = %v", got)
	}
}

func TestShapeVertices(t *testing.T) {
	center := geom.V(10, 20)
	cases := []struct {
		shape defs.Shape
		sides int
	}{
		{defs.ShapeTriangle, 3},
		{defs.ShapeSquare, 4},
		{defs.ShapeDiamond, 4},
		{defs.ShapeHexagon, 6},
	}
	for _, c := range cases {
		pts := ShapeVertices(c.shape, center, 30, 0.3)
		if len(pts) != c.sides {
			t.Fatalf("%s: %d vertices, want %d", c.shape, len(pts), c.sides)
		}
		for _, p := range pts {
			if d := p.Distance(center); math.Abs(d-30) > 1e-9 {
				t.Fatalf("%s: vertex %v at distance %f", c.shape, p, d)
			}
		}
	}
	// A diamond points along its rotation, a square does not.
	if p := ShapeVertices(defs.ShapeDiamond, geom.Zero, 1, 0)[0]; math.Abs(p.Y) > 1e-9 {
		t.Fatalf("diamond tip at %v", p)
	}
	if p := ShapeVertices(defs.ShapeSquare, geom.Zero, 1, 0)[0]; math.Abs(p.X-p.Y) > 1e-9 {
		t.Fatalf("square corner at %v", p)
	}
	if ShapeVertices(defs.Shape("blob"), geom.Zero, 1, 0) != nil {
		t.Fatal("unknown shape got vertices")
	}
}
