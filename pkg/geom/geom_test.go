package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestReflectPreservesMagnitude(t *testing.T) {
	cases := []struct {
		d, n Vec2
	}{
		{V(1, 0), V(-1, 0)},
		{V(1, -1).Normalize(), V(0, 1)},
		{V(0.3, 0.8).Normalize(), V(1, 1).Normalize()},
	}
	for _, c := range cases {
		out := Reflect(c.d, c.n)
		want := c.d.Sub(c.n.Scale(2 * c.d.Dot(c.n)))
		if !near(out.X, want.X) || !near(out.Y, want.Y) {
			t.Errorf("Reflect(%v, %v) = %v, want %v", c.d, c.n, out, want)
		}
		if !near(out.Len(), c.d.Len()) {
			t.Errorf("|Reflect| = %f, want %f", out.Len(), c.d.Len())
		}
	}
}

func TestReflectHeadOn(t *testing.T) {
	out := Reflect(V(1, 0), V(-1, 0))
	if !near(out.X, -1) || !near(out.Y, 0) {
		t.Fatalf("head-on reflect = %v, want (-1, 0)", out)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != Zero {
		t.Fatalf("Normalize(zero) = %v, want zero", got)
	}
	fb := V(0, 1)
	if got := (Vec2{X: 1e-12}).NormalizeOr(fb); got != fb {
		t.Fatalf("NormalizeOr(tiny) = %v, want fallback", got)
	}
}

func TestAngleBetweenSigned(t *testing.T) {
	if a := AngleBetween(V(1, 0), V(0, 1)); !near(a, math.Pi/2) {
		t.Errorf("ccw angle = %f, want pi/2", a)
	}
	if a := AngleBetween(V(1, 0), V(0, -1)); !near(a, -math.Pi/2) {
		t.Errorf("cw angle = %f, want -pi/2", a)
	}
	if a := AngleBetween(Zero, V(0, 1)); a != 0 {
		t.Errorf("degenerate angle = %f, want 0", a)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{Pos: V(10, -4), Rot: 1.1}
	p := V(3, 7)
	back := tr.ToLocal(tr.ToWorld(p))
	if !near(back.X, p.X) || !near(back.Y, p.Y) {
		t.Fatalf("round trip = %v, want %v", back, p)
	}
}

func TestSweepCircleHitsAhead(t *testing.T) {
	hit, ok := SweepCircle(V(0, 0), V(1, 0), 100, 5, V(50, 0), 5)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !near(hit.Distance, 40) {
		t.Errorf("distance = %f, want 40", hit.Distance)
	}
	if !near(hit.Normal.X, -1) || !near(hit.Point.X, 45) {
		t.Errorf("normal=%v point=%v", hit.Normal, hit.Point)
	}
}

func TestSweepCircleOutOfRangeAndBehind(t *testing.T) {
	if _, ok := SweepCircle(V(0, 0), V(1, 0), 30, 5, V(50, 0), 5); ok {
		t.Error("hit beyond max distance")
	}
	if _, ok := SweepCircle(V(0, 0), V(-1, 0), 100, 5, V(50, 0), 5); ok {
		t.Error("hit behind the sweep")
	}
}

func TestSweepCircleInitialOverlap(t *testing.T) {
	hit, ok := SweepCircle(V(0, 0), V(1, 0), 10, 5, V(3, 0), 5)
	if !ok || hit.Distance != 0 {
		t.Fatalf("overlap hit = %+v ok=%v", hit, ok)
	}
}

func TestSweepCapsuleSideAndCap(t *testing.T) {
	a, b := V(100, -50), V(100, 50)

	hit, ok := SweepCapsule(V(0, 10), V(1, 0), 200, 10, a, b, 5)
	if !ok {
		t.Fatal("expected side hit")
	}
	if !near(hit.Distance, 85) {
		t.Errorf("side distance = %f, want 85", hit.Distance)
	}
	if !near(hit.Normal.X, -1) || !near(hit.Point.X, 95) || !near(hit.Point.Y, 10) {
		t.Errorf("side normal=%v point=%v", hit.Normal, hit.Point)
	}

	hit, ok = SweepCapsule(V(100, 100), V(0, -1), 200, 10, a, b, 5)
	if !ok {
		t.Fatal("expected cap hit")
	}
	if !near(hit.Distance, 35) || !near(hit.Normal.Y, 1) {
		t.Errorf("cap hit = %+v", hit)
	}
}

func TestSweepSegmentMiss(t *testing.T) {
	if _, ok := SweepCapsule(V(0, 200), V(1, 0), 500, 10, V(100, -50), V(100, 50), 0); ok {
		t.Error("sweep above the segment must miss")
	}
}

func TestClosestPointOnSegmentClamps(t *testing.T) {
	a, b := V(0, 0), V(10, 0)
	if p := ClosestPointOnSegment(V(-5, 3), a, b); p != a {
		t.Errorf("closest = %v, want a", p)
	}
	if p := ClosestPointOnSegment(V(4, 3), a, b); !near(p.X, 4) || math.Abs(p.Y) > tol {
		t.Errorf("closest = %v, want (4,0)", p)
	}
}
