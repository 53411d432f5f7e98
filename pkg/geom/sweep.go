// pkg/geom/sweep.go
package geom

import "math"

// Hit describes the first contact of a swept circle with a shape.
type Hit struct {
	Distance float64 // Travel along the sweep direction until contact
	Point    Vec2    // Contact point on the surface of the other shape
	Normal   Vec2    // Unit normal pointing from the other shape toward the swept circle
}

// ClosestPointOnSegment returns the point of segment ab nearest to p.
func ClosestPointOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq < Epsilon {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}

// SweepCircle sweeps a circle of radius from origin along the unit vector dir
// for at most maxDist and reports the first contact with a static circle.
// An initial overlap is reported as a hit at distance 0.
func SweepCircle(origin, dir Vec2, maxDist, radius float64, center Vec2, otherRadius float64) (Hit, bool) {
	r := radius + otherRadius
	m := origin.Sub(center)
	c := m.LenSq() - r*r
	if c <= 0 {
		n := m.NormalizeOr(dir.Neg())
		return Hit{Distance: 0, Point: center.Add(n.Scale(otherRadius)), Normal: n}, true
	}
	b := m.Dot(dir)
	if b >= 0 {
		return Hit{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return Hit{}, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	if t > maxDist {
		return Hit{}, false
	}
	p := origin.Add(dir.Scale(t))
	n := p.Sub(center).NormalizeOr(dir.Neg())
	return Hit{Distance: t, Point: center.Add(n.Scale(otherRadius)), Normal: n}, true
}

// SweepCapsule sweeps a circle against the capsule around segment ab with
// radius capRadius. A zero capRadius turns the capsule into a plain segment.
func SweepCapsule(origin, dir Vec2, maxDist, radius float64, a, b Vec2, capRadius float64) (Hit, bool) {
	r := radius + capRadius
	closest := ClosestPointOnSegment(origin, a, b)
	if origin.Distance(closest) <= r {
		n := origin.Sub(closest).NormalizeOr(dir.Neg())
		return Hit{Distance: 0, Point: closest.Add(n.Scale(capRadius)), Normal: n}, true
	}

	best := Hit{Distance: math.Inf(1)}
	found := false

	axis := b.Sub(a)
	length := axis.Len()
	if length > Epsilon {
		u := axis.Scale(1 / length)
		for _, side := range [2]float64{1, -1} {
			n := u.Perp().Scale(side)
			h := origin.Sub(a).Dot(n)
			denom := dir.Dot(n)
			if h < r || denom >= 0 {
				continue
			}
			t := (r - h) / denom
			if t < 0 || t > maxDist {
				continue
			}
			proj := origin.Add(dir.Scale(t)).Sub(a).Dot(u)
			if proj < 0 || proj > length {
				continue
			}
			if t < best.Distance {
				onAxis := a.Add(u.Scale(proj))
				best = Hit{Distance: t, Point: onAxis.Add(n.Scale(capRadius)), Normal: n}
				found = true
			}
		}
	}

	for _, end := range [2]Vec2{a, b} {
		if hit, ok := SweepCircle(origin, dir, maxDist, radius, end, capRadius); ok && hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}
