package component

import (
	"math"
	"testing"
)

func TestPaddleAmmoOffsetClamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"drain below zero", 0, -999, 0},
		{"overfill", 0, 999, 55},
		{"spend more than held", 10, -20, 0},
		{"regular add", 10, 5, 15},
		{"exact capacity", 50, 5, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := PaddleAmmo{Ammo: tt.start, Capacity: 55}
			a.Offset(tt.delta)
			if a.Ammo != tt.want {
				t.Fatalf("Offset(%d) from %d = %d, want %d", tt.delta, tt.start, a.Ammo, tt.want)
			}
		})
	}
}

func TestPaddleAmmoFactor(t *testing.T) {
	a := PaddleAmmo{Ammo: 11, Capacity: 55}
	if f := a.Factor(); math.Abs(f-0.2) > 1e-9 {
		t.Fatalf("Factor = %f, want 0.2", f)
	}
	if f := (PaddleAmmo{}).Factor(); f != 0 {
		t.Fatalf("zero-capacity Factor = %f, want 0", f)
	}
}

func TestSpeedFactor(t *testing.T) {
	tests := []struct {
		speed, min, max, want float64
	}{
		{250, 250, 500, 0},
		{375, 250, 500, 0.5},
		{600, 250, 500, 1},
		{100, 250, 500, 0},
		{300, 300, 300, 0},
	}
	for _, tt := range tests {
		if got := (Speed{Value: tt.speed}).Factor(tt.min, tt.max); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Factor(%v in [%v,%v]) = %v, want %v", tt.speed, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestCoreActiveGears(t *testing.T) {
	c := Core{Gears: []GearRef{{1, true}, {2, false}, {3, true}}}
	if n := c.ActiveGears(); n != 2 {
		t.Fatalf("ActiveGears = %d, want 2", n)
	}
}

func TestPaddleRotationReset(t *testing.T) {
	r := PaddleRotation{CWStart: 3, CCWStart: -2, PrevTotal: 1, IdleTimer: 0.4}
	r.Reset(7)
	if r.CWStart != 7 || r.CCWStart != 7 || r.PrevTotal != 7 || r.IdleTimer != 0 {
		t.Fatalf("Reset left %+v", r)
	}
}
