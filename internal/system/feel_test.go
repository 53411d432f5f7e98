package system

import (
	"math"
	"testing"

	"go-porcle/pkg/geom"
)

func TestMaxSpeedFactor(t *testing.T) {
	if got := MaxSpeedFactor(nil, 250, 500); got != 0 {
		t.Fatalf("no balls = %f, want 0", got)
	}
	if got := MaxSpeedFactor([]float64{250, 375}, 250, 500); !near(got, 0.5, 1e-12) {
		t.Fatalf("factor = %f, want 0.5", got)
	}
	if got := MaxSpeedFactor([]float64{100, 900}, 250, 500); got != 1 {
		t.Fatalf("factor = %f, want clamped 1", got)
	}
}

func TestFeelFactorSmoothsAndGrantsAmmo(t *testing.T) {
	w := newTestWorld()
	if w.feel.AmmoBonus() != 1 {
		t.Fatalf("idle bonus = %d, want 1", w.feel.AmmoBonus())
	}
	w.addBall(geom.V(0, 0), geom.V(1, 0), 500)

	w.feel.Update(0.1)
	want := 1 - math.Exp(-w.tuning.Feel.SmoothingRate*0.1)
	if got := w.feel.Factor(); !near(got, want, 1e-12) {
		t.Fatalf("factor = %f, want %f", got, want)
	}
	if got := w.feel.AmmoBonus(); got != 2 {
		t.Fatalf("bonus = %d, want 2", got)
	}

	w.feel.Reset()
	if w.feel.Factor() != 0 {
		t.Fatal("reset kept the factor")
	}
}
