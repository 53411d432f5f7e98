package defs

import (
	"errors"
	"testing"
)

func TestBracketForScore(t *testing.T) {
	tests := []struct {
		score   int
		wantMin float64
		wantMax float64
	}{
		{0, 2.5, 3.0},
		{9, 2.5, 3.0},
		{10, 2.0, 2.5},
		{49, 1.5, 2.0},
		{100, 0.75, 1.0},
		{5000, 0.75, 1.0},
	}
	for _, tt := range tests {
		b := BracketFor(tt.score)
		if b.IntervalMin != tt.wantMin || b.IntervalMax != tt.wantMax {
			t.Errorf("BracketFor(%d) = [%v, %v], want [%v, %v]", tt.score, b.IntervalMin, b.IntervalMax, tt.wantMin, tt.wantMax)
		}
	}
}

func TestFirstBracketOnlySpawnsCrawlers(t *testing.T) {
	b := BracketFor(0)
	if len(b.Weights) != 1 || b.Weights[0].Kind != KindCrawler {
		t.Fatalf("weights = %+v, want crawler only", b.Weights)
	}
}

func TestParseEnemyKind(t *testing.T) {
	k, err := ParseEnemyKind("Turret")
	if err != nil || k != KindTurret {
		t.Fatalf("ParseEnemyKind = %v, %v", k, err)
	}
	if _, err := ParseEnemyKind("dragon"); !errors.Is(err, ErrUnknownEnemyKind) {
		t.Fatalf("err = %v, want ErrUnknownEnemyKind", err)
	}
}

func TestDecodeEnemyDefinitionsOverlay(t *testing.T) {
	lib, err := DecodeEnemyDefinitions(`
[[enemy]]
name = "tank"
health = 5

[[enemy]]
name = "crawler"
speed = 150.0
`)
	if err != nil {
		t.Fatalf("DecodeEnemyDefinitions: %v", err)
	}
	if lib[KindTank].Health != 5 {
		t.Errorf("tank health = %d, want 5", lib[KindTank].Health)
	}
	if lib[KindTank].Speed != 40 {
		t.Errorf("tank speed changed to %f", lib[KindTank].Speed)
	}
	if lib[KindCrawler].Speed != 150 {
		t.Errorf("crawler speed = %f, want 150", lib[KindCrawler].Speed)
	}
	if lib[KindTurret].StopRadiusMin != 380 {
		t.Errorf("turret untouched def changed")
	}
}

func TestDecodeEnemyDefinitionsUnknownName(t *testing.T) {
	_, err := DecodeEnemyDefinitions("[[enemy]]\nname = \"ghost\"\n")
	if !errors.Is(err, ErrUnknownEnemyKind) {
		t.Fatalf("err = %v, want ErrUnknownEnemyKind", err)
	}
}
