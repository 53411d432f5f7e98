package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestDecodeTuningOverridesDefaults(t *testing.T) {
	tun, err := DecodeTuning(`
[ball]
base_speed = 300.0

[paddle]
ammo_capacity = 40
`)
	if err != nil {
		t.Fatalf("DecodeTuning: %v", err)
	}
	if tun.Ball.BaseSpeed != 300 {
		t.Errorf("base_speed = %f, want 300", tun.Ball.BaseSpeed)
	}
	if tun.Paddle.AmmoCapacity != 40 {
		t.Errorf("ammo_capacity = %d, want 40", tun.Paddle.AmmoCapacity)
	}
	if tun.Ball.ReflectSpeedMult != 1.225 {
		t.Errorf("untouched field changed: %f", tun.Ball.ReflectSpeedMult)
	}
}

func TestDecodeTuningRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeTuning("[ball]\nbase_sped = 300.0\n")
	if !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("err = %v, want ErrInvalidTuning", err)
	}
}

func TestDecodeTuningRejectsInvalidValues(t *testing.T) {
	_, err := DecodeTuning("[paddle]\nammo_start = 99\n")
	if !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("err = %v, want ErrInvalidTuning", err)
	}
}

func TestLoadTuningFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte("[core]\ngears = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.Core.Gears != 3 {
		t.Fatalf("gears = %d, want 3", tun.Core.Gears)
	}
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
