package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"go-porcle/internal/app"
	"go-porcle/internal/config"
	"go-porcle/internal/input"
	"go-porcle/pkg/geom"
)

func record(t *testing.T, ticks int) *Recording {
	t.Helper()
	g := app.NewGame(nil, nil, 99, nil)
	rec := NewRecording(g)
	for i := 0; i < ticks && !g.Over(); i++ {
		in := input.State{
			Aim:        geom.FromAngle(float64(i) * 0.04),
			Shoot:      i%4 == 0,
			ToggleMode: i%300 == 150,
		}
		rec.Add(in)
		g.Update(config.FixedDelta, in)
	}
	rec.Finish(g)
	return rec
}

func TestPlaybackMatchesRecordedSession(t *testing.T) {
	rec := record(t, 1500)

	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(decoded.Inputs, rec.Inputs) {
		t.Fatal("inputs changed in the round trip")
	}

	_, first := Play(decoded, nil)
	_, second := Play(decoded, nil)
	if first != second {
		t.Fatalf("playbacks differ: %+v vs %+v", first, second)
	}
	if first.Score != rec.Score || first.Ticks != rec.Ticks {
		t.Fatalf("playback = %+v, recorded score %d ticks %d", first, rec.Score, rec.Ticks)
	}
}

func TestSaveAndLoad(t *testing.T) {
	rec := record(t, 60)
	path := filepath.Join(t.TempDir(), "run.porcle")
	if err := Save(path, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Seed != 99 || loaded.SessionID != rec.SessionID || len(loaded.Inputs) != 60 {
		t.Fatalf("loaded = seed %d id %s inputs %d", loaded.Seed, loaded.SessionID, len(loaded.Inputs))
	}
	if !reflect.DeepEqual(loaded.Library(), rec.Library()) {
		t.Fatal("enemy library changed on disk")
	}
}

func TestDecodeRejectsOtherVersion(t *testing.T) {
	data, err := msgpack.Marshal(&Recording{Version: FormatVersion + 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(bytes.NewReader(data)); !errors.Is(err, ErrVersion) {
		t.Fatalf("err = %v, want ErrVersion", err)
	}
}

func TestPlayerStepsThroughInputs(t *testing.T) {
	rec := &Recording{Inputs: []input.State{{Shoot: true}, {ToggleMode: true}}}
	p := NewPlayer(rec)
	if in, ok := p.Next(); !ok || !in.Shoot {
		t.Fatal("first input wrong")
	}
	if p.Progress() != 0.5 {
		t.Fatalf("progress = %f", p.Progress())
	}
	if in, ok := p.Next(); !ok || !in.ToggleMode {
		t.Fatal("second input wrong")
	}
	if !p.Done() || p.Recording() != rec {
		t.Fatal("player not done after the last input")
	}
	if _, ok := p.Next(); ok {
		t.Fatal("player ran past the end")
	}
}
