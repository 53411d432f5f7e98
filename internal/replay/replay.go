// internal/replay/replay.go
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"go-porcle/internal/app"
	"go-porcle/internal/config"
	"go-porcle/internal/defs"
	"go-porcle/internal/effects"
	"go-porcle/internal/input"
)

// FormatVersion is bumped whenever the simulation changes in a way that makes
// old recordings play back differently.
const FormatVersion = 1

// ErrVersion is returned when a recording was made by another format version.
var ErrVersion = errors.New("unsupported replay version")

// Recording is everything needed to rebuild a session tick by tick: the seed,
// the gameplay constants and one input state per fixed tick.
type Recording struct {
	Version   int                    `msgpack:"v"`
	SessionID string                 `msgpack:"id"`
	Seed      int64                  `msgpack:"seed"`
	Tuning    *config.Tuning         `msgpack:"tuning"`
	Enemies   []defs.EnemyDefinition `msgpack:"enemies"`
	Inputs    []input.State          `msgpack:"inputs"`

	// Score and Ticks are what the recorded session ended with.
	Score int    `msgpack:"score"`
	Ticks uint64 `msgpack:"ticks"`
}

// Result is the outcome of a playback.
type Result struct {
	Score int
	Ticks uint64
	Over  bool
}

// NewRecording starts a recording of a freshly built session.
func NewRecording(g *app.Game) *Recording {
	r := &Recording{
		Version:   FormatVersion,
		SessionID: g.SessionID.String(),
		Seed:      g.Seed(),
		Tuning:    g.Tuning,
	}
	kinds := make([]defs.EnemyKind, 0, len(g.Library))
	for k := range g.Library {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		r.Enemies = append(r.Enemies, g.Library[k])
	}
	return r
}

// Add appends the input of one tick.
func (r *Recording) Add(in input.State) {
	r.Inputs = append(r.Inputs, in)
}

// Finish stores the final score and tick count of the recorded session.
func (r *Recording) Finish(g *app.Game) {
	r.Score = g.Score()
	r.Ticks = g.Tick
}

// Library rebuilds the enemy library the session was recorded with.
func (r *Recording) Library() defs.EnemyLibrary {
	if len(r.Enemies) == 0 {
		return defs.DefaultEnemyLibrary()
	}
	lib := make(defs.EnemyLibrary, len(r.Enemies))
	for _, def := range r.Enemies {
		lib[def.Kind] = def
	}
	return lib
}

// NewGame builds the session the recording starts from.
func (r *Recording) NewGame(fx effects.Sink) *app.Game {
	return app.NewGame(r.Tuning, r.Library(), r.Seed, fx)
}

// Play runs the whole recording at the fixed tick rate.
func Play(r *Recording, fx effects.Sink) (*app.Game, Result) {
	g := r.NewGame(fx)
	for _, in := range r.Inputs {
		if g.Over() {
			break
		}
		g.Update(config.FixedDelta, in)
	}
	return g, Result{Score: g.Score(), Ticks: g.Tick, Over: g.Over()}
}

// Player hands out recorded inputs one tick at a time.
type Player struct {
	rec  *Recording
	next int
}

func NewPlayer(r *Recording) *Player {
	return &Player{rec: r}
}

// Next returns the input for the coming tick, false once the recording ends.
func (p *Player) Next() (input.State, bool) {
	if p.next >= len(p.rec.Inputs) {
		return input.State{}, false
	}
	in := p.rec.Inputs[p.next]
	p.next++
	return in, true
}

// Recording is the recording being played.
func (p *Player) Recording() *Recording {
	return p.rec
}

// Done reports whether every input has been handed out.
func (p *Player) Done() bool {
	return p.next >= len(p.rec.Inputs)
}

// Progress is the fraction of the recording already played.
func (p *Player) Progress() float64 {
	if len(p.rec.Inputs) == 0 {
		return 1
	}
	return float64(p.next) / float64(len(p.rec.Inputs))
}

func Encode(w io.Writer, r *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

func Decode(rd io.Reader) (*Recording, error) {
	var r Recording
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if r.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d (want %d)", ErrVersion, r.Version, FormatVersion)
	}
	if r.Tuning == nil {
		r.Tuning = config.DefaultTuning()
	}
	if err := r.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("replay tuning: %w", err)
	}
	return &r, nil
}

// Save writes the recording to path.
func Save(path string, r *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, r); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write replay file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close replay file: %w", err)
	}
	log.Printf("Saved replay %s: %d ticks, score %d", path, len(r.Inputs), r.Score)
	return nil
}

// Load reads a recording written by Save.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}
