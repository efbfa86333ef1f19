// Package replay records runs as a seed plus the move direction of every
// tick, and re-simulates them to verify the outcome. Directions are stored
// run-length encoded; files are msgpack.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/games/catjump/sim"
)

// FormatVersion is bumped whenever the simulation changes in a way that
// invalidates existing recordings.
const FormatVersion = 1

var (
	// ErrVersion is returned when decoding a recording of another format version.
	ErrVersion = errors.New("replay: unsupported format version")
	// ErrMismatch is returned when a re-simulated run ends differently.
	ErrMismatch = errors.New("replay: outcome mismatch")
)

// Segment is a run of consecutive ticks with the same move direction.
type Segment struct {
	Ticks int  `msgpack:"n"`
	Dir   int8 `msgpack:"d"`
}

// Recording is everything needed to reproduce a run.
type Recording struct {
	Version    int          `msgpack:"v"`
	Mode       string       `msgpack:"mode"`
	Seed       int64        `msgpack:"seed"`
	HighScore  int          `msgpack:"hi"`
	Config     []byte       `msgpack:"cfg"` // YAML tunables the run was played with
	Inputs     []Segment    `msgpack:"in"`
	Final      sim.Snapshot `msgpack:"final"`
	RecordedAt time.Time    `msgpack:"at"`
}

// Ticks returns the number of recorded ticks.
func (r *Recording) Ticks() int {
	n := 0
	for _, s := range r.Inputs {
		n += s.Ticks
	}
	return n
}

// Directions yields the move direction of every recorded tick in order.
func (r *Recording) Directions() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, s := range r.Inputs {
			for range s.Ticks {
				if !yield(int(s.Dir)) {
					return
				}
			}
		}
	}
}

// Tunables decodes the tunables the run was played with.
func (r *Recording) Tunables() (config.CatJumpConfig, error) {
	cfg, err := config.Parse(r.Config)
	if err != nil {
		return cfg, fmt.Errorf("replay: bad tunables: %w", err)
	}
	return cfg, nil
}

// Recorder accumulates a run tick by tick.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a run with the given tunables and seed.
func NewRecorder(cfg config.CatJumpConfig, mode string, seed int64, highScore int) (*Recorder, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode tunables: %w", err)
	}
	return &Recorder{rec: Recording{
		Version:   FormatVersion,
		Mode:      mode,
		Seed:      seed,
		HighScore: highScore,
		Config:    data,
	}}, nil
}

// Add records the move direction used for one tick.
func (r *Recorder) Add(dir int) {
	d := int8(max(min(dir, 1), -1))
	if n := len(r.rec.Inputs); n > 0 && r.rec.Inputs[n-1].Dir == d {
		r.rec.Inputs[n-1].Ticks++
		return
	}
	r.rec.Inputs = append(r.rec.Inputs, Segment{Ticks: 1, Dir: d})
}

// Finish seals the recording with the final state of the run.
func (r *Recorder) Finish(final sim.GameState) *Recording {
	rec := r.rec
	rec.Inputs = append([]Segment(nil), r.rec.Inputs...)
	rec.Final = final.Snapshot()
	rec.RecordedAt = time.Now().UTC().Truncate(time.Second)
	return &rec
}

// Play re-simulates the recording and returns the final state.
func Play(r *Recording) (sim.GameState, error) {
	cfg, err := r.Tunables()
	if err != nil {
		return sim.GameState{}, err
	}

	engine := sim.NewEngine(cfg, sim.NewRand(r.Seed))
	state := engine.InitializeGame(cfg.World.Width, cfg.World.Height, r.HighScore)

	tick := 0
	for dir := range r.Directions() {
		if state.GameOver {
			return state, fmt.Errorf("replay: run ended at tick %d with %d inputs left", tick, r.Ticks()-tick)
		}
		engine.SetMoveDirection(dir)
		state = engine.Update(state)
		tick++
	}
	return state, nil
}

// Verify re-simulates the recording and checks it ends as recorded.
func Verify(r *Recording) (sim.Snapshot, error) {
	state, err := Play(r)
	if err != nil {
		return sim.Snapshot{}, err
	}
	got := state.Snapshot()
	if got != r.Final {
		return got, fmt.Errorf("%w: tick %d score %d, recorded tick %d score %d",
			ErrMismatch, got.Tick, got.Score, r.Final.Tick, r.Final.Score)
	}
	return got, nil
}

// Encode writes the recording as msgpack.
func Encode(w io.Writer, r *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("replay: cannot encode: %w", err)
	}
	return nil
}

// Decode reads a msgpack recording.
func Decode(rd io.Reader) (*Recording, error) {
	var r Recording
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("replay: cannot decode: %w", err)
	}
	if r.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d (want %d)", ErrVersion, r.Version, FormatVersion)
	}
	return &r, nil
}

// WriteFile saves the recording to path.
func WriteFile(path string, r *Recording) error {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a recording from path.
func ReadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
