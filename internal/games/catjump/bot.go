package catjump

import (
	"math"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/games/catjump/sim"
)

// hazardClearance is how close above a platform a dog or cactus has to be
// to count as standing on it.
const hazardClearance = 5.0

// Autopilot steers the cat toward the highest platform it can still land on.
// It is used by the headless simulation and the demo host.
type Autopilot struct {
	gravity float64
	speed   float64
}

// NewAutopilot creates an autopilot for the given tunables.
func NewAutopilot(cfg config.CatJumpConfig) *Autopilot {
	return &Autopilot{
		gravity: cfg.Physics.Gravity,
		speed:   cfg.Physics.HorizontalSpeed,
	}
}

// Direction returns the move direction for the next tick.
func (a *Autopilot) Direction(s sim.GameState) int {
	target, ok := a.target(s)
	if !ok {
		return 0
	}

	dx := (target.X + target.Width/2) - s.Cat.CenterX()
	if math.Abs(dx) <= a.speed {
		return 0
	}
	if dx > 0 {
		return 1
	}
	return -1
}

// target picks the highest safe platform whose top the cat's feet will
// still rise above.
func (a *Autopilot) target(s sim.GameState) (sim.Platform, bool) {
	apex := s.Cat.Bottom()
	if vy := s.Cat.VY; vy < 0 && !s.Cat.PowerUp.JetpackActive {
		apex -= vy * vy / (2 * a.gravity)
	}

	var best sim.Platform
	found := false
	for _, p := range s.Platforms {
		if !p.Active || p.Y < apex || hasHazard(p, s.Obstacles) {
			continue
		}
		if !found || p.Y < best.Y {
			best, found = p, true
		}
	}
	return best, found
}

// hasHazard reports whether a damaging creature stands on the platform.
func hasHazard(p sim.Platform, obstacles []sim.Obstacle) bool {
	for _, o := range obstacles {
		if !o.Damaging() {
			continue
		}
		onTop := math.Abs(o.Y+o.Height-p.Y) <= hazardClearance
		overlaps := o.X < p.Right() && o.X+o.Width > p.X
		if onTop && overlaps {
			return true
		}
	}
	return false
}

// Simulate plays one run under the autopilot for at most maxTicks ticks and
// returns the final state. record, when non-nil, receives every tick's
// move direction in order.
func Simulate(cfg config.CatJumpConfig, seed int64, maxTicks int, record func(dir int)) sim.GameState {
	engine := sim.NewEngine(cfg, sim.NewRand(seed))
	state := engine.InitializeGame(cfg.World.Width, cfg.World.Height, 0)
	pilot := NewAutopilot(cfg)

	for i := 0; i < maxTicks && !state.GameOver; i++ {
		dir := pilot.Direction(state)
		if record != nil {
			record(dir)
		}
		engine.SetMoveDirection(dir)
		state = engine.Update(state)
	}
	return state
}

// Outcome names how a run ended: "alive", "caught" by a hazard or "fell".
// A fatal hit keeps the last life on the cat, so the lose-life sound of the
// final tick is what tells the two deaths apart.
func Outcome(final sim.GameState) string {
	switch {
	case !final.GameOver:
		return "alive"
	case final.HasSound(sim.SoundLoseLife):
		return "caught"
	default:
		return "fell"
	}
}
