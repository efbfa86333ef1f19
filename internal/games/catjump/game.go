// Package catjump hosts the cat jump simulation as a registry game: it turns
// key presses into move directions, scales the world onto a character
// screen and registers one game mode per difficulty preset.
package catjump

import (
	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/core"
	"github.com/vovakirdan/catjump/internal/games/catjump/sim"
	"github.com/vovakirdan/catjump/internal/registry"
)

// Mode IDs, one per difficulty preset. Scores are stored per mode.
const (
	IDNormal = "catjump"
	IDEasy   = "catjump_easy"
	IDHard   = "catjump_hard"
)

// configPath stores the custom config path set via CLI
var configPath string

// skinID stores the skin chosen via CLI or the persisted setting
var skinID = DefaultSkinID

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSkin sets the skin new games start with. Unknown ids fall back to orange.
func SetSkin(id string) {
	skinID = SkinOrDefault(id).ID
}

// ModeID returns the mode ID for a preset. Unknown presets map to normal.
func ModeID(preset config.DifficultyPreset) string {
	switch preset {
	case config.DifficultyEasy:
		return IDEasy
	case config.DifficultyHard:
		return IDHard
	default:
		return IDNormal
	}
}

// Game adapts sim.Engine to the registry.Game interface.
type Game struct {
	preset config.DifficultyPreset
	skin   Skin

	cfg     config.CatJumpConfig
	cfgErr  error
	runtime core.RuntimeConfig
	engine  *sim.Engine
	state   sim.GameState
	paused  bool

	// Terminals report presses only, so a direction is held for a number
	// of ticks after the last press.
	heldDir   int
	holdTicks int
}

// New creates a game for the given difficulty preset.
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset, skin: SkinOrDefault(skinID)}
}

// ID returns the mode identifier used for score storage.
func (g *Game) ID() string {
	return ModeID(g.preset)
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	switch g.preset {
	case config.DifficultyEasy:
		return "Cat Jump (Easy)"
	case config.DifficultyHard:
		return "Cat Jump (Hard)"
	default:
		return "Cat Jump"
	}
}

// Reset loads the tunables and starts a fresh run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	cfg, err := config.Load(configPath)
	g.cfgErr = err
	if g.preset != "" {
		config.ApplyPreset(&cfg, g.preset)
	}
	g.cfg = cfg

	g.engine = sim.NewEngine(cfg, sim.NewRand(rc.Seed))
	g.state = g.engine.InitializeGame(cfg.World.Width, cfg.World.Height, rc.HighScore)
	g.paused = false
	g.heldDir = 0
	g.holdTicks = 0
}

// ConfigErr returns the error from loading a custom tunables file during the
// last Reset. The game runs on defaults in that case.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.engine.SetMoveDirection(g.resolveDirection(in))
	g.state = g.engine.Update(g.state)

	var events []string
	for _, s := range g.state.Sounds {
		events = append(events, s.String())
	}
	return core.StepResult{State: g.State(), Events: events}
}

// resolveDirection applies this frame's movement keys and ages the held one.
func (g *Game) resolveDirection(in core.InputFrame) int {
	if dir, ok := in.MoveDirection(); ok {
		g.heldDir = dir
		g.holdTicks = 0
		if dir != 0 {
			g.holdTicks = max(g.cfg.Controls.HoldTicks, 1)
		}
	}

	if g.holdTicks == 0 {
		g.heldDir = 0
		return 0
	}
	g.holdTicks--
	return g.heldDir
}

// State returns the host-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.state.Score,
		HighScore:    g.state.HighScore,
		Level:        g.state.Level,
		Lives:        g.state.Cat.Lives,
		NewHighScore: g.state.NewHighScore,
		GameOver:     g.state.GameOver,
		Paused:       g.paused,
	}
}

// World returns the full simulation state.
func (g *Game) World() sim.GameState {
	return g.state
}

// Snapshot returns the simulation snapshot of the current tick.
func (g *Game) Snapshot() sim.Snapshot {
	return g.state.Snapshot()
}

// Seed returns the seed of the running game.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Eaten returns how many creatures the cat ate this run.
func (g *Game) Eaten() int {
	return g.state.Cat.Eaten
}

// Skin returns the skin the cat is drawn with.
func (g *Game) Skin() Skin {
	return g.skin
}

// SetSkin changes this game's skin.
func (g *Game) SetSkin(id string) {
	g.skin = SkinOrDefault(id)
}

// SkinID returns the id of the skin the cat is drawn with.
func (g *Game) SkinID() string {
	return g.skin.ID
}

// Register the game modes with the registry
func init() {
	registry.Register(IDNormal, func() registry.Game {
		return New(config.DifficultyNormal)
	})
	registry.Register(IDEasy, func() registry.Game {
		return New(config.DifficultyEasy)
	})
	registry.Register(IDHard, func() registry.Game {
		return New(config.DifficultyHard)
	})
}
