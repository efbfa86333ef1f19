// Package sim implements the deterministic cat jump simulation: the world
// model, level progression, collision predicates, procedural platform
// generation and the fixed-timestep engine that ties them together.
//
// The package performs no I/O. Every random decision goes through a single
// injected Rand, so a seed and a sequence of move directions fully determine
// a run.
package sim

import "github.com/vovakirdan/catjump/internal/core"

// PlatformType determines how a platform behaves when landed on.
type PlatformType int

const (
	PlatformNormal  PlatformType = iota // Plain jump
	PlatformMoving                      // Slides horizontally, bouncing at screen edges
	PlatformFragile                     // Breaks after the first landing
	PlatformSpring                      // Launches with the spring velocity
)

// String returns the platform type name.
func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformFragile:
		return "fragile"
	case PlatformSpring:
		return "spring"
	default:
		return "unknown"
	}
}

// ObstacleType enumerates the creatures sharing the world with the cat.
type ObstacleType int

const (
	ObstacleCactus ObstacleType = iota // Sits on a platform, hurts
	ObstacleBird                       // Flies, edible
	ObstacleBat                        // Flies, edible
	ObstacleMouse                      // Sits on a platform, edible
	ObstacleDog                        // Walks on a platform, hurts
)

// String returns the obstacle type name.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleCactus:
		return "cactus"
	case ObstacleBird:
		return "bird"
	case ObstacleBat:
		return "bat"
	case ObstacleMouse:
		return "mouse"
	case ObstacleDog:
		return "dog"
	default:
		return "unknown"
	}
}

// Damaging reports whether touching this creature costs a life.
func (t ObstacleType) Damaging() bool {
	return t == ObstacleCactus || t == ObstacleDog
}

// Edible reports whether the cat eats this creature on contact.
func (t ObstacleType) Edible() bool {
	return t == ObstacleBird || t == ObstacleBat || t == ObstacleMouse
}

// PowerUpType enumerates the collectible boosts.
type PowerUpType int

const (
	PowerUpJetpack PowerUpType = iota // Constant climb for a while
	PowerUpKibble                     // A few super jumps
)

// String returns the power-up type name.
func (t PowerUpType) String() string {
	if t == PowerUpKibble {
		return "kibble"
	}
	return "jetpack"
}

// SoundEvent names a sound the host may play for the tick that raised it.
type SoundEvent int

const (
	SoundJump SoundEvent = iota
	SoundLoseLife
	SoundEat
	SoundPowerUp
	SoundDogAppeared
	SoundGameOver
)

// String returns the event name.
func (e SoundEvent) String() string {
	switch e {
	case SoundJump:
		return "jump"
	case SoundLoseLife:
		return "lose_life"
	case SoundEat:
		return "eat"
	case SoundPowerUp:
		return "power_up"
	case SoundDogAppeared:
		return "dog_appeared"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// PowerUpState tracks the timed abilities currently held by the cat.
// End times are on the simulation clock (GameState.CurrentTime).
type PowerUpState struct {
	JetpackActive       bool
	JetpackEndTime      int64
	SuperJumpActive     bool
	SuperJumpEndTime    int64
	SuperJumpsRemaining int
}

// Active reports whether any ability is running.
func (p PowerUpState) Active() bool {
	return p.JetpackActive || p.SuperJumpActive
}

// Cat is the player character.
type Cat struct {
	X, Y                float64
	VX, VY              float64
	Width, Height       float64
	Jumping             bool
	FacingRight         bool
	Fatness             float64 // 0 thin, 1 as fat as it gets
	Eaten               int     // Creatures eaten this run
	Lives               int
	InvincibilityFrames int
	PowerUp             PowerUpState
}

// CenterX returns the horizontal center.
func (c Cat) CenterX() float64 { return c.X + c.Width/2 }

// CenterY returns the vertical center.
func (c Cat) CenterY() float64 { return c.Y + c.Height/2 }

// Right returns the x-coordinate of the right edge.
func (c Cat) Right() float64 { return c.X + c.Width }

// Bottom returns the y-coordinate of the feet.
func (c Cat) Bottom() float64 { return c.Y + c.Height }

// IsInvincible reports whether damaging creatures are ignored this tick.
// Holding any power-up also protects the cat.
func (c Cat) IsInvincible() bool {
	return c.InvincibilityFrames > 0 || c.PowerUp.Active()
}

// Rect returns the cat's bounding box.
func (c Cat) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.Width, c.Height)
}

// Platform is something the cat can bounce off.
type Platform struct {
	X, Y          float64
	Width, Height float64
	Type          PlatformType
	VX            float64 // Moving platforms only
	Active        bool    // False once a fragile platform has been used
}

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 { return p.X + p.Width }

// Rect returns the platform's bounding box.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Obstacle is any creature in the world, harmful or edible.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Type          ObstacleType
	VX, VY        float64

	// Dogs patrol their platform between these x-coordinates.
	WalkMinX, WalkMaxX float64
}

// Damaging reports whether touching the obstacle costs a life.
func (o Obstacle) Damaging() bool { return o.Type.Damaging() }

// Edible reports whether the cat eats the obstacle on contact.
func (o Obstacle) Edible() bool { return o.Type.Edible() }

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// PowerUp is a collectible item floating above a platform.
type PowerUp struct {
	X, Y          float64
	Width, Height float64
	Type          PowerUpType
}

// Rect returns the power-up's bounding box.
func (p PowerUp) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Phase is the engine state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// GameState is the complete world at one tick.
// Engine.Update never modifies a GameState it is given.
type GameState struct {
	Cat       Cat
	Platforms []Platform
	Obstacles []Obstacle
	PowerUps  []PowerUp

	Score        int
	HighScore    int
	Level        int
	GameOver     bool
	NewHighScore bool

	CameraY      float64 // World y of the top screen edge; only decreases
	ScreenWidth  float64
	ScreenHeight float64
	CurrentTime  int64 // Simulation clock in milliseconds
	Tick         uint64

	Sounds     []SoundEvent // Raised by the tick that produced this state
	ActiveDogs int

	// PlatformsSinceHazard counts platforms generated since the last
	// dog or cactus spawn.
	PlatformsSinceHazard int
}

// Phase returns where the run stands.
func (s GameState) Phase() Phase {
	if s.GameOver {
		return PhaseGameOver
	}
	return PhasePlaying
}

// HighestPlatform returns the platform with the smallest y.
// ok is false when there are no platforms.
func (s GameState) HighestPlatform() (p Platform, ok bool) {
	for i, candidate := range s.Platforms {
		if i == 0 || candidate.Y < p.Y {
			p = candidate
		}
	}
	return p, len(s.Platforms) > 0
}

// HasSound reports whether the tick raised the given event.
func (s GameState) HasSound(e SoundEvent) bool {
	for _, got := range s.Sounds {
		if got == e {
			return true
		}
	}
	return false
}
