package sim

import (
	"math"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/core"
)

// Bats fly slower than birds.
const batSpeedFactor = 0.7

// PlatformGenerator produces the procedural world: the starting ladder,
// new platforms as the camera climbs, the creatures and power-ups placed
// on them, and the cleanup of everything that fell off screen.
type PlatformGenerator struct {
	cfg        config.CatJumpConfig
	difficulty *DifficultyManager
	rng        Rand
}

// NewPlatformGenerator creates a generator drawing from rng.
func NewPlatformGenerator(cfg config.CatJumpConfig, difficulty *DifficultyManager, rng Rand) *PlatformGenerator {
	return &PlatformGenerator{
		cfg:        cfg,
		difficulty: difficulty,
		rng:        rng,
	}
}

func (g *PlatformGenerator) platform(x, y float64, typ PlatformType, vx float64) Platform {
	return Platform{
		X:      x,
		Y:      y,
		Width:  g.cfg.Platforms.Width,
		Height: g.cfg.Platforms.Height,
		Type:   typ,
		VX:     vx,
		Active: true,
	}
}

// between returns a uniform sample in [lo, hi).
func (g *PlatformGenerator) between(lo, hi float64) float64 {
	return g.rng.Float64()*(hi-lo) + lo
}

// InitialPlatforms builds the starting ladder: a normal platform centered
// StartOffset above the bottom edge, then normal platforms upward until one
// screen height above the top.
func (g *PlatformGenerator) InitialPlatforms(screenW, screenH float64) []Platform {
	startY := screenH - g.cfg.Platforms.StartOffset
	startX := screenW/2 - g.cfg.Platforms.Width/2

	platforms := []Platform{g.platform(startX, startY, PlatformNormal, 0)}

	y, lastX := startY, startX
	for y > -screenH {
		y -= g.between(g.cfg.Platforms.MinGap, g.cfg.Platforms.MaxGap)
		x := g.ReachableX(lastX, screenW)
		platforms = append(platforms, g.platform(x, y, PlatformNormal, 0))
		lastX = x
	}
	return platforms
}

// MaxHorizontalDistance is how far the cat can drift sideways during one
// jump arc, scaled down by the reach safety factor.
func (g *PlatformGenerator) MaxHorizontalDistance() float64 {
	p := g.cfg.Physics
	airTime := 2 * math.Abs(p.JumpVelocity) / p.Gravity
	return p.HorizontalSpeed * airTime * p.ReachSafetyFactor
}

// ReachableX picks a platform x within jumping reach of lastX.
// When the clamped range is empty the platform is centered.
func (g *PlatformGenerator) ReachableX(lastX, screenW float64) float64 {
	reach := g.MaxHorizontalDistance()
	lo := max(lastX-reach, 0)
	hi := min(lastX+reach, screenW-g.cfg.Platforms.Width)

	if hi > lo {
		return g.between(lo, hi)
	}
	return (screenW - g.cfg.Platforms.Width) / 2
}

// NewPlatform generates the next platform above highestY.
func (g *PlatformGenerator) NewPlatform(screenW, highestY float64, level int, lastX float64) Platform {
	gap := g.between(g.difficulty.MinPlatformGap(level), g.difficulty.MaxPlatformGap(level))
	x := g.ReachableX(lastX, screenW)
	typ := g.difficulty.SelectPlatformType(level, g.rng)

	var vx float64
	if typ == PlatformMoving {
		vx = signed(g.rng, g.difficulty.MovingPlatformSpeed(level))
	}
	return g.platform(x, highestY-gap, typ, vx)
}

// FlyingObstacle maybe spawns a bird or bat hovering above platformY.
// Bats only appear from BatMinLevel on.
func (g *PlatformGenerator) FlyingObstacle(screenW, platformY float64, level int) (Obstacle, bool) {
	if !g.difficulty.ShouldSpawnObstacle(level, g.rng) {
		return Obstacle{}, false
	}

	typ := ObstacleBird
	if level >= g.cfg.Difficulty.BatMinLevel && !coin(g.rng) {
		typ = ObstacleBat
	}

	size := g.cfg.Creatures.ObstacleSize
	x := g.rng.Float64() * (screenW - size)

	speed := g.cfg.Creatures.ObstacleSpeed
	if typ == ObstacleBat {
		speed *= batSpeedFactor
	}

	return Obstacle{
		X:      x,
		Y:      platformY - g.cfg.Creatures.FlyingLift,
		Width:  size,
		Height: size,
		Type:   typ,
		VX:     signed(g.rng, speed),
	}, true
}

// spawns rolls against chance. Equal counts as a hit.
func (g *PlatformGenerator) spawns(chance float64) bool {
	return g.rng.Float64() <= chance
}

// groundX places a creature of the given size around the platform center,
// jittered by spread of the free width and kept inside the platform.
func (g *PlatformGenerator) groundX(p Platform, size, spread float64) float64 {
	free := p.Width - size
	x := p.X + free/2 + g.rng.Float64()*free*spread - free*spread/2
	return core.Clamp(x, p.X, p.X+free)
}

// MouseOnPlatform maybe puts a mouse on a normal or spring platform.
func (g *PlatformGenerator) MouseOnPlatform(p Platform) (Obstacle, bool) {
	if p.Type != PlatformNormal && p.Type != PlatformSpring {
		return Obstacle{}, false
	}
	if !g.spawns(g.cfg.Creatures.MouseChance) {
		return Obstacle{}, false
	}

	size := g.cfg.Creatures.MouseSize
	return Obstacle{
		X:      g.groundX(p, size, 0.5),
		Y:      p.Y - size,
		Width:  size,
		Height: size,
		Type:   ObstacleMouse,
	}, true
}

// CactusOnPlatform maybe puts a cactus on a normal platform.
func (g *PlatformGenerator) CactusOnPlatform(p Platform) (Obstacle, bool) {
	if p.Type != PlatformNormal {
		return Obstacle{}, false
	}
	if !g.spawns(g.cfg.Creatures.CactusChance) {
		return Obstacle{}, false
	}

	size := g.cfg.Creatures.CactusSize
	return Obstacle{
		X:      g.groundX(p, size, 0.4),
		Y:      p.Y - size,
		Width:  size,
		Height: size,
		Type:   ObstacleCactus,
	}, true
}

// DogOnPlatform maybe puts a dog on a normal platform. The dog starts
// centered and patrols the platform's width.
func (g *PlatformGenerator) DogOnPlatform(p Platform) (Obstacle, bool) {
	if p.Type != PlatformNormal {
		return Obstacle{}, false
	}
	if !g.spawns(g.cfg.Creatures.DogChance) {
		return Obstacle{}, false
	}

	size := g.cfg.Creatures.DogSize
	return Obstacle{
		X:        p.X + (p.Width-size)/2,
		Y:        p.Y - size,
		Width:    size,
		Height:   size,
		Type:     ObstacleDog,
		VX:       signed(g.rng, g.cfg.Creatures.DogWalkSpeed),
		WalkMinX: p.X,
		WalkMaxX: p.Right() - size,
	}, true
}

// PowerUpOnPlatform maybe floats a jetpack or kibble above a normal or
// spring platform.
func (g *PlatformGenerator) PowerUpOnPlatform(p Platform) (PowerUp, bool) {
	if p.Type != PlatformNormal && p.Type != PlatformSpring {
		return PowerUp{}, false
	}
	if !g.spawns(g.cfg.PowerUps.Chance) {
		return PowerUp{}, false
	}

	typ := PowerUpKibble
	if coin(g.rng) {
		typ = PowerUpJetpack
	}

	size := g.cfg.PowerUps.Size
	return PowerUp{
		X:      p.X + (p.Width-size)/2,
		Y:      p.Y - size - g.cfg.PowerUps.Float,
		Width:  size,
		Height: size,
		Type:   typ,
	}, true
}

// cutoff is the world y below which entities are dropped.
func (g *PlatformGenerator) cutoff(cameraY, screenH float64) float64 {
	return cameraY + screenH + g.cfg.Platforms.CleanupBelow
}

// keepAbove returns a fresh slice of the items whose y lies above limit.
func keepAbove[T any](items []T, y func(T) float64, limit float64) []T {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if y(it) < limit {
			kept = append(kept, it)
		}
	}
	return kept
}

// CleanupPlatforms drops platforms below the visible area.
func (g *PlatformGenerator) CleanupPlatforms(platforms []Platform, cameraY, screenH float64) []Platform {
	return keepAbove(platforms, func(p Platform) float64 { return p.Y }, g.cutoff(cameraY, screenH))
}

// CleanupObstacles drops creatures below the visible area.
func (g *PlatformGenerator) CleanupObstacles(obstacles []Obstacle, cameraY, screenH float64) []Obstacle {
	return keepAbove(obstacles, func(o Obstacle) float64 { return o.Y }, g.cutoff(cameraY, screenH))
}

// CleanupPowerUps drops power-ups below the visible area.
func (g *PlatformGenerator) CleanupPowerUps(powerUps []PowerUp, cameraY, screenH float64) []PowerUp {
	return keepAbove(powerUps, func(p PowerUp) float64 { return p.Y }, g.cutoff(cameraY, screenH))
}
