package sim

import (
	"slices"
	"sync/atomic"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/core"
)

// fallMargin is how far below the visible area the cat may drop before
// the run ends.
const fallMargin = 100.0

// Engine advances a GameState by one fixed tick.
//
// The move direction is the only value written between ticks. Input
// handlers may call SetMoveDirection from any goroutine; Update reads it
// once per tick.
type Engine struct {
	cfg        config.CatJumpConfig
	difficulty *DifficultyManager
	generator  *PlatformGenerator

	moveDir atomic.Int32
}

// NewEngine wires the collaborators around one random source.
func NewEngine(cfg config.CatJumpConfig, rng Rand) *Engine {
	difficulty := NewDifficultyManager(cfg)
	return &Engine{
		cfg:        cfg,
		difficulty: difficulty,
		generator:  NewPlatformGenerator(cfg, difficulty, rng),
	}
}

// SetMoveDirection sets the horizontal intent: -1 left, 0 none, 1 right.
// Other values are clamped.
func (e *Engine) SetMoveDirection(dir int) {
	e.moveDir.Store(int32(core.Clamp(dir, -1, 1)))
}

// MoveDirection returns the current horizontal intent.
func (e *Engine) MoveDirection() int {
	return int(e.moveDir.Load())
}

// InitializeGame creates the first state of a run: the cat mid-jump off a
// centered platform with the starting ladder above it.
func (e *Engine) InitializeGame(screenW, screenH float64, highScore int) GameState {
	e.SetMoveDirection(0)

	size := e.cfg.Cat.Size
	cat := Cat{
		X:           screenW/2 - size/2,
		Y:           screenH - e.cfg.Platforms.StartOffset - size,
		VY:          e.cfg.Physics.JumpVelocity,
		Width:       size,
		Height:      size,
		Jumping:     true,
		FacingRight: true,
		Lives:       e.cfg.Cat.InitialLives,
	}

	return GameState{
		Cat:          cat,
		Platforms:    e.generator.InitialPlatforms(screenW, screenH),
		Obstacles:    []Obstacle{},
		PowerUps:     []PowerUp{},
		HighScore:    highScore,
		Level:        1,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	}
}

// Update runs one tick and returns the resulting state.
// The given state is left untouched; a finished run is returned as is.
func (e *Engine) Update(state GameState) GameState {
	if state.GameOver {
		return state
	}

	next := state
	next.Sounds = nil
	next.PowerUps = slices.Clone(state.PowerUps)

	e.advanceClock(&next)
	e.moveCat(&next, e.MoveDirection())
	next.Platforms = e.movePlatforms(state.Platforms, next.ScreenWidth)
	next.Obstacles = e.moveObstacles(state.Obstacles, next.ScreenWidth)

	if over := e.resolveCollisions(&next); over {
		return next
	}

	e.followCamera(&next)
	e.generateContent(&next)
	e.cleanup(&next)
	e.checkFall(&next)

	return next
}

func (e *Engine) advanceClock(s *GameState) {
	s.CurrentTime += e.cfg.World.FrameTimeMS
	s.Tick++

	pu := s.Cat.PowerUp
	if pu.JetpackActive && s.CurrentTime >= pu.JetpackEndTime {
		pu.JetpackActive = false
	}
	if pu.SuperJumpActive && (s.CurrentTime >= pu.SuperJumpEndTime || pu.SuperJumpsRemaining <= 0) {
		pu.SuperJumpActive = false
		pu.SuperJumpsRemaining = 0
	}
	s.Cat.PowerUp = pu
}

func (e *Engine) moveCat(s *GameState, dir int) {
	phys := e.cfg.Physics
	cat := s.Cat

	if cat.PowerUp.JetpackActive {
		cat.VY = e.cfg.PowerUps.JetpackBoost
	} else {
		cat.VY = min(cat.VY+phys.Gravity, phys.MaxFallVelocity)
	}
	cat.VX = float64(dir) * phys.HorizontalSpeed

	cat.X += cat.VX
	cat.Y += cat.VY

	// Leaving one side brings the cat back on the other.
	if cat.X < -cat.Width {
		cat.X = s.ScreenWidth
	} else if cat.X > s.ScreenWidth {
		cat.X = -cat.Width
	}

	switch {
	case cat.VX > 0:
		cat.FacingRight = true
	case cat.VX < 0:
		cat.FacingRight = false
	}
	cat.Jumping = cat.VY < 0

	s.Cat = cat
}

func (e *Engine) movePlatforms(platforms []Platform, screenW float64) []Platform {
	moved := make([]Platform, len(platforms))
	for i, p := range platforms {
		if p.Type == PlatformMoving && p.Active {
			x := p.X + p.VX
			if x <= 0 || x >= screenW-p.Width {
				p.VX = -p.VX
			}
			p.X = core.Clamp(x, 0, screenW-p.Width)
		}
		moved[i] = p
	}
	return moved
}

func (e *Engine) moveObstacles(obstacles []Obstacle, screenW float64) []Obstacle {
	moved := make([]Obstacle, len(obstacles))
	for i, o := range obstacles {
		if o.VX != 0 {
			lo, hi := 0.0, screenW-o.Width
			if o.Type == ObstacleDog {
				lo, hi = o.WalkMinX, o.WalkMaxX
			}
			x := o.X + o.VX
			if x <= lo || x >= hi {
				o.VX = -o.VX
				x = core.Clamp(x, lo, hi)
			}
			o.X = x
		}
		moved[i] = o
	}
	return moved
}

// resolveCollisions applies pickups, damage, eating and landing in that
// order. It returns true when the hit ended the run.
func (e *Engine) resolveCollisions(s *GameState) bool {
	cat := s.Cat

	if cat.InvincibilityFrames > 0 {
		cat.InvincibilityFrames--
	}

	if i := FindCollidingPowerUp(cat, s.PowerUps); i >= 0 {
		cat.PowerUp = e.grant(cat.PowerUp, s.PowerUps[i].Type, s.CurrentTime)
		s.PowerUps = slices.Delete(s.PowerUps, i, i+1)
		s.Sounds = append(s.Sounds, SoundPowerUp)
	}

	// Damaging creatures stay in place after a hit.
	if i := FindDamagingObstacle(cat, s.Obstacles); i >= 0 {
		if cat.Lives-1 <= 0 {
			s.Cat = cat
			s.GameOver = true
			s.Sounds = append(s.Sounds, SoundLoseLife, SoundGameOver)
			return true
		}
		cat.Lives--
		cat.InvincibilityFrames = e.cfg.Cat.InvincibilityFrames
		s.Sounds = append(s.Sounds, SoundLoseLife)
	}

	if i := FindEdibleObstacle(cat, s.Obstacles); i >= 0 {
		cat.Fatness = min(cat.Fatness+e.cfg.Cat.FatnessPerMeal, e.cfg.Cat.MaxFatness)
		cat.Eaten++
		if cat.Eaten%e.cfg.Cat.MealsPerLife == 0 && cat.Lives < e.cfg.Cat.MaxLives {
			cat.Lives++
		}
		s.Obstacles = slices.Delete(s.Obstacles, i, i+1)
		s.Sounds = append(s.Sounds, SoundEat)
	}

	// The jetpack carries the cat through platforms.
	if !cat.PowerUp.JetpackActive {
		if i := FindCollidingPlatform(cat, s.Platforms); i >= 0 {
			p := s.Platforms[i]
			cat.VY = e.jumpVelocity(&cat.PowerUp, p)
			cat.Y = p.Y - cat.Height
			cat.Jumping = true
			if p.Type == PlatformFragile {
				s.Platforms[i].Active = false
			}
			s.Sounds = append(s.Sounds, SoundJump)
		}
	}

	s.Cat = cat
	return false
}

func (e *Engine) grant(pu PowerUpState, typ PowerUpType, now int64) PowerUpState {
	cfg := e.cfg.PowerUps
	switch typ {
	case PowerUpJetpack:
		pu.JetpackActive = true
		pu.JetpackEndTime = now + cfg.JetpackDurationMS
	case PowerUpKibble:
		pu.SuperJumpActive = true
		pu.SuperJumpEndTime = now + cfg.SuperJumpDurationMS
		pu.SuperJumpsRemaining = cfg.SuperJumpCount
	}
	return pu
}

// jumpVelocity picks the launch speed off p: a held super jump first,
// then the spring, then a plain jump. Fatness does not slow the cat.
func (e *Engine) jumpVelocity(pu *PowerUpState, p Platform) float64 {
	switch {
	case pu.SuperJumpActive && pu.SuperJumpsRemaining > 0:
		pu.SuperJumpsRemaining--
		if pu.SuperJumpsRemaining == 0 {
			pu.SuperJumpActive = false
		}
		return e.cfg.PowerUps.SuperJumpVelocity
	case p.Type == PlatformSpring:
		return e.cfg.Physics.SpringJumpVelocity
	default:
		return e.cfg.Physics.JumpVelocity
	}
}

func (e *Engine) followCamera(s *GameState) {
	threshold := s.CameraY + s.ScreenHeight/3
	if s.Cat.Y >= threshold {
		return
	}

	s.CameraY -= threshold - s.Cat.Y
	s.Score = max(int(-s.CameraY), s.Score)
	s.Level = e.difficulty.CalculateLevel(s.Score)
	s.NewHighScore = s.Score > s.HighScore
}

// generateContent adds one platform, with whatever lives on it, whenever
// the highest platform comes within LookAhead of the top edge.
func (e *Engine) generateContent(s *GameState) {
	highest, ok := s.HighestPlatform()
	if ok && highest.Y <= s.CameraY-e.cfg.Platforms.LookAhead {
		return
	}

	highestY, lastX := s.CameraY, s.ScreenWidth/2
	if ok {
		highestY, lastX = highest.Y, highest.X
	}

	p := e.generator.NewPlatform(s.ScreenWidth, highestY, s.Level, lastX)
	s.Platforms = append(s.Platforms, p)

	if o, ok := e.generator.FlyingObstacle(s.ScreenWidth, p.Y, s.Level); ok {
		s.Obstacles = append(s.Obstacles, o)
	}
	e.placeGroundItem(s, p)
}

// placeGroundItem puts at most one thing on p, by priority mouse, dog,
// cactus, power-up. Dogs and cacti keep MinDamagingGap platforms apart.
func (e *Engine) placeGroundItem(s *GameState, p Platform) {
	gen := e.generator

	if mouse, ok := gen.MouseOnPlatform(p); ok {
		s.Obstacles = append(s.Obstacles, mouse)
		s.PlatformsSinceHazard++
		return
	}

	if s.PlatformsSinceHazard >= e.cfg.Creatures.MinDamagingGap {
		if dog, ok := gen.DogOnPlatform(p); ok {
			s.Obstacles = append(s.Obstacles, dog)
			s.PlatformsSinceHazard = 0
			s.Sounds = append(s.Sounds, SoundDogAppeared)
			return
		}
		if cactus, ok := gen.CactusOnPlatform(p); ok {
			s.Obstacles = append(s.Obstacles, cactus)
			s.PlatformsSinceHazard = 0
			return
		}
	}

	s.PlatformsSinceHazard++
	if pu, ok := gen.PowerUpOnPlatform(p); ok {
		s.PowerUps = append(s.PowerUps, pu)
	}
}

func (e *Engine) cleanup(s *GameState) {
	gen := e.generator
	s.Platforms = gen.CleanupPlatforms(s.Platforms, s.CameraY, s.ScreenHeight)
	s.Obstacles = gen.CleanupObstacles(s.Obstacles, s.CameraY, s.ScreenHeight)
	s.PowerUps = gen.CleanupPowerUps(s.PowerUps, s.CameraY, s.ScreenHeight)

	s.ActiveDogs = 0
	for _, o := range s.Obstacles {
		if o.Type == ObstacleDog {
			s.ActiveDogs++
		}
	}
}

func (e *Engine) checkFall(s *GameState) {
	if s.Cat.Y > s.CameraY+s.ScreenHeight+fallMargin {
		s.GameOver = true
		s.Sounds = append(s.Sounds, SoundGameOver)
	}
}
