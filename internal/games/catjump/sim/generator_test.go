package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/catjump/internal/config"
)

const eps = 1e-9

func newTestGenerator(rng Rand) *PlatformGenerator {
	cfg := config.DefaultCatJumpConfig()
	return NewPlatformGenerator(cfg, NewDifficultyManager(cfg), rng)
}

func TestMaxHorizontalDistance(t *testing.T) {
	g := newTestGenerator(script())
	// 12 px/tick * (2*22/0.5 = 88 ticks) * 0.6
	if got := g.MaxHorizontalDistance(); math.Abs(got-633.6) > eps {
		t.Errorf("MaxHorizontalDistance() = %v, expected 633.6", got)
	}
}

func TestInitialPlatforms(t *testing.T) {
	const w, h = 1080.0, 1920.0

	for seed := int64(1); seed <= 50; seed++ {
		g := newTestGenerator(NewRand(seed))
		reach := g.MaxHorizontalDistance()
		platforms := g.InitialPlatforms(w, h)

		first := platforms[0]
		if first.X != 430 || first.Y != 1720 || first.Type != PlatformNormal || !first.Active {
			t.Fatalf("seed %d: first platform = %+v, expected normal at (430, 1720)", seed, first)
		}

		for i := 1; i < len(platforms); i++ {
			prev, cur := platforms[i-1], platforms[i]
			if cur.Type != PlatformNormal {
				t.Errorf("seed %d: platform %d type = %v, expected normal", seed, i, cur.Type)
			}
			gap := prev.Y - cur.Y
			if gap < 100-eps || gap > 160+eps {
				t.Errorf("seed %d: gap %d = %v, expected within [100, 160]", seed, i, gap)
			}
			if dx := math.Abs(cur.X - prev.X); dx > reach+eps {
				t.Errorf("seed %d: platform %d is %v px from the previous, reach is %v", seed, i, dx, reach)
			}
			if cur.X < 0 || cur.Right() > w {
				t.Errorf("seed %d: platform %d at x=%v leaves the screen", seed, i, cur.X)
			}
		}

		last := platforms[len(platforms)-1]
		if last.Y > -h {
			t.Errorf("seed %d: ladder stops at y=%v, expected at or above %v", seed, last.Y, -h)
		}
		if secondLast := platforms[len(platforms)-2]; secondLast.Y <= -h {
			t.Errorf("seed %d: ladder overshoots, y=%v already past %v", seed, secondLast.Y, -h)
		}
	}
}

func TestNewPlatformReachability(t *testing.T) {
	const w = 1080.0

	for seed := int64(1); seed <= 100; seed++ {
		rng := NewRand(seed)
		g := newTestGenerator(rng)
		reach := g.MaxHorizontalDistance()

		lastX := rng.Float64() * (w - 220)
		y := 0.0
		for i := 0; i < 200; i++ {
			level := i%12 + 1
			p := g.NewPlatform(w, y, level, lastX)

			if dx := math.Abs(p.X - lastX); dx > reach+eps {
				t.Fatalf("seed %d step %d: dx=%v exceeds reach %v", seed, i, dx, reach)
			}
			gap := y - p.Y
			d := g.difficulty
			if gap < d.MinPlatformGap(level)-eps || gap > d.MaxPlatformGap(level)+eps {
				t.Fatalf("seed %d step %d: gap %v outside level %d range", seed, i, gap, level)
			}
			if (p.Type == PlatformMoving) != (p.VX != 0) {
				t.Fatalf("seed %d step %d: %v platform has VX=%v", seed, i, p.Type, p.VX)
			}
			lastX, y = p.X, p.Y
		}
	}
}

func TestReachableXNarrowScreenCenters(t *testing.T) {
	g := newTestGenerator(script(0.3))
	if got := g.ReachableX(0, 200); got != -10 {
		t.Errorf("ReachableX() on a 200px screen = %v, expected centered -10", got)
	}
}

func TestFlyingObstacle(t *testing.T) {
	t.Run("none before level 3", func(t *testing.T) {
		rng := script(0)
		if _, ok := newTestGenerator(rng).FlyingObstacle(1080, 500, 2); ok {
			t.Error("expected no obstacle at level 2")
		}
		if rng.next != 0 {
			t.Errorf("consumed %d rolls, expected 0", rng.next)
		}
	})

	t.Run("bird at level 3", func(t *testing.T) {
		o, ok := newTestGenerator(script(0.01, 0.5, 0.2)).FlyingObstacle(1080, 500, 3)
		if !ok {
			t.Fatal("expected an obstacle")
		}
		if o.Type != ObstacleBird || o.X != 505 || o.Y != 440 || o.VX != 4 {
			t.Errorf("obstacle = %+v, expected bird at (505, 440) moving right at 4", o)
		}
	})

	t.Run("bat from level 4", func(t *testing.T) {
		o, ok := newTestGenerator(script(0.01, 0.9, 0, 0.9)).FlyingObstacle(1080, 500, 4)
		if !ok {
			t.Fatal("expected an obstacle")
		}
		if o.Type != ObstacleBat || o.X != 0 || math.Abs(o.VX+2.8) > eps {
			t.Errorf("obstacle = %+v, expected bat at x=0 moving left at 2.8", o)
		}
	})
}

func TestGroundSpawns(t *testing.T) {
	normal := Platform{X: 100, Y: 500, Width: 220, Height: 22, Type: PlatformNormal, Active: true}
	spring := normal
	spring.Type = PlatformSpring
	moving := normal
	moving.Type = PlatformMoving

	t.Run("mouse spawns at exactly the chance", func(t *testing.T) {
		o, ok := newTestGenerator(script(0.15, 0.5)).MouseOnPlatform(normal)
		if !ok {
			t.Fatal("expected a mouse")
		}
		if o.Type != ObstacleMouse || o.X != 185 || o.Y != 450 || o.VX != 0 {
			t.Errorf("mouse = %+v, expected standing at (185, 450)", o)
		}
	})

	t.Run("mouse roll above chance", func(t *testing.T) {
		if _, ok := newTestGenerator(script(0.16)).MouseOnPlatform(spring); ok {
			t.Error("expected no mouse")
		}
	})

	t.Run("no mouse on moving platforms", func(t *testing.T) {
		rng := script(0)
		if _, ok := newTestGenerator(rng).MouseOnPlatform(moving); ok {
			t.Error("expected no mouse")
		}
		if rng.next != 0 {
			t.Errorf("consumed %d rolls, expected 0", rng.next)
		}
	})

	t.Run("dog patrols its platform", func(t *testing.T) {
		o, ok := newTestGenerator(script(0.1, 0.2)).DogOnPlatform(normal)
		if !ok {
			t.Fatal("expected a dog")
		}
		if o.X != 160 || o.Y != 400 || o.VX != 1.5 {
			t.Errorf("dog = %+v, expected centered at (160, 400) walking right", o)
		}
		if o.WalkMinX != 100 || o.WalkMaxX != 220 {
			t.Errorf("walk bounds = [%v, %v], expected [100, 220]", o.WalkMinX, o.WalkMaxX)
		}
	})

	t.Run("no dog or cactus on springs", func(t *testing.T) {
		g := newTestGenerator(script(0, 0, 0))
		if _, ok := g.DogOnPlatform(spring); ok {
			t.Error("expected no dog")
		}
		if _, ok := g.CactusOnPlatform(spring); ok {
			t.Error("expected no cactus")
		}
	})

	t.Run("cactus", func(t *testing.T) {
		o, ok := newTestGenerator(script(0.12, 0)).CactusOnPlatform(normal)
		if !ok {
			t.Fatal("expected a cactus")
		}
		if o.Type != ObstacleCactus || o.X != 148 || o.Y != 440 {
			t.Errorf("cactus = %+v, expected at (148, 440)", o)
		}
	})

	t.Run("power-ups float above", func(t *testing.T) {
		p, ok := newTestGenerator(script(0, 0.3)).PowerUpOnPlatform(spring)
		if !ok {
			t.Fatal("expected a power-up")
		}
		if p.Type != PowerUpJetpack || p.X != 175 || p.Y != 390 {
			t.Errorf("power-up = %+v, expected jetpack at (175, 390)", p)
		}

		p, _ = newTestGenerator(script(0, 0.7)).PowerUpOnPlatform(normal)
		if p.Type != PowerUpKibble {
			t.Errorf("power-up type = %v, expected kibble", p.Type)
		}

		if _, ok := newTestGenerator(script(0)).PowerUpOnPlatform(moving); ok {
			t.Error("expected no power-up on a moving platform")
		}
	})
}

func TestCleanup(t *testing.T) {
	g := newTestGenerator(script())
	platforms := []Platform{{Y: 1519}, {Y: 1520}, {Y: -300}}

	kept := g.CleanupPlatforms(platforms, -500, 1920)
	if len(kept) != 2 || kept[0].Y != 1519 || kept[1].Y != -300 {
		t.Fatalf("CleanupPlatforms() = %+v, expected y=1519 and y=-300", kept)
	}

	kept[0].Y = 0
	if platforms[0].Y != 1519 {
		t.Error("CleanupPlatforms() must return a fresh slice")
	}

	obstacles := g.CleanupObstacles([]Obstacle{{Y: 2000}}, -500, 1920)
	if len(obstacles) != 0 {
		t.Errorf("CleanupObstacles() kept %d, expected 0", len(obstacles))
	}
	powerUps := g.CleanupPowerUps([]PowerUp{{Y: 0}}, -500, 1920)
	if len(powerUps) != 1 {
		t.Errorf("CleanupPowerUps() kept %d, expected 1", len(powerUps))
	}
}
