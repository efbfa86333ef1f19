package sim

import "testing"

func fallingCat(x, y, w, h, vy float64) Cat {
	return Cat{X: x, Y: y, Width: w, Height: h, VY: vy, Lives: 3}
}

func TestPlatformCollision(t *testing.T) {
	platform := Platform{X: 50, Y: 110, Width: 220, Height: 22, Active: true}

	tests := []struct {
		name string
		cat  Cat
		p    Platform
		want bool
	}{
		{"feet on top while falling", fallingCat(100, 100, 80, 10, 5), platform, true},
		{"feet one fall step below bottom", fallingCat(100, 127, 80, 10, 5), platform, true},
		{"feet past the fall window", fallingCat(100, 128, 80, 10, 5), platform, false},
		{"feet above the platform", fallingCat(100, 99, 80, 10, 5), platform, false},
		{"rising", fallingCat(100, 100, 80, 10, -5), platform, false},
		{"not moving", fallingCat(100, 100, 80, 10, 0), platform, false},
		{"only grazing the left margin", fallingCat(-25, 100, 80, 10, 5), platform, false},
		{"only grazing the right margin", fallingCat(265, 100, 80, 10, 5), platform, false},
		{"inactive platform", fallingCat(100, 100, 80, 10, 5), Platform{X: 50, Y: 110, Width: 220, Height: 22}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlatformCollision(tc.cat, tc.p); got != tc.want {
				t.Errorf("PlatformCollision() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestObstacleCollisionMargins(t *testing.T) {
	cat := fallingCat(0, 0, 120, 120, 0)

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"deep overlap", 60, true},
		{"overlap forgiven by margins", 107, false},
		{"just inside margins", 106, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := Obstacle{X: tc.x, Y: 0, Width: 70, Height: 70, Type: ObstacleBird}
			if got := ObstacleCollision(cat, o); got != tc.want {
				t.Errorf("ObstacleCollision() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestFindDamagingObstacle(t *testing.T) {
	obstacles := []Obstacle{
		{X: 20, Y: 20, Width: 70, Height: 70, Type: ObstacleBird},
		{X: 30, Y: 30, Width: 60, Height: 60, Type: ObstacleCactus},
		{X: 10, Y: 10, Width: 100, Height: 100, Type: ObstacleDog},
	}
	cat := fallingCat(0, 0, 120, 120, 0)

	if got := FindDamagingObstacle(cat, obstacles); got != 1 {
		t.Errorf("FindDamagingObstacle() = %d, expected 1 (first damaging)", got)
	}

	blinking := cat
	blinking.InvincibilityFrames = 5
	if got := FindDamagingObstacle(blinking, obstacles); got != -1 {
		t.Errorf("invincible cat: FindDamagingObstacle() = %d, expected -1", got)
	}

	boosted := cat
	boosted.PowerUp.SuperJumpActive = true
	if got := FindDamagingObstacle(boosted, obstacles); got != -1 {
		t.Errorf("powered-up cat: FindDamagingObstacle() = %d, expected -1", got)
	}

	if got := FindEdibleObstacle(blinking, obstacles); got != 0 {
		t.Errorf("FindEdibleObstacle() = %d, expected 0 regardless of invincibility", got)
	}
}

func TestFindCollidingPlatformAndPowerUp(t *testing.T) {
	cat := fallingCat(100, 100, 80, 10, 5)
	platforms := []Platform{
		{X: 600, Y: 110, Width: 220, Height: 22, Active: true},
		{X: 50, Y: 110, Width: 220, Height: 22, Active: true},
		{X: 60, Y: 112, Width: 220, Height: 22, Active: true},
	}
	if got := FindCollidingPlatform(cat, platforms); got != 1 {
		t.Errorf("FindCollidingPlatform() = %d, expected 1", got)
	}
	if got := FindCollidingPlatform(cat, nil); got != -1 {
		t.Errorf("FindCollidingPlatform(nil) = %d, expected -1", got)
	}

	powerUps := []PowerUp{
		{X: 500, Y: 500, Width: 70, Height: 70},
		{X: 110, Y: 60, Width: 70, Height: 70, Type: PowerUpKibble},
	}
	if got := FindCollidingPowerUp(cat, powerUps); got != 1 {
		t.Errorf("FindCollidingPowerUp() = %d, expected 1", got)
	}
}
