package sim

// Hit-box margins. The cat's box shrinks more than the creature's so that
// grazing contacts are forgiven.
const (
	landingMargin  = 5.0
	catHitMargin   = 8.0
	thingHitMargin = 5.0
)

// PlatformCollision reports whether the falling cat lands on p this tick.
// The feet must lie between the platform top and one fall step below its
// bottom, and the cat must overlap the platform by more than the margin.
func PlatformCollision(cat Cat, p Platform) bool {
	if !p.Active || cat.VY <= 0 {
		return false
	}

	feet := cat.Bottom()
	vertical := feet >= p.Y && feet <= p.Y+p.Height+cat.VY
	horizontal := cat.Right() > p.X+landingMargin && cat.X < p.Right()-landingMargin

	return vertical && horizontal
}

// ObstacleCollision reports whether the cat touches a creature.
func ObstacleCollision(cat Cat, o Obstacle) bool {
	return cat.Rect().Inset(catHitMargin).Intersects(o.Rect().Inset(thingHitMargin))
}

// PowerUpCollision reports whether the cat touches a power-up.
func PowerUpCollision(cat Cat, p PowerUp) bool {
	return cat.Rect().Inset(thingHitMargin).Intersects(p.Rect().Inset(thingHitMargin))
}

// FindDamagingObstacle returns the index of the first cactus or dog the cat
// touches, or -1. An invincible cat touches nothing harmful.
func FindDamagingObstacle(cat Cat, obstacles []Obstacle) int {
	if cat.IsInvincible() {
		return -1
	}
	for i, o := range obstacles {
		if o.Damaging() && ObstacleCollision(cat, o) {
			return i
		}
	}
	return -1
}

// FindEdibleObstacle returns the index of the first bird, bat or mouse the
// cat touches, or -1.
func FindEdibleObstacle(cat Cat, obstacles []Obstacle) int {
	for i, o := range obstacles {
		if o.Edible() && ObstacleCollision(cat, o) {
			return i
		}
	}
	return -1
}

// FindCollidingPlatform returns the index of the first platform the cat
// lands on, or -1.
func FindCollidingPlatform(cat Cat, platforms []Platform) int {
	for i, p := range platforms {
		if PlatformCollision(cat, p) {
			return i
		}
	}
	return -1
}

// FindCollidingPowerUp returns the index of the first power-up the cat
// touches, or -1.
func FindCollidingPowerUp(cat Cat, powerUps []PowerUp) int {
	for i, p := range powerUps {
		if PowerUpCollision(cat, p) {
			return i
		}
	}
	return -1
}
