package sim

import "github.com/vovakirdan/catjump/internal/config"

// DifficultyManager derives level-dependent generation parameters.
type DifficultyManager struct {
	platforms  config.PlatformConfig
	difficulty config.DifficultyConfig
}

// NewDifficultyManager creates a manager from tunables.
func NewDifficultyManager(cfg config.CatJumpConfig) *DifficultyManager {
	return &DifficultyManager{
		platforms:  cfg.Platforms,
		difficulty: cfg.Difficulty,
	}
}

// CalculateLevel returns the 1-based level for a score.
func (d *DifficultyManager) CalculateLevel(score int) int {
	return score/d.difficulty.PointsPerLevel + 1
}

// MaxPlatformGap returns the largest vertical gap at the given level.
func (d *DifficultyManager) MaxPlatformGap(level int) float64 {
	gap := d.platforms.MaxGap + d.difficulty.MaxGapGrowth*float64(level-1)
	return min(gap, d.difficulty.MaxGapCeiling)
}

// MinPlatformGap returns the smallest vertical gap at the given level.
func (d *DifficultyManager) MinPlatformGap(level int) float64 {
	gap := d.platforms.MinGap + d.difficulty.MinGapGrowth*float64(level-1)
	return min(gap, d.difficulty.MinGapCeiling)
}

// SelectPlatformType picks a platform type from the level's table.
// Exactly one roll is consumed at every level so that the random stream
// does not depend on the level.
func (d *DifficultyManager) SelectPlatformType(level int, rng Rand) PlatformType {
	r := rng.Float64()

	switch {
	case level <= 1:
		return PlatformNormal
	case level == 2:
		switch {
		case r < 0.8:
			return PlatformNormal
		case r < 0.95:
			return PlatformSpring
		default:
			return PlatformMoving
		}
	case level == 3:
		switch {
		case r < 0.6:
			return PlatformNormal
		case r < 0.75:
			return PlatformMoving
		case r < 0.9:
			return PlatformSpring
		default:
			return PlatformFragile
		}
	default:
		switch {
		case r < 0.4:
			return PlatformNormal
		case r < 0.6:
			return PlatformMoving
		case r < 0.8:
			return PlatformFragile
		default:
			return PlatformSpring
		}
	}
}

// ObstacleChance returns the flying obstacle spawn probability at a level.
func (d *DifficultyManager) ObstacleChance(level int) float64 {
	if level < d.difficulty.ObstacleMinLevel {
		return 0
	}
	steps := float64(level - d.difficulty.ObstacleMinLevel + 1)
	return min(steps*d.difficulty.ObstacleStep, d.difficulty.ObstacleMaxChance)
}

// ShouldSpawnObstacle rolls for a flying obstacle.
// Below the first obstacle level no roll is consumed.
func (d *DifficultyManager) ShouldSpawnObstacle(level int, rng Rand) bool {
	if level < d.difficulty.ObstacleMinLevel {
		return false
	}
	return rng.Float64() < d.ObstacleChance(level)
}

// MovingPlatformSpeed returns the horizontal speed of moving platforms.
func (d *DifficultyManager) MovingPlatformSpeed(level int) float64 {
	return d.platforms.MovingSpeed + d.difficulty.SpeedGrowth*float64(level-1)
}
