package config

import (
	_ "embed"
)

//go:embed defaults/catjump.yaml
var defaultCatJumpYAML []byte

// DefaultCatJumpConfig returns the built-in tunables.
func DefaultCatJumpConfig() CatJumpConfig {
	return CatJumpConfig{
		World: WorldConfig{
			Width:       1080,
			Height:      1920,
			FrameTimeMS: 12,
		},
		Physics: PhysicsConfig{
			Gravity:            0.5,
			JumpVelocity:       -22,
			SpringJumpVelocity: -30,
			HorizontalSpeed:    12,
			MaxFallVelocity:    18,
			ReachSafetyFactor:  0.6,
		},
		Platforms: PlatformConfig{
			Width:        220,
			Height:       22,
			MinGap:       100,
			MaxGap:       160,
			MovingSpeed:  2.5,
			StartOffset:  200,
			LookAhead:    200,
			CleanupBelow: 100,
		},
		Creatures: CreatureConfig{
			ObstacleSize:   70,
			ObstacleSpeed:  4,
			FlyingLift:     60,
			MouseSize:      50,
			MouseChance:    0.15,
			DogSize:        100,
			DogChance:      0.18,
			DogWalkSpeed:   1.5,
			CactusSize:     60,
			CactusChance:   0.12,
			MinDamagingGap: 3,
		},
		PowerUps: PowerUpConfig{
			Size:                70,
			Chance:              0.08,
			Float:               40,
			JetpackBoost:        -40,
			JetpackDurationMS:   2500,
			SuperJumpVelocity:   -35,
			SuperJumpCount:      3,
			SuperJumpDurationMS: 8000,
		},
		Cat: CatConfig{
			Size:                120,
			InitialLives:        3,
			MaxLives:            3,
			InvincibilityFrames: 60,
			FatnessPerMeal:      0.1,
			MaxFatness:          1,
			MealsPerLife:        5,
		},
		Difficulty: DifficultyConfig{
			PointsPerLevel:    1000,
			MaxGapGrowth:      8,
			MaxGapCeiling:     180,
			MinGapGrowth:      5,
			MinGapCeiling:     100,
			SpeedGrowth:       0.3,
			ObstacleMinLevel:  3,
			ObstacleStep:      0.05,
			ObstacleMaxChance: 0.15,
			BatMinLevel:       4,
		},
		Controls: ControlsConfig{
			HoldTicks: 10,
		},
	}
}

// DefaultYAML returns the embedded default tunables file.
func DefaultYAML() []byte {
	return defaultCatJumpYAML
}
