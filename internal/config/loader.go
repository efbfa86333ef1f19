package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "catjump.yaml"

// Load loads the cat jump tunables.
// Search order: customPath -> ~/.catjump/configs/catjump.yaml -> ./configs/catjump.yaml -> embedded default
//
// Files are decoded over DefaultCatJumpConfig, so a partial file only
// overrides the keys it names.
func Load(customPath string) (CatJumpConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCatJumpConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultCatJumpConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCatJumpYAML)
	if err != nil {
		return DefaultCatJumpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML tunables on top of the built-in defaults and validates them.
func Parse(data []byte) (CatJumpConfig, error) {
	cfg := DefaultCatJumpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects tunables the simulation cannot run with.
func (c CatJumpConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.FrameTimeMS <= 0:
		return fmt.Errorf("config: frame_time_ms must be positive, got %d", c.World.FrameTimeMS)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.JumpVelocity >= 0:
		return fmt.Errorf("config: jump_velocity must be negative (upward), got %v", c.Physics.JumpVelocity)
	case c.Physics.HorizontalSpeed <= 0:
		return fmt.Errorf("config: horizontal_speed must be positive, got %v", c.Physics.HorizontalSpeed)
	case c.Platforms.MinGap > c.Platforms.MaxGap:
		return fmt.Errorf("config: min_gap %v exceeds max_gap %v", c.Platforms.MinGap, c.Platforms.MaxGap)
	case c.Platforms.Width <= 0 || c.Platforms.Width > c.World.Width:
		return fmt.Errorf("config: platform width %v does not fit world width %v", c.Platforms.Width, c.World.Width)
	case c.Difficulty.PointsPerLevel <= 0:
		return fmt.Errorf("config: points_per_level must be positive, got %d", c.Difficulty.PointsPerLevel)
	case c.Cat.MaxLives < c.Cat.InitialLives:
		return fmt.Errorf("config: max_lives %d below initial_lives %d", c.Cat.MaxLives, c.Cat.InitialLives)
	case c.Cat.Size <= 0:
		return fmt.Errorf("config: cat size must be positive, got %v", c.Cat.Size)
	case c.Cat.MealsPerLife <= 0:
		return fmt.Errorf("config: meals_per_life must be positive, got %d", c.Cat.MealsPerLife)
	case c.PowerUps.SuperJumpCount <= 0:
		return fmt.Errorf("config: super_jump_count must be positive, got %d", c.PowerUps.SuperJumpCount)
	case c.Controls.HoldTicks <= 0:
		return fmt.Errorf("config: hold_ticks must be positive, got %d", c.Controls.HoldTicks)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catjump", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Hazard spawn chances scale with the preset; hard also tightens hazard spacing.
func ApplyPreset(cfg *CatJumpConfig, preset DifficultyPreset) {
	scale := hazardScaleForPreset(preset)
	cfg.Creatures.DogChance = clampChance(cfg.Creatures.DogChance * scale)
	cfg.Creatures.CactusChance = clampChance(cfg.Creatures.CactusChance * scale)
	cfg.Difficulty.ObstacleMaxChance = clampChance(cfg.Difficulty.ObstacleMaxChance * scale)

	switch preset {
	case DifficultyEasy:
		cfg.Creatures.MinDamagingGap++
		cfg.PowerUps.Chance = clampChance(cfg.PowerUps.Chance * 1.5)
	case DifficultyHard:
		if cfg.Creatures.MinDamagingGap > 1 {
			cfg.Creatures.MinDamagingGap--
		}
	}
}

func clampChance(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
