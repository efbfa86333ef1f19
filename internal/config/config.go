// Package config provides YAML-based tunables loading and difficulty presets
// for the cat jump game.
package config

// CatJumpConfig contains every tunable of the simulation.
// Distances are in world pixels, speeds in pixels per tick, times in milliseconds.
type CatJumpConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Creatures  CreatureConfig   `yaml:"creatures"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Cat        CatConfig        `yaml:"cat"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Controls   ControlsConfig   `yaml:"controls"`
}

// WorldConfig defines the virtual playfield the simulation runs in.
// Terminal hosts scale it down to character cells.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FrameTimeMS int64   `yaml:"frame_time_ms"`
}

// PhysicsConfig defines the cat's motion parameters.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	JumpVelocity       float64 `yaml:"jump_velocity"`
	SpringJumpVelocity float64 `yaml:"spring_jump_velocity"`
	HorizontalSpeed    float64 `yaml:"horizontal_speed"`
	MaxFallVelocity    float64 `yaml:"max_fall_velocity"`
	ReachSafetyFactor  float64 `yaml:"reach_safety_factor"`
}

// PlatformConfig defines platform geometry and gap ranges.
type PlatformConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MinGap       float64 `yaml:"min_gap"`
	MaxGap       float64 `yaml:"max_gap"`
	MovingSpeed  float64 `yaml:"moving_speed"`
	StartOffset  float64 `yaml:"start_offset"`  // Distance of the first platform above the bottom edge
	LookAhead    float64 `yaml:"look_ahead"`    // Generate when the highest platform is within this of the camera top
	CleanupBelow float64 `yaml:"cleanup_below"` // Drop entities this far below the visible area
}

// CreatureConfig defines obstacle sizes, speeds and spawn chances.
type CreatureConfig struct {
	ObstacleSize   float64 `yaml:"obstacle_size"`
	ObstacleSpeed  float64 `yaml:"obstacle_speed"`
	FlyingLift     float64 `yaml:"flying_lift"` // Flying obstacles hover this far above their platform
	MouseSize      float64 `yaml:"mouse_size"`
	MouseChance    float64 `yaml:"mouse_chance"`
	DogSize        float64 `yaml:"dog_size"`
	DogChance      float64 `yaml:"dog_chance"`
	DogWalkSpeed   float64 `yaml:"dog_walk_speed"`
	CactusSize     float64 `yaml:"cactus_size"`
	CactusChance   float64 `yaml:"cactus_chance"`
	MinDamagingGap int     `yaml:"min_damaging_gap"` // Platforms between consecutive dog/cactus spawns
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	Size                float64 `yaml:"size"`
	Chance              float64 `yaml:"chance"`
	Float               float64 `yaml:"float"` // Hover distance above the platform
	JetpackBoost        float64 `yaml:"jetpack_boost"`
	JetpackDurationMS   int64   `yaml:"jetpack_duration_ms"`
	SuperJumpVelocity   float64 `yaml:"super_jump_velocity"`
	SuperJumpCount      int     `yaml:"super_jump_count"`
	SuperJumpDurationMS int64   `yaml:"super_jump_duration_ms"`
}

// CatConfig defines the player character.
type CatConfig struct {
	Size                float64 `yaml:"size"`
	InitialLives        int     `yaml:"initial_lives"`
	MaxLives            int     `yaml:"max_lives"`
	InvincibilityFrames int     `yaml:"invincibility_frames"`
	FatnessPerMeal      float64 `yaml:"fatness_per_meal"`
	MaxFatness          float64 `yaml:"max_fatness"`
	MealsPerLife        int     `yaml:"meals_per_life"`
}

// DifficultyConfig defines level progression.
type DifficultyConfig struct {
	PointsPerLevel    int     `yaml:"points_per_level"`
	MaxGapGrowth      float64 `yaml:"max_gap_growth"` // Added to max gap per level
	MaxGapCeiling     float64 `yaml:"max_gap_ceiling"`
	MinGapGrowth      float64 `yaml:"min_gap_growth"`
	MinGapCeiling     float64 `yaml:"min_gap_ceiling"`
	SpeedGrowth       float64 `yaml:"speed_growth"` // Moving platform speed added per level
	ObstacleMinLevel  int     `yaml:"obstacle_min_level"`
	ObstacleStep      float64 `yaml:"obstacle_step"`
	ObstacleMaxChance float64 `yaml:"obstacle_max_chance"`
	BatMinLevel       int     `yaml:"bat_min_level"`
}

// ControlsConfig defines host-side input handling.
type ControlsConfig struct {
	// HoldTicks is how long a move key stays pressed without a repeat.
	// Terminals report key presses only, never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// hazardScaleForPreset returns the multiplier applied to hazard spawn chances.
func hazardScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}
