package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/catjump/internal/config"
)

// scriptedRand replays fixed rolls, then repeats fallback.
type scriptedRand struct {
	rolls    []float64
	next     int
	fallback float64
}

func script(rolls ...float64) *scriptedRand {
	return &scriptedRand{rolls: rolls, fallback: 0.99}
}

func (r *scriptedRand) Float64() float64 {
	if r.next < len(r.rolls) {
		v := r.rolls[r.next]
		r.next++
		return v
	}
	return r.fallback
}

func newTestDifficulty() *DifficultyManager {
	return NewDifficultyManager(config.DefaultCatJumpConfig())
}

func TestCalculateLevel(t *testing.T) {
	d := newTestDifficulty()
	tests := []struct {
		score, level int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{2500, 3},
		{10000, 11},
	}
	for _, tc := range tests {
		if got := d.CalculateLevel(tc.score); got != tc.level {
			t.Errorf("CalculateLevel(%d) = %d, expected %d", tc.score, got, tc.level)
		}
	}
}

func TestPlatformGaps(t *testing.T) {
	d := newTestDifficulty()
	tests := []struct {
		level    int
		min, max float64
	}{
		{1, 100, 160},
		{2, 100, 168},
		{3, 100, 176},
		{10, 100, 180},
	}
	for _, tc := range tests {
		if got := d.MinPlatformGap(tc.level); got != tc.min {
			t.Errorf("MinPlatformGap(%d) = %v, expected %v", tc.level, got, tc.min)
		}
		if got := d.MaxPlatformGap(tc.level); got != tc.max {
			t.Errorf("MaxPlatformGap(%d) = %v, expected %v", tc.level, got, tc.max)
		}
	}
}

func TestSelectPlatformType(t *testing.T) {
	d := newTestDifficulty()
	tests := []struct {
		level int
		roll  float64
		want  PlatformType
	}{
		{1, 0.99, PlatformNormal},
		{2, 0.79, PlatformNormal},
		{2, 0.80, PlatformSpring},
		{2, 0.95, PlatformMoving},
		{3, 0.59, PlatformNormal},
		{3, 0.60, PlatformMoving},
		{3, 0.75, PlatformSpring},
		{3, 0.90, PlatformFragile},
		{4, 0.39, PlatformNormal},
		{4, 0.40, PlatformMoving},
		{4, 0.60, PlatformFragile},
		{7, 0.80, PlatformSpring},
	}
	for _, tc := range tests {
		rng := script(tc.roll)
		if got := d.SelectPlatformType(tc.level, rng); got != tc.want {
			t.Errorf("SelectPlatformType(%d, %.2f) = %v, expected %v", tc.level, tc.roll, got, tc.want)
		}
		if rng.next != 1 {
			t.Errorf("SelectPlatformType(%d) consumed %d rolls, expected 1", tc.level, rng.next)
		}
	}
}

func TestShouldSpawnObstacle(t *testing.T) {
	d := newTestDifficulty()

	t.Run("no roll below level 3", func(t *testing.T) {
		rng := script(0)
		if d.ShouldSpawnObstacle(2, rng) {
			t.Error("level 2 should never spawn obstacles")
		}
		if rng.next != 0 {
			t.Errorf("consumed %d rolls, expected 0", rng.next)
		}
	})

	tests := []struct {
		level int
		roll  float64
		want  bool
	}{
		{3, 0.049, true},
		{3, 0.05, false},
		{4, 0.099, true},
		{4, 0.10, false},
		{12, 0.149, true},
		{12, 0.15, false},
	}
	for _, tc := range tests {
		if got := d.ShouldSpawnObstacle(tc.level, script(tc.roll)); got != tc.want {
			t.Errorf("ShouldSpawnObstacle(%d, %.3f) = %v, expected %v", tc.level, tc.roll, got, tc.want)
		}
	}
}

func TestMovingPlatformSpeed(t *testing.T) {
	d := newTestDifficulty()
	tests := []struct {
		level int
		want  float64
	}{
		{1, 2.5},
		{2, 2.8},
		{5, 3.7},
	}
	for _, tc := range tests {
		if got := d.MovingPlatformSpeed(tc.level); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("MovingPlatformSpeed(%d) = %v, expected %v", tc.level, got, tc.want)
		}
	}
}
