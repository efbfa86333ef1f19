package core

import "time"

// DefaultTickInterval matches the simulation's fixed frame time.
const DefaultTickInterval = 12 * time.Millisecond

// RuntimeConfig is what a host hands a game on Reset.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Wall-clock time between simulation ticks
	Seed         int64         // RNG seed; hosts replace 0 with the clock
	HighScore    int           // Best persisted score, used for the new-record flag
}

// GameState summarises a run for the host.
type GameState struct {
	Score        int
	HighScore    int // Best score known at the start of the run
	Level        int
	Lives        int
	NewHighScore bool // Score beat HighScore during this run
	GameOver     bool
	Paused       bool
}

// StepResult is what one Game.Step reports.
type StepResult struct {
	State  GameState
	Events []string // Sound events raised this tick
}
