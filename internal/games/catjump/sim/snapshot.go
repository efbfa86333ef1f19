package sim

// Snapshot captures the observable outcome of a state for determinism
// testing and replay verification. It is comparable with ==.
type Snapshot struct {
	Tick        uint64
	CurrentTime int64
	Phase       string
	Score       int
	Level       int
	Lives       int
	Eaten       int
	CatX        float64
	CatY        float64
	CatVY       float64
	CameraY     float64
	Platforms   int
	Obstacles   int
	PowerUps    int
	ActiveDogs  int
	Jetpack     bool
	SuperJumps  int
}

// Snapshot returns the state's snapshot.
func (s GameState) Snapshot() Snapshot {
	return Snapshot{
		Tick:        s.Tick,
		CurrentTime: s.CurrentTime,
		Phase:       s.Phase().String(),
		Score:       s.Score,
		Level:       s.Level,
		Lives:       s.Cat.Lives,
		Eaten:       s.Cat.Eaten,
		CatX:        s.Cat.X,
		CatY:        s.Cat.Y,
		CatVY:       s.Cat.VY,
		CameraY:     s.CameraY,
		Platforms:   len(s.Platforms),
		Obstacles:   len(s.Obstacles),
		PowerUps:    len(s.PowerUps),
		ActiveDogs:  s.ActiveDogs,
		Jetpack:     s.Cat.PowerUp.JetpackActive,
		SuperJumps:  s.Cat.PowerUp.SuperJumpsRemaining,
	}
}
