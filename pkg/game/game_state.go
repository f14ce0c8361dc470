package game

// GameState is the run-level tally the viewer and CLI read.
type GameState struct {
	Elapsed             float64 // game seconds simulated
	Frames              uint64
	Kills               int
	ExperienceCollected int
	LevelUps            int
	BossesSpawned       int
	GameOver            bool
}

// NewGameState returns a fresh tally.
func NewGameState() *GameState {
	return &GameState{}
}

// RecordKills adds n kills.
func (gs *GameState) RecordKills(n int) {
	gs.Kills += n
}

// AddExperience adds collected experience.
func (gs *GameState) AddExperience(amount int) {
	if amount > 0 {
		gs.ExperienceCollected += amount
	}
}
