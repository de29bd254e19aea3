package components

import "github.com/yohamta/donburi"

// GameStateData holds the score and lives for one run of the level.
// Mutate it only through its methods so the counters stay non-negative.
type GameStateData struct {
	Score          int
	Lives          int
	StartingLives  int
	RestartPending bool
}

func NewGameState(startingLives int) GameStateData {
	return GameStateData{
		Lives:         startingLives,
		StartingLives: startingLives,
	}
}

// AddScore adds a positive reward.
func (g *GameStateData) AddScore(points int) {
	if points > 0 {
		g.Score += points
	}
}

// Hit takes one life. When none remain the counters reset and a restart is
// requested; the return value reports that case.
func (g *GameStateData) Hit() bool {
	if g.Lives > 0 {
		g.Lives--
	}
	if g.Lives > 0 {
		return false
	}
	g.Reset()
	g.RestartPending = true
	return true
}

// Reset restores the starting score and lives.
func (g *GameStateData) Reset() {
	g.Score = 0
	g.Lives = g.StartingLives
}

var GameState = donburi.NewComponentType[GameStateData]()
