package engine

import (
	"log"

	"github.com/lixenwraith/skyfire/constants"
)

// Phase is the session lifecycle state
type Phase int

const (
	PhaseIdle     Phase = iota // fresh session, waiting for start
	PhaseRunning               // simulation advancing
	PhaseGameOver              // lives exhausted, waiting for reset
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// phaseTransitions lists the legal edges of the lifecycle
// Reset is not listed: it rebuilds the state instead of transitioning
var phaseTransitions = map[Phase][]Phase{
	PhaseIdle:     {PhaseRunning},
	PhaseRunning:  {PhaseGameOver},
	PhaseGameOver: {},
}

// CanTransition reports whether from → to is a legal lifecycle edge
func CanTransition(from, to Phase) bool {
	for _, p := range phaseTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// SimulationState is the scoring and lifecycle state of one session
// Mutated only by the collision resolver (RegisterKill/RegisterDamage) and lifecycle signals
type SimulationState struct {
	Phase   Phase
	Elapsed float64 // simulated seconds while running
	Score   int
	Lives   int
	Combo   int
}

// NewSimulationState returns a fresh idle session
func NewSimulationState() SimulationState {
	return SimulationState{
		Phase: PhaseIdle,
		Lives: constants.InitialLives,
	}
}

// Running reports whether the simulation advances on tick
func (s *SimulationState) Running() bool {
	return s.Phase == PhaseRunning
}

// transition moves to the target phase if the edge is legal
func (s *SimulationState) transition(to Phase) bool {
	if !CanTransition(s.Phase, to) {
		return false
	}
	log.Printf("phase %s -> %s (score=%d lives=%d)", s.Phase, to, s.Score, s.Lives)
	s.Phase = to
	return true
}

// RegisterKill bumps the combo (capped) and awards base + floor(combo*1.5)
// Returns the score delta
func (s *SimulationState) RegisterKill(base int) int {
	s.Combo = min(s.Combo+1, constants.MaxCombo)
	delta := base + KillBonus(s.Combo)
	s.Score += delta
	return delta
}

// KillBonus is the combo bonus for a post-increment combo value
func KillBonus(combo int) int {
	return int(float64(combo) * constants.ComboBonusFactor)
}

// RegisterDamage takes one life and clears the combo
// Returns true only on the damage event that ends the session
func (s *SimulationState) RegisterDamage() bool {
	s.Combo = 0
	if s.Lives <= 0 {
		return false
	}
	s.Lives--
	if s.Lives == 0 {
		return s.transition(PhaseGameOver)
	}
	return false
}

// SpawnState is the spawner's countdown and difficulty ramp
type SpawnState struct {
	Timer      float64 // seconds until next spawn, spawns at <= 0
	Difficulty float64
}

// NewSpawnState returns the state of a fresh session: spawn on first tick
func NewSpawnState() SpawnState {
	return SpawnState{
		Timer:      0,
		Difficulty: constants.InitialDifficulty,
	}
}
