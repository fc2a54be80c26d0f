package metrics

import "time"

// AgentConfig identifies one searcher parameterization under test.
// Heuristic names a game.Evaluate strategy ("target" or "separation");
// empty means the agent plays randomly.
type AgentConfig struct {
	ID         int
	Goroutines int
	Budget     time.Duration
	MaxDepth   int
	Respawns   int
	Heuristic  string
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
