package engine

import "snake/experiments/metrics"

// MaxTurns caps a game so two agents circling each other forever still
// terminate; such a game records no winner.
const MaxTurns = 10000

type Engine interface {
	// Run starts a game till there's a winner or the turn cap is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
