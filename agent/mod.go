package agent

import (
	"snake/experiments/metrics"
	"snake/game"
)

// Agent picks a move for a player on its turn. Implementations share no
// state with one another; everything they need is in the state snapshot.
type Agent interface {
	// FindMove returns a legal move and performance metrics (if collected)
	// from the move finding process.
	FindMove(state game.State, player int) (game.Move, metrics.SearchMetric)
}
