package agent

import (
	"golang.org/x/exp/rand"

	"snake/experiments/metrics"
	"snake/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among the
// legal moves. A fixed seed makes a matchup reproducible.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State, player int) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		return game.MoveUp, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
