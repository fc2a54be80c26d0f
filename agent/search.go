package agent

import (
	"snake/experiments/metrics"
	"snake/game"
	"snake/searcher"
)

type searchAgent struct {
	search *searcher.Expectiminimax
}

// NewSearchAgent returns an agent backed by the iterative-deepening
// expectiminimax searcher.
func NewSearchAgent(search *searcher.Expectiminimax) Agent {
	return searchAgent{search: search}
}

func (a searchAgent) FindMove(state game.State, player int) (game.Move, metrics.SearchMetric) {
	return a.search.FindMove(state, player)
}
