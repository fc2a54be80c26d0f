package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"snake/agent"
	"snake/searcher"
)

func TestLocalEngineRandomGame(t *testing.T) {
	agents := []agent.Agent{
		agent.NewRandomAgent(1),
		agent.NewRandomAgent(2),
	}

	winner, gameMetric, moveMetrics := LocalEngine(agents, 7, 7, 3).Run()

	require.Contains(t, []int{-1, 0, 1}, winner, "Winner should be a player index or -1")
	require.Equal(t, winner, gameMetric.Winner, "Game metric should record the winner")
	require.NotEmpty(t, moveMetrics, "At least one move should be recorded")
	require.LessOrEqual(t, gameMetric.TotalMoves, MaxTurns, "Game should respect the turn cap")
	require.Equal(t, len(moveMetrics), gameMetric.TotalMoves, "Move count should match the records")
}

func TestLocalEngineSearchAgentGame(t *testing.T) {
	search := searcher.NewExpectiminimax(1,
		searcher.WithBudget(20*time.Millisecond),
		searcher.WithMaxDepth(4),
		searcher.WithMetrics(),
	)
	agents := []agent.Agent{
		agent.NewSearchAgent(search),
		agent.NewRandomAgent(7),
	}

	winner, _, moveMetrics := LocalEngine(agents, 5, 5, 11).Run()

	require.Contains(t, []int{-1, 0, 1}, winner, "Winner should be a player index or -1")
	searched := false
	for _, m := range moveMetrics {
		if m.Player == 0 && m.Nodes > 0 {
			searched = true
			break
		}
	}
	require.True(t, searched, "The search agent should have expanded nodes on its turns")
}

func TestLocalEngineRepeatableWithSeed(t *testing.T) {
	run := func() (int, int) {
		agents := []agent.Agent{
			agent.NewRandomAgent(5),
			agent.NewRandomAgent(6),
		}
		winner, gameMetric, _ := LocalEngine(agents, 7, 7, 9).Run()
		return winner, gameMetric.TotalMoves
	}

	winner1, moves1 := run()
	winner2, moves2 := run()

	require.Equal(t, winner1, winner2, "Seeded games should replay identically")
	require.Equal(t, moves1, moves2, "Seeded games should replay identically")
}

func TestLocalEngineNeedsTwoAgents(t *testing.T) {
	require.Panics(t, func() {
		LocalEngine([]agent.Agent{agent.NewRandomAgent(1)}, 7, 7, 1)
	}, "A single agent is not a game")
}
