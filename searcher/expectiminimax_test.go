package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"snake/game"
)

// openState builds a 7x7 board with two single-cell players and the target
// well away from both.
func openState() *game.GameState {
	return &game.GameState{
		Width:  7,
		Height: 7,
		Players: []game.Player{
			{Body: []game.Cell{{X: 1, Y: 3}}, Alive: true, Heading: game.MoveRight},
			{Body: []game.Cell{{X: 5, Y: 3}}, Alive: true, Heading: game.MoveLeft},
		},
		Target: game.Cell{X: 3, Y: 0},
	}
}

func TestFindMoveReturnsLegalMove(t *testing.T) {
	state := openState()
	legal := state.LegalMoves(0)

	for depth := 1; depth <= 4; depth++ {
		e := NewExpectiminimax(1,
			WithBudget(time.Second),
			WithMaxDepth(depth),
		)

		move, metric := e.FindMove(state, 0)

		require.Contains(t, legal, move, "Depth %d search should return a legal move", depth)
		require.Zero(t, metric.Nodes, "Metrics should stay off without a collector")
	}
}

func TestFindMoveIsIdempotent(t *testing.T) {
	state := openState()
	e := NewExpectiminimax(1, WithBudget(time.Second), WithMaxDepth(3))

	first, _ := e.FindMove(state, 0)
	second, _ := e.FindMove(state, 0)

	require.Equal(t, first, second, "Same state and depth should pick the same move")
}

func TestFindMoveExpiredBudget(t *testing.T) {
	state := openState()
	e := NewExpectiminimax(1, WithBudget(time.Nanosecond), WithMetrics())

	move, metric := e.FindMove(state, 0)

	require.Equal(t, state.LegalMoves(0)[0], move, "With no completed pass the first legal move stands")
	require.Zero(t, metric.Depth, "No depth pass should have completed")
}

func TestFindMoveDepthGrowsWithBudget(t *testing.T) {
	state := openState()

	short := NewExpectiminimax(1, WithBudget(time.Nanosecond), WithMetrics())
	long := NewExpectiminimax(1, WithBudget(500*time.Millisecond), WithMaxDepth(2), WithMetrics())

	_, shortMetric := short.FindMove(state, 0)
	_, longMetric := long.FindMove(state, 0)

	require.Zero(t, shortMetric.Depth, "An expired budget completes nothing")
	require.Greater(t, longMetric.Depth, shortMetric.Depth, "A real budget should complete at least depth one")
	require.Positive(t, longMetric.Nodes, "A completed pass should have expanded nodes")
}

func TestExpandAveragesChanceOutcomes(t *testing.T) {
	// Player 0 one move from the target: playing right opens a chance node.
	state := openState()
	state.Target = game.Cell{X: 2, Y: 3}
	require.True(t, state.WillScore(0, game.MoveRight), "Fixture should be one move from scoring")

	e := NewExpectiminimax(1, WithBudget(time.Minute), WithRespawns(3))
	deadline := time.Now().Add(time.Minute)

	got := e.expand(state, 0, game.MoveRight, 0, 1, deadline)

	// The same enumeration the searcher branches into, averaged by hand.
	successors := state.Play(0, game.MoveRight).Respawns(3)
	require.Len(t, successors, 3, "Scoring should fan out into the respawn outcomes")
	vectors := make([]UtilityVector, len(successors))
	for i, s := range successors {
		vectors[i] = e.utilities(s)
	}

	require.Equal(t, Mean(vectors), got, "Chance node should average the outcome vectors elementwise")
}

func TestEvaluateStateTrappedPlayer(t *testing.T) {
	// Player 0 boxed into the corner by player 1's trail.
	state := &game.GameState{
		Width:  5,
		Height: 5,
		Players: []game.Player{
			{Body: []game.Cell{{X: 0, Y: 0}}, Alive: true, Heading: game.MoveLeft},
			{Body: []game.Cell{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, Alive: true, Heading: game.MoveUp},
		},
		Target: game.Cell{X: 4, Y: 4},
	}
	require.Empty(t, state.LegalMoves(0), "Fixture should trap player 0")

	e := NewExpectiminimax(1, WithBudget(time.Minute))
	deadline := time.Now().Add(time.Minute)

	got := e.evaluateState(state, 0, 0, 5, deadline)

	require.Equal(t, e.utilities(state), got, "A trapped player's position is scored as it stands")
}

func TestEvaluateStateExpiredDeadline(t *testing.T) {
	state := openState()
	e := NewExpectiminimax(1)

	got := e.evaluateState(state, 0, 0, 5, time.Now().Add(-time.Second))

	require.Nil(t, got, "An expired branch must return no result")
}

func TestFindMoveSurvivor(t *testing.T) {
	state := openState()
	state.Players[1].Alive = false
	state.Players[1].Body = nil
	require.True(t, state.IsGameOver(), "Fixture should already be won")

	e := NewExpectiminimax(1, WithBudget(50*time.Millisecond), WithMaxDepth(4))

	move, _ := e.FindMove(state, 0)

	require.Contains(t, state.LegalMoves(0), move, "Survivor should still get a legal move")
}

func TestFindMoveParallelMatchesSequential(t *testing.T) {
	state := openState()

	sequential := NewExpectiminimax(1, WithBudget(time.Second), WithMaxDepth(3))
	parallel := NewExpectiminimax(4, WithBudget(time.Second), WithMaxDepth(3))

	wantMove, _ := sequential.FindMove(state, 0)
	gotMove, _ := parallel.FindMove(state, 0)

	require.Equal(t, wantMove, gotMove, "Root parallelism must not change the chosen move")
}
