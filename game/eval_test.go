package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateTargetDistance(t *testing.T) {
	t.Run("dead player gets the loss sentinel", func(t *testing.T) {
		gs := twoPlayerState()
		gs.Players[0].Alive = false
		gs.Players[0].Body = nil

		require.Equal(t, LossUtility, EvaluateTargetDistance(gs, 0), "Dead player should score the loss sentinel")
	})

	t.Run("sole survivor gets the win sentinel", func(t *testing.T) {
		gs := twoPlayerState()
		gs.Players[1].Alive = false
		gs.Players[1].Body = nil

		require.Equal(t, WinUtility, EvaluateTargetDistance(gs, 0), "Winner should score the win sentinel")
		require.Less(t, EvaluateTargetDistance(gs, 1), WinUtility, "Non-winner should score below the win sentinel")
	})

	t.Run("imminent score beats plain proximity", func(t *testing.T) {
		imminent := twoPlayerState()
		imminent.Target = Cell{X: 2, Y: 2} // One move from player 0's head

		distant := twoPlayerState()
		distant.Target = Cell{X: 2, Y: 4}

		got := EvaluateTargetDistance(imminent, 0)
		require.Equal(t, float64(imminent.Width+imminent.Height+1), got, "Imminent score should be worth the bonus")
		require.Greater(t, got, EvaluateTargetDistance(distant, 0), "Bonus should dominate any distance value")
		require.Greater(t, got, -1.0, "Bonus should exceed a non-scoring value at distance one")
	})

	t.Run("otherwise the negated distance to the target", func(t *testing.T) {
		gs := twoPlayerState()
		gs.Target = Cell{X: 4, Y: 0}

		require.Equal(t, -5.0, EvaluateTargetDistance(gs, 0), "Should be the negated Manhattan distance")
	})

	t.Run("total on a claimed-target state", func(t *testing.T) {
		gs := twoPlayerState()
		gs.TargetClaimed = true

		got := EvaluateTargetDistance(gs, 0)
		require.False(t, math.IsNaN(got), "Evaluation must be defined for every reachable state")
		require.Equal(t, float64(gs.Width+gs.Height+1), got, "Just-scored position is worth the bonus")
	})
}

func TestEvaluateSeparation(t *testing.T) {
	t.Run("sums distances to living opponents", func(t *testing.T) {
		gs := &GameState{
			Width: 7, Height: 7,
			Players: []Player{
				{Body: []Cell{{X: 0, Y: 0}}, Alive: true},
				{Body: []Cell{{X: 3, Y: 0}}, Alive: true},
				{Body: []Cell{{X: 0, Y: 4}}, Alive: true},
			},
			Target: Cell{X: 6, Y: 6},
		}

		require.Equal(t, 7.0, EvaluateSeparation(gs, 0), "Should sum Manhattan distances to both rivals")
	})

	t.Run("keeps the terminal sentinels", func(t *testing.T) {
		gs := twoPlayerState()
		gs.Players[1].Alive = false
		gs.Players[1].Body = nil

		require.Equal(t, WinUtility, EvaluateSeparation(gs, 0), "Winner should score the win sentinel")
		require.Equal(t, LossUtility, EvaluateSeparation(gs, 1), "Dead player should score the loss sentinel")
	})
}
