package engine

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"snake/agent"
	"snake/experiments/metrics"
	"snake/game"
	"snake/utils"
)

type localEngine struct {
	state  *game.GameState
	agents []agent.Agent
	rng    *rand.Rand
}

// LocalEngine runs a full game between the given agents on one machine,
// player i played by agents[i]. The seed drives the real target respawns
// (the searcher's hypothetical ones stay deterministic).
func LocalEngine(agents []agent.Agent, width, height int, seed uint64) Engine {
	if len(agents) < 2 {
		panic("need at least two agents")
	}

	return &localEngine{
		state:  game.NewGameState(width, height, len(agents)),
		agents: agents,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Run executes the entire game loop until a winner is found or the turn cap
// is reached. Each turn the engine asks the current player's agent for a
// move, applies it, respawns the target if it was claimed, and passes the
// turn to the next living player.
func (e *localEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	current := 0
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("player %d is starting", current)

	turn := 1
	for ; !e.state.IsGameOver() && turn <= MaxTurns; turn++ {
		legalMoves := e.state.LegalMoves(current)
		if len(legalMoves) == 0 {
			// Trapped players die in place; their trail clears the board.
			log.Info().Msgf("turn %d: player %d is trapped", turn, current)
			e.state = e.kill(current)
			if e.state.IsGameOver() {
				break
			}
			current = e.state.NextAlivePlayer(current)
			continue
		}

		move, searchMetric := e.agents[current].FindMove(e.state, current)
		if utils.FindIndex(legalMoves, move) == -1 {
			log.Warn().Msgf("turn %d: player %d returned illegal move %s, falling back to %s",
				turn, current, move, legalMoves[0])
			move = legalMoves[0]
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       current,
			SearchMetric: searchMetric,
		})

		e.state = e.state.Play(current, move).(*game.GameState)
		if e.state.TargetClaimed {
			log.Info().Msgf("turn %d: player %d scored", turn, current)
			e.state = e.state.ChooseNextTarget(e.rng)
		}

		if e.state.IsGameOver() {
			break
		}
		current = e.state.NextAlivePlayer(current)
	}

	winner := e.state.Winner()
	if winner != -1 {
		log.Info().Msgf("game over after %d turns, player %d wins", turn, winner)
	} else {
		log.Info().Msgf("game stopped after %d turns without a winner", turn)
	}

	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: 0,
		Winner:         winner,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     len(moveMetrics),
	}
	return winner, gameMetric, moveMetrics
}

// kill marks a player dead via an (illegal) forced move, reusing the
// transition's death handling.
func (e *localEngine) kill(player int) *game.GameState {
	return e.state.Play(player, e.state.Players[player].Heading).(*game.GameState)
}
