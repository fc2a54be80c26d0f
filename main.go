package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"snake/agent"
	"snake/engine"
	"snake/experiments"
	"snake/game"
	"snake/searcher"
)

func main() {
	mode := flag.String("mode", "game", "game or one of the experiments: budget, heuristic, parallelism")
	width := flag.Int("width", 15, "board width")
	height := flag.Int("height", 15, "board height")
	players := flag.Int("players", 2, "number of players")
	budget := flag.Duration("budget", 100*time.Millisecond, "time budget per move")
	goroutines := flag.Int("goroutines", 1, "goroutines for parallel root move evaluation")
	seed := flag.Uint64("seed", 1, "seed for target respawns and the random baseline")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *mode {
	case "game":
		runGame(*width, *height, *players, *budget, *goroutines, *seed)
	case "budget":
		experiments.RunBudgetExperiment()
	case "heuristic":
		experiments.RunHeuristicExperiment()
	case "parallelism":
		experiments.RunParallelismExperiment()
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// runGame plays a random baseline in seat 0 and search agents in the rest.
func runGame(width, height, players int, budget time.Duration, goroutines int, seed uint64) {
	agents := []agent.Agent{agent.NewRandomAgent(seed)}
	for i := 1; i < players; i++ {
		agents = append(agents, agent.NewSearchAgent(searcher.NewExpectiminimax(goroutines,
			searcher.WithBudget(budget),
			searcher.WithEvaluationFn(game.EvaluateTargetDistance),
			searcher.WithMetrics(),
		)))
	}

	e := engine.LocalEngine(agents, width, height, seed)
	winner, gameMetric, _ := e.Run()
	log.Info().Msgf("winner: %d after %d moves in %s", winner, gameMetric.TotalMoves, gameMetric.Duration)
}
