package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"snake/agent"
	"snake/engine"
	"snake/experiments/metrics"
	"snake/game"
	"snake/searcher"
)

const (
	NumGames    = 30 // Per match up
	BoardWidth  = 15
	BoardHeight = 15
	TimeBudget  = 50 * time.Millisecond
)

var budgetConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Budget: 10 * time.Millisecond, Heuristic: "target"},
	{ID: 2, Goroutines: 1, Budget: 25 * time.Millisecond, Heuristic: "target"},
	{ID: 3, Goroutines: 1, Budget: 50 * time.Millisecond, Heuristic: "target"},
	{ID: 4, Goroutines: 1, Budget: 100 * time.Millisecond, Heuristic: "target"},
	{ID: 5, Goroutines: 1, Budget: 250 * time.Millisecond, Heuristic: "target"},
}

// RunBudgetExperiment pairs search agents of increasing time budgets against
// a random baseline to measure how playing strength and completed depth
// scale with thinking time.
func RunBudgetExperiment() {
	baseline := metrics.AgentConfig{ID: 0} // Random agent
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range budgetConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("budget", append(budgetConfigs, baseline), matchUps)
}

// RunHeuristicExperiment pits the target-distance heuristic against the
// opponent-separation heuristic at the same budget.
func RunHeuristicExperiment() {
	target := metrics.AgentConfig{ID: 1, Goroutines: 1, Budget: TimeBudget, Heuristic: "target"}
	separation := metrics.AgentConfig{ID: 2, Goroutines: 1, Budget: TimeBudget, Heuristic: "separation"}

	runExperiment("heuristic", []metrics.AgentConfig{target, separation},
		[][]metrics.AgentConfig{{target, separation}, {separation, target}})
}

// RunParallelismExperiment compares root-level move parallelism against the
// sequential baseline at a fixed budget.
func RunParallelismExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Budget: TimeBudget, Heuristic: "target"}
	parallelConfigs := []metrics.AgentConfig{
		{ID: 1, Goroutines: 2, Budget: TimeBudget, Heuristic: "target"},
		{ID: 2, Goroutines: 4, Budget: TimeBudget, Heuristic: "target"},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("parallelism", append(parallelConfigs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1, config2 := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			count++
			winner, gameMetric, moveMetrics := runGame(config1, config2, uint64(count))

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, moveMetric := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: moveMetric,
				})
			}
			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %d",
				mi+1, len(matchUps), i+1, NumGames, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Fatal().Err(err).Msg("failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to store game records")
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to store move records")
	}
	log.Info().Msg("stored move records")
}

// runGame executes a single game between two agent configs and returns the
// winner alongside the recorded metrics.
func runGame(config1, config2 metrics.AgentConfig, seed uint64) (int, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		createAgent(config1, seed),
		createAgent(config2, seed+1),
	}
	e := engine.LocalEngine(agents, BoardWidth, BoardHeight, seed)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Heuristic == "" {
		return agent.NewRandomAgent(seed)
	}
	return agent.NewSearchAgent(searcher.NewExpectiminimax(config.Goroutines,
		searcher.WithBudget(config.Budget),
		searcher.WithMaxDepth(config.MaxDepth),
		searcher.WithRespawns(config.Respawns),
		searcher.WithEvaluationFn(evaluateByName(config.Heuristic)),
		searcher.WithMetrics(),
	))
}

func evaluateByName(name string) game.Evaluate {
	switch name {
	case "target":
		return game.EvaluateTargetDistance
	case "separation":
		return game.EvaluateSeparation
	default:
		panic(fmt.Sprintf("unknown heuristic %q", name))
	}
}
