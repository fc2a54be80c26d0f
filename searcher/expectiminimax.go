package searcher

import (
	"sync"
	"time"

	"snake/experiments/metrics"
	"snake/game"
)

// Hyperparameters for the search

// MaxDepth caps iterative deepening so a trivially terminal position does
// not spin millions of no-op passes inside the time budget.
const MaxDepth = 64

// DefaultRespawns is the number of hypothetical target placements branched
// into at a chance node.
const DefaultRespawns = 5

const defaultBudget = 100 * time.Millisecond

type Option func(e *Expectiminimax)

func WithBudget(budget time.Duration) Option {
	return func(e *Expectiminimax) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(e *Expectiminimax) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

func WithRespawns(k int) Option {
	return func(e *Expectiminimax) {
		if k > 0 {
			e.respawns = k
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Expectiminimax) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(e *Expectiminimax) {
		e.metrics = metrics.NewCollector()
	}
}

// Expectiminimax is a time-bounded iterative-deepening searcher over the
// game tree: it maximizes the acting player's own utility coordinate at
// decision nodes and averages over target respawns at chance nodes.
type Expectiminimax struct {
	goroutines int
	budget     time.Duration
	maxDepth   int
	respawns   int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func NewExpectiminimax(goroutines int, options ...Option) *Expectiminimax {
	e := &Expectiminimax{ // Default values
		goroutines: goroutines,
		budget:     defaultBudget,
		maxDepth:   MaxDepth,
		respawns:   DefaultRespawns,
		evaluate:   game.EvaluateTargetDistance,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.goroutines < 1 {
		e.goroutines = 1
	}
	return e
}

// FindMove runs depth-limited passes at increasing depth limits until the
// time budget expires and returns the move chosen by the deepest pass that
// completed. An interrupted pass is discarded; with no completed pass the
// first legal move stands. The caller must not ask a player without legal
// moves for one.
func (e *Expectiminimax) FindMove(state game.State, player int) (game.Move, metrics.SearchMetric) {
	deadline := time.Now().Add(e.budget)
	e.metrics.Start(e.goroutines, e.budget)

	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		return game.MoveUp, e.metrics.Complete()
	}

	best := moves[0]
	for limit := 1; limit <= e.maxDepth && time.Now().Before(deadline); limit++ {
		move, completed := e.searchRoot(state, player, moves, limit, deadline)
		if !completed {
			break
		}
		best = move
		e.metrics.SetDepth(limit)
	}
	return best, e.metrics.Complete()
}

// searchRoot runs one full depth-limited pass over the player's legal moves.
// Root moves are independent once played (states are copies), so they are
// fanned out over the configured number of goroutines.
func (e *Expectiminimax) searchRoot(state game.State, player int, moves []game.Move, depthLimit int, deadline time.Time) (game.Move, bool) {
	results := make([]UtilityVector, len(moves))

	var wg sync.WaitGroup
	slots := make(chan struct{}, e.goroutines)
	for i, move := range moves {
		wg.Add(1)
		slots <- struct{}{}
		go func(i int, move game.Move) {
			defer wg.Done()
			defer func() { <-slots }()
			results[i] = e.expand(state, player, move, 0, depthLimit, deadline)
		}(i, move)
	}
	wg.Wait()

	if !time.Now().Before(deadline) {
		return 0, false
	}

	best := -1
	for i, v := range results {
		if v == nil {
			return 0, false
		}
		if best == -1 || v[player] > results[best][player] {
			best = i
		}
	}
	return moves[best], true
}

// expand scores one move for the acting player. A scoring move fans out
// into the respawn chance node and the outcome vectors are averaged;
// anything else advances into a single successor. Successors cut off by the
// deadline are excluded from the mean, and a nil vector comes back once all
// of them were.
func (e *Expectiminimax) expand(state game.State, player int, move game.Move, depth, depthLimit int, deadline time.Time) UtilityVector {
	var successors []game.State
	if state.WillScore(player, move) {
		successors = state.Play(player, move).Respawns(e.respawns)
		e.metrics.AddChanceBranch()
	} else {
		successors = []game.State{state.Play(player, move)}
	}

	vectors := make([]UtilityVector, 0, len(successors))
	for _, next := range successors {
		// The mover stayed alive (only legal moves are expanded), so a
		// next living player always exists.
		v := e.evaluateState(next, next.NextAlivePlayer(player), depth+1, depthLimit, deadline)
		if v != nil {
			vectors = append(vectors, v)
		}
	}
	if len(vectors) == 0 {
		return nil
	}
	return Mean(vectors)
}

// evaluateState is the recursive evaluation: heuristic utilities at
// game-over or depth-limited states, otherwise the averaged successor
// vector that maximizes the acting player's own coordinate, ties to the
// first move found. A nil return means the deadline struck and this branch
// must not influence any max or mean above it.
func (e *Expectiminimax) evaluateState(state game.State, player int, depth, depthLimit int, deadline time.Time) UtilityVector {
	e.metrics.AddNode()

	if state.IsGameOver() || depth == depthLimit {
		return e.utilities(state)
	}

	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		// Trapped player: nothing to expand, score the position as it
		// stands.
		return e.utilities(state)
	}

	var best UtilityVector
	for _, move := range moves {
		if !time.Now().Before(deadline) {
			return nil
		}
		v := e.expand(state, player, move, depth, depthLimit, deadline)
		if v == nil {
			continue
		}
		if best == nil || v[player] > best[player] {
			best = v
		}
	}
	return best
}

func (e *Expectiminimax) utilities(state game.State) UtilityVector {
	v := make(UtilityVector, state.NumPlayers())
	for player := range v {
		v[player] = e.evaluate(state, player)
	}
	return v
}
