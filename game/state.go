package game

import (
	"golang.org/x/exp/rand"
)

// Player holds one snake's dynamic state. Body is the occupied trail, head
// first. A dead player keeps Alive=false and an empty Body so its cells no
// longer block the board.
type Player struct {
	Body    []Cell
	Alive   bool
	Heading Move
}

// Size returns the trail length.
func (p Player) Size() int {
	return len(p.Body)
}

func (p Player) Head() Cell {
	return p.Body[0]
}

// GameState is a snapshot of the whole game. Operations on GameState always
// return a new copy; a state handed to the searcher is never mutated.
//
// Exactly one target cell exists until it is claimed by a scoring move, at
// which point TargetClaimed is set and the engine (or a chance branch in the
// search) places the next one.
type GameState struct {
	Width         int
	Height        int
	Players       []Player
	Target        Cell
	TargetClaimed bool
}

// NewGameState sets up a game with players spaced out along the middle row,
// each with a single-cell trail, and the target at the board center.
func NewGameState(width, height, numPlayers int) *GameState {
	if numPlayers < 2 {
		panic("need at least two players")
	}
	if width < numPlayers {
		// Spawn columns are strided across the width, one per player.
		panic("board too small for player count")
	}

	players := make([]Player, numPlayers)
	for i := range players {
		x := (i*width)/numPlayers + width/(2*numPlayers)
		players[i] = Player{
			Body:    []Cell{{X: x, Y: height / 2}},
			Alive:   true,
			Heading: MoveUp,
		}
	}

	gs := &GameState{
		Width:   width,
		Height:  height,
		Players: players,
		Target:  Cell{X: width / 2, Y: 0},
	}
	if gs.occupied(gs.Target) {
		gs.Target = Cell{X: 0, Y: 0}
	}
	return gs
}

func (gs *GameState) Copy() *GameState {
	players := make([]Player, len(gs.Players))
	for i, p := range gs.Players {
		body := make([]Cell, len(p.Body))
		copy(body, p.Body)
		players[i] = Player{Body: body, Alive: p.Alive, Heading: p.Heading}
	}

	return &GameState{
		Width:         gs.Width,
		Height:        gs.Height,
		Players:       players,
		Target:        gs.Target,
		TargetClaimed: gs.TargetClaimed,
	}
}

func (gs *GameState) NumPlayers() int {
	return len(gs.Players)
}

func (gs *GameState) IsDead(player int) bool {
	return !gs.Players[player].Alive
}

// IsGameOver reports whether at most one player remains alive.
func (gs *GameState) IsGameOver() bool {
	return gs.aliveCount() <= 1
}

// Winner returns the index of the sole surviving player, or -1 while the
// game is still contested or everyone is dead.
func (gs *GameState) Winner() int {
	if gs.aliveCount() != 1 {
		return -1
	}
	for i, p := range gs.Players {
		if p.Alive {
			return i
		}
	}
	return -1
}

func (gs *GameState) aliveCount() int {
	count := 0
	for _, p := range gs.Players {
		if p.Alive {
			count++
		}
	}
	return count
}

// IsLegalMove reports whether the move keeps the player's head on the board,
// off every occupied cell, and does not reverse onto its own neck.
func (gs *GameState) IsLegalMove(player int, move Move) bool {
	p := gs.Players[player]
	if !p.Alive {
		return false
	}
	if p.Size() > 1 && move == p.Heading.Opposite() {
		return false
	}

	next := p.Head().Shift(move)
	if next.X < 0 || next.X >= gs.Width || next.Y < 0 || next.Y >= gs.Height {
		return false
	}
	// Conservative collision rule: every occupied cell blocks, tails
	// included, so a move is never legal only because a tail might vacate.
	return !gs.occupied(next)
}

func (gs *GameState) occupied(c Cell) bool {
	for _, p := range gs.Players {
		for _, b := range p.Body {
			if b == c {
				return true
			}
		}
	}
	return false
}

func (gs *GameState) LegalMoves(player int) []Move {
	moves := []Move{}
	for _, m := range AllMoves {
		if gs.IsLegalMove(player, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// WillScore reports whether the move lands the player's head on the live
// target.
func (gs *GameState) WillScore(player int, move Move) bool {
	if gs.TargetClaimed || gs.IsDead(player) {
		return false
	}
	return gs.Players[player].Head().Shift(move) == gs.Target
}

// Play returns the state after the player steers towards move. A scoring
// move grows the trail and claims the target; an illegal move kills the
// player and clears its trail from the board.
func (gs *GameState) Play(player int, move Move) State {
	next := gs.Copy()
	p := &next.Players[player]

	if !gs.IsLegalMove(player, move) {
		p.Alive = false
		p.Body = nil
		return next
	}

	head := p.Head().Shift(move)
	scored := !next.TargetClaimed && head == next.Target

	body := make([]Cell, 0, len(p.Body)+1)
	body = append(body, head)
	body = append(body, p.Body...)
	if scored {
		next.TargetClaimed = true
	} else {
		body = body[:len(body)-1]
	}

	p.Body = body
	p.Heading = move
	return next
}

// Respawns enumerates k hypothetical placements of the next target, evenly
// strided over the free cells in row-major order. The stride keeps the
// sample deterministic and spread across the board; fewer than k states come
// back when the board is nearly full.
func (gs *GameState) Respawns(k int) []State {
	free := gs.freeCells()
	if len(free) == 0 {
		return []State{gs.Copy()}
	}
	if k > len(free) {
		k = len(free)
	}

	states := make([]State, 0, k)
	stride := len(free) / k
	for i := 0; i < k; i++ {
		next := gs.Copy()
		next.Target = free[i*stride]
		next.TargetClaimed = false
		states = append(states, next)
	}
	return states
}

// ChooseNextTarget places the next target on a uniformly random free cell.
// The engine uses this for the real respawn after a score; the searcher
// sticks to the deterministic Respawns enumeration.
func (gs *GameState) ChooseNextTarget(rng *rand.Rand) *GameState {
	free := gs.freeCells()
	next := gs.Copy()
	if len(free) == 0 {
		return next
	}
	next.Target = free[rng.Intn(len(free))]
	next.TargetClaimed = false
	return next
}

func (gs *GameState) freeCells() []Cell {
	free := []Cell{}
	for y := 0; y < gs.Height; y++ {
		for x := 0; x < gs.Width; x++ {
			c := Cell{X: x, Y: y}
			if !gs.occupied(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// NextAlivePlayer returns the next living player after current in wrapping
// turn order. A lone survivor keeps the turn. Panics if everyone is dead:
// turn order is undefined on a finished game and looping forever would be
// worse.
func (gs *GameState) NextAlivePlayer(current int) int {
	n := len(gs.Players)
	for i := 1; i <= n; i++ {
		next := (current + i) % n
		if gs.Players[next].Alive {
			return next
		}
	}
	panic("no live player found")
}
