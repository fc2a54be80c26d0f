package game

// Utility sentinels for decided positions. Deliberately finite: chance-node
// averaging sums K of these, and a sum of math.MaxFloat64 values overflows
// to +Inf while a mix of +Inf and -Inf averages to NaN.
const (
	WinUtility  = 1e9
	LossUtility = -WinUtility
)

// EvaluateTargetDistance scores a player by how close its head is to the
// target: the negated Manhattan distance, plus a bonus of width+height+1
// when a score is one move away. The bonus exceeds any reachable distance
// term so an imminent score always dominates plain proximity.
func EvaluateTargetDistance(s State, player int) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}

	if v, decided := terminalUtility(gs, player); decided {
		return v
	}

	bonus := float64(gs.Width + gs.Height + 1)
	if gs.TargetClaimed {
		// Between a scoring move and the respawn there is no target to
		// chase; the position is worth exactly the score bonus.
		return bonus
	}
	for _, m := range gs.LegalMoves(player) {
		if gs.WillScore(player, m) {
			return bonus
		}
	}

	return -float64(Manhattan(gs.Players[player].Head(), gs.Target))
}

// EvaluateSeparation scores a player by the summed Manhattan distance from
// its head to every living opponent's head, rewarding positions that keep
// rivals at arm's length.
func EvaluateSeparation(s State, player int) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}

	if v, decided := terminalUtility(gs, player); decided {
		return v
	}

	head := gs.Players[player].Head()
	separation := 0
	for i, p := range gs.Players {
		if i == player || !p.Alive {
			continue
		}
		separation += Manhattan(head, p.Head())
	}
	return float64(separation)
}

func terminalUtility(gs *GameState, player int) (float64, bool) {
	if gs.IsDead(player) {
		return LossUtility, true
	}
	if gs.Winner() == player {
		return WinUtility, true
	}
	return 0, false
}
