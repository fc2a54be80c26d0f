package game

// State is the read-only view of a game position that the searcher operates
// on. Implementations must be immutable: Play and Respawns always return new
// copies and never touch the receiver.
type State interface {
	NumPlayers() int
	IsGameOver() bool
	IsDead(player int) bool
	LegalMoves(player int) []Move
	// WillScore reports whether the move lands the player's head on the
	// current target, i.e. whether playing it opens a chance node.
	WillScore(player int, move Move) bool
	Play(player int, move Move) State
	// Respawns enumerates k equally likely successor states with the claimed
	// target replaced. The enumeration must be deterministic for a given
	// state so that repeated searches agree.
	Respawns(k int) []State
	// NextAlivePlayer returns the next player in turn order that is still
	// alive, wrapping modulo NumPlayers and skipping the dead.
	NextAlivePlayer(current int) int
}

// Evaluate scores a state from one player's perspective. It must be total:
// every reachable state gets a value, with WinUtility and LossUtility
// reserved for decided positions.
type Evaluate func(s State, player int) float64
