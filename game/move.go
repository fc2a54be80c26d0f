package game

// Move is one of the four orientations a player can steer towards on their
// turn.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

var AllMoves = []Move{MoveUp, MoveDown, MoveLeft, MoveRight}

func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	}
	return "unknown"
}

// Opposite returns the reversing move, used to forbid doubling back onto the
// neck.
func (m Move) Opposite() Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	default:
		return MoveLeft
	}
}

// Cell is a board coordinate. (0,0) is the top-left corner.
type Cell struct {
	X int
	Y int
}

func (c Cell) Shift(m Move) Cell {
	switch m {
	case MoveUp:
		return Cell{X: c.X, Y: c.Y - 1}
	case MoveDown:
		return Cell{X: c.X, Y: c.Y + 1}
	case MoveLeft:
		return Cell{X: c.X - 1, Y: c.Y}
	default:
		return Cell{X: c.X + 1, Y: c.Y}
	}
}

// Manhattan returns the L1 distance between two cells.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
