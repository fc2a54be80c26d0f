package searcher

import "gonum.org/v1/gonum/floats"

// UtilityVector holds one scalar utility per player, indexed by player. A
// nil vector means a branch was cut off by the deadline and carries no
// information.
type UtilityVector []float64

// Mean combines vectors by elementwise arithmetic mean - the expectation
// step at a chance node. All vectors must have the same length and there
// must be at least one.
func Mean(vectors []UtilityVector) UtilityVector {
	out := make(UtilityVector, len(vectors[0]))
	for _, v := range vectors {
		floats.Add(out, v)
	}
	floats.Scale(1/float64(len(vectors)), out)
	return out
}
