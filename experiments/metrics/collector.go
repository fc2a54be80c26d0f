package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric captures what one FindMove call did: how deep the iterative
// deepening got before the budget ran out and how much of the tree it
// touched along the way.
type SearchMetric struct {
	Goroutines     int
	Budget         time.Duration
	Duration       time.Duration
	Depth          int // deepest depth limit that completed in time
	Nodes          int // states evaluated across all depth passes
	ChanceBranches int // scoring moves fanned out into respawn outcomes
}

type MoveMetric struct {
	Step   int
	Player int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // -1 when the game hit the turn cap undecided
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines int, budget time.Duration)
	AddNode()
	AddChanceBranch()
	SetDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	goroutines     int
	budget         time.Duration
	startTime      time.Time
	nodes          atomic.Int64
	chanceBranches atomic.Int64
	depth          atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int, budget time.Duration) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.budget = budget
	m.nodes.Store(0)
	m.chanceBranches.Store(0)
	m.depth.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddChanceBranch() {
	m.chanceBranches.Add(1)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:     m.goroutines,
		Budget:         m.budget,
		Duration:       time.Since(m.startTime),
		Depth:          int(m.depth.Load()),
		Nodes:          int(m.nodes.Load()),
		ChanceBranches: int(m.chanceBranches.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, budget time.Duration) {}
func (m *dummyCollector) AddNode()                                   {}
func (m *dummyCollector) AddChanceBranch()                           {}
func (m *dummyCollector) SetDepth(depth int)                         {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
