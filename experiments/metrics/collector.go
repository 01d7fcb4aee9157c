package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Evaluator  string
	Duration   time.Duration
	Nodes      int // Positions searched, leaves included
	Leaves     int // Static evaluations at the depth limit
	Terminals  int // Finished games reached inside the tree
	Passes     int // Plies where the side to move was blocked
}

type MoveMetric struct {
	Step   int
	Player string // Color name
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string // Color name
	Winner         string // Color name or "Draw"
	BlackPieces    int
	WhitePieces    int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth, goroutines int, evaluator string)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddPass()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	evaluator  string
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
	passes     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth, goroutines int, evaluator string) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.evaluator = evaluator
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.terminals.Store(0)
	m.passes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Evaluator:  m.evaluator,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Terminals:  int(m.terminals.Load()),
		Passes:     int(m.passes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int, evaluator string) {}
func (m *dummyCollector) AddNode()                                      {}
func (m *dummyCollector) AddLeaf()                                      {}
func (m *dummyCollector) AddTerminal()                                  {}
func (m *dummyCollector) AddPass()                                      {}
func (m *dummyCollector) Complete() SearchMetric                        { return SearchMetric{} }
