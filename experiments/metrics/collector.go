package metrics

import "time"

type MoveMetric struct {
	Step     int
	Player   string // Side that moved
	Move     string
	Capture  bool
	Attempts int // Moves the player proposed, including rejected ones
	Duration time.Duration
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Outcome of the game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector times each turn of a game.
type Collector interface {
	Start()
	AddAttempt()
	Complete(step int, player string, move string, capture bool) MoveMetric
}

type collector struct {
	startTime time.Time
	attempts  int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.attempts = 0
}

func (m *collector) AddAttempt() {
	m.attempts++
}

func (m *collector) Complete(step int, player string, move string, capture bool) MoveMetric {
	return MoveMetric{
		Step:     step,
		Player:   player,
		Move:     move,
		Capture:  capture,
		Attempts: m.attempts,
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()      {}
func (m *dummyCollector) AddAttempt() {}
func (m *dummyCollector) Complete(step int, player string, move string, capture bool) MoveMetric {
	return MoveMetric{Step: step, Player: player, Move: move, Capture: capture}
}
