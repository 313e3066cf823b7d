package engine

import "math"

// UCB1Constant is the exploration constant √2 used for the diagnostic
// bonus.
var UCB1Constant = math.Sqrt2

// Stats is a flat win/visit accumulator for a single simulation run.
// It exposes a UCB1-style exploration value for diagnostic display;
// the value never influences which cards are drawn or how trials are
// weighted.
type Stats struct {
	wins   int
	visits int
}

// Update records the outcome of one trial.
func (s *Stats) Update(won bool) {
	s.visits++
	if won {
		s.wins++
	}
}

// Visits returns the number of trials recorded.
func (s *Stats) Visits() int {
	return s.visits
}

// Wins returns the number of winning trials recorded.
func (s *Stats) Wins() int {
	return s.wins
}

// WinRate returns wins/visits, or 0.0 before any trial completes.
func (s *Stats) WinRate() float64 {
	if s.visits == 0 {
		return 0.0
	}
	return float64(s.wins) / float64(s.visits)
}

// UCB1 returns the exploitation term plus the exploration bonus for the
// given parent visit count. An unvisited accumulator is infinitely
// attractive, matching the standard UCB1 convention.
func (s *Stats) UCB1(parentVisits int) float64 {
	if s.visits == 0 {
		return math.Inf(1)
	}

	exploitation := float64(s.wins) / float64(s.visits)
	exploration := UCB1Constant * math.Sqrt(math.Log(float64(parentVisits))/float64(s.visits))

	return exploitation + exploration
}
