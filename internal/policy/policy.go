// Package policy maps an estimated win probability to a stay-or-fold
// recommendation against a fixed threshold.
package policy

// DefaultThreshold is the win probability at or above which staying in
// the hand is recommended.
const DefaultThreshold = 0.5

// Verdict is a binary stay-or-fold recommendation.
type Verdict int

const (
	Fold Verdict = iota
	Stay
)

// String returns the string representation of a verdict
func (v Verdict) String() string {
	switch v {
	case Stay:
		return "stay"
	case Fold:
		return "fold"
	default:
		return "unknown"
	}
}

// Decide recommends Stay when the win rate meets or exceeds the
// threshold. The comparison is inclusive: a win rate exactly at the
// threshold stays.
func Decide(winRate, threshold float64) Verdict {
	if winRate >= threshold {
		return Stay
	}
	return Fold
}
