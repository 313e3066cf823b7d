package evaluator

// HandCategory enumerates the ten poker hand categories ordered from
// weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable hand description
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandEvaluation is the result of ranking a 7-card hand: a category plus
// an ordered tie-break sequence, most significant rank first. The length
// and meaning of the tie-break vector depend on the category.
type HandEvaluation struct {
	Category  HandCategory
	Tiebreaks []int
}

// Compare returns 1 if e is the stronger hand, -1 if other is, and 0 on
// a tie. Categories compare first; equal categories compare tie-break
// vectors lexicographically over the overlapping prefix only, so
// unequal-length vectors still compare position by position up to the
// shorter length.
func (e HandEvaluation) Compare(other HandEvaluation) int {
	if e.Category != other.Category {
		if e.Category > other.Category {
			return 1
		}
		return -1
	}

	for i := 0; i < len(e.Tiebreaks) && i < len(other.Tiebreaks); i++ {
		if e.Tiebreaks[i] != other.Tiebreaks[i] {
			if e.Tiebreaks[i] > other.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}

	return 0
}
