package evaluator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/deck"
)

// Outcome is the result of a heads-up showdown from the subject's side.
type Outcome int

const (
	SubjectWins Outcome = iota
	OpponentWins
	Tie
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case SubjectWins:
		return "subject wins"
	case OpponentWins:
		return "opponent wins"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// CompareShowdown combines each player's hole cards with a shared board,
// evaluates both 7-card hands and reports who wins. A board shorter than
// 5 cards is completed by uniform draw from the deck minus all known
// cards, with both hands seeing the same completion. A tie is a distinct
// outcome: callers counting wins must not count ties as wins, which
// changes the reported win rate versus folding ties into either side.
func CompareShowdown(subjectHole, opponentHole, board []deck.Card, rng *rand.Rand) (Outcome, error) {
	if len(subjectHole) != 2 || len(opponentHole) != 2 {
		return Tie, fmt.Errorf("hole cards: expected 2 per player, got %d and %d",
			len(subjectHole), len(opponentHole))
	}
	if len(board) > 5 {
		return Tie, fmt.Errorf("board: expected at most 5 cards, got %d", len(board))
	}

	fullBoard := board
	if len(board) < 5 {
		d := deck.New(rng)
		d.RemoveAll(subjectHole)
		d.RemoveAll(opponentHole)
		d.RemoveAll(board)
		d.Shuffle()

		fullBoard = make([]deck.Card, len(board), 5)
		copy(fullBoard, board)
		for len(fullBoard) < 5 {
			card, err := d.Deal()
			if err != nil {
				return Tie, fmt.Errorf("completing board: %w", err)
			}
			fullBoard = append(fullBoard, card)
		}
	}

	subjectHand := make([]deck.Card, 0, 7)
	subjectHand = append(subjectHand, subjectHole...)
	subjectHand = append(subjectHand, fullBoard...)

	opponentHand := make([]deck.Card, 0, 7)
	opponentHand = append(opponentHand, opponentHole...)
	opponentHand = append(opponentHand, fullBoard...)

	subjectEval, err := Evaluate(subjectHand, rng)
	if err != nil {
		return Tie, fmt.Errorf("evaluating subject hand: %w", err)
	}
	opponentEval, err := Evaluate(opponentHand, rng)
	if err != nil {
		return Tie, fmt.Errorf("evaluating opponent hand: %w", err)
	}

	switch cmp := subjectEval.Compare(opponentEval); {
	case cmp > 0:
		return SubjectWins, nil
	case cmp < 0:
		return OpponentWins, nil
	default:
		return Tie, nil
	}
}
