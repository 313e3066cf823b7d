package evaluator

import (
	"testing"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/deck"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/randutil"
)

func TestCompareShowdownFullBoard(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		opponent string
		board    string
		want     Outcome
	}{
		{
			name:     "overpair wins",
			subject:  "AhAd",
			opponent: "KhKd",
			board:    "2c7s9dJcQh",
			want:     SubjectWins,
		},
		{
			name:     "underpair loses",
			subject:  "QsQc",
			opponent: "KhKd",
			board:    "2c7s9dJcAh",
			want:     OpponentWins,
		},
		{
			name:     "board plays for both",
			subject:  "2h3d",
			opponent: "2s3c",
			board:    "AhKhQhJhTh",
			want:     Tie,
		},
		{
			name:     "identical two pair with shared kicker",
			subject:  "As2h",
			opponent: "Ad2c",
			board:    "AcKs2dQh9s",
			want:     Tie,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := CompareShowdown(
				deck.MustParseCards(tt.subject),
				deck.MustParseCards(tt.opponent),
				deck.MustParseCards(tt.board),
				randutil.New(1),
			)
			if err != nil {
				t.Fatalf("CompareShowdown: %v", err)
			}
			if outcome != tt.want {
				t.Errorf("outcome = %v, want %v", outcome, tt.want)
			}
		})
	}
}

func TestCompareShowdownCompletesBoard(t *testing.T) {
	// Quads on the flop cannot lose to a deuce-high hand no matter how
	// the board completes.
	subject := deck.MustParseCards("AhAd")
	opponent := deck.MustParseCards("2h3d")
	board := deck.MustParseCards("AcAs7h")

	for seed := int64(0); seed < 20; seed++ {
		outcome, err := CompareShowdown(subject, opponent, board, randutil.New(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if outcome != SubjectWins {
			t.Errorf("seed %d: quad aces lost or tied: %v", seed, outcome)
		}
	}
}

func TestCompareShowdownValidation(t *testing.T) {
	rng := randutil.New(1)

	if _, err := CompareShowdown(deck.MustParseCards("Ah"), deck.MustParseCards("2h3d"), nil, rng); err == nil {
		t.Error("expected error for one-card subject hand")
	}
	if _, err := CompareShowdown(deck.MustParseCards("AhAd"), deck.MustParseCards("2h3d"),
		deck.MustParseCards("2c3c4c5c6c7c"), rng); err == nil {
		t.Error("expected error for six-card board")
	}
}
