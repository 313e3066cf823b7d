package deck

import (
	"errors"
	"testing"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/randutil"
)

func TestDeckResetInvariant(t *testing.T) {
	d := New(randutil.New(1))

	if d.CardsRemaining() != 52 {
		t.Fatalf("expected 52 cards after New, got %d", d.CardsRemaining())
	}

	// Every (suit, rank) pair appears exactly once.
	seen := make(map[Card]int)
	for d.CardsRemaining() > 0 {
		card, err := d.Deal()
		if err != nil {
			t.Fatalf("unexpected deal error: %v", err)
		}
		seen[card]++
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 distinct cards, got %d", len(seen))
	}
	for card, count := range seen {
		if count != 1 {
			t.Errorf("card %v appeared %d times", card, count)
		}
	}

	d.Reset()
	if d.CardsRemaining() != 52 {
		t.Errorf("expected 52 cards after Reset, got %d", d.CardsRemaining())
	}
}

func TestDeckRemoveIsIdempotent(t *testing.T) {
	d := New(randutil.New(1))
	card := NewCard(Hearts, Ace)

	d.Remove(card)
	if d.CardsRemaining() != 51 {
		t.Fatalf("expected 51 cards after remove, got %d", d.CardsRemaining())
	}
	if d.Contains(card) {
		t.Fatal("removed card still present")
	}

	// Second removal of the same card is a no-op.
	d.Remove(card)
	if d.CardsRemaining() != 51 {
		t.Errorf("expected 51 cards after double remove, got %d", d.CardsRemaining())
	}
}

func TestDeckDealEmpty(t *testing.T) {
	d := New(randutil.New(1))
	for i := 0; i < 52; i++ {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("deal %d: unexpected error %v", i, err)
		}
	}

	_, err := d.Deal()
	if !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestDeckShufflePreservesCards(t *testing.T) {
	d := New(randutil.New(42))
	d.Remove(NewCard(Spades, Ace))
	d.Remove(NewCard(Spades, King))
	d.Shuffle()

	if d.CardsRemaining() != 50 {
		t.Fatalf("expected 50 cards, got %d", d.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for d.CardsRemaining() > 0 {
		card, err := d.Deal()
		if err != nil {
			t.Fatalf("unexpected deal error: %v", err)
		}
		if seen[card] {
			t.Fatalf("duplicate card %v after shuffle", card)
		}
		seen[card] = true
	}
	if seen[NewCard(Spades, Ace)] || seen[NewCard(Spades, King)] {
		t.Error("removed card reappeared after shuffle")
	}
}
