package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned by Deal when no cards remain. On the
// simulation path this indicates a modeling bug (miscounted known
// cards), not a recoverable condition.
var ErrEmptyDeck = errors.New("no cards left in the deck")

// Deck is an ordered set of the 52 distinct cards minus any cards
// removed as known. Invariant: no duplicates; size = 52 - removed.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck with an explicit random source for
// shuffling. The deck is not shuffled.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.Reset()
	return d
}

// Reset repopulates the deck with all 52 distinct (suit, rank) pairs.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Remove deletes the matching card if present. Removing an absent card
// is a no-op, so a second Remove of the same card changes nothing.
func (d *Deck) Remove(card Card) {
	for i := range d.cards {
		if d.cards[i] == card {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return
		}
	}
}

// RemoveAll removes every card in cards from the deck.
func (d *Deck) RemoveAll(cards []Card) {
	for _, c := range cards {
		d.Remove(c)
	}
}

// Shuffle produces a uniform random permutation of the remaining cards
// using Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Contains reports whether the card is still in the deck.
func (d *Deck) Contains(card Card) bool {
	for i := range d.cards {
		if d.cards[i] == card {
			return true
		}
	}
	return false
}
