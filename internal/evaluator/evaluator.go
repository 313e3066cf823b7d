// Package evaluator classifies 7-card Texas Hold'em hands into a
// category plus tie-break vector and compares showdown outcomes.
package evaluator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/deck"
)

// handProfile holds the frequency and run facts extracted from a 7-card
// hand. Category rules read from it and never recompute.
type handProfile struct {
	rankCounts [15]int // index 2-14
	suitCounts [4]int

	hasFlush   bool
	flushSuit  deck.Suit
	flushRanks []int // flush-suit ranks, descending

	hasStraight  bool
	straightHigh int

	hasStraightFlush  bool
	straightFlushHigh int

	quads   []int // ranks with count 4, descending
	trips   []int // ranks with count 3, descending
	pairs   []int // ranks with count 2, descending
	singles []int // ranks with count 1, descending (kickers)
}

// categoryRule pairs a hand category with its match predicate. A rule
// returns the tie-break vector when the profile qualifies, nil
// otherwise. Rules are evaluated in strict priority order and exactly
// one fires per hand.
type categoryRule struct {
	category HandCategory
	match    func(*handProfile) []int
}

var categoryRules = []categoryRule{
	{RoyalFlush, matchRoyalFlush},
	{StraightFlush, matchStraightFlush},
	{FourOfAKind, matchFourOfAKind},
	{FullHouse, matchFullHouse},
	{Flush, matchFlush},
	{Straight, matchStraight},
	{ThreeOfAKind, matchThreeOfAKind},
	{TwoPair, matchTwoPair},
	{OnePair, matchOnePair},
	{HighCard, matchHighCard},
}

// Evaluate ranks a hand of up to 7 cards. Hands with fewer than 7 cards
// are completed by uniform random draw from a deck that excludes the
// given cards; this is a convenience path only, and the simulation
// engine always supplies complete 7-card hands.
func Evaluate(cards []deck.Card, rng *rand.Rand) (HandEvaluation, error) {
	if len(cards) < 7 {
		completed, err := completeHand(cards, rng)
		if err != nil {
			return HandEvaluation{}, err
		}
		cards = completed
	}

	profile := profileHand(cards)
	for _, rule := range categoryRules {
		if tiebreaks := rule.match(profile); tiebreaks != nil {
			return HandEvaluation{Category: rule.category, Tiebreaks: tiebreaks}, nil
		}
	}

	// matchHighCard always fires for a non-empty hand.
	return HandEvaluation{}, fmt.Errorf("no category matched %d cards", len(cards))
}

// completeHand fills a partial hand to 7 cards from the residual deck.
func completeHand(cards []deck.Card, rng *rand.Rand) ([]deck.Card, error) {
	d := deck.New(rng)
	d.RemoveAll(cards)
	d.Shuffle()

	full := make([]deck.Card, len(cards), 7)
	copy(full, cards)
	for len(full) < 7 {
		card, err := d.Deal()
		if err != nil {
			return nil, fmt.Errorf("completing partial hand: %w", err)
		}
		full = append(full, card)
	}
	return full, nil
}

func profileHand(cards []deck.Card) *handProfile {
	p := &handProfile{}

	for _, card := range cards {
		p.rankCounts[card.Rank]++
		p.suitCounts[card.Suit]++
	}

	// Flush: first qualifying suit in enumeration order. Multiple
	// qualifying suits cannot happen with 7 cards from one deck, but
	// the scan does not assume that.
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		if p.suitCounts[suit] >= 5 {
			p.hasFlush = true
			p.flushSuit = suit
			break
		}
	}
	if p.hasFlush {
		for rank := deck.Ace; rank >= deck.Two; rank-- {
			for _, card := range cards {
				if card.Suit == p.flushSuit && card.Rank == rank {
					p.flushRanks = append(p.flushRanks, int(rank))
				}
			}
		}
	}

	p.straightHigh = straightHigh(func(rank int) bool { return p.rankCounts[rank] > 0 })
	p.hasStraight = p.straightHigh > 0

	if p.hasFlush {
		present := make(map[int]bool, len(p.flushRanks))
		for _, rank := range p.flushRanks {
			present[rank] = true
		}
		p.straightFlushHigh = straightHigh(func(rank int) bool { return present[rank] })
		p.hasStraightFlush = p.straightFlushHigh > 0
	}

	for rank := deck.Ace; rank >= deck.Two; rank-- {
		switch p.rankCounts[rank] {
		case 4:
			p.quads = append(p.quads, int(rank))
		case 3:
			p.trips = append(p.trips, int(rank))
		case 2:
			p.pairs = append(p.pairs, int(rank))
		case 1:
			p.singles = append(p.singles, int(rank))
		}
	}

	return p
}

// straightHigh finds the high card of the best 5-card run over the ranks
// accepted by present, scanning from the highest possible straight down
// so the first hit wins. The wheel (A-2-3-4-5, high card 5) qualifies
// only when no higher straight exists. Returns 0 when no straight.
func straightHigh(present func(rank int) bool) int {
	for low := 10; low >= 2; low-- {
		run := true
		for rank := low; rank <= low+4; rank++ {
			if !present(rank) {
				run = false
				break
			}
		}
		if run {
			return low + 4
		}
	}

	if present(14) && present(2) && present(3) && present(4) && present(5) {
		return 5 // ace plays low
	}

	return 0
}

func matchRoyalFlush(p *handProfile) []int {
	if p.hasStraightFlush && p.straightFlushHigh == 14 {
		return []int{14}
	}
	return nil
}

func matchStraightFlush(p *handProfile) []int {
	if p.hasStraightFlush {
		return []int{p.straightFlushHigh}
	}
	return nil
}

func matchFourOfAKind(p *handProfile) []int {
	if len(p.quads) == 0 {
		return nil
	}
	quad := p.quads[0]
	tiebreaks := []int{quad}
	for rank := 14; rank >= 2; rank-- {
		if p.rankCounts[rank] > 0 && rank != quad {
			tiebreaks = append(tiebreaks, rank)
			break
		}
	}
	return tiebreaks
}

func matchFullHouse(p *handProfile) []int {
	// Two distinct trips also form a full house.
	if len(p.trips) == 0 || (len(p.pairs) == 0 && len(p.trips) < 2) {
		return nil
	}
	if len(p.pairs) > 0 {
		return []int{p.trips[0], p.pairs[0]}
	}
	return []int{p.trips[0], p.trips[1]}
}

func matchFlush(p *handProfile) []int {
	if !p.hasFlush {
		return nil
	}
	n := 5
	if len(p.flushRanks) < n {
		n = len(p.flushRanks)
	}
	tiebreaks := make([]int, n)
	copy(tiebreaks, p.flushRanks[:n])
	return tiebreaks
}

func matchStraight(p *handProfile) []int {
	if p.hasStraight {
		return []int{p.straightHigh}
	}
	return nil
}

func matchThreeOfAKind(p *handProfile) []int {
	if len(p.trips) == 0 {
		return nil
	}
	return appendKickers([]int{p.trips[0]}, p.singles, 2)
}

func matchTwoPair(p *handProfile) []int {
	if len(p.pairs) < 2 {
		return nil
	}
	return appendKickers([]int{p.pairs[0], p.pairs[1]}, p.singles, 1)
}

func matchOnePair(p *handProfile) []int {
	if len(p.pairs) != 1 {
		return nil
	}
	return appendKickers([]int{p.pairs[0]}, p.singles, 3)
}

func matchHighCard(p *handProfile) []int {
	tiebreaks := make([]int, 0, 5)
	for rank := 14; rank >= 2 && len(tiebreaks) < 5; rank-- {
		if p.rankCounts[rank] > 0 {
			tiebreaks = append(tiebreaks, rank)
		}
	}
	return tiebreaks
}

func appendKickers(tiebreaks []int, singles []int, n int) []int {
	for i := 0; i < len(singles) && i < n; i++ {
		tiebreaks = append(tiebreaks, singles[i])
	}
	return tiebreaks
}
