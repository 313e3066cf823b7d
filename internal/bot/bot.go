// Package bot ties the simulation engine and the decision policy into a
// single advisor that tracks the cards known at each betting phase.
package bot

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/deck"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/engine"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/policy"
)

// DefaultBudget is the per-decision simulation budget.
const DefaultBudget = 10 * time.Second

// Phase is a betting phase where a stay-or-fold decision is made. Each
// decision precedes the next community deal; River is the final round
// with the full board visible.
type Phase int

const (
	PreFlop Phase = iota
	PreTurn
	PreRiver
	River
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PreFlop:
		return "pre-flop"
	case PreTurn:
		return "pre-turn"
	case PreRiver:
		return "pre-river"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// BoardCards returns the number of community cards visible in the phase.
func (p Phase) BoardCards() int {
	switch p {
	case PreFlop:
		return 0
	case PreTurn:
		return 3
	case PreRiver:
		return 4
	case River:
		return 5
	default:
		return -1
	}
}

// PhaseForBoard maps a board size to its betting phase.
func PhaseForBoard(boardCards int) (Phase, error) {
	switch boardCards {
	case 0:
		return PreFlop, nil
	case 3:
		return PreTurn, nil
	case 4:
		return PreRiver, nil
	case 5:
		return River, nil
	default:
		return 0, fmt.Errorf("no betting phase has %d community cards", boardCards)
	}
}

// Advice is the outcome of one simulated decision.
type Advice struct {
	Phase   Phase
	WinRate float64
	Trials  int
	Wins    int
	Elapsed time.Duration
	Verdict policy.Verdict
}

// PokerBot advises stay-or-fold for one heads-up hand as community
// cards are revealed.
type PokerBot struct {
	hole  []deck.Card
	board []deck.Card

	logger    *log.Logger
	seed      int64
	workers   int
	threshold float64
}

// Option configures a PokerBot.
type Option func(*PokerBot)

// WithLogger attaches a logger for per-decision output.
func WithLogger(logger *log.Logger) Option {
	return func(b *PokerBot) { b.logger = logger.WithPrefix("bot") }
}

// WithSeed fixes the simulation seed. Zero seeds from the wall clock.
func WithSeed(seed int64) Option {
	return func(b *PokerBot) { b.seed = seed }
}

// WithWorkers sets the simulation worker count.
func WithWorkers(n int) Option {
	return func(b *PokerBot) { b.workers = n }
}

// WithThreshold overrides the stay threshold.
func WithThreshold(threshold float64) Option {
	return func(b *PokerBot) { b.threshold = threshold }
}

// New creates a bot with no cards set.
func New(opts ...Option) *PokerBot {
	b := &PokerBot{
		logger:    log.New(io.Discard),
		workers:   1,
		threshold: policy.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetKnownCards replaces the bot's view of the hand: exactly 2 hole
// cards and a board sized for a betting phase, all distinct.
func (b *PokerBot) SetKnownCards(hole, board []deck.Card) error {
	if len(hole) != 2 {
		return fmt.Errorf("hole cards: expected 2, got %d", len(hole))
	}
	if _, err := PhaseForBoard(len(board)); err != nil {
		return err
	}

	seen := make(map[deck.Card]bool, len(hole)+len(board))
	for _, card := range append(append([]deck.Card{}, hole...), board...) {
		if seen[card] {
			return fmt.Errorf("duplicate card: %s", card)
		}
		seen[card] = true
	}

	b.hole = append([]deck.Card{}, hole...)
	b.board = append([]deck.Card{}, board...)
	return nil
}

// Phase returns the betting phase implied by the known board.
func (b *PokerBot) Phase() (Phase, error) {
	if len(b.hole) != 2 {
		return 0, fmt.Errorf("no hand set")
	}
	return PhaseForBoard(len(b.board))
}

// Advise estimates the win probability within the budget and recommends
// stay or fold.
func (b *PokerBot) Advise(budget time.Duration) (Advice, error) {
	phase, err := b.Phase()
	if err != nil {
		return Advice{}, err
	}

	e, err := engine.New(b.hole, b.board,
		engine.WithSeed(b.seed),
		engine.WithWorkers(b.workers),
		engine.WithLogger(b.logger))
	if err != nil {
		return Advice{}, err
	}

	estimate, err := e.RunBudget(budget)
	if err != nil {
		return Advice{}, fmt.Errorf("simulating %s decision: %w", phase, err)
	}

	advice := Advice{
		Phase:   phase,
		WinRate: estimate.WinRate(),
		Trials:  estimate.Trials,
		Wins:    estimate.Wins,
		Elapsed: estimate.Elapsed,
		Verdict: policy.Decide(estimate.WinRate(), b.threshold),
	}
	b.logger.Info("decision made",
		"phase", advice.Phase,
		"winRate", advice.WinRate,
		"trials", advice.Trials,
		"verdict", advice.Verdict)

	return advice, nil
}
