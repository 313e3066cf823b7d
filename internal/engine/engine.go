// Package engine estimates heads-up win probability by flat Monte Carlo
// sampling: every trial independently completes the unknown cards
// (opponent hole cards and remaining board) from the residual deck and
// scores the resulting showdown. There is no per-action tree search.
package engine

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/deck"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/evaluator"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/randutil"
)

// Estimate is the aggregate result of one simulation run.
type Estimate struct {
	Trials  int
	Wins    int
	Elapsed time.Duration
}

// WinRate returns wins/trials. A run whose budget expired before a
// single trial completed reports 0.0; the Trials field lets callers
// tell that apart from "ran trials and lost them all".
func (e Estimate) WinRate() float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return float64(e.Wins) / float64(e.Trials)
}

// State tracks where a run is in its lifecycle.
type State int

const (
	Idle State = iota
	Running
	Completed
)

// Engine samples showdown outcomes for a fixed known-cards snapshot.
// The snapshot is read-only for the lifetime of the engine; each trial
// builds its own deck from it, so trials never contaminate each other.
// An Engine is not safe for concurrent Run calls.
type Engine struct {
	hole  []deck.Card
	board []deck.Card

	clock   quartz.Clock
	logger  *log.Logger
	seed    int64
	workers int

	state State
	root  Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the wall clock, letting tests drive the budget
// deterministically.
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithSeed fixes the random seed. Zero seeds from the wall clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithWorkers sets how many goroutines share the trial load.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithLogger attaches a logger for per-run debug output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger.WithPrefix("engine") }
}

// New creates an engine for the given known cards: exactly 2 hole cards
// and a board of 0, 3, 4 or 5 cards (pre-flop through river), all
// distinct.
func New(hole, board []deck.Card, opts ...Option) (*Engine, error) {
	if len(hole) != 2 {
		return nil, fmt.Errorf("hole cards: expected 2, got %d", len(hole))
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return nil, fmt.Errorf("board: expected 0, 3, 4 or 5 cards, got %d", len(board))
	}
	if err := checkDistinct(hole, board); err != nil {
		return nil, err
	}

	e := &Engine{
		hole:    append([]deck.Card{}, hole...),
		board:   append([]deck.Card{}, board...),
		clock:   quartz.NewReal(),
		logger:  log.New(io.Discard),
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func checkDistinct(hole, board []deck.Card) error {
	seen := make(map[deck.Card]bool, len(hole)+len(board))
	for _, card := range append(append([]deck.Card{}, hole...), board...) {
		if seen[card] {
			return fmt.Errorf("duplicate card: %s", card)
		}
		seen[card] = true
	}
	return nil
}

// Root returns the diagnostic accumulator for the last run.
func (e *Engine) Root() *Stats {
	return &e.root
}

// State returns the engine's run state.
func (e *Engine) State() State {
	return e.state
}

// RunBudget samples trials until the wall-clock budget expires. The
// budget is checked only at trial boundaries, so it is a soft deadline:
// the overrun is bounded by the cost of one worst-case trial. A deck
// exhaustion mid-trial indicates a modeling bug and aborts the whole
// run rather than skewing the sample.
func (e *Engine) RunBudget(budget time.Duration) (Estimate, error) {
	return e.run(func(elapsed time.Duration, trials int) bool {
		return elapsed < budget
	})
}

// RunTrials samples exactly n trials regardless of elapsed time.
func (e *Engine) RunTrials(n int) (Estimate, error) {
	return e.run(func(elapsed time.Duration, trials int) bool {
		return trials < n
	})
}

// run resets the aggregate counters and loops trials while keepGoing
// allows. With more than one worker the trial load is shared across an
// errgroup; every worker gets an independent RNG stream derived from
// the seed and the aggregate semantics are unchanged (ties are never
// counted as wins).
func (e *Engine) run(keepGoing func(elapsed time.Duration, trials int) bool) (Estimate, error) {
	seed := randutil.Seed(e.seed)
	start := e.clock.Now()

	e.state = Running
	e.root = Stats{}
	defer func() { e.state = Completed }()

	var estimate Estimate
	var err error
	if e.workers <= 1 {
		estimate, err = e.runSequential(start, seed, keepGoing)
	} else {
		estimate, err = e.runParallel(start, seed, keepGoing)
	}
	if err != nil {
		return Estimate{}, err
	}

	estimate.Elapsed = e.clock.Since(start)
	e.logger.Debug("simulation run complete",
		"trials", estimate.Trials,
		"wins", estimate.Wins,
		"winRate", estimate.WinRate(),
		"elapsed", estimate.Elapsed)

	return estimate, nil
}

func (e *Engine) runSequential(start time.Time, seed int64, keepGoing func(time.Duration, int) bool) (Estimate, error) {
	rng := randutil.New(seed)

	var estimate Estimate
	for keepGoing(e.clock.Since(start), estimate.Trials) {
		won, err := e.runTrial(rng)
		if err != nil {
			return Estimate{}, fmt.Errorf("trial %d: %w", estimate.Trials, err)
		}
		estimate.Trials++
		if won {
			estimate.Wins++
		}
		e.root.Update(won)
	}
	return estimate, nil
}

func (e *Engine) runParallel(start time.Time, seed int64, keepGoing func(time.Duration, int) bool) (Estimate, error) {
	results := make([]Estimate, e.workers)

	var g errgroup.Group
	for w := 0; w < e.workers; w++ {
		rng := randutil.New(randutil.Derive(seed, w))
		result := &results[w]
		g.Go(func() error {
			for keepGoing(e.clock.Since(start), result.Trials*e.workers) {
				won, err := e.runTrial(rng)
				if err != nil {
					return err
				}
				result.Trials++
				if won {
					result.Wins++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Estimate{}, fmt.Errorf("simulation worker: %w", err)
	}

	var estimate Estimate
	for _, result := range results {
		estimate.Trials += result.Trials
		estimate.Wins += result.Wins
	}
	for i := 0; i < estimate.Trials; i++ {
		// Rebuild the diagnostic accumulator from the totals; per-trial
		// order is irrelevant to a flat accumulator.
		e.root.Update(i < estimate.Wins)
	}
	return estimate, nil
}

// runTrial plays out one complete random continuation: fresh deck minus
// the known cards, random opponent hole cards, board completed to five,
// showdown. Returns whether the subject won outright; a tie is not a
// win.
func (e *Engine) runTrial(rng *rand.Rand) (bool, error) {
	d := deck.New(rng)
	d.RemoveAll(e.hole)
	d.RemoveAll(e.board)
	d.Shuffle()

	opponent := make([]deck.Card, 0, 2)
	for len(opponent) < 2 {
		card, err := d.Deal()
		if err != nil {
			return false, fmt.Errorf("dealing opponent cards: %w", err)
		}
		opponent = append(opponent, card)
	}

	board := make([]deck.Card, len(e.board), 5)
	copy(board, e.board)
	for len(board) < 5 {
		card, err := d.Deal()
		if err != nil {
			return false, fmt.Errorf("completing board: %w", err)
		}
		board = append(board, card)
	}

	outcome, err := evaluator.CompareShowdown(e.hole, opponent, board, rng)
	if err != nil {
		return false, err
	}
	return outcome == evaluator.SubjectWins, nil
}
