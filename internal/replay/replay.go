// Package replay drives a scripted sequence of bets through one Dealer,
// deterministically, so a fixed seed and action list always reproduce
// the same hand: the same cards, the same betting figures, the same
// payouts. It is the regression-style harness named out of scope for
// the kernel's own tests but useful to cmd/pokerkernel's deal command
// and to tests that want to assert on a whole hand at once rather than
// Step by Step.
package replay

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerkernel/internal/card"
	"github.com/lox/pokerkernel/internal/config"
	"github.com/lox/pokerkernel/internal/dealer"
	"github.com/lox/pokerkernel/internal/randutil"
)

// Scenario is a complete, reproducible hand script: the game shape, the
// deck seed (and optional forced top-of-deck prefix), and the bets to
// feed the dealer in order.
type Scenario struct {
	Config      *config.Config
	Seed        int64
	Trick       []card.Card
	ResetButton bool
	ResetStacks bool
	Bets        []int

	// StepTimeout bounds how long any single Step is allowed to take
	// before Run reports ErrStepTimeout. Zero disables the check. This
	// exists for regression runs against a slow or hung evaluator; a
	// fixed seed and script should never legitimately take long.
	StepTimeout time.Duration
}

// Step is one recorded moment of the hand: the observation and full
// snapshot immediately after Reset or a Step call, plus that call's
// payouts and done flags (zero-valued while the hand continues).
type Step struct {
	Observation dealer.Observation
	Snapshot    dealer.Snapshot
	Payouts     []int
	Done        []bool
	Elapsed     time.Duration
}

// Runner replays Scenarios against a fresh Dealer each time. Clock is
// exposed so tests can inject a quartz.Mock and drive StepTimeout
// deterministically instead of depending on wall-clock speed.
type Runner struct {
	Clock  quartz.Clock
	Logger *log.Logger
}

// NewRunner builds a Runner backed by the real clock. Pass a logger or
// nil for a discarding one.
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{Clock: quartz.NewReal(), Logger: logger}
}

// Run plays scn from a freshly constructed Dealer and returns every
// recorded Step, including the initial deal. It stops early, returning
// what was recorded so far alongside the error, if Reset or Step fails
// or if a step exceeds scn.StepTimeout. If the hand settles before the
// whole bet script has been consumed, it stops without an error and the
// remaining bets are simply never applied.
func (r *Runner) Run(scn Scenario) ([]Step, error) {
	rng := randutil.New(scn.Seed)
	d, err := dealer.NewDealer(scn.Config, rng, r.Logger)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if scn.Trick != nil {
		d.SetTrick(scn.Trick)
	}

	obs, err := d.Reset(scn.ResetButton, scn.ResetStacks)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	steps := []Step{{Observation: obs, Snapshot: d.Snapshot()}}

	for _, bet := range scn.Bets {
		start := r.Clock.Now()
		obs, payouts, done, err := d.Step(bet)
		elapsed := r.Clock.Now().Sub(start)
		if err != nil {
			return steps, fmt.Errorf("replay: %w", err)
		}
		if scn.StepTimeout > 0 && elapsed > scn.StepTimeout {
			return steps, fmt.Errorf("%w: step took %s, budget %s", ErrStepTimeout, elapsed, scn.StepTimeout)
		}

		steps = append(steps, Step{Observation: obs, Snapshot: d.Snapshot(), Payouts: payouts, Done: done, Elapsed: elapsed})
		if handDone(done) {
			break
		}
	}

	return steps, nil
}

func handDone(done []bool) bool {
	if len(done) == 0 {
		return false
	}
	for _, d := range done {
		if !d {
			return false
		}
	}
	return true
}
