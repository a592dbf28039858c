// Package dealer runs the betting and card-dealing state machine for a
// single table: posting blinds and antes, walking action around the
// table street by street, and settling the pot at showdown or when a
// hand folds down to one player.
package dealer

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerkernel/internal/card"
	"github.com/lox/pokerkernel/internal/config"
	"github.com/lox/pokerkernel/internal/evaluator"
)

// HistoryEntry records one seat's action during a hand, in the order
// Step was called.
type HistoryEntry struct {
	Seat   int
	Bet    int
	Folded bool
}

// Dealer holds one table's complete hand-in-progress state. It is not
// safe for concurrent use; callers serialize Step calls themselves (the
// replay package builds a fresh Dealer for each Run).
type Dealer struct {
	cfg       *config.Config
	evaluator *evaluator.Evaluator
	rng       *rand.Rand
	logger    *log.Logger

	action         int
	active         []bool
	button         int
	communityCards []card.Card
	deck           *card.Deck
	history        []HistoryEntry
	holeCards      [][]card.Card
	trick          []card.Card

	largestRaise int
	pot          int
	potCommits   []int
	stacks       []int

	street        int
	streetCommits []int
	streetOption  []bool
	streetRaises  int
}

// NewDealer builds a Dealer for cfg. rng drives deck shuffling; pass a
// deterministically seeded *rand.Rand for reproducible play. logger may
// be nil, in which case a discarding logger is used.
func NewDealer(cfg *config.Config, rng *rand.Rand, logger *log.Logger) (*Dealer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ev, err := evaluator.NewEvaluator(cfg.NumSuits, cfg.NumRanks, cfg.NumCardsForHand, cfg.MandatoryNumHoleCards, cfg.LowEndStraight, cfg.Order)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Dealer{
		cfg:       cfg,
		evaluator: ev,
		rng:       rng,
		logger:    logger,
		action:    -1,
		button:    -1,
	}, nil
}

// History returns the sequence of (seat, bet, folded) entries recorded
// since the last Reset.
func (d *Dealer) History() []HistoryEntry {
	return append([]HistoryEntry(nil), d.history...)
}

// SetTrick pins the top of every deck dealt by subsequent Resets to
// prefix, in order, so a scripted test scenario can fix exactly which
// cards go out. Pass nil to deal ordinary shuffled hands again.
func (d *Dealer) SetTrick(prefix []card.Card) {
	d.trick = append([]card.Card(nil), prefix...)
}

// Reset deals a new hand: it optionally rotates the button and/or tops
// every seat's stack back up to the configured start stack, then posts
// antes and blinds and deals hole cards. resetButton true puts the
// button on seat 0 (as on the very first hand of a session); false
// moves it one seat clockwise, as between hands. The first Reset of a
// Dealer always starts the button at seat 0. resetStacks is typically
// false between hands of the same session and true when starting a
// fresh session at the same table.
//
// It returns ErrTooFewActivePlayers if resetStacks is false and at most
// one player has chips left to play the hand.
func (d *Dealer) Reset(resetButton, resetStacks bool) (Observation, error) {
	n := d.cfg.NumPlayers

	if resetStacks {
		d.stacks = make([]int, n)
		for i := range d.stacks {
			d.stacks[i] = d.cfg.StartStack
		}
		d.active = make([]bool, n)
		for i := range d.active {
			d.active[i] = true
		}
	} else {
		if d.stacks == nil {
			d.stacks = make([]int, n)
			for i := range d.stacks {
				d.stacks[i] = d.cfg.StartStack
			}
		}
		d.active = make([]bool, n)
		playing := 0
		for i := range d.active {
			d.active[i] = d.stacks[i] > 0
			if d.active[i] {
				playing++
			}
		}
		if playing < 2 {
			return Observation{}, ErrTooFewActivePlayers
		}
	}

	if resetButton || d.button < 0 {
		d.button = 0
	} else {
		d.button = (d.button + 1) % n
	}

	deck, err := card.NewDeck(d.cfg.NumSuits, d.cfg.NumRanks, d.rng)
	if err != nil {
		return Observation{}, err
	}
	d.deck = deck
	if d.trick != nil {
		d.deck.Trick(d.trick)
		d.deck.Shuffle()
	}

	d.communityCards = d.deck.Draw(d.cfg.NumCommunityCards[0])
	d.holeCards = make([][]card.Card, n)
	for i := 0; i < n; i++ {
		d.holeCards[i] = d.deck.Draw(d.cfg.NumHoleCards)
	}

	d.history = nil
	d.pot = 0
	d.potCommits = make([]int, n)
	d.street = 0
	d.streetCommits = make([]int, n)
	d.streetOption = make([]bool, n)
	for i := range d.streetOption {
		d.streetOption[i] = !d.active[i]
	}
	d.streetRaises = 0
	bigBlind := d.cfg.Blinds[1]
	d.largestRaise = bigBlind

	d.action = d.button
	if n > 2 {
		d.moveAction()
	}
	d.collectRelative(d.action, d.cfg.Antes, false)
	d.collectRelative(d.action, d.cfg.Blinds, true)
	d.moveAction()
	d.moveAction()

	d.logger.Info("dealt hand", "button", d.button, "action", d.action, "pot", d.pot)

	return d.observation(false), nil
}

// Step applies the acting player's bet (a non-negative number of chips
// to put in on this action, or a negative number to signal a fold) and
// returns the next
// observation, along with per-seat payouts and done flags once the
// hand concludes. Both are zero-valued while the hand continues. Step
// returns ErrTableReset if called before Reset has dealt a hand, or
// after the previous hand already finished.
func (d *Dealer) Step(bet int) (Observation, []int, []bool, error) {
	if d.action < 0 {
		return Observation{}, nil, nil, ErrTableReset
	}

	call, minRaise, maxRaise := d.betSizes()
	foldFlag := bet < 0
	bet = cleanBet(bet, call, minRaise, maxRaise)

	folded := call > 0 && (bet < call || foldFlag)
	if folded {
		d.active[d.action] = false
		bet = 0
	} else if bet > 0 && bet-call >= d.largestRaise {
		d.largestRaise = bet - call
		d.streetRaises++
	}

	d.collectBet(bet)
	d.history = append(d.history, HistoryEntry{Seat: d.action, Bet: bet, Folded: folded})
	d.streetOption[d.action] = true

	if d.activeCount() <= 1 {
		return d.settle()
	}

	d.moveAction()
	if d.allAgreed() {
		d.advanceStreet()
		if d.street >= d.cfg.NumStreets {
			return d.settle()
		}
	}

	return d.observation(false), make([]int, d.cfg.NumPlayers), make([]bool, d.cfg.NumPlayers), nil
}

// activeCount returns how many seats have not folded.
func (d *Dealer) activeCount() int {
	n := 0
	for _, a := range d.active {
		if a {
			n++
		}
	}
	return n
}

// nonAllInActiveCount returns how many active seats still have chips
// left to act with. When at most one seat can still act, every
// remaining street is dealt at once instead of asking for bets nobody
// can place.
func (d *Dealer) nonAllInActiveCount() int {
	n := 0
	for i, a := range d.active {
		if a && d.stacks[i] > 0 {
			n++
		}
	}
	return n
}

// settle finishes the hand: showdown or uncontested-pot payout, return
// chips to stacks, and mark the table as needing a Reset before the
// next Step.
func (d *Dealer) settle() (Observation, []int, []bool, error) {
	payouts := d.computePayouts()
	done := make([]bool, d.cfg.NumPlayers)
	for i, p := range payouts {
		d.stacks[i] += p + d.potCommits[i]
		done[i] = true
	}
	d.logger.Info("hand settled", "payouts", payouts, "stacks", d.stacks)
	d.pot = 0
	d.action = -1
	return d.observation(true), payouts, done, nil
}

// collectBet records a bet at the table, pot, and street level for the
// seat currently on action.
func (d *Dealer) collectBet(bet int) {
	values := make([]int, d.cfg.NumPlayers)
	values[d.action] = bet
	d.collectMultipleBets(values, true)
}

// collectRelative posts values[i] from the seat i positions clockwise
// of start (start itself for i=0). Reset uses this for antes and
// blinds: the config's i-th entry is "the seat i positions left of the
// button," and for more than two players action has already been
// advanced once before posting, so index 0 lands on the small blind
// rather than the button.
func (d *Dealer) collectRelative(start int, values []int, isStreetCommit bool) {
	n := d.cfg.NumPlayers
	seatValues := make([]int, n)
	for i, v := range values {
		seat := (start + i) % n
		seatValues[seat] += v
	}
	d.collectMultipleBets(seatValues, isStreetCommit)
}

// collectMultipleBets moves chips from stacks into the pot for every
// seat with a nonzero entry in values, clamped to that seat's
// remaining stack. When isStreetCommit is true the amount also counts
// toward that seat's current-street commitment (used for blinds and
// in-street bets, not antes).
func (d *Dealer) collectMultipleBets(values []int, isStreetCommit bool) {
	for i, v := range values {
		if v <= 0 {
			continue
		}
		if v > d.stacks[i] {
			v = d.stacks[i]
		}
		d.stacks[i] -= v
		d.potCommits[i] += v
		d.pot += v
		if isStreetCommit {
			d.streetCommits[i] += v
		}
	}
}

// moveAction advances action by 1..NumPlayers seats, stopping at the
// first still-active seat. A seat it skips over (folded) is credited
// street_option so it never blocks agreement. All-in seats are left on
// the rotation: their turn simply clamps to a forced check.
func (d *Dealer) moveAction() {
	n := d.cfg.NumPlayers
	for i := 0; i < n; i++ {
		d.action = (d.action + 1) % n
		if !d.active[d.action] {
			d.streetOption[d.action] = true
			continue
		}
		return
	}
}

// allAgreed reports whether every seat has had the option this street
// and, for every seat still able to contest the pot, its street
// commitment matches the largest one (or it is all-in or folded).
func (d *Dealer) allAgreed() bool {
	maxCommit := maxInts(d.streetCommits)
	for i := range d.streetOption {
		if !d.streetOption[i] {
			return false
		}
		if d.streetCommits[i] == maxCommit || d.stacks[i] == 0 || !d.active[i] {
			continue
		}
		return false
	}
	return true
}

// advanceStreet moves to the next street, dealing its community cards
// and resetting the per-street betting state. If at most one active
// seat can still act after dealing, it keeps dealing every subsequent
// street at once rather than waiting for bets that can't happen.
func (d *Dealer) advanceStreet() {
	for {
		d.street++
		if d.street >= d.cfg.NumStreets {
			return
		}

		d.communityCards = append(d.communityCards, d.deck.Draw(d.cfg.NumCommunityCards[d.street])...)

		d.streetCommits = make([]int, d.cfg.NumPlayers)
		d.streetRaises = 0
		d.streetOption = make([]bool, d.cfg.NumPlayers)
		for i := range d.streetOption {
			d.streetOption[i] = !d.active[i]
		}

		if d.nonAllInActiveCount() > 1 {
			d.action = d.button
			d.moveAction()
			return
		}
	}
}
