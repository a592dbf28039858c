package evaluator

import (
	"fmt"

	"github.com/lox/pokerkernel/internal/card"
)

// Evaluator scores poker hands of a fixed shape (suits, ranks, cards
// dealt per hand) built from hole and community cards. Construction
// builds a LookupTable once; Evaluate is then an O(1) map lookup per
// candidate k-subset.
type Evaluator struct {
	suits              int
	ranks              int
	cardsForHand       int
	mandatoryHoleCards int
	lowEndStraight     bool
	order              []string

	table *LookupTable
}

// NewEvaluator validates cardsForHand and builds the backing lookup
// table. mandatoryHoleCards, when nonzero, forces Evaluate to use
// exactly that many of the player's hole cards in every candidate hand
// (e.g. Omaha's "exactly two hole cards" rule); zero means any mix of
// hole and community cards is considered.
func NewEvaluator(suits, ranks, cardsForHand, mandatoryHoleCards int, lowEndStraight bool, order []string) (*Evaluator, error) {
	if cardsForHand < 1 || cardsForHand > 5 {
		return nil, fmt.Errorf("%w: cards_for_hand must be between 1 and 5, got %d", ErrInvalidHandSize, cardsForHand)
	}

	table, err := NewLookupTable(suits, ranks, cardsForHand, lowEndStraight, order)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		suits:              suits,
		ranks:              ranks,
		cardsForHand:       cardsForHand,
		mandatoryHoleCards: mandatoryHoleCards,
		lowEndStraight:     lowEndStraight,
		order:              order,
		table:              table,
	}, nil
}

// NewShortDeck builds a 36-card ("6+") evaluator: four suits, ranks 6
// through ace, five-card hands drawn freely from hole and community
// cards. Short-deck play makes full houses more common than flushes, so
// the category order is swapped relative to the standard ranking.
func NewShortDeck() (*Evaluator, error) {
	order := []string{"sf", "fk", "fl", "fh", "st", "tk", "tp", "pa", "hc"}
	return NewEvaluator(4, 9, 5, 0, false, order)
}

// MaxRank returns the weakest (largest) hand-strength rank this
// evaluator can produce.
func (e *Evaluator) MaxRank() int32 { return e.table.maxRank }

// Evaluate returns the strength rank of the best cardsForHand-card hand
// obtainable from holeCards and communityCards. Lower is stronger; 0 is
// the best possible hand for this evaluator's shape.
func (e *Evaluator) Evaluate(holeCards, communityCards []card.Card) int32 {
	best := int32(-1)
	consider := func(hand []card.Card) {
		r := e.lookup(hand)
		if best == -1 || r < best {
			best = r
		}
	}

	if e.mandatoryHoleCards > 0 {
		holeCombos := combinationsCards(holeCards, e.mandatoryHoleCards)
		boardCombos := combinationsCards(communityCards, e.cardsForHand-e.mandatoryHoleCards)
		for _, hc := range holeCombos {
			for _, bc := range boardCombos {
				hand := make([]card.Card, 0, e.cardsForHand)
				hand = append(hand, hc...)
				hand = append(hand, bc...)
				consider(hand)
			}
		}
		return best
	}

	pool := make([]card.Card, 0, len(holeCards)+len(communityCards))
	pool = append(pool, holeCards...)
	pool = append(pool, communityCards...)
	for _, hand := range combinationsCards(pool, e.cardsForHand) {
		consider(hand)
	}
	return best
}

// lookup resolves the strength rank of an exact cardsForHand-card hand.
func (e *Evaluator) lookup(hand []card.Card) int32 {
	flush := int32(0xF000)
	for _, c := range hand {
		flush &= c.Int()
	}

	if flush != 0 {
		var bits int32
		for _, c := range hand {
			bits |= c.Bitrank()
		}
		if r, ok := e.table.suitedLookup[primeProductFromRankBits(bits)]; ok {
			return r
		}
	}

	return e.table.unsuitedLookup[primeProductFromHand(hand)]
}

// GetRankClass maps a strength rank back to its poker hand category.
func (e *Evaluator) GetRankClass(rank int32) (Category, error) {
	if rank < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHandRank, rank)
	}
	for _, c := range e.table.rankedHands {
		if rank <= int32(e.table.entries[c].cumulativeUnsuited) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidHandRank, rank)
}

func combinationsCards(s []card.Card, r int) [][]card.Card {
	n := len(s)
	if r < 0 || r > n {
		return nil
	}
	if r == 0 {
		return [][]card.Card{{}}
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}

	var out [][]card.Card
	for {
		combo := make([]card.Card, r)
		for i, j := range idx {
			combo[i] = s[j]
		}
		out = append(out, combo)

		i := r - 1
		for i >= 0 && idx[i] == i+n-r {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
