package evaluator

import (
	"sort"

	"github.com/lox/pokerkernel/internal/card"
)

// categoryEntry tracks the bookkeeping needed to allocate a contiguous
// range of hand-strength ranks to one category.
type categoryEntry struct {
	suited             int64
	unsuited           int64
	cumulativeUnsuited int64
	rankIndex          int32
	hasRank            bool
}

// LookupTable maps prime-product-encoded hands to an integer strength
// rank, built once per (suits, ranks, cardsForHand, order) combination and
// reused across every Evaluate call for that configuration. Lower ranks
// are stronger; rank 0 is the single best possible hand.
type LookupTable struct {
	suits, ranks, cardsForHand int
	lowEndStraight             bool

	entries     map[Category]*categoryEntry
	rankedHands []Category
	maxRank     int32

	suitedLookup   map[int64]int32
	unsuitedLookup map[int64]int32
}

func primeProductFromRankBits(bits int32) int64 {
	product := int64(1)
	for i := 0; i < 13; i++ {
		if bits&(int32(1)<<uint(i)) != 0 {
			product *= int64(card.Primes[i])
		}
	}
	return product
}

func primeProductFromHand(cards []card.Card) int64 {
	product := int64(1)
	for _, c := range cards {
		product *= int64(c.Prime())
	}
	return product
}

// NewLookupTable builds the hand-rank tables for the given game shape.
// order, if non-nil, must be a permutation of the nine category tags
// (best to worst); otherwise categories are ranked by rarity (fewest
// suited combinations first).
func NewLookupTable(suits, ranks, cardsForHand int, lowEndStraight bool, order []string) (*LookupTable, error) {
	cats, err := parseOrder(order)
	if err != nil {
		return nil, err
	}

	entries := make(map[Category]*categoryEntry, numCategories)
	for c := Category(0); c < numCategories; c++ {
		suited, unsuited := categoryCounts(c, suits, ranks, cardsForHand, lowEndStraight)
		entries[c] = &categoryEntry{suited: suited, unsuited: unsuited}
	}

	var sHands []Category
	if cats != nil {
		sHands = cats
	} else {
		sHands = make([]Category, numCategories)
		for i := range sHands {
			sHands[i] = Category(i)
		}
		sort.SliceStable(sHands, func(i, j int) bool {
			a, b := sHands[i], sHands[j]
			if entries[a].suited != entries[b].suited {
				return entries[a].suited < entries[b].suited
			}
			return categoryTags[a] < categoryTags[b]
		})
	}

	var rankedHands []Category
	var cumulative int64
	var nextRank int32
	for _, c := range sHands {
		cumulative += entries[c].unsuited
		entries[c].cumulativeUnsuited = cumulative
		if cumulative > 0 {
			entries[c].rankIndex = nextRank
			entries[c].hasRank = true
			nextRank++
			rankedHands = append(rankedHands, c)
		}
	}

	t := &LookupTable{
		suits:          suits,
		ranks:          ranks,
		cardsForHand:   cardsForHand,
		lowEndStraight: lowEndStraight,
		entries:        entries,
		rankedHands:    rankedHands,
		maxRank:        int32(cumulative),
		suitedLookup:   make(map[int64]int32),
		unsuitedLookup: make(map[int64]int32),
	}

	t.buildFlushes()
	t.buildMultiples()

	if entries[Flush].cumulativeUnsuited == 0 {
		t.suitedLookup = t.unsuitedLookup
	}

	return t, nil
}

// getRank returns the starting hand-strength rank for a category: 0 for
// the best-ranked category, or one past the previous category's
// cumulative unsuited count otherwise.
func (t *LookupTable) getRank(c Category) int32 {
	e := t.entries[c]
	if !e.hasRank || e.rankIndex == 0 {
		return 0
	}
	prev := t.rankedHands[e.rankIndex-1]
	return int32(t.entries[prev].cumulativeUnsuited) + 1
}

func (t *LookupTable) buildFlushes() {
	// Generation itself is gated on whether either category that would
	// consume the patterns is active, matching clubs' _flushes: a pattern
	// list is only built when something downstream can use it.
	var straightFlushes []int32
	if t.entries[StraightFlush].cumulativeUnsuited > 0 || t.entries[Straight].cumulativeUnsuited > 0 {
		straightFlushes = genStraightFlushPatterns(t.ranks, t.cardsForHand, t.lowEndStraight)
	}

	var flushes []int32
	if t.entries[Flush].cumulativeUnsuited > 0 || t.entries[HighCard].cumulativeUnsuited > 0 {
		exclude := make(map[int32]bool, len(straightFlushes))
		for _, sf := range straightFlushes {
			exclude[sf] = true
		}
		flushes = genFlushPatterns(t.ranks, t.cardsForHand, exclude)
	}

	t.addFlushPatterns(t.suitedLookup, StraightFlush, straightFlushes)
	t.addFlushPatterns(t.suitedLookup, Flush, flushes)
	t.addFlushPatterns(t.unsuitedLookup, Straight, straightFlushes)
	t.addFlushPatterns(t.unsuitedLookup, HighCard, flushes)
}

// addFlushPatterns writes patterns into lookup at cat's rank range. A
// category with no hands assigned (cumulativeUnsuited == 0) writes
// nothing, even though straightFlushes/flushes are shared between two
// categories each — this mirrors clubs' add_to_dict, which bails out per
// call rather than per generated list, so an inactive category never
// steals rank numbers from (or collides with) an active one.
func (t *LookupTable) addFlushPatterns(lookup map[int64]int32, cat Category, patterns []int32) {
	if t.entries[cat].cumulativeUnsuited == 0 {
		return
	}
	rank := t.getRank(cat)
	for _, p := range patterns {
		lookup[primeProductFromRankBits(p)] = rank
		rank++
	}
}

type multiplesSpec struct {
	category  Category
	multiples []int64
}

func (t *LookupTable) buildMultiples() {
	specs := []multiplesSpec{
		{FourOfAKind, []int64{4}},
		{FullHouse, []int64{3, 2}},
		{ThreeOfAKind, []int64{3}},
		{TwoPair, []int64{2, 2}},
		{Pair, []int64{2}},
	}

	backwardsRanks := make([]int32, t.ranks)
	for i := 0; i < t.ranks; i++ {
		backwardsRanks[i] = int32(12 - i)
	}

	for _, spec := range specs {
		if t.entries[spec.category].cumulativeUnsuited == 0 {
			continue
		}
		rank := t.getRank(spec.category)

		var combos [][]int32
		if allEqual(spec.multiples) {
			combos = combinationsInt32(backwardsRanks, len(spec.multiples))
		} else {
			combos = permutationsInt32(backwardsRanks, len(spec.multiples))
		}

		var sumMultiples int64
		for _, m := range spec.multiples {
			sumMultiples += m
		}
		numKickers := int64(t.cardsForHand) - sumMultiples

		for _, combo := range combos {
			baseProduct := int64(1)
			for i, m := range spec.multiples {
				baseProduct *= pow64(int64(card.Primes[combo[i]]), m)
			}

			if numKickers < 1 {
				t.unsuitedLookup[baseProduct] = rank
				rank++
				continue
			}

			kickers := removeAll(backwardsRanks, combo)
			for _, kc := range combinationsInt32(kickers, int(numKickers)) {
				product := baseProduct
				for _, kr := range kc {
					product *= int64(card.Primes[kr])
				}
				t.unsuitedLookup[product] = rank
				rank++
			}
		}
	}
}

func allEqual(xs []int64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[0] {
			return false
		}
	}
	return true
}

func removeAll(s, remove []int32) []int32 {
	out := make([]int32, 0, len(s)-len(remove))
	used := make([]bool, len(remove))
	for _, v := range s {
		skip := false
		for i, r := range remove {
			if !used[i] && r == v {
				used[i] = true
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, v)
		}
	}
	return out
}

// genStraightFlushPatterns returns the rank-bitmask patterns for every
// straight (and, by extension, straight flush) shape available with
// `ranks` active ranks and a `cardsForHand`-card run, ordered best (the
// highest run) to worst. If lowEndStraight is set, the ace-low wheel
// pattern is appended last.
func genStraightFlushPatterns(ranks, cardsForHand int, lowEndStraight bool) []int32 {
	count := ranks - (cardsForHand - 1)
	if count < 0 {
		count = 0
	}
	top := (int32(1)<<uint(cardsForHand) - 1) << uint(13-cardsForHand)

	patterns := make([]int32, 0, count+1)
	for i := 0; i < count; i++ {
		patterns = append(patterns, top>>uint(i))
	}
	if lowEndStraight && cardsForHand >= 1 {
		wheel := (int32(1) << 12) | ((int32(1)<<uint(cardsForHand-1) - 1) << uint(13-ranks))
		patterns = append(patterns, wheel)
	}
	return patterns
}

// genFlushPatterns enumerates every cardsForHand-of-ranks rank-bitmask
// combination that is not already a straight, using the same
// next-lexicographic-bit-permutation walk as the reference evaluator,
// then reverses the walk (ascending-value, i.e. worst-first) into
// best-first order.
func genFlushPatterns(ranks, cardsForHand int, exclude map[int32]bool) []int32 {
	if cardsForHand <= 0 || cardsForHand > ranks {
		return nil
	}
	count := nCr(int64(ranks), int64(cardsForHand))
	x := int32(1)<<uint(cardsForHand) - 1

	patterns := make([]int32, 0, count)
	for i := int64(0); i < count; i++ {
		full := x << uint(13-ranks)
		if !exclude[full] {
			patterns = append(patterns, full)
		}
		t := (x | (x - 1)) + 1
		x = t | (((t & -t) / (x & -x)) >> 1) - 1
	}

	for i, j := 0, len(patterns)-1; i < j; i, j = i+1, j-1 {
		patterns[i], patterns[j] = patterns[j], patterns[i]
	}
	return patterns
}
