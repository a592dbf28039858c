package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Expected unsuited (distinct-strength) counts for a standard 52-card,
// 5-card hand evaluator. These are the classic "7462 distinct hand
// ranks" breakdown, not raw combination-frequency counts: a four of a
// kind's kicker suit, for example, never changes its strength, so the
// 624 four-of-a-kind combinations collapse to 156 distinct ranks.
func TestStandardDeckMaxRank(t *testing.T) {
	table, err := NewLookupTable(4, 13, 5, true, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 7462, table.maxRank)
}

func TestStandardDeckCategoryCounts(t *testing.T) {
	suited, unsuited := categoryCounts(StraightFlush, 4, 13, 5, true)
	assert.EqualValues(t, 10, unsuited)
	assert.EqualValues(t, 40, suited)

	_, unsuited = categoryCounts(FourOfAKind, 4, 13, 5, true)
	assert.EqualValues(t, 156, unsuited)

	_, unsuited = categoryCounts(FullHouse, 4, 13, 5, true)
	assert.EqualValues(t, 156, unsuited)

	_, unsuited = categoryCounts(Flush, 4, 13, 5, true)
	assert.EqualValues(t, 1277, unsuited)

	_, unsuited = categoryCounts(Straight, 4, 13, 5, true)
	assert.EqualValues(t, 10, unsuited)

	_, unsuited = categoryCounts(ThreeOfAKind, 4, 13, 5, true)
	assert.EqualValues(t, 858, unsuited)

	_, unsuited = categoryCounts(TwoPair, 4, 13, 5, true)
	assert.EqualValues(t, 858, unsuited)

	_, unsuited = categoryCounts(Pair, 4, 13, 5, true)
	assert.EqualValues(t, 2860, unsuited)

	_, unsuited = categoryCounts(HighCard, 4, 13, 5, true)
	assert.EqualValues(t, 1277, unsuited)
}

func TestCustomOrderReordersRanking(t *testing.T) {
	order := []string{"sf", "fk", "fl", "fh", "st", "tk", "tp", "pa", "hc"}
	table, err := NewLookupTable(4, 13, 5, true, order)
	require.NoError(t, err)
	// with flush ranked ahead of full house, flush's cumulative bound
	// must fall entirely below full house's.
	assert.Less(t, table.entries[Flush].cumulativeUnsuited, table.entries[FullHouse].cumulativeUnsuited)
}

func TestLeducShapedTableBuilds(t *testing.T) {
	// 2 suits, 3 ranks, 2 cards per hand: no flush/straight categories
	// are reachable, only pair vs high card.
	table, err := NewLookupTable(2, 3, 2, false, nil)
	require.NoError(t, err)
	assert.Greater(t, table.maxRank, int32(0))
	assert.EqualValues(t, 0, table.entries[StraightFlush].unsuited)
	assert.EqualValues(t, 0, table.entries[Flush].unsuited)
	assert.Greater(t, table.entries[Pair].unsuited, int64(0))
	assert.Greater(t, table.entries[HighCard].unsuited, int64(0))
}
