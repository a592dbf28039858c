package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerkernel/internal/card"
)

func mustCards(t *testing.T, ss ...string) []card.Card {
	t.Helper()
	out := make([]card.Card, len(ss))
	for i, s := range ss {
		c, err := card.New(s)
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func TestNewEvaluatorInvalidHandSize(t *testing.T) {
	_, err := NewEvaluator(4, 13, 6, 0, true, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = NewEvaluator(4, 13, 0, 0, true, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}

func TestEvaluateRoyalFlushIsRankZero(t *testing.T) {
	e, err := NewEvaluator(4, 13, 5, 0, true, nil)
	require.NoError(t, err)

	hole := mustCards(t, "As", "Ks")
	board := mustCards(t, "Qs", "Js", "Ts", "2h", "3d")

	rank := e.Evaluate(hole, board)
	assert.EqualValues(t, 0, rank)

	cat, err := e.GetRankClass(rank)
	require.NoError(t, err)
	assert.Equal(t, StraightFlush, cat)
}

func TestEvaluateHighCardBeatenByPair(t *testing.T) {
	e, err := NewEvaluator(4, 13, 5, 0, true, nil)
	require.NoError(t, err)

	highCardHole := mustCards(t, "2c", "7d")
	pairHole := mustCards(t, "2d", "2h")
	board := mustCards(t, "9s", "Jc", "4h", "6d", "Kc")

	highRank := e.Evaluate(highCardHole, board)
	pairRank := e.Evaluate(pairHole, board)
	assert.Less(t, pairRank, highRank, "a pair must outrank a high card hand")
}

func TestGetRankClassOutOfRange(t *testing.T) {
	e, err := NewEvaluator(4, 13, 5, 0, true, nil)
	require.NoError(t, err)

	_, err = e.GetRankClass(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHandRank)

	_, err = e.GetRankClass(e.MaxRank() + 1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHandRank)
}

func TestMandatoryHoleCardsRestrictsCombinations(t *testing.T) {
	// Omaha-shaped: exactly 2 of 4 hole cards plus 3 of 5 board cards.
	e, err := NewEvaluator(4, 13, 5, 2, true, nil)
	require.NoError(t, err)

	hole := mustCards(t, "As", "Ks", "2c", "7d")
	board := mustCards(t, "Qs", "Js", "Ts", "4h", "6d")

	rank := e.Evaluate(hole, board)
	cat, err := e.GetRankClass(rank)
	require.NoError(t, err)
	assert.Equal(t, StraightFlush, cat)
}

func TestShortDeckRanksFlushAboveFullHouse(t *testing.T) {
	e, err := NewShortDeck()
	require.NoError(t, err)

	flushHole := mustCards(t, "6s", "9s")
	flushBoard := mustCards(t, "Ts", "Ks", "As", "7h", "8d")
	fullHouseHole := mustCards(t, "6c", "6d")
	fullHouseBoard := mustCards(t, "6h", "9s", "9d", "7h", "8d")

	flushRank := e.Evaluate(flushHole, flushBoard)
	fullHouseRank := e.Evaluate(fullHouseHole, fullHouseBoard)
	assert.Less(t, flushRank, fullHouseRank, "short-deck flush should outrank full house")
}
