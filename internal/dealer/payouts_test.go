package dealer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerkernel/internal/card"
	"github.com/lox/pokerkernel/internal/config"
	"github.com/lox/pokerkernel/internal/evaluator"
)

// newBareDealer builds a Dealer with just enough state to exercise
// evalRound/computePayouts directly, bypassing Reset/Step.
func newBareDealer(t *testing.T, numPlayers int) *Dealer {
	t.Helper()
	ev, err := evaluator.NewEvaluator(2, 3, 2, 0, true, nil)
	require.NoError(t, err)
	return &Dealer{
		cfg:       &config.Config{NumPlayers: numPlayers},
		evaluator: ev,
	}
}

func TestEvalRoundSidePotsCapAtShortStack(t *testing.T) {
	d := newBareDealer(t, 3)
	d.button = 0
	d.active = []bool{true, true, false}
	d.holeCards = [][]card.Card{
		{mustCard(t, "As"), mustCard(t, "Ah")}, // pair of aces: best
		{mustCard(t, "Ks"), mustCard(t, "Kh")}, // pair of kings: second
		nil,                                    // folded, never evaluated
	}
	d.communityCards = nil
	d.potCommits = []int{50, 100, 100}
	d.pot = 250

	shares := d.evalRound()
	require.Len(t, shares, 3)
	assert.Equal(t, 150, shares[0])
	assert.Equal(t, 100, shares[1])
	assert.Equal(t, 0, shares[2])

	sum := 0
	for i, s := range shares {
		sum += s - d.potCommits[i]
	}
	assert.Zero(t, sum, "payouts must be zero-sum over the hand")
}

func TestEvalRoundSplitPotRemainderGoesLeftOfButton(t *testing.T) {
	d := newBareDealer(t, 3)
	d.button = 0
	d.active = []bool{true, true, false}
	// Seats 0 and 1 tie with a pair of queens; seat 2 folded, leaving an
	// odd chip of dead money behind it in the split pot.
	d.holeCards = [][]card.Card{
		{mustCard(t, "Qs"), mustCard(t, "Qh")},
		{mustCard(t, "Qh"), mustCard(t, "Qs")},
		nil,
	}
	d.communityCards = nil
	d.potCommits = []int{3, 3, 1}
	d.pot = 7

	shares := d.evalRound()
	assert.Equal(t, 3, shares[0])
	assert.Equal(t, 4, shares[1])
	assert.Equal(t, 0, shares[2])

	sum := 0
	for i, s := range shares {
		sum += s - d.potCommits[i]
	}
	assert.Zero(t, sum, "payouts must be zero-sum over the hand")
}
