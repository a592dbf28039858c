package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewDeckSize(t *testing.T) {
	d, err := NewDeck(2, 3, newTestRNG())
	require.NoError(t, err)
	assert.Equal(t, 6, d.Len())
}

func TestNewDeckInvalidRanks(t *testing.T) {
	_, err := NewDeck(4, 14, newTestRNG())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestNewDeckInvalidSuits(t *testing.T) {
	_, err := NewDeck(5, 13, newTestRNG())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSuit)
}

func TestDrawLimit(t *testing.T) {
	d, err := NewDeck(2, 3, newTestRNG())
	require.NoError(t, err)

	assert.Len(t, d.Draw(1), 1)
	assert.Len(t, d.Draw(3), 3)
	assert.Len(t, d.Draw(4), 2)
	assert.Len(t, d.Draw(1), 0)
}

func TestShuffleIsPermutation(t *testing.T) {
	d, err := NewDeck(4, 13, newTestRNG())
	require.NoError(t, err)

	before := make(map[Card]bool)
	for _, c := range d.Remaining() {
		before[c] = true
	}
	d.Shuffle()
	after := d.Remaining()
	assert.Len(t, after, 52)
	for _, c := range after {
		assert.True(t, before[c])
	}
}

func TestTrickFixesPrefix(t *testing.T) {
	d, err := NewDeck(4, 13, newTestRNG())
	require.NoError(t, err)

	qs, _ := New("Qs")
	ks, _ := New("Ks")
	qh, _ := New("Qh")
	prefix := []Card{qs, ks, qh}
	d.Trick(prefix)

	for i := 0; i < 5; i++ {
		d.Shuffle()
		assert.Equal(t, prefix, d.Remaining()[:3])
	}

	d.Untrick()
	d.Shuffle()
	// after untrick the prefix is no longer guaranteed, but the deck
	// is still a valid full permutation
	assert.Len(t, d.Remaining(), 52)
}
